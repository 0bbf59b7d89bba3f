package system

import (
	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// abilityHandler applies the phase two effect of one ability
type abilityHandler func(w *engine.World, boss core.Entity, b *component.BossComponent, queued component.QueuedAttack)

var abilityHandlers = [component.AbilityCount]abilityHandler{
	component.AbilityGroundSlam: groundSlam,
	component.AbilityCharge:     charge,
	component.AbilityMagicBurst: magicBurst,
	component.AbilityTeleport:   teleport,
	component.AbilityRoar:       roar,
	component.AbilityStomp:      stomp,
}

func executeAbility(w *engine.World, boss core.Entity, b *component.BossComponent, queued component.QueuedAttack) {
	if queued.Ability >= component.AbilityCount {
		return
	}
	abilityHandlers[queued.Ability](w, boss, b, queued)
}

// bossToPlayer returns the boss position, player center and their distance
func bossToPlayer(w *engine.World, boss core.Entity) (vmath.Vec3F, vmath.Vec3F, float64, bool) {
	t, ok := w.Components.Transform.GetComponent(boss)
	if !ok {
		return vmath.Vec3F{}, vmath.Vec3F{}, 0, false
	}
	center, ok := playerCenter(w)
	if !ok {
		return vmath.Vec3F{}, vmath.Vec3F{}, 0, false
	}
	return t.Position, center, vmath.V3FDist(vmath.V3FFlat(t.Position), vmath.V3FFlat(center)), true
}

// areaHit damages the player when within the boss attack range, with optional knockback
func areaHit(w *engine.World, boss core.Entity, b *component.BossComponent, knockback float64) bool {
	pos, center, dist, ok := bossToPlayer(w, boss)
	if !ok || dist >= b.AttackRange {
		return false
	}
	var kb vmath.Vec3F
	if knockback > 0 {
		kb = vmath.V3FScale(awayFrom(pos, center), knockback)
	}
	requestDamage(w, w.PlayerEntity(), boss, b.Damage, event.DamageAbility, kb)
	return true
}

func groundSlam(w *engine.World, boss core.Entity, b *component.BossComponent, _ component.QueuedAttack) {
	areaHit(w, boss, b, parameter.GroundSlamKnockback)
}

func magicBurst(w *engine.World, boss core.Entity, b *component.BossComponent, _ component.QueuedAttack) {
	areaHit(w, boss, b, 0)
}

func stomp(w *engine.World, boss core.Entity, b *component.BossComponent, _ component.QueuedAttack) {
	areaHit(w, boss, b, parameter.StompKnockback)
}

// charge dashes along the direction captured at telegraph time
func charge(w *engine.World, boss core.Entity, b *component.BossComponent, queued component.QueuedAttack) {
	t, ok := w.Components.Transform.GetComponent(boss)
	if !ok {
		return
	}
	dir := awayFrom(t.Position, queued.Target)
	t.Position = clampToArena(w, vmath.V3FAdd(t.Position, vmath.V3FScale(dir, parameter.ChargeDistance)))
	t.Facing = dir
	w.Components.Transform.SetComponent(boss, t)

	pos, center, dist, ok := bossToPlayer(w, boss)
	if !ok || dist >= parameter.ChargeHitRange {
		return
	}
	kb := vmath.V3FScale(awayFrom(pos, center), parameter.ChargeKnockback)
	requestDamage(w, w.PlayerEntity(), boss, b.Damage, event.DamageAbility, kb)
}

// teleport lands near the captured player position, close landings deal half damage
func teleport(w *engine.World, boss core.Entity, b *component.BossComponent, queued component.QueuedAttack) {
	t, ok := w.Components.Transform.GetComponent(boss)
	if !ok {
		return
	}
	rng := w.Resources.Rand
	spread := parameter.TeleportSpread
	dest := vmath.Vec3F{
		X: queued.Target.X + rng.Range(-spread, spread),
		Y: t.Position.Y,
		Z: queued.Target.Z + rng.Range(-spread, spread),
	}
	t.Position = clampToArena(w, dest)
	w.Components.Transform.SetComponent(boss, t)

	_, _, dist, ok := bossToPlayer(w, boss)
	if !ok || dist >= parameter.TeleportHitRange {
		return
	}
	requestDamage(w, w.PlayerEntity(), boss, b.Damage/2, event.DamageAbility, vmath.Vec3F{})
}

// roar damages and slows the player for a while
func roar(w *engine.World, boss core.Entity, b *component.BossComponent, _ component.QueuedAttack) {
	if !areaHit(w, boss, b, 0) {
		return
	}
	w.Components.Buff.Mutate(w.PlayerEntity(), func(bc *component.BuffComponent) {
		bc.Apply(component.BuffSlow, parameter.RoarSlowMultiplier, parameter.RoarSlowDuration)
	})
}
