package system

import (
	"sync/atomic"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/loot"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/status"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// damageResolver is the only code path that lowers actor health
// Combat feeds it queued requests during dispatch, projectiles feed it hits inline
// so an actor shot dead is gone before later systems in the same tick run
type damageResolver struct {
	world *engine.World
	loot  *loot.Engine

	statDamage   *atomic.Int64
	statKills    *atomic.Int64
	statBossKill *atomic.Int64
	statTaken    *status.Float
	statDealt    *status.Float
}

func newDamageResolver(world *engine.World) *damageResolver {
	reg := world.Resources.Status
	return &damageResolver{
		world:        world,
		loot:         loot.NewEngine(world.Resources.Catalog, world.Resources.Rand),
		statDamage:   reg.Ints.Get("combat.damage_events"),
		statKills:    reg.Ints.Get("combat.kills"),
		statBossKill: reg.Ints.Get("combat.boss_kills"),
		statTaken:    reg.Floats.Get("combat.damage_taken"),
		statDealt:    reg.Floats.Get("combat.damage_dealt"),
	}
}

func (d *damageResolver) reset() {
	d.statDamage.Store(0)
	d.statKills.Store(0)
	d.statBossKill.Store(0)
	d.statTaken.Store(0)
	d.statDealt.Store(0)
}

// apply resolves one request; dead or missing targets and negative amounts drop it
// Reports whether the hit was lethal
func (d *damageResolver) apply(req *event.DamageRequestPayload) bool {
	w := d.world
	c, ok := w.Components.Combat.GetComponent(req.Target)
	if !ok || !c.Alive() || req.Amount < 0 {
		return false
	}
	d.statDamage.Add(1)

	isPlayer := req.Target == w.PlayerEntity()
	amount := req.Amount
	if isPlayer {
		if pc, ok := w.Components.Player.GetComponent(req.Target); ok {
			amount *= w.Resources.Catalog.Protection(pc.Armor)
		}
	}

	c.Health -= amount
	c.HitFlashRemaining = parameter.HitFlashDuration
	w.Components.Combat.SetComponent(req.Target, c)

	if !vmath.V3FIsZero(req.Knockback) {
		d.knockback(req.Target, isPlayer, req.Knockback)
	}

	if isPlayer {
		d.statTaken.Add(amount)
		w.PushEvent(event.EventPlayerDamaged, &event.PlayerDamagedPayload{Amount: amount, Health: c.Health})
		w.PlaySound(core.SoundPlayerHurt)
		if !c.Alive() {
			d.gameOver()
		}
		return !c.Alive()
	}

	d.statDealt.Add(amount)
	if c.Alive() {
		return false
	}
	d.kill(req.Target)
	return true
}

// knockback displaces the target horizontally and launches it by the vertical part
func (d *damageResolver) knockback(e core.Entity, isPlayer bool, kb vmath.Vec3F) {
	w := d.world
	w.Components.Transform.Mutate(e, func(t *component.TransformComponent) {
		t.Position = clampToArena(w, vmath.V3FAdd(t.Position, vmath.V3FFlat(kb)))
		if !isPlayer {
			t.Impulse.Y += kb.Y
		}
	})
	if isPlayer && kb.Y != 0 {
		w.Components.Movement.Mutate(e, func(m *component.MovementComponent) {
			m.VerticalVelocity += kb.Y
		})
	}
}

// kill removes a dead enemy or boss, drops loot and pays the reward
func (d *damageResolver) kill(e core.Entity) {
	w := d.world
	t, _ := w.Components.Transform.GetComponent(e)
	boss, isBoss := w.Components.Boss.GetComponent(e)
	enemy, _ := w.Components.Enemy.GetComponent(e)

	reward := w.Resources.Catalog.EnemyReward
	sound := core.SoundEnemyDeath
	if isBoss {
		reward = w.Resources.Catalog.BossReward
		sound = core.SoundBossDeath
	}

	for _, drop := range d.loot.RollDrop(t.Position, isBoss) {
		SpawnWorldLoot(w, drop)
	}

	w.Components.Player.Mutate(w.PlayerEntity(), func(pc *component.PlayerComponent) {
		pc.Score += reward.Score
		pc.Money += reward.Money
		pc.Kills++
	})

	w.DestroyEntity(e)
	w.PlaySound(sound)

	payload := &event.ActorKilledPayload{
		Entity:   e,
		Boss:     isBoss,
		Enemy:    enemy.Type,
		BossType: boss.Type,
		Position: t.Position,
	}
	if isBoss {
		d.statBossKill.Add(1)
		w.PushEvent(event.EventBossKilled, payload)
	} else {
		d.statKills.Add(1)
		w.PushEvent(event.EventEnemyKilled, payload)
	}
}

// gameOver freezes the arena: actors stop, projectiles vanish
func (d *damageResolver) gameOver() {
	w := d.world
	gs := w.Resources.Game.State
	if !gs.SetGameOver() {
		return
	}

	halt := func(c *component.CombatComponent) { c.Speed = 0 }
	for _, e := range w.Components.Enemy.GetAllEntities() {
		w.Components.Combat.Mutate(e, halt)
	}
	for _, e := range w.Components.Boss.GetAllEntities() {
		w.Components.Combat.Mutate(e, halt)
	}
	for _, e := range w.Components.Projectile.GetAllEntities() {
		w.DestroyEntity(e)
	}

	summary := &event.GameOverPayload{Wave: gs.Wave.Number}
	if pc, ok := w.Components.Player.GetComponent(w.PlayerEntity()); ok {
		summary.Score = pc.Score
		summary.Kills = pc.Kills
	}
	w.PushEvent(event.EventGameOver, summary)
	w.PlaySound(core.SoundGameOver)
}
