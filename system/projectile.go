package system

import (
	"sync/atomic"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/physics"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// SpawnProjectile creates a projectile of weapon w travelling along direction
// A zero direction is rejected
func SpawnProjectile(w *engine.World, origin, direction vmath.Vec3F, weapon component.WeaponType, damageMult float64) (core.Entity, bool) {
	dir := vmath.V3FNormalize(direction)
	if vmath.V3FIsZero(dir) {
		return 0, false
	}
	if damageMult <= 0 {
		damageMult = 1
	}
	spec := w.Resources.Catalog.Weapon(weapon)

	e := w.CreateEntity()
	w.Components.Transform.SetComponent(e, component.TransformComponent{Position: origin, Facing: dir})
	w.Components.Projectile.SetComponent(e, component.ProjectileComponent{
		Origin:    origin,
		Direction: dir,
		Speed:     spec.ProjectileSpeed,
		Damage:    spec.Damage * damageMult,
		Size:      spec.ProjectileSize,
		Lifetime:  parameter.ProjectileLifetime,
		Weapon:    weapon,
	})
	w.AttachVisual(e, component.VisualProjectile)
	return e, true
}

// ProjectileSystem integrates projectiles and resolves the first actor each one crosses
type ProjectileSystem struct {
	world    *engine.World
	resolver *damageResolver

	statActive  *atomic.Int64
	statHits    *atomic.Int64
	statExpired *atomic.Int64

	enabled bool
}

func NewProjectileSystem(world *engine.World) engine.System {
	s := &ProjectileSystem{
		world:    world,
		resolver: newDamageResolver(world),
	}

	s.statActive = world.Resources.Status.Ints.Get("projectile.active")
	s.statHits = world.Resources.Status.Ints.Get("projectile.hits")
	s.statExpired = world.Resources.Status.Ints.Get("projectile.expired")

	s.Init()
	return s
}

func (s *ProjectileSystem) Init() {
	s.statActive.Store(0)
	s.statHits.Store(0)
	s.statExpired.Store(0)
	s.enabled = true
}

func (s *ProjectileSystem) Name() string {
	return "projectile"
}

func (s *ProjectileSystem) Priority() int {
	return parameter.PriorityProjectile
}

func (s *ProjectileSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *ProjectileSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	handleMeta(ev, s.Name(), &s.enabled)
}

func (s *ProjectileSystem) Update() {
	if !s.enabled || !s.world.Playing() {
		return
	}

	playerPos, _ := playerCenter(s.world)

	for _, e := range s.world.Components.Projectile.GetAllEntities() {
		engine.Guard(s.world, e, s.Name(), func() {
			s.step(e, playerPos)
		})
	}

	s.statActive.Store(int64(s.world.Components.Projectile.CountEntities()))
}

// step advances one projectile, at most one target is hit per tick
func (s *ProjectileSystem) step(e core.Entity, playerPos vmath.Vec3F) {
	pc, ok := s.world.Components.Projectile.GetComponent(e)
	if !ok {
		return
	}
	t, ok := s.world.Components.Transform.GetComponent(e)
	if !ok {
		s.world.DestroyEntity(e)
		return
	}

	dt := s.world.Resources.Time.DeltaTime
	stepLen := pc.Speed * dt.Seconds()
	prev := t.Position
	next := vmath.V3FAdd(prev, vmath.V3FScale(pc.Direction, stepLen))
	pc.Age += dt

	if pc.Age >= pc.Lifetime || vmath.V3FDist(next, playerPos) > parameter.ProjectileMaxRange {
		s.world.DestroyEntity(e)
		s.statExpired.Add(1)
		return
	}

	wall := s.world.Resources.Raycaster.Raycast(prev, pc.Direction, stepLen, e)
	if wall.Hit {
		next = wall.Point
	}

	if target, isBoss, at, hit := s.findTarget(prev, next, pc.Size); hit {
		s.resolveHit(e, target, isBoss, pc, at)
		return
	}

	if wall.Hit {
		if !hasPerk(s.world, component.PerkRicochet) {
			s.world.DestroyEntity(e)
			return
		}
		pc.Direction = physics.Reflect(pc.Direction, wall.Normal)
		next = vmath.V3FAdd(wall.Point, vmath.V3FScale(wall.Normal, parameter.RicochetSurfaceClearing))
	}

	t.Position = next
	t.Facing = pc.Direction
	s.world.Components.Transform.SetComponent(e, t)
	s.world.Components.Projectile.SetComponent(e, pc)
}

// findTarget sweeps the step segment; the nearest enemy wins, bosses only when no enemy is crossed
func (s *ProjectileSystem) findTarget(prev, next vmath.Vec3F, size float64) (core.Entity, bool, vmath.Vec3F, bool) {
	if e, frac, ok := s.nearest(s.world.Components.Enemy.GetAllEntities(), prev, next, parameter.EnemyHitRadius+size); ok {
		return e, false, vmath.V3FLerp(prev, next, frac), true
	}
	if e, frac, ok := s.nearest(s.world.Components.Boss.GetAllEntities(), prev, next, parameter.BossHitRadius+size); ok {
		return e, true, vmath.V3FLerp(prev, next, frac), true
	}
	return 0, false, vmath.Vec3F{}, false
}

func (s *ProjectileSystem) nearest(candidates []core.Entity, prev, next vmath.Vec3F, radius float64) (core.Entity, float64, bool) {
	var best core.Entity
	bestFrac, found := 0.0, false
	for _, target := range candidates {
		c, ok := s.world.Components.Combat.GetComponent(target)
		if !ok || !c.Alive() {
			continue
		}
		t, ok := s.world.Components.Transform.GetComponent(target)
		if !ok {
			continue
		}
		frac, ok := physics.SweepSphere(prev, next, t.Position, radius)
		if !ok || (found && frac >= bestFrac) {
			continue
		}
		best, bestFrac, found = target, frac, true
	}
	return best, bestFrac, found
}

// resolveHit removes the projectile and applies its damage at once, splashing with explosive rounds
// A target killed here is gone before contact damage runs this tick
func (s *ProjectileSystem) resolveHit(e, target core.Entity, isBoss bool, pc component.ProjectileComponent, at vmath.Vec3F) {
	player := s.world.PlayerEntity()
	amount := pc.Damage
	if isBoss && hasPerk(s.world, component.PerkArmorPiercing) {
		amount *= parameter.PerkArmorPiercingBonus
	}

	s.world.DestroyEntity(e)
	s.statHits.Add(1)
	s.world.PlaySound(core.SoundHit)
	s.hit(target, player, amount)

	if !hasPerk(s.world, component.PerkExplosiveRounds) {
		return
	}
	splash := pc.Damage * parameter.PerkExplosiveSplash
	radiusSq := parameter.PerkExplosiveRadius * parameter.PerkExplosiveRadius
	for _, other := range s.world.Components.Enemy.GetAllEntities() {
		if other == target {
			continue
		}
		if t, ok := s.world.Components.Transform.GetComponent(other); ok && vmath.V3FDistSq(t.Position, at) <= radiusSq {
			s.hit(other, player, splash)
		}
	}
}

// hit applies damage to one actor, a fault while killing it removes that actor only
func (s *ProjectileSystem) hit(target, source core.Entity, amount float64) {
	engine.Guard(s.world, target, s.Name(), func() {
		s.resolver.apply(&event.DamageRequestPayload{
			Target: target,
			Source: source,
			Amount: amount,
			Kind:   event.DamageProjectile,
		})
	})
}
