package system

import (
	"sync/atomic"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// CombatSystem applies queued damage in order during dispatch and emits contact damage in Update
type CombatSystem struct {
	world    *engine.World
	resolver *damageResolver

	statContacts *atomic.Int64

	enabled bool
}

func NewCombatSystem(world *engine.World) engine.System {
	s := &CombatSystem{
		world:    world,
		resolver: newDamageResolver(world),
	}

	s.statContacts = world.Resources.Status.Ints.Get("combat.contacts")

	s.Init()
	return s
}

func (s *CombatSystem) Init() {
	s.resolver.reset()
	s.statContacts.Store(0)
	s.enabled = true
}

func (s *CombatSystem) Name() string {
	return "combat"
}

func (s *CombatSystem) Priority() int {
	return parameter.PriorityCombat
}

func (s *CombatSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventDamageRequest,
		event.EventGameReset,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *CombatSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	handleMeta(ev, s.Name(), &s.enabled)

	if !s.enabled || !s.world.Playing() || ev.Type != event.EventDamageRequest {
		return
	}
	req, ok := ev.Payload.(*event.DamageRequestPayload)
	if !ok {
		return
	}
	// A failure while killing an enemy removes that enemy, never the player
	if req.Target == s.world.PlayerEntity() {
		s.resolver.apply(req)
		return
	}
	engine.Guard(s.world, req.Target, s.Name(), func() {
		s.resolver.apply(req)
	})
}

// Update emits contact damage and ticks per-actor combat timers
func (s *CombatSystem) Update() {
	if !s.enabled || !s.world.Playing() {
		return
	}

	dt := s.world.Resources.Time.DeltaTime
	player := s.world.PlayerEntity()
	center, ok := playerCenter(s.world)

	for _, e := range s.world.Components.Combat.GetAllEntities() {
		s.world.Components.Combat.Mutate(e, func(c *component.CombatComponent) {
			if c.HitFlashRemaining > 0 {
				c.HitFlashRemaining -= dt
			}
			if c.ContactCooldown > 0 {
				c.ContactCooldown -= dt
			}
		})
	}

	if !ok {
		return
	}

	for _, e := range s.world.Components.Enemy.GetAllEntities() {
		engine.Guard(s.world, e, s.Name(), func() {
			s.enemyContact(e, player, center)
		})
	}
	for _, e := range s.world.Components.Boss.GetAllEntities() {
		engine.Guard(s.world, e, s.Name(), func() {
			s.bossContact(e, player, center)
		})
	}
}

// enemyContact is a one-shot hit; the enemy bounces away airborne and cools down
func (s *CombatSystem) enemyContact(e, player core.Entity, center vmath.Vec3F) {
	c, ok := s.world.Components.Combat.GetComponent(e)
	if !ok || !c.Alive() || c.ContactCooldown > 0 {
		return
	}
	t, ok := s.world.Components.Transform.GetComponent(e)
	if !ok || vmath.V3FDist(t.Position, center) > parameter.EnemyContactRange {
		return
	}

	requestDamage(s.world, player, e, parameter.EnemyContactDamage, event.DamageContact, vmath.Vec3F{})

	kb := vmath.V3FScale(awayFrom(center, t.Position), parameter.EnemyKnockbackHorizontal)
	kb.Y = parameter.EnemyKnockbackVertical
	s.resolver.knockback(e, false, kb)

	c.ContactCooldown = parameter.EnemyContactCooldown
	s.world.Components.Combat.SetComponent(e, c)
	s.statContacts.Add(1)
}

// bossContact deals continuous damage every tick in range
func (s *CombatSystem) bossContact(e, player core.Entity, center vmath.Vec3F) {
	c, ok := s.world.Components.Combat.GetComponent(e)
	if !ok || !c.Alive() {
		return
	}
	t, ok := s.world.Components.Transform.GetComponent(e)
	if !ok || vmath.V3FDist(t.Position, center) > parameter.BossContactRange {
		return
	}
	requestDamage(s.world, player, e, parameter.BossContactDamage, event.DamageContact, vmath.Vec3F{})
	s.statContacts.Add(1)
}
