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

// BossSystem moves bosses and runs the two-phase ability scheduler
// Phase one queues the attack behind a telegraph, phase two executes it when the delay elapses
type BossSystem struct {
	world *engine.World

	statActive     *atomic.Int64
	statTelegraphs *atomic.Int64
	statExecuted   *atomic.Int64

	enabled bool
}

func NewBossSystem(world *engine.World) engine.System {
	s := &BossSystem{
		world: world,
	}

	s.statActive = world.Resources.Status.Ints.Get("boss.active")
	s.statTelegraphs = world.Resources.Status.Ints.Get("boss.telegraphs")
	s.statExecuted = world.Resources.Status.Ints.Get("boss.executed")

	s.Init()
	return s
}

func (s *BossSystem) Init() {
	s.statActive.Store(0)
	s.statTelegraphs.Store(0)
	s.statExecuted.Store(0)
	s.enabled = true
}

func (s *BossSystem) Name() string {
	return "boss"
}

func (s *BossSystem) Priority() int {
	return parameter.PriorityBoss
}

func (s *BossSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *BossSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	handleMeta(ev, s.Name(), &s.enabled)
}

func (s *BossSystem) Update() {
	if !s.enabled || !s.world.Playing() {
		return
	}

	target, ok := playerCenter(s.world)
	if !ok {
		return
	}

	for _, e := range s.world.Components.Boss.GetAllEntities() {
		engine.Guard(s.world, e, s.Name(), func() {
			s.step(e, target)
		})
	}

	s.statActive.Store(int64(s.world.Components.Boss.CountEntities()))
}

func (s *BossSystem) step(e core.Entity, target vmath.Vec3F) {
	b, ok := s.world.Components.Boss.GetComponent(e)
	if !ok {
		return
	}
	c, ok := s.world.Components.Combat.GetComponent(e)
	if !ok || !c.Alive() {
		return
	}
	t, ok := s.world.Components.Transform.GetComponent(e)
	if !ok {
		return
	}

	dt := s.world.Resources.Time.DeltaTime

	// Advance while out of attack range, otherwise hold for contact damage
	to := vmath.V3FFlat(vmath.V3FSub(target, t.Position))
	if dist := vmath.V3FMag(to); dist > b.AttackRange {
		dir := vmath.V3FScale(to, 1/dist)
		t.Position = clampToArena(s.world, vmath.V3FAdd(t.Position, vmath.V3FScale(dir, c.Speed*dt.Seconds())))
		t.Facing = dir
		s.world.Components.Transform.SetComponent(e, t)
	}

	// Phase two
	if b.Pending != nil {
		b.Pending.Remaining -= dt
		if b.Pending.Remaining <= 0 {
			queued := *b.Pending
			b.Pending = nil
			s.world.Components.Boss.SetComponent(e, b)
			s.execute(e, queued)
			// Execution may move or kill the boss
			if fresh, ok := s.world.Components.Boss.GetComponent(e); ok {
				b = fresh
			} else {
				return
			}
		}
	}

	// Timer keeps accumulating while a queued attack blocks dispatch
	b.AttackTimer += dt
	if b.AttackTimer >= b.AttackCooldown && b.Pending == nil && len(b.Abilities) > 0 {
		ability := b.Abilities[s.world.Resources.Rand.Intn(len(b.Abilities))]
		b.Pending = s.telegraph(e, &b, ability, target)
		b.AttackTimer = 0
	}

	s.world.Components.Boss.SetComponent(e, b)
}

// telegraph spawns the warning indicator and returns the queued attack
func (s *BossSystem) telegraph(e core.Entity, b *component.BossComponent, ability component.BossAbility, target vmath.Vec3F) *component.QueuedAttack {
	spec := s.world.Resources.Catalog.Abilities[ability]
	radius := spec.Radius
	if radius <= 0 {
		radius = b.AttackRange
	}

	bossPos, _ := s.world.Components.Transform.GetComponent(e)
	at := bossPos.Position
	// Aimed abilities mark the captured player position
	if ability == component.AbilityCharge || ability == component.AbilityTeleport {
		at = target
	}

	indicator := SpawnIndicator(s.world, e, ability, vmath.Vec3F{X: at.X, Z: at.Z}, radius, spec.Delay)
	labelVisual(s.world, e, ability.String())

	s.statTelegraphs.Add(1)
	s.world.PushEvent(event.EventBossAbilityTelegraph, &event.BossAbilityPayload{Boss: e, Ability: ability})
	s.world.PlaySound(core.SoundTelegraph)

	return &component.QueuedAttack{
		Ability:   ability,
		Remaining: spec.Delay,
		Indicator: indicator,
		Target:    target,
	}
}

// execute resolves a queued attack, a missing boss makes it a no-op
func (s *BossSystem) execute(e core.Entity, queued component.QueuedAttack) {
	if queued.Indicator != 0 {
		s.world.DestroyEntity(queued.Indicator)
	}
	labelVisual(s.world, e, "")

	b, ok := s.world.Components.Boss.GetComponent(e)
	if !ok {
		return
	}
	c, ok := s.world.Components.Combat.GetComponent(e)
	if !ok || !c.Alive() {
		return
	}

	executeAbility(s.world, e, &b, queued)

	s.statExecuted.Add(1)
	s.world.PushEvent(event.EventBossAbilityExecute, &event.BossAbilityPayload{Boss: e, Ability: queued.Ability})
	s.world.PlaySound(core.SoundBossImpact)
}
