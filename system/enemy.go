package system

import (
	"sync/atomic"

	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/physics"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// EnemySystem moves regular enemies toward the player
// Contact damage is emitted by the combat system
type EnemySystem struct {
	world *engine.World

	statActive *atomic.Int64

	enabled bool
}

func NewEnemySystem(world *engine.World) engine.System {
	s := &EnemySystem{
		world: world,
	}

	s.statActive = world.Resources.Status.Ints.Get("enemy.active")

	s.Init()
	return s
}

func (s *EnemySystem) Init() {
	s.statActive.Store(0)
	s.enabled = true
}

func (s *EnemySystem) Name() string {
	return "enemy"
}

func (s *EnemySystem) Priority() int {
	return parameter.PriorityEnemy
}

func (s *EnemySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *EnemySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	handleMeta(ev, s.Name(), &s.enabled)
}

func (s *EnemySystem) Update() {
	if !s.enabled || !s.world.Playing() {
		return
	}

	target, ok := playerCenter(s.world)
	if !ok {
		return
	}

	for _, e := range s.world.Components.Enemy.GetAllEntities() {
		engine.Guard(s.world, e, s.Name(), func() {
			s.pursue(e, target)
		})
	}

	s.statActive.Store(int64(s.world.Components.Enemy.CountEntities()))
}

// pursue steps an enemy toward the player and settles any launch
func (s *EnemySystem) pursue(e core.Entity, target vmath.Vec3F) {
	t, ok := s.world.Components.Transform.GetComponent(e)
	if !ok {
		return
	}
	c, ok := s.world.Components.Combat.GetComponent(e)
	if !ok || !c.Alive() {
		return
	}

	dt := s.world.Resources.Time.DeltaTime
	to := vmath.V3FFlat(vmath.V3FSub(target, t.Position))
	if dist := vmath.V3FMag(to); dist > 0 {
		dir := vmath.V3FScale(to, 1/dist)
		step := c.Speed * dt.Seconds()
		if step > dist {
			step = dist
		}
		t.Position = vmath.V3FAdd(t.Position, vmath.V3FScale(dir, step))
		t.Facing = dir
	}

	t.Position = physics.IntegrateKnockback(t.Position, &t.Impulse, dt, parameter.EnemyGravity, parameter.EnemySpawnHeight)
	t.Position = clampToArena(s.world, t.Position)
	if t.Position.Y < parameter.EnemySpawnHeight {
		t.Position.Y = parameter.EnemySpawnHeight
	}

	s.world.Components.Transform.SetComponent(e, t)
}

