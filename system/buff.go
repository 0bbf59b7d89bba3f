package system

import (
	"sync/atomic"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/parameter"
)

// BuffSystem expires temporary multipliers
// Each buff kind has one countdown, so a re-applied buff reverts exactly once
type BuffSystem struct {
	world *engine.World

	statActive  *atomic.Int64
	statExpired *atomic.Int64

	enabled bool
}

func NewBuffSystem(world *engine.World) engine.System {
	s := &BuffSystem{
		world: world,
	}

	s.statActive = world.Resources.Status.Ints.Get("buff.active")
	s.statExpired = world.Resources.Status.Ints.Get("buff.expired")

	s.Init()
	return s
}

func (s *BuffSystem) Init() {
	s.statActive.Store(0)
	s.statExpired.Store(0)
	s.enabled = true
}

func (s *BuffSystem) Name() string {
	return "buff"
}

func (s *BuffSystem) Priority() int {
	return parameter.PriorityBuff
}

func (s *BuffSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *BuffSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	handleMeta(ev, s.Name(), &s.enabled)
}

func (s *BuffSystem) Update() {
	if !s.enabled || !s.world.Playing() {
		return
	}

	dt := s.world.Resources.Time.DeltaTime
	var active int64

	for _, e := range s.world.Components.Buff.GetAllEntities() {
		s.world.Components.Buff.Mutate(e, func(b *component.BuffComponent) {
			for i := range b.Buffs {
				buff := &b.Buffs[i]
				if !buff.Active {
					continue
				}
				buff.Remaining -= dt
				if buff.Remaining <= 0 {
					*buff = component.TimedBuff{}
					s.statExpired.Add(1)
					continue
				}
				active++
			}
		})
	}

	s.statActive.Store(active)
}
