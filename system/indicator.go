package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/parameter"
)

// IndicatorSystem counts down telegraph visuals
// Bosses destroy their own indicator on execution; indicators of dead owners or left at zero are orphans
type IndicatorSystem struct {
	world *engine.World

	statActive  *atomic.Int64
	statOrphans *atomic.Int64

	enabled bool
}

func NewIndicatorSystem(world *engine.World) engine.System {
	s := &IndicatorSystem{
		world: world,
	}

	s.statActive = world.Resources.Status.Ints.Get("indicator.active")
	s.statOrphans = world.Resources.Status.Ints.Get("indicator.orphans")

	s.Init()
	return s
}

func (s *IndicatorSystem) Init() {
	s.statActive.Store(0)
	s.statOrphans.Store(0)
	s.enabled = true
}

func (s *IndicatorSystem) Name() string {
	return "indicator"
}

func (s *IndicatorSystem) Priority() int {
	return parameter.PriorityIndicator
}

func (s *IndicatorSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *IndicatorSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	handleMeta(ev, s.Name(), &s.enabled)
}

func (s *IndicatorSystem) Update() {
	if !s.enabled || !s.world.Playing() {
		return
	}

	dt := s.world.Resources.Time.DeltaTime
	store := s.world.Components.Indicator

	for _, e := range store.GetAllEntities() {
		engine.Guard(s.world, e, s.Name(), func() {
			s.tick(e, dt)
		})
	}

	s.statActive.Store(int64(store.CountEntities()))
}

// tick counts one indicator down and drops it once nothing will resolve it
func (s *IndicatorSystem) tick(e core.Entity, dt time.Duration) {
	store := s.world.Components.Indicator
	ind, ok := store.GetComponent(e)
	if !ok {
		return
	}
	if !s.world.Components.Boss.HasEntity(ind.Owner) {
		// Owner died before its attack resolved
		s.world.DestroyEntity(e)
		s.statOrphans.Add(1)
		return
	}
	ind.Remaining -= dt
	if ind.Remaining <= 0 && !s.queuedBy(ind.Owner, e) {
		s.world.DestroyEntity(e)
		s.statOrphans.Add(1)
		return
	}
	if ind.Remaining < 0 {
		ind.Remaining = 0
	}
	store.SetComponent(e, ind)
}

// queuedBy reports whether the boss still holds a pending attack marked by indicator e
// The boss destroys that indicator itself on execution
func (s *IndicatorSystem) queuedBy(owner, e core.Entity) bool {
	b, ok := s.world.Components.Boss.GetComponent(owner)
	return ok && b.Pending != nil && b.Pending.Indicator == e
}
