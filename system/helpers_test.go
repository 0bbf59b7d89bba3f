package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
)

// tick is the coarse step used by system tests that only care about long spans
const tick = 100 * time.Millisecond

// eventLog captures every dispatched event
type eventLog struct {
	events []event.GameEvent
}

func (l *eventLog) record(ev event.GameEvent) { l.events = append(l.events, ev) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, ev := range l.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// rig is a world with a player, the listed systems and a scheduler
type rig struct {
	t      *testing.T
	world  *engine.World
	sched  *engine.ClockScheduler
	dt     time.Duration
	player core.Entity
	log    *eventLog
}

func newRig(t *testing.T, factories ...func(*engine.World) engine.System) *rig {
	t.Helper()
	return newRigAt(t, tick, factories...)
}

// newRigAt builds a rig stepping at dt, the game update interval for hit timing tests
func newRigAt(t *testing.T, dt time.Duration, factories ...func(*engine.World) engine.System) *rig {
	t.Helper()
	w := engine.NewTestWorld()
	player := SpawnPlayer(w)
	for _, f := range factories {
		w.AddSystem(f(w))
	}
	cs := engine.NewClockScheduler(w, dt)
	log := &eventLog{}
	cs.Router().Observe(log.record)
	return &rig{t: t, world: w, sched: cs, dt: dt, player: player, log: log}
}

func (r *rig) step(n int) {
	for i := 0; i < n; i++ {
		r.sched.Step(r.dt)
	}
}

// settle dispatches events still queued after the last tick
func (r *rig) settle() {
	r.world.RunSafe(func() {
		r.sched.Router().DispatchAll(8)
	})
}

func (r *rig) push(t event.EventType, payload any) {
	r.world.RunSafe(func() {
		r.world.PushEvent(t, payload)
	})
}

func (r *rig) health() float64 {
	c, ok := r.world.Components.Combat.GetComponent(r.player)
	if !ok {
		r.t.Fatalf("Expected player combat component")
	}
	return c.Health
}

func (r *rig) playerComp() component.PlayerComponent {
	pc, ok := r.world.Components.Player.GetComponent(r.player)
	if !ok {
		r.t.Fatalf("Expected player component")
	}
	return pc
}
