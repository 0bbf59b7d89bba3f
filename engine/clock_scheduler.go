package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/parameter"
)

// maxDispatchPasses bounds event cascades resolved inside one tick
const maxDispatchPasses = 8

// ClockScheduler drives the fixed-step simulation
// Each tick: time update, event dispatch, systems in priority order, input edge reset
type ClockScheduler struct {
	world  *World
	router *event.Router

	tickInterval time.Duration
	lastTick     time.Time
	frame        int64

	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// onTick runs after each tick outside the world lock
	onTick func()

	pauseMu     sync.Mutex
	pausedSince time.Time

	statTicks  *atomic.Int64
	statEvents *atomic.Int64
	statPeak   *atomic.Int64
	statPaused *atomic.Int64
}

// NewClockScheduler creates a scheduler and registers every world system as an event handler
// Systems must be added to the world before construction
func NewClockScheduler(world *World, tickInterval time.Duration) *ClockScheduler {
	if tickInterval <= 0 {
		tickInterval = parameter.GameUpdateInterval
	}

	cs := &ClockScheduler{
		world:        world,
		router:       event.NewRouter(world.Resources.Event.Queue),
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		statTicks:    world.Resources.Status.Ints.Get("engine.ticks"),
		statEvents:   world.Resources.Status.Ints.Get("engine.events"),
		statPeak:     world.Resources.Status.Ints.Get("engine.event_peak"),
		statPaused:   world.Resources.Status.Ints.Get("engine.paused"),
	}

	for _, s := range world.Systems() {
		cs.router.Register(s)
	}

	return cs
}

// Router exposes the event router for additional observers
func (cs *ClockScheduler) Router() *event.Router {
	return cs.router
}

// SetTickHook installs a callback invoked after every tick
func (cs *ClockScheduler) SetTickHook(fn func()) {
	cs.onTick = fn
}

// Step advances the simulation by dt, caller must not hold the world lock
// A paused scheduler leaves the world untouched
func (cs *ClockScheduler) Step(dt time.Duration) {
	if !cs.Paused() {
		cs.world.RunSafe(func() {
			cs.stepLocked(time.Now(), dt)
		})
	}
	if cs.onTick != nil {
		cs.onTick()
	}
}

// Pause freezes the simulation, returns false if already paused
// Events queued while paused are dispatched on the first tick after resume
func (cs *ClockScheduler) Pause() bool {
	if !cs.world.Resources.Game.State.SetPaused(true) {
		return false
	}
	cs.pauseMu.Lock()
	cs.pausedSince = time.Now()
	cs.pauseMu.Unlock()
	cs.statPaused.Store(1)
	log.Printf("[engine] paused at frame %d", cs.statTicks.Load())
	return true
}

// Resume unfreezes the simulation, returns false if not paused
func (cs *ClockScheduler) Resume() bool {
	if !cs.world.Resources.Game.State.SetPaused(false) {
		return false
	}
	cs.pauseMu.Lock()
	d := time.Since(cs.pausedSince)
	cs.pausedSince = time.Time{}
	cs.pauseMu.Unlock()
	cs.statPaused.Store(0)
	log.Printf("[engine] resumed after %v", d.Round(time.Millisecond))
	return true
}

// TogglePause flips the pause state and returns the new one
func (cs *ClockScheduler) TogglePause() bool {
	if cs.Pause() {
		return true
	}
	cs.Resume()
	return false
}

// Paused reports whether ticks are being skipped
func (cs *ClockScheduler) Paused() bool {
	return cs.world.Resources.Game.State.Paused()
}

// stepLocked executes one tick, caller holds the world lock
func (cs *ClockScheduler) stepLocked(now time.Time, dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxDeltaTime {
		dt = parameter.MaxDeltaTime
	}

	cs.frame++
	cs.world.Resources.Time.Update(now, dt, cs.frame)

	// Events emitted last tick are applied before any system reads state
	n := cs.router.DispatchAll(maxDispatchPasses)
	cs.statEvents.Add(int64(n))
	cs.statPeak.Store(int64(cs.world.Resources.Event.Queue.Peak()))

	cs.world.runSystems()

	cs.world.Resources.Input.EndTick()
	cs.statTicks.Store(cs.frame)
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of ticks executed
func (cs *ClockScheduler) TickCount() int64 {
	return cs.statTicks.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	cs.lastTick = time.Now()

	for {
		select {
		case <-cs.stopChan:
			return
		case now := <-ticker.C:
			dt := now.Sub(cs.lastTick)
			cs.lastTick = now

			// Paused time is dropped so resume starts with a normal delta
			if !cs.Paused() {
				cs.world.RunSafe(func() {
					cs.stepLocked(now, dt)
				})
			}
			if cs.onTick != nil {
				cs.onTick()
			}
		}
	}
}
