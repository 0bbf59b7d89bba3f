package engine

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/event"
)

// World owns every entity, the component stores, shared resources and the system list
//
// Two locks guard it: sysMu protects the system list, tick serializes every
// simulation mutation (scheduler step, frontend input, telemetry reads)
type World struct {
	Components ComponentStore
	Resources  *Resource

	lastID    atomic.Uint64
	allStores []entityRemover

	sysMu   sync.RWMutex
	systems []System

	tick sync.Mutex
}

func NewWorld() *World {
	w := &World{Resources: NewResource()}
	initComponentStores(w)
	return w
}

// CreateEntity hands out a fresh ID, IDs start at 1 and are never reused
func (w *World) CreateEntity() core.Entity {
	return core.Entity(w.lastID.Add(1))
}

// DestroyEntity drops e from every store at once, later systems this tick never see it
func (w *World) DestroyEntity(e core.Entity) {
	w.releaseVisual(e)
	w.removeFromAllStores(e)
}

// AttachVisual asks the presenter for a visual of kind at e's transform
func (w *World) AttachVisual(e core.Entity, kind component.VisualKind) {
	t, _ := w.Components.Transform.GetComponent(e)
	h := w.Resources.Presenter.SpawnVisual(kind, t)
	w.Components.Visual.SetComponent(e, component.VisualComponent{Kind: kind, Handle: uint64(h)})
}

func (w *World) releaseVisual(e core.Entity) {
	if vis, ok := w.Components.Visual.GetComponent(e); ok {
		w.Resources.Presenter.DestroyVisual(VisualHandle(vis.Handle))
	}
}

// Clear empties the world for a new run, the ID counter keeps climbing
func (w *World) Clear() {
	for _, e := range w.Components.Visual.GetAllEntities() {
		w.releaseVisual(e)
	}
	w.clearAllStores()
	w.Resources.Player.Entity = 0
}

// AddSystem inserts a system, equal priorities keep insertion order
func (w *World) AddSystem(s System) {
	w.sysMu.Lock()
	defer w.sysMu.Unlock()
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns the execution order
func (w *World) Systems() []System {
	w.sysMu.RLock()
	defer w.sysMu.RUnlock()
	return append([]System(nil), w.systems...)
}

// RunSafe runs fn holding the tick lock
func (w *World) RunSafe(fn func()) {
	w.tick.Lock()
	defer w.tick.Unlock()
	fn()
}

// runSystems updates each system once, the caller holds the tick lock
func (w *World) runSystems() {
	for _, s := range w.Systems() {
		s.Update()
	}
}

func (w *World) FrameNumber() int64 {
	return w.Resources.Time.FrameNumber
}

// PushEvent queues an event stamped with the current frame
func (w *World) PushEvent(t event.EventType, payload any) {
	w.Resources.Event.Queue.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   w.FrameNumber(),
	})
}

func (w *World) PlaySound(st core.SoundType) {
	w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{SoundType: st})
}

// PlayerEntity is 0 until the player spawns
func (w *World) PlayerEntity() core.Entity {
	return w.Resources.Player.Entity
}

// Playing gates gameplay mutation, false once the run is over
func (w *World) Playing() bool {
	return w.Resources.Game.State.Phase() == PhasePlaying
}
