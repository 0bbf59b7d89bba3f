package engine

import (
	"time"

	"github.com/lixenwraith/wave-fighter/catalog"
	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/status"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// Resource holds singleton game resources, accessed via World.Resources
type Resource struct {
	// World Resource
	Time    *TimeResource
	Game    *GameStateResource
	Player  *PlayerResource
	Input   *InputResource
	Event   *EventQueueResource
	Catalog *catalog.Catalog

	// Rand is the simulation random source, seeded for reproducible runs
	Rand *vmath.FastRand

	// Telemetry
	Status *status.Registry

	// External collaborators, never nil
	Raycaster Raycaster
	Presenter Presenter
	Audio     AudioPlayer
}

// NewResource creates resources with stock tables and no-op collaborators
func NewResource() *Resource {
	return &Resource{
		Time:      &TimeResource{},
		Game:      &GameStateResource{State: NewGameState()},
		Player:    &PlayerResource{},
		Input:     &InputResource{},
		Event:     &EventQueueResource{Queue: event.NewEventQueue()},
		Catalog:   catalog.Default(),
		Rand:      vmath.NewFastRand(1),
		Status:    status.NewRegistry(),
		Raycaster: nopRaycaster{},
		Presenter: NopPresenter{},
		Audio:     nopAudio{},
	}
}

// === World Resources ===

// TimeResource wraps time data for systems
// It is updated by the ClockScheduler at the start of a tick
type TimeResource struct {
	// GameTime is the accumulated simulated time
	GameTime time.Duration

	// RealTime is the wall-clock time of the tick
	RealTime time.Time

	// DeltaTime is the duration since the last update
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
// Must be called under world lock to prevent races with system reads
func (tr *TimeResource) Update(realTime time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.GameTime += deltaTime
	tr.RealTime = realTime
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// GameStateResource wraps GameState for systems
type GameStateResource struct {
	State *GameState
}

// PlayerResource holds the player entity reference
type PlayerResource struct {
	Entity core.Entity
}

// InputSnapshot is the per-tick pure input view
// Held fields are level-triggered, Pressed fields are edges cleared after each tick
type InputSnapshot struct {
	Forward, Back, Left, Right bool

	JumpPressed    bool
	SlideHeld      bool
	SlidePressed   bool
	GrapplePressed bool
	FireHeld       bool
	ReloadPressed  bool

	// Yaw and Pitch are the view angles in radians
	Yaw   float64
	Pitch float64
}

// InputResource holds the input snapshot written by the frontend under world lock
type InputResource struct {
	InputSnapshot
}

// EndTick clears edge-triggered flags after the simulation consumed them
func (ir *InputResource) EndTick() {
	ir.JumpPressed = false
	ir.SlidePressed = false
	ir.GrapplePressed = false
	ir.ReloadPressed = false
}

// === External Collaborators ===

// RayHit is a raycast result
type RayHit struct {
	Hit    bool
	Point  vmath.Vec3F
	Normal vmath.Vec3F
	Entity core.Entity
}

// Raycaster answers world geometry queries
type Raycaster interface {
	Raycast(origin, direction vmath.Vec3F, maxDistance float64, ignore core.Entity) RayHit
}

type nopRaycaster struct{}

func (nopRaycaster) Raycast(vmath.Vec3F, vmath.Vec3F, float64, core.Entity) RayHit {
	return RayHit{}
}

// VisualHandle is an opaque frontend reference, zero is invalid
type VisualHandle uint64

// Presenter receives visual lifecycle requests, the core never renders
type Presenter interface {
	SpawnVisual(kind component.VisualKind, t component.TransformComponent) VisualHandle
	DestroyVisual(h VisualHandle)
	UpdateText(h VisualHandle, text string)
}

// NopPresenter discards all requests
type NopPresenter struct{}

func (NopPresenter) SpawnVisual(component.VisualKind, component.TransformComponent) VisualHandle {
	return 0
}
func (NopPresenter) DestroyVisual(VisualHandle)      {}
func (NopPresenter) UpdateText(VisualHandle, string) {}

// AudioPlayer defines the minimal audio interface used by game systems
// Play returns false when the sound was not played, never an error
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}

type nopAudio struct{}

func (nopAudio) Play(core.SoundType) bool { return false }
func (nopAudio) ToggleMute() bool         { return false }
func (nopAudio) IsMuted() bool            { return true }
func (nopAudio) IsRunning() bool          { return false }
