package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/wave-fighter/parameter"
)

// GamePhase is the top-level simulation state
type GamePhase int32

const (
	PhasePlaying GamePhase = iota
	PhaseGameOver
)

func (p GamePhase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// WavePhase is the Wave Director state
type WavePhase uint8

const (
	WaveIdle WavePhase = iota
	WaveSpawning
	WaveActive
	WaveCleared
)

func (p WavePhase) String() string {
	switch p {
	case WaveIdle:
		return "idle"
	case WaveSpawning:
		return "spawning"
	case WaveActive:
		return "active"
	case WaveCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// WaveState is the Wave Director bookkeeping
type WaveState struct {
	Number         int
	KillsThisWave  int
	EnemiesPerWave int
	Phase          WavePhase
	NextSpawnIn    time.Duration
	BossDue        bool
}

// GameState is the mutable run state shared by systems
// Phase is atomic so frontends can poll it without the world lock
type GameState struct {
	phase  atomic.Int32
	paused atomic.Bool

	Wave WaveState

	// RunID tags telemetry and logs of this run
	RunID string
}

// NewGameState creates a state at wave 1 ready to spawn
func NewGameState() *GameState {
	gs := &GameState{}
	gs.Reset()
	return gs
}

// Reset returns to a fresh run, RunID is kept
func (gs *GameState) Reset() {
	gs.phase.Store(int32(PhasePlaying))
	gs.Wave = WaveState{
		Number:         1,
		EnemiesPerWave: parameter.WaveInitialQuota,
		Phase:          WaveIdle,
	}
}

// Phase returns the current game phase
func (gs *GameState) Phase() GamePhase {
	return GamePhase(gs.phase.Load())
}

// Paused reports whether the simulation is frozen
func (gs *GameState) Paused() bool {
	return gs.paused.Load()
}

// SetPaused freezes or unfreezes the simulation, returns false if already in that state
func (gs *GameState) SetPaused(paused bool) bool {
	return gs.paused.CompareAndSwap(!paused, paused)
}

// SetGameOver transitions to the terminal phase, returns false if already over
func (gs *GameState) SetGameOver() bool {
	return gs.phase.CompareAndSwap(int32(PhasePlaying), int32(PhaseGameOver))
}
