package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the simulation tick interval
	GameUpdateInterval = 16 * time.Millisecond

	// MaxDeltaTime caps a single tick step after stalls (debugger, suspend)
	MaxDeltaTime = 100 * time.Millisecond

	// TelemetryInterval is the spectator snapshot broadcast period
	TelemetryInterval = 250 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the preallocated event backlog, the queue grows past it
	EventQueueSize = 2048
)

// Arena
const (
	// ArenaHalfExtent bounds player movement on X and Z (±N)
	ArenaHalfExtent = 150.0

	// ArenaCeiling is the highest Y the player can reach
	ArenaCeiling = 60.0
)
