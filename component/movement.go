package component

import (
	"time"

	"github.com/lixenwraith/wave-fighter/vmath"
)

// MovementMode is the exclusive player locomotion state
// A single field makes WallRunning, Sliding and Grappling mutually exclusive by construction
type MovementMode uint8

const (
	ModeGrounded MovementMode = iota // Default, also covers free fall
	ModeWallRunning
	ModeSliding
	ModeGrappling
)

func (m MovementMode) String() string {
	switch m {
	case ModeGrounded:
		return "grounded"
	case ModeWallRunning:
		return "wall_running"
	case ModeSliding:
		return "sliding"
	case ModeGrappling:
		return "grappling"
	default:
		return "unknown"
	}
}

// MovementComponent is the player movement state machine data
type MovementComponent struct {
	Mode MovementMode

	// Speed is the current horizontal speed, restored to BaseSpeed on every mode exit
	Speed     float64
	BaseSpeed float64

	VerticalVelocity float64

	// Jumping
	JumpCount           int
	MaxJumpCharges      int
	DoubleJumpAvailable bool

	// WallRunning
	WallNormal      vmath.Vec3F
	WallIndex       int
	WallElapsed     time.Duration
	WallMaxDuration time.Duration

	// Sliding
	SlideRemaining time.Duration

	// Grappling
	GrappleTarget   vmath.Vec3F
	GrappleSpeed    float64
	GrappleCooldown time.Duration
}
