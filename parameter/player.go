package parameter

import "time"

// Player Base Stats
const (
	PlayerMaxHealth     = 100.0
	PlayerStartingMoney = 1000
	PlayerBaseSpeed     = 7.5 // units/sec

	// PlayerEyeHeight is the view origin offset above the feet
	PlayerEyeHeight = 1.5

	// PlayerHealthRegen is hit points regenerated per second
	PlayerHealthRegen = 0.5
)

// Jumping & Gravity
const (
	// GroundThreshold is the Y at or below which the player counts as grounded
	GroundThreshold = 0.1

	// JumpImpulse is the upward velocity added by a jump (units/sec)
	JumpImpulse = 9.0

	// Gravity is the downward acceleration (units/sec²)
	Gravity = 20.0

	// MaxJumpCharges is the ground jump plus one air jump
	MaxJumpCharges = 2

	// MaxJumpChargesEnhanced applies with the double_jump_enhanced perk
	MaxJumpChargesEnhanced = 3
)

// Wall Run
const (
	WallRunSpeed = 12.0

	// WallRunDuration is the force-exit limit without perks
	WallRunDuration = 2 * time.Second

	// WallRunDetectRange is the max distance to a wall surface
	WallRunDetectRange = 3.0

	// WallRunMinHeight is the minimum Y for the player to count as airborne for wall runs
	WallRunMinHeight = 0.5
)

// Slide
const (
	SlideSpeed    = 12.0
	SlideDuration = 1 * time.Second
)

// Grapple
const (
	GrappleSpeed         = 25.0
	GrappleRange         = 50.0
	GrappleCooldown      = 1 * time.Second
	GrappleArrivalRadius = 3.0
)
