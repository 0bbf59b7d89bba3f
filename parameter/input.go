package parameter

import "time"

// Terminal Input
const (
	// InputHoldTimeout keeps a key held after its last repeat, terminals report no key release
	// Must exceed the typical autorepeat delay or movement stutters
	InputHoldTimeout = 500 * time.Millisecond

	// LookStep is the view rotation per look key press in radians
	LookStep = 0.08

	// PitchLimit clamps the view pitch in radians
	PitchLimit = 1.4
)
