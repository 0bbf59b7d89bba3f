package input

// IntentType is the semantic meaning of a key
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System, handled by the frontend loop
	IntentQuit
	IntentToggleMute
	IntentRestart
	IntentTogglePause

	// Held, level triggered while the key repeats
	IntentMoveForward
	IntentMoveBack
	IntentStrafeLeft
	IntentStrafeRight
	IntentFire
	IntentSlide

	// Edges, consumed once per tick
	IntentJump
	IntentGrapple
	IntentReload

	// View
	IntentLookLeft
	IntentLookRight
	IntentLookUp
	IntentLookDown

	// Requests, forwarded as events with Arg
	IntentSwitchWeapon
	IntentUseItem
	IntentSortInventory
	IntentBuyWeapon
	IntentBuyArmor
	IntentBuyPerk

	intentCount
)

// Intent is a resolved key press
type Intent struct {
	Type IntentType
	Arg  int
}

// IsSystem reports whether the frontend loop handles the intent
func (t IntentType) IsSystem() bool {
	return t >= IntentQuit && t <= IntentTogglePause
}

// isHeld reports level-triggered intents
func (t IntentType) isHeld() bool {
	return t >= IntentMoveForward && t <= IntentSlide
}
