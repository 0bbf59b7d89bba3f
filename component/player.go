package component

// Modifiers are the multiplicative player stats accumulated from perks
// Identity value is 1.0 for multipliers and 0 for additive bonuses
type Modifiers struct {
	Speed        float64
	Damage       float64
	AmmoCapacity float64
	ReloadTime   float64
	GrappleRange float64
	WallRunTime  float64
	RegenBonus   float64
	JumpCharges  int
}

// DefaultModifiers returns the identity modifier set
func DefaultModifiers(jumpCharges int) Modifiers {
	return Modifiers{
		Speed:        1,
		Damage:       1,
		AmmoCapacity: 1,
		ReloadTime:   1,
		GrappleRange: 1,
		WallRunTime:  1,
		JumpCharges:  jumpCharges,
	}
}

// PlayerComponent holds the player's economy and progression
type PlayerComponent struct {
	Score int
	Money int
	Kills int

	Armor ArmorType
	Perks [PerkTypeCount]bool

	Mods Modifiers
}
