package parameter

// Perk effects, applied once on purchase
const (
	PerkHealthBoostAmount   = 25.0
	PerkSpeedMultiplier     = 1.2
	PerkDamageMultiplier    = 1.25
	PerkAmmoMultiplier      = 1.5
	PerkReloadMultiplier    = 0.7
	PerkGrappleMultiplier   = 1.5
	PerkWallRunMultiplier   = 2.0
	PerkRegenBonus          = 1.5 // hp/s added to base regen
	PerkArmorPiercingBonus  = 1.25
	PerkExplosiveRadius     = 3.0
	PerkExplosiveSplash     = 0.5
	RicochetSurfaceClearing = 0.01 // Offset off the wall after a bounce
)
