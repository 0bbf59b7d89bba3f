package component

// PerkType identifies a permanent player upgrade bought in the shop
type PerkType uint8

const (
	PerkHealthBoost PerkType = iota
	PerkSpeedBoost
	PerkDamageBoost
	PerkAmmoCapacity
	PerkReloadSpeed
	PerkDoubleJumpEnhanced
	PerkGrappleRange
	PerkWallRunDuration
	PerkHealthRegen
	PerkArmorPiercing
	PerkExplosiveRounds
	PerkRicochet
	PerkTypeCount
)

var perkTypeNames = [PerkTypeCount]string{
	"health_boost",
	"speed_boost",
	"damage_boost",
	"ammo_capacity",
	"reload_speed",
	"double_jump_enhanced",
	"grapple_range",
	"wall_run_duration",
	"health_regen",
	"armor_piercing",
	"explosive_rounds",
	"ricochet",
}

func (t PerkType) String() string {
	if t >= PerkTypeCount {
		return "unknown"
	}
	return perkTypeNames[t]
}

// ParsePerkType resolves a config name to a PerkType
func ParsePerkType(name string) (PerkType, bool) {
	for i, n := range perkTypeNames {
		if n == name {
			return PerkType(i), true
		}
	}
	return 0, false
}
