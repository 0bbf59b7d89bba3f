package component

import (
	"time"
)

// WeaponType: pistol (sidearm), assault rifle (automatic), laser (high velocity)
type WeaponType uint8

const (
	WeaponPistol WeaponType = iota
	WeaponAssaultRifle
	WeaponLaser
	WeaponTypeCount
)

var weaponTypeNames = [WeaponTypeCount]string{"pistol", "assault_rifle", "laser"}

func (t WeaponType) String() string {
	if t >= WeaponTypeCount {
		return "unknown"
	}
	return weaponTypeNames[t]
}

// ParseWeaponType resolves a config name to a WeaponType
func ParseWeaponType(name string) (WeaponType, bool) {
	for i, n := range weaponTypeNames {
		if n == name {
			return WeaponType(i), true
		}
	}
	return 0, false
}

// WeaponComponent tracks the player's active weapon and magazine
type WeaponComponent struct {
	Current WeaponType
	Owned   [WeaponTypeCount]bool

	Ammo    int
	MaxAmmo int

	// FireCooldown blocks the trigger until it reaches zero
	FireCooldown time.Duration

	Reloading       bool
	ReloadRemaining time.Duration
}
