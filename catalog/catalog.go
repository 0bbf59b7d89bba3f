// Package catalog holds the read-only game tables: weapons, armor, perks, loot and archetypes
// Tables are built once before simulation starts and never mutated afterwards
package catalog

import (
	"time"

	"github.com/lixenwraith/wave-fighter/component"
)

// WeaponSpec is the immutable stat block of a weapon
type WeaponSpec struct {
	Damage          float64
	FireInterval    time.Duration
	AmmoCapacity    int
	ReloadTime      time.Duration
	ProjectileSpeed float64
	ProjectileSize  float64
	Cost            int
	Rarity          component.Rarity
}

// ArmorSpec is the damage multiplier applied to incoming player damage
type ArmorSpec struct {
	Protection float64
	Cost       int
}

// PerkSpec prices a perk
type PerkSpec struct {
	Name        string
	Description string
	Cost        int
}

// EnemyArchetype is the base stat block of a regular enemy
type EnemyArchetype struct {
	Speed  float64
	Health float64
}

// BossArchetype is the base stat block and ability set of a boss
type BossArchetype struct {
	Speed          float64
	Health         float64
	Damage         float64
	AttackRange    float64
	AttackCooldown time.Duration
	Abilities      []component.BossAbility
}

// AbilitySpec is the telegraph timing of a boss ability
type AbilitySpec struct {
	Delay time.Duration

	// Radius is the telegraph ring size, zero uses the boss attack range
	Radius float64
}

// Reward is score and currency awarded on a kill
type Reward struct {
	Score int
	Money int
}

// Catalog is the complete static configuration
type Catalog struct {
	Weapons   [component.WeaponTypeCount]WeaponSpec
	Armors    [component.ArmorTypeCount]ArmorSpec
	Perks     [component.PerkTypeCount]PerkSpec
	Enemies   [component.EnemyTypeCount]EnemyArchetype
	Bosses    [component.BossTypeCount]BossArchetype
	Abilities [component.AbilityCount]AbilitySpec

	Loot []component.LootItem

	EnemyReward Reward
	BossReward  Reward

	// lootByRarity is derived from Loot by index()
	lootByRarity [component.RarityCount][]component.LootItem
}

// index rebuilds derived lookup tables after Loot changes
func (c *Catalog) index() {
	for i := range c.lootByRarity {
		c.lootByRarity[i] = nil
	}
	for _, it := range c.Loot {
		if it.Rarity < component.RarityCount {
			c.lootByRarity[it.Rarity] = append(c.lootByRarity[it.Rarity], it)
		}
	}
}

// LootPool returns the catalog entries of a rarity, empty when none
func (c *Catalog) LootPool(r component.Rarity) []component.LootItem {
	if r >= component.RarityCount {
		return nil
	}
	return c.lootByRarity[r]
}

// WeaponsOfRarity returns weapon types of exactly rarity r in declaration order
func (c *Catalog) WeaponsOfRarity(r component.Rarity) []component.WeaponType {
	var result []component.WeaponType
	for i := range c.Weapons {
		if c.Weapons[i].Rarity == r {
			result = append(result, component.WeaponType(i))
		}
	}
	return result
}

// Weapon returns the spec of w, pistol spec for out of range values
func (c *Catalog) Weapon(w component.WeaponType) WeaponSpec {
	if w >= component.WeaponTypeCount {
		return c.Weapons[component.WeaponPistol]
	}
	return c.Weapons[w]
}

// Protection returns the incoming damage multiplier for armor a
func (c *Catalog) Protection(a component.ArmorType) float64 {
	if a == component.ArmorNone || a >= component.ArmorTypeCount {
		return 1
	}
	return c.Armors[a].Protection
}

// MagazineSize is the weapon capacity scaled by an ammo multiplier, at least one round
func (c *Catalog) MagazineSize(w component.WeaponType, mult float64) int {
	n := int(float64(c.Weapon(w).AmmoCapacity) * mult)
	if n < 1 {
		n = 1
	}
	return n
}

// SetLoot replaces the loot table and rebuilds rarity pools
func (c *Catalog) SetLoot(items []component.LootItem) {
	c.Loot = items
	c.index()
}
