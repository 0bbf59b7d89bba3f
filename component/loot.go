package component

import "github.com/lixenwraith/wave-fighter/vmath"

// LootCategory discriminates how a loot item is consumed
type LootCategory uint8

const (
	LootConsumable LootCategory = iota
	LootWeapon
	LootArmor
	LootCurrency
	LootCategoryCount
)

var lootCategoryNames = [LootCategoryCount]string{"consumable", "weapon", "armor", "currency"}

func (c LootCategory) String() string {
	if c >= LootCategoryCount {
		return "unknown"
	}
	return lootCategoryNames[c]
}

// ParseLootCategory resolves a config name to a LootCategory
func ParseLootCategory(name string) (LootCategory, bool) {
	for i, n := range lootCategoryNames {
		if n == name {
			return LootCategory(i), true
		}
	}
	return 0, false
}

// Rarity is ordered from most to least common
type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityLegendary
	RarityCount
)

var rarityNames = [RarityCount]string{"common", "uncommon", "rare", "legendary"}

func (r Rarity) String() string {
	if r >= RarityCount {
		return "unknown"
	}
	return rarityNames[r]
}

// ParseRarity resolves a config name to a Rarity
func ParseRarity(name string) (Rarity, bool) {
	for i, n := range rarityNames {
		if n == name {
			return Rarity(i), true
		}
	}
	return 0, false
}

// LootEffect is the closed set of item effects
type LootEffect uint8

const (
	EffectNone LootEffect = iota
	EffectHeal50
	EffectRefillAmmo
	EffectSpeedBoostTemp
	EffectDamageBoostTemp
	EffectRandomRareWeapon
	EffectRandomLegendaryWeapon
	EffectRandomArmor
	EffectRandomMoney
	LootEffectCount
)

var lootEffectNames = [LootEffectCount]string{
	"none",
	"heal_50",
	"refill_ammo",
	"speed_boost_temp",
	"damage_boost_temp",
	"random_rare_weapon",
	"random_legendary_weapon",
	"random_armor",
	"random_money",
}

func (e LootEffect) String() string {
	if e >= LootEffectCount {
		return "unknown"
	}
	return lootEffectNames[e]
}

// ParseLootEffect resolves a config name to a LootEffect
func ParseLootEffect(name string) (LootEffect, bool) {
	for i, n := range lootEffectNames {
		if n == name {
			return LootEffect(i), true
		}
	}
	return 0, false
}

// LootItem is a catalog entry, copied by value into world drops and inventories
type LootItem struct {
	ID       string
	Name     string
	Category LootCategory
	Rarity   Rarity
	Effect   LootEffect
}

// WorldLootComponent is a dropped item lying in the arena waiting for pickup
type WorldLootComponent struct {
	Item LootItem
}

// PowerupType: instant pickups spawned with each wave
type PowerupType uint8

const (
	PowerupHealth PowerupType = iota
	PowerupAmmo
	PowerupTypeCount
)

// PowerupComponent is an instant-effect pickup
type PowerupComponent struct {
	Type PowerupType
	Bob  vmath.Vec3F // Spawn anchor, visual bobbing offsets from it
}
