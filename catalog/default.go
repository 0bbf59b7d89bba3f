package catalog

import (
	"time"

	"github.com/lixenwraith/wave-fighter/component"
)

// Default returns the stock tables
func Default() *Catalog {
	c := &Catalog{
		Weapons: [component.WeaponTypeCount]WeaponSpec{
			component.WeaponPistol: {
				Damage: 25, FireInterval: 500 * time.Millisecond, AmmoCapacity: 12,
				ReloadTime: 2 * time.Second, ProjectileSpeed: 50, ProjectileSize: 0.1,
				Cost: 0, Rarity: component.RarityCommon,
			},
			component.WeaponAssaultRifle: {
				Damage: 35, FireInterval: 100 * time.Millisecond, AmmoCapacity: 30,
				ReloadTime: 2500 * time.Millisecond, ProjectileSpeed: 60, ProjectileSize: 0.08,
				Cost: 500, Rarity: component.RarityRare,
			},
			component.WeaponLaser: {
				Damage: 50, FireInterval: 300 * time.Millisecond, AmmoCapacity: 20,
				ReloadTime: 3 * time.Second, ProjectileSpeed: 80, ProjectileSize: 0.06,
				Cost: 800, Rarity: component.RarityLegendary,
			},
		},

		Armors: [component.ArmorTypeCount]ArmorSpec{
			component.ArmorNone:   {Protection: 1, Cost: 0},
			component.ArmorLight:  {Protection: 0.8, Cost: 300},
			component.ArmorMedium: {Protection: 0.6, Cost: 600},
			component.ArmorHeavy:  {Protection: 0.4, Cost: 1000},
		},

		Perks: [component.PerkTypeCount]PerkSpec{
			component.PerkHealthBoost:        {"Health Boost", "Increase max health by 25", 400},
			component.PerkSpeedBoost:         {"Speed Boost", "Increase movement speed by 20%", 400},
			component.PerkDamageBoost:        {"Damage Boost", "Increase weapon damage by 25%", 500},
			component.PerkAmmoCapacity:       {"Ammo Capacity", "Increase ammo capacity by 50%", 300},
			component.PerkReloadSpeed:        {"Reload Speed", "Decrease reload time by 30%", 300},
			component.PerkDoubleJumpEnhanced: {"Enhanced Double Jump", "Double jump now has 3 charges", 350},
			component.PerkGrappleRange:       {"Extended Grapple", "Increase grapple range by 50%", 300},
			component.PerkWallRunDuration:    {"Wall Run Master", "Increase wall run duration by 100%", 300},
			component.PerkHealthRegen:        {"Health Regeneration", "Slowly regenerate health over time", 450},
			component.PerkArmorPiercing:      {"Armor Piercing", "Bullets deal 25% more to bosses", 500},
			component.PerkExplosiveRounds:    {"Explosive Rounds", "Bullets splash nearby enemies", 700},
			component.PerkRicochet:           {"Ricochet", "Bullets bounce off walls", 600},
		},

		Enemies: [component.EnemyTypeCount]EnemyArchetype{
			component.EnemyGrunt:   {Speed: 7.5, Health: 50},
			component.EnemyBrute:   {Speed: 4.5, Health: 150},
			component.EnemyCrawler: {Speed: 10.5, Health: 30},
		},

		Bosses: [component.BossTypeCount]BossArchetype{
			component.BossTitan: {
				Speed: 3, Health: 500, Damage: 40, AttackRange: 8, AttackCooldown: 4 * time.Second,
				Abilities: []component.BossAbility{component.AbilityGroundSlam, component.AbilityCharge},
			},
			component.BossWarlock: {
				Speed: 2, Health: 400, Damage: 35, AttackRange: 12, AttackCooldown: 3 * time.Second,
				Abilities: []component.BossAbility{component.AbilityMagicBurst, component.AbilityTeleport},
			},
			component.BossBehemoth: {
				Speed: 4, Health: 600, Damage: 50, AttackRange: 6, AttackCooldown: 5 * time.Second,
				Abilities: []component.BossAbility{component.AbilityRoar, component.AbilityStomp},
			},
		},

		Abilities: [component.AbilityCount]AbilitySpec{
			component.AbilityGroundSlam: {Delay: 2 * time.Second},
			component.AbilityCharge:     {Delay: 1500 * time.Millisecond, Radius: 3},
			component.AbilityMagicBurst: {Delay: 1500 * time.Millisecond},
			component.AbilityTeleport:   {Delay: 500 * time.Millisecond, Radius: 3},
			component.AbilityRoar:       {Delay: 1500 * time.Millisecond},
			component.AbilityStomp:      {Delay: 1 * time.Second},
		},

		Loot: []component.LootItem{
			{ID: "health_potion", Name: "Health Potion", Category: component.LootConsumable, Rarity: component.RarityCommon, Effect: component.EffectHeal50},
			{ID: "ammo_pack", Name: "Ammo Pack", Category: component.LootConsumable, Rarity: component.RarityCommon, Effect: component.EffectRefillAmmo},
			{ID: "speed_boost", Name: "Speed Boost", Category: component.LootConsumable, Rarity: component.RarityUncommon, Effect: component.EffectSpeedBoostTemp},
			{ID: "damage_boost", Name: "Damage Boost", Category: component.LootConsumable, Rarity: component.RarityUncommon, Effect: component.EffectDamageBoostTemp},
			{ID: "rare_weapon", Name: "Rare Weapon", Category: component.LootWeapon, Rarity: component.RarityRare, Effect: component.EffectRandomRareWeapon},
			{ID: "legendary_weapon", Name: "Legendary Weapon", Category: component.LootWeapon, Rarity: component.RarityLegendary, Effect: component.EffectRandomLegendaryWeapon},
			{ID: "armor_piece", Name: "Armor Piece", Category: component.LootArmor, Rarity: component.RarityUncommon, Effect: component.EffectRandomArmor},
			{ID: "money_bag", Name: "Money Bag", Category: component.LootCurrency, Rarity: component.RarityCommon, Effect: component.EffectRandomMoney},
		},

		EnemyReward: Reward{Score: 10, Money: 25},
		BossReward:  Reward{Score: 100, Money: 200},
	}
	c.index()
	return c
}
