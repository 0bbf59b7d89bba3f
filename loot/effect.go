package loot

import (
	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/parameter"
)

// ApplyConsumable applies a consumable effect, returns false for non-consumable effects
// Timed boosts set the multiplier and restart the countdown, never stack
func ApplyConsumable(t Target, item component.LootItem) bool {
	switch item.Effect {
	case component.EffectHeal50:
		if t.Combat != nil {
			t.Combat.Heal(parameter.LootHealAmount)
		}
	case component.EffectRefillAmmo:
		if t.Weapon != nil {
			t.Weapon.Ammo = t.Weapon.MaxAmmo
			t.Weapon.Reloading = false
			t.Weapon.ReloadRemaining = 0
		}
	case component.EffectSpeedBoostTemp:
		if t.Buffs != nil {
			t.Buffs.Apply(component.BuffSpeed, parameter.LootBuffMultiplier, parameter.LootBuffDuration)
		}
	case component.EffectDamageBoostTemp:
		if t.Buffs != nil {
			t.Buffs.Apply(component.BuffDamage, parameter.LootBuffMultiplier, parameter.LootBuffDuration)
		}
	default:
		return false
	}
	return true
}

// ApplyCurrency credits a uniform amount in the currency range, returns the amount
func (e *Engine) ApplyCurrency(p *component.PlayerComponent) int {
	amount := parameter.LootCurrencyMin + e.rng.Intn(parameter.LootCurrencyMax-parameter.LootCurrencyMin+1)
	p.Money += amount
	return amount
}

// ApplyEquipment resolves a weapon or armor effect and equips the result
func (e *Engine) ApplyEquipment(t Target, item component.LootItem) bool {
	switch item.Effect {
	case component.EffectRandomRareWeapon:
		return e.equipRandomWeapon(t, component.RarityRare)
	case component.EffectRandomLegendaryWeapon:
		return e.equipRandomWeapon(t, component.RarityLegendary)
	case component.EffectRandomArmor:
		if t.Player == nil {
			return false
		}
		// Light, Medium or Heavy
		t.Player.Armor = component.ArmorType(1 + e.rng.Intn(int(component.ArmorTypeCount)-1))
		return true
	default:
		return false
	}
}

// Apply routes an item to its handler by category
func (e *Engine) Apply(t Target, item component.LootItem) bool {
	switch item.Category {
	case component.LootConsumable:
		return ApplyConsumable(t, item)
	case component.LootCurrency:
		if t.Player == nil {
			return false
		}
		e.ApplyCurrency(t.Player)
		return true
	case component.LootWeapon, component.LootArmor:
		return e.ApplyEquipment(t, item)
	default:
		return false
	}
}

func (e *Engine) equipRandomWeapon(t Target, r component.Rarity) bool {
	if t.Weapon == nil {
		return false
	}
	pool := e.catalog.WeaponsOfRarity(r)
	if len(pool) == 0 {
		return false
	}
	w := pool[e.rng.Intn(len(pool))]
	EquipWeapon(t, e.catalog.MagazineSize(w, ammoMultiplier(t)), w)
	return true
}

// EquipWeapon marks w owned, makes it current and fills a fresh magazine
func EquipWeapon(t Target, magazine int, w component.WeaponType) {
	t.Weapon.Owned[w] = true
	t.Weapon.Current = w
	t.Weapon.MaxAmmo = magazine
	t.Weapon.Ammo = magazine
	t.Weapon.Reloading = false
	t.Weapon.ReloadRemaining = 0
	t.Weapon.FireCooldown = 0
}

func ammoMultiplier(t Target) float64 {
	if t.Player == nil || t.Player.Mods.AmmoCapacity <= 0 {
		return 1
	}
	return t.Player.Mods.AmmoCapacity
}
