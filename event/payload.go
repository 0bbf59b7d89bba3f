package event

import (
	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// SoundRequestPayload contains sound effect data
type SoundRequestPayload struct {
	SoundType core.SoundType `yaml:"sound_type"`
}

// DamageKind discriminates the damage source
type DamageKind uint8

const (
	DamageProjectile DamageKind = iota
	DamageContact
	DamageAbility
)

// DamageRequestPayload is a queued damage application
type DamageRequestPayload struct {
	Target core.Entity `yaml:"target"`
	Source core.Entity `yaml:"source"`
	Amount float64     `yaml:"amount"`
	Kind   DamageKind  `yaml:"kind"`

	// Knockback is an impulse applied to the target, zero for none
	Knockback vmath.Vec3F `yaml:"knockback"`
}

// ActorKilledPayload describes a destroyed enemy or boss
type ActorKilledPayload struct {
	Entity   core.Entity         `yaml:"entity"`
	Boss     bool                `yaml:"boss"`
	Enemy    component.EnemyType `yaml:"enemy"`
	BossType component.BossType  `yaml:"boss_type"`
	Position vmath.Vec3F         `yaml:"position"`
}

// PlayerDamagedPayload reports damage taken by the player
type PlayerDamagedPayload struct {
	Amount float64 `yaml:"amount"`
	Health float64 `yaml:"health"`
}

// GameOverPayload is the final run summary
type GameOverPayload struct {
	Score int `yaml:"score"`
	Wave  int `yaml:"wave"`
	Kills int `yaml:"kills"`
}

// BossAbilityPayload identifies a boss ability phase
type BossAbilityPayload struct {
	Boss    core.Entity           `yaml:"boss"`
	Ability component.BossAbility `yaml:"ability"`
}

// WavePayload describes a wave transition
type WavePayload struct {
	Number int  `yaml:"number"`
	Quota  int  `yaml:"quota"`
	Boss   bool `yaml:"boss"`
}

// LootCollectedPayload carries a picked up item
type LootCollectedPayload struct {
	Item component.LootItem `yaml:"item"`
}

// InventoryUsePayload selects an inventory slot
type InventoryUsePayload struct {
	Index int `yaml:"index"`
}

// InventorySortPayload selects the ordering
type InventorySortPayload struct {
	Key component.SortKey `yaml:"key"`
}

// ShopItemKind discriminates shop purchases
type ShopItemKind uint8

const (
	ShopWeapon ShopItemKind = iota
	ShopArmor
	ShopPerk
)

// ShopPurchasePayload names the item to buy
type ShopPurchasePayload struct {
	Kind   ShopItemKind         `yaml:"kind"`
	Weapon component.WeaponType `yaml:"weapon"`
	Armor  component.ArmorType  `yaml:"armor"`
	Perk   component.PerkType   `yaml:"perk"`
}

// WeaponSwitchPayload selects a weapon
type WeaponSwitchPayload struct {
	Weapon component.WeaponType `yaml:"weapon"`
}

// MetaSystemCommandPayload toggles a system
type MetaSystemCommandPayload struct {
	SystemName string `yaml:"system_name"`
	Enabled    bool   `yaml:"enabled"`
}

// ActorFaultPayload reports an isolated actor failure
type ActorFaultPayload struct {
	Entity core.Entity `yaml:"entity"`
	System string      `yaml:"system"`
	Reason string      `yaml:"reason"`

	// Enemy is set when the removed entity was a regular enemy, the wave still credits it
	Enemy bool `yaml:"enemy"`
}
