package parameter

import "time"

// Drop chances and cumulative rarity thresholds
const (
	// LootDropChance is the probability a regular enemy drops one item
	LootDropChance = 0.15

	LootEnemyRareThreshold     = 0.05
	LootEnemyUncommonThreshold = 0.20

	LootBossLegendaryThreshold = 0.10
	LootBossRareThreshold      = 0.30
	LootBossUncommonThreshold  = 0.60

	LootBossMinItems = 2
	LootBossMaxItems = 4
)

// Effects
const (
	LootHealAmount        = 50.0
	LootCurrencyMin       = 100
	LootCurrencyMax       = 500
	LootBuffMultiplier    = 1.5
	LootBuffDuration      = 30 * time.Second
	InventoryCapacity     = 20
	PickupRadius          = 2.0
	LootScatterRadius     = 1.5
	PowerupHealAmount     = 30.0
	PowerupMinPerWave     = 1
	PowerupMaxPerWave     = 3
	PowerupSpawnHalfRange = 100.0
)
