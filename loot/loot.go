// Package loot rolls drops and applies item effects to the player
// It owns no world state; systems pass component pointers in and persist them
package loot

import (
	"github.com/lixenwraith/wave-fighter/catalog"
	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// Roller is the random source, injected so tests can force rolls
type Roller interface {
	Float64() float64
	Intn(n int) int
}

// Drop is an item with the position it lands at
type Drop struct {
	Item     component.LootItem
	Position vmath.Vec3F
}

// Target bundles the player components an effect may touch
// Nil fields make the corresponding effects no-ops
type Target struct {
	Combat *component.CombatComponent
	Weapon *component.WeaponComponent
	Buffs  *component.BuffComponent
	Player *component.PlayerComponent
}

// Engine rolls drops against the catalog loot tables
type Engine struct {
	catalog *catalog.Catalog
	rng     Roller
}

// NewEngine creates a loot engine
func NewEngine(c *catalog.Catalog, rng Roller) *Engine {
	return &Engine{catalog: c, rng: rng}
}

// EnemyRarity maps a uniform roll to a regular enemy drop rarity
func EnemyRarity(r float64) component.Rarity {
	switch {
	case r < parameter.LootEnemyRareThreshold:
		return component.RarityRare
	case r < parameter.LootEnemyUncommonThreshold:
		return component.RarityUncommon
	default:
		return component.RarityCommon
	}
}

// BossRarity maps a uniform roll to a boss drop rarity
func BossRarity(r float64) component.Rarity {
	switch {
	case r < parameter.LootBossLegendaryThreshold:
		return component.RarityLegendary
	case r < parameter.LootBossRareThreshold:
		return component.RarityRare
	case r < parameter.LootBossUncommonThreshold:
		return component.RarityUncommon
	default:
		return component.RarityCommon
	}
}

// RollDrop rolls the drops of a killed actor at pos
// Regular enemies drop at most one item, bosses drop 2 to 4 scattered around pos
func (e *Engine) RollDrop(pos vmath.Vec3F, isBoss bool) []Drop {
	if !isBoss {
		if e.rng.Float64() >= parameter.LootDropChance {
			return nil
		}
		item, ok := e.pick(EnemyRarity(e.rng.Float64()))
		if !ok {
			return nil
		}
		return []Drop{{Item: item, Position: pos}}
	}

	n := parameter.LootBossMinItems + e.rng.Intn(parameter.LootBossMaxItems-parameter.LootBossMinItems+1)
	drops := make([]Drop, 0, n)
	for i := 0; i < n; i++ {
		item, ok := e.pick(BossRarity(e.rng.Float64()))
		if !ok {
			continue
		}
		drops = append(drops, Drop{Item: item, Position: e.scatter(pos)})
	}
	return drops
}

// pick draws uniformly from the pool of rarity r
func (e *Engine) pick(r component.Rarity) (component.LootItem, bool) {
	pool := e.catalog.LootPool(r)
	if len(pool) == 0 {
		return component.LootItem{}, false
	}
	return pool[e.rng.Intn(len(pool))], true
}

func (e *Engine) scatter(pos vmath.Vec3F) vmath.Vec3F {
	spread := parameter.LootScatterRadius
	return vmath.Vec3F{
		X: pos.X + (e.rng.Float64()*2-1)*spread,
		Y: pos.Y,
		Z: pos.Z + (e.rng.Float64()*2-1)*spread,
	}
}
