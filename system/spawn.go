package system

import (
	"time"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/loot"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// SpawnEnemy creates a regular enemy from its archetype
func SpawnEnemy(w *engine.World, t component.EnemyType, pos vmath.Vec3F) core.Entity {
	arch := w.Resources.Catalog.Enemies[t]

	e := w.CreateEntity()
	w.Components.Transform.SetComponent(e, component.TransformComponent{Position: pos, Facing: vmath.Vec3F{Z: 1}})
	w.Components.Combat.SetComponent(e, component.CombatComponent{
		Health:    arch.Health,
		MaxHealth: arch.Health,
		Speed:     arch.Speed,
		BaseSpeed: arch.Speed,
	})
	w.Components.Enemy.SetComponent(e, component.EnemyComponent{Type: t})
	w.AttachVisual(e, component.VisualEnemy)
	return e
}

// SpawnBoss creates a boss with its archetype ability list
func SpawnBoss(w *engine.World, t component.BossType, pos vmath.Vec3F) core.Entity {
	arch := w.Resources.Catalog.Bosses[t]

	e := w.CreateEntity()
	w.Components.Transform.SetComponent(e, component.TransformComponent{Position: pos, Facing: vmath.Vec3F{Z: 1}})
	w.Components.Combat.SetComponent(e, component.CombatComponent{
		Health:    arch.Health,
		MaxHealth: arch.Health,
		Speed:     arch.Speed,
		BaseSpeed: arch.Speed,
	})

	abilities := make([]component.BossAbility, len(arch.Abilities))
	copy(abilities, arch.Abilities)
	w.Components.Boss.SetComponent(e, component.BossComponent{
		Type:           t,
		Damage:         arch.Damage,
		AttackRange:    arch.AttackRange,
		AttackCooldown: arch.AttackCooldown,
		Abilities:      abilities,
	})
	w.AttachVisual(e, component.VisualBoss)
	return e
}

// SpawnIndicator creates a telegraph warning owned by a boss
func SpawnIndicator(w *engine.World, owner core.Entity, ability component.BossAbility, pos vmath.Vec3F, radius float64, delay time.Duration) core.Entity {
	e := w.CreateEntity()
	w.Components.Transform.SetComponent(e, component.TransformComponent{Position: pos})
	w.Components.Indicator.SetComponent(e, component.IndicatorComponent{
		Owner:     owner,
		Ability:   ability,
		Radius:    radius,
		Remaining: delay,
		Total:     delay,
	})
	w.AttachVisual(e, component.VisualIndicator)
	return e
}

// SpawnWorldLoot places a dropped item in the arena
func SpawnWorldLoot(w *engine.World, d loot.Drop) core.Entity {
	e := w.CreateEntity()
	w.Components.Transform.SetComponent(e, component.TransformComponent{Position: d.Position})
	w.Components.Loot.SetComponent(e, component.WorldLootComponent{Item: d.Item})
	w.AttachVisual(e, component.VisualLoot)
	return e
}

// SpawnPowerup places an instant pickup
func SpawnPowerup(w *engine.World, t component.PowerupType, pos vmath.Vec3F) core.Entity {
	e := w.CreateEntity()
	w.Components.Transform.SetComponent(e, component.TransformComponent{Position: pos})
	w.Components.Powerup.SetComponent(e, component.PowerupComponent{Type: t, Bob: pos})
	w.AttachVisual(e, component.VisualPowerup)
	return e
}
