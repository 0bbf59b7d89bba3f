package engine

import (
	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
)

// ComponentStore provides typed pointers to every component store of a world
type ComponentStore struct {
	// Shared
	Transform *Store[component.TransformComponent]
	Combat    *Store[component.CombatComponent]
	Visual    *Store[component.VisualComponent]

	// Player singleton
	Player    *Store[component.PlayerComponent]
	Movement  *Store[component.MovementComponent]
	Weapon    *Store[component.WeaponComponent]
	Buff      *Store[component.BuffComponent]
	Inventory *Store[component.InventoryComponent]

	// Actors
	Enemy      *Store[component.EnemyComponent]
	Boss       *Store[component.BossComponent]
	Projectile *Store[component.ProjectileComponent]
	Indicator  *Store[component.IndicatorComponent]

	// Pickups
	Loot    *Store[component.WorldLootComponent]
	Powerup *Store[component.PowerupComponent]
}

// entityRemover is the type-erased view of a Store used for bulk removal
type entityRemover interface {
	RemoveEntity(e core.Entity)
	ClearAllComponents()
}

func initComponentStores(w *World) {
	w.Components = ComponentStore{
		Transform: NewStore[component.TransformComponent](),
		Combat:    NewStore[component.CombatComponent](),
		Visual:    NewStore[component.VisualComponent](),

		Player:    NewStore[component.PlayerComponent](),
		Movement:  NewStore[component.MovementComponent](),
		Weapon:    NewStore[component.WeaponComponent](),
		Buff:      NewStore[component.BuffComponent](),
		Inventory: NewStore[component.InventoryComponent](),

		Enemy:      NewStore[component.EnemyComponent](),
		Boss:       NewStore[component.BossComponent](),
		Projectile: NewStore[component.ProjectileComponent](),
		Indicator:  NewStore[component.IndicatorComponent](),

		Loot:    NewStore[component.WorldLootComponent](),
		Powerup: NewStore[component.PowerupComponent](),
	}

	c := &w.Components
	w.allStores = []entityRemover{
		c.Transform, c.Combat, c.Visual,
		c.Player, c.Movement, c.Weapon, c.Buff, c.Inventory,
		c.Enemy, c.Boss, c.Projectile, c.Indicator,
		c.Loot, c.Powerup,
	}
}

func (w *World) removeFromAllStores(e core.Entity) {
	for _, s := range w.allStores {
		s.RemoveEntity(e)
	}
}

func (w *World) clearAllStores() {
	for _, s := range w.allStores {
		s.ClearAllComponents()
	}
}
