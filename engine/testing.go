package engine

import (
	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// NewTestWorld creates a world with default resources for package tests
func NewTestWorld() *World {
	return NewWorld()
}

// AddTestActor creates an entity with transform and combat components
// Used by tests across packages to stage enemies, bosses and targets
func AddTestActor(w *World, pos vmath.Vec3F, health, speed float64) core.Entity {
	e := w.CreateEntity()
	w.Components.Transform.SetComponent(e, component.TransformComponent{Position: pos})
	w.Components.Combat.SetComponent(e, component.CombatComponent{
		Health:    health,
		MaxHealth: health,
		Speed:     speed,
		BaseSpeed: speed,
	})
	return e
}
