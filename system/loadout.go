package system

import (
	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/loot"
)

// loadout is a working copy of the player components touched by items and purchases
type loadout struct {
	entity core.Entity

	combat    component.CombatComponent
	weapon    component.WeaponComponent
	buffs     component.BuffComponent
	player    component.PlayerComponent
	inventory component.InventoryComponent
	movement  component.MovementComponent
}

// loadPlayer copies the player components, false when the player is missing
func loadPlayer(w *engine.World) (*loadout, bool) {
	e := w.PlayerEntity()
	l := &loadout{entity: e}

	var ok bool
	if l.combat, ok = w.Components.Combat.GetComponent(e); !ok {
		return nil, false
	}
	if l.player, ok = w.Components.Player.GetComponent(e); !ok {
		return nil, false
	}
	l.weapon, _ = w.Components.Weapon.GetComponent(e)
	l.buffs, _ = w.Components.Buff.GetComponent(e)
	l.inventory, _ = w.Components.Inventory.GetComponent(e)
	l.movement, _ = w.Components.Movement.GetComponent(e)
	return l, true
}

// target exposes the copy to the loot effect handlers
func (l *loadout) target() loot.Target {
	return loot.Target{
		Combat: &l.combat,
		Weapon: &l.weapon,
		Buffs:  &l.buffs,
		Player: &l.player,
	}
}

// save writes the copy back
func (l *loadout) save(w *engine.World) {
	w.Components.Combat.SetComponent(l.entity, l.combat)
	w.Components.Weapon.SetComponent(l.entity, l.weapon)
	w.Components.Buff.SetComponent(l.entity, l.buffs)
	w.Components.Player.SetComponent(l.entity, l.player)
	w.Components.Inventory.SetComponent(l.entity, l.inventory)
	w.Components.Movement.SetComponent(l.entity, l.movement)
}
