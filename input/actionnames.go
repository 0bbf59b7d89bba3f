package input

import (
	"strconv"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/parameter"
)

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve YAML action strings to bindings
var actionRegistry map[string]KeyEntry

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]KeyEntry {
	r := map[string]KeyEntry{
		// Unbind sentinel
		"none": {},

		// System
		"quit":        {Intent: IntentQuit},
		"toggle_mute": {Intent: IntentToggleMute},
		"restart":     {Intent: IntentRestart},
		"pause":       {Intent: IntentTogglePause},

		// Movement
		"move_forward": {Intent: IntentMoveForward},
		"move_back":    {Intent: IntentMoveBack},
		"strafe_left":  {Intent: IntentStrafeLeft},
		"strafe_right": {Intent: IntentStrafeRight},
		"jump":         {Intent: IntentJump},
		"slide":        {Intent: IntentSlide},
		"grapple":      {Intent: IntentGrapple},

		// Combat
		"fire":   {Intent: IntentFire},
		"reload": {Intent: IntentReload},

		// View
		"look_left":  {Intent: IntentLookLeft},
		"look_right": {Intent: IntentLookRight},
		"look_up":    {Intent: IntentLookUp},
		"look_down":  {Intent: IntentLookDown},

		// Inventory
		"sort_rarity":   {Intent: IntentSortInventory, Arg: int(component.SortByRarity)},
		"sort_category": {Intent: IntentSortInventory, Arg: int(component.SortByCategory)},
		"sort_name":     {Intent: IntentSortInventory, Arg: int(component.SortByName)},
	}

	for i := 0; i < parameter.InventoryCapacity; i++ {
		r["use_item_"+strconv.Itoa(i + 1)] = KeyEntry{Intent: IntentUseItem, Arg: i}
	}

	// Typed names come from the component enums so config stays in sync with the catalog
	for t := component.WeaponType(0); t < component.WeaponTypeCount; t++ {
		r["weapon_"+t.String()] = KeyEntry{Intent: IntentSwitchWeapon, Arg: int(t)}
		r["buy_weapon_"+t.String()] = KeyEntry{Intent: IntentBuyWeapon, Arg: int(t)}
	}
	for t := component.ArmorLight; t < component.ArmorTypeCount; t++ {
		r["buy_armor_"+t.String()] = KeyEntry{Intent: IntentBuyArmor, Arg: int(t)}
	}
	for t := component.PerkType(0); t < component.PerkTypeCount; t++ {
		r["buy_perk_"+t.String()] = KeyEntry{Intent: IntentBuyPerk, Arg: int(t)}
	}

	return r
}

// ActionEntry looks up an action by canonical name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}

