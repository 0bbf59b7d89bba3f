package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/event"
)

// KeyEntry binds a key to an intent and its argument
type KeyEntry struct {
	Intent IntentType
	Arg    int
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Printable keys, matched case-insensitively
	Runes map[rune]KeyEntry

	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]KeyEntry{
			'w': {Intent: IntentMoveForward},
			's': {Intent: IntentMoveBack},
			'a': {Intent: IntentStrafeLeft},
			'd': {Intent: IntentStrafeRight},
			' ': {Intent: IntentJump},
			'c': {Intent: IntentSlide},
			'e': {Intent: IntentGrapple},
			'r': {Intent: IntentReload},
			'f': {Intent: IntentFire},

			'j': {Intent: IntentLookLeft},
			'l': {Intent: IntentLookRight},
			'i': {Intent: IntentLookUp},
			'k': {Intent: IntentLookDown},

			'1': {Intent: IntentSwitchWeapon, Arg: int(component.WeaponPistol)},
			'2': {Intent: IntentSwitchWeapon, Arg: int(component.WeaponAssaultRifle)},
			'3': {Intent: IntentSwitchWeapon, Arg: int(component.WeaponLaser)},

			'u': {Intent: IntentUseItem, Arg: 0},
			'o': {Intent: IntentSortInventory, Arg: int(component.SortByRarity)},

			'm': {Intent: IntentToggleMute},
			'q': {Intent: IntentQuit},
		},

		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentTogglePause},
			tcell.KeyCtrlR:  {Intent: IntentRestart},
			tcell.KeyEnter:  {Intent: IntentFire},
			tcell.KeyLeft:   {Intent: IntentLookLeft},
			tcell.KeyRight:  {Intent: IntentLookRight},
			tcell.KeyUp:     {Intent: IntentLookUp},
			tcell.KeyDown:   {Intent: IntentLookDown},

			tcell.KeyF2: {Intent: IntentBuyWeapon, Arg: int(component.WeaponAssaultRifle)},
			tcell.KeyF3: {Intent: IntentBuyWeapon, Arg: int(component.WeaponLaser)},
			tcell.KeyF5: {Intent: IntentBuyArmor, Arg: int(component.ArmorLight)},
			tcell.KeyF6: {Intent: IntentBuyArmor, Arg: int(component.ArmorMedium)},
			tcell.KeyF7: {Intent: IntentBuyArmor, Arg: int(component.ArmorHeavy)},
			tcell.KeyF8: {Intent: IntentBuyPerk, Arg: int(component.PerkHealthBoost)},
			tcell.KeyF9: {Intent: IntentBuyPerk, Arg: int(component.PerkDamageBoost)},
		},
	}
}

// Lookup resolves a key event, false when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if e, ok := kt.Runes[r]; ok {
			return e, e.Intent != IntentNone
		}
		if r >= 'A' && r <= 'Z' {
			e, ok := kt.Runes[r+('a'-'A')]
			return e, ok && e.Intent != IntentNone
		}
		return KeyEntry{}, false
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok && e.Intent != IntentNone
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		Runes:       make(map[rune]KeyEntry, len(kt.Runes)),
		SpecialKeys: make(map[tcell.Key]KeyEntry, len(kt.SpecialKeys)),
	}
	for k, v := range kt.Runes {
		out.Runes[k] = v
	}
	for k, v := range kt.SpecialKeys {
		out.SpecialKeys[k] = v
	}
	return out
}

// requestEvent converts a request intent into its game event
func requestEvent(in Intent) (event.EventType, any, bool) {
	switch in.Type {
	case IntentSwitchWeapon:
		return event.EventWeaponSwitchRequest, &event.WeaponSwitchPayload{Weapon: component.WeaponType(in.Arg)}, true
	case IntentUseItem:
		return event.EventInventoryUseRequest, &event.InventoryUsePayload{Index: in.Arg}, true
	case IntentSortInventory:
		return event.EventInventorySortRequest, &event.InventorySortPayload{Key: component.SortKey(in.Arg)}, true
	case IntentBuyWeapon:
		return event.EventShopPurchaseRequest, &event.ShopPurchasePayload{Kind: event.ShopWeapon, Weapon: component.WeaponType(in.Arg)}, true
	case IntentBuyArmor:
		return event.EventShopPurchaseRequest, &event.ShopPurchasePayload{Kind: event.ShopArmor, Armor: component.ArmorType(in.Arg)}, true
	case IntentBuyPerk:
		return event.EventShopPurchaseRequest, &event.ShopPurchasePayload{Kind: event.ShopPerk, Perk: component.PerkType(in.Arg)}, true
	}
	return 0, nil, false
}
