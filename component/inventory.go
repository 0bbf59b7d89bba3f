package component

import (
	"sort"
	"strings"
)

// SortKey selects the inventory ordering
type SortKey uint8

const (
	SortByRarity SortKey = iota
	SortByCategory
	SortByName
)

// InventoryComponent is a bounded ordered item collection with equipment slots
// Equipped slots hold copies of catalog items, not references to world entities
type InventoryComponent struct {
	Items    []LootItem
	Capacity int

	EquippedWeapon *LootItem
	EquippedArmor  *LootItem
}

// NewInventory creates an empty inventory with the given capacity
func NewInventory(capacity int) InventoryComponent {
	return InventoryComponent{
		Items:    make([]LootItem, 0, capacity),
		Capacity: capacity,
	}
}

// Full reports whether no more items fit
func (inv *InventoryComponent) Full() bool {
	return len(inv.Items) >= inv.Capacity
}

// Add appends an item, returns false when full
func (inv *InventoryComponent) Add(item LootItem) bool {
	if inv.Full() {
		return false
	}
	inv.Items = append(inv.Items, item)
	return true
}

// RemoveAt deletes the item at index preserving order
func (inv *InventoryComponent) RemoveAt(index int) (LootItem, bool) {
	if index < 0 || index >= len(inv.Items) {
		return LootItem{}, false
	}
	item := inv.Items[index]
	inv.Items = append(inv.Items[:index], inv.Items[index+1:]...)
	return item, true
}

// Remove deletes the first item with a matching ID
func (inv *InventoryComponent) Remove(id string) bool {
	for i := range inv.Items {
		if inv.Items[i].ID == id {
			inv.RemoveAt(i)
			return true
		}
	}
	return false
}

// ByCategory returns copies of all items in a category
func (inv *InventoryComponent) ByCategory(c LootCategory) []LootItem {
	var result []LootItem
	for _, it := range inv.Items {
		if it.Category == c {
			result = append(result, it)
		}
	}
	return result
}

// Sort orders the items in place, stable so equal keys keep pickup order
func (inv *InventoryComponent) Sort(key SortKey) {
	switch key {
	case SortByRarity:
		sort.SliceStable(inv.Items, func(i, j int) bool {
			return inv.Items[i].Rarity < inv.Items[j].Rarity
		})
	case SortByCategory:
		sort.SliceStable(inv.Items, func(i, j int) bool {
			return inv.Items[i].Category.String() < inv.Items[j].Category.String()
		})
	case SortByName:
		sort.SliceStable(inv.Items, func(i, j int) bool {
			return strings.ToLower(inv.Items[i].Name) < strings.ToLower(inv.Items[j].Name)
		})
	}
}

// Equip places a copy of item into the matching slot
// Returns false for categories without a slot
func (inv *InventoryComponent) Equip(item LootItem) bool {
	cp := item
	switch item.Category {
	case LootWeapon:
		inv.EquippedWeapon = &cp
	case LootArmor:
		inv.EquippedArmor = &cp
	default:
		return false
	}
	return true
}
