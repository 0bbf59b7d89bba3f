package component

import "testing"

func TestInventoryCapacity(t *testing.T) {
	inv := NewInventory(2)

	if !inv.Add(LootItem{ID: "a"}) || !inv.Add(LootItem{ID: "b"}) {
		t.Fatal("Expected first two adds to succeed")
	}
	if inv.Add(LootItem{ID: "c"}) {
		t.Error("Expected add beyond capacity to fail")
	}
	if len(inv.Items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(inv.Items))
	}
}

func TestInventoryRemovePreservesOrder(t *testing.T) {
	inv := NewInventory(5)
	for _, id := range []string{"a", "b", "c"} {
		inv.Add(LootItem{ID: id})
	}

	if !inv.Remove("b") {
		t.Fatal("Expected remove to succeed")
	}
	if inv.Items[0].ID != "a" || inv.Items[1].ID != "c" {
		t.Errorf("Expected [a c], got [%s %s]", inv.Items[0].ID, inv.Items[1].ID)
	}
	if inv.Remove("zzz") {
		t.Error("Expected remove of unknown id to fail")
	}
	if _, ok := inv.RemoveAt(7); ok {
		t.Error("Expected out of range RemoveAt to fail")
	}
}

func TestInventorySort(t *testing.T) {
	inv := NewInventory(10)
	inv.Add(LootItem{ID: "1", Name: "Zeta", Rarity: RarityLegendary, Category: LootWeapon})
	inv.Add(LootItem{ID: "2", Name: "alpha", Rarity: RarityCommon, Category: LootConsumable})
	inv.Add(LootItem{ID: "3", Name: "Beta", Rarity: RarityRare, Category: LootArmor})

	inv.Sort(SortByRarity)
	if inv.Items[0].ID != "2" || inv.Items[2].ID != "1" {
		t.Errorf("Expected rarity order [2 3 1], got [%s %s %s]", inv.Items[0].ID, inv.Items[1].ID, inv.Items[2].ID)
	}

	inv.Sort(SortByName)
	if inv.Items[0].Name != "alpha" || inv.Items[1].Name != "Beta" {
		t.Errorf("Expected case-insensitive name order, got [%s %s]", inv.Items[0].Name, inv.Items[1].Name)
	}

	inv.Sort(SortByCategory)
	if inv.Items[0].Category != LootArmor {
		t.Errorf("Expected armor first by category name, got %s", inv.Items[0].Category)
	}
}

func TestInventoryEquip(t *testing.T) {
	inv := NewInventory(5)
	w := LootItem{ID: "w", Category: LootWeapon}
	if !inv.Equip(w) || inv.EquippedWeapon == nil || inv.EquippedWeapon.ID != "w" {
		t.Error("Expected weapon to be equipped")
	}
	if inv.Equip(LootItem{Category: LootConsumable}) {
		t.Error("Expected consumable equip to be rejected")
	}
	if !inv.Equip(LootItem{ID: "a", Category: LootArmor}) || inv.EquippedArmor.ID != "a" {
		t.Error("Expected armor to be equipped")
	}
}

func TestBuffLastWriteWins(t *testing.T) {
	var b BuffComponent
	b.Apply(BuffSpeed, 1.5, 30)
	b.Apply(BuffSpeed, 1.5, 30)
	if m := b.Multiplier(BuffSpeed); m != 1.5 {
		t.Errorf("Expected multiplier 1.5 after repeated apply, got %f", m)
	}
	if m := b.Multiplier(BuffDamage); m != 1 {
		t.Errorf("Expected inactive buff multiplier 1, got %f", m)
	}
}
