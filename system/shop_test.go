package system

import (
	"testing"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/parameter"
)

func TestShopPurchases(t *testing.T) {
	tests := []struct {
		name     string
		requests []event.ShopPurchasePayload
		money    int
		rejected int64
		check    func(t *testing.T, r *rig)
	}{
		{
			name:     "buy weapon equips it with a full magazine",
			requests: []event.ShopPurchasePayload{{Kind: event.ShopWeapon, Weapon: component.WeaponAssaultRifle}},
			money:    parameter.PlayerStartingMoney - 500,
			check: func(t *testing.T, r *rig) {
				wc, _ := r.world.Components.Weapon.GetComponent(r.player)
				if wc.Current != component.WeaponAssaultRifle {
					t.Errorf("Expected assault rifle equipped, got %v", wc.Current)
				}
				if !wc.Owned[component.WeaponAssaultRifle] {
					t.Errorf("Expected assault rifle owned")
				}
				if wc.Ammo != wc.MaxAmmo || wc.Ammo == 0 {
					t.Errorf("Expected full magazine, got %d/%d", wc.Ammo, wc.MaxAmmo)
				}
			},
		},
		{
			name: "owned weapon switches for free",
			requests: []event.ShopPurchasePayload{
				{Kind: event.ShopWeapon, Weapon: component.WeaponAssaultRifle},
				{Kind: event.ShopWeapon, Weapon: component.WeaponPistol},
			},
			money: parameter.PlayerStartingMoney - 500,
			check: func(t *testing.T, r *rig) {
				wc, _ := r.world.Components.Weapon.GetComponent(r.player)
				if wc.Current != component.WeaponPistol {
					t.Errorf("Expected pistol equipped, got %v", wc.Current)
				}
			},
		},
		{
			name: "insufficient funds rejected",
			requests: []event.ShopPurchasePayload{
				{Kind: event.ShopWeapon, Weapon: component.WeaponAssaultRifle},
				{Kind: event.ShopWeapon, Weapon: component.WeaponLaser},
			},
			money:    parameter.PlayerStartingMoney - 500,
			rejected: 1,
			check: func(t *testing.T, r *rig) {
				wc, _ := r.world.Components.Weapon.GetComponent(r.player)
				if wc.Owned[component.WeaponLaser] {
					t.Errorf("Expected laser not owned")
				}
			},
		},
		{
			name:     "armor purchase",
			requests: []event.ShopPurchasePayload{{Kind: event.ShopArmor, Armor: component.ArmorLight}},
			money:    parameter.PlayerStartingMoney - 300,
			check: func(t *testing.T, r *rig) {
				if got := r.playerComp().Armor; got != component.ArmorLight {
					t.Errorf("Expected light armor, got %v", got)
				}
			},
		},
		{
			name:     "no armor is not for sale",
			requests: []event.ShopPurchasePayload{{Kind: event.ShopArmor, Armor: component.ArmorNone}},
			money:    parameter.PlayerStartingMoney,
			rejected: 1,
		},
		{
			name: "perk bought once",
			requests: []event.ShopPurchasePayload{
				{Kind: event.ShopPerk, Perk: component.PerkHealthBoost},
				{Kind: event.ShopPerk, Perk: component.PerkHealthBoost},
			},
			money:    parameter.PlayerStartingMoney - 400,
			rejected: 1,
			check: func(t *testing.T, r *rig) {
				c, _ := r.world.Components.Combat.GetComponent(r.player)
				want := parameter.PlayerMaxHealth + parameter.PerkHealthBoostAmount
				if c.MaxHealth != want {
					t.Errorf("Expected max health %v, got %v", want, c.MaxHealth)
				}
				if c.Health != want {
					t.Errorf("Expected health raised to %v, got %v", want, c.Health)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, NewShopSystem)
			for i := range tt.requests {
				r.push(event.EventShopPurchaseRequest, &tt.requests[i])
			}
			r.step(1)

			if got := r.playerComp().Money; got != tt.money {
				t.Errorf("Expected money %d, got %d", tt.money, got)
			}
			if got := r.world.Resources.Status.Ints.Get("shop.rejected").Load(); got != tt.rejected {
				t.Errorf("Expected %d rejected, got %d", tt.rejected, got)
			}
			if tt.check != nil {
				tt.check(t, r)
			}
		})
	}
}

func TestShopIgnoredAfterGameOver(t *testing.T) {
	r := newRig(t, NewShopSystem)
	r.world.Resources.Game.State.SetGameOver()

	r.push(event.EventShopPurchaseRequest, &event.ShopPurchasePayload{Kind: event.ShopArmor, Armor: component.ArmorHeavy})
	r.step(1)

	if got := r.playerComp().Money; got != parameter.PlayerStartingMoney {
		t.Errorf("Expected money untouched after game over, got %d", got)
	}
}
