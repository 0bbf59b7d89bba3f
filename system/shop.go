package system

import (
	"sync/atomic"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/loot"
	"github.com/lixenwraith/wave-fighter/parameter"
)

// ShopSystem handles weapon, armor and perk purchases
// Requests the player cannot afford are dropped without feedback
type ShopSystem struct {
	world *engine.World

	statPurchases *atomic.Int64
	statRejected  *atomic.Int64

	enabled bool
}

func NewShopSystem(world *engine.World) engine.System {
	s := &ShopSystem{
		world: world,
	}

	s.statPurchases = world.Resources.Status.Ints.Get("shop.purchases")
	s.statRejected = world.Resources.Status.Ints.Get("shop.rejected")

	s.Init()
	return s
}

func (s *ShopSystem) Init() {
	s.statPurchases.Store(0)
	s.statRejected.Store(0)
	s.enabled = true
}

func (s *ShopSystem) Name() string {
	return "shop"
}

func (s *ShopSystem) Priority() int {
	return parameter.PriorityShop
}

func (s *ShopSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventShopPurchaseRequest,
		event.EventGameReset,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *ShopSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	handleMeta(ev, s.Name(), &s.enabled)

	if !s.enabled || !s.world.Playing() || ev.Type != event.EventShopPurchaseRequest {
		return
	}
	payload, ok := ev.Payload.(*event.ShopPurchasePayload)
	if !ok {
		return
	}

	l, ok := loadPlayer(s.world)
	if !ok {
		return
	}

	var bought bool
	switch payload.Kind {
	case event.ShopWeapon:
		bought = s.buyWeapon(l, payload.Weapon)
	case event.ShopArmor:
		bought = s.buyArmor(l, payload.Armor)
	case event.ShopPerk:
		bought = s.buyPerk(l, payload.Perk)
	}

	if !bought {
		s.statRejected.Add(1)
		return
	}
	l.save(s.world)
	s.statPurchases.Add(1)
	s.world.PlaySound(core.SoundCoin)
}

func (s *ShopSystem) Update() {}

// spend deducts cost, false when funds are short
func spend(l *loadout, cost int) bool {
	if l.player.Money < cost {
		return false
	}
	l.player.Money -= cost
	return true
}

func (s *ShopSystem) buyWeapon(l *loadout, w component.WeaponType) bool {
	if w >= component.WeaponTypeCount {
		return false
	}
	cat := s.world.Resources.Catalog
	// Owned weapons switch for free
	if !l.weapon.Owned[w] && !spend(l, cat.Weapon(w).Cost) {
		return false
	}
	loot.EquipWeapon(l.target(), cat.MagazineSize(w, l.player.Mods.AmmoCapacity), w)
	return true
}

func (s *ShopSystem) buyArmor(l *loadout, a component.ArmorType) bool {
	if a == component.ArmorNone || a >= component.ArmorTypeCount {
		return false
	}
	if !spend(l, s.world.Resources.Catalog.Armors[a].Cost) {
		return false
	}
	l.player.Armor = a
	return true
}

func (s *ShopSystem) buyPerk(l *loadout, p component.PerkType) bool {
	if p >= component.PerkTypeCount || l.player.Perks[p] {
		return false
	}
	if !spend(l, s.world.Resources.Catalog.Perks[p].Cost) {
		return false
	}
	l.player.Perks[p] = true
	s.applyPerk(l, p)
	return true
}

// applyPerk folds a perk into the player's modifiers and derived stats
// Armor piercing, explosive rounds and ricochet are read as flags at hit time
func (s *ShopSystem) applyPerk(l *loadout, p component.PerkType) {
	mods := &l.player.Mods
	switch p {
	case component.PerkHealthBoost:
		l.combat.MaxHealth += parameter.PerkHealthBoostAmount
		l.combat.Heal(parameter.PerkHealthBoostAmount)
	case component.PerkSpeedBoost:
		mods.Speed *= parameter.PerkSpeedMultiplier
	case component.PerkDamageBoost:
		mods.Damage *= parameter.PerkDamageMultiplier
	case component.PerkAmmoCapacity:
		mods.AmmoCapacity *= parameter.PerkAmmoMultiplier
		l.weapon.MaxAmmo = s.world.Resources.Catalog.MagazineSize(l.weapon.Current, mods.AmmoCapacity)
	case component.PerkReloadSpeed:
		mods.ReloadTime *= parameter.PerkReloadMultiplier
	case component.PerkDoubleJumpEnhanced:
		mods.JumpCharges = parameter.MaxJumpChargesEnhanced
		l.movement.MaxJumpCharges = mods.JumpCharges
	case component.PerkGrappleRange:
		mods.GrappleRange *= parameter.PerkGrappleMultiplier
	case component.PerkWallRunDuration:
		mods.WallRunTime *= parameter.PerkWallRunMultiplier
		l.movement.WallMaxDuration = scaleDuration(parameter.WallRunDuration, mods.WallRunTime)
	case component.PerkHealthRegen:
		mods.RegenBonus += parameter.PerkRegenBonus
	}
}
