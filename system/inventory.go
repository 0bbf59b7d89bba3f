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

// InventorySystem uses and sorts carried items
type InventorySystem struct {
	world *engine.World
	loot  *loot.Engine

	statUsed  *atomic.Int64
	statCount *atomic.Int64

	enabled bool
}

func NewInventorySystem(world *engine.World) engine.System {
	s := &InventorySystem{
		world: world,
		loot:  loot.NewEngine(world.Resources.Catalog, world.Resources.Rand),
	}

	s.statUsed = world.Resources.Status.Ints.Get("inventory.used")
	s.statCount = world.Resources.Status.Ints.Get("inventory.count")

	s.Init()
	return s
}

func (s *InventorySystem) Init() {
	s.statUsed.Store(0)
	s.statCount.Store(0)
	s.enabled = true
}

func (s *InventorySystem) Name() string {
	return "inventory"
}

func (s *InventorySystem) Priority() int {
	return parameter.PriorityInventory
}

func (s *InventorySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventInventoryUseRequest,
		event.EventInventorySortRequest,
		event.EventGameReset,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *InventorySystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	handleMeta(ev, s.Name(), &s.enabled)

	if !s.enabled || !s.world.Playing() {
		return
	}

	switch ev.Type {
	case event.EventInventoryUseRequest:
		if payload, ok := ev.Payload.(*event.InventoryUsePayload); ok {
			s.use(payload.Index)
		}
	case event.EventInventorySortRequest:
		if payload, ok := ev.Payload.(*event.InventorySortPayload); ok {
			s.world.Components.Inventory.Mutate(s.world.PlayerEntity(), func(inv *component.InventoryComponent) {
				inv.Sort(payload.Key)
			})
		}
	}
}

func (s *InventorySystem) Update() {
	if inv, ok := s.world.Components.Inventory.GetComponent(s.world.PlayerEntity()); ok {
		s.statCount.Store(int64(len(inv.Items)))
	}
}

// use applies the item at index and removes it from the bag
// Weapons and armor move into their equipment slot
func (s *InventorySystem) use(index int) {
	l, ok := loadPlayer(s.world)
	if !ok || index < 0 || index >= len(l.inventory.Items) {
		return
	}
	item := l.inventory.Items[index]

	switch item.Category {
	case component.LootConsumable:
		if !loot.ApplyConsumable(l.target(), item) {
			return
		}
	case component.LootWeapon, component.LootArmor:
		if !s.loot.ApplyEquipment(l.target(), item) {
			return
		}
		l.inventory.Equip(item)
	case component.LootCurrency:
		s.loot.ApplyCurrency(&l.player)
	default:
		return
	}

	l.inventory.RemoveAt(index)
	l.save(s.world)
	s.statUsed.Add(1)
	s.world.PlaySound(core.SoundPickup)
}
