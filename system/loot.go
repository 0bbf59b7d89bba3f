package system

import (
	"sync/atomic"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/loot"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// LootSystem collects world items and powerups within reach of the player
type LootSystem struct {
	world *engine.World
	loot  *loot.Engine

	statCollected *atomic.Int64
	statPowerups  *atomic.Int64
	statOnGround  *atomic.Int64

	enabled bool
}

func NewLootSystem(world *engine.World) engine.System {
	s := &LootSystem{
		world: world,
		loot:  loot.NewEngine(world.Resources.Catalog, world.Resources.Rand),
	}

	s.statCollected = world.Resources.Status.Ints.Get("loot.collected")
	s.statPowerups = world.Resources.Status.Ints.Get("loot.powerups")
	s.statOnGround = world.Resources.Status.Ints.Get("loot.on_ground")

	s.Init()
	return s
}

func (s *LootSystem) Init() {
	s.statCollected.Store(0)
	s.statPowerups.Store(0)
	s.statOnGround.Store(0)
	s.enabled = true
}

func (s *LootSystem) Name() string {
	return "loot"
}

func (s *LootSystem) Priority() int {
	return parameter.PriorityLoot
}

func (s *LootSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *LootSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	handleMeta(ev, s.Name(), &s.enabled)
}

func (s *LootSystem) Update() {
	if !s.enabled || !s.world.Playing() {
		return
	}

	t, ok := s.world.Components.Transform.GetComponent(s.world.PlayerEntity())
	if !ok {
		return
	}
	feet := vmath.V3FFlat(t.Position)

	for _, e := range s.world.Components.Loot.GetAllEntities() {
		if s.inReach(e, feet) {
			engine.Guard(s.world, e, s.Name(), func() {
				s.collect(e)
			})
		}
	}
	for _, e := range s.world.Components.Powerup.GetAllEntities() {
		if s.inReach(e, feet) {
			engine.Guard(s.world, e, s.Name(), func() {
				s.consume(e)
			})
		}
	}

	s.statOnGround.Store(int64(s.world.Components.Loot.CountEntities()))
}

func (s *LootSystem) inReach(e core.Entity, feet vmath.Vec3F) bool {
	t, ok := s.world.Components.Transform.GetComponent(e)
	if !ok {
		return false
	}
	return vmath.V3FDist(vmath.V3FFlat(t.Position), feet) < parameter.PickupRadius
}

// collect moves a world item into the inventory, currency is credited at once
// A full inventory leaves the item on the ground
func (s *LootSystem) collect(e core.Entity) {
	wl, ok := s.world.Components.Loot.GetComponent(e)
	if !ok {
		return
	}
	l, ok := loadPlayer(s.world)
	if !ok {
		return
	}

	sound := core.SoundPickup
	if wl.Item.Category == component.LootCurrency {
		s.loot.ApplyCurrency(&l.player)
		sound = core.SoundCoin
	} else if !l.inventory.Add(wl.Item) {
		return
	}

	l.save(s.world)
	s.world.DestroyEntity(e)
	s.statCollected.Add(1)
	s.world.PushEvent(event.EventLootCollected, &event.LootCollectedPayload{Item: wl.Item})
	s.world.PlaySound(sound)
}

// consume applies an instant powerup
func (s *LootSystem) consume(e core.Entity) {
	p, ok := s.world.Components.Powerup.GetComponent(e)
	if !ok {
		return
	}
	l, ok := loadPlayer(s.world)
	if !ok {
		return
	}

	switch p.Type {
	case component.PowerupHealth:
		l.combat.Heal(parameter.PowerupHealAmount)
	case component.PowerupAmmo:
		loot.ApplyConsumable(l.target(), component.LootItem{Effect: component.EffectRefillAmmo})
	}

	l.save(s.world)
	s.world.DestroyEntity(e)
	s.statPowerups.Add(1)
	s.world.PlaySound(core.SoundPickup)
}
