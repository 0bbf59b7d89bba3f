package system

import (
	"sync/atomic"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/status"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// SpawnPlayer creates the player at the arena center with starting stats and the pistol
func SpawnPlayer(w *engine.World) core.Entity {
	e := w.CreateEntity()
	mods := component.DefaultModifiers(parameter.MaxJumpCharges)

	w.Components.Transform.SetComponent(e, component.TransformComponent{
		Facing: vmath.Vec3F{Z: 1},
	})
	w.Components.Combat.SetComponent(e, component.CombatComponent{
		Health:    parameter.PlayerMaxHealth,
		MaxHealth: parameter.PlayerMaxHealth,
		Speed:     parameter.PlayerBaseSpeed,
		BaseSpeed: parameter.PlayerBaseSpeed,
	})
	w.Components.Player.SetComponent(e, component.PlayerComponent{
		Money: parameter.PlayerStartingMoney,
		Mods:  mods,
	})
	w.Components.Movement.SetComponent(e, component.MovementComponent{
		Speed:               parameter.PlayerBaseSpeed,
		BaseSpeed:           parameter.PlayerBaseSpeed,
		MaxJumpCharges:      mods.JumpCharges,
		DoubleJumpAvailable: true,
		WallIndex:           -1,
		WallMaxDuration:     parameter.WallRunDuration,
		GrappleSpeed:        parameter.GrappleSpeed,
	})

	magazine := w.Resources.Catalog.MagazineSize(component.WeaponPistol, 1)
	weapon := component.WeaponComponent{
		Current: component.WeaponPistol,
		Ammo:    magazine,
		MaxAmmo: magazine,
	}
	weapon.Owned[component.WeaponPistol] = true
	w.Components.Weapon.SetComponent(e, weapon)

	w.Components.Buff.SetComponent(e, component.BuffComponent{})
	w.Components.Inventory.SetComponent(e, component.NewInventory(parameter.InventoryCapacity))

	w.AttachVisual(e, component.VisualPlayer)
	w.Resources.Player.Entity = e
	return e
}

// PlayerSystem regenerates health, publishes HUD metrics and owns the run reset
type PlayerSystem struct {
	world *engine.World

	statHealth  *atomic.Int64
	statAmmo    *atomic.Int64
	statMoney   *atomic.Int64
	statScore   *atomic.Int64
	statKills   *atomic.Int64
	statGrapple *status.Float
	statMode    *status.Label

	enabled bool
}

func NewPlayerSystem(world *engine.World) engine.System {
	s := &PlayerSystem{
		world: world,
	}

	reg := world.Resources.Status
	s.statHealth = reg.Ints.Get("player.health")
	s.statAmmo = reg.Ints.Get("player.ammo")
	s.statMoney = reg.Ints.Get("player.money")
	s.statScore = reg.Ints.Get("player.score")
	s.statKills = reg.Ints.Get("player.kills")
	s.statGrapple = reg.Floats.Get("player.grapple_cooldown")
	s.statMode = reg.Strings.Get("player.mode")

	s.Init()
	return s
}

func (s *PlayerSystem) Init() {
	s.enabled = true
}

func (s *PlayerSystem) Name() string {
	return "player"
}

func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

func (s *PlayerSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *PlayerSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		s.resetRun()
		return
	}

	if ev.Type == event.EventMetaSystemCommandRequest {
		if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
			if payload.SystemName == s.Name() {
				s.enabled = payload.Enabled
			}
		}
	}
}

// resetRun clears the world and starts over at wave 1 with a fresh player
func (s *PlayerSystem) resetRun() {
	s.world.Clear()
	s.world.Resources.Game.State.Reset()
	SpawnPlayer(s.world)
}

func (s *PlayerSystem) Update() {
	if !s.enabled {
		return
	}

	p := s.world.PlayerEntity()
	if p == 0 {
		return
	}

	if s.world.Playing() {
		s.regenerate(p)
	}
	s.publish(p)
}

func (s *PlayerSystem) regenerate(p core.Entity) {
	pc, ok := s.world.Components.Player.GetComponent(p)
	if !ok {
		return
	}
	rate := parameter.PlayerHealthRegen + pc.Mods.RegenBonus
	dt := s.world.Resources.Time.DeltaTime.Seconds()

	s.world.Components.Combat.Mutate(p, func(c *component.CombatComponent) {
		if c.Alive() && c.Health < c.MaxHealth {
			c.Heal(rate * dt)
		}
	})
}

func (s *PlayerSystem) publish(p core.Entity) {
	if c, ok := s.world.Components.Combat.GetComponent(p); ok {
		s.statHealth.Store(int64(c.Health))
	}
	if wc, ok := s.world.Components.Weapon.GetComponent(p); ok {
		s.statAmmo.Store(int64(wc.Ammo))
	}
	if pc, ok := s.world.Components.Player.GetComponent(p); ok {
		s.statMoney.Store(int64(pc.Money))
		s.statScore.Store(int64(pc.Score))
		s.statKills.Store(int64(pc.Kills))
	}
	if mc, ok := s.world.Components.Movement.GetComponent(p); ok {
		s.statGrapple.Store(mc.GrappleCooldown.Seconds())
		s.statMode.Store(mc.Mode.String())
	}
}
