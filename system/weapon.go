package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/loot"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// WeaponSystem handles trigger, magazine, reload and weapon switching for the player
type WeaponSystem struct {
	world *engine.World

	statShots   *atomic.Int64
	statReloads *atomic.Int64

	enabled bool
}

func NewWeaponSystem(world *engine.World) engine.System {
	s := &WeaponSystem{
		world: world,
	}

	s.statShots = world.Resources.Status.Ints.Get("weapon.shots")
	s.statReloads = world.Resources.Status.Ints.Get("weapon.reloads")

	s.Init()
	return s
}

func (s *WeaponSystem) Init() {
	s.statShots.Store(0)
	s.statReloads.Store(0)
	s.enabled = true
}

func (s *WeaponSystem) Name() string {
	return "weapon"
}

func (s *WeaponSystem) Priority() int {
	return parameter.PriorityWeapon
}

func (s *WeaponSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWeaponSwitchRequest,
		event.EventGameReset,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *WeaponSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	handleMeta(ev, s.Name(), &s.enabled)

	if !s.enabled || !s.world.Playing() {
		return
	}

	if ev.Type == event.EventWeaponSwitchRequest {
		if payload, ok := ev.Payload.(*event.WeaponSwitchPayload); ok {
			s.switchWeapon(payload.Weapon)
		}
	}
}

// switchWeapon selects an owned weapon with a full magazine, unowned selections are ignored
func (s *WeaponSystem) switchWeapon(w component.WeaponType) {
	p := s.world.PlayerEntity()
	wc, ok := s.world.Components.Weapon.GetComponent(p)
	if !ok || w >= component.WeaponTypeCount || !wc.Owned[w] || wc.Current == w {
		return
	}
	pc, _ := s.world.Components.Player.GetComponent(p)
	mult := pc.Mods.AmmoCapacity
	if mult <= 0 {
		mult = 1
	}
	loot.EquipWeapon(loot.Target{Weapon: &wc}, s.world.Resources.Catalog.MagazineSize(w, mult), w)
	s.world.Components.Weapon.SetComponent(p, wc)
}

func (s *WeaponSystem) Update() {
	if !s.enabled || !s.world.Playing() {
		return
	}

	p := s.world.PlayerEntity()
	wc, ok := s.world.Components.Weapon.GetComponent(p)
	if !ok {
		return
	}
	pc, _ := s.world.Components.Player.GetComponent(p)
	in := s.world.Resources.Input.InputSnapshot
	dt := s.world.Resources.Time.DeltaTime
	spec := s.world.Resources.Catalog.Weapon(wc.Current)

	if wc.FireCooldown > 0 {
		wc.FireCooldown -= dt
		if wc.FireCooldown < 0 {
			wc.FireCooldown = 0
		}
	}

	if wc.Reloading {
		wc.ReloadRemaining -= dt
		if wc.ReloadRemaining <= 0 {
			s.finishReload(p, &wc)
		}
	}

	if in.ReloadPressed {
		s.startReload(&wc, spec.ReloadTime, pc.Mods.ReloadTime)
	}

	if in.FireHeld && !wc.Reloading && wc.FireCooldown <= 0 {
		if wc.Ammo <= 0 {
			// Empty trigger pull reloads
			s.startReload(&wc, spec.ReloadTime, pc.Mods.ReloadTime)
		} else {
			s.fire(p, &wc, spec.FireInterval, pc.Mods.Damage)
		}
	}

	s.world.Components.Weapon.SetComponent(p, wc)
}

func (s *WeaponSystem) startReload(wc *component.WeaponComponent, base time.Duration, mult float64) {
	if wc.Reloading || wc.Ammo >= wc.MaxAmmo {
		return
	}
	wc.Reloading = true
	wc.ReloadRemaining = scaleDuration(base, mult)
	s.world.PlaySound(core.SoundReload)
}

// finishReload fills the magazine only if the player survived the reload
func (s *WeaponSystem) finishReload(p core.Entity, wc *component.WeaponComponent) {
	wc.Reloading = false
	wc.ReloadRemaining = 0
	if c, ok := s.world.Components.Combat.GetComponent(p); !ok || !c.Alive() {
		return
	}
	wc.Ammo = wc.MaxAmmo
	s.statReloads.Add(1)
}

func (s *WeaponSystem) fire(p core.Entity, wc *component.WeaponComponent, interval time.Duration, damageMult float64) {
	t, ok := s.world.Components.Transform.GetComponent(p)
	if !ok {
		return
	}
	if b, ok := s.world.Components.Buff.GetComponent(p); ok {
		damageMult *= b.Multiplier(component.BuffDamage)
	}

	eye := vmath.V3FAdd(t.Position, vmath.Vec3F{Y: parameter.PlayerEyeHeight})
	origin := vmath.V3FAdd(eye, vmath.V3FScale(t.Facing, parameter.MuzzleOffset))

	if _, ok := SpawnProjectile(s.world, origin, t.Facing, wc.Current, damageMult); !ok {
		return
	}
	wc.Ammo--
	wc.FireCooldown = interval
	s.statShots.Add(1)
	s.world.PlaySound(core.SoundShot)
}
