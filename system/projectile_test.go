package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/vmath"
)

func fire(t *testing.T, r *rig, origin vmath.Vec3F, weapon component.WeaponType) {
	t.Helper()
	if _, ok := SpawnProjectile(r.world, origin, vmath.Vec3F{Z: 1}, weapon, 1); !ok {
		t.Fatalf("Expected projectile spawned")
	}
}

func TestProjectileHitsOnlyFirstTarget(t *testing.T) {
	r := newRigAt(t, parameter.GameUpdateInterval, NewProjectileSystem, NewCombatSystem)
	first := SpawnEnemy(r.world, component.EnemyBrute, vmath.Vec3F{Y: 1, Z: 5})
	second := SpawnEnemy(r.world, component.EnemyBrute, vmath.Vec3F{Y: 1, Z: 7})

	fire(t, r, vmath.Vec3F{Y: 1}, component.WeaponPistol)

	r.step(15)
	r.settle()

	damage := r.world.Resources.Catalog.Weapon(component.WeaponPistol).Damage
	full := r.world.Resources.Catalog.Enemies[component.EnemyBrute].Health

	c1, _ := r.world.Components.Combat.GetComponent(first)
	if c1.Health != full-damage {
		t.Errorf("Expected first enemy at %v, got %v", full-damage, c1.Health)
	}
	c2, _ := r.world.Components.Combat.GetComponent(second)
	if c2.Health != full {
		t.Errorf("Expected second enemy untouched at %v, got %v", full, c2.Health)
	}
	if n := r.world.Components.Projectile.CountEntities(); n != 0 {
		t.Errorf("Expected projectile consumed, got %d", n)
	}
	if got := r.world.Resources.Status.Ints.Get("projectile.hits").Load(); got != 1 {
		t.Errorf("Expected one hit, got %d", got)
	}
	if n := r.log.count(event.EventDamageRequest); n != 0 {
		t.Errorf("Expected hit applied without a queued request, got %d requests", n)
	}
}

func TestShotDeadEnemyDealsNoContact(t *testing.T) {
	r := newRigAt(t, parameter.GameUpdateInterval, NewProjectileSystem, NewCombatSystem)
	laser := r.world.Resources.Catalog.Weapon(component.WeaponLaser).Damage
	if hp := r.world.Resources.Catalog.Enemies[component.EnemyCrawler].Health; laser < hp {
		t.Fatalf("Expected laser to one-shot a crawler, damage %v health %v", laser, hp)
	}

	crawler := SpawnEnemy(r.world, component.EnemyCrawler, vmath.Vec3F{Y: 1, Z: 1.4})
	fire(t, r, vmath.Vec3F{Y: 1}, component.WeaponLaser)

	r.step(1)
	r.settle()

	if r.world.Components.Enemy.HasEntity(crawler) {
		t.Fatalf("Expected crawler killed by the laser")
	}
	if got := r.health(); got != parameter.PlayerMaxHealth {
		t.Errorf("Expected no contact damage from a dead crawler, health %v", got)
	}
	if got := r.world.Resources.Status.Ints.Get("combat.contacts").Load(); got != 0 {
		t.Errorf("Expected no contacts, got %d", got)
	}
	if n := r.log.count(event.EventEnemyKilled); n != 1 {
		t.Errorf("Expected one kill event, got %d", n)
	}
}

func TestSecondShotPassesKilledEnemy(t *testing.T) {
	r := newRigAt(t, parameter.GameUpdateInterval, NewProjectileSystem, NewCombatSystem)
	a := SpawnEnemy(r.world, component.EnemyCrawler, vmath.Vec3F{Y: 1, Z: 5})
	b := SpawnEnemy(r.world, component.EnemyCrawler, vmath.Vec3F{Y: 1, Z: 6.5})

	fire(t, r, vmath.Vec3F{Y: 1}, component.WeaponLaser)
	fire(t, r, vmath.Vec3F{Y: 1}, component.WeaponLaser)

	r.step(10)
	r.settle()

	if r.world.Components.Enemy.HasEntity(a) || r.world.Components.Enemy.HasEntity(b) {
		t.Errorf("Expected both crawlers killed, a alive %v b alive %v",
			r.world.Components.Enemy.HasEntity(a), r.world.Components.Enemy.HasEntity(b))
	}
	if n := r.world.Components.Projectile.CountEntities(); n != 0 {
		t.Errorf("Expected both projectiles consumed, got %d", n)
	}
	if got := r.world.Resources.Status.Ints.Get("combat.kills").Load(); got != 2 {
		t.Errorf("Expected 2 kills, got %d", got)
	}
	if got := r.playerComp().Kills; got != 2 {
		t.Errorf("Expected player kill count 2, got %d", got)
	}
}

func TestFastProjectileDoesNotTunnel(t *testing.T) {
	r := newRigAt(t, 50*time.Millisecond, NewProjectileSystem, NewCombatSystem)
	brute := SpawnEnemy(r.world, component.EnemyBrute, vmath.Vec3F{Y: 1, Z: 6})

	// 4 units per step lands at Z=4 then Z=8, both outside the hit sphere
	fire(t, r, vmath.Vec3F{Y: 1}, component.WeaponLaser)

	r.step(2)

	full := r.world.Resources.Catalog.Enemies[component.EnemyBrute].Health
	laser := r.world.Resources.Catalog.Weapon(component.WeaponLaser).Damage
	c, _ := r.world.Components.Combat.GetComponent(brute)
	if c.Health != full-laser {
		t.Errorf("Expected brute at %v, got %v", full-laser, c.Health)
	}
	if n := r.world.Components.Projectile.CountEntities(); n != 0 {
		t.Errorf("Expected projectile consumed, got %d", n)
	}
}

func TestProjectileHitsNearestAlongStep(t *testing.T) {
	r := newRigAt(t, 50*time.Millisecond, NewProjectileSystem)
	far := SpawnEnemy(r.world, component.EnemyBrute, vmath.Vec3F{Y: 1, Z: 3})
	near := SpawnEnemy(r.world, component.EnemyBrute, vmath.Vec3F{Y: 1, Z: 1.8})

	fire(t, r, vmath.Vec3F{Y: 1}, component.WeaponLaser)
	r.step(1)

	full := r.world.Resources.Catalog.Enemies[component.EnemyBrute].Health
	if c, _ := r.world.Components.Combat.GetComponent(near); c.Health == full {
		t.Errorf("Expected nearer enemy hit")
	}
	if c, _ := r.world.Components.Combat.GetComponent(far); c.Health != full {
		t.Errorf("Expected farther enemy untouched, got %v", c.Health)
	}
}

func TestProjectileExpires(t *testing.T) {
	r := newRigAt(t, parameter.GameUpdateInterval, NewProjectileSystem)
	if _, ok := SpawnProjectile(r.world, vmath.Vec3F{Y: 1}, vmath.Vec3F{X: 1}, component.WeaponPistol, 1); !ok {
		t.Fatalf("Expected projectile spawned")
	}

	r.step(int(parameter.ProjectileLifetime/r.dt) + 2)

	if n := r.world.Components.Projectile.CountEntities(); n != 0 {
		t.Errorf("Expected projectile expired, got %d alive", n)
	}
	if got := r.world.Resources.Status.Ints.Get("projectile.expired").Load(); got != 1 {
		t.Errorf("Expected 1 expiry, got %d", got)
	}
}

func TestProjectileRejectsZeroDirection(t *testing.T) {
	w := newRig(t).world
	if _, ok := SpawnProjectile(w, vmath.Vec3F{}, vmath.Vec3F{}, component.WeaponPistol, 1); ok {
		t.Errorf("Expected zero direction rejected")
	}
	if n := w.Components.Projectile.CountEntities(); n != 0 {
		t.Errorf("Expected no projectile, got %d", n)
	}
}

func TestDamageMultiplierScalesProjectile(t *testing.T) {
	w := newRig(t).world
	e, ok := SpawnProjectile(w, vmath.Vec3F{}, vmath.Vec3F{Z: 1}, component.WeaponPistol, 2)
	if !ok {
		t.Fatalf("Expected projectile spawned")
	}
	pc, _ := w.Components.Projectile.GetComponent(e)
	want := w.Resources.Catalog.Weapon(component.WeaponPistol).Damage * 2
	if pc.Damage != want {
		t.Errorf("Expected damage %v, got %v", want, pc.Damage)
	}
}
