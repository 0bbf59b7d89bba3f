package system

import (
	"testing"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/vmath"
)

func TestBossContactDamagesEveryTick(t *testing.T) {
	r := newRigAt(t, parameter.GameUpdateInterval, NewCombatSystem)
	SpawnBoss(r.world, component.BossTitan, vmath.Vec3F{Y: 2, Z: 2})

	r.step(3)
	r.settle()

	want := parameter.PlayerMaxHealth - 3*parameter.BossContactDamage
	if got := r.health(); got != want {
		t.Errorf("Expected health %v after three contact ticks, got %v", want, got)
	}
	if !r.world.Playing() {
		t.Errorf("Expected run still playing")
	}
}

func TestEnemyContactIsOneShot(t *testing.T) {
	r := newRigAt(t, parameter.GameUpdateInterval, NewCombatSystem)
	enemy := SpawnEnemy(r.world, component.EnemyGrunt, vmath.Vec3F{Y: 1, Z: 1})

	r.step(3)
	r.settle()

	want := parameter.PlayerMaxHealth - parameter.EnemyContactDamage
	if got := r.health(); got != want {
		t.Errorf("Expected health %v after one contact, got %v", want, got)
	}

	et, _ := r.world.Components.Transform.GetComponent(enemy)
	if et.Position.Z < parameter.EnemyKnockbackHorizontal {
		t.Errorf("Expected enemy knocked back past Z=%v, got %v", parameter.EnemyKnockbackHorizontal, et.Position.Z)
	}
	if et.Impulse.Y != parameter.EnemyKnockbackVertical {
		t.Errorf("Expected launch velocity %v, got %v", parameter.EnemyKnockbackVertical, et.Impulse.Y)
	}
	ec, _ := r.world.Components.Combat.GetComponent(enemy)
	if ec.ContactCooldown <= 0 {
		t.Errorf("Expected contact cooldown running, got %v", ec.ContactCooldown)
	}
}

func TestArmorReducesIncomingDamage(t *testing.T) {
	r := newRigAt(t, parameter.GameUpdateInterval, NewCombatSystem)
	r.world.Components.Player.Mutate(r.player, func(pc *component.PlayerComponent) {
		pc.Armor = component.ArmorMedium
	})
	SpawnEnemy(r.world, component.EnemyGrunt, vmath.Vec3F{Y: 1, Z: 1})

	r.step(2)
	r.settle()

	protection := r.world.Resources.Catalog.Protection(component.ArmorMedium)
	want := parameter.PlayerMaxHealth - parameter.EnemyContactDamage*protection
	if got := r.health(); got != want {
		t.Errorf("Expected health %v with medium armor, got %v", want, got)
	}
}

func TestPlayerDeathFreezesArena(t *testing.T) {
	r := newRigAt(t, parameter.GameUpdateInterval, NewCombatSystem)
	r.world.Components.Combat.Mutate(r.player, func(c *component.CombatComponent) {
		c.Health = 15
	})
	enemy := SpawnEnemy(r.world, component.EnemyGrunt, vmath.Vec3F{Y: 1, Z: 1})
	boss := SpawnBoss(r.world, component.BossTitan, vmath.Vec3F{Y: 2, Z: 50})
	if _, ok := SpawnProjectile(r.world, vmath.Vec3F{X: 40}, vmath.Vec3F{X: 1}, component.WeaponPistol, 1); !ok {
		t.Fatalf("Expected projectile spawned")
	}

	r.step(2)

	if r.world.Playing() {
		t.Fatalf("Expected game over after lethal contact")
	}
	if n := r.log.count(event.EventGameOver); n != 1 {
		t.Errorf("Expected one game over event, got %d", n)
	}
	if n := r.world.Components.Projectile.CountEntities(); n != 0 {
		t.Errorf("Expected projectiles cleared, got %d", n)
	}
	for name, e := range map[string]core.Entity{"enemy": enemy, "boss": boss} {
		c, _ := r.world.Components.Combat.GetComponent(e)
		if c.Speed != 0 {
			t.Errorf("Expected %s halted, got speed %v", name, c.Speed)
		}
	}

	before := r.health()
	r.step(5)
	r.settle()
	if got := r.health(); got != before {
		t.Errorf("Expected health frozen at %v after game over, got %v", before, got)
	}
}

func TestKillPaysRewardOnce(t *testing.T) {
	r := newRigAt(t, parameter.GameUpdateInterval, NewCombatSystem)
	enemy := SpawnEnemy(r.world, component.EnemyGrunt, vmath.Vec3F{Y: 1, Z: 30})

	r.world.RunSafe(func() {
		requestDamage(r.world, enemy, r.player, 1000, event.DamageProjectile, vmath.Vec3F{})
		requestDamage(r.world, enemy, r.player, 1000, event.DamageProjectile, vmath.Vec3F{})
	})
	r.settle()

	if r.world.Components.Enemy.HasEntity(enemy) {
		t.Errorf("Expected dead enemy removed")
	}
	pc := r.playerComp()
	reward := r.world.Resources.Catalog.EnemyReward
	if pc.Score != reward.Score {
		t.Errorf("Expected score %d, got %d", reward.Score, pc.Score)
	}
	if pc.Money != parameter.PlayerStartingMoney+reward.Money {
		t.Errorf("Expected money %d, got %d", parameter.PlayerStartingMoney+reward.Money, pc.Money)
	}
	if pc.Kills != 1 {
		t.Errorf("Expected 1 kill, got %d", pc.Kills)
	}
	if n := r.log.count(event.EventEnemyKilled); n != 1 {
		t.Errorf("Expected one kill event, got %d", n)
	}
}

func TestNegativeDamageIgnored(t *testing.T) {
	r := newRigAt(t, parameter.GameUpdateInterval, NewCombatSystem)
	r.world.RunSafe(func() {
		requestDamage(r.world, r.player, 0, -50, event.DamageContact, vmath.Vec3F{})
	})
	r.settle()

	if got := r.health(); got != parameter.PlayerMaxHealth {
		t.Errorf("Expected health unchanged at %v, got %v", parameter.PlayerMaxHealth, got)
	}
}
