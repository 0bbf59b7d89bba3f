package component

import (
	"time"

	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// BossType is the archetype discriminant of a boss
type BossType uint8

const (
	BossTitan BossType = iota
	BossWarlock
	BossBehemoth
	BossTypeCount
)

var bossTypeNames = [BossTypeCount]string{"titan", "warlock", "behemoth"}

func (t BossType) String() string {
	if t >= BossTypeCount {
		return "unknown"
	}
	return bossTypeNames[t]
}

// ParseBossType resolves a config name to a BossType
func ParseBossType(name string) (BossType, bool) {
	for i, n := range bossTypeNames {
		if n == name {
			return BossType(i), true
		}
	}
	return 0, false
}

// BossAbility is the closed set of boss attacks, one handler per variant
type BossAbility uint8

const (
	AbilityGroundSlam BossAbility = iota
	AbilityCharge
	AbilityMagicBurst
	AbilityTeleport
	AbilityRoar
	AbilityStomp
	AbilityCount
)

var abilityNames = [AbilityCount]string{"ground_slam", "charge", "magic_burst", "teleport", "roar", "stomp"}

func (a BossAbility) String() string {
	if a >= AbilityCount {
		return "unknown"
	}
	return abilityNames[a]
}

// ParseBossAbility resolves a config name to a BossAbility
func ParseBossAbility(name string) (BossAbility, bool) {
	for i, n := range abilityNames {
		if n == name {
			return BossAbility(i), true
		}
	}
	return 0, false
}

// QueuedAttack is a telegraphed attack waiting for its delay to elapse
type QueuedAttack struct {
	Ability   BossAbility
	Remaining time.Duration

	// Indicator is the telegraph entity, 0 when none was spawned
	Indicator core.Entity

	// Target is the player position captured at dispatch
	Target vmath.Vec3F
}

// BossComponent holds boss archetype and ability scheduling state
type BossComponent struct {
	Type BossType

	Damage      float64
	AttackRange float64

	// AttackTimer counts up to AttackCooldown
	AttackTimer    time.Duration
	AttackCooldown time.Duration

	Abilities []BossAbility

	// Pending is the queued attack, nil when idle
	Pending *QueuedAttack
}
