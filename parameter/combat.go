package parameter

import "time"

// Projectile
const (
	// ProjectileLifetime is the age at which a projectile expires
	ProjectileLifetime = 2 * time.Second

	// ProjectileMaxRange is the max distance from the player's origin before despawn
	ProjectileMaxRange = 100.0

	// EnemyHitRadius is the collision radius of a regular enemy
	EnemyHitRadius = 1.0

	// BossHitRadius is the collision radius of a boss
	BossHitRadius = 2.5
)

// Enemy Contact
const (
	EnemyContactRange  = 1.5
	EnemyContactDamage = 20.0

	// EnemyContactCooldown rate-limits repeated one-shot contact hits from the same enemy
	EnemyContactCooldown = 1 * time.Second

	// EnemyKnockbackHorizontal displaces the enemy away from the player
	EnemyKnockbackHorizontal = 15.0

	// EnemyKnockbackVertical is the upward launch velocity of the bounced enemy
	EnemyKnockbackVertical = 10.0

	// EnemyGravity settles knocked-back enemies back to the ground
	EnemyGravity = 20.0
)

// Boss Contact
const (
	BossContactRange  = 3.0
	BossContactDamage = 10.0

	// BossSpawnHeight is the Y at which bosses hover
	BossSpawnHeight = 2.0
)

// Boss Abilities
const (
	ChargeDistance      = 15.0
	ChargeHitRange      = 3.0
	ChargeKnockback     = 15.0
	GroundSlamKnockback = 10.0
	StompKnockback      = 20.0
	TeleportSpread      = 10.0
	TeleportHitRange    = 3.0
	RoarSlowMultiplier  = 0.5
	RoarSlowDuration    = 3 * time.Second
)

// KnockbackDamping decays horizontal impulse (wall jump push) per second
// Knockback from hits is an instant horizontal displacement plus a vertical launch velocity
const KnockbackDamping = 4.0

// Body geometry
const (
	// PlayerCenterHeight is the player's body center above the feet, used for contact and hit tests
	PlayerCenterHeight = 1.0

	// EnemySpawnHeight is the Y of a regular enemy body center
	EnemySpawnHeight = 1.0

	// HitFlashDuration is the hit feedback window after damage
	HitFlashDuration = 150 * time.Millisecond

	// MuzzleOffset is the distance ahead of the eye where projectiles spawn
	MuzzleOffset = 1.5
)
