package core

// SoundType represents different sound effects requested by the simulation
type SoundType int

const (
	SoundShot      SoundType = iota // Weapon fire
	SoundHit                        // Projectile impact on enemy or boss
	SoundEnemyDeath                 // Enemy destroyed
	SoundBossDeath                  // Boss destroyed
	SoundPlayerHurt                 // Player took damage
	SoundTelegraph                  // Boss ability warning
	SoundBossImpact                 // Boss ability execution
	SoundPickup                     // Loot or powerup collected
	SoundCoin                       // Currency gained
	SoundJump                       // Jump or double jump
	SoundGrapple                    // Grapple hook fired
	SoundReload                     // Reload started
	SoundWaveClear                  // Wave cleared
	SoundGameOver                   // Player died
	SoundTypeCount
)
