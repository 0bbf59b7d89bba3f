package parameter

import "time"

// Wave Director
const (
	WaveInitialQuota   = 5
	WaveQuotaIncrement = 3
	WaveBossInterval   = 3
	WaveSpawnDelay     = 3 * time.Second

	// EnemySpawnHalfRange places enemies within ±N on X and Z
	EnemySpawnHalfRange = 140.0

	// BossSpawnHalfRange places bosses within ±N on X and Z
	BossSpawnHalfRange = 100.0
)
