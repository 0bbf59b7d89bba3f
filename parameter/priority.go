package parameter

// System Execution Priorities (lower runs first)
// Order mirrors the per-frame pass: movement, projectiles, combat, enemies, bosses, telegraphs, wave
const (
	PriorityMovement   = 10
	PriorityWeapon     = 20 // After movement so shots leave from the updated view origin
	PriorityProjectile = 30
	PriorityCombat     = 35 // Contact damage cooldowns, game over freeze
	PriorityEnemy      = 40
	PriorityBoss       = 50
	PriorityIndicator  = 60 // After boss, resolves telegraphs queued this tick
	PriorityLoot       = 70
	PriorityShop       = 72 // Event driven, no per-tick work
	PriorityInventory  = 74
	PriorityBuff       = 80
	PriorityPlayer     = 85 // Regen, HUD publishing
	PriorityWave       = 90 // After all kills of the tick are counted
	PriorityAudio      = 95
)
