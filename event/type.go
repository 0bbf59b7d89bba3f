package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is reserved, never pushed
	EventTick EventType = iota

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// === Combat Event ===

	// EventDamageRequest applies damage to an actor, the append-only damage queue
	// Trigger: ProjectileSystem hits, EnemySystem contact, BossSystem contact and abilities
	// Consumer: CombatSystem | Payload: *DamageRequestPayload
	EventDamageRequest

	// EventEnemyKilled signals a regular enemy death after removal from the world
	// Trigger: CombatSystem
	// Consumer: LootSystem, WaveSystem | Payload: *ActorKilledPayload
	EventEnemyKilled

	// EventBossKilled signals a boss death after removal from the world
	// Trigger: CombatSystem
	// Consumer: LootSystem, WaveSystem | Payload: *ActorKilledPayload
	EventBossKilled

	// EventPlayerDamaged reports damage taken by the player
	// Trigger: CombatSystem
	// Consumer: PlayerSystem (HUD flash), AudioSystem | Payload: *PlayerDamagedPayload
	EventPlayerDamaged

	// EventGameOver signals terminal player death
	// Trigger: CombatSystem
	// Consumer: All gameplay systems | Payload: *GameOverPayload
	EventGameOver

	// === Boss Event ===

	// EventBossAbilityTelegraph signals a boss started a telegraphed ability
	// Trigger: BossSystem
	// Consumer: Presenter bridge, telemetry | Payload: *BossAbilityPayload
	EventBossAbilityTelegraph

	// EventBossAbilityExecute signals a telegraphed ability resolved
	// Trigger: BossSystem
	// Consumer: Presenter bridge, telemetry | Payload: *BossAbilityPayload
	EventBossAbilityExecute

	// === Wave Event ===

	// EventWaveStarted signals a wave finished spawning
	// Trigger: WaveSystem
	// Consumer: PlayerSystem, telemetry | Payload: *WavePayload
	EventWaveStarted

	// EventWaveCleared signals the clear condition held
	// Trigger: WaveSystem
	// Consumer: AudioSystem, telemetry | Payload: *WavePayload
	EventWaveCleared

	// === Economy Event ===

	// EventLootCollected signals the player picked up a world item
	// Trigger: LootSystem
	// Consumer: InventorySystem | Payload: *LootCollectedPayload
	EventLootCollected

	// EventInventoryUseRequest uses the inventory item at an index
	// Trigger: Input
	// Consumer: InventorySystem | Payload: *InventoryUsePayload
	EventInventoryUseRequest

	// EventInventorySortRequest reorders the inventory
	// Trigger: Input
	// Consumer: InventorySystem | Payload: *InventorySortPayload
	EventInventorySortRequest

	// EventShopPurchaseRequest buys a weapon, armor or perk
	// Trigger: Input
	// Consumer: ShopSystem | Payload: *ShopPurchasePayload
	EventShopPurchaseRequest

	// EventWeaponSwitchRequest selects an owned weapon
	// Trigger: Input
	// Consumer: WeaponSystem | Payload: *WeaponSwitchPayload
	EventWeaponSwitchRequest

	// === Meta Event ===

	// EventGameReset signals a request to reset the game state
	// Trigger: Input (restart), GameOver screen
	// Consumer: All systems | Payload: nil
	EventGameReset

	// EventMetaSystemCommandRequest enables or disables a system by name
	// Trigger: Debug input, telemetry endpoint
	// Consumer: Systems | Payload: *MetaSystemCommandPayload
	EventMetaSystemCommandRequest

	// EventActorFault reports an actor removed after its update panicked
	// Trigger: engine.Guard
	// Consumer: telemetry | Payload: *ActorFaultPayload
	EventActorFault
)
