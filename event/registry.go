package event

import (
	"reflect"
)

// descriptor names an event type and, when it carries one, its payload struct
type descriptor struct {
	name    string
	payload reflect.Type
	// external events may be injected by admin tooling
	external bool
}

var (
	descriptors = map[EventType]descriptor{}
	byName      = map[string]EventType{}
)

func define(et EventType, name string, payload any, external bool) {
	d := descriptor{name: name, external: external}
	if payload != nil {
		t := reflect.TypeOf(payload)
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		d.payload = t
	}
	descriptors[et] = d
	byName[name] = et
}

func init() {
	define(EventTick, "Tick", nil, false)
	define(EventSoundRequest, "EventSoundRequest", (*SoundRequestPayload)(nil), true)

	define(EventDamageRequest, "EventDamageRequest", (*DamageRequestPayload)(nil), true)
	define(EventEnemyKilled, "EventEnemyKilled", (*ActorKilledPayload)(nil), false)
	define(EventBossKilled, "EventBossKilled", (*ActorKilledPayload)(nil), false)
	define(EventPlayerDamaged, "EventPlayerDamaged", (*PlayerDamagedPayload)(nil), false)
	define(EventGameOver, "EventGameOver", (*GameOverPayload)(nil), false)

	define(EventBossAbilityTelegraph, "EventBossAbilityTelegraph", (*BossAbilityPayload)(nil), false)
	define(EventBossAbilityExecute, "EventBossAbilityExecute", (*BossAbilityPayload)(nil), false)

	define(EventWaveStarted, "EventWaveStarted", (*WavePayload)(nil), false)
	define(EventWaveCleared, "EventWaveCleared", (*WavePayload)(nil), false)

	define(EventLootCollected, "EventLootCollected", (*LootCollectedPayload)(nil), false)
	define(EventInventoryUseRequest, "EventInventoryUseRequest", (*InventoryUsePayload)(nil), true)
	define(EventInventorySortRequest, "EventInventorySortRequest", (*InventorySortPayload)(nil), true)
	define(EventShopPurchaseRequest, "EventShopPurchaseRequest", (*ShopPurchasePayload)(nil), true)
	define(EventWeaponSwitchRequest, "EventWeaponSwitchRequest", (*WeaponSwitchPayload)(nil), true)

	define(EventGameReset, "EventGameReset", nil, true)
	define(EventMetaSystemCommandRequest, "EventMetaSystemCommandRequest", (*MetaSystemCommandPayload)(nil), true)
	define(EventActorFault, "EventActorFault", (*ActorFaultPayload)(nil), false)
}

// GetEventType resolves a registered event name
func GetEventType(name string) (EventType, bool) {
	et, ok := byName[name]
	return et, ok
}

// GetEventName returns the registered name, "Unknown" otherwise
func GetEventName(et EventType) string {
	if d, ok := descriptors[et]; ok {
		return d.name
	}
	return "Unknown"
}

// NewPayloadStruct returns a pointer to a zero payload for et, nil when the event has none
func NewPayloadStruct(et EventType) any {
	d, ok := descriptors[et]
	if !ok || d.payload == nil {
		return nil
	}
	return reflect.New(d.payload).Interface()
}

// IsExternal reports whether et is a request that may be injected from outside the simulation
func IsExternal(et EventType) bool {
	return descriptors[et].external
}
