package network

import (
	"fmt"

	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
)

// PriorityBridge runs last, the bridge has no per-tick work
const PriorityBridge = 1000

// BridgeSystem forwards notable game events to websocket spectators
type BridgeSystem struct {
	server  *Server
	enabled bool
}

func NewBridgeSystem(server *Server) *BridgeSystem {
	s := &BridgeSystem{server: server}
	s.Init()
	return s
}

func (s *BridgeSystem) Init() {
	s.enabled = true
}

func (s *BridgeSystem) Name() string {
	return "telemetry"
}

func (s *BridgeSystem) Priority() int {
	return PriorityBridge
}

func (s *BridgeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWaveStarted,
		event.EventWaveCleared,
		event.EventBossAbilityTelegraph,
		event.EventBossKilled,
		event.EventActorFault,
		event.EventGameOver,
		event.EventGameReset,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *BridgeSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventMetaSystemCommandRequest {
		if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok && payload.SystemName == s.Name() {
			s.enabled = payload.Enabled
		}
		return
	}
	if !s.enabled {
		return
	}
	if name := describe(ev); name != "" {
		s.server.BroadcastEvent(name)
	}
}

func (s *BridgeSystem) Update() {}

// describe renders an event as a short spectator line
func describe(ev event.GameEvent) string {
	switch p := ev.Payload.(type) {
	case *event.WavePayload:
		if ev.Type == event.EventWaveStarted {
			return fmt.Sprintf("wave %d started, quota %d", p.Number, p.Quota)
		}
		return fmt.Sprintf("wave %d cleared", p.Number)
	case *event.BossAbilityPayload:
		return fmt.Sprintf("boss %d telegraphs %s", p.Boss, p.Ability)
	case *event.ActorKilledPayload:
		return fmt.Sprintf("boss %s defeated", p.BossType)
	case *event.ActorFaultPayload:
		return fmt.Sprintf("entity %d removed after fault in %s", p.Entity, p.System)
	case *event.GameOverPayload:
		return fmt.Sprintf("game over: score %d, wave %d, kills %d", p.Score, p.Wave, p.Kills)
	}
	if ev.Type == event.EventGameReset {
		return "run reset"
	}
	return ""
}

var _ engine.System = (*BridgeSystem)(nil)
