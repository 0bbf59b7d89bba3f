package network

import (
	"github.com/lixenwraith/wave-fighter/engine"
)

// MessageType identifies a websocket frame
type MessageType string

const (
	MsgHello MessageType = "hello" // First frame, carries the run identity
	MsgHUD   MessageType = "hud"   // Periodic HUD snapshot
	MsgEvent MessageType = "event" // Notable game event
)

// Frame is the JSON envelope of every websocket message
type Frame struct {
	Type  MessageType `json:"type"`
	RunID string      `json:"run_id"`
	Seq   uint64      `json:"seq"`

	HUD   *engine.HUDSnapshot `json:"hud,omitempty"`
	Event string              `json:"event,omitempty"`
}

// StatusResponse is served at /status
type StatusResponse struct {
	RunID   string         `json:"run_id"`
	Phase   string         `json:"phase"`
	Paused  bool           `json:"paused"`
	Frame   int64          `json:"frame"`
	Systems []string       `json:"systems"`
	Peers   int            `json:"peers"`
	Metrics map[string]any `json:"metrics"`
}

// SystemCommandResponse acknowledges a system toggle
type SystemCommandResponse struct {
	System  string `json:"system"`
	Enabled bool   `json:"enabled"`
}

// PauseResponse reports the pause state after a pause or resume request
type PauseResponse struct {
	Paused  bool `json:"paused"`
	Changed bool `json:"changed"`
}
