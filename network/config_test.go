package network

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "telemetry.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, "address: 127.0.0.1:9000\nmax_peers: 4\nbroadcast_interval: 250ms\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Enabled() || cfg.Address != "127.0.0.1:9000" {
		t.Errorf("Expected enabled at 127.0.0.1:9000, got %q", cfg.Address)
	}
	if cfg.MaxPeers != 4 {
		t.Errorf("Expected 4 peers, got %d", cfg.MaxPeers)
	}
	if cfg.BroadcastInterval != 250*time.Millisecond {
		t.Errorf("Expected 250ms broadcast, got %v", cfg.BroadcastInterval)
	}
	if cfg.SendQueueSize != DefaultConfig().SendQueueSize {
		t.Errorf("Expected default send queue kept, got %d", cfg.SendQueueSize)
	}
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero peers", "max_peers: 0\n"},
		{"read timeout under heartbeat", "read_timeout: 1s\nheartbeat_interval: 2s\n"},
		{"malformed", "max_peers: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("Expected error")
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected missing file error")
	}
}
