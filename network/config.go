package network

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config tunes the telemetry server, an empty Address leaves it off
type Config struct {
	Address  string `yaml:"address"`
	MaxPeers int    `yaml:"max_peers"`

	ReadTimeout       time.Duration `yaml:"read_timeout"`
	WriteTimeout      time.Duration `yaml:"write_timeout"`
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"` // websocket ping
	BroadcastInterval time.Duration `yaml:"broadcast_interval"` // HUD push

	ReadBufferSize  int `yaml:"read_buffer_size"`
	WriteBufferSize int `yaml:"write_buffer_size"`
	SendQueueSize   int `yaml:"send_queue_size"` // frames buffered per peer before drops
}

// DefaultConfig is disabled; HUD frames are small so buffers stay modest
func DefaultConfig() *Config {
	return &Config{
		MaxPeers:          16,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      5 * time.Second,
		HeartbeatInterval: 10 * time.Second,
		BroadcastInterval: 100 * time.Millisecond,
		ReadBufferSize:    1 << 10,
		WriteBufferSize:   4 << 10,
		SendQueueSize:     32,
	}
}

// DebugConfig is DefaultConfig listening on addr
func DebugConfig(addr string) *Config {
	cfg := DefaultConfig()
	cfg.Address = addr
	return cfg
}

// LoadConfig overlays a YAML file onto the defaults, durations use Go syntax ("250ms")
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read telemetry config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validate %s", path)
	}
	return cfg, nil
}

// Validate rejects limits the server cannot run with
func (c *Config) Validate() error {
	switch {
	case c.MaxPeers <= 0:
		return errors.Errorf("max_peers must be positive, got %d", c.MaxPeers)
	case c.SendQueueSize <= 0:
		return errors.Errorf("send_queue_size must be positive, got %d", c.SendQueueSize)
	case c.BroadcastInterval <= 0 || c.HeartbeatInterval <= 0:
		return errors.New("broadcast and heartbeat intervals must be positive")
	case c.WriteTimeout <= 0 || c.ReadTimeout <= c.HeartbeatInterval:
		return errors.New("read timeout must exceed the heartbeat interval")
	}
	return nil
}

func (c *Config) Enabled() bool {
	return c != nil && c.Address != ""
}
