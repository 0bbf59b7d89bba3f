// Package manifest is the composition list: which systems and services a run wires up
package manifest

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/wave-fighter/audio"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/network"
	"github.com/lixenwraith/wave-fighter/registry"
	"github.com/lixenwraith/wave-fighter/service"
	"github.com/lixenwraith/wave-fighter/system"
)

// RegisterSystems registers all system factories with the registry
func RegisterSystems() {
	registry.RegisterSystem("movement", system.NewMovementSystem)
	registry.RegisterSystem("weapon", system.NewWeaponSystem)
	registry.RegisterSystem("projectile", system.NewProjectileSystem)
	registry.RegisterSystem("combat", system.NewCombatSystem)
	registry.RegisterSystem("enemy", system.NewEnemySystem)
	registry.RegisterSystem("boss", system.NewBossSystem)
	registry.RegisterSystem("indicator", system.NewIndicatorSystem)
	registry.RegisterSystem("loot", system.NewLootSystem)
	registry.RegisterSystem("shop", system.NewShopSystem)
	registry.RegisterSystem("inventory", system.NewInventorySystem)
	registry.RegisterSystem("buff", system.NewBuffSystem)
	registry.RegisterSystem("player", system.NewPlayerSystem)
	registry.RegisterSystem("wave", system.NewWaveSystem)
	registry.RegisterSystem("audio", system.NewAudioSystem)
}

// ActiveSystems returns the systems to instantiate
// Execution and event handler order both come from system priorities
func ActiveSystems() []string {
	return []string{
		"player",
		"combat",
		"movement",
		"weapon",
		"projectile",
		"enemy",
		"boss",
		"indicator",
		"loot",
		"shop",
		"inventory",
		"buff",
		"wave",
		"audio",
	}
}

// BuildSystems instantiates every active system into the world
func BuildSystems(w *engine.World) error {
	for _, name := range ActiveSystems() {
		factory, ok := registry.GetSystem(name)
		if !ok {
			return errors.Errorf("system not registered: %s", name)
		}
		w.AddSystem(factory(w))
	}
	return nil
}

// ServiceOptions carries command-line choices into service factories
type ServiceOptions struct {
	Muted   bool
	Network *network.Config
}

// RegisterServices registers all service factories with the registry
func RegisterServices(opts ServiceOptions) {
	registry.RegisterService("audio", func() service.Service {
		return audio.NewService(opts.Muted)
	})
	registry.RegisterService("network", func() service.Service {
		cfg := opts.Network
		if cfg == nil {
			cfg = network.DefaultConfig()
		}
		return network.NewService(cfg)
	})
}

// ActiveServices returns the services to instantiate, the hub orders them by dependency
func ActiveServices() []string {
	return []string{
		"audio",
		"network",
	}
}

// BuildServices instantiates every active service into the hub
func BuildServices(hub *service.Hub) error {
	for _, name := range ActiveServices() {
		factory, ok := registry.GetService(name)
		if !ok {
			return errors.Errorf("service not registered: %s", name)
		}
		if err := hub.Register(factory()); err != nil {
			return err
		}
	}
	return nil
}
