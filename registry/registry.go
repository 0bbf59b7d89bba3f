// Package registry maps names to system and service factories
// Composition roots look factories up by the names the manifest lists
package registry

import (
	"sort"
	"sync"

	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/service"
)

// SystemFactory creates a System bound to a World
type SystemFactory func(world *engine.World) engine.System

// ServiceFactory creates a Service
type ServiceFactory func() service.Service

// table is a named factory set; later registrations replace earlier ones
type table[F any] struct {
	mu      sync.RWMutex
	entries map[string]F
}

func (t *table[F]) put(name string, f F) {
	t.mu.Lock()
	if t.entries == nil {
		t.entries = make(map[string]F)
	}
	t.entries[name] = f
	t.mu.Unlock()
}

func (t *table[F]) get(name string) (F, bool) {
	t.mu.RLock()
	f, ok := t.entries[name]
	t.mu.RUnlock()
	return f, ok
}

func (t *table[F]) names() []string {
	t.mu.RLock()
	out := make([]string, 0, len(t.entries))
	for name := range t.entries {
		out = append(out, name)
	}
	t.mu.RUnlock()
	sort.Strings(out)
	return out
}

var (
	systems  table[SystemFactory]
	services table[ServiceFactory]
)

func RegisterSystem(name string, factory SystemFactory) { systems.put(name, factory) }

func GetSystem(name string) (SystemFactory, bool) { return systems.get(name) }

// SystemNames returns registered system names, sorted
func SystemNames() []string { return systems.names() }

func RegisterService(name string, factory ServiceFactory) { services.put(name, factory) }

func GetService(name string) (ServiceFactory, bool) { return services.get(name) }

// ServiceNames returns registered service names, sorted
func ServiceNames() []string { return services.names() }
