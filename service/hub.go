package service

import (
	"sync"

	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/pkg/errors"
)

var (
	ErrDuplicate = errors.New("service already registered")
	ErrCycle     = errors.New("service dependency cycle")
	ErrMissing   = errors.New("service dependency not registered")
)

// Hub owns the service instances of a process and drives their lifecycle
// Order is registration order, with every service placed after its dependencies
type Hub struct {
	mu       sync.RWMutex
	services map[string]Service
	names    []string // Registration order
	order    []string // Resolved on first InitAll
	running  []string // Started, stopped in reverse
}

func NewHub() *Hub {
	return &Hub{
		services: make(map[string]Service),
	}
}

func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return errors.Wrap(ErrDuplicate, name)
	}
	h.services[name] = svc
	h.names = append(h.names, name)
	h.order = nil
	return nil
}

func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svc, ok := h.services[name]
	return svc, ok
}

// Lookup retrieves a service by name as type T
func Lookup[T any](h *Hub, name string) (T, bool) {
	svc, ok := h.Get(name)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := svc.(T)
	return typed, ok
}

// InitAll initializes services in dependency order, publishing contributed resources
// A failed Init stops the services initialized before it
func (h *Hub) InitAll(world *engine.World) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.order == nil {
		order, err := h.resolve()
		if err != nil {
			return err
		}
		h.order = order
	}

	for i, name := range h.order {
		svc := h.services[name]
		if err := svc.Init(world); err != nil {
			h.stopReverse(h.order[:i])
			return errors.Wrapf(err, "service %s init", name)
		}
		if c, ok := svc.(ResourceContributor); ok {
			world.RunSafe(func() { c.Contribute(world.Resources) })
		}
	}
	return nil
}

// StartAll starts services in dependency order, rolling back on failure
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.running = h.running[:0]
	for _, name := range h.order {
		if err := h.services[name].Start(); err != nil {
			h.stopReverse(h.running)
			h.running = nil
			return errors.Wrapf(err, "service %s start", name)
		}
		h.running = append(h.running, name)
	}
	return nil
}

// StopAll stops started services, dependents first
func (h *Hub) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopReverse(h.running)
	h.running = nil
}

func (h *Hub) stopReverse(names []string) {
	for i := len(names) - 1; i >= 0; i-- {
		h.services[names[i]].Stop()
	}
}

// resolve orders services depth-first so each follows its dependencies
func (h *Hub) resolve() ([]string, error) {
	const (
		unseen = iota
		visiting
		done
	)
	state := make(map[string]int, len(h.services))
	order := make([]string, 0, len(h.services))

	var visit func(name, from string) error
	visit = func(name, from string) error {
		svc, ok := h.services[name]
		if !ok {
			return errors.Wrapf(ErrMissing, "%s needs %s", from, name)
		}
		switch state[name] {
		case done:
			return nil
		case visiting:
			return errors.Wrapf(ErrCycle, "at %s", name)
		}
		state[name] = visiting
		for _, dep := range svc.Dependencies() {
			if err := visit(dep, name); err != nil {
				return err
			}
		}
		state[name] = done
		order = append(order, name)
		return nil
	}

	for _, name := range h.names {
		if err := visit(name, ""); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Names returns service names in initialization order once resolved, else registration order
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.order != nil {
		return append([]string(nil), h.order...)
	}
	return append([]string(nil), h.names...)
}
