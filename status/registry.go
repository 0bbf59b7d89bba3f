// Package status publishes lock-free runtime metrics
// Systems resolve their gauges once in the constructor and write atomics every tick
package status

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Gauges is a named set of metric cells of type T
// Cells are never removed, so a pointer resolved once stays valid for the process
type Gauges[T any] struct {
	cells sync.Map // string -> *T
	n     atomic.Int32
}

// Get returns the cell for key, allocating it on first use
func (g *Gauges[T]) Get(key string) *T {
	if v, ok := g.cells.Load(key); ok {
		return v.(*T)
	}
	v, loaded := g.cells.LoadOrStore(key, new(T))
	if !loaded {
		g.n.Add(1)
	}
	return v.(*T)
}

// Has reports whether key was ever resolved
func (g *Gauges[T]) Has(key string) bool {
	_, ok := g.cells.Load(key)
	return ok
}

// Count returns the number of cells
func (g *Gauges[T]) Count() int {
	return int(g.n.Load())
}

// Range visits cells in key order
func (g *Gauges[T]) Range(fn func(key string, ptr *T)) {
	g.RangePrefix("", fn)
}

// RangePrefix visits the cells whose key starts with prefix, in key order
func (g *Gauges[T]) RangePrefix(prefix string, fn func(key string, ptr *T)) {
	var keys []string
	g.cells.Range(func(k, _ any) bool {
		if s := k.(string); strings.HasPrefix(s, prefix) {
			keys = append(keys, s)
		}
		return true
	})
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, g.Get(k))
	}
}

// Registry groups gauges by value type
type Registry struct {
	Bools   Gauges[atomic.Bool]
	Ints    Gauges[atomic.Int64]
	Floats  Gauges[Float]
	Strings Gauges[Label]
}

func NewRegistry() *Registry {
	return &Registry{}
}

// TotalCount returns the number of cells across all value types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot copies every value into a flat map keyed by metric name
func (r *Registry) Snapshot() map[string]any {
	return r.SnapshotPrefix("")
}

// SnapshotPrefix copies the values whose name starts with prefix ("wave.", "player.")
func (r *Registry) SnapshotPrefix(prefix string) map[string]any {
	out := make(map[string]any)
	r.Bools.RangePrefix(prefix, func(k string, p *atomic.Bool) { out[k] = p.Load() })
	r.Ints.RangePrefix(prefix, func(k string, p *atomic.Int64) { out[k] = p.Load() })
	r.Floats.RangePrefix(prefix, func(k string, p *Float) { out[k] = p.Load() })
	r.Strings.RangePrefix(prefix, func(k string, p *Label) { out[k] = p.Load() })
	return out
}
