package engine

import (
	"sync"

	"github.com/lixenwraith/wave-fighter/core"
)

// Store holds one component type in dense parallel slices
// ids and vals share positions; index maps an entity to its position
// Removal shifts the tail down so iteration stays in insertion order
type Store[T any] struct {
	mu    sync.RWMutex
	index map[core.Entity]int
	ids   []core.Entity
	vals  []T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index: make(map[core.Entity]int),
	}
}

// SetComponent inserts or overwrites e's component
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[e]; ok {
		s.vals[i] = val
		return
	}
	s.index[e] = len(s.ids)
	s.ids = append(s.ids, e)
	s.vals = append(s.vals, val)
}

func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.index[e]; ok {
		return s.vals[i], true
	}
	var zero T
	return zero, false
}

// Mutate edits e's component in place, false when absent
func (s *Store[T]) Mutate(e core.Entity, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[e]
	if !ok {
		return false
	}
	fn(&s.vals[i])
	return true
}

func (s *Store[T]) RemoveEntity(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[e]
	if !ok {
		return
	}
	delete(s.index, e)

	copy(s.ids[i:], s.ids[i+1:])
	copy(s.vals[i:], s.vals[i+1:])
	last := len(s.ids) - 1
	var zero T
	s.vals[last] = zero
	s.ids = s.ids[:last]
	s.vals = s.vals[:last]

	for j := i; j < len(s.ids); j++ {
		s.index[s.ids[j]] = j
	}
}

func (s *Store[T]) HasEntity(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[e]
	return ok
}

// GetAllEntities returns a copy of the entity list in insertion order
// Callers may destroy entities while ranging over it
func (s *Store[T]) GetAllEntities() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.Entity(nil), s.ids...)
}

func (s *Store[T]) CountEntities() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

func (s *Store[T]) ClearAllComponents() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.index)
	clear(s.vals)
	s.ids = s.ids[:0]
	s.vals = s.vals[:0]
}
