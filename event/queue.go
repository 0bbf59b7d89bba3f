package event

import (
	"sync"

	"github.com/lixenwraith/wave-fighter/parameter"
)

// EventQueue is a double-buffered FIFO shared by producers and the dispatch loop
// Push never drops: damage requests are applied exactly once, in arrival order
type EventQueue struct {
	mu      sync.Mutex
	pending []GameEvent
	spare   []GameEvent
	peak    int
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		pending: make([]GameEvent, 0, parameter.EventQueueSize),
		spare:   make([]GameEvent, 0, parameter.EventQueueSize),
	}
}

// Push appends ev, safe from any goroutine
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	eq.pending = append(eq.pending, ev)
	if n := len(eq.pending); n > eq.peak {
		eq.peak = n
	}
	eq.mu.Unlock()
}

// Consume takes every pending event, nil when empty
// The returned slice is owned by the caller until the next Consume
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if len(eq.pending) == 0 {
		return nil
	}
	out := eq.pending
	eq.pending = eq.spare[:0]
	eq.spare = out
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.pending)
}

// Peak returns the largest backlog seen since creation
func (eq *EventQueue) Peak() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.peak
}
