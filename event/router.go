package event

// Handler receives the event types it declares, synchronously during dispatch
type Handler interface {
	HandleEvent(ev GameEvent)
	EventTypes() []EventType
}

// Router fans queued events out to handlers on the scheduler goroutine
//
// Handlers for one type run in registration order. An event pushed from a
// handler is delivered by the next pass of the same DispatchAll call
type Router struct {
	queue    *EventQueue
	routes   map[EventType][]Handler
	observer func(GameEvent)
}

func NewRouter(queue *EventQueue) *Router {
	return &Router{
		queue:  queue,
		routes: make(map[EventType][]Handler),
	}
}

// Register indexes h by its current EventTypes, later changes to that list are not seen
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		r.routes[t] = append(r.routes[t], h)
	}
}

// Observe sets a tap that sees every event ahead of its handlers
func (r *Router) Observe(fn func(GameEvent)) {
	r.observer = fn
}

// DispatchAll drains the queue up to maxPasses times and returns the events delivered
// A cascade (kill, drop, pickup) settles within one call unless it outruns maxPasses
func (r *Router) DispatchAll(maxPasses int) int {
	total := 0
	for pass := 0; pass < maxPasses; pass++ {
		batch := r.queue.Consume()
		if len(batch) == 0 {
			break
		}
		for _, ev := range batch {
			r.deliver(ev)
		}
		total += len(batch)
	}
	return total
}

func (r *Router) deliver(ev GameEvent) {
	if r.observer != nil {
		r.observer(ev)
	}
	for _, h := range r.routes[ev.Type] {
		h.HandleEvent(ev)
	}
}

func (r *Router) HasHandlers(t EventType) bool {
	return len(r.routes[t]) > 0
}

func (r *Router) HandlerCount(t EventType) int {
	return len(r.routes[t])
}
