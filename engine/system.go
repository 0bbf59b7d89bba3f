package engine

import "github.com/lixenwraith/wave-fighter/event"

// System is a unit of per-tick simulation logic
// Systems receive routed events before Update runs in the same tick
type System interface {
	Init()
	Name() string
	Priority() int
	Update()

	event.Handler
}
