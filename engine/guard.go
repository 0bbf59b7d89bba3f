package engine

import (
	"fmt"
	"log"

	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/event"
)

// Guard runs a single actor's update and confines a panic to that actor
// A failing actor is logged and destroyed so it never stays half-updated; the frame continues
func Guard(w *World, e core.Entity, system string, fn func()) (ok bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ok = false

		wasEnemy := w.Components.Enemy.HasEntity(e)
		log.Printf("[%s] entity %d update failed, removing: %v", system, e, r)

		w.discard(e)
		w.Resources.Status.Ints.Get("engine.actor_faults").Add(1)
		w.PushEvent(event.EventActorFault, &event.ActorFaultPayload{
			Entity: e,
			System: system,
			Reason: fmt.Sprint(r),
			Enemy:  wasEnemy,
		})
	}()

	fn()
	return true
}

// discard destroys e; when releasing its visual fails too, the components are still dropped
func (w *World) discard(e core.Entity) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[engine] entity %d visual release failed: %v", e, r)
			w.removeFromAllStores(e)
		}
	}()
	w.DestroyEntity(e)
}
