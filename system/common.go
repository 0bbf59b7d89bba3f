package system

import (
	"time"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// wallFinder is implemented by arena geometry supporting wall runs
type wallFinder interface {
	NearestRunnableWall(pos vmath.Vec3F, maxDist float64) (vmath.Vec3F, int, bool)
	WallStillInRange(pos vmath.Vec3F, idx int, maxDist float64) bool
}

// bounds is implemented by arena geometry that confines actors
type bounds interface {
	Clamp(p vmath.Vec3F) vmath.Vec3F
}

// playerCenter returns the player's body center and whether the player exists
func playerCenter(w *engine.World) (vmath.Vec3F, bool) {
	t, ok := w.Components.Transform.GetComponent(w.PlayerEntity())
	if !ok {
		return vmath.Vec3F{}, false
	}
	return vmath.V3FAdd(t.Position, vmath.Vec3F{Y: parameter.PlayerCenterHeight}), true
}

// playerComponent returns the player's progression component
func playerComponent(w *engine.World) (component.PlayerComponent, bool) {
	return w.Components.Player.GetComponent(w.PlayerEntity())
}

// hasPerk reports whether the player owns perk p
func hasPerk(w *engine.World, p component.PerkType) bool {
	pc, ok := playerComponent(w)
	return ok && pc.Perks[p]
}

// clampToArena confines p when the raycaster carries arena bounds
func clampToArena(w *engine.World, p vmath.Vec3F) vmath.Vec3F {
	if b, ok := w.Resources.Raycaster.(bounds); ok {
		return b.Clamp(p)
	}
	return p
}

// awayFrom returns the horizontal unit vector from src toward dst, +Z when they coincide
func awayFrom(src, dst vmath.Vec3F) vmath.Vec3F {
	d := vmath.V3FNormalize(vmath.V3FFlat(vmath.V3FSub(dst, src)))
	if vmath.V3FIsZero(d) {
		return vmath.Vec3F{Z: 1}
	}
	return d
}

// scaleDuration multiplies d, non-positive multipliers leave it unchanged
func scaleDuration(d time.Duration, mult float64) time.Duration {
	if mult <= 0 {
		return d
	}
	return time.Duration(float64(d) * mult)
}

// requestDamage queues damage for the combat resolver
func requestDamage(w *engine.World, target, source core.Entity, amount float64, kind event.DamageKind, knockback vmath.Vec3F) {
	w.PushEvent(event.EventDamageRequest, &event.DamageRequestPayload{
		Target:    target,
		Source:    source,
		Amount:    amount,
		Kind:      kind,
		Knockback: knockback,
	})
}

// handleMeta applies system enable toggles, shared by all systems
func handleMeta(ev event.GameEvent, name string, enabled *bool) {
	if ev.Type != event.EventMetaSystemCommandRequest {
		return
	}
	if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
		if payload.SystemName == name {
			*enabled = payload.Enabled
		}
	}
}

// labelVisual sets the frontend text attached to e, no-op without a visual
func labelVisual(w *engine.World, e core.Entity, text string) {
	if v, ok := w.Components.Visual.GetComponent(e); ok {
		w.Resources.Presenter.UpdateText(engine.VisualHandle(v.Handle), text)
	}
}
