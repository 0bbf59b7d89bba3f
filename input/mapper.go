package input

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/parameter"
)

// Mapper converts terminal key events into the simulation input snapshot
// Terminals deliver presses and autorepeats but no releases, so held intents expire after a timeout
// Not safe for concurrent use, owned by the frontend loop
type Mapper struct {
	table       *KeyTable
	holdTimeout time.Duration

	heldUntil [intentCount]time.Time

	// Pending edges and deltas, drained by Apply
	jump, grapple, reload, slide bool
	yaw, pitch                   float64
	requests                     []Intent
}

// NewMapper creates a mapper over the given bindings, nil uses the defaults
func NewMapper(table *KeyTable) *Mapper {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Mapper{
		table:       table,
		holdTimeout: parameter.InputHoldTimeout,
	}
}

// HandleKey records a key event and returns the resolved intent
// System intents are returned for the caller and have no effect on the snapshot
func (m *Mapper) HandleKey(ev *tcell.EventKey) Intent {
	entry, ok := m.table.Lookup(ev)
	if !ok {
		return Intent{}
	}
	in := Intent{Type: entry.Intent, Arg: entry.Arg}
	now := ev.When()

	switch {
	case in.Type.IsSystem():
	case in.Type.isHeld():
		// A fresh slide press is also an edge, repeats only extend the hold
		if in.Type == IntentSlide && !m.isHeld(IntentSlide, now) {
			m.slide = true
		}
		m.heldUntil[in.Type] = now.Add(m.holdTimeout)
	case in.Type == IntentJump:
		m.jump = true
	case in.Type == IntentGrapple:
		m.grapple = true
	case in.Type == IntentReload:
		m.reload = true
	case in.Type == IntentLookLeft:
		m.yaw -= parameter.LookStep
	case in.Type == IntentLookRight:
		m.yaw += parameter.LookStep
	case in.Type == IntentLookUp:
		m.pitch += parameter.LookStep
	case in.Type == IntentLookDown:
		m.pitch -= parameter.LookStep
	default:
		m.requests = append(m.requests, in)
	}
	return in
}

// Apply writes held state and pending edges into the world input and pushes request events
// Caller must hold the world lock
func (m *Mapper) Apply(w *engine.World, now time.Time) {
	in := w.Resources.Input

	in.Forward = m.isHeld(IntentMoveForward, now)
	in.Back = m.isHeld(IntentMoveBack, now)
	in.Left = m.isHeld(IntentStrafeLeft, now)
	in.Right = m.isHeld(IntentStrafeRight, now)
	in.FireHeld = m.isHeld(IntentFire, now)
	in.SlideHeld = m.isHeld(IntentSlide, now)

	// Edges stay set until the tick consumes them
	in.JumpPressed = in.JumpPressed || m.jump
	in.GrapplePressed = in.GrapplePressed || m.grapple
	in.ReloadPressed = in.ReloadPressed || m.reload
	in.SlidePressed = in.SlidePressed || m.slide

	in.Yaw = wrapAngle(in.Yaw + m.yaw)
	in.Pitch = math.Max(-parameter.PitchLimit, math.Min(parameter.PitchLimit, in.Pitch+m.pitch))

	for _, r := range m.requests {
		if typ, payload, ok := requestEvent(r); ok {
			w.PushEvent(typ, payload)
		}
	}

	m.jump, m.grapple, m.reload, m.slide = false, false, false, false
	m.yaw, m.pitch = 0, 0
	m.requests = m.requests[:0]
}

// Release drops all held keys and pending input
func (m *Mapper) Release() {
	m.heldUntil = [intentCount]time.Time{}
	m.jump, m.grapple, m.reload, m.slide = false, false, false, false
	m.yaw, m.pitch = 0, 0
	m.requests = m.requests[:0]
}

func (m *Mapper) isHeld(t IntentType, now time.Time) bool {
	return now.Before(m.heldUntil[t])
}

// wrapAngle keeps yaw in [-pi, pi)
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
