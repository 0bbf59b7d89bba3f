package input

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/parameter"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestMapper_HeldKeysExpire(t *testing.T) {
	w := engine.NewTestWorld()
	m := NewMapper(nil)

	ev := runeKey('w')
	m.HandleKey(ev)
	m.HandleKey(runeKey('f'))

	m.Apply(w, ev.When())
	if !w.Resources.Input.Forward {
		t.Errorf("Expected Forward held after press")
	}
	if !w.Resources.Input.FireHeld {
		t.Errorf("Expected FireHeld after press")
	}

	m.Apply(w, ev.When().Add(parameter.InputHoldTimeout+time.Millisecond))
	if w.Resources.Input.Forward {
		t.Errorf("Expected Forward released after hold timeout")
	}
}

func TestMapper_EdgesSurviveUntilTick(t *testing.T) {
	w := engine.NewTestWorld()
	m := NewMapper(nil)

	ev := runeKey(' ')
	m.HandleKey(ev)
	m.Apply(w, ev.When())
	// Second apply before the tick must not clear the pending edge
	m.Apply(w, ev.When())

	if !w.Resources.Input.JumpPressed {
		t.Fatalf("Expected JumpPressed to persist until EndTick")
	}

	w.Resources.Input.EndTick()
	m.Apply(w, ev.When())
	if w.Resources.Input.JumpPressed {
		t.Errorf("Expected JumpPressed cleared after EndTick without new press")
	}
}

func TestMapper_SlideRepeatIsSingleEdge(t *testing.T) {
	w := engine.NewTestWorld()
	m := NewMapper(nil)

	first := runeKey('c')
	m.HandleKey(first)
	m.Apply(w, first.When())
	if !w.Resources.Input.SlidePressed || !w.Resources.Input.SlideHeld {
		t.Fatalf("Expected slide press and hold on first event")
	}
	w.Resources.Input.EndTick()

	// Autorepeat within the hold window
	m.HandleKey(runeKey('c'))
	m.Apply(w, time.Now())
	if w.Resources.Input.SlidePressed {
		t.Errorf("Expected autorepeat to extend hold without a new edge")
	}
	if !w.Resources.Input.SlideHeld {
		t.Errorf("Expected slide still held")
	}
}

func TestMapper_LookClampsPitchAndWrapsYaw(t *testing.T) {
	w := engine.NewTestWorld()
	m := NewMapper(nil)

	for i := 0; i < 100; i++ {
		m.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
		m.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	}
	m.Apply(w, time.Now())

	in := w.Resources.Input
	if in.Pitch != parameter.PitchLimit {
		t.Errorf("Expected pitch clamped to %v, got %v", parameter.PitchLimit, in.Pitch)
	}
	if in.Yaw < -math.Pi || in.Yaw >= math.Pi {
		t.Errorf("Expected yaw wrapped into [-pi, pi), got %v", in.Yaw)
	}
	want := wrapAngle(100 * parameter.LookStep)
	if math.Abs(in.Yaw-want) > 1e-9 {
		t.Errorf("Expected yaw %v, got %v", want, in.Yaw)
	}
}

func TestMapper_RequestsBecomeEvents(t *testing.T) {
	w := engine.NewTestWorld()
	m := NewMapper(nil)

	m.HandleKey(runeKey('2'))
	m.HandleKey(runeKey('u'))
	m.HandleKey(runeKey('o'))
	m.HandleKey(tcell.NewEventKey(tcell.KeyF6, 0, tcell.ModNone))
	m.Apply(w, time.Now())

	events := w.Resources.Event.Queue.Consume()
	if len(events) != 4 {
		t.Fatalf("Expected 4 events, got %d", len(events))
	}

	if events[0].Type != event.EventWeaponSwitchRequest {
		t.Errorf("Expected weapon switch, got %v", events[0].Type)
	}
	if p := events[0].Payload.(*event.WeaponSwitchPayload); p.Weapon != component.WeaponAssaultRifle {
		t.Errorf("Expected assault rifle, got %v", p.Weapon)
	}
	if events[1].Type != event.EventInventoryUseRequest {
		t.Errorf("Expected inventory use, got %v", events[1].Type)
	}
	if events[2].Type != event.EventInventorySortRequest {
		t.Errorf("Expected inventory sort, got %v", events[2].Type)
	}
	p, ok := events[3].Payload.(*event.ShopPurchasePayload)
	if !ok || p.Kind != event.ShopArmor || p.Armor != component.ArmorMedium {
		t.Errorf("Expected medium armor purchase, got %+v", events[3].Payload)
	}

	// Drained
	m.Apply(w, time.Now())
	if n := w.Resources.Event.Queue.Len(); n != 0 {
		t.Errorf("Expected no repeated requests, got %d", n)
	}
}

func TestMapper_SystemIntents(t *testing.T) {
	m := NewMapper(nil)

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"q", runeKey('q'), IntentQuit},
		{"mute", runeKey('m'), IntentToggleMute},
		{"restart", tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), IntentRestart},
		{"escape pauses", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentTogglePause},
		{"uppercase", runeKey('W'), IntentMoveForward},
		{"unbound", runeKey('z'), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.HandleKey(tt.ev)
			if got.Type != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got.Type)
			}
		})
	}
}

func TestMapper_Release(t *testing.T) {
	w := engine.NewTestWorld()
	m := NewMapper(nil)

	m.HandleKey(runeKey('w'))
	m.HandleKey(runeKey(' '))
	m.Release()
	m.Apply(w, time.Now())

	if w.Resources.Input.Forward || w.Resources.Input.JumpPressed {
		t.Errorf("Expected no input after release")
	}
}

func TestMapper_SimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()

	w := engine.NewTestWorld()
	m := NewMapper(nil)

	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	var ev *tcell.EventKey
	for i := 0; i < 4 && ev == nil; i++ {
		// Resize events may precede the key
		ev, _ = screen.PollEvent().(*tcell.EventKey)
	}
	if ev == nil {
		t.Fatalf("Expected key event from simulation screen")
	}
	m.HandleKey(ev)
	m.Apply(w, ev.When())

	if !w.Resources.Input.Right {
		t.Errorf("Expected strafe right from injected key")
	}
}
