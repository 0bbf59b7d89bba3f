package status

import (
	"strings"
	"sync/atomic"
	"testing"
)

func TestGaugeCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("wave.number")
	b := r.Ints.Get("wave.number")
	if a != b {
		t.Error("Expected same pointer for repeated Get")
	}
	a.Store(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
}

func TestRangeSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b")
	r.Ints.Get("a")
	r.Ints.Get("c")

	var keys []string
	r.Ints.Range(func(key string, _ *atomic.Int64) { keys = append(keys, key) })
	if strings.Join(keys, ",") != "a,b,c" {
		t.Errorf("Expected sorted keys, got %v", keys)
	}
}

func TestSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("player.score").Store(110)
	r.Floats.Get("player.health").Store(70.5)
	r.Bools.Get("game.over").Store(true)
	r.Strings.Get("session.id").Store(strings.Repeat("x", 60))

	snap := r.Snapshot()
	if snap["player.score"].(int64) != 110 {
		t.Errorf("Expected score 110, got %v", snap["player.score"])
	}
	if snap["player.health"].(float64) != 70.5 {
		t.Errorf("Expected health 70.5, got %v", snap["player.health"])
	}
	if !snap["game.over"].(bool) {
		t.Error("Expected game.over true")
	}
	if len(snap["session.id"].(string)) != LabelLimit {
		t.Errorf("Expected truncation to %d, got %d", LabelLimit, len(snap["session.id"].(string)))
	}
}

func TestLabelCutsOnRuneBoundary(t *testing.T) {
	var l Label
	if l.Load() != "" {
		t.Errorf("Expected empty zero label, got %q", l.Load())
	}
	// 47 ASCII bytes then a 3-byte rune straddling the limit
	l.Store(strings.Repeat("a", LabelLimit-1) + "\u20ac")
	if got := l.Load(); got != strings.Repeat("a", LabelLimit-1) {
		t.Errorf("Expected rune dropped whole, got %q", got)
	}
}

func TestFloatAdd(t *testing.T) {
	var f Float
	f.Add(1.5)
	if v := f.Add(2.0); v != 3.5 {
		t.Errorf("Expected 3.5, got %f", v)
	}
}

func TestSnapshotPrefix(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("wave.number").Store(2)
	r.Ints.Get("wave.quota").Store(8)
	r.Ints.Get("player.score").Store(40)

	snap := r.SnapshotPrefix("wave.")
	if len(snap) != 2 {
		t.Errorf("Expected 2 wave metrics, got %d", len(snap))
	}
	if _, ok := snap["player.score"]; ok {
		t.Error("Expected player metrics filtered out")
	}
	if r.TotalCount() != 3 {
		t.Errorf("Expected 3 metrics registered, got %d", r.TotalCount())
	}
}
