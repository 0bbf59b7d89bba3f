package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// LabelLimit bounds label metrics in bytes; a run UUID fits
const LabelLimit = 48

// Float is a lock-free float64 gauge, the zero value reads 0
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Store(v float64) { f.bits.Store(math.Float64bits(v)) }

func (f *Float) Load() float64 { return math.Float64frombits(f.bits.Load()) }

// Add accumulates delta and returns the new total
func (f *Float) Add(delta float64) float64 {
	for {
		cur := f.bits.Load()
		sum := math.Float64frombits(cur) + delta
		if f.bits.CompareAndSwap(cur, math.Float64bits(sum)) {
			return sum
		}
	}
}

// Label holds a short text value such as a phase or mode name
type Label struct {
	v atomic.Value
}

// Store keeps at most LabelLimit bytes, cut on a rune boundary
func (l *Label) Store(s string) {
	if len(s) > LabelLimit {
		cut := LabelLimit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	l.v.Store(s)
}

func (l *Label) Load() string {
	s, _ := l.v.Load().(string)
	return s
}
