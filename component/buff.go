package component

import (
	"time"
)

// BuffType: temporary multipliers from consumables and boss debuffs
type BuffType uint8

const (
	BuffSpeed BuffType = iota
	BuffDamage
	BuffSlow
	BuffTypeCount
)

// TimedBuff is a single multiplier with a revert countdown
// Re-applying overwrites Multiplier and restarts Remaining, so only one revert fires
type TimedBuff struct {
	Active     bool
	Multiplier float64
	Remaining  time.Duration
}

// BuffComponent tracks the player's active temporary buffs
type BuffComponent struct {
	Buffs [BuffTypeCount]TimedBuff
}

// Apply sets a buff, last write wins
func (b *BuffComponent) Apply(t BuffType, multiplier float64, duration time.Duration) {
	if t >= BuffTypeCount {
		return
	}
	b.Buffs[t] = TimedBuff{Active: true, Multiplier: multiplier, Remaining: duration}
}

// Multiplier returns the active multiplier for t or 1.0
func (b *BuffComponent) Multiplier(t BuffType) float64 {
	if t >= BuffTypeCount || !b.Buffs[t].Active {
		return 1
	}
	return b.Buffs[t].Multiplier
}
