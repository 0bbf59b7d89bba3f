package component

import (
	"time"
)

// CombatComponent holds the shared health and locomotion stats of any actor
type CombatComponent struct {
	// Health is the remaining hit points, actor dies at <= 0
	Health    float64
	MaxHealth float64

	// Speed is the current movement speed, BaseSpeed the archetype value it restores to
	Speed     float64
	BaseSpeed float64

	// ContactCooldown gates repeated contact damage from this actor
	ContactCooldown time.Duration

	// HitFlashRemaining is the remaining duration of hit visual feedback
	HitFlashRemaining time.Duration
}

// Alive reports whether the actor still has health
func (c *CombatComponent) Alive() bool {
	return c.Health > 0
}

// Heal adds hit points clamped to MaxHealth
func (c *CombatComponent) Heal(amount float64) {
	c.Health += amount
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
}
