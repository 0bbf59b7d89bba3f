package component

import (
	"time"

	"github.com/lixenwraith/wave-fighter/core"
)

// IndicatorComponent is a boss telegraph warning visual with a countdown
type IndicatorComponent struct {
	Owner     core.Entity
	Ability   BossAbility
	Radius    float64
	Remaining time.Duration
	Total     time.Duration
}

// Progress returns elapsed fraction in [0,1]
func (i *IndicatorComponent) Progress() float64 {
	if i.Total <= 0 {
		return 1
	}
	p := 1 - float64(i.Remaining)/float64(i.Total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
