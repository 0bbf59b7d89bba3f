package component

import (
	"time"

	"github.com/lixenwraith/wave-fighter/vmath"
)

// ProjectileComponent is a bullet in flight
type ProjectileComponent struct {
	Origin    vmath.Vec3F
	Direction vmath.Vec3F // Unit length
	Speed     float64
	Damage    float64
	Size      float64

	Age      time.Duration
	Lifetime time.Duration

	Weapon WeaponType
}
