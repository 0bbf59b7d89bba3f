package physics

import (
	"time"

	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// ApplyImpulse adds a velocity delta (momentum transfer)
func ApplyImpulse(vel *vmath.Vec3F, impulse vmath.Vec3F) {
	*vel = vmath.V3FAdd(*vel, impulse)
}

// IntegrateKnockback moves pos by the knockback velocity and damps it
// gravity pulls the vertical component down, the ground at y=floor stops the fall
func IntegrateKnockback(pos vmath.Vec3F, vel *vmath.Vec3F, dt time.Duration, gravity, floor float64) vmath.Vec3F {
	if vmath.V3FIsZero(*vel) && pos.Y <= floor {
		return pos
	}
	sec := dt.Seconds()

	vel.Y -= gravity * sec
	pos = vmath.V3FAdd(pos, vmath.V3FScale(*vel, sec))

	damp := 1 - parameter.KnockbackDamping*sec
	if damp < 0 {
		damp = 0
	}
	vel.X *= damp
	vel.Z *= damp

	if pos.Y <= floor {
		pos.Y = floor
		vel.Y = 0
	}
	if vel.X*vel.X+vel.Z*vel.Z < 1e-4 {
		vel.X, vel.Z = 0, 0
	}
	return pos
}

// IntegrateImpulse moves pos by the horizontal impulse and damps it
func IntegrateImpulse(pos vmath.Vec3F, vel *vmath.Vec3F, dt time.Duration) vmath.Vec3F {
	if vmath.V3FIsZero(*vel) {
		return pos
	}
	sec := dt.Seconds()
	pos.X += vel.X * sec
	pos.Z += vel.Z * sec

	damp := 1 - parameter.KnockbackDamping*sec
	if damp < 0 {
		damp = 0
	}
	vel.X *= damp
	vel.Z *= damp
	vel.Y = 0
	if vel.X*vel.X+vel.Z*vel.Z < 1e-4 {
		*vel = vmath.Vec3F{}
	}
	return pos
}
