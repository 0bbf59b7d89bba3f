package component

import "github.com/lixenwraith/wave-fighter/vmath"

// TransformComponent places an actor in the arena
type TransformComponent struct {
	Position vmath.Vec3F

	// Facing is the unit view/heading direction
	Facing vmath.Vec3F

	// Impulse is the decaying velocity from knockback and launches
	Impulse vmath.Vec3F
}
