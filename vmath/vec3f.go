package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector, Y is up
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FDist returns the euclidean distance between two points
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

// V3FDistSq returns the squared distance, avoids sqrt in range checks
func V3FDistSq(a, b Vec3F) float64 {
	return V3FMagSq(V3FSub(a, b))
}

// V3FLerp interpolates from a to b by fraction t
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	return V3FAdd(a, V3FScale(V3FSub(b, a), t))
}

// V3FFlat drops the vertical component
func V3FFlat(v Vec3F) Vec3F {
	return Vec3F{X: v.X, Z: v.Z}
}

// V3FMoveTowards steps from a toward b by at most maxStep, never overshooting
func V3FMoveTowards(a, b Vec3F, maxStep float64) Vec3F {
	delta := V3FSub(b, a)
	dist := V3FMag(delta)
	if dist <= maxStep || dist == 0 {
		return b
	}
	return V3FAdd(a, V3FScale(delta, maxStep/dist))
}

// V3FIsZero reports whether all components are zero
func V3FIsZero(v Vec3F) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}
