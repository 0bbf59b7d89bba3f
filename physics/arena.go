package physics

import (
	"math"

	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// Wall is an axis-aligned box of static geometry
type Wall struct {
	Min, Max vmath.Vec3F

	// Runnable walls are candidates for wall running
	Runnable bool
}

// BoxAt builds a wall from a center point and full extents
func BoxAt(center, size vmath.Vec3F, runnable bool) Wall {
	half := vmath.V3FScale(size, 0.5)
	return Wall{
		Min:      vmath.V3FSub(center, half),
		Max:      vmath.V3FAdd(center, half),
		Runnable: runnable,
	}
}

// ClosestPoint returns the point of the box nearest to p
func (w Wall) ClosestPoint(p vmath.Vec3F) vmath.Vec3F {
	return vmath.Vec3F{
		X: clamp(p.X, w.Min.X, w.Max.X),
		Y: clamp(p.Y, w.Min.Y, w.Max.Y),
		Z: clamp(p.Z, w.Min.Z, w.Max.Z),
	}
}

// Arena is the static level: ground plane at y=0 plus box walls
// Implements engine.Raycaster
type Arena struct {
	Walls      []Wall
	HalfExtent float64
	Ceiling    float64
}

// NewArena creates an arena bounded by the default extents
func NewArena(walls []Wall) *Arena {
	return &Arena{
		Walls:      walls,
		HalfExtent: parameter.ArenaHalfExtent,
		Ceiling:    parameter.ArenaCeiling,
	}
}

// DefaultArena builds the stock level: perimeter, central ring, corner walls and floating platforms
func DefaultArena() *Arena {
	var walls []Wall

	// Perimeter
	walls = append(walls,
		BoxAt(vmath.Vec3F{Y: 5, Z: 150}, vmath.Vec3F{X: 300, Y: 10, Z: 2}, false),
		BoxAt(vmath.Vec3F{Y: 5, Z: -150}, vmath.Vec3F{X: 300, Y: 10, Z: 2}, false),
		BoxAt(vmath.Vec3F{X: 150, Y: 5}, vmath.Vec3F{X: 2, Y: 10, Z: 300}, false),
		BoxAt(vmath.Vec3F{X: -150, Y: 5}, vmath.Vec3F{X: 2, Y: 10, Z: 300}, false),
	)

	// Central ring
	walls = append(walls,
		BoxAt(vmath.Vec3F{Y: 15, Z: 60}, vmath.Vec3F{X: 80, Y: 30, Z: 3}, true),
		BoxAt(vmath.Vec3F{Y: 15, Z: -60}, vmath.Vec3F{X: 80, Y: 30, Z: 3}, true),
		BoxAt(vmath.Vec3F{X: 60, Y: 15}, vmath.Vec3F{X: 3, Y: 30, Z: 80}, true),
		BoxAt(vmath.Vec3F{X: -60, Y: 15}, vmath.Vec3F{X: 3, Y: 30, Z: 80}, true),
	)

	// Corners, one horizontal and one vertical slab each
	for _, c := range [][2]float64{{40, 40}, {-40, 40}, {40, -40}, {-40, -40}} {
		center := vmath.Vec3F{X: c[0], Y: 12.5, Z: c[1]}
		walls = append(walls,
			BoxAt(center, vmath.Vec3F{X: 40, Y: 25, Z: 2}, true),
			BoxAt(center, vmath.Vec3F{X: 2, Y: 25, Z: 40}, true),
		)
	}

	// Platforms
	for _, p := range []vmath.Vec3F{
		{X: 20, Y: 15, Z: 20}, {X: 20, Y: 15, Z: -20}, {X: -20, Y: 15, Z: 20}, {X: -20, Y: 15, Z: -20},
		{Y: 25, Z: 30}, {Y: 25, Z: -30}, {X: 30, Y: 25}, {X: -30, Y: 25},
		{X: 15, Y: 35, Z: 15}, {X: 15, Y: 35, Z: -15}, {X: -15, Y: 35, Z: 15}, {X: -15, Y: 35, Z: -15},
	} {
		walls = append(walls, BoxAt(p, vmath.Vec3F{X: 8, Y: 1, Z: 8}, true))
	}

	return NewArena(walls)
}

// Raycast returns the nearest wall or ground intersection within maxDistance
// Arena geometry has no entity, ignore is accepted for interface parity
func (a *Arena) Raycast(origin, direction vmath.Vec3F, maxDistance float64, ignore core.Entity) engine.RayHit {
	dir := vmath.V3FNormalize(direction)
	if vmath.V3FIsZero(dir) || maxDistance <= 0 {
		return engine.RayHit{}
	}

	best := engine.RayHit{}
	bestT := maxDistance

	// Ground plane
	if dir.Y < 0 && origin.Y >= 0 {
		t := -origin.Y / dir.Y
		if t <= bestT {
			bestT = t
			best = engine.RayHit{
				Hit:    true,
				Point:  vmath.V3FAdd(origin, vmath.V3FScale(dir, t)),
				Normal: vmath.Vec3F{Y: 1},
			}
		}
	}

	for i := range a.Walls {
		t, n, ok := rayBox(origin, dir, &a.Walls[i])
		if !ok || t > bestT {
			continue
		}
		bestT = t
		best = engine.RayHit{
			Hit:    true,
			Point:  vmath.V3FAdd(origin, vmath.V3FScale(dir, t)),
			Normal: n,
		}
	}

	return best
}

// NearestRunnableWall finds the closest runnable wall within maxDist with a horizontal outward normal
// Walls are scanned in slice order, ties keep the first found
func (a *Arena) NearestRunnableWall(pos vmath.Vec3F, maxDist float64) (normal vmath.Vec3F, index int, ok bool) {
	bestDist := math.Inf(1)
	index = -1

	for i := range a.Walls {
		w := &a.Walls[i]
		if !w.Runnable {
			continue
		}
		delta := vmath.V3FSub(pos, w.ClosestPoint(pos))
		dist := vmath.V3FMag(delta)
		if dist > maxDist || dist >= bestDist {
			continue
		}
		// Platforms above or below yield a vertical normal, not runnable
		flat := vmath.V3FFlat(delta)
		if vmath.V3FMagSq(flat) < 1e-9 {
			continue
		}
		bestDist = dist
		normal = vmath.V3FNormalize(flat)
		index = i
		ok = true
	}

	return normal, index, ok
}

// WallStillInRange reports whether wall idx remains within maxDist of pos
func (a *Arena) WallStillInRange(pos vmath.Vec3F, idx int, maxDist float64) bool {
	if idx < 0 || idx >= len(a.Walls) {
		return false
	}
	return vmath.V3FDist(pos, a.Walls[idx].ClosestPoint(pos)) <= maxDist
}

// Clamp keeps p inside the playable volume
func (a *Arena) Clamp(p vmath.Vec3F) vmath.Vec3F {
	limit := a.HalfExtent - 1
	p.X = clamp(p.X, -limit, limit)
	p.Z = clamp(p.Z, -limit, limit)
	p.Y = clamp(p.Y, 0, a.Ceiling)
	return p
}

// Reflect mirrors direction d about surface normal n
func Reflect(d, n vmath.Vec3F) vmath.Vec3F {
	return vmath.V3FSub(d, vmath.V3FScale(n, 2*vmath.V3FDot(d, n)))
}

// SweepSphere returns the fraction along segment a->b where it first enters the sphere
// A segment starting inside the sphere enters at 0
func SweepSphere(a, b, center vmath.Vec3F, radius float64) (float64, bool) {
	d := vmath.V3FSub(b, a)
	f := vmath.V3FSub(a, center)
	c := vmath.V3FDot(f, f) - radius*radius
	if c <= 0 {
		return 0, true
	}
	qa := vmath.V3FDot(d, d)
	if qa < 1e-12 {
		return 0, false
	}
	qb := 2 * vmath.V3FDot(f, d)
	disc := qb*qb - 4*qa*c
	if disc < 0 {
		return 0, false
	}
	t := (-qb - math.Sqrt(disc)) / (2 * qa)
	if t < 0 || t > 1 {
		return 0, false
	}
	return t, true
}

// rayBox is the slab test, returns entry distance and entry face normal
func rayBox(origin, dir vmath.Vec3F, w *Wall) (float64, vmath.Vec3F, bool) {
	tMin, tMax := 0.0, math.Inf(1)
	var normal vmath.Vec3F

	o := [3]float64{origin.X, origin.Y, origin.Z}
	d := [3]float64{dir.X, dir.Y, dir.Z}
	lo := [3]float64{w.Min.X, w.Min.Y, w.Min.Z}
	hi := [3]float64{w.Max.X, w.Max.Y, w.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if math.Abs(d[axis]) < 1e-12 {
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return 0, normal, false
			}
			continue
		}
		inv := 1 / d[axis]
		t1 := (lo[axis] - o[axis]) * inv
		t2 := (hi[axis] - o[axis]) * inv
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}
		if t1 > tMin {
			tMin = t1
			normal = vmath.Vec3F{}
			switch axis {
			case 0:
				normal.X = sign
			case 1:
				normal.Y = sign
			case 2:
				normal.Z = sign
			}
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, normal, false
		}
	}

	// Origin inside the box
	if vmath.V3FIsZero(normal) {
		return 0, normal, false
	}
	return tMin, normal, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
