package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// Movement state machine transitions
// Every entry requires ModeGrounded, every exit restores base speed
// Rejected transitions return false and leave state untouched

// Airborne reports whether pos is above ground contact
func Airborne(pos vmath.Vec3F) bool {
	return pos.Y > parameter.GroundThreshold
}

// WallFinder locates runnable wall surfaces, implemented by Arena
type WallFinder interface {
	NearestRunnableWall(pos vmath.Vec3F, maxDist float64) (vmath.Vec3F, int, bool)
}

// TryStartWallRun looks for a runnable wall while airborne with forward held
func TryStartWallRun(a WallFinder, pos vmath.Vec3F, forwardHeld bool) (normal vmath.Vec3F, index int, ok bool) {
	if !forwardHeld || pos.Y <= parameter.WallRunMinHeight {
		return vmath.Vec3F{}, -1, false
	}
	return a.NearestRunnableWall(pos, parameter.WallRunDetectRange)
}

// EnterWallRun switches to wall running along the wall with the given outward normal
func EnterWallRun(m *component.MovementComponent, normal vmath.Vec3F, index int) bool {
	if m.Mode != component.ModeGrounded {
		return false
	}
	m.Mode = component.ModeWallRunning
	m.WallNormal = normal
	m.WallIndex = index
	m.WallElapsed = 0
	if m.WallMaxDuration <= 0 {
		m.WallMaxDuration = parameter.WallRunDuration
	}
	m.Speed = parameter.WallRunSpeed
	m.VerticalVelocity = 0
	return true
}

// TickWallRun advances the wall run, returns false once it has ended
func TickWallRun(m *component.MovementComponent, dt time.Duration, stillValid bool) bool {
	if m.Mode != component.ModeWallRunning {
		return false
	}
	m.WallElapsed += dt
	if !stillValid || m.WallElapsed >= m.WallMaxDuration {
		ExitWallRun(m)
		return false
	}
	return true
}

// ExitWallRun leaves wall running, no-op in any other mode
func ExitWallRun(m *component.MovementComponent) {
	if m.Mode != component.ModeWallRunning {
		return
	}
	m.Mode = component.ModeGrounded
	m.WallNormal = vmath.Vec3F{}
	m.WallIndex = -1
	m.WallElapsed = 0
	m.Speed = m.BaseSpeed
}

// WallRunDirection is the run direction along the wall closest to facing
func WallRunDirection(normal, facing vmath.Vec3F) vmath.Vec3F {
	along := vmath.Vec3F{X: -normal.Z, Z: normal.X}
	if vmath.V3FDot(along, facing) < 0 {
		along = vmath.V3FScale(along, -1)
	}
	return along
}

// Jump performs a ground jump, or an air jump when already airborne
func Jump(m *component.MovementComponent, pos vmath.Vec3F) bool {
	if Airborne(pos) {
		return DoubleJump(m, pos)
	}
	if m.Mode == component.ModeGrappling {
		return false
	}
	if m.Mode == component.ModeSliding {
		EndSlide(m)
	}
	m.JumpCount = 1
	m.VerticalVelocity = parameter.JumpImpulse
	m.DoubleJumpAvailable = m.MaxJumpCharges > 1
	return true
}

// DoubleJump spends one air charge, clearing availability when charges run out
func DoubleJump(m *component.MovementComponent, pos vmath.Vec3F) bool {
	if !Airborne(pos) || !m.DoubleJumpAvailable || m.JumpCount >= m.MaxJumpCharges {
		return false
	}
	if m.Mode == component.ModeGrappling {
		return false
	}
	m.JumpCount++
	m.VerticalVelocity = parameter.JumpImpulse
	if m.JumpCount >= m.MaxJumpCharges {
		m.DoubleJumpAvailable = false
	}
	return true
}

// WallJump kicks off the wall, free of jump charges
func WallJump(m *component.MovementComponent, impulse *vmath.Vec3F) bool {
	if m.Mode != component.ModeWallRunning {
		return false
	}
	normal := m.WallNormal
	ExitWallRun(m)
	m.VerticalVelocity = parameter.JumpImpulse
	*impulse = vmath.V3FAdd(*impulse, vmath.V3FScale(normal, parameter.WallRunSpeed*0.5))
	return true
}

// Land resets jump bookkeeping on ground contact
func Land(m *component.MovementComponent) {
	m.JumpCount = 0
	m.DoubleJumpAvailable = true
	if m.VerticalVelocity < 0 {
		m.VerticalVelocity = 0
	}
}

// StartSlide begins a slide, only from Grounded mode on the ground
func StartSlide(m *component.MovementComponent, pos vmath.Vec3F) bool {
	if m.Mode != component.ModeGrounded || Airborne(pos) {
		return false
	}
	m.Mode = component.ModeSliding
	m.Speed = parameter.SlideSpeed
	m.SlideRemaining = parameter.SlideDuration
	return true
}

// TickSlide counts the slide down, ending on timeout or key release
func TickSlide(m *component.MovementComponent, dt time.Duration, held bool) bool {
	if m.Mode != component.ModeSliding {
		return false
	}
	m.SlideRemaining -= dt
	if m.SlideRemaining <= 0 || !held {
		EndSlide(m)
		return false
	}
	return true
}

// EndSlide leaves sliding, no-op in any other mode
func EndSlide(m *component.MovementComponent) {
	if m.Mode != component.ModeSliding {
		return
	}
	m.Mode = component.ModeGrounded
	m.SlideRemaining = 0
	m.Speed = m.BaseSpeed
}

// ResolveGrappleTarget raycasts forward, a miss targets the point at full range
func ResolveGrappleTarget(rc engine.Raycaster, origin, dir vmath.Vec3F, maxRange float64, ignore core.Entity) vmath.Vec3F {
	hit := rc.Raycast(origin, dir, maxRange, ignore)
	if hit.Hit {
		return hit.Point
	}
	return vmath.V3FAdd(origin, vmath.V3FScale(vmath.V3FNormalize(dir), maxRange))
}

// BeginGrapple attaches the hook, requires Grounded mode and an expired cooldown
func BeginGrapple(m *component.MovementComponent, target vmath.Vec3F) bool {
	if m.GrappleCooldown > 0 || m.Mode != component.ModeGrounded {
		return false
	}
	m.Mode = component.ModeGrappling
	m.GrappleTarget = target
	if m.GrappleSpeed <= 0 {
		m.GrappleSpeed = parameter.GrappleSpeed
	}
	m.VerticalVelocity = 0
	return true
}

// TickGrapple pulls pos toward the hook, ending the grapple in the tick it enters the arrival radius
func TickGrapple(m *component.MovementComponent, pos vmath.Vec3F, dt time.Duration) (vmath.Vec3F, bool) {
	if m.Mode != component.ModeGrappling {
		return pos, false
	}
	pos = vmath.V3FMoveTowards(pos, m.GrappleTarget, m.GrappleSpeed*dt.Seconds())
	if vmath.V3FDist(pos, m.GrappleTarget) <= parameter.GrappleArrivalRadius {
		EndGrapple(m)
		return pos, true
	}
	return pos, false
}

// EndGrapple releases the hook and starts the cooldown
func EndGrapple(m *component.MovementComponent) {
	if m.Mode != component.ModeGrappling {
		return
	}
	m.Mode = component.ModeGrounded
	m.GrappleTarget = vmath.Vec3F{}
	m.GrappleCooldown = parameter.GrappleCooldown
	m.Speed = m.BaseSpeed
}

// TickCooldowns decays movement timers independent of mode
func TickCooldowns(m *component.MovementComponent, dt time.Duration) {
	if m.GrappleCooldown > 0 {
		m.GrappleCooldown -= dt
		if m.GrappleCooldown < 0 {
			m.GrappleCooldown = 0
		}
	}
}

// WishDirection converts held keys and yaw into a horizontal unit vector
// Yaw 0 faces +Z
func WishDirection(yaw float64, forward, back, left, right bool) vmath.Vec3F {
	fwd := vmath.Vec3F{X: math.Sin(yaw), Z: math.Cos(yaw)}
	side := vmath.Vec3F{X: math.Cos(yaw), Z: -math.Sin(yaw)}

	var wish vmath.Vec3F
	if forward {
		wish = vmath.V3FAdd(wish, fwd)
	}
	if back {
		wish = vmath.V3FSub(wish, fwd)
	}
	if right {
		wish = vmath.V3FAdd(wish, side)
	}
	if left {
		wish = vmath.V3FSub(wish, side)
	}
	return vmath.V3FNormalize(wish)
}

// ViewDirection converts yaw and pitch into a unit look vector
func ViewDirection(yaw, pitch float64) vmath.Vec3F {
	cp := math.Cos(pitch)
	return vmath.Vec3F{X: math.Sin(yaw) * cp, Y: math.Sin(pitch), Z: math.Cos(yaw) * cp}
}

// ApplyGravity integrates vertical velocity, returns the new position and whether ground was touched
// Wall running and grappling suspend gravity
func ApplyGravity(m *component.MovementComponent, pos vmath.Vec3F, dt time.Duration) (vmath.Vec3F, bool) {
	if m.Mode == component.ModeWallRunning || m.Mode == component.ModeGrappling {
		return pos, false
	}
	sec := dt.Seconds()
	m.VerticalVelocity -= parameter.Gravity * sec
	pos.Y += m.VerticalVelocity * sec
	if pos.Y <= 0 {
		pos.Y = 0
		return pos, true
	}
	return pos, pos.Y <= parameter.GroundThreshold && m.VerticalVelocity <= 0
}
