package system

import (
	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/event"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/physics"
	"github.com/lixenwraith/wave-fighter/status"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// MovementSystem drives the player movement state machine from the input snapshot
type MovementSystem struct {
	world *engine.World

	statMode  *status.Label
	statSpeed *status.Float

	enabled bool
}

func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{
		world: world,
	}

	s.statMode = world.Resources.Status.Strings.Get("movement.mode")
	s.statSpeed = world.Resources.Status.Floats.Get("movement.speed")

	s.Init()
	return s
}

func (s *MovementSystem) Init() {
	s.enabled = true
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventMetaSystemCommandRequest,
	}
}

func (s *MovementSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	handleMeta(ev, s.Name(), &s.enabled)
}

func (s *MovementSystem) Update() {
	if !s.enabled || !s.world.Playing() {
		return
	}

	p := s.world.PlayerEntity()
	t, ok := s.world.Components.Transform.GetComponent(p)
	if !ok {
		return
	}
	m, ok := s.world.Components.Movement.GetComponent(p)
	if !ok {
		return
	}

	in := s.world.Resources.Input.InputSnapshot
	dt := s.world.Resources.Time.DeltaTime

	t.Facing = physics.ViewDirection(in.Yaw, in.Pitch)
	physics.TickCooldowns(&m, dt)

	s.maintainModes(&m, t.Position, in)
	s.handleEdges(p, &m, &t, in)
	t.Position = s.locomote(p, &m, &t, in)

	s.world.Components.Movement.SetComponent(p, m)
	s.world.Components.Transform.SetComponent(p, t)

	s.statMode.Store(m.Mode.String())
	s.statSpeed.Store(m.Speed)
}

// maintainModes ticks timed modes, ending them when their conditions stop holding
func (s *MovementSystem) maintainModes(m *component.MovementComponent, pos vmath.Vec3F, in engine.InputSnapshot) {
	dt := s.world.Resources.Time.DeltaTime

	switch m.Mode {
	case component.ModeWallRunning:
		valid := in.Forward && pos.Y > parameter.WallRunMinHeight
		if wf, ok := s.world.Resources.Raycaster.(wallFinder); ok {
			valid = valid && wf.WallStillInRange(pos, m.WallIndex, parameter.WallRunDetectRange)
		}
		physics.TickWallRun(m, dt, valid)
	case component.ModeSliding:
		physics.TickSlide(m, dt, in.SlideHeld)
	}
}

// handleEdges consumes the key edges of this tick
func (s *MovementSystem) handleEdges(p core.Entity, m *component.MovementComponent, t *component.TransformComponent, in engine.InputSnapshot) {
	if in.JumpPressed {
		jumped := false
		if m.Mode == component.ModeWallRunning {
			jumped = physics.WallJump(m, &t.Impulse)
		} else {
			jumped = physics.Jump(m, t.Position)
		}
		if jumped {
			s.world.PlaySound(core.SoundJump)
		}
	}

	if in.SlidePressed {
		physics.StartSlide(m, t.Position)
	}

	if in.GrapplePressed && m.Mode == component.ModeGrounded && m.GrappleCooldown <= 0 {
		grappleRange := parameter.GrappleRange
		if pc, ok := s.world.Components.Player.GetComponent(p); ok {
			grappleRange *= pc.Mods.GrappleRange
		}
		origin := vmath.V3FAdd(t.Position, vmath.Vec3F{Y: parameter.PlayerEyeHeight})
		target := physics.ResolveGrappleTarget(s.world.Resources.Raycaster, origin, t.Facing, grappleRange, p)
		if physics.BeginGrapple(m, target) {
			s.world.PlaySound(core.SoundGrapple)
		}
	}

	// Airborne near a runnable wall with forward held
	if m.Mode == component.ModeGrounded && physics.Airborne(t.Position) {
		if wf, ok := s.world.Resources.Raycaster.(wallFinder); ok {
			if normal, idx, found := physics.TryStartWallRun(wf, t.Position, in.Forward); found {
				physics.EnterWallRun(m, normal, idx)
			}
		}
	}
}

// locomote integrates the mode-specific displacement, gravity and knockback
func (s *MovementSystem) locomote(p core.Entity, m *component.MovementComponent, t *component.TransformComponent, in engine.InputSnapshot) vmath.Vec3F {
	dt := s.world.Resources.Time.DeltaTime
	sec := dt.Seconds()
	pos := t.Position

	speed := m.Speed
	if pc, ok := s.world.Components.Player.GetComponent(p); ok {
		speed *= pc.Mods.Speed
	}
	if b, ok := s.world.Components.Buff.GetComponent(p); ok {
		speed *= b.Multiplier(component.BuffSpeed) * b.Multiplier(component.BuffSlow)
	}

	heading := vmath.V3FNormalize(vmath.V3FFlat(t.Facing))

	switch m.Mode {
	case component.ModeGrappling:
		pos, _ = physics.TickGrapple(m, pos, dt)
	case component.ModeWallRunning:
		dir := physics.WallRunDirection(m.WallNormal, heading)
		pos = vmath.V3FAdd(pos, vmath.V3FScale(dir, speed*sec))
	case component.ModeSliding:
		pos = vmath.V3FAdd(pos, vmath.V3FScale(heading, speed*sec))
	default:
		wish := physics.WishDirection(in.Yaw, in.Forward, in.Back, in.Left, in.Right)
		pos = vmath.V3FAdd(pos, vmath.V3FScale(wish, speed*sec))
	}

	var landed bool
	pos, landed = physics.ApplyGravity(m, pos, dt)
	if landed {
		physics.Land(m)
	}

	pos = physics.IntegrateImpulse(pos, &t.Impulse, dt)
	return clampToArena(s.world, pos)
}
