package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/vmath"
)

func playerPos(r *rig) vmath.Vec3F {
	tc, _ := r.world.Components.Transform.GetComponent(r.player)
	return tc.Position
}

func movementOf(r *rig) component.MovementComponent {
	m, _ := r.world.Components.Movement.GetComponent(r.player)
	return m
}

func TestWalkSpeed(t *testing.T) {
	tests := []struct {
		name string
		slow bool
		want float64
	}{
		{"base speed", false, parameter.PlayerBaseSpeed},
		{"slowed", true, parameter.PlayerBaseSpeed * parameter.RoarSlowMultiplier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, NewMovementSystem)
			if tt.slow {
				r.world.Components.Buff.Mutate(r.player, func(b *component.BuffComponent) {
					b.Apply(component.BuffSlow, parameter.RoarSlowMultiplier, time.Minute)
				})
			}
			r.world.Resources.Input.Forward = true

			r.step(10)

			pos := playerPos(r)
			if math.Abs(pos.Z-tt.want) > 1e-6 || math.Abs(pos.X) > 1e-6 {
				t.Errorf("Expected to walk %v along +Z, got %+v", tt.want, pos)
			}
		})
	}
}

func TestJumpAndLand(t *testing.T) {
	r := newRig(t, NewMovementSystem)
	r.world.Resources.Input.JumpPressed = true

	r.step(1)
	if y := playerPos(r).Y; y <= 0 {
		t.Fatalf("Expected airborne after jump, got Y=%v", y)
	}
	if got := movementOf(r).JumpCount; got != 1 {
		t.Errorf("Expected jump count 1, got %d", got)
	}

	r.step(20)
	if y := playerPos(r).Y; y != 0 {
		t.Errorf("Expected landed, got Y=%v", y)
	}
	m := movementOf(r)
	if m.JumpCount != 0 || !m.DoubleJumpAvailable {
		t.Errorf("Expected jump state reset on landing, got count=%d double=%v", m.JumpCount, m.DoubleJumpAvailable)
	}
}

func TestSlideEndsOnRelease(t *testing.T) {
	r := newRig(t, NewMovementSystem)
	in := r.world.Resources.Input
	in.SlidePressed = true
	in.SlideHeld = true

	r.step(1)
	if got := movementOf(r).Mode; got != component.ModeSliding {
		t.Fatalf("Expected sliding, got %v", got)
	}

	in.SlideHeld = false
	r.step(1)
	m := movementOf(r)
	if m.Mode != component.ModeGrounded {
		t.Errorf("Expected grounded after release, got %v", m.Mode)
	}
	if m.Speed != m.BaseSpeed {
		t.Errorf("Expected base speed restored, got %v", m.Speed)
	}
}

func TestGrappleMissTargetsFullRange(t *testing.T) {
	r := newRig(t, NewMovementSystem)
	r.world.Resources.Input.GrapplePressed = true

	r.step(1)
	m := movementOf(r)
	if m.Mode != component.ModeGrappling {
		t.Fatalf("Expected grappling, got %v", m.Mode)
	}
	if math.Abs(m.GrappleTarget.Z-parameter.GrappleRange) > 1e-6 {
		t.Errorf("Expected hook at range %v, got %+v", parameter.GrappleRange, m.GrappleTarget)
	}

	r.step(25)
	m = movementOf(r)
	if m.Mode != component.ModeGrounded {
		t.Errorf("Expected grapple finished, got %v", m.Mode)
	}
	if m.GrappleCooldown <= 0 {
		t.Errorf("Expected grapple cooldown running, got %v", m.GrappleCooldown)
	}
	if z := playerPos(r).Z; z < parameter.GrappleRange-parameter.GrappleArrivalRadius-1 {
		t.Errorf("Expected player pulled toward hook, got Z=%v", z)
	}
}

func TestEnemyPursuesPlayer(t *testing.T) {
	r := newRig(t, NewEnemySystem)
	e := SpawnEnemy(r.world, component.EnemyGrunt, vmath.Vec3F{Y: parameter.EnemySpawnHeight, Z: 20})

	r.step(10)

	tc, _ := r.world.Components.Transform.GetComponent(e)
	speed := r.world.Resources.Catalog.Enemies[component.EnemyGrunt].Speed
	if want := 20 - speed; math.Abs(tc.Position.Z-want) > 1e-6 {
		t.Errorf("Expected enemy at Z=%v after one second, got %v", want, tc.Position.Z)
	}
	if tc.Position.Y != parameter.EnemySpawnHeight {
		t.Errorf("Expected enemy on its ground height, got Y=%v", tc.Position.Y)
	}
}
