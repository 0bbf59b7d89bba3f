package vmath

import (
	"math"
	"testing"
)

func TestV3FNormalize(t *testing.T) {
	n := V3FNormalize(Vec3F{X: 3, Z: 4})
	if math.Abs(V3FMag(n)-1) > 1e-9 {
		t.Errorf("Expected unit length, got %f", V3FMag(n))
	}
	if z := V3FNormalize(Vec3F{}); !V3FIsZero(z) {
		t.Errorf("Expected zero vector for zero input, got %+v", z)
	}
}

func TestV3FMoveTowards(t *testing.T) {
	a := Vec3F{}
	b := Vec3F{X: 10}

	step := V3FMoveTowards(a, b, 4)
	if step.X != 4 {
		t.Errorf("Expected X=4, got %f", step.X)
	}

	arrive := V3FMoveTowards(a, b, 25)
	if arrive != b {
		t.Errorf("Expected to land exactly on target, got %+v", arrive)
	}
}

func TestV3FLerp(t *testing.T) {
	got := V3FLerp(Vec3F{Y: 1}, Vec3F{Y: 1, Z: 8}, 0.25)
	if got != (Vec3F{Y: 1, Z: 2}) {
		t.Errorf("Expected (0,1,2), got %+v", got)
	}
}

func TestFastRandRanges(t *testing.T) {
	rng := NewFastRand(42)
	for i := 0; i < 10000; i++ {
		f := rng.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
		n := rng.IntRange(2, 4)
		if n < 2 || n > 4 {
			t.Fatalf("IntRange out of range: %d", n)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	rng := NewFastRand(0)
	if rng.Next() == 0 {
		t.Error("Expected non-zero output for zero seed")
	}
}
