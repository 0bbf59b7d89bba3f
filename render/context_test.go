package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/wave-fighter/vmath"
)

func TestWorldToScreen_HeadingUp(t *testing.T) {
	ctx := RenderContext{Width: 80, Height: 25, RadarHeight: 23, Scale: 3}

	tests := []struct {
		name  string
		yaw   float64
		p     vmath.Vec3F
		wantX int
		wantY int
	}{
		{"ahead", 0, vmath.Vec3F{Z: 30}, 40, 1},
		{"right", 0, vmath.Vec3F{X: 15}, 50, 11},
		{"turned right, old ahead is left", math.Pi / 2, vmath.Vec3F{Z: 15}, 30, 11},
		{"turned right, +X ahead", math.Pi / 2, vmath.Vec3F{X: 30}, 40, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx.Yaw = tt.yaw
			x, y, ok := ctx.WorldToScreen(tt.p)
			if !ok {
				t.Fatalf("Expected visible")
			}
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Expected (%d,%d), got (%d,%d)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestScreenToWorld_Inverse(t *testing.T) {
	ctx := RenderContext{Width: 80, Height: 25, RadarHeight: 23, Scale: 3, Yaw: 0.7, Camera: vmath.Vec3F{X: 10, Z: -4}}

	for _, c := range [][2]int{{0, 0}, {40, 11}, {79, 22}, {13, 5}} {
		p := ctx.ScreenToWorld(c[0], c[1])
		x, y, _ := ctx.WorldToScreen(p)
		if x != c[0] || y != c[1] {
			t.Errorf("Expected round trip to (%d,%d), got (%d,%d)", c[0], c[1], x, y)
		}
	}
}

func TestWorldToScreen_OffRadar(t *testing.T) {
	ctx := RenderContext{Width: 80, Height: 25, RadarHeight: 23, Scale: 3}
	if _, _, ok := ctx.WorldToScreen(vmath.Vec3F{Z: 500}); ok {
		t.Errorf("Expected far point outside radar")
	}
}
