package render

import (
	"math"

	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/vmath"
)

const (
	// StatusRows is the HUD height at the bottom of the screen
	StatusRows = 2

	// DefaultRadarScale is world units per terminal row
	DefaultRadarScale = 3.0

	// cellAspect compensates for terminal cells being about twice as tall as wide
	cellAspect = 2.0
)

// RenderContext provides frame state for renderers, passed by value
// Built under the world lock
type RenderContext struct {
	Frame int64

	// Screen dimensions (terminal size)
	Width  int
	Height int

	// Radar viewport, heading-up and centered on the camera
	RadarHeight int
	Camera      vmath.Vec3F
	Yaw         float64
	Scale       float64

	HUD engine.HUDSnapshot
}

// NewRenderContext captures the camera and HUD, caller holds the world lock
func NewRenderContext(w *engine.World, width, height int) RenderContext {
	ctx := RenderContext{
		Frame:       w.Resources.Time.FrameNumber,
		Width:       width,
		Height:      height,
		RadarHeight: max(height-StatusRows, 0),
		Yaw:         w.Resources.Input.Yaw,
		Scale:       DefaultRadarScale,
		HUD:         engine.CaptureHUD(w),
	}
	if t, ok := w.Components.Transform.GetComponent(w.PlayerEntity()); ok {
		ctx.Camera = t.Position
	}
	return ctx
}

// WorldToScreen projects a world point onto the radar
// Returns false when the point falls outside the radar area
func (rc *RenderContext) WorldToScreen(p vmath.Vec3F) (int, int, bool) {
	d := vmath.V3FSub(p, rc.Camera)
	sin, cos := math.Sincos(rc.Yaw)
	right := d.X*cos - d.Z*sin
	fwd := d.X*sin + d.Z*cos

	cx, cy := rc.Width/2, rc.RadarHeight/2
	x := cx + int(math.Round(right/rc.Scale*cellAspect))
	y := cy - int(math.Round(fwd/rc.Scale))
	return x, y, x >= 0 && x < rc.Width && y >= 0 && y < rc.RadarHeight
}

// ScreenToWorld is the inverse of WorldToScreen on the ground plane
func (rc *RenderContext) ScreenToWorld(x, y int) vmath.Vec3F {
	cx, cy := rc.Width/2, rc.RadarHeight/2
	right := float64(x-cx) * rc.Scale / cellAspect
	fwd := float64(cy-y) * rc.Scale
	sin, cos := math.Sincos(rc.Yaw)
	return vmath.Vec3F{
		X: rc.Camera.X + right*cos + fwd*sin,
		Z: rc.Camera.Z - right*sin + fwd*cos,
	}
}
