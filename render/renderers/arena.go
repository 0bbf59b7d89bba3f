package renderers

import (
	"math"

	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/parameter"
	"github.com/lixenwraith/wave-fighter/render"
)

// gridSpacing is the world distance between grid dots
// Tolerances are half a cell, columns are half as wide as rows
const gridSpacing = 25.0

// ArenaRenderer shades the area outside the arena and draws a ground grid
type ArenaRenderer struct{}

// NewArenaRenderer creates an arena renderer
func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

// Render implements render.Layer
func (r *ArenaRenderer) Render(ctx render.RenderContext, _ *engine.World, buf *render.RenderBuffer) {
	for y := 0; y < ctx.RadarHeight; y++ {
		for x := 0; x < ctx.Width; x++ {
			p := ctx.ScreenToWorld(x, y)
			if math.Abs(p.X) > parameter.ArenaHalfExtent || math.Abs(p.Z) > parameter.ArenaHalfExtent {
				buf.SetBg(x, y, render.RGBOutside)
				continue
			}
			if nearMultiple(p.X, gridSpacing, ctx.Scale/4) && nearMultiple(p.Z, gridSpacing, ctx.Scale/2) {
				buf.Set(x, y, '·', render.RGBGrid)
			}
		}
	}
}

func nearMultiple(v, step, tol float64) bool {
	m := math.Mod(math.Abs(v), step)
	return m < tol || step-m < tol
}
