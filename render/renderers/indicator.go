package renderers

import (
	"math"

	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/render"
	"github.com/lixenwraith/wave-fighter/vmath"
)

// IndicatorRenderer draws boss telegraph areas, tinting from warning to impact as the countdown runs
type IndicatorRenderer struct{}

// NewIndicatorRenderer creates an indicator renderer
func NewIndicatorRenderer() *IndicatorRenderer {
	return &IndicatorRenderer{}
}

// Render implements render.Layer
func (r *IndicatorRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	for _, e := range world.Components.Indicator.GetAllEntities() {
		ind, ok := world.Components.Indicator.GetComponent(e)
		if !ok {
			continue
		}
		t, ok := world.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}

		progress := ind.Progress()
		color := render.RGBTelegraphStart.Blend(render.RGBTelegraphEnd, progress)
		alpha := 0.25 + 0.5*progress

		center := vmath.V3FFlat(t.Position)
		cx, cy, _ := ctx.WorldToScreen(center)
		ry := int(math.Ceil(ind.Radius/ctx.Scale)) + 1
		rx := ry * 2

		for y := cy - ry; y <= cy+ry; y++ {
			if y < 0 || y >= ctx.RadarHeight {
				continue
			}
			for x := cx - rx; x <= cx+rx; x++ {
				p := ctx.ScreenToWorld(x, y)
				if vmath.V3FDist(p, center) <= ind.Radius {
					buf.BlendBg(x, y, color, alpha)
				}
			}
		}
	}
}
