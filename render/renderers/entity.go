package renderers

import (
	"github.com/lixenwraith/wave-fighter/component"
	"github.com/lixenwraith/wave-fighter/core"
	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/render"
)

// drawOrder puts the player and bosses on top of smaller actors sharing a cell
var drawOrder = [...]component.VisualKind{
	component.VisualLoot,
	component.VisualPowerup,
	component.VisualIndicator,
	component.VisualProjectile,
	component.VisualEnemy,
	component.VisualBoss,
	component.VisualText,
	component.VisualPlayer,
}

// EntityRenderer draws every entity with a visual as a glyph on the radar
type EntityRenderer struct {
	presenter *render.TerminalPresenter
	byKind    [len(drawOrder)][]core.Entity
}

// NewEntityRenderer creates an entity renderer, labels come from the presenter when non-nil
func NewEntityRenderer(presenter *render.TerminalPresenter) *EntityRenderer {
	return &EntityRenderer{presenter: presenter}
}

// Render implements render.Layer
func (r *EntityRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	for i := range r.byKind {
		r.byKind[i] = r.byKind[i][:0]
	}
	for _, e := range world.Components.Visual.GetAllEntities() {
		v, ok := world.Components.Visual.GetComponent(e)
		if !ok {
			continue
		}
		for i, k := range drawOrder {
			if k == v.Kind {
				r.byKind[i] = append(r.byKind[i], e)
				break
			}
		}
	}

	for i, kind := range drawOrder {
		glyph, fg := render.StyleFor(kind)
		for _, e := range r.byKind[i] {
			t, ok := world.Components.Transform.GetComponent(e)
			if !ok {
				continue
			}
			x, y, visible := ctx.WorldToScreen(t.Position)
			if !visible {
				continue
			}

			if kind == component.VisualBoss || kind == component.VisualPlayer {
				buf.SetBold(x, y, glyph, fg)
			} else {
				buf.Set(x, y, glyph, fg)
			}

			if r.presenter == nil {
				continue
			}
			v, _ := world.Components.Visual.GetComponent(e)
			if label := r.presenter.Label(engine.VisualHandle(v.Handle)); label != "" {
				buf.SetString(x+2, y, label, render.RGBDim, buf.Get(x+2, y).Bg)
			}
		}
	}
}
