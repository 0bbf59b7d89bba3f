package renderers

import (
	"fmt"

	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/render"
)

// PauseRenderer draws a banner across the radar while the simulation is frozen
type PauseRenderer struct{}

// NewPauseRenderer creates a pause banner
func NewPauseRenderer() *PauseRenderer {
	return &PauseRenderer{}
}

// Render implements render.Layer
func (r *PauseRenderer) Render(ctx render.RenderContext, _ *engine.World, buf *render.RenderBuffer) {
	if !ctx.HUD.Paused || ctx.HUD.GameOver {
		return
	}
	const banner = " PAUSED  esc resume "
	buf.SetString((ctx.Width-len(banner))/2, ctx.RadarHeight/2, banner, render.RGBGameOverTxt, render.RGBGameOverBg)
}

// GameOverRenderer draws the final summary box, visible only after death
type GameOverRenderer struct{}

// NewGameOverRenderer creates a game over overlay
func NewGameOverRenderer() *GameOverRenderer {
	return &GameOverRenderer{}
}

// Render implements render.Layer
func (r *GameOverRenderer) Render(ctx render.RenderContext, _ *engine.World, buf *render.RenderBuffer) {
	if !ctx.HUD.GameOver {
		return
	}

	lines := []string{
		"GAME OVER",
		fmt.Sprintf("score %d  wave %d  kills %d", ctx.HUD.Score, ctx.HUD.Wave, ctx.HUD.Kills),
		"ctrl-r restart  q quit",
	}

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	width += 4

	x0 := (ctx.Width - width) / 2
	y0 := (ctx.RadarHeight - len(lines) - 2) / 2
	for dy := 0; dy < len(lines)+2; dy++ {
		for dx := 0; dx < width; dx++ {
			buf.Set(x0+dx, y0+dy, ' ', render.RGBGameOverTxt)
			buf.SetBg(x0+dx, y0+dy, render.RGBGameOverBg)
		}
	}
	for i, l := range lines {
		buf.SetString(x0+(width-len(l))/2, y0+1+i, l, render.RGBGameOverTxt, render.RGBGameOverBg)
	}
}
