package renderers

import (
	"fmt"
	"time"

	"github.com/lixenwraith/wave-fighter/engine"
	"github.com/lixenwraith/wave-fighter/render"
)

const audioStr = " AUDIO "

// StatusBarRenderer draws the HUD rows at the bottom
type StatusBarRenderer struct {
	// FPS Tracking
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{
		lastFpsUpdate: time.Now(),
	}
}

// Render implements render.Layer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, world *engine.World, buf *render.RenderBuffer) {
	s.frameCount++
	now := time.Now()
	if now.Sub(s.lastFpsUpdate) >= time.Second {
		s.currentFps = s.frameCount
		s.frameCount = 0
		s.lastFpsUpdate = now
	}

	top := ctx.RadarHeight
	if top >= ctx.Height {
		return
	}
	for y := top; y < ctx.Height; y++ {
		buf.FillRow(y, render.RGBStatusBg)
	}

	h := ctx.HUD
	x := 0

	if a := world.Resources.Audio; a != nil && a.IsRunning() {
		bg := render.RGBAudioOn
		if a.IsMuted() {
			bg = render.RGBAudioMuted
		}
		x = buf.SetString(x, top, audioStr, render.RGBBlack, bg) + 1
	}

	hp := render.RGBHealthOk
	if h.MaxHealth > 0 && h.Health/h.MaxHealth < 0.3 {
		hp = render.RGBHealthLow
	}
	x = buf.SetString(x, top, fmt.Sprintf("HP %d/%d", int(h.Health), int(h.MaxHealth)), hp, render.RGBStatusBg) + 2

	reload := ""
	if h.Reloading {
		reload = " reloading"
	}
	x = buf.SetString(x, top, fmt.Sprintf("%s %d/%d%s", h.Weapon, h.Ammo, h.MaxAmmo, reload), render.RGBText, render.RGBStatusBg) + 2
	buf.SetString(x, top, fmt.Sprintf("$%d  score %d  armor %s", h.Money, h.Score, h.Armor), render.RGBText, render.RGBStatusBg)

	if top+1 >= ctx.Height {
		return
	}
	line := fmt.Sprintf("wave %d %s %d/%d  enemies %d  bosses %d  %s jumps %d  items %d  %d fps",
		h.Wave, h.WavePhase, h.WaveKills, h.WaveQuota,
		h.Enemies, h.Bosses,
		h.Mode, h.JumpsLeft, h.Inventory, s.currentFps)
	buf.SetString(0, top+1, line, render.RGBDim, render.RGBStatusBg)
}
