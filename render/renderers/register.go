package renderers

import (
	"github.com/lixenwraith/wave-fighter/render"
)

// RegisterDefaults installs the standard layer stack
func RegisterDefaults(c *render.Compositor, presenter *render.TerminalPresenter) {
	c.Add(NewArenaRenderer(), render.DepthArena)
	c.Add(NewIndicatorRenderer(), render.DepthIndicator)
	c.Add(NewEntityRenderer(presenter), render.DepthEntity)
	c.Add(NewStatusBarRenderer(), render.DepthHUD)
	c.Add(NewPauseRenderer(), render.DepthOverlay)
	c.Add(NewGameOverRenderer(), render.DepthOverlay)
}
