package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wave-fighter/engine"
)

// Depth orders layers, lower depths are painted first
type Depth int

const (
	DepthArena Depth = iota * 10
	DepthIndicator
	DepthEntity
	DepthHUD
	DepthOverlay
)

// Layer paints one slice of the frame; it runs under the world lock and must not block
type Layer interface {
	Render(ctx RenderContext, world *engine.World, buf *RenderBuffer)
}

type placedLayer struct {
	Layer
	depth Depth
}

// Compositor paints registered layers into a shared buffer and flushes it to the screen
type Compositor struct {
	screen tcell.Screen
	buffer *RenderBuffer
	layers []placedLayer
}

func NewCompositor(screen tcell.Screen) *Compositor {
	w, h := screen.Size()
	return &Compositor{
		screen: screen,
		buffer: NewRenderBuffer(w, h),
	}
}

// Add places a layer, layers sharing a depth paint in the order added
func (c *Compositor) Add(l Layer, depth Depth) {
	c.layers = append(c.layers, placedLayer{Layer: l, depth: depth})
	sort.SliceStable(c.layers, func(i, j int) bool {
		return c.layers[i].depth < c.layers[j].depth
	})
}

// Resize follows the screen and forces a full repaint
func (c *Compositor) Resize() {
	c.buffer.Resize(c.screen.Size())
	c.screen.Sync()
}

// RenderFrame snapshots the world into the buffer, then flushes outside the lock
func (c *Compositor) RenderFrame(world *engine.World) {
	world.RunSafe(func() {
		w, h := c.buffer.Size()
		ctx := NewRenderContext(world, w, h)
		c.buffer.Clear()
		for _, l := range c.layers {
			l.Render(ctx, world, c.buffer)
		}
	})
	c.buffer.Flush(c.screen)
}
