package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one composited screen position
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

var emptyCell = Cell{Rune: ' ', Fg: RGBText, Bg: RGBBackground}

// RenderBuffer is a compositor with dirty tracking against the last flushed frame
type RenderBuffer struct {
	cells   []Cell
	flushed []Cell
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
// Forces a full redraw on next flush
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.flushed = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
		b.flushed = b.flushed[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
	for i := range b.flushed {
		b.flushed[i] = Cell{}
	}
}

// Clear resets all cells using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns the buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y, empty when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// Set writes a glyph with foreground, keeping the existing background
func (b *RenderBuffer) Set(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
	c.Attrs = tcell.AttrNone
}

// SetBold writes a bold glyph
func (b *RenderBuffer) SetBold(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.Set(x, y, r, fg)
	b.cells[y*b.width+x].Attrs = tcell.AttrBold
}

// SetBg replaces the background at x,y
func (b *RenderBuffer) SetBg(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// BlendBg alpha-blends a background tint at x,y
func (b *RenderBuffer) BlendBg(x, y int, bg RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Bg = c.Bg.Blend(bg, alpha)
}

// SetString writes text left to right, returns the column after the last rune
func (b *RenderBuffer) SetString(x, y int, s string, fg, bg RGB) int {
	for _, r := range s {
		if b.inBounds(x, y) {
			c := &b.cells[y*b.width+x]
			c.Rune, c.Fg, c.Bg, c.Attrs = r, fg, bg, tcell.AttrNone
		}
		x++
	}
	return x
}

// FillRow paints a full row background and clears its glyphs
func (b *RenderBuffer) FillRow(y int, bg RGB) {
	for x := 0; x < b.width; x++ {
		if b.inBounds(x, y) {
			b.cells[y*b.width+x] = Cell{Rune: ' ', Fg: RGBText, Bg: bg}
		}
	}
}

// Flush writes changed cells to the screen and shows it
func (b *RenderBuffer) Flush(screen tcell.Screen) int {
	written := 0
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := y*b.width + x
			c := b.cells[idx]
			if c == b.flushed[idx] {
				continue
			}
			style := tcell.StyleDefault.Foreground(c.Fg.Color()).Background(c.Bg.Color()).Attributes(c.Attrs)
			screen.SetContent(x, y, c.Rune, nil, style)
			b.flushed[idx] = c
			written++
		}
	}
	screen.Show()
	return written
}
