package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wave-fighter/component"
)

// RGB stores explicit 8-bit color channels, converted to tcell only at flush
type RGB struct {
	R, G, B uint8
}

// Color returns the tcell truecolor value
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Palette
var (
	RGBBlack      = RGB{0, 0, 0}
	RGBBackground = RGB{12, 14, 20}
	RGBOutside    = RGB{28, 20, 24}
	RGBGrid       = RGB{48, 54, 70}
	RGBText       = RGB{210, 214, 224}
	RGBDim        = RGB{120, 126, 140}

	RGBTelegraphStart = RGB{250, 210, 60}
	RGBTelegraphEnd   = RGB{240, 40, 30}

	RGBStatusBg    = RGB{30, 34, 48}
	RGBHealthOk    = RGB{80, 220, 110}
	RGBHealthLow   = RGB{240, 70, 60}
	RGBAudioOn     = RGB{60, 200, 90}
	RGBAudioMuted  = RGB{220, 50, 50}
	RGBGameOverBg  = RGB{90, 10, 16}
	RGBGameOverTxt = RGB{255, 230, 230}
)

// visualStyle is the glyph and color per presentation kind
type visualStyle struct {
	Glyph rune
	Fg    RGB
}

var visualStyles = map[component.VisualKind]visualStyle{
	component.VisualPlayer:     {'^', RGB{90, 200, 255}},
	component.VisualEnemy:      {'e', RGB{230, 90, 80}},
	component.VisualBoss:       {'B', RGB{255, 60, 200}},
	component.VisualProjectile: {'*', RGB{255, 240, 120}},
	component.VisualIndicator:  {'!', RGBTelegraphEnd},
	component.VisualLoot:       {'$', RGB{250, 200, 40}},
	component.VisualPowerup:    {'+', RGB{100, 240, 140}},
	component.VisualText:       {'"', RGBText},
}

// StyleFor returns the glyph and color for a visual kind
func StyleFor(kind component.VisualKind) (rune, RGB) {
	s, ok := visualStyles[kind]
	if !ok {
		return '?', RGBText
	}
	return s.Glyph, s.Fg
}
