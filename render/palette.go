package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Machine palette, taken from the canvas artwork
var (
	RgbBackground  = tcell.NewRGBColor(255, 240, 245) // Lavender blush
	RgbBody        = tcell.NewRGBColor(255, 153, 153) // #FF9999
	RgbArc         = tcell.NewRGBColor(102, 204, 204) // #66CCCC
	RgbArcDot      = tcell.NewRGBColor(255, 107, 136) // #FF6B88
	RgbGold        = tcell.NewRGBColor(255, 215, 0)   // #FFD700
	RgbBannerIdle  = tcell.NewRGBColor(0, 0, 0)
	RgbTagline     = tcell.NewRGBColor(51, 51, 51) // #333
	RgbReelOuter   = tcell.NewRGBColor(255, 128, 128)
	RgbReelInner   = tcell.NewRGBColor(255, 163, 163)
	RgbReelFace    = tcell.NewRGBColor(255, 204, 204)
	RgbSymbolText  = tcell.NewRGBColor(255, 255, 255)
	RgbIndicator   = tcell.NewRGBColor(255, 255, 0)
	RgbLeverShadow = tcell.NewRGBColor(255, 102, 102)
	RgbButton      = tcell.NewRGBColor(102, 204, 204)
	RgbButtonHover = tcell.NewRGBColor(124, 222, 222) // #7CDEDE
	RgbButtonText  = tcell.NewRGBColor(255, 255, 255)
	RgbHeart       = tcell.NewRGBColor(255, 20, 147) // Deep pink
	RgbStatusText  = tcell.NewRGBColor(120, 120, 120)
)

// toColorful converts a tcell colour for blending
func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Blend returns over composited onto base at the given opacity
func Blend(base, over tcell.Color, opacity float64) tcell.Color {
	if opacity <= 0 {
		return base
	}
	if opacity >= 1 {
		return over
	}
	return fromColorful(toColorful(base).BlendRgb(toColorful(over), opacity))
}

// FromRGBA converts a sprite pixel, ignoring alpha
func FromRGBA(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
