package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/heartreels/constants"
	"github.com/lixenwraith/heartreels/engine"
)

var (
	RgbClassicBackground = tcell.NewRGBColor(30, 30, 46)
	RgbClassicReel       = tcell.NewRGBColor(245, 245, 245)
	RgbClassicBorder     = tcell.NewRGBColor(150, 150, 170)
	RgbClassicText       = tcell.NewRGBColor(230, 230, 230)
	RgbClassicDim        = tcell.NewRGBColor(160, 160, 160)
)

// Classic machine geometry on the virtual surface
const (
	classicReelWidth   = 120.0
	classicRowHeight   = 80.0
	classicReelSpacing = 30.0
	classicReelTop     = 130.0
)

// ClassicFrame is the read-only snapshot of the fruit machine
type ClassicFrame struct {
	Rows     [][]string // Per reel: above, payline, below
	Flashing bool
	Balance  string
	Bet      string
	Message  string
	Status   string
}

// ClassicRenderer draws the fruit machine
type ClassicRenderer struct{}

// NewClassicRenderer creates a fruit machine renderer
func NewClassicRenderer() *ClassicRenderer {
	return &ClassicRenderer{}
}

// ReelRect returns the window of reel i among count reels
func (r *ClassicRenderer) ReelRect(i, count int) Rect {
	total := float64(count)*classicReelWidth + float64(count-1)*classicReelSpacing
	startX := (constants.SurfaceWidth - total) / 2
	return Rect{
		X: startX + float64(i)*(classicReelWidth+classicReelSpacing),
		Y: classicReelTop,
		W: classicReelWidth,
		H: 3 * classicRowHeight,
	}
}

// Draw renders one frame
func (r *ClassicRenderer) Draw(screen tcell.Screen, vp engine.Viewport, f ClassicFrame) {
	if !vp.Valid() {
		return
	}
	c := NewCanvas(screen, vp)
	c.FillRect(Rect{W: constants.SurfaceWidth, H: constants.SurfaceHeight}, RgbClassicBackground)
	c.Text(constants.SurfaceWidth/2, 70, "CLASSIC SLOTS", RgbGold, tcell.AttrBold)

	border := RgbClassicBorder
	if f.Flashing {
		border = RgbGold
	}

	for i, rows := range f.Rows {
		window := r.ReelRect(i, len(f.Rows))
		c.FillRect(window, RgbClassicReel)
		c.Border(Rect{X: window.X - 10, Y: window.Y - 20, W: window.W + 20, H: window.H + 40}, border)

		for j, sym := range rows {
			fg := RgbClassicDim
			if j == 1 {
				fg = RgbBannerIdle
			}
			c.GlyphAt(window.X+window.W/2, window.Y+(float64(j)+0.5)*classicRowHeight, sym, fg)
		}
	}

	if len(f.Rows) > 0 {
		first, last := r.ReelRect(0, len(f.Rows)), r.ReelRect(len(f.Rows)-1, len(f.Rows))
		payline := first.Y + 1.5*classicRowHeight
		c.GlyphAt(first.X-25, payline, "▶", RgbGold)
		c.GlyphAt(last.X+last.W+25, payline, "◀", RgbGold)
	}

	c.Text(constants.SurfaceWidth/2, 460, fmt.Sprintf("Balance: %s   Bet: %s", f.Balance, f.Bet), RgbClassicText, tcell.AttrNone)
	if f.Message != "" {
		fg := RgbClassicText
		if f.Flashing {
			fg = RgbGold
		}
		c.Text(constants.SurfaceWidth/2, 510, f.Message, fg, tcell.AttrBold)
	}
	if f.Status != "" {
		c.TextAt(0, 0, f.Status, RgbClassicDim, tcell.AttrNone)
	}
}
