package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/heartreels/asset"
	"github.com/lixenwraith/heartreels/components"
	"github.com/lixenwraith/heartreels/constants"
	"github.com/lixenwraith/heartreels/engine"
	"github.com/lixenwraith/heartreels/systems"
)

// heartGlyphs approximate rotation by cycling through heart shapes
var heartGlyphs = []string{"♥", "❥", "♥", "❣"}

// Frame is the read-only snapshot drawn for one tick
type Frame struct {
	Reels         []components.ReelComponent
	Drifters      []components.DrifterComponent
	Particles     []components.ParticleComponent
	Jackpot       bool // Celebration in progress
	BannerVisible bool
	Button        components.ButtonComponent
	Status        string // Top-left help line
}

// MachineRenderer draws the heart machine back to front
type MachineRenderer struct {
	layout       MachineLayout
	library      *asset.Library
	evaluator    *systems.WinEvaluator
	symbolHeight float64
}

// NewMachineRenderer creates a renderer for a fixed layout
func NewMachineRenderer(layout MachineLayout, library *asset.Library, evaluator *systems.WinEvaluator, symbolHeight float64) *MachineRenderer {
	return &MachineRenderer{
		layout:       layout,
		library:      library,
		evaluator:    evaluator,
		symbolHeight: symbolHeight,
	}
}

// Layout returns the machine layout
func (r *MachineRenderer) Layout() MachineLayout {
	return r.layout
}

// Draw renders one frame
func (r *MachineRenderer) Draw(screen tcell.Screen, vp engine.Viewport, f Frame) {
	if !vp.Valid() {
		return
	}
	c := NewCanvas(screen, vp)

	c.FillRect(Rect{W: constants.SurfaceWidth, H: constants.SurfaceHeight}, RgbBackground)
	for _, d := range f.Drifters {
		c.GlyphAt(d.X, d.Y, d.Glyph, RgbTagline)
	}

	r.drawBody(c, f)
	r.drawReels(c, f.Reels)
	c.Border(r.layout.Indicator, RgbIndicator)
	r.drawLever(c)

	if f.Jackpot {
		drawHearts(c, vp, f.Particles)
	}
	drawButton(c, f.Button)

	if f.Status != "" {
		c.TextAt(0, 0, f.Status, RgbStatusText, tcell.AttrNone)
	}
}

func (r *MachineRenderer) drawBody(c Canvas, f Frame) {
	l := r.layout
	c.FillDisc(l.CenterX, l.Top, l.ArcRadius, RgbArc, true)
	c.FillRect(l.Body, RgbBody)

	c.GlyphAt(l.CenterX, l.Top-constants.HeartOffset, "💖", RgbHeart)

	if f.BannerVisible {
		bannerColor, dotColor := RgbBannerIdle, RgbArcDot
		if f.Jackpot {
			bannerColor, dotColor = RgbGold, RgbGold
		}
		c.Text(l.CenterX, l.Top-constants.BannerOffset, constants.JackpotText, bannerColor, tcell.AttrBold)

		for i := 0; i < constants.ArcDotCount; i++ {
			angle := math.Pi * (1 + float64(i)/float64(constants.ArcDotCount-1))
			dist := l.ArcRadius + constants.ArcDotDistance
			c.GlyphAt(l.CenterX+dist*math.Cos(angle), l.Top+dist*math.Sin(angle), "●", dotColor)
		}
	}

	c.Text(l.CenterX, l.Top+constants.MegaWinOffset, constants.MegaWinText, RgbGold, tcell.AttrBold)
	c.Text(l.CenterX, l.Top+constants.TaglineOffset, constants.TaglineText, RgbTagline, tcell.AttrNone)
}

// drawReels paints each reel window with one extra symbol above and below,
// clipped to the window
func (r *MachineRenderer) drawReels(c Canvas, reels []components.ReelComponent) {
	l := r.layout
	c.FillRect(l.Panel, RgbBody)

	for i, reel := range reels {
		if i >= len(l.Reels) {
			break
		}
		window := l.Reels[i]
		c.FillRect(Rect{X: window.X - 5, Y: window.Y - 5, W: window.W + 10, H: window.H + 10}, RgbReelOuter)
		c.FillRect(Rect{X: window.X - 2, Y: window.Y - 2, W: window.W + 4, H: window.H + 4}, RgbReelInner)
		c.FillRect(window, RgbReelFace)

		offset := math.Mod(reel.Position, r.symbolHeight)
		for j := -1; j <= constants.VisibleSymbols; j++ {
			symbolY := window.Y + float64(j)*r.symbolHeight - offset
			symbol := r.evaluator.Symbol(reel.Position, j)
			r.drawSymbol(c, symbol, window, symbolY)
		}
	}
}

func (r *MachineRenderer) drawSymbol(c Canvas, symbol string, window Rect, symbolY float64) {
	cell := Rect{X: window.X, Y: symbolY, W: window.W, H: r.symbolHeight}
	if cell.Intersect(window).Empty() {
		return
	}

	if sp, ok := r.library.Sprite(symbol); ok {
		inset := r.layout.SymbolInset
		size := math.Min(window.W, r.symbolHeight) - 2*inset
		dst := Rect{
			X: window.X + (window.W-size)/2,
			Y: symbolY + (r.symbolHeight-size)/2,
			W: size,
			H: size,
		}
		c.Sprite(sp, dst, window)
		return
	}

	centerY := symbolY + r.symbolHeight/2
	if window.Contains(window.X, centerY) {
		c.GlyphAt(window.X+window.W/2, centerY, r.library.Glyph(symbol), RgbSymbolText)
	}
}

func (r *MachineRenderer) drawLever(c Canvas) {
	l := r.layout
	c.FillRect(l.LeverJoint, RgbReelOuter)
	c.FillRect(l.LeverArm, RgbBody)
	c.FillRect(Rect{X: l.LeverArm.X + 14, Y: l.LeverArm.Y, W: 6, H: l.LeverArm.H}, RgbLeverShadow)
	c.FillDisc(l.LeverKnobX, l.LeverKnobY, l.LeverKnobR, RgbReelOuter, false)
}

// drawHearts blends each heart over whatever lies beneath it
func drawHearts(c Canvas, vp engine.Viewport, particles []components.ParticleComponent) {
	for _, p := range particles {
		col, row := vp.ToCell(p.X, p.Y)
		if !vp.InBounds(col, row) {
			continue
		}
		turn := math.Mod(p.Rotation, 2*math.Pi)
		if turn < 0 {
			turn += 2 * math.Pi
		}
		glyph := heartGlyphs[int(turn/(2*math.Pi)*float64(len(heartGlyphs)))%len(heartGlyphs)]
		fg := Blend(c.Background(col, row), RgbHeart, p.Opacity)
		c.Glyph(col, row, glyph, fg)
	}
}

func drawButton(c Canvas, b components.ButtonComponent) {
	bg := RgbButton
	if b.Hover {
		bg = RgbButtonHover
	}
	rect := Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
	c.FillRect(rect, bg)
	c.Text(b.X+b.Width/2, b.Y+b.Height/2, b.Label, RgbButtonText, tcell.AttrBold)
}
