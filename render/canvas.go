package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/heartreels/asset"
	"github.com/lixenwraith/heartreels/engine"
)

// Rect is an axis-aligned region of the virtual surface
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside, right and bottom edges excluded
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlap of two rects, zero-sized when disjoint
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := math.Max(r.X, o.X), math.Max(r.Y, o.Y)
	x1, y1 := math.Min(r.X+r.W, o.X+o.W), math.Min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether the rect has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Canvas draws virtual-surface shapes onto terminal cells. Text and glyphs
// keep the background already painted beneath them.
type Canvas struct {
	screen tcell.Screen
	vp     engine.Viewport
}

// NewCanvas binds a screen to the current viewport
func NewCanvas(screen tcell.Screen, vp engine.Viewport) Canvas {
	return Canvas{screen: screen, vp: vp}
}

// Background returns the background colour of a cell
func (c Canvas) Background(col, row int) tcell.Color {
	_, _, style, _ := c.screen.GetContent(col, row)
	_, bg, _ := style.Decompose()
	return bg
}

func (c Canvas) set(col, row int, mainc rune, combc []rune, style tcell.Style) {
	if !c.vp.InBounds(col, row) {
		return
	}
	c.screen.SetContent(col, row, mainc, combc, style)
}

// cellRange returns the cells whose centres fall inside r
func (c Canvas) cellRange(r Rect) (col0, row0, col1, row1 int) {
	col0, row0 = c.vp.ToCell(r.X+c.vp.Scale/2, r.Y+c.vp.RowScale()/2)
	col1, row1 = c.vp.ToCell(r.X+r.W-c.vp.Scale/2, r.Y+r.H-c.vp.RowScale()/2)
	return col0, row0, col1, row1
}

// FillRect paints the cells covered by r with a solid colour. Rects thinner
// than a cell still take one cell so small details stay visible.
func (c Canvas) FillRect(r Rect, color tcell.Color) {
	if !c.vp.Valid() || r.Empty() {
		return
	}
	col0, row0, col1, row1 := c.cellRange(r)
	col1, row1 = max(col0, col1), max(row0, row1)
	style := tcell.StyleDefault.Background(color)
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			c.set(col, row, ' ', nil, style)
		}
	}
}

// FillDisc paints a disc, or its upper half when upper is set
func (c Canvas) FillDisc(cx, cy, radius float64, color tcell.Color, upper bool) {
	if !c.vp.Valid() {
		return
	}
	bottom := cy + radius
	if upper {
		bottom = cy
	}
	col0, row0 := c.vp.ToCell(cx-radius, cy-radius)
	col1, row1 := c.vp.ToCell(cx+radius, bottom)
	style := tcell.StyleDefault.Background(color)
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			x, y := c.vp.ToVirtual(col, row)
			if upper && y > cy {
				continue
			}
			if math.Hypot(x-cx, y-cy) <= radius {
				c.set(col, row, ' ', nil, style)
			}
		}
	}
}

// Glyph draws a possibly multi-rune glyph with its first cell at col, row
func (c Canvas) Glyph(col, row int, glyph string, fg tcell.Color) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(fg).Background(c.Background(col, row))
	c.set(col, row, runes[0], runes[1:], style)
}

// GlyphAt draws a glyph centred on a virtual point
func (c Canvas) GlyphAt(x, y float64, glyph string, fg tcell.Color) {
	if !c.vp.Valid() {
		return
	}
	col, row := c.vp.ToCell(x, y)
	col -= (runewidth.StringWidth(glyph) - 1) / 2
	c.Glyph(col, row, glyph, fg)
}

// Text draws a string centred horizontally on x
func (c Canvas) Text(x, y float64, text string, fg tcell.Color, attrs tcell.AttrMask) {
	if !c.vp.Valid() {
		return
	}
	col, row := c.vp.ToCell(x, y)
	c.TextAt(col-runewidth.StringWidth(text)/2, row, text, fg, attrs)
}

// TextAt draws a string starting at a cell; zero-width runes attach to the
// preceding cell
func (c Canvas) TextAt(col, row int, text string, fg tcell.Color, attrs tcell.AttrMask) {
	var (
		prev  rune
		combc []rune
		at    = col
	)
	flush := func() {
		if prev == 0 {
			return
		}
		style := tcell.StyleDefault.Foreground(fg).Background(c.Background(at, row)).Attributes(attrs)
		c.set(at, row, prev, combc, style)
		at += max(1, runewidth.RuneWidth(prev))
	}

	for _, r := range text {
		if runewidth.RuneWidth(r) == 0 && prev != 0 {
			combc = append(combc, r)
			continue
		}
		flush()
		prev, combc = r, nil
	}
	flush()
}

// Border outlines r with rounded box-drawing characters
func (c Canvas) Border(r Rect, fg tcell.Color) {
	if !c.vp.Valid() || r.Empty() {
		return
	}
	col0, row0 := c.vp.ToCell(r.X, r.Y)
	col1, row1 := c.vp.ToCell(r.X+r.W, r.Y+r.H)
	if col1 <= col0 || row1 <= row0 {
		return
	}

	for col := col0 + 1; col < col1; col++ {
		c.Glyph(col, row0, "─", fg)
		c.Glyph(col, row1, "─", fg)
	}
	for row := row0 + 1; row < row1; row++ {
		c.Glyph(col0, row, "│", fg)
		c.Glyph(col1, row, "│", fg)
	}
	c.Glyph(col0, row0, "╭", fg)
	c.Glyph(col1, row0, "╮", fg)
	c.Glyph(col0, row1, "╰", fg)
	c.Glyph(col1, row1, "╯", fg)
}

// Sprite paints sp stretched over dst, clipped to clip. Each cell carries two
// vertical pixels as an upper half block; transparent pixels show the
// existing background.
func (c Canvas) Sprite(sp *asset.Sprite, dst, clip Rect) {
	area := dst.Intersect(clip)
	if !c.vp.Valid() || area.Empty() || sp == nil {
		return
	}

	quarter := c.vp.RowScale() / 4
	col0, row0 := c.vp.ToCell(area.X, area.Y)
	col1, row1 := c.vp.ToCell(area.X+area.W, area.Y+area.H)
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if !c.vp.InBounds(col, row) {
				continue
			}
			x, y := c.vp.ToVirtual(col, row)
			upper, upperOK := c.samplePixel(sp, dst, area, x, y-quarter)
			lower, lowerOK := c.samplePixel(sp, dst, area, x, y+quarter)
			if !upperOK && !lowerOK {
				continue
			}

			bg := c.Background(col, row)
			if !upperOK {
				upper = bg
			}
			if !lowerOK {
				lower = bg
			}
			c.set(col, row, '▀', nil, tcell.StyleDefault.Foreground(upper).Background(lower))
		}
	}
}

func (c Canvas) samplePixel(sp *asset.Sprite, dst, area Rect, x, y float64) (tcell.Color, bool) {
	if !area.Contains(x, y) {
		return tcell.ColorDefault, false
	}
	px := sp.Sample((x-dst.X)/dst.W, (y-dst.Y)/dst.H)
	if px.A == 0 {
		return tcell.ColorDefault, false
	}
	return FromRGBA(px), true
}
