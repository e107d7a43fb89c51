package engine

import (
	"math"

	"github.com/lixenwraith/heartreels/constants"
)

// Viewport projects the fixed-aspect virtual surface onto terminal cells.
// The surface is scaled to fit and centred; cells are CellAspect times taller
// than wide so the aspect ratio survives.
type Viewport struct {
	Cols, Rows       int     // Terminal size
	OffsetX, OffsetY int     // Cell of the surface origin
	Scale            float64 // Virtual units per cell column
}

// NewViewport fits the virtual surface into a cols x rows terminal
func NewViewport(cols, rows int) Viewport {
	if cols <= 0 || rows <= 0 {
		return Viewport{Cols: cols, Rows: rows}
	}

	scale := math.Max(
		constants.SurfaceWidth/float64(cols),
		constants.SurfaceHeight/(float64(rows)*constants.CellAspect),
	)

	usedCols := int(math.Round(constants.SurfaceWidth / scale))
	usedRows := int(math.Round(constants.SurfaceHeight / (scale * constants.CellAspect)))

	return Viewport{
		Cols:    cols,
		Rows:    rows,
		OffsetX: (cols - usedCols) / 2,
		OffsetY: (rows - usedRows) / 2,
		Scale:   scale,
	}
}

// Valid reports whether the terminal has room to draw anything
func (v Viewport) Valid() bool {
	return v.Scale > 0
}

// RowScale returns virtual units per cell row
func (v Viewport) RowScale() float64 {
	return v.Scale * constants.CellAspect
}

// ToCell maps a virtual point to the cell containing it
func (v Viewport) ToCell(x, y float64) (col, row int) {
	if !v.Valid() {
		return -1, -1
	}
	col = v.OffsetX + int(math.Floor(x/v.Scale))
	row = v.OffsetY + int(math.Floor(y/v.RowScale()))
	return col, row
}

// ToVirtual maps a cell to the virtual point at its centre
func (v Viewport) ToVirtual(col, row int) (x, y float64) {
	if !v.Valid() {
		return math.NaN(), math.NaN()
	}
	x = (float64(col-v.OffsetX) + 0.5) * v.Scale
	y = (float64(row-v.OffsetY) + 0.5) * v.RowScale()
	return x, y
}

// SpanCols returns how many columns a virtual width covers, at least one
func (v Viewport) SpanCols(w float64) int {
	if !v.Valid() {
		return 0
	}
	return max(1, int(math.Round(w/v.Scale)))
}

// SpanRows returns how many rows a virtual height covers, at least one
func (v Viewport) SpanRows(h float64) int {
	if !v.Valid() {
		return 0
	}
	return max(1, int(math.Round(h/v.RowScale())))
}

// InBounds reports whether a cell is on screen
func (v Viewport) InBounds(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}
