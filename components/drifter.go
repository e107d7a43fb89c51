package components

// DrifterComponent is a background food emoji bouncing around the surface
type DrifterComponent struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Radius         float64
	Glyph          string
}
