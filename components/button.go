package components

// ButtonComponent is a clickable control in virtual coordinates
type ButtonComponent struct {
	X, Y          float64
	Width, Height float64
	Label         string
	Hover         bool
}

// Contains reports whether the virtual point lies inside the button, edges included
func (b ButtonComponent) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width &&
		y >= b.Y && y <= b.Y+b.Height
}
