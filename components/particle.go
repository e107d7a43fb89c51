package components

// ParticleComponent is one decorative falling heart
type ParticleComponent struct {
	// Position on the virtual surface
	X, Y float64

	// Velocity in virtual units per frame
	SpeedX, SpeedY float64

	// Visual
	Size          float64
	Rotation      float64 // Radians
	RotationSpeed float64 // Radians per frame
	Opacity       float64 // [0, 1], decays near the bottom edge
}
