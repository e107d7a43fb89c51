package systems

import (
	"math/rand"

	"github.com/lixenwraith/heartreels/components"
	"github.com/lixenwraith/heartreels/constants"
)

// DrifterSystem bounces the background food emojis around the surface
type DrifterSystem struct {
	drifters []components.DrifterComponent
	width    float64
	height   float64
}

// NewDrifterSystem scatters count drifters with random glyphs and velocities
func NewDrifterSystem(count int, rng *rand.Rand) *DrifterSystem {
	s := &DrifterSystem{
		drifters: make([]components.DrifterComponent, count),
		width:    constants.SurfaceWidth,
		height:   constants.SurfaceHeight,
	}
	for i := range s.drifters {
		s.drifters[i] = components.DrifterComponent{
			X:      rng.Float64() * s.width,
			Y:      rng.Float64() * s.height,
			SpeedX: (rng.Float64() - 0.5) * constants.DrifterSpeed,
			SpeedY: (rng.Float64() - 0.5) * constants.DrifterSpeed,
			Radius: constants.DrifterRadius,
			Glyph:  constants.DrifterGlyphs[rng.Intn(len(constants.DrifterGlyphs))],
		}
	}
	return s
}

// Update moves every drifter one frame, reflecting off the edges
func (s *DrifterSystem) Update() {
	for i := range s.drifters {
		d := &s.drifters[i]
		d.X += d.SpeedX
		d.Y += d.SpeedY

		if d.X-d.Radius < 0 || d.X+d.Radius > s.width {
			d.SpeedX = -d.SpeedX
		}

		// Vertical edges also clamp so a drifter never sticks outside
		if d.Y+d.Radius > s.height {
			d.Y = s.height - d.Radius
			d.SpeedY = -d.SpeedY
		}
		if d.Y-d.Radius < 0 {
			d.Y = d.Radius
			d.SpeedY = -d.SpeedY
		}
	}
}

// Drifters returns the drifter states; callers must not modify the slice
func (s *DrifterSystem) Drifters() []components.DrifterComponent {
	return s.drifters
}
