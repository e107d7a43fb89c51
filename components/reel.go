package components

// ReelComponent is one spinning wheel. Symbols are not stored per reel: every
// reel scrolls the machine's shared symbol strip.
type ReelComponent struct {
	Position     float64 // Accumulated virtual distance scrolled
	Speed        float64 // Virtual units per frame, >= 0
	SlowDownTime int     // Frame count after which deceleration begins
}

// Stopped reports whether the reel has fully settled
func (r ReelComponent) Stopped() bool {
	return r.Speed == 0
}
