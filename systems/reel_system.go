package systems

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/lixenwraith/heartreels/components"
	"github.com/lixenwraith/heartreels/config"
	"github.com/lixenwraith/heartreels/constants"
)

// ReelSystem simulates the three reels. Each reel decelerates after its own
// random onset, so the reels stop one after another without per-reel state.
type ReelSystem struct {
	cfg     config.MachineConfig
	rng     *rand.Rand
	reels   []components.ReelComponent
	session components.SpinSession
}

// NewReelSystem creates constants.ReelCount reels at rest at position 0
func NewReelSystem(cfg config.MachineConfig, rng *rand.Rand) *ReelSystem {
	return &ReelSystem{
		cfg:   cfg,
		rng:   rng,
		reels: make([]components.ReelComponent, constants.ReelCount),
	}
}

// Spin starts a new session with fresh speeds and onsets. It is a no-op
// returning false while any reel is still moving.
func (s *ReelSystem) Spin() bool {
	if s.session.Spinning {
		return false
	}

	s.session = components.SpinSession{
		ID:       uuid.NewString(),
		Spinning: true,
	}
	speedRange := s.cfg.MaxSpeed - s.cfg.MinSpeed
	for i := range s.reels {
		s.reels[i].Speed = s.rng.Float64()*speedRange + s.cfg.MinSpeed
		s.reels[i].SlowDownTime = s.rng.Intn(s.cfg.SlowDownJitterFrames) + s.cfg.MinSlowDownFrames
	}
	return true
}

// Update advances one frame. It returns how many reels came to rest during
// this frame and whether the whole session settled on it.
func (s *ReelSystem) Update() (stopped int, settled bool) {
	if !s.session.Spinning {
		return 0, false
	}
	s.session.SpinTime++

	for i := range s.reels {
		reel := &s.reels[i]
		if reel.Speed <= 0 {
			continue
		}

		reel.Position += reel.Speed
		if s.session.SpinTime <= reel.SlowDownTime {
			continue
		}

		rate := s.cfg.DecelerationRate
		if reel.Speed < s.cfg.FinalDecelerationOnset {
			rate = s.cfg.FinalDecelerationRate
		}
		reel.Speed *= rate

		if reel.Speed < s.cfg.StopSpeed {
			reel.Speed = 0
			reel.Position = SnapToSymbol(reel.Position, s.cfg.SymbolHeight)
			stopped++
		}
	}

	for _, reel := range s.reels {
		if !reel.Stopped() {
			return stopped, false
		}
	}
	s.session.Spinning = false
	return stopped, true
}

// Spinning reports whether a session is in progress
func (s *ReelSystem) Spinning() bool {
	return s.session.Spinning
}

// Session returns the current or most recent session
func (s *ReelSystem) Session() components.SpinSession {
	return s.session
}

// Reels returns the reel states; callers must not modify the slice
func (s *ReelSystem) Reels() []components.ReelComponent {
	return s.reels
}

// SnapToSymbol rounds pos to a whole number of symbols: up when the
// remainder exceeds half a symbol, down otherwise. The result is an exact
// multiple of height.
func SnapToSymbol(pos, height float64) float64 {
	k := math.Floor(pos / height)
	if pos-k*height > height/2 {
		k++
	}
	return k * height
}
