package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/heartreels/components"
	"github.com/lixenwraith/heartreels/config"
	"github.com/lixenwraith/heartreels/constants"
	"github.com/lixenwraith/heartreels/engine"
)

// CelebrationSystem runs the jackpot sequence Idle -> Blinking -> Falling -> Idle.
// Tick is the only place phase durations are compared; draw code reads the
// snapshot it leaves behind.
type CelebrationSystem struct {
	cfg    config.CelebrationConfig
	rng    *rand.Rand
	width  float64
	height float64

	state         engine.CelebrationState
	jackpotStart  time.Time
	particles     []components.ParticleComponent
	bannerVisible bool
}

// NewCelebrationSystem creates an idle celebration over the virtual surface
func NewCelebrationSystem(cfg config.CelebrationConfig, rng *rand.Rand) *CelebrationSystem {
	return &CelebrationSystem{
		cfg:           cfg,
		rng:           rng,
		width:         constants.SurfaceWidth,
		height:        constants.SurfaceHeight,
		particles:     make([]components.ParticleComponent, 0, cfg.MaxParticles),
		bannerVisible: true,
	}
}

// Trigger starts the sequence at the jackpot instant. Returns false unless idle.
func (s *CelebrationSystem) Trigger(jackpotStart time.Time) bool {
	if !s.state.Transition(engine.CelebrationBlinking, jackpotStart) {
		return false
	}
	s.jackpotStart = jackpotStart
	s.bannerVisible = true
	return true
}

// Tick applies every due transition, then advances the falling hearts.
// Phase boundaries sit on scheduled instants, not on the frame that noticed
// them, so late frames never stretch a phase.
func (s *CelebrationSystem) Tick(now time.Time) {
	for s.advancePhase(now) {
	}

	switch s.state.Phase {
	case engine.CelebrationBlinking:
		blink := int64(s.state.Elapsed(now) / s.cfg.BlinkInterval)
		s.bannerVisible = blink%2 == 0
	case engine.CelebrationFalling:
		s.bannerVisible = true
		s.spawn()
		s.advanceParticles()
	default:
		s.bannerVisible = true
	}
}

// advancePhase performs at most one transition, reporting whether it did
func (s *CelebrationSystem) advancePhase(now time.Time) bool {
	switch s.state.Phase {
	case engine.CelebrationBlinking:
		end := s.state.PhaseStart.Add(s.cfg.BlinkDuration)
		if now.Before(end) {
			return false
		}
		return s.state.Transition(engine.CelebrationFalling, end)

	case engine.CelebrationFalling:
		end := s.state.PhaseStart.Add(s.cfg.FallingDuration)
		if now.Before(end) {
			return false
		}
		s.particles = s.particles[:0]
		return s.state.Transition(engine.CelebrationIdle, end)
	}
	return false
}

func (s *CelebrationSystem) spawn() {
	if len(s.particles) >= s.cfg.MaxParticles || s.rng.Float64() >= s.cfg.SpawnChance {
		return
	}
	s.particles = append(s.particles, components.ParticleComponent{
		X:             s.rng.Float64() * s.width,
		Y:             constants.HeartSpawnY,
		Size:          s.rng.Float64()*constants.HeartSizeRange + constants.HeartMinSize,
		SpeedY:        s.rng.Float64()*constants.HeartFallSpeedRange + constants.HeartMinFallSpeed,
		SpeedX:        (s.rng.Float64() - 0.5) * constants.HeartDriftRange,
		Rotation:      s.rng.Float64() * 2 * math.Pi,
		RotationSpeed: (s.rng.Float64() - 0.5) * constants.HeartRotationSpeedRange,
		Opacity:       1,
	})
}

// advanceParticles moves, fades and compacts the heart slice in place
func (s *CelebrationSystem) advanceParticles() {
	fadeStart := s.height - s.cfg.FadeDistance
	alive := 0
	for i := range s.particles {
		p := &s.particles[i]
		p.Y += p.SpeedY
		p.X += p.SpeedX
		p.Rotation += p.RotationSpeed

		if p.Y > fadeStart {
			p.Opacity = math.Min(p.Opacity, math.Max(0, (s.height-p.Y)/s.cfg.FadeDistance))
		}

		if p.Opacity <= 0 || p.Y >= s.height+s.cfg.PruneMargin {
			continue
		}
		s.particles[alive] = s.particles[i]
		alive++
	}
	s.particles = s.particles[:alive]
}

// Phase returns the current celebration phase
func (s *CelebrationSystem) Phase() engine.CelebrationPhase {
	return s.state.Phase
}

// Active reports whether a jackpot is on display; spins are refused meanwhile
func (s *CelebrationSystem) Active() bool {
	return s.state.Phase != engine.CelebrationIdle
}

// BannerVisible reports whether the JACKPOT banner is lit this frame
func (s *CelebrationSystem) BannerVisible() bool {
	return s.bannerVisible
}

// JackpotStart returns when the current or last celebration began
func (s *CelebrationSystem) JackpotStart() time.Time {
	return s.jackpotStart
}

// Particles returns the live hearts; callers must not modify the slice
func (s *CelebrationSystem) Particles() []components.ParticleComponent {
	return s.particles
}
