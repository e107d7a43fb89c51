package engine

import "time"

// CelebrationPhase is the state of the jackpot celebration sequence
type CelebrationPhase int

const (
	CelebrationIdle     CelebrationPhase = iota // No win on display, spins allowed
	CelebrationBlinking                         // Banner blinks, no particles yet
	CelebrationFalling                          // Hearts spawn and fall
)

// String returns the phase name
func (p CelebrationPhase) String() string {
	switch p {
	case CelebrationIdle:
		return "Idle"
	case CelebrationBlinking:
		return "Blinking"
	case CelebrationFalling:
		return "Falling"
	default:
		return "Unknown"
	}
}

var celebrationTransitions = map[CelebrationPhase][]CelebrationPhase{
	CelebrationIdle:     {CelebrationBlinking},
	CelebrationBlinking: {CelebrationFalling},
	CelebrationFalling:  {CelebrationIdle},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to CelebrationPhase) bool {
	for _, phase := range celebrationTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// CelebrationState is the phase plus the single instant it was entered.
// Owned by the frame loop; no locking.
type CelebrationState struct {
	Phase      CelebrationPhase
	PhaseStart time.Time
}

// Transition moves to a new phase with validation
// Returns true if transition succeeded, false if transition is invalid
func (s *CelebrationState) Transition(to CelebrationPhase, at time.Time) bool {
	if !CanTransition(s.Phase, to) {
		return false
	}
	s.Phase = to
	s.PhaseStart = at
	return true
}

// Elapsed returns how long the current phase has been active
func (s CelebrationState) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.PhaseStart)
}
