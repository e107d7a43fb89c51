package audio

// SoundType identifies a machine sound effect
type SoundType int

const (
	SoundSpin     SoundType = iota // Lever pull whoosh
	SoundReelStop                  // One reel clicking into place
	SoundJackpot                   // Rising arpeggio on a win
	SoundCoin                      // Classic machine payout
	SoundLose                      // Settled without a win
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundSpin:
		return "spin"
	case SoundReelStop:
		return "reel_stop"
	case SoundJackpot:
		return "jackpot"
	case SoundCoin:
		return "coin"
	case SoundLose:
		return "lose"
	default:
		return "unknown"
	}
}

// defaultVolumes are per-effect gains before the master volume
var defaultVolumes = [soundTypeCount]float64{
	SoundSpin:     0.35,
	SoundReelStop: 0.5,
	SoundJackpot:  0.6,
	SoundCoin:     0.5,
	SoundLose:     0.3,
}
