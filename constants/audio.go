package constants

import "time"

// Audio device
const (
	AudioSampleRate = 44100
	AudioBufferTime = 100 * time.Millisecond
)

// Sound timing
const (
	SpinSoundDuration     = 400 * time.Millisecond
	ReelStopSoundDuration = 60 * time.Millisecond
	JackpotNoteDuration   = 140 * time.Millisecond
	CoinSoundDuration     = 120 * time.Millisecond
	LoseSoundDuration     = 180 * time.Millisecond
	SoundAttack           = 5 * time.Millisecond
	SoundRelease          = 40 * time.Millisecond
)

// JackpotArpeggio is the chime played when the celebration starts (Hz)
var JackpotArpeggio = []float64{523.25, 659.25, 783.99, 1046.50}
