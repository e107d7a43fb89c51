package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/heartreels/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a wave whose frequency glides linearly from freq to
// freqEnd over its duration
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		freqEnd:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.freqEnd-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := max(e.attackSamples, e.totalSamples-e.releaseSamples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func shaped(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(s, d, constants.SoundAttack, constants.SoundRelease, rate)
}

// CreateSpinSound is a rising saw sweep under a wash of noise
func CreateSpinSound(rate beep.SampleRate) beep.Streamer {
	d := constants.SpinSoundDuration
	return beep.Mix(
		newVolume(shaped(NewSweep(110, 440, d, WaveSaw, rate), d, rate), 0.6),
		newVolume(shaped(NewOscillator(0, d, WaveNoise, rate), d, rate), 0.2),
	)
}

// CreateReelStopSound is a short low click
func CreateReelStopSound(rate beep.SampleRate) beep.Streamer {
	d := constants.ReelStopSoundDuration
	return shaped(NewSweep(320, 180, d, WaveSquare, rate), d, rate)
}

// CreateJackpotSound plays the arpeggio one note after another
func CreateJackpotSound(rate beep.SampleRate) beep.Streamer {
	d := constants.JackpotNoteDuration
	notes := make([]beep.Streamer, 0, len(constants.JackpotArpeggio))
	for _, freq := range constants.JackpotArpeggio {
		notes = append(notes, shaped(NewOscillator(freq, d, WaveSine, rate), d, rate))
	}
	return beep.Seq(notes...)
}

// CreateCoinSound is a two-note square chime
func CreateCoinSound(rate beep.SampleRate) beep.Streamer {
	d := constants.CoinSoundDuration
	return beep.Seq(
		shaped(NewOscillator(987.77, d/2, WaveSquare, rate), d/2, rate),
		shaped(NewOscillator(1318.51, d, WaveSquare, rate), d, rate),
	)
}

// CreateLoseSound is a falling sine
func CreateLoseSound(rate beep.SampleRate) beep.Streamer {
	d := constants.LoseSoundDuration
	return shaped(NewSweep(330, 165, d, WaveSine, rate), d, rate)
}

// GetSoundEffect returns the streamer for a sound type at its default gain
func GetSoundEffect(soundType SoundType, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch soundType {
	case SoundSpin:
		s = CreateSpinSound(rate)
	case SoundReelStop:
		s = CreateReelStopSound(rate)
	case SoundJackpot:
		s = CreateJackpotSound(rate)
	case SoundCoin:
		s = CreateCoinSound(rate)
	case SoundLose:
		s = CreateLoseSound(rate)
	default:
		return nil
	}
	return newVolume(s, defaultVolumes[soundType])
}
