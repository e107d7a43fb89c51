package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/heartreels/constants"
)

// drain streams s to exhaustion and returns every sample read
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(constants.AudioSampleRate)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		samples := drain(t, NewOscillator(440, 50*time.Millisecond, wave, rate))
		if len(samples) != rate.N(50*time.Millisecond) {
			t.Errorf("wave %d streamed %d samples, want %d", wave, len(samples), rate.N(50*time.Millisecond))
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d = %v", wave, i, s)
			}
		}
	}
}

func TestOscillatorExhausted(t *testing.T) {
	osc := NewOscillator(440, time.Millisecond, WaveSine, beep.SampleRate(1000))
	drain(t, osc)
	n, ok := osc.Stream(make([][2]float64, 8))
	if n != 0 || ok {
		t.Errorf("exhausted oscillator returned (%d,%v)", n, ok)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	square := NewOscillator(0, d, WaveSquare, rate) // Phase stays at 0: constant 1.0
	samples := drain(t, NewEnvelope(square, d, 10*time.Millisecond, 20*time.Millisecond, rate))

	if len(samples) != 100 {
		t.Fatalf("got %d samples", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample %v, want silent attack start", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain sample %v, want 1", samples[50][0])
	}
	if last := samples[99][0]; last <= 0 || last > 0.1 {
		t.Errorf("last sample %v, want near-silent release", last)
	}
	for i := 1; i < 10; i++ {
		if samples[i][0] < samples[i-1][0] {
			t.Fatalf("attack not rising at %d", i)
		}
	}
}

func TestSoundEffectDurations(t *testing.T) {
	rate := beep.SampleRate(constants.AudioSampleRate)
	notes := time.Duration(len(constants.JackpotArpeggio)) * constants.JackpotNoteDuration

	tests := []struct {
		sound SoundType
		want  time.Duration
	}{
		{SoundSpin, constants.SpinSoundDuration},
		{SoundReelStop, constants.ReelStopSoundDuration},
		{SoundJackpot, notes},
		{SoundLose, constants.LoseSoundDuration},
		{SoundCoin, constants.CoinSoundDuration + constants.CoinSoundDuration/2},
	}
	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			samples := drain(t, GetSoundEffect(tt.sound, rate))
			want := rate.N(tt.want)
			if diff := len(samples) - want; diff < -2 || diff > 2 {
				t.Errorf("streamed %d samples, want about %d", len(samples), want)
			}
			peak := 0.0
			for _, s := range samples {
				peak = math.Max(peak, math.Abs(s[0]))
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak amplitude %v", peak)
			}
		})
	}
}

func TestUnknownSoundEffect(t *testing.T) {
	if s := GetSoundEffect(soundTypeCount, sampleRate); s != nil {
		t.Error("unknown sound produced a streamer")
	}
	if got := SoundType(99).String(); got != "unknown" {
		t.Errorf("String() = %q", got)
	}
}
