package scene

import "github.com/lixenwraith/heartreels/audio"

// SoundPlayer is the slice of audio.SoundManager a scene drives
type SoundPlayer interface {
	Play(audio.SoundType)
	ToggleMute() bool
	Muted() bool
}

type nopSound struct{ muted bool }

func (n *nopSound) Play(audio.SoundType) {}

func (n *nopSound) ToggleMute() bool {
	n.muted = !n.muted
	return n.muted
}

func (n *nopSound) Muted() bool { return n.muted }
