package components

import "time"

// SpinSession is one full spin-to-stop cycle
type SpinSession struct {
	ID       string // Log correlation only
	Spinning bool
	SpinTime int // Frames elapsed since spin start
}

// WinResult is the outcome of a settled spin
type WinResult struct {
	Symbols      []string // Middle row, left to right
	IsJackpot    bool
	JackpotStart time.Time // Zero unless IsJackpot
}
