package constants

import "time"

// ReelCount is the number of reels on the machine
const ReelCount = 3

// Symbol identifiers of the default machine
const (
	SymbolBubu  = "bubu"
	SymbolDudu  = "dudu"
	SymbolFries = "fries"
	SymbolHeart = "heart"
)

// DefaultSymbols is the cyclic strip shared by every reel
var DefaultSymbols = []string{SymbolBubu, SymbolDudu, SymbolFries, SymbolHeart}

// DefaultWinningCombinations are read left to right on the middle row
var DefaultWinningCombinations = [][]string{
	{SymbolBubu, SymbolHeart, SymbolDudu},
	{SymbolDudu, SymbolHeart, SymbolBubu},
}

// Reel physics, in virtual units per frame
const (
	SymbolHeight           = 77.0
	ReelHeight             = 230.0
	VisibleSymbols         = 3
	MinSpinSpeed           = 3.0
	MaxSpinSpeed           = 8.0
	MinSlowDownFrames      = 50
	SlowDownJitterFrames   = 100
	DecelerationRate       = 0.98
	FinalDecelerationRate  = 0.95
	FinalDecelerationOnset = 1.0 // Speed below which the gentler rate applies
	StopSpeed              = 0.1
)

// Celebration sequence
const (
	JackpotBlinkDuration    = 5 * time.Second
	JackpotBlinkInterval    = 200 * time.Millisecond
	HeartsFallingDuration   = 10 * time.Second
	HeartSpawnChance        = 0.1
	MaxHearts               = 300
	HeartFadeDistance       = 100.0 // Fade starts this far above the bottom edge
	HeartPruneMargin        = 50.0  // Hearts below the bottom edge by this much are dropped
	HeartSpawnY             = -20.0
	HeartMinSize            = 15.0
	HeartSizeRange          = 20.0
	HeartMinFallSpeed       = 0.5
	HeartFallSpeedRange     = 1.5
	HeartDriftRange         = 1.5
	HeartRotationSpeedRange = 0.1
)
