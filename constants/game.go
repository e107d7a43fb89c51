package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the buffer between the input pump and the frame loop
	EventQueueSize = 256
)

// Virtual surface. All scene geometry lives in these units and is projected
// onto terminal cells by the viewport.
const (
	SurfaceWidth  = 800.0
	SurfaceHeight = 600.0

	// CellAspect is the height:width ratio of a terminal cell
	CellAspect = 2.0
)

// Background decoration
const (
	DrifterCount  = 15
	DrifterRadius = 25.0
	DrifterSpeed  = 4.0 // Full range of the per-axis velocity, centred on 0
)

// DrifterGlyphs are the food emojis floating behind the machine
var DrifterGlyphs = []string{"🍕", "🍔", "🍟", "🌭", "🍿", "🥨", "🥐", "🧁", "🍩", "🍪", "🍫", "🍬"}
