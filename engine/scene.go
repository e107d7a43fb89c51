package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Scene is the state object driven by Game. All of its mutable state is
// touched only from the frame loop, so implementations need no locking.
type Scene interface {
	// HandleEvent applies one input event; returning false ends the loop
	HandleEvent(ev tcell.Event, vp Viewport) bool

	// Update advances the simulation by one frame
	Update(now time.Time, vp Viewport)

	// Draw renders the current frame back to front
	Draw(screen tcell.Screen, vp Viewport)
}
