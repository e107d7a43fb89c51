package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/heartreels/constants"
)

// Game is the frame driver: one select loop serializes input events and
// frame ticks, each tick clears, updates and draws the scene
type Game struct {
	screen       tcell.Screen
	scene        Scene
	timeProvider TimeProvider
	logger       *zap.Logger

	viewport Viewport
	interval time.Duration
	frames   uint64
}

// NewGame binds a scene to an initialized screen
func NewGame(screen tcell.Screen, scene Scene, timeProvider TimeProvider, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	cols, rows := screen.Size()
	return &Game{
		screen:       screen,
		scene:        scene,
		timeProvider: timeProvider,
		logger:       logger,
		viewport:     NewViewport(cols, rows),
		interval:     constants.FrameUpdateInterval,
	}
}

// SetFrameInterval overrides the tick interval, must be called before Run
func (g *Game) SetFrameInterval(d time.Duration) {
	if d > 0 {
		g.interval = d
	}
}

// Viewport returns the current projection
func (g *Game) Viewport() Viewport {
	return g.viewport
}

// Frames returns the number of frames rendered so far
func (g *Game) Frames() uint64 {
	return g.frames
}

// Run drives the scene until it asks to quit, the screen closes, or ctx ends
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(eventChan)
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	g.logger.Debug("frame loop started",
		zap.Duration("interval", g.interval),
		zap.Int("cols", g.viewport.Cols),
		zap.Int("rows", g.viewport.Rows),
	)

	for {
		select {
		case <-ctx.Done():
			g.logger.Debug("frame loop cancelled", zap.Uint64("frames", g.frames))
			return ctx.Err()

		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !g.HandleEvent(ev) {
				g.logger.Debug("frame loop finished", zap.Uint64("frames", g.frames))
				return nil
			}

		case <-ticker.C:
			g.Step()
		}
	}
}

// HandleEvent routes one event, keeping the viewport in step with resizes
func (g *Game) HandleEvent(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		g.screen.Sync()
		cols, rows := g.screen.Size()
		g.viewport = NewViewport(cols, rows)
		g.logger.Debug("resized", zap.Int("cols", cols), zap.Int("rows", rows))
	}
	return g.scene.HandleEvent(ev, g.viewport)
}

// Step renders exactly one frame
func (g *Game) Step() {
	now := g.timeProvider.Now()
	g.screen.Clear()
	g.scene.Update(now, g.viewport)
	g.scene.Draw(g.screen, g.viewport)
	g.screen.Show()
	g.frames++
}
