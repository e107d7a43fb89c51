package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// recordingScene counts calls and quits on 'q'
type recordingScene struct {
	updates, draws, events int
	lastNow                time.Time
	lastViewport           Viewport
}

func (s *recordingScene) HandleEvent(ev tcell.Event, vp Viewport) bool {
	s.events++
	s.lastViewport = vp
	if key, ok := ev.(*tcell.EventKey); ok && key.Key() == tcell.KeyRune && key.Rune() == 'q' {
		return false
	}
	return true
}

func (s *recordingScene) Update(now time.Time, vp Viewport) {
	s.updates++
	s.lastNow = now
}

func (s *recordingScene) Draw(screen tcell.Screen, vp Viewport) {
	s.draws++
	screen.SetContent(0, 0, 'x', nil, tcell.StyleDefault)
}

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestGameStep(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	scene := &recordingScene{}
	clock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	game := NewGame(screen, scene, clock, nil)

	game.Step()
	clock.Advance(16 * time.Millisecond)
	game.Step()

	if scene.updates != 2 || scene.draws != 2 {
		t.Errorf("updates=%d draws=%d, want 2/2", scene.updates, scene.draws)
	}
	if !scene.lastNow.Equal(clock.Now()) {
		t.Errorf("scene saw %v, want %v", scene.lastNow, clock.Now())
	}
	if game.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", game.Frames())
	}

	if r, _, _, _ := screen.GetContent(0, 0); r != 'x' {
		t.Errorf("cell (0,0) = %q, want 'x'", r)
	}
}

func TestGameRunQuitsOnSceneRequest(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	scene := &recordingScene{}
	game := NewGame(screen, scene, NewMonotonicTimeProvider(), nil)
	game.SetFrameInterval(time.Millisecond)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	errCh := make(chan error, 1)
	go func() { errCh <- game.Run(context.Background()) }()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Run returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit key")
	}

	if scene.events == 0 {
		t.Error("scene never received the quit event")
	}
}

func TestGameRunStopsOnCancel(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	scene := &recordingScene{}
	game := NewGame(screen, scene, NewMonotonicTimeProvider(), nil)
	game.SetFrameInterval(time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := game.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run returned %v, want deadline exceeded", err)
	}
	if game.Frames() == 0 {
		t.Error("no frames rendered before cancellation")
	}
}

func TestGameResizeUpdatesViewport(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	scene := &recordingScene{}
	game := NewGame(screen, scene, NewMonotonicTimeProvider(), nil)

	screen.SetSize(160, 48)
	game.HandleEvent(tcell.NewEventResize(160, 48))

	if got := game.Viewport(); got.Cols != 160 || got.Rows != 48 {
		t.Errorf("viewport %dx%d, want 160x48", got.Cols, got.Rows)
	}
	if scene.lastViewport.Cols != 160 {
		t.Error("scene did not receive the resized viewport")
	}
}
