package scene

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/shopspring/decimal"

	"github.com/lixenwraith/heartreels/audio"
	"github.com/lixenwraith/heartreels/classic"
	"github.com/lixenwraith/heartreels/config"
	"github.com/lixenwraith/heartreels/engine"
)

func newTestClassic(t *testing.T, balance int64) (*ClassicScene, *recordingSound, config.ClassicConfig) {
	t.Helper()
	cfg := config.Default().Classic
	cfg.StartingBalance = decimal.NewFromInt(balance)
	sound := &recordingSound{played: make(map[audio.SoundType]int)}
	machine := classic.NewMachine(cfg, rand.New(rand.NewSource(8)))
	return NewClassicScene(machine, sound, nil), sound, cfg
}

func TestClassicBetKeys(t *testing.T) {
	s, _, _ := newTestClassic(t, 1000)
	vp := engine.NewViewport(80, 30)

	tests := []struct {
		ev   *tcell.EventKey
		want int64
	}{
		{key('+'), 20},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), 30},
		{key('-'), 20},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), 10},
		{key('-'), 10},
	}
	for i, tt := range tests {
		s.HandleEvent(tt.ev, vp)
		if got := s.machine.Wallet().Bet(); !got.Equal(decimal.NewFromInt(tt.want)) {
			t.Errorf("step %d: bet = %s, want %d", i, got, tt.want)
		}
	}
}

func TestClassicSpinAndSettle(t *testing.T) {
	s, sound, cfg := newTestClassic(t, 1000)
	vp := engine.NewViewport(80, 30)
	start := time.Unix(50, 0)

	s.Update(start, vp)
	s.HandleEvent(key(' '), vp)
	if !s.machine.Spinning() {
		t.Fatal("space did not spin")
	}
	if sound.played[audio.SoundSpin] != 1 {
		t.Errorf("spin sound played %d times", sound.played[audio.SoundSpin])
	}

	s.Update(start.Add(cfg.SpinDuration), vp)
	if s.machine.Spinning() {
		t.Fatal("did not settle after the spin time")
	}

	result := s.machine.LastResult()
	if result.Win.IsPositive() {
		if sound.played[audio.SoundCoin] != 1 || !strings.HasPrefix(s.Message(), "WIN") {
			t.Errorf("win without coin sound or message: %q", s.Message())
		}
	} else if s.Message() != "No win" {
		t.Errorf("message = %q", s.Message())
	}
}

func TestClassicInsufficientBalance(t *testing.T) {
	s, sound, _ := newTestClassic(t, 5)
	vp := engine.NewViewport(80, 30)

	s.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), vp)
	if s.machine.Spinning() {
		t.Fatal("spun without funds")
	}
	if sound.played[audio.SoundSpin] != 0 {
		t.Error("spin sound played for a refused spin")
	}
	if !strings.Contains(s.Message(), "balance") {
		t.Errorf("message = %q", s.Message())
	}
}

func TestClassicQuitAndDraw(t *testing.T) {
	s, _, _ := newTestClassic(t, 1000)
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 30)
	vp := engine.NewViewport(80, 30)

	s.Update(time.Unix(0, 0), vp)
	s.Draw(screen, vp)

	var line []rune
	for col := 0; col < 80; col++ {
		mainc, _, _, _ := screen.GetContent(col, 23) // 460 / 20
		line = append(line, mainc)
	}
	if got := string(line); !strings.Contains(got, "Balance: 1000.00") {
		t.Errorf("balance line = %q", got)
	}

	if s.HandleEvent(key('q'), vp) {
		t.Error("q did not quit")
	}
}
