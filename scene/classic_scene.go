package scene

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/heartreels/audio"
	"github.com/lixenwraith/heartreels/classic"
	"github.com/lixenwraith/heartreels/constants"
	"github.com/lixenwraith/heartreels/engine"
	"github.com/lixenwraith/heartreels/render"
)

const classicHelp = "space: spin  +/-: bet  m: mute  q: quit"

// ClassicScene drives the fruit machine
type ClassicScene struct {
	logger   *zap.Logger
	sound    SoundPlayer
	machine  *classic.Machine
	renderer *render.ClassicRenderer

	now     time.Time
	message string
}

// NewClassicScene wraps a machine. A nil sound player runs silent; a nil
// logger discards.
func NewClassicScene(machine *classic.Machine, sound SoundPlayer, logger *zap.Logger) *ClassicScene {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sound == nil {
		sound = &nopSound{}
	}
	return &ClassicScene{
		logger:   logger,
		sound:    sound,
		machine:  machine,
		renderer: render.NewClassicRenderer(),
	}
}

// HandleEvent applies keyboard input
func (s *ClassicScene) HandleEvent(ev tcell.Event, vp engine.Viewport) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		s.spin()
	case tcell.KeyUp:
		s.machine.Wallet().ChangeBet(1)
	case tcell.KeyDown:
		s.machine.Wallet().ChangeBet(-1)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			s.spin()
		case '+', '=':
			s.machine.Wallet().ChangeBet(1)
		case '-', '_':
			s.machine.Wallet().ChangeBet(-1)
		case 'm', 'M':
			s.sound.ToggleMute()
		}
	}
	return true
}

func (s *ClassicScene) spin() {
	err := s.machine.Spin(s.now)
	switch {
	case err == nil:
		s.message = ""
		s.sound.Play(audio.SoundSpin)
		s.logger.Info("classic spin started", zap.Stringer("bet", s.machine.Wallet().Bet()))
	case errors.Is(err, classic.ErrInsufficientBalance):
		s.message = "Not enough balance for this bet"
		s.logger.Debug("classic spin refused", zap.Error(err))
	default:
		s.logger.Debug("classic spin refused", zap.Error(err))
	}
}

// Update lands the reels when their time is up
func (s *ClassicScene) Update(now time.Time, vp engine.Viewport) {
	s.now = now
	result, settled := s.machine.Update(now)
	if !settled {
		return
	}

	s.logger.Info("classic spin settled",
		zap.String("session", result.SessionID),
		zap.Strings("symbols", result.Symbols),
		zap.Stringer("win", result.Win),
		zap.Stringer("balance", s.machine.Wallet().Balance()))

	if result.Win.IsPositive() {
		s.message = "WIN " + result.Win.String() + "!"
		s.sound.Play(audio.SoundCoin)
		return
	}
	s.message = "No win"
}

// Draw renders the machine
func (s *ClassicScene) Draw(screen tcell.Screen, vp engine.Viewport) {
	rows := make([][]string, constants.ReelCount)
	for i := range rows {
		rows[i] = []string{
			s.machine.ReelSymbol(i, -1, s.now),
			s.machine.ReelSymbol(i, 0, s.now),
			s.machine.ReelSymbol(i, 1, s.now),
		}
	}

	status := classicHelp
	if s.sound.Muted() {
		status += "  [muted]"
	}

	s.renderer.Draw(screen, vp, render.ClassicFrame{
		Rows:     rows,
		Flashing: s.machine.Flashing(s.now),
		Balance:  s.machine.Wallet().Balance().StringFixed(2),
		Bet:      s.machine.Wallet().Bet().StringFixed(2),
		Message:  s.message,
		Status:   status,
	})
}

// Message returns the current result line
func (s *ClassicScene) Message() string {
	return s.message
}
