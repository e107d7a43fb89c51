package scene

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/heartreels/asset"
	"github.com/lixenwraith/heartreels/audio"
	"github.com/lixenwraith/heartreels/components"
	"github.com/lixenwraith/heartreels/config"
	"github.com/lixenwraith/heartreels/constants"
	"github.com/lixenwraith/heartreels/engine"
	"github.com/lixenwraith/heartreels/render"
	"github.com/lixenwraith/heartreels/systems"
)

// HeartScene is the heart machine: three reels, the jackpot celebration
// and the drifting food behind them
type HeartScene struct {
	logger *zap.Logger
	sound  SoundPlayer

	reels       *systems.ReelSystem
	evaluator   *systems.WinEvaluator
	celebration *systems.CelebrationSystem
	drifters    *systems.DrifterSystem
	renderer    *render.MachineRenderer

	button     components.ButtonComponent
	mouseDown  bool
	lastResult components.WinResult
}

// NewHeartScene wires the systems for a validated config. A nil sound player
// runs silent; a nil logger discards.
func NewHeartScene(cfg config.Config, lib *asset.Library, rng *rand.Rand, sound SoundPlayer, logger *zap.Logger) *HeartScene {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sound == nil {
		sound = &nopSound{}
	}

	evaluator := systems.NewWinEvaluator(cfg.Machine)
	layout := render.NewMachineLayout(constants.ReelCount, cfg.Machine.ReelHeight, cfg.Machine.SymbolHeight)

	return &HeartScene{
		logger:      logger,
		sound:       sound,
		reels:       systems.NewReelSystem(cfg.Machine, rng),
		evaluator:   evaluator,
		celebration: systems.NewCelebrationSystem(cfg.Celebration, rng),
		drifters:    systems.NewDrifterSystem(constants.DrifterCount, rng),
		renderer:    render.NewMachineRenderer(layout, lib, evaluator, cfg.Machine.SymbolHeight),
		button:      layout.Button,
	}
}

// RequestSpin starts a spin unless reels are moving or a celebration runs
func (s *HeartScene) RequestSpin() bool {
	if s.celebration.Active() {
		s.logger.Debug("spin refused", zap.String("reason", "celebration"), zap.Stringer("phase", s.celebration.Phase()))
		return false
	}
	if !s.reels.Spin() {
		s.logger.Debug("spin refused", zap.String("reason", "spinning"))
		return false
	}

	s.sound.Play(audio.SoundSpin)
	s.logger.Info("spin started", zap.String("session", s.reels.Session().ID))
	return true
}

// HandleEvent applies keyboard and mouse input
func (s *HeartScene) HandleEvent(ev tcell.Event, vp engine.Viewport) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			s.RequestSpin()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				s.RequestSpin()
			case 'm', 'M':
				muted := s.sound.ToggleMute()
				s.logger.Debug("mute toggled", zap.Bool("muted", muted))
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := vp.ToVirtual(col, row)
		inside := vp.Valid() && s.button.Contains(x, y)
		s.button.Hover = inside

		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !s.mouseDown && inside {
			s.RequestSpin()
		}
		s.mouseDown = pressed
	}
	return true
}

// Update advances one frame: drifters, reels, then the celebration
func (s *HeartScene) Update(now time.Time, vp engine.Viewport) {
	s.drifters.Update()

	stopped, settled := s.reels.Update()
	for i := 0; i < stopped; i++ {
		s.sound.Play(audio.SoundReelStop)
	}
	if settled {
		s.settle(now)
	}

	before := s.celebration.Phase()
	s.celebration.Tick(now)
	if after := s.celebration.Phase(); after != before {
		s.logger.Debug("celebration phase",
			zap.Stringer("from", before),
			zap.Stringer("to", after),
			zap.Int("particles", len(s.celebration.Particles())))
	}
}

// settle evaluates a finished session exactly once
func (s *HeartScene) settle(now time.Time) {
	s.lastResult = s.evaluator.Evaluate(s.reels.Reels(), now)
	s.logger.Info("spin settled",
		zap.String("session", s.reels.Session().ID),
		zap.Strings("symbols", s.lastResult.Symbols),
		zap.Bool("jackpot", s.lastResult.IsJackpot))

	if !s.lastResult.IsJackpot {
		s.sound.Play(audio.SoundLose)
		return
	}
	if s.celebration.Trigger(s.lastResult.JackpotStart) {
		s.sound.Play(audio.SoundJackpot)
	}
}

// Draw renders the current state
func (s *HeartScene) Draw(screen tcell.Screen, vp engine.Viewport) {
	status := constants.HelpText
	if s.sound.Muted() {
		status += "  [muted]"
	}

	s.renderer.Draw(screen, vp, render.Frame{
		Reels:         s.reels.Reels(),
		Drifters:      s.drifters.Drifters(),
		Particles:     s.celebration.Particles(),
		Jackpot:       s.celebration.Active(),
		BannerVisible: s.celebration.BannerVisible(),
		Button:        s.button,
		Status:        status,
	})
}

// LastResult returns the outcome of the most recent settled spin
func (s *HeartScene) LastResult() components.WinResult {
	return s.lastResult
}

// Spinning reports whether reels are moving
func (s *HeartScene) Spinning() bool {
	return s.reels.Spinning()
}

// Phase returns the celebration phase
func (s *HeartScene) Phase() engine.CelebrationPhase {
	return s.celebration.Phase()
}
