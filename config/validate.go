package config

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/heartreels/constants"
)

// Validate reports every problem found, joined. Use errors.Is against the
// sentinel errors to classify.
func (c Config) Validate() error {
	var errs []error
	errs = append(errs, c.Machine.validate()...)
	errs = append(errs, c.validateAppearance()...)
	errs = append(errs, c.Celebration.validate()...)
	errs = append(errs, c.Classic.validate()...)
	return errors.Join(errs...)
}

func (m MachineConfig) validate() []error {
	var errs []error

	if len(m.Symbols) == 0 {
		errs = append(errs, ErrNoSymbols)
	}
	known := make(map[string]bool, len(m.Symbols))
	for i, s := range m.Symbols {
		if s == "" {
			errs = append(errs, fmt.Errorf("symbol %d: %w", i, ErrBlankSymbol))
			continue
		}
		if known[s] {
			errs = append(errs, fmt.Errorf("symbol %q: %w", s, ErrDuplicateSymbol))
		}
		known[s] = true
	}

	if len(m.WinningCombinations) == 0 {
		errs = append(errs, ErrNoWinningCombinations)
	}
	for i, combo := range m.WinningCombinations {
		if len(combo) != constants.ReelCount {
			errs = append(errs, fmt.Errorf("combination %d has %d symbols, want %d: %w",
				i, len(combo), constants.ReelCount, ErrCombinationLength))
		}
		for _, s := range combo {
			if !known[s] {
				errs = append(errs, fmt.Errorf("combination %d uses %q: %w", i, s, ErrUnknownSymbol))
			}
		}
	}

	switch {
	case m.SymbolHeight <= 0:
		errs = append(errs, fmt.Errorf("symbol_height %v must be positive: %w", m.SymbolHeight, ErrInvalidPhysics))
	case m.ReelHeight < m.SymbolHeight:
		errs = append(errs, fmt.Errorf("reel_height %v below symbol_height %v: %w", m.ReelHeight, m.SymbolHeight, ErrInvalidPhysics))
	}
	if m.MinSpeed <= 0 || m.MaxSpeed < m.MinSpeed {
		errs = append(errs, fmt.Errorf("speed range [%v, %v) invalid: %w", m.MinSpeed, m.MaxSpeed, ErrInvalidPhysics))
	}
	if m.StopSpeed <= 0 || m.StopSpeed >= m.MinSpeed {
		errs = append(errs, fmt.Errorf("stop_speed %v must be in (0, min_speed): %w", m.StopSpeed, ErrInvalidPhysics))
	}
	if m.MinSlowDownFrames < 0 || m.SlowDownJitterFrames <= 0 {
		errs = append(errs, fmt.Errorf("slow down frames %d+%d invalid: %w", m.MinSlowDownFrames, m.SlowDownJitterFrames, ErrInvalidPhysics))
	}
	for name, rate := range map[string]float64{
		"deceleration_rate":       m.DecelerationRate,
		"final_deceleration_rate": m.FinalDecelerationRate,
	} {
		if rate <= 0 || rate >= 1 {
			errs = append(errs, fmt.Errorf("%s %v must be in (0, 1): %w", name, rate, ErrInvalidPhysics))
		}
	}

	return errs
}

func (c Config) validateAppearance() []error {
	var errs []error
	for _, s := range c.Machine.Symbols {
		if s == "" {
			continue
		}
		_, sprite := c.Assets.Sprites[s]
		_, glyph := c.Assets.Glyphs[s]
		if !sprite && !glyph {
			errs = append(errs, fmt.Errorf("symbol %q: %w", s, ErrMissingAppearance))
		}
	}
	return errs
}

func (cc CelebrationConfig) validate() []error {
	var errs []error
	if cc.BlinkDuration <= 0 || cc.FallingDuration <= 0 || cc.BlinkInterval <= 0 {
		errs = append(errs, fmt.Errorf("durations blink=%v interval=%v falling=%v must be positive: %w",
			cc.BlinkDuration, cc.BlinkInterval, cc.FallingDuration, ErrInvalidCelebration))
	}
	if cc.SpawnChance < 0 || cc.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("spawn_chance %v outside [0, 1]: %w", cc.SpawnChance, ErrInvalidCelebration))
	}
	if cc.MaxParticles <= 0 {
		errs = append(errs, fmt.Errorf("max_particles %d must be positive: %w", cc.MaxParticles, ErrInvalidCelebration))
	}
	if cc.FadeDistance <= 0 || cc.PruneMargin < 0 {
		errs = append(errs, fmt.Errorf("fade_distance %v / prune_margin %v invalid: %w", cc.FadeDistance, cc.PruneMargin, ErrInvalidCelebration))
	}
	return errs
}

func (cl ClassicConfig) validate() []error {
	var errs []error
	if cl.StartingBalance.IsNegative() {
		errs = append(errs, fmt.Errorf("starting_balance %s is negative: %w", cl.StartingBalance, ErrInvalidClassic))
	}
	if !cl.MinBet.IsPositive() || !cl.BetStep.IsPositive() {
		errs = append(errs, fmt.Errorf("min_bet %s / bet_step %s must be positive: %w", cl.MinBet, cl.BetStep, ErrInvalidClassic))
	}
	if cl.SpinDuration <= 0 {
		errs = append(errs, fmt.Errorf("spin_duration %v must be positive: %w", cl.SpinDuration, ErrInvalidClassic))
	}
	if len(cl.Symbols) == 0 {
		errs = append(errs, fmt.Errorf("no classic symbols: %w", ErrInvalidClassic))
	}
	known := make(map[string]bool, len(cl.Symbols))
	for _, s := range cl.Symbols {
		known[s] = true
	}
	for s, mult := range cl.Payouts {
		if !known[s] {
			errs = append(errs, fmt.Errorf("payout for %q: %w", s, ErrUnknownSymbol))
		}
		if mult <= 0 {
			errs = append(errs, fmt.Errorf("payout for %q is %d: %w", s, mult, ErrInvalidClassic))
		}
	}
	return errs
}
