package config

import "errors"

// Validation failures, wrapped with detail by Validate
var (
	ErrNoSymbols             = errors.New("no symbols configured")
	ErrBlankSymbol           = errors.New("blank symbol name")
	ErrDuplicateSymbol       = errors.New("duplicate symbol")
	ErrNoWinningCombinations = errors.New("no winning combinations configured")
	ErrCombinationLength     = errors.New("winning combination length does not match reel count")
	ErrUnknownSymbol         = errors.New("unknown symbol")
	ErrMissingAppearance     = errors.New("symbol has neither sprite nor glyph")
	ErrInvalidPhysics        = errors.New("invalid reel physics")
	ErrInvalidCelebration    = errors.New("invalid celebration timing")
	ErrInvalidClassic        = errors.New("invalid classic machine settings")
)
