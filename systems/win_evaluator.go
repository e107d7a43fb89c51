package systems

import (
	"math"
	"slices"
	"time"

	"github.com/lixenwraith/heartreels/components"
	"github.com/lixenwraith/heartreels/config"
)

// WinEvaluator reads the middle row of settled reels and matches it against
// the winning combinations
type WinEvaluator struct {
	symbols      []string
	symbolHeight float64
	combinations [][]string
}

// NewWinEvaluator creates an evaluator for a validated machine config
func NewWinEvaluator(cfg config.MachineConfig) *WinEvaluator {
	return &WinEvaluator{
		symbols:      cfg.Symbols,
		symbolHeight: cfg.SymbolHeight,
		combinations: cfg.WinningCombinations,
	}
}

// SymbolIndex returns the strip index shown in window row `row` of a reel
// scrolled to pos; row 0 is the top row
func SymbolIndex(pos, symbolHeight float64, row, count int) int {
	idx := (int(math.Floor(pos/symbolHeight)) + row) % count
	if idx < 0 {
		idx += count
	}
	return idx
}

// Symbol returns the symbol shown in window row `row` for a reel at pos
func (e *WinEvaluator) Symbol(pos float64, row int) string {
	return e.symbols[SymbolIndex(pos, e.symbolHeight, row, len(e.symbols))]
}

// MiddleSymbols reads the middle row left to right. Pure: the same
// positions always yield the same symbols.
func (e *WinEvaluator) MiddleSymbols(reels []components.ReelComponent) []string {
	out := make([]string, len(reels))
	for i, reel := range reels {
		out[i] = e.Symbol(reel.Position, 1)
	}
	return out
}

// IsWinning reports whether the row exactly matches a winning combination
func (e *WinEvaluator) IsWinning(row []string) bool {
	for _, combo := range e.combinations {
		if slices.Equal(row, combo) {
			return true
		}
	}
	return false
}

// Evaluate computes the result of a settled session; now becomes the
// jackpot start on a win
func (e *WinEvaluator) Evaluate(reels []components.ReelComponent, now time.Time) components.WinResult {
	row := e.MiddleSymbols(reels)
	result := components.WinResult{
		Symbols:   row,
		IsJackpot: e.IsWinning(row),
	}
	if result.IsJackpot {
		result.JackpotStart = now
	}
	return result
}
