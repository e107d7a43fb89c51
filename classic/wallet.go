package classic

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lixenwraith/heartreels/config"
)

// Wallet holds the player's balance and current bet
type Wallet struct {
	balance decimal.Decimal
	bet     decimal.Decimal
	minBet  decimal.Decimal
	step    decimal.Decimal
}

// NewWallet starts at the configured balance with the minimum bet
func NewWallet(cfg config.ClassicConfig) *Wallet {
	return &Wallet{
		balance: cfg.StartingBalance,
		bet:     cfg.MinBet,
		minBet:  cfg.MinBet,
		step:    cfg.BetStep,
	}
}

// Balance returns the current balance
func (w *Wallet) Balance() decimal.Decimal {
	return w.balance
}

// Bet returns the current bet
func (w *Wallet) Bet() decimal.Decimal {
	return w.bet
}

// ChangeBet moves the bet by steps increments. The change is ignored unless
// the new bet stays within [minimum bet, balance].
func (w *Wallet) ChangeBet(steps int) bool {
	next := w.bet.Add(w.step.Mul(decimal.NewFromInt(int64(steps))))
	if next.LessThan(w.minBet) || next.GreaterThan(w.balance) {
		return false
	}
	w.bet = next
	return true
}

// Debit takes the current bet from the balance and returns the stake
func (w *Wallet) Debit() (decimal.Decimal, error) {
	if w.balance.LessThan(w.bet) {
		return decimal.Zero, fmt.Errorf("%w: balance %s, bet %s", ErrInsufficientBalance, w.balance, w.bet)
	}
	w.balance = w.balance.Sub(w.bet)
	return w.bet, nil
}

// Credit pays stake x multiplier and returns the winnings
func (w *Wallet) Credit(stake decimal.Decimal, multiplier int64) decimal.Decimal {
	if multiplier <= 0 {
		return decimal.Zero
	}
	win := stake.Mul(decimal.NewFromInt(multiplier))
	w.balance = w.balance.Add(win)
	return win
}
