package classic

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lixenwraith/heartreels/config"
	"github.com/lixenwraith/heartreels/constants"
)

// Result is the outcome of one settled classic spin
type Result struct {
	SessionID string
	Symbols   []string
	Stake     decimal.Decimal
	Win       decimal.Decimal
}

// Machine is the three-reel fruit machine. Every reel turns for the same
// fixed time, then lands on an independent random symbol.
type Machine struct {
	cfg    config.ClassicConfig
	rng    *rand.Rand
	wallet *Wallet

	stops      []int // Landed symbol index per reel
	spinning   bool
	sessionID  string
	stake      decimal.Decimal
	spinStart  time.Time
	flashUntil time.Time
	last       Result
}

// NewMachine creates an idle machine with a fresh wallet
func NewMachine(cfg config.ClassicConfig, rng *rand.Rand) *Machine {
	return &Machine{
		cfg:    cfg,
		rng:    rng,
		wallet: NewWallet(cfg),
		stops:  make([]int, constants.ReelCount),
	}
}

// Wallet exposes the balance and bet
func (m *Machine) Wallet() *Wallet {
	return m.wallet
}

// Spin debits the bet and starts the reels
func (m *Machine) Spin(now time.Time) error {
	if m.spinning {
		return ErrSpinning
	}
	stake, err := m.wallet.Debit()
	if err != nil {
		return err
	}

	m.spinning = true
	m.sessionID = uuid.NewString()
	m.stake = stake
	m.spinStart = now
	m.flashUntil = time.Time{}
	return nil
}

// Update lands the reels once the spin time has passed. It returns the
// result and true on the frame the spin settles.
func (m *Machine) Update(now time.Time) (Result, bool) {
	if !m.spinning || now.Sub(m.spinStart) < m.cfg.SpinDuration {
		return Result{}, false
	}

	row := make([]string, len(m.stops))
	for i := range m.stops {
		m.stops[i] = m.rng.Intn(len(m.cfg.Symbols))
		row[i] = m.cfg.Symbols[m.stops[i]]
	}

	win := m.wallet.Credit(m.stake, m.Multiplier(row))
	if win.IsPositive() {
		m.flashUntil = m.spinStart.Add(m.cfg.SpinDuration + m.cfg.WinFlashDuration)
	}

	m.spinning = false
	m.last = Result{SessionID: m.sessionID, Symbols: row, Stake: m.stake, Win: win}
	return m.last, true
}

// Multiplier returns the payout for a row: the symbol's multiplier when all
// reels match, zero otherwise
func (m *Machine) Multiplier(row []string) int64 {
	if len(row) == 0 {
		return 0
	}
	for _, sym := range row[1:] {
		if sym != row[0] {
			return 0
		}
	}
	return m.cfg.Payouts[row[0]]
}

// ReelSymbol returns the symbol a reel shows in the given row offset from
// the payline (-1 above, 0 payline, 1 below). A spinning reel scrolls once
// through the strip over the spin time.
func (m *Machine) ReelSymbol(reel, offset int, now time.Time) string {
	n := len(m.cfg.Symbols)
	idx := m.stops[reel]
	if m.spinning {
		progress := math.Min(float64(now.Sub(m.spinStart))/float64(m.cfg.SpinDuration), 1)
		idx = int(progress*float64(n*2)) + reel
	}
	return m.cfg.Symbols[((idx+offset)%n+n)%n]
}

// Spinning reports whether a spin is in progress
func (m *Machine) Spinning() bool {
	return m.spinning
}

// Flashing reports whether the win highlight is on at now
func (m *Machine) Flashing(now time.Time) bool {
	return now.Before(m.flashUntil)
}

// LastResult returns the most recent settled spin
func (m *Machine) LastResult() Result {
	return m.last
}
