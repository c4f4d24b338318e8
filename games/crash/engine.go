package crash

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidBet = errors.New("invalid bet")

// Engine runs one crash round at a time. Calls that don't match the current
// state (Start while running, Tick or CashOut while idle) are no-ops.
//
// An Engine is not safe for concurrent use; the caller serializes calls.
type Engine struct {
	cfg Config
	src Source

	step       int
	multiplier float64
	running    bool
	crashPoint float64 // sampled at Start, never exposed
}

// New returns an idle engine with the default config and a crypto source.
func New() *Engine {
	e, _ := NewEngine(DefaultConfig(), CryptoSource{})
	return e
}

// NewEngine returns an idle engine. A nil src means CryptoSource.
func NewEngine(cfg Config, src Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = CryptoSource{}
	}
	return &Engine{cfg: cfg, src: src, multiplier: 1.0}, nil
}

// Start begins a round and returns the multiplier. While a round is already
// running it returns the current multiplier and keeps the crash point.
func (e *Engine) Start() float64 {
	if e.running {
		return e.multiplier
	}
	e.running = true
	e.step = 0
	e.multiplier = 1.0
	e.crashPoint = SampleCrashPoint(e.cfg.HouseEdgeFactor, e.src)
	return e.multiplier
}

// Tick advances the multiplier by one step. When it reaches the crash point
// the round ends and the multiplier is clamped to exactly the crash point.
func (e *Engine) Tick() float64 {
	if !e.running {
		return e.multiplier
	}
	e.step++
	e.multiplier = e.cfg.MultiplierAt(e.step)
	if e.multiplier >= e.crashPoint {
		e.running = false
		e.multiplier = e.crashPoint
	}
	return e.multiplier
}

// CashOut settles the running round and returns bet * multiplier. After a
// crash (or before any round) it returns 0 with no side effects.
func (e *Engine) CashOut(bet float64) (float64, error) {
	if !finite(bet) || bet < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidBet, bet)
	}
	if !e.running {
		return 0, nil
	}
	winnings := decimal.NewFromFloat(bet).Mul(decimal.NewFromFloat(e.multiplier)).InexactFloat64()
	e.running = false
	e.step = 0
	e.multiplier = 1.0
	return winnings, nil
}

func (e *Engine) Multiplier() float64 { return e.multiplier }

func (e *Engine) IsRunning() bool { return e.running }

func (e *Engine) Config() Config { return e.cfg }
