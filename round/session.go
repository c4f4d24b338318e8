package round

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Ashenafi-pixel/crash-round-engine/games/crash"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultBalance is the starting balance of a new player session.
const DefaultBalance = 1000

var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrRoundInProgress     = errors.New("round already in progress")
	ErrNoActiveRound       = errors.New("no active round")
)

// Session is one player's wallet driving a crash engine: bets are debited on
// PlaceBet and winnings credited on CashOut. Not safe for concurrent use.
type Session struct {
	engine  *crash.Engine
	history *History
	log     *zap.Logger
	now     func() time.Time

	balance decimal.Decimal
	bet     decimal.Decimal
	roundID string
}

// NewSession wraps engine with a wallet holding balance. A nil history gets
// the default size; a nil logger discards output.
func NewSession(engine *crash.Engine, balance float64, history *History, log *zap.Logger) *Session {
	if history == nil {
		history = NewHistory(DefaultHistorySize)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		engine:  engine,
		history: history,
		log:     log,
		now:     time.Now,
		balance: decimal.NewFromFloat(balance),
	}
}

// PlaceBet debits amount and starts a round. It returns the new round ID.
func (s *Session) PlaceBet(amount float64) (string, error) {
	if s.roundID != "" {
		return "", fmt.Errorf("%w: %s", ErrRoundInProgress, s.roundID)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return "", fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	amt := decimal.NewFromFloat(amount)
	if amt.GreaterThan(s.balance) {
		return "", fmt.Errorf("%w: bet %s, balance %s", ErrInsufficientBalance, amt.StringFixed(2), s.balance.StringFixed(2))
	}
	s.balance = s.balance.Sub(amt)
	s.bet = amt
	s.roundID = uuid.New().String()
	s.engine.Start()
	s.log.Info("round started",
		zap.String("roundId", s.roundID),
		zap.String("bet", amt.StringFixed(2)),
		zap.String("balance", s.balance.StringFixed(2)))
	return s.roundID, nil
}

// Tick advances the active round. crashed is true on the tick that ends it;
// the loss is recorded in the history.
func (s *Session) Tick() (multiplier float64, crashed bool) {
	if s.roundID == "" {
		return s.engine.Multiplier(), false
	}
	m := s.engine.Tick()
	if s.engine.IsRunning() {
		return m, false
	}
	res := s.settle(OutcomeLose, m, decimal.Zero)
	s.log.Info("round crashed",
		zap.String("roundId", res.RoundID),
		zap.Float64("crashPoint", m),
		zap.Float64("lost", res.Bet))
	return m, true
}

// CashOut settles the active round at the current multiplier.
func (s *Session) CashOut() (Result, error) {
	if s.roundID == "" {
		return Result{}, ErrNoActiveRound
	}
	m := s.engine.Multiplier()
	win, err := s.engine.CashOut(s.bet.InexactFloat64())
	if err != nil {
		return Result{}, fmt.Errorf("cash out %s: %w", s.roundID, err)
	}
	winD := decimal.NewFromFloat(win)
	s.balance = s.balance.Add(winD)
	res := s.settle(OutcomeWin, m, winD)
	s.log.Info("round cashed out",
		zap.String("roundId", res.RoundID),
		zap.Float64("multiplier", m),
		zap.Float64("win", res.WinAmount),
		zap.String("balance", s.balance.StringFixed(2)))
	return res, nil
}

func (s *Session) settle(outcome string, m float64, win decimal.Decimal) Result {
	res := Result{
		RoundID:      s.roundID,
		Outcome:      outcome,
		Bet:          s.bet.InexactFloat64(),
		Multiplier:   m,
		WinAmount:    win.InexactFloat64(),
		BalanceDelta: win.Sub(s.bet).InexactFloat64(),
		SettledAt:    s.now(),
	}
	s.history.Append(res)
	s.roundID = ""
	s.bet = decimal.Zero
	return res
}

func (s *Session) Balance() float64 { return s.balance.InexactFloat64() }

func (s *Session) Active() bool { return s.roundID != "" }

func (s *Session) RoundID() string { return s.roundID }

func (s *Session) Multiplier() float64 { return s.engine.Multiplier() }

func (s *Session) History() *History { return s.history }
