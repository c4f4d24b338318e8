package round

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultTickInterval is the cadence of one multiplier step (100ms per step).
const DefaultTickInterval = 100 * time.Millisecond

// RunOptions configures one automatically driven round.
type RunOptions struct {
	Bet float64
	// AutoCashout cashes out once the multiplier reaches it. Zero rides until the crash.
	AutoCashout float64
	Interval    time.Duration
	// OnTick, if set, sees every multiplier the round produces.
	OnTick func(multiplier float64)
	Log    *zap.Logger
}

// Run places a bet and ticks the session on a fixed cadence until the round
// crashes or is cashed out. If ctx ends mid-round the round is cashed out
// and ctx.Err() is returned with the result.
func Run(ctx context.Context, s *Session, opts RunOptions) (Result, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	roundID, err := s.PlaceBet(opts.Bet)
	if err != nil {
		return Result{}, fmt.Errorf("place bet: %w", err)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
		if ctx.Err() != nil {
			log.Warn("round interrupted, cashing out", zap.String("roundId", roundID), zap.Error(ctx.Err()))
			res, err := s.CashOut()
			if err != nil {
				return Result{}, err
			}
			return res, ctx.Err()
		}

		m, crashed := s.Tick()
		if opts.OnTick != nil {
			opts.OnTick(m)
		}
		if crashed {
			res, _ := s.History().Last()
			return res, nil
		}
		if opts.AutoCashout > 0 && m >= opts.AutoCashout {
			log.Debug("auto cash out", zap.String("roundId", roundID), zap.Float64("target", opts.AutoCashout))
			return s.CashOut()
		}
	}
}
