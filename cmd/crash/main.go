package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ashenafi-pixel/crash-round-engine/config"
	"github.com/Ashenafi-pixel/crash-round-engine/games/crash"
	"github.com/Ashenafi-pixel/crash-round-engine/logging"
	"github.com/Ashenafi-pixel/crash-round-engine/round"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	rounds := flag.Int("rounds", 1, "Number of rounds to play")
	bet := flag.Float64("bet", 10, "Bet amount per round")
	target := flag.Float64("cashout", 2, "Auto cash-out multiplier (0 rides until the crash)")
	simulate := flag.Int("simulate", 0, "Simulate N rounds at -cashout and print the RTP instead of playing")
	seed := flag.Uint64("seed", 0, "Seed for a reproducible simulation (0 uses crypto/rand)")
	flag.Parse()

	// Load .env from cwd or the parent dir; missing files are fine.
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	var src crash.Source = crash.CryptoSource{}
	if *seed != 0 {
		src = crash.NewSeededSource(*seed)
	}

	if *simulate > 0 {
		res, err := crash.Simulate(cfg.Game(), src, *simulate, *target)
		if err != nil {
			log.Fatal("simulate", zap.Error(err))
		}
		fmt.Printf("rounds=%d wins=%d hit_rate=%.4f rtp=%.4f\n", res.Rounds, res.Wins, res.HitRate, res.RTP)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := play(ctx, cfg, src, log, *rounds, *bet, *target); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("play", zap.Error(err))
	}
}

func play(ctx context.Context, cfg *config.Config, src crash.Source, log *zap.Logger, rounds int, bet, target float64) error {
	engine, err := crash.NewEngine(cfg.Game(), src)
	if err != nil {
		return err
	}
	s := round.NewSession(engine, cfg.StartingBalance, round.NewHistory(cfg.HistorySize), log)
	for i := 0; i < rounds; i++ {
		res, err := round.Run(ctx, s, round.RunOptions{
			Bet:         bet,
			AutoCashout: target,
			Interval:    cfg.TickInterval,
			OnTick: func(m float64) {
				fmt.Printf("\r%.2fx ", m)
			},
			Log: log,
		})
		fmt.Println()
		if err != nil {
			return err
		}
		fmt.Printf("%s %.2fx delta=%+.2f balance=%.2f\n", res.Outcome, res.Multiplier, res.BalanceDelta, s.Balance())
	}
	for _, r := range s.History().List() {
		fmt.Printf("  %.1fx %s\n", r.Multiplier, r.Outcome)
	}
	return nil
}
