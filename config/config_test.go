package config

import (
	"errors"
	"testing"
	"time"

	"github.com/Ashenafi-pixel/crash-round-engine/games/crash"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game() != crash.DefaultConfig() {
		t.Errorf("game config %+v want %+v", cfg.Game(), crash.DefaultConfig())
	}
	if cfg.TickInterval != 100*time.Millisecond {
		t.Errorf("tick interval %s", cfg.TickInterval)
	}
	if cfg.StartingBalance != 1000 || cfg.HistorySize != 10 {
		t.Errorf("balance %v history %d", cfg.StartingBalance, cfg.HistorySize)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "console" {
		t.Errorf("log %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CRASH_HOUSE_EDGE_FACTOR", "0.95")
	t.Setenv("CRASH_TICK_STEP", "0.05")
	t.Setenv("CRASH_TICK_INTERVAL", "16ms")
	t.Setenv("CRASH_STARTING_BALANCE", "250")
	t.Setenv("LOG_FORMAT", "json")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HouseEdgeFactor != 0.95 || cfg.TickStep != 0.05 {
		t.Errorf("game config %+v", cfg.Game())
	}
	if cfg.TickInterval != 16*time.Millisecond || cfg.StartingBalance != 250 || cfg.LogFormat != "json" {
		t.Errorf("config %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("CRASH_TICK_STEP", "0")
	if _, err := Load(); !errors.Is(err, crash.ErrInvalidConfig) {
		t.Fatalf("err %v want ErrInvalidConfig", err)
	}
}

func TestLoad_Unparseable(t *testing.T) {
	t.Setenv("CRASH_TICK_INTERVAL", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}
