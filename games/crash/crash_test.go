package crash

import (
	"errors"
	"math"
	"testing"
)

func TestCrashPoint_Monotonic(t *testing.T) {
	prev := 0.0
	for i := 11; i < 1000; i++ { // u <= 0.01 is clamped
		u := float64(i) / 1000
		cp := CrashPoint(HouseEdgeFactor, u)
		if cp <= 0 {
			t.Fatalf("u=%v: crash point %v should be positive", u, cp)
		}
		if cp <= prev {
			t.Fatalf("u=%v: crash point %v not above previous %v", u, cp, prev)
		}
		prev = cp
	}
}

func TestCrashPoint_Values(t *testing.T) {
	tests := []struct {
		u    float64
		want float64
	}{
		{0.5, 1.98},
		{0.9, 0.99 / (1 - 0.9)},
		{0.99, 0.99 / (1 - 0.99)},
	}
	for _, tt := range tests {
		if got := CrashPoint(HouseEdgeFactor, tt.u); got != tt.want {
			t.Errorf("CrashPoint(%v) = %v, want %v", tt.u, got, tt.want)
		}
	}
}

func TestCrashPoint_ClampsToMinimum(t *testing.T) {
	for _, u := range []float64{0, 0.005, 0.01} {
		if got := CrashPoint(HouseEdgeFactor, u); got != MinCrashPoint {
			t.Errorf("CrashPoint(%v) = %v, want %v", u, got, MinCrashPoint)
		}
	}
}

func TestSampleCrashPoint_RedrawsOutOfRange(t *testing.T) {
	samples := []float64{1.0, math.NaN(), -0.2, 0.5}
	calls := 0
	src := SourceFunc(func() float64 {
		u := samples[calls]
		calls++
		return u
	})
	if got := SampleCrashPoint(HouseEdgeFactor, src); got != 1.98 {
		t.Fatalf("got %v want 1.98", got)
	}
	if calls != len(samples) {
		t.Errorf("source called %d times, want %d", calls, len(samples))
	}
}

func TestSampleCrashPoint_FallsBackWhenSourceBroken(t *testing.T) {
	got := SampleCrashPoint(HouseEdgeFactor, SourceFunc(func() float64 { return 1 }))
	if got < MinCrashPoint || math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("fallback crash point %v out of range", got)
	}
}

func TestMultiplier(t *testing.T) {
	tests := []struct {
		step int
		want float64
	}{
		{-3, 1.0},
		{0, 1.0},
		{1, 1.01},
		{50, 1.5},
		{97, 1.97},
		{98, 1.98},
		{400, 5.0},
	}
	for _, tt := range tests {
		if got := Multiplier(tt.step); got != tt.want {
			t.Errorf("Multiplier(%d) = %v, want %v", tt.step, got, tt.want)
		}
	}
}

func TestConfig_MultiplierAtCustomStep(t *testing.T) {
	cfg := Config{HouseEdgeFactor: HouseEdgeFactor, TickStep: 0.05}
	if got := cfg.MultiplierAt(3); got != 1.15 {
		t.Errorf("got %v want 1.15", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config: %v", err)
	}
	bad := []Config{
		{HouseEdgeFactor: 0, TickStep: 0.01},
		{HouseEdgeFactor: -1, TickStep: 0.01},
		{HouseEdgeFactor: math.NaN(), TickStep: 0.01},
		{HouseEdgeFactor: 0.99, TickStep: 0},
		{HouseEdgeFactor: 0.99, TickStep: math.Inf(1)},
	}
	for _, c := range bad {
		if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Validate(%+v) = %v, want ErrInvalidConfig", c, err)
		}
	}
}

func TestCryptoSource_Range(t *testing.T) {
	var src CryptoSource
	for i := 0; i < 10_000; i++ {
		u := src.Float64()
		if u < 0 || u >= 1 {
			t.Fatalf("sample %v outside [0, 1)", u)
		}
	}
}

func TestSeededSource_Reproducible(t *testing.T) {
	a, b := NewSeededSource(7), NewSeededSource(7)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("sample %d: %v != %v", i, x, y)
		}
	}
}
