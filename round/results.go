package round

import (
	"sync"
	"time"
)

const (
	OutcomeWin  = "win"
	OutcomeLose = "lose"
)

// DefaultHistorySize is how many settled rounds a History keeps.
const DefaultHistorySize = 10

// Result records a settled round.
type Result struct {
	RoundID      string    `json:"roundId"`
	Outcome      string    `json:"outcome"` // "win" or "lose"
	Bet          float64   `json:"bet"`
	Multiplier   float64   `json:"multiplier"` // cash-out or crash multiplier
	WinAmount    float64   `json:"winAmount"`
	BalanceDelta float64   `json:"balanceDelta"`
	SettledAt    time.Time `json:"settledAt"`
}

// History keeps the most recent results in memory, newest first. Nothing is written to disk.
type History struct {
	mu      sync.Mutex
	results []Result
	size    int
}

func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// Append adds r and drops the oldest entry once the history is full.
func (h *History) Append(r Result) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.results = append([]Result{r}, h.results...)
	if len(h.results) > h.size {
		h.results = h.results[:h.size]
	}
}

// List returns a copy of the results, newest first.
func (h *History) List() []Result {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Result, len(h.results))
	copy(out, h.results)
	return out
}

// Last returns the most recent result, if any.
func (h *History) Last() (Result, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.results) == 0 {
		return Result{}, false
	}
	return h.results[0], true
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.results)
}
