package crash

import "fmt"

// SimulationResult summarizes a batch of simulated rounds with a unit bet.
type SimulationResult struct {
	Rounds      int     `json:"rounds"`
	Wins        int     `json:"wins"`
	TotalBet    float64 `json:"totalBet"`
	TotalPayout float64 `json:"totalPayout"`
	RTP         float64 `json:"rtp"`
	HitRate     float64 `json:"hitRate"`
}

// Simulate plays rounds on a fresh engine, cashing out as soon as the
// multiplier reaches target. Target must be above 1.
func Simulate(cfg Config, src Source, rounds int, target float64) (SimulationResult, error) {
	if !finite(target) || target <= 1 {
		return SimulationResult{}, fmt.Errorf("cash out target must be above 1, got %v", target)
	}
	e, err := NewEngine(cfg, src)
	if err != nil {
		return SimulationResult{}, err
	}
	var res SimulationResult
	for i := 0; i < rounds; i++ {
		e.Start()
		res.Rounds++
		res.TotalBet++
		for e.IsRunning() {
			m := e.Tick()
			if e.IsRunning() && m >= target {
				win, _ := e.CashOut(1)
				res.Wins++
				res.TotalPayout += win
			}
		}
	}
	if res.TotalBet > 0 {
		res.RTP = res.TotalPayout / res.TotalBet
		res.HitRate = float64(res.Wins) / float64(res.Rounds)
	}
	return res, nil
}
