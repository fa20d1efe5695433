package validate

import "github.com/okian/departed/internal/domain/model"

// Balance summarizes the dead/alive split of a pool.
type Balance struct {
	Total    int     `json:"total"`
	Alive    int     `json:"alive"`
	Dead     int     `json:"dead"`
	AlivePct float64 `json:"alive_pct"`
	DeadPct  float64 `json:"dead_pct"`
	Balanced bool    `json:"is_balanced"`
}

// CheckBalance computes the dead/alive split. An empty pool reports
// zero percentages and is never balanced.
func CheckBalance(pool []model.Celebrity) Balance {
	b := Balance{Total: len(pool)}
	for _, c := range pool {
		if c.Deceased() {
			b.Dead++
		} else {
			b.Alive++
		}
	}

	if b.Total > 0 {
		b.AlivePct = float64(b.Alive) / float64(b.Total) * 100
		b.DeadPct = float64(b.Dead) / float64(b.Total) * 100
		b.Balanced = b.AlivePct >= minAlivePct && b.AlivePct <= maxAlivePct
	}
	return b
}
