package scrape

import (
	"math/rand"

	"github.com/okian/departed/internal/domain/model"
)

// balanceAndSelect picks an evenly split dead/alive pool of at most
// target entries. The shuffle uses a fixed general-purpose seed so two
// scrape runs over identical results select the same pool; unlike the
// per-day shuffle, nothing outside this process depends on it.
func balanceAndSelect(pool []model.Celebrity, target int, seed int64) []model.Celebrity {
	var alive, dead []model.Celebrity
	for _, c := range pool {
		if c.Deceased() {
			dead = append(dead, c)
		} else {
			alive = append(alive, c)
		}
	}

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // reproducible selection, not security
	rng.Shuffle(len(alive), func(i, j int) { alive[i], alive[j] = alive[j], alive[i] })
	rng.Shuffle(len(dead), func(i, j int) { dead[i], dead[j] = dead[j], dead[i] })

	each := target / 2
	if len(alive) > each {
		alive = alive[:each]
	}
	if len(dead) > each {
		dead = dead[:each]
	}

	selected := make([]model.Celebrity, 0, len(alive)+len(dead))
	selected = append(selected, alive...)
	selected = append(selected, dead...)
	rng.Shuffle(len(selected), func(i, j int) { selected[i], selected[j] = selected[j], selected[i] })
	return selected
}
