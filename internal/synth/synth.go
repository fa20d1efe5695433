// Package synth fabricates a realistic candidate pool for local
// development. The output passes validation and is balanced, so the
// generator and validator can be exercised without touching Wikidata.
package synth

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/okian/departed/internal/domain/model"
	"github.com/okian/departed/internal/scrape"
)

// Year ranges for fabricated records. They mirror the ranges the real
// queries ask for.
const (
	deadBirthMin  = 1900
	deadBirthMax  = 1975
	deadDeathMin  = 1980
	aliveBirthMin = 1940
	aliveBirthMax = 1995
	maxDeathYear  = 2024
	minAdultAge   = 20
	maxAge        = 100
)

// Synthetic entity IDs start high enough to never collide with real
// Wikidata QIDs in a mixed dataset.
const idOffset = 900000000

var firstNames = []string{
	"Alma", "Boris", "Clara", "Dmitri", "Elena", "Farid", "Greta",
	"Hugo", "Ingrid", "Jonas", "Keiko", "Lars", "Mina", "Nadia",
	"Oskar", "Paula", "Quentin", "Rosa", "Stefan", "Tilda",
}

var lastNames = []string{
	"Abramov", "Bellini", "Carver", "Dahl", "Eriksen", "Fontaine",
	"Grimaldi", "Holt", "Ivanova", "Jansen", "Kovacs", "Lindqvist",
	"Moreau", "Nakamura", "Okafor", "Petrov", "Quiroga", "Rossi",
	"Sandoval", "Turner",
}

// Generate returns n fabricated celebrities, alternating dead and
// alive so the pool is always balanced. The same seed yields the same
// pool.
func Generate(n int, seed int64) []model.Celebrity {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // fabricated data, not security sensitive
	pool := make([]model.Celebrity, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, person(rng, i, i%2 == 0))
	}
	return pool
}

func person(rng *rand.Rand, index int, dead bool) model.Celebrity {
	prof := scrape.Professions[rng.Intn(len(scrape.Professions))]
	id := "Q" + strconv.Itoa(idOffset+index)

	c := model.Celebrity{
		ID:                id,
		Name:              firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
		ImageURL:          "https://example.org/portraits/" + id + ".jpg",
		Profession:        strings.ToLower(prof.Label),
		ProfessionDisplay: scrape.TitleCase(prof.Label),
	}

	if dead {
		c.BirthYear = deadBirthMin + rng.Intn(deadBirthMax-deadBirthMin+1)
		death := c.BirthYear + minAdultAge + rng.Intn(maxAge-minAdultAge+1)
		if death < deadDeathMin {
			death = deadDeathMin
		}
		if death > maxDeathYear {
			death = maxDeathYear
		}
		c.DeathYear = &death
		return c
	}

	c.BirthYear = aliveBirthMin + rng.Intn(aliveBirthMax-aliveBirthMin+1)
	return c
}
