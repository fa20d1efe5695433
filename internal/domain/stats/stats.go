// Package stats computes descriptive statistics over a candidate pool.
package stats

import (
	"sort"

	"github.com/okian/departed/internal/domain/model"
)

// Default reporting limits.
const (
	defaultTopProfessions = 10
	decadeSpan            = 10
)

// ProfessionCount pairs a profession key with how often it occurs.
type ProfessionCount struct {
	Profession string `json:"profession"`
	Count      int    `json:"count"`
}

// DecadeCount pairs a birth decade (e.g. 1960) with how many records
// fall into it.
type DecadeCount struct {
	Decade int `json:"decade"`
	Count  int `json:"count"`
}

// Summary aggregates the pool-level numbers the report prints.
type Summary struct {
	Total           int               `json:"total"`
	Professions     int               `json:"professions"`
	TopProfessions  []ProfessionCount `json:"top_professions"`
	BirthDecades    []DecadeCount     `json:"birth_decades"`
	AvgLifespan     float64           `json:"avg_lifespan"`
	OldestBirthYear int               `json:"oldest_birth_year"`
	NewestBirthYear int               `json:"newest_birth_year"`
}

// Summarize walks the pool once and returns its summary. Lifespan is
// averaged over deceased records only.
func Summarize(pool []model.Celebrity) Summary {
	s := Summary{Total: len(pool)}
	if len(pool) == 0 {
		return s
	}

	professions := make(map[string]int)
	decades := make(map[int]int)
	lifespanSum := 0
	deceased := 0
	s.OldestBirthYear = pool[0].BirthYear
	s.NewestBirthYear = pool[0].BirthYear

	for _, c := range pool {
		professions[c.Profession]++
		decades[decadeOf(c.BirthYear)]++
		if c.BirthYear < s.OldestBirthYear {
			s.OldestBirthYear = c.BirthYear
		}
		if c.BirthYear > s.NewestBirthYear {
			s.NewestBirthYear = c.BirthYear
		}
		if c.Deceased() {
			lifespanSum += c.Lifespan()
			deceased++
		}
	}

	s.Professions = len(professions)
	s.TopProfessions = topProfessions(professions, defaultTopProfessions)
	s.BirthDecades = sortedDecades(decades)
	if deceased > 0 {
		s.AvgLifespan = float64(lifespanSum) / float64(deceased)
	}
	return s
}

func decadeOf(year int) int {
	d := year / decadeSpan * decadeSpan
	if year < 0 && year%decadeSpan != 0 {
		d -= decadeSpan
	}
	return d
}

// topProfessions returns the n most frequent professions, ties broken
// alphabetically so output is stable.
func topProfessions(counts map[string]int, n int) []ProfessionCount {
	out := make([]ProfessionCount, 0, len(counts))
	for p, c := range counts {
		out = append(out, ProfessionCount{Profession: p, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Profession < out[j].Profession
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func sortedDecades(counts map[int]int) []DecadeCount {
	out := make([]DecadeCount, 0, len(counts))
	for d, c := range counts {
		out = append(out, DecadeCount{Decade: d, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Decade < out[j].Decade })
	return out
}
