// Package validate checks candidate pool records for data quality and
// reports the dead/alive balance. Problems are collected exhaustively
// rather than fail-fast so a single run surfaces everything wrong with
// a scraped pool.
package validate

import (
	"fmt"
	"strings"

	"github.com/okian/departed/internal/domain/model"
)

// Plausibility bounds for scraped records.
const (
	minBirthYear = -500
	maxBirthYear = 2010
	maxLifespan  = 130
)

// Balance thresholds: the pool counts as balanced when the alive share
// sits within 10 points of an even split.
const (
	minAlivePct = 40.0
	maxAlivePct = 60.0
)

// Record checks a single celebrity and returns every problem found.
// The index is included in messages so issues can be located in the
// pool file.
func Record(c model.Celebrity, index int) []string {
	var problems []string

	missing := func(field string) {
		problems = append(problems, fmt.Sprintf("celebrity %d: missing required field %q", index, field))
	}
	if c.ID == "" {
		missing("id")
	}
	if c.Name == "" {
		missing("name")
	}
	if c.ImageURL == "" {
		missing("imageUrl")
	}
	if c.Profession == "" {
		missing("profession")
	}
	if c.BirthYear == 0 {
		missing("birthYear")
	}

	if c.BirthYear != 0 && (c.BirthYear < minBirthYear || c.BirthYear > maxBirthYear) {
		problems = append(problems, fmt.Sprintf("celebrity %d (%s): birthYear %d is out of range", index, c.Name, c.BirthYear))
	}

	if c.DeathYear != nil && c.BirthYear != 0 {
		switch {
		case *c.DeathYear < c.BirthYear:
			problems = append(problems, fmt.Sprintf("celebrity %d (%s): deathYear %d is before birthYear %d", index, c.Name, *c.DeathYear, c.BirthYear))
		case c.Lifespan() > maxLifespan:
			problems = append(problems, fmt.Sprintf("celebrity %d (%s): age at death (%d) is unrealistic", index, c.Name, c.Lifespan()))
		}
	}

	if c.ImageURL != "" && !strings.HasPrefix(c.ImageURL, "http") {
		problems = append(problems, fmt.Sprintf("celebrity %d (%s): invalid imageUrl", index, c.Name))
	}

	if LooksLikeEntityID(c.Name) {
		problems = append(problems, fmt.Sprintf("celebrity %d: name looks like a Wikidata ID: %s", index, c.Name))
	}

	return problems
}

// Duplicates returns one problem per celebrity ID that appears more
// than once in the pool. Duplicate names are allowed; different people
// share names.
func Duplicates(pool []model.Celebrity) []string {
	var problems []string
	seen := make(map[string]int, len(pool))

	for i, c := range pool {
		if first, ok := seen[c.ID]; ok {
			problems = append(problems, fmt.Sprintf("duplicate ID %q at indices %d and %d", c.ID, first, i))
			continue
		}
		seen[c.ID] = i
	}
	return problems
}

// Pool runs every record check plus duplicate detection over the whole
// pool and returns the combined problem list.
func Pool(pool []model.Celebrity) []string {
	var problems []string
	for i, c := range pool {
		problems = append(problems, Record(c, i)...)
	}
	return append(problems, Duplicates(pool)...)
}

// LooksLikeEntityID reports whether a display name is shaped like a raw
// Wikidata QID (label resolution failed upstream).
func LooksLikeEntityID(name string) bool {
	if len(name) < 2 || name[0] != 'Q' {
		return false
	}
	rest := strings.ReplaceAll(name[1:], "-", "")
	if rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
