package wikidata

import (
	"fmt"
	"strings"
)

// Year cutoffs keeping the game guessable: everyone is modern enough
// to have a photograph, and the deceased died recently enough to be
// remembered.
const (
	deadMinBirthYear  = 1900
	deadMinDeathYear  = 1980
	aliveMinBirthYear = 1940
	aliveMaxBirthYear = 1995
)

// DeceasedQuery selects deceased people with a given occupation, an
// image, and plausible birth/death years.
func DeceasedQuery(occupationID string, limit int) string {
	return fmt.Sprintf(`
SELECT DISTINCT ?person ?personLabel ?image ?birthYear ?deathYear
WHERE {
  ?person wdt:P31 wd:Q5;
          wdt:P106 wd:%s;
          wdt:P18 ?image;
          wdt:P569 ?birthDate;
          wdt:P570 ?deathDate.

  BIND(YEAR(?birthDate) AS ?birthYear)
  BIND(YEAR(?deathDate) AS ?deathYear)

  FILTER(?birthYear >= %d)
  FILTER(?deathYear >= %d)

  SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
}
LIMIT %d
`, occupationID, deadMinBirthYear, deadMinDeathYear, limit)
}

// LivingQuery selects living people with a given occupation, an image,
// and no death claim.
func LivingQuery(occupationID string, limit int) string {
	return fmt.Sprintf(`
SELECT DISTINCT ?person ?personLabel ?image ?birthYear
WHERE {
  ?person wdt:P31 wd:Q5;
          wdt:P106 wd:%s;
          wdt:P18 ?image;
          wdt:P569 ?birthDate.

  FILTER NOT EXISTS { ?person wdt:P570 ?deathDate. }

  BIND(YEAR(?birthDate) AS ?birthYear)

  FILTER(?birthYear >= %d)
  FILTER(?birthYear <= %d)

  SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
}
LIMIT %d
`, occupationID, aliveMinBirthYear, aliveMaxBirthYear, limit)
}

// OccupationsQuery fetches occupation labels for a batch of entity IDs
// in one VALUES query.
func OccupationsQuery(ids []string) string {
	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = "wd:" + id
	}
	return fmt.Sprintf(`
SELECT ?person ?personLabel ?occupationLabel
WHERE {
  VALUES ?person { %s }
  ?person wdt:P106 ?occupation.
  SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }
}
`, strings.Join(values, " "))
}
