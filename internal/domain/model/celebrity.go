// Package model contains domain models passed between layers.
package model

// Celebrity is a single public figure in the candidate pool. Field
// order is fixed because daily files must be byte-identical across
// regenerations; do not reorder.
type Celebrity struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	ImageURL          string `json:"imageUrl"`
	BirthYear         int    `json:"birthYear"`
	Profession        string `json:"profession"`
	ProfessionDisplay string `json:"professionDisplay"`
	DeathYear         *int   `json:"deathYear,omitempty"`
}

// Deceased reports whether the record carries a death year.
func (c Celebrity) Deceased() bool {
	return c.DeathYear != nil
}

// Lifespan returns the implied age at death, or 0 for the living.
func (c Celebrity) Lifespan() int {
	if c.DeathYear == nil {
		return 0
	}
	return *c.DeathYear - c.BirthYear
}
