package scrape

import "errors"

// Sentinel kinds for scrape batch failures. Both abort the save and
// leave any previously persisted pool untouched.
var (
	ErrNoResults     = errors.New("no results fetched")
	ErrTooFewResults = errors.New("too few results to replace pool")
)
