package repository

import "errors"

// Sentinel kinds for pool storage errors.
var (
	ErrPoolMissing = errors.New("candidate pool file does not exist")
	ErrPoolCorrupt = errors.New("candidate pool file is not valid JSON")
)
