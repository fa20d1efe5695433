package generate

import "errors"

// Sentinel kinds for generation failures.
var (
	ErrPoolTooSmall = errors.New("candidate pool smaller than slice size")
)
