package config

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// wrapInvalid tags a field-level problem with ErrInvalidConfig.
func wrapInvalid(field string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, field, err)
}
