package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if DEPARTED_CONFIG is set
//  3. env (prefix DEPARTED_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("DEPARTED_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: DEPARTED_DATA_DIR, DEPARTED_HORIZON_DAYS, ...
	// Map env keys like DEPARTED_ROW_LIMIT -> row_limit (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("DEPARTED_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "departed_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations no tool can run with.
func (c *Config) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir must not be empty", ErrInvalidConfig)
	}
	if c.Secret == "" {
		return fmt.Errorf("%w: secret must not be empty", ErrInvalidConfig)
	}
	if c.SliceSize <= 0 {
		return fmt.Errorf("%w: slice_size must be positive", ErrInvalidConfig)
	}
	if c.HorizonDays <= 0 {
		return fmt.Errorf("%w: horizon_days must be positive", ErrInvalidConfig)
	}
	if c.TargetPoolSize < c.SliceSize {
		return fmt.Errorf("%w: target_pool_size must be at least slice_size", ErrInvalidConfig)
	}
	if _, err := c.Epoch(); err != nil {
		return err
	}
	return nil
}
