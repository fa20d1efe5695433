// Package config defines pipeline configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"path/filepath"
	"time"
)

// defaultSecret is the filename salt shared byte-for-byte with the
// game frontend. Changing it invalidates every published
// filename-to-date mapping and forces a full regeneration.
const defaultSecret = "DailyDeparted2024SecretSalt!@#$"

// Config contains process configuration for all three pipeline tools.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DataDir is the root directory for all generated artifacts.
	DataDir string `koanf:"data_dir"`

	// PoolFile is the candidate pool filename inside DataDir.
	PoolFile string `koanf:"pool_file"`

	// BackupFile receives a copy of the previous pool before overwrite.
	BackupFile string `koanf:"backup_file"`

	// DaysDir is the daily-files directory inside DataDir.
	DaysDir string `koanf:"days_dir"`

	// Secret salts the daily filename hashes; shared with the frontend.
	Secret string `koanf:"secret"`

	// EpochDate anchors day numbering (the epoch itself is day 1),
	// formatted YYYY-MM-DD.
	EpochDate string `koanf:"epoch_date"`

	// HorizonDays is how many consecutive daily files to generate.
	HorizonDays int `koanf:"horizon_days"`

	// SliceSize is the number of celebrities per daily file.
	SliceSize int `koanf:"slice_size"`

	// SPARQLEndpoint is the Wikidata query service URL.
	SPARQLEndpoint string `koanf:"sparql_endpoint"`

	// UserAgent identifies the scraper to the endpoint.
	UserAgent string `koanf:"user_agent"`

	// RequestTimeoutSec bounds each SPARQL request.
	RequestTimeoutSec int `koanf:"request_timeout_sec"`

	// RequestDelayMS is the fixed pause between SPARQL requests.
	RequestDelayMS int `koanf:"request_delay_ms"`

	// RowLimit caps result rows per profession query.
	RowLimit int `koanf:"row_limit"`

	// TargetPoolSize is the desired pool size after balancing.
	TargetPoolSize int `koanf:"target_pool_size"`

	// MinPoolSize aborts the save when fewer unique candidates remain.
	MinPoolSize int `koanf:"min_pool_size"`

	// SelectionSeed drives the pool-selection shuffle. Only pool
	// membership depends on it; daily ordering uses the day seed.
	SelectionSeed int64 `koanf:"selection_seed"`

	// MetricsAddr serves /metrics during the scrape batch when set,
	// e.g. ":9090". Empty disables the listener.
	MetricsAddr string `koanf:"metrics_addr"`
}

// New creates a Config with defaults matching the published game data.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		DataDir:           "data",
		PoolFile:          "celebrities.json",
		BackupFile:        "celebrities_backup.json",
		DaysDir:           "days",
		Secret:            defaultSecret,
		EpochDate:         "2024-01-01",
		HorizonDays:       365,
		SliceSize:         10,
		SPARQLEndpoint:    "https://query.wikidata.org/sparql",
		UserAgent:         "DeadOrAliveGame/1.0 (educational game project)",
		RequestTimeoutSec: 60,
		RequestDelayMS:    1500,
		RowLimit:          150,
		TargetPoolSize:    2000,
		MinPoolSize:       50,
		SelectionSeed:     42,
		MetricsAddr:       "",
	}
}

// PoolPath returns the full candidate pool path.
func (c *Config) PoolPath() string {
	return filepath.Join(c.DataDir, c.PoolFile)
}

// BackupPath returns the full pool backup path.
func (c *Config) BackupPath() string {
	return filepath.Join(c.DataDir, c.BackupFile)
}

// DaysPath returns the full daily-files directory path.
func (c *Config) DaysPath() string {
	return filepath.Join(c.DataDir, c.DaysDir)
}

// Epoch parses EpochDate as a UTC calendar date.
func (c *Config) Epoch() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.EpochDate)
	if err != nil {
		return time.Time{}, wrapInvalid("epoch_date", err)
	}
	return t, nil
}

// RequestTimeout returns the per-request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

// RequestDelay returns the inter-request delay as a duration.
func (c *Config) RequestDelay() time.Duration {
	return time.Duration(c.RequestDelayMS) * time.Millisecond
}
