// Command synth writes a fabricated candidate pool so the generator
// and validator can be exercised without scraping Wikidata.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/departed/internal/config"
	"github.com/okian/departed/internal/synth"
	"github.com/okian/departed/pkg/logger"
)

const (
	defaultCount = 2000
	defaultSeed  = 1
)

func main() {
	count := flag.Int("count", defaultCount, "number of records to fabricate")
	seed := flag.Int64("seed", defaultSeed, "random seed (same seed, same pool)")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if *count <= 0 {
		logger.Get().Error(ctx, "-count must be positive", logger.Int("count", *count))
		os.Exit(1)
	}

	if err := synth.Run(ctx, cfg, *count, *seed); err != nil {
		logger.Get().Error(ctx, "synth failed", logger.Error(err))
		os.Exit(1)
	}
}
