// Command scrape assembles the candidate pool from Wikidata. The batch
// takes a while by design: every query is followed by a fixed delay to
// stay polite to the shared endpoint.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/departed/internal/config"
	"github.com/okian/departed/internal/scrape"
	"github.com/okian/departed/pkg/logger"
)

func main() {
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

	if err := scrape.New(cfg).Run(ctx); err != nil {
		logger.Get().Error(ctx, "scrape failed; previous pool left untouched", logger.Error(err))
		os.Exit(1)
	}
}
