// Command generate derives the daily slice files and the manifest from
// the saved candidate pool. Output is deterministic for a given pool,
// secret and epoch, so re-running it is always safe.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/departed/internal/config"
	"github.com/okian/departed/internal/generate"
	"github.com/okian/departed/pkg/logger"
)

const dateLayout = "2006-01-02"

func main() {
	from := flag.String("from", "", "first date to generate (YYYY-MM-DD, default today)")
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

	start := time.Now().UTC()
	if *from != "" {
		start, err = time.Parse(dateLayout, *from)
		if err != nil {
			logger.Get().Error(ctx, "invalid -from date", logger.String("from", *from), logger.Error(err))
			os.Exit(1)
		}
	}

	if err := generate.New(cfg).Run(ctx, start); err != nil {
		logger.Get().Error(ctx, "generation failed", logger.Error(err))
		os.Exit(1)
	}
}
