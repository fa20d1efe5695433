// Command validate checks the saved candidate pool for data problems
// and reports the alive/dead balance. It exits non-zero when any
// problem is found so it can gate a publish step.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/departed/internal/adapters/repository"
	"github.com/okian/departed/internal/config"
	"github.com/okian/departed/internal/domain/stats"
	"github.com/okian/departed/internal/domain/validate"
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

	store := repository.NewPoolStore(cfg.PoolPath())
	pool, err := store.Load(ctx)
	if err != nil {
		logger.Get().Error(ctx, "failed to load pool", logger.String("path", store.Path()), logger.Error(err))
		os.Exit(1)
	}

	problems := validate.Pool(pool)
	balance := validate.CheckBalance(pool)

	fmt.Printf("pool: %s\n", store.Path())
	fmt.Printf("records: %d\n", balance.Total)
	fmt.Printf("alive: %d (%.1f%%)\n", balance.Alive, balance.AlivePct)
	fmt.Printf("dead: %d (%.1f%%)\n", balance.Dead, balance.DeadPct)
	if balance.Balanced {
		fmt.Println("balance: ok")
	} else {
		fmt.Println("balance: outside 40-60% alive")
	}

	summary := stats.Summarize(pool)
	fmt.Printf("birth years: %d to %d\n", summary.OldestBirthYear, summary.NewestBirthYear)
	if summary.AvgLifespan > 0 {
		fmt.Printf("average lifespan (deceased): %.1f\n", summary.AvgLifespan)
	}
	fmt.Printf("professions: %d\n", summary.Professions)
	for _, p := range summary.TopProfessions {
		fmt.Printf("  %4d  %s\n", p.Count, p.Profession)
	}

	if len(problems) == 0 {
		fmt.Println("no problems found")
		return
	}

	fmt.Printf("problems: %d\n", len(problems))
	for _, p := range problems {
		fmt.Printf("  - %s\n", p)
	}
	os.Exit(1)
}
