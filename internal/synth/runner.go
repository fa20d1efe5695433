package synth

import (
	"context"
	"fmt"

	"github.com/okian/departed/internal/adapters/repository"
	"github.com/okian/departed/internal/config"
	"github.com/okian/departed/internal/domain/stats"
	"github.com/okian/departed/internal/domain/validate"
	"github.com/okian/departed/pkg/logger"
)

// Run fabricates a pool of count records and saves it to the
// configured pool path, backing up any existing pool first.
func Run(ctx context.Context, cfg *config.Config, count int, seed int64) error {
	log := logger.Get().Named("synth")

	pool := Generate(count, seed)

	// Guard against catalog or range mistakes before anything is
	// written; fabricated data must always pass the validator.
	if problems := validate.Pool(pool); len(problems) > 0 {
		return fmt.Errorf("generated pool failed validation: %s", problems[0])
	}

	balance := validate.CheckBalance(pool)
	summary := stats.Summarize(pool)
	log.Info(ctx, "fabricated pool",
		logger.Int("records", balance.Total),
		logger.Float64("alive_pct", balance.AlivePct),
		logger.Int("professions", summary.Professions),
		logger.Float64("avg_lifespan", summary.AvgLifespan))

	store := repository.NewPoolStore(cfg.PoolPath(), repository.WithBackupPath(cfg.BackupPath()))
	backedUp, err := store.Backup(ctx)
	if err != nil {
		return fmt.Errorf("failed to back up existing pool: %w", err)
	}
	if backedUp {
		log.Info(ctx, "backed up existing pool", logger.String("path", cfg.BackupPath()))
	}

	if err := store.Save(ctx, pool); err != nil {
		return fmt.Errorf("failed to save pool: %w", err)
	}
	log.Info(ctx, "saved pool", logger.String("path", store.Path()))
	return nil
}
