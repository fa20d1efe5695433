// Package generate derives the per-day files from the candidate pool.
// Everything is a pure function of (pool, date, secret): re-running for
// the same inputs rewrites byte-identical files, so interrupted runs
// are simply run again.
package generate

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/okian/departed/internal/adapters/repository"
	"github.com/okian/departed/internal/config"
	"github.com/okian/departed/internal/domain/model"
	"github.com/okian/departed/internal/domain/rng"
	"github.com/okian/departed/internal/domain/schedule"
	"github.com/okian/departed/pkg/logger"
	"github.com/okian/departed/pkg/metrics"
)

// Generator writes daily slice files and the manifest.
type Generator struct {
	cfg  *config.Config
	pool *repository.PoolStore
	days *repository.DayStore
	log  logger.Logger
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithPoolStore replaces the pool store.
func WithPoolStore(store *repository.PoolStore) Option {
	return func(g *Generator) {
		if store != nil {
			g.pool = store
		}
	}
}

// WithDayStore replaces the day store.
func WithDayStore(store *repository.DayStore) Option {
	return func(g *Generator) {
		if store != nil {
			g.days = store
		}
	}
}

// WithLogger sets a custom logger for the generator.
func WithLogger(log logger.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// New constructs a Generator wired from configuration.
func New(cfg *config.Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:  cfg,
		pool: repository.NewPoolStore(cfg.PoolPath()),
		days: repository.NewDayStore(cfg.DaysPath()),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.log == nil {
		g.log = logger.Named("generate")
	}
	return g
}

// SliceFor returns the daily slice for one date: shuffle the pool with
// the day seed, take the first SliceSize entries. The pool order must
// be the persisted order or the permutation will not match the
// frontend's.
func (g *Generator) SliceFor(pool []model.Celebrity, date time.Time) []model.Celebrity {
	shuffled := rng.Shuffle(pool, schedule.DaySeed(date))
	return shuffled[:g.cfg.SliceSize]
}

// Run generates HorizonDays consecutive daily files starting at from,
// plus the manifest. A missing pool is fatal; the scraper has to run
// first.
func (g *Generator) Run(ctx context.Context, from time.Time) error {
	epoch, err := g.cfg.Epoch()
	if err != nil {
		return err
	}

	pool, err := g.pool.Load(ctx)
	if err != nil {
		return fmt.Errorf("load pool: %w", err)
	}
	if len(pool) < g.cfg.SliceSize {
		return fmt.Errorf("%w: pool has %d entries, need at least %d",
			ErrPoolTooSmall, len(pool), g.cfg.SliceSize)
	}

	start := schedule.Day(from)
	g.log.Info(ctx, "generating daily files",
		logger.Int("pool_size", len(pool)),
		logger.String("from", start.Format("2006-01-02")),
		logger.Int("days", g.cfg.HorizonDays))

	manifest := make(map[string]string, g.cfg.HorizonDays)
	for i := 0; i < g.cfg.HorizonDays; i++ {
		date := start.AddDate(0, 0, i)
		stem := schedule.FilenameStem(g.cfg.Secret, date)

		if err := g.days.WriteSlice(ctx, stem, g.SliceFor(pool, date)); err != nil {
			return err
		}

		dayNumber := schedule.DayNumber(date, epoch)
		manifest[strconv.Itoa(dayNumber)] = stem
		metrics.RecordDayGenerated()

		g.log.Debug(ctx, "daily file written",
			logger.Int("day", dayNumber),
			logger.String("date", date.Format("2006-01-02")),
			logger.String("stem", stem))
	}

	if err := g.days.WriteManifest(ctx, manifest); err != nil {
		return err
	}

	g.log.Info(ctx, "generation complete",
		logger.Int("days", g.cfg.HorizonDays),
		logger.String("dir", g.cfg.DaysPath()))
	return nil
}
