// Package scrape assembles the candidate pool from the Wikidata query
// service. A batch walks the profession catalog twice (deceased, then
// living), pausing between queries to stay polite to the shared
// endpoint; a failed query yields zero rows and the batch continues.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/okian/departed/internal/adapters/repository"
	"github.com/okian/departed/internal/adapters/wikidata"
	"github.com/okian/departed/internal/config"
	"github.com/okian/departed/internal/domain/model"
	"github.com/okian/departed/internal/domain/validate"
	"github.com/okian/departed/pkg/logger"
	"github.com/okian/departed/pkg/metrics"
)

// occupationBatchSize bounds the VALUES clause of enrichment queries
// so they stay under the endpoint's timeout.
const occupationBatchSize = 400

// Stats holds scrape batch statistics.
type Stats struct {
	QueriesIssued int
	QueriesFailed int
	DeadRows      int
	AliveRows     int
	UniqueKept    int
	Selected      int
	StartTime     time.Time
	Duration      time.Duration
}

// Runner executes scrape batches.
type Runner struct {
	cfg    *config.Config
	client *wikidata.Client
	store  *repository.PoolStore
	log    logger.Logger
}

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithClient replaces the SPARQL client (used by tests).
func WithClient(client *wikidata.Client) Option {
	return func(r *Runner) {
		if client != nil {
			r.client = client
		}
	}
}

// WithStore replaces the pool store.
func WithStore(store *repository.PoolStore) Option {
	return func(r *Runner) {
		if store != nil {
			r.store = store
		}
	}
}

// WithLogger sets a custom logger for the runner.
func WithLogger(log logger.Logger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// New constructs a Runner wired from configuration.
func New(cfg *config.Config, opts ...Option) *Runner {
	r := &Runner{
		cfg: cfg,
		client: wikidata.New(
			wikidata.WithEndpoint(cfg.SPARQLEndpoint),
			wikidata.WithUserAgent(cfg.UserAgent),
			wikidata.WithTimeout(cfg.RequestTimeout()),
		),
		store: repository.NewPoolStore(cfg.PoolPath(), repository.WithBackupPath(cfg.BackupPath())),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.log == nil {
		r.log = logger.Named("scrape")
	}
	return r
}

// Run executes one complete scrape batch.
func (r *Runner) Run(ctx context.Context) error {
	stats := &Stats{StartTime: time.Now()}
	runID := uuid.New().String()
	log := r.log

	log.Info(ctx, "starting scrape batch",
		logger.String("run_id", runID),
		logger.String("endpoint", r.cfg.SPARQLEndpoint),
		logger.Int("professions", len(Professions)),
		logger.Duration("request_delay", r.cfg.RequestDelay()),
		logger.Int("target_pool_size", r.cfg.TargetPoolSize))

	// Serve scrape progress while the batch runs.
	if r.cfg.MetricsAddr != "" {
		r.serveMetrics(ctx)
	}

	// Step 1: fetch deceased, then living, one profession at a time.
	deadRows, err := r.fetchAll(ctx, stats, true)
	if err != nil {
		return err
	}
	aliveRows, err := r.fetchAll(ctx, stats, false)
	if err != nil {
		return err
	}
	stats.DeadRows = len(deadRows)
	stats.AliveRows = len(aliveRows)

	if len(deadRows) == 0 && len(aliveRows) == 0 {
		return fmt.Errorf("%w: run %s fetched nothing", ErrNoResults, runID)
	}

	// Step 2: dedupe and normalize. Deceased rows come first so a
	// person appearing in both sets keeps the death year.
	celebrities := processRows(append(deadRows, aliveRows...))
	stats.UniqueKept = len(celebrities)
	log.Info(ctx, "processed results",
		logger.String("run_id", runID),
		logger.Int("unique", len(celebrities)))

	if len(celebrities) < r.cfg.MinPoolSize {
		return fmt.Errorf("%w: %d unique candidates, need at least %d",
			ErrTooFewResults, len(celebrities), r.cfg.MinPoolSize)
	}

	// Step 3: balance dead/alive and cap at the target size.
	selected := balanceAndSelect(celebrities, r.cfg.TargetPoolSize, r.cfg.SelectionSeed)
	stats.Selected = len(selected)

	balance := validate.CheckBalance(selected)
	metrics.UpdatePoolAlivePercent(balance.AlivePct)
	log.Info(ctx, "balanced pool",
		logger.Int("selected", balance.Total),
		logger.Int("alive", balance.Alive),
		logger.Int("dead", balance.Dead),
		logger.Float64("alive_pct", balance.AlivePct))

	// Step 4: resolve real occupations for the selected pool.
	r.enrichOccupations(ctx, selected)

	// Step 5: back up the previous pool, then overwrite.
	backedUp, err := r.store.Backup(ctx)
	if err != nil {
		return fmt.Errorf("pool backup failed: %w", err)
	}
	if backedUp {
		log.Info(ctx, "backed up previous pool", logger.String("path", r.cfg.BackupPath()))
	}
	if err := r.store.Save(ctx, selected); err != nil {
		return fmt.Errorf("pool save failed: %w", err)
	}

	stats.Duration = time.Since(stats.StartTime)
	log.Info(ctx, "scrape batch complete",
		logger.String("run_id", runID),
		logger.String("path", r.cfg.PoolPath()),
		logger.Int("pool_size", len(selected)),
		logger.Duration("duration", stats.Duration))
	return nil
}

// fetchAll walks the profession catalog for one mortality bucket.
// Query failures are logged and contribute zero rows.
func (r *Runner) fetchAll(ctx context.Context, stats *Stats, deceased bool) ([]wikidata.PersonRow, error) {
	bucket := "living"
	if deceased {
		bucket = "deceased"
	}

	var rows []wikidata.PersonRow
	for _, prof := range Professions {
		query := wikidata.LivingQuery(prof.ID, r.cfg.RowLimit)
		if deceased {
			query = wikidata.DeceasedQuery(prof.ID, r.cfg.RowLimit)
		}

		stats.QueriesIssued++
		got, err := r.client.FetchPeople(ctx, query)
		if err != nil {
			stats.QueriesFailed++
			r.log.Warn(ctx, "query failed, continuing",
				logger.String("bucket", bucket),
				logger.String("profession", prof.Label),
				logger.Error(err))
		} else {
			r.log.Debug(ctx, "query complete",
				logger.String("bucket", bucket),
				logger.String("profession", prof.Label),
				logger.Int("rows", len(got)))
			rows = append(rows, got...)
		}

		if err := pause(ctx, r.cfg.RequestDelay()); err != nil {
			return nil, err
		}
	}

	r.log.Info(ctx, "bucket fetched",
		logger.String("bucket", bucket),
		logger.Int("rows", len(rows)))
	return rows, nil
}

// enrichOccupations resolves occupation labels in batches. Failures
// leave the placeholder profession in place; the pool is still usable.
func (r *Runner) enrichOccupations(ctx context.Context, pool []model.Celebrity) {
	ids := make([]string, len(pool))
	for i, c := range pool {
		ids[i] = c.ID
	}

	for start := 0; start < len(ids); start += occupationBatchSize {
		end := start + occupationBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		occupations, err := r.client.FetchOccupations(ctx, wikidata.OccupationsQuery(ids[start:end]))
		if err != nil {
			r.log.Warn(ctx, "occupation enrichment failed for batch",
				logger.Int("start", start),
				logger.Error(err))
			continue
		}
		applyOccupations(pool, occupations)

		if err := pause(ctx, r.cfg.RequestDelay()); err != nil {
			return
		}
	}
}

// serveMetrics exposes /metrics for the duration of the batch.
func (r *Runner) serveMetrics(ctx context.Context) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{Addr: r.cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		r.log.Info(ctx, "serving scrape metrics", logger.String("addr", r.cfg.MetricsAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			r.log.Warn(ctx, "metrics listener failed", logger.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
}

// pause sleeps for the inter-request delay, honoring cancellation.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
