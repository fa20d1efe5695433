package scrape_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/departed/internal/adapters/repository"
	"github.com/okian/departed/internal/adapters/wikidata"
	"github.com/okian/departed/internal/config"
	"github.com/okian/departed/internal/scrape"
	"github.com/okian/departed/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

const deadJSON = `{"results": {"bindings": [
  {"person": {"value": "http://www.wikidata.org/entity/Q5383"},
   "personLabel": {"value": "David Bowie"},
   "image": {"value": "http://commons.wikimedia.org/bowie.jpg"},
   "birthYear": {"value": "1947"},
   "deathYear": {"value": "2016"}},
  {"person": {"value": "http://www.wikidata.org/entity/Q937"},
   "personLabel": {"value": "Albert Einstein"},
   "image": {"value": "http://commons.wikimedia.org/einstein.jpg"},
   "birthYear": {"value": "1879"},
   "deathYear": {"value": "1955"}}
]}}`

const aliveJSON = `{"results": {"bindings": [
  {"person": {"value": "http://www.wikidata.org/entity/Q392"},
   "personLabel": {"value": "Bob Dylan"},
   "image": {"value": "http://commons.wikimedia.org/dylan.jpg"},
   "birthYear": {"value": "1941"}},
  {"person": {"value": "http://www.wikidata.org/entity/Q11637"},
   "personLabel": {"value": "Yoko Ono"},
   "image": {"value": "http://commons.wikimedia.org/ono.jpg"},
   "birthYear": {"value": "1933"}}
]}}`

const occJSON = `{"results": {"bindings": [
  {"person": {"value": "http://www.wikidata.org/entity/Q5383"},
   "occupationLabel": {"value": "singer"}},
  {"person": {"value": "http://www.wikidata.org/entity/Q392"},
   "occupationLabel": {"value": "singer-songwriter"}}
]}}`

// fakeEndpoint answers person and occupation queries with canned rows.
func fakeEndpoint() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		switch {
		case strings.Contains(query, "occupationLabel"):
			_, _ = w.Write([]byte(occJSON))
		case strings.Contains(query, "NOT EXISTS"):
			_, _ = w.Write([]byte(aliveJSON))
		default:
			_, _ = w.Write([]byte(deadJSON))
		}
	}))
}

func testConfig(t *testing.T, endpoint string) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.DataDir = t.TempDir()
	cfg.SPARQLEndpoint = endpoint
	cfg.RequestDelayMS = 0
	cfg.TargetPoolSize = 10
	cfg.MinPoolSize = 3
	return cfg
}

func TestRunnerRun(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatal(err)
	}

	Convey("Given a healthy fake endpoint", t, func() {
		ctx := context.Background()
		srv := fakeEndpoint()
		defer srv.Close()

		cfg := testConfig(t, srv.URL)
		runner := scrape.New(cfg)

		Convey("When the batch runs", func() {
			err := runner.Run(ctx)

			Convey("Then a balanced pool is persisted", func() {
				So(err, ShouldBeNil)

				store := repository.NewPoolStore(cfg.PoolPath())
				pool, err := store.Load(ctx)
				So(err, ShouldBeNil)
				So(len(pool), ShouldEqual, 4)

				ids := make(map[string]bool)
				for _, c := range pool {
					ids[c.ID] = true
				}
				So(ids, ShouldContainKey, "Q5383")
				So(ids, ShouldContainKey, "Q392")
			})

			Convey("Then occupations were resolved where available", func() {
				store := repository.NewPoolStore(cfg.PoolPath())
				pool, _ := store.Load(ctx)

				byID := make(map[string]string)
				for _, c := range pool {
					byID[c.ID] = c.Profession
				}
				So(byID["Q5383"], ShouldEqual, "singer")
				So(byID["Q392"], ShouldEqual, "singer-songwriter")
				So(byID["Q937"], ShouldEqual, "notable person") // no enrichment row
			})
		})

		Convey("When the batch runs a second time", func() {
			So(runner.Run(ctx), ShouldBeNil)
			So(runner.Run(ctx), ShouldBeNil)

			Convey("Then the previous pool was backed up before overwrite", func() {
				backup := repository.NewPoolStore(filepath.Join(cfg.DataDir, "celebrities_backup.json"))
				pool, err := backup.Load(ctx)
				So(err, ShouldBeNil)
				So(len(pool), ShouldEqual, 4)
			})
		})
	})

	Convey("Given an endpoint that always fails", t, func() {
		ctx := context.Background()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		cfg := testConfig(t, srv.URL)
		runner := scrape.New(cfg)

		Convey("When the batch runs", func() {
			err := runner.Run(ctx)

			Convey("Then it aborts with no results and writes nothing", func() {
				So(errors.Is(err, scrape.ErrNoResults), ShouldBeTrue)

				store := repository.NewPoolStore(cfg.PoolPath())
				_, loadErr := store.Load(ctx)
				So(errors.Is(loadErr, repository.ErrPoolMissing), ShouldBeTrue)
			})
		})
	})

	Convey("Given an endpoint with too few usable rows", t, func() {
		ctx := context.Background()
		srv := fakeEndpoint()
		defer srv.Close()

		cfg := testConfig(t, srv.URL)
		cfg.MinPoolSize = 50
		runner := scrape.New(cfg)

		Convey("When the batch runs", func() {
			err := runner.Run(ctx)

			Convey("Then it aborts below the minimum threshold", func() {
				So(errors.Is(err, scrape.ErrTooFewResults), ShouldBeTrue)
			})
		})
	})

	Convey("Given a cancelled context", t, func() {
		srv := fakeEndpoint()
		defer srv.Close()

		cfg := testConfig(t, srv.URL)
		cfg.RequestDelayMS = 1000
		runner := scrape.New(cfg)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("When the batch runs", func() {
			err := runner.Run(ctx)

			Convey("Then it stops promptly with the context error", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})

	Convey("Given test doubles injected through options", t, func() {
		srv := fakeEndpoint()
		defer srv.Close()

		cfg := testConfig(t, srv.URL)
		client := wikidata.New(wikidata.WithEndpoint(srv.URL))
		store := repository.NewPoolStore(filepath.Join(cfg.DataDir, "alt.json"))
		runner := scrape.New(cfg, scrape.WithClient(client), scrape.WithStore(store))

		Convey("When the batch runs", func() {
			So(runner.Run(context.Background()), ShouldBeNil)

			Convey("Then the injected store received the pool", func() {
				pool, err := store.Load(context.Background())
				So(err, ShouldBeNil)
				So(len(pool), ShouldEqual, 4)
			})
		})
	})
}
