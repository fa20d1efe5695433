// Package wikidata is the SPARQL client for the Wikidata query service.
// Queries are plain GET requests returning SPARQL JSON results; the
// caller decides whether a failed query aborts anything (the scraper
// treats every failure as an empty result set).
package wikidata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/okian/departed/pkg/metrics"
)

// Defaults mirror the published scraper configuration.
const (
	defaultEndpoint  = "https://query.wikidata.org/sparql"
	defaultUserAgent = "DeadOrAliveGame/1.0 (educational game project)"
	defaultTimeout   = 60 * time.Second
)

// acceptHeader requests SPARQL JSON results.
const acceptHeader = "application/sparql-results+json"

// Client issues SPARQL queries against a single endpoint.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

// New creates a Client with configuration options.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint:  defaultEndpoint,
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return c
}

// PersonRow is one decoded result row from a person query.
type PersonRow struct {
	ID        string
	Name      string
	ImageURL  string
	BirthYear int
	DeathYear *int
}

// sparqlResponse is the wire shape of SPARQL JSON results.
type sparqlResponse struct {
	Results struct {
		Bindings []map[string]struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		} `json:"bindings"`
	} `json:"results"`
}

// do executes one query and decodes the response envelope.
func (c *Client) do(ctx context.Context, query string) (*sparqlResponse, error) {
	metrics.RecordSPARQLQuery()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?query="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	metrics.RecordSPARQLRequestDuration(time.Since(start).Seconds())
	if err != nil {
		metrics.RecordSPARQLQueryError(classify(err))
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordSPARQLQueryError("status")
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordSPARQLQueryError("transport")
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	var decoded sparqlResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		metrics.RecordSPARQLQueryError("decode")
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	metrics.RecordSPARQLRows(len(decoded.Results.Bindings))
	return &decoded, nil
}

// classify maps a transport error to a metrics label.
func classify(err error) string {
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	return "transport"
}

// FetchPeople runs a person query and decodes rows. Rows without a
// usable ID, label, image, or birth year are skipped, not errors.
func (c *Client) FetchPeople(ctx context.Context, query string) ([]PersonRow, error) {
	decoded, err := c.do(ctx, query)
	if err != nil {
		return nil, err
	}

	rows := make([]PersonRow, 0, len(decoded.Results.Bindings))
	for _, b := range decoded.Results.Bindings {
		row := PersonRow{
			ID:       entityID(b["person"].Value),
			Name:     b["personLabel"].Value,
			ImageURL: b["image"].Value,
		}
		if row.ID == "" || row.Name == "" || row.ImageURL == "" {
			metrics.RecordCandidateDropped("missing_field")
			continue
		}

		birth, ok := parseYear(b["birthYear"].Value)
		if !ok {
			metrics.RecordCandidateDropped("missing_field")
			continue
		}
		row.BirthYear = birth

		if v, present := b["deathYear"]; present && v.Value != "" {
			if death, ok := parseYear(v.Value); ok {
				row.DeathYear = &death
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FetchOccupations runs an occupation query and returns the first
// non-ID occupation label seen per entity.
func (c *Client) FetchOccupations(ctx context.Context, query string) (map[string]string, error) {
	decoded, err := c.do(ctx, query)
	if err != nil {
		return nil, err
	}

	occupations := make(map[string]string)
	for _, b := range decoded.Results.Bindings {
		id := entityID(b["person"].Value)
		label := b["occupationLabel"].Value
		if id == "" || label == "" || (strings.HasPrefix(label, "Q") && allDigits(label[1:])) {
			continue
		}
		if _, seen := occupations[id]; !seen {
			occupations[id] = label
		}
	}
	return occupations, nil
}

// entityID extracts the QID from an entity URI like
// http://www.wikidata.org/entity/Q937.
func entityID(uri string) string {
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}

// parseYear reads a SPARQL year binding; the endpoint may serialize
// years as decimals.
func parseYear(v string) (int, bool) {
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
