// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/waypoint/internal/config"
	"github.com/tomtom215/waypoint/internal/logging"
	"github.com/tomtom215/waypoint/internal/metrics"
	"github.com/tomtom215/waypoint/internal/recommend"
)

// ErrLoaderClosed is returned by Load after Close.
var ErrLoaderClosed = errors.New("dataset loader is closed")

// Loader reads the CSV inputs through DuckDB and builds review tables.
// It is safe for concurrent use; concurrent loads share the breaker and
// Close waits for loads in flight.
type Loader struct {
	cfg  config.DatasetConfig
	mu   sync.RWMutex // guards db
	db   *sql.DB
	cb   *gobreaker.CircuitBreaker[*recommend.Table]
	log  *logging.DatasetLogger
	name string
}

// New opens the DuckDB instance described by cfg.
func New(cfg *config.DatasetConfig) (*Loader, error) {
	conn, err := sql.Open("duckdb", connString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to duckdb: %w", err)
	}

	l := &Loader{
		cfg:  *cfg,
		db:   conn,
		log:  logging.NewDatasetLogger(),
		name: "dataset-loader",
	}
	l.cb = newBreaker(l.name, cfg.BreakerMaxFailures, cfg.BreakerTimeout)
	return l, nil
}

// connString builds the DuckDB DSN. An empty path opens an in-memory
// database.
func connString(cfg *config.DatasetConfig) string {
	path := cfg.DuckDBPath
	if path == "" {
		path = ":memory:"
	}

	params := []string{
		"autoinstall_known_extensions=false",
		"autoload_known_extensions=false",
	}
	if cfg.Threads > 0 {
		params = append(params, "threads="+strconv.Itoa(cfg.Threads))
	}
	if cfg.MaxMemory != "" {
		params = append(params, "max_memory="+cfg.MaxMemory)
	}
	return path + "?" + strings.Join(params, "&")
}

// Load reads and joins the CSVs and returns a new table. It fails fast with
// gobreaker.ErrOpenState while the breaker is open.
func (l *Loader) Load(ctx context.Context) (*recommend.Table, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.db == nil {
		return nil, ErrLoaderClosed
	}

	ctx, cancel := context.WithTimeout(ctx, l.cfg.LoadTimeout)
	defer cancel()

	start := time.Now()
	l.log.LoadStarted(l.cfg.RatingsPath, l.cfg.PlacesPath, l.cfg.UsersPath)

	table, err := l.execute(func() (*recommend.Table, error) {
		return l.load(ctx)
	})
	elapsed := time.Since(start)

	if err != nil {
		l.log.LoadFailed(err, elapsed)
		metrics.RecordDatasetLoad(elapsed, 0, 0, err)
		return nil, err
	}

	users := len(table.UserIDs())
	l.log.LoadFinished(table.Len(), users, countPlaces(table), elapsed)
	metrics.RecordDatasetLoad(elapsed, table.Len(), users, nil)
	return table, nil
}

// load must be called with l.mu held for reading.
func (l *Loader) load(ctx context.Context) (*recommend.Table, error) {
	queryStart := time.Now()
	rows, err := l.db.QueryContext(ctx, reviewsQuery(l.cfg.RatingsPath, l.cfg.UsersPath, l.cfg.PlacesPath))
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer closeQuietly(rows)

	reviews, skipped, err := scanReviews(rows)
	metrics.RecordDBQuery("load_reviews", time.Since(queryStart))
	if err != nil {
		return nil, err
	}
	l.log.RowsSkipped(skipped, "missing user, place or rating")

	table, err := recommend.NewTable(reviews)
	if err != nil {
		return nil, fmt.Errorf("failed to build review table: %w", err)
	}
	return table, nil
}

// Close releases the DuckDB instance. Later loads return ErrLoaderClosed.
func (l *Loader) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// BreakerState returns the circuit breaker state name.
func (l *Loader) BreakerState() string {
	return stateToString(l.cb.State())
}

func countPlaces(table *recommend.Table) int {
	seen := make(map[int]struct{})
	for _, r := range table.Rows() {
		seen[r.PlaceID] = struct{}{}
	}
	return len(seen)
}

type closer interface {
	Close() error
}

func closeQuietly(c closer) {
	if err := c.Close(); err != nil {
		logging.Debug().Err(err).Msg("close failed")
	}
}
