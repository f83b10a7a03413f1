// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Engine runs the full recommendation pipeline against a shared flat table.
// It is safe for concurrent use.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	selector PlaceSelector

	table    atomic.Pointer[Table]
	rankings RankingProvider

	// Serializes table replacement between reloads and direct swaps.
	swapMu sync.Mutex

	// Random source for category sampling (protected by rngMu)
	rng   *rand.Rand
	rngMu sync.Mutex

	requestCount   atomic.Int64
	coldStartCount atomic.Int64
	errorCount     atomic.Int64
}

// Option configures optional engine collaborators.
type Option func(*Engine)

// WithRankingProvider makes the engine take city rankings from p instead of
// rebuilding them on every request.
func WithRankingProvider(p RankingProvider) Option {
	return func(e *Engine) {
		if p != nil {
			e.rankings = p
		}
	}
}

// TableSource produces a fresh review table. dataset.Loader implements it.
type TableSource interface {
	Load(ctx context.Context) (*Table, error)
}

// ReloadResult describes a completed reload.
type ReloadResult struct {
	PreviousRows int
	Rows         int
	Users        int
}

// NewEngine creates an engine over table.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(table *Table, cfg *Config, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if table == nil {
		return nil, errors.New("review table is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}

	e := &Engine{
		config:   cfg.Clone(),
		logger:   logger.With().Str("component", "recommend").Logger(),
		selector: PlaceSelector{BudgetMultiplier: cfg.BudgetMultiplier},
		rankings: buildRanking{},
		rng:      rand.New(rand.NewSource(seed)), //nolint:gosec // sampling, not security
	}
	for _, opt := range opts {
		opt(e)
	}
	e.table.Store(table)
	return e, nil
}

// Table returns the table currently in use.
func (e *Engine) Table() *Table {
	return e.table.Load()
}

// SwapTable replaces the table. Requests already running keep the table
// they started with. It waits for a reload in progress to finish.
func (e *Engine) SwapTable(table *Table) error {
	if table == nil {
		return errors.New("review table is required")
	}
	e.swapMu.Lock()
	defer e.swapMu.Unlock()
	e.swap(table)
	return nil
}

// Reload loads a table from src and swaps it in. It returns
// ErrReloadInProgress without loading when another reload or swap holds the
// table, and keeps the current table when the load fails.
func (e *Engine) Reload(ctx context.Context, src TableSource) (ReloadResult, error) {
	if !e.swapMu.TryLock() {
		return ReloadResult{}, ErrReloadInProgress
	}
	defer e.swapMu.Unlock()

	table, err := src.Load(ctx)
	if err != nil {
		return ReloadResult{}, fmt.Errorf("load table: %w", err)
	}
	if table == nil {
		return ReloadResult{}, errors.New("load table: source returned no table")
	}
	old := e.swap(table)
	return ReloadResult{
		PreviousRows: old.Len(),
		Rows:         table.Len(),
		Users:        len(table.users),
	}, nil
}

// swap must be called with swapMu held.
func (e *Engine) swap(table *Table) *Table {
	old := e.table.Swap(table)
	if c, ok := e.rankings.(interface{ Clear() }); ok {
		c.Clear()
	}
	e.logger.Info().
		Int("old_rows", old.Len()).
		Int("new_rows", table.Len()).
		Msg("review table swapped")
	return old
}

// Ranking returns the age ranking for city on table through the engine's
// ranking provider.
func (e *Engine) Ranking(city string, table *Table) []RankingEntry {
	return e.rankings.Ranking(city, table)
}

// Recommend samples the next category for the user and selects a place in
// that category and the requested city.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Recommendation, error) {
	start := time.Now()
	e.requestCount.Add(1)

	rec, err := e.recommend(ctx, req, start)
	if err != nil {
		e.errorCount.Add(1)
		e.logger.Warn().
			Err(err).
			Str("request_id", req.RequestID).
			Int("user_id", req.UserID).
			Str("category", req.Category).
			Str("city", req.City).
			Msg("recommendation failed")
		return nil, err
	}

	e.logger.Debug().
		Str("request_id", req.RequestID).
		Int("user_id", rec.UserID).
		Bool("cold_start", rec.ColdStart).
		Str("from_category", rec.FromCategory).
		Str("category", rec.Category).
		Int("place_id", rec.Place.ID).
		Int64("latency_ms", rec.LatencyMS).
		Msg("recommendation served")

	return rec, nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) recommend(ctx context.Context, req Request, start time.Time) (*Recommendation, error) {
	table := e.table.Load()
	coldStart := !table.HasUser(req.UserID)
	if coldStart {
		e.coldStartCount.Add(1)
	}

	prefs, err := EstimatePreferences(req.UserID, table)
	if err != nil {
		return nil, fmt.Errorf("estimate preferences: %w", err)
	}
	matrix, err := BuildTransitionMatrix(prefs)
	if err != nil {
		return nil, fmt.Errorf("build transition matrix: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	category, err := e.sample(req, matrix)
	if err != nil {
		return nil, fmt.Errorf("sample next category: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranking := e.rankings.Ranking(req.City, table)
	history := ExtractHistory(req.UserID, table)
	place, err := e.selector.Select(req.UserID, category, req.City, table, ranking, history)
	if err != nil {
		return nil, fmt.Errorf("select place: %w", err)
	}

	return &Recommendation{
		UserID:       req.UserID,
		ColdStart:    coldStart,
		FromCategory: req.Category,
		Category:     category,
		City:         req.City,
		Place:        place,
		Preferences:  prefs,
		RequestID:    req.RequestID,
		LatencyMS:    time.Since(start).Milliseconds(),
	}, nil
}

// sample draws from a per-request source when the request carries a seed,
// otherwise from the shared engine source.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) sample(req Request, matrix *TransitionMatrix) (string, error) {
	if req.Seed != 0 {
		return SampleNextCategory(req.Category, matrix, rand.New(rand.NewSource(req.Seed))) //nolint:gosec // sampling, not security
	}

	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return SampleNextCategory(req.Category, matrix, e.rng)
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	table := e.table.Load()
	return Stats{
		RequestCount:   e.requestCount.Load(),
		ColdStartCount: e.coldStartCount.Load(),
		ErrorCount:     e.errorCount.Load(),
		TableRows:      table.Len(),
		TableUsers:     len(table.users),
	}
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}
