// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package recommend

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/waypoint/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func newTestEngine(t *testing.T, table *Table) *Engine {
	t.Helper()
	e, err := NewEngine(table, DefaultConfig(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	table := budgetTable(t, 50)

	tests := []struct {
		name    string
		table   *Table
		cfg     *Config
		wantErr bool
	}{
		{"nil config uses defaults", table, nil, false},
		{"valid default config", table, DefaultConfig(), false},
		{"zero seed uses default", table, &Config{BudgetMultiplier: 2}, false},
		{"invalid config returns error", table, &Config{Seed: 1, BudgetMultiplier: -1}, true},
		{"nil table returns error", nil, DefaultConfig(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, err := NewEngine(tt.table, tt.cfg, testLogger())
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewEngine() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && e == nil {
				t.Error("NewEngine() returned nil engine")
			}
		})
	}
}

func TestEngine_Recommend(t *testing.T) {
	t.Parallel()

	// User 1 only rated Culture, so the next category is always Culture.
	e := newTestEngine(t, budgetTable(t, 50))

	rec, err := e.Recommend(context.Background(), Request{
		UserID:    1,
		Category:  models.CategoryCulture,
		City:      "Jakarta",
		RequestID: "req-1",
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if rec.ColdStart {
		t.Error("ColdStart = true, want false")
	}
	if rec.Category != models.CategoryCulture {
		t.Errorf("Category = %q, want %q", rec.Category, models.CategoryCulture)
	}
	if rec.Place.ID != 3 {
		t.Errorf("Place.ID = %d, want 3", rec.Place.ID)
	}
	if rec.RequestID != "req-1" {
		t.Errorf("RequestID = %q, want %q", rec.RequestID, "req-1")
	}
	if len(rec.Preferences) != 1 || rec.Preferences[0].Probability != 1 {
		t.Errorf("Preferences = %+v, want single Culture row", rec.Preferences)
	}
}

func TestEngine_Recommend_ColdStart(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, budgetTable(t, 50))

	rec, err := e.Recommend(context.Background(), Request{
		UserID:   404,
		Category: models.CategoryCulture,
		City:     "Jakarta",
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !rec.ColdStart {
		t.Error("ColdStart = false, want true")
	}
	if rec.Place.ID != 1 {
		t.Errorf("Place.ID = %d, want 1", rec.Place.ID)
	}
	if got := e.Stats().ColdStartCount; got != 1 {
		t.Errorf("ColdStartCount = %d, want 1", got)
	}
}

func TestEngine_Recommend_Errors(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, budgetTable(t, 250))

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "category outside user history",
			req:     Request{UserID: 1, Category: models.CategoryNautical, City: "Jakarta"},
			wantErr: ErrUnknownCategory,
		},
		{
			name:    "no affordable unvisited place",
			req:     Request{UserID: 1, Category: models.CategoryCulture, City: "Jakarta"},
			wantErr: ErrNoCandidateAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := e.Recommend(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Recommend() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEngine_Recommend_ContextCanceled(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, budgetTable(t, 50))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Recommend(ctx, Request{UserID: 1, Category: models.CategoryCulture, City: "Jakarta"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Recommend() error = %v, want %v", err, context.Canceled)
	}
	if got := e.Stats().ErrorCount; got != 1 {
		t.Errorf("ErrorCount = %d, want 1", got)
	}
}

func TestEngine_Recommend_SeededRequestsRepeat(t *testing.T) {
	t.Parallel()

	const c, n = models.CategoryCulture, models.CategoryNautical
	table := mustTable(t,
		review(1, 30, 1, "Museum Nasional", c, "Jakarta", 5, 0),
		review(1, 30, 2, "Pantai Ancol", n, "Jakarta", 5, 0),
		review(2, 30, 3, "Museum Wayang", c, "Jakarta", 4, 0),
		review(2, 30, 4, "Pulau Seribu", n, "Jakarta", 4, 0),
	)
	e := newTestEngine(t, table)

	req := Request{UserID: 1, Category: c, City: "Jakarta", Seed: 2024}
	first, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := e.Recommend(context.Background(), req)
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if again.Category != first.Category || again.Place != first.Place {
			t.Errorf("run %d = %s/%d, want %s/%d", i, again.Category, again.Place.ID, first.Category, first.Place.ID)
		}
	}
}

func TestEngine_SwapTable(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, budgetTable(t, 50))
	if err := e.SwapTable(nil); err == nil {
		t.Error("SwapTable(nil) error = nil, want error")
	}

	next := mustTable(t, review(7, 20, 11, "Kawah Putih", models.CategoryNaturalReserve, "Bandung", 5, 0))
	if err := e.SwapTable(next); err != nil {
		t.Fatalf("SwapTable() error = %v", err)
	}
	if e.Table() != next {
		t.Error("Table() did not return swapped table")
	}

	stats := e.Stats()
	if stats.TableRows != 1 || stats.TableUsers != 1 {
		t.Errorf("Stats() = %+v, want 1 row and 1 user", stats)
	}
}

// stubSource returns table or err. When release is set, Load blocks until
// it is closed and signals entered first.
type stubSource struct {
	table   *Table
	err     error
	entered chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func (s *stubSource) Load(context.Context) (*Table, error) {
	s.calls.Add(1)
	if s.release != nil {
		close(s.entered)
		<-s.release
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.table, nil
}

func TestEngine_Reload(t *testing.T) {
	t.Parallel()

	t.Run("swaps table", func(t *testing.T) {
		t.Parallel()
		e := newTestEngine(t, budgetTable(t, 50))
		next := mustTable(t, review(7, 20, 11, "Kawah Putih", models.CategoryNaturalReserve, "Bandung", 5, 0))

		got, err := e.Reload(context.Background(), &stubSource{table: next})
		if err != nil {
			t.Fatalf("Reload() error = %v", err)
		}
		want := ReloadResult{PreviousRows: 4, Rows: 1, Users: 1}
		if got != want {
			t.Errorf("Reload() = %+v, want %+v", got, want)
		}
		if e.Table() != next {
			t.Error("Table() did not return reloaded table")
		}
	})

	t.Run("load failure keeps table", func(t *testing.T) {
		t.Parallel()
		original := budgetTable(t, 50)
		e := newTestEngine(t, original)
		boom := errors.New("csv missing")

		if _, err := e.Reload(context.Background(), &stubSource{err: boom}); !errors.Is(err, boom) {
			t.Errorf("Reload() error = %v, want %v", err, boom)
		}
		if e.Table() != original {
			t.Error("Table() changed after failed reload")
		}
	})
}

func TestEngine_Reload_RejectsConcurrentReload(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, budgetTable(t, 50))
	slow := &stubSource{
		table:   budgetTable(t, 60),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}

	done := make(chan error, 1)
	go func() {
		_, err := e.Reload(context.Background(), slow)
		done <- err
	}()
	<-slow.entered

	second := &stubSource{table: budgetTable(t, 70)}
	if _, err := e.Reload(context.Background(), second); !errors.Is(err, ErrReloadInProgress) {
		t.Errorf("second Reload() error = %v, want %v", err, ErrReloadInProgress)
	}
	if n := second.calls.Load(); n != 0 {
		t.Errorf("second source calls = %d, want 0", n)
	}

	close(slow.release)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("first Reload() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("first Reload() did not return")
	}
	if e.Table() != slow.table {
		t.Error("Table() is not the table from the first reload")
	}
}

func TestEngine_Reload_LogsSwapOnce(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	e, err := NewEngine(budgetTable(t, 50), nil, zerolog.New(&buf))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if _, err := e.Reload(context.Background(), &stubSource{table: budgetTable(t, 60)}); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if n := strings.Count(buf.String(), "review table swapped"); n != 1 {
		t.Errorf("swap log lines = %d, want 1:\n%s", n, buf.String())
	}
}

// countingRanking counts lookups and builds rankings directly.
type countingRanking struct {
	calls atomic.Int32
}

func (c *countingRanking) Ranking(city string, table *Table) []RankingEntry {
	c.calls.Add(1)
	return BuildAgeRanking(city, table)
}

func TestEngine_Recommend_UsesRankingProvider(t *testing.T) {
	t.Parallel()

	provider := &countingRanking{}
	e, err := NewEngine(budgetTable(t, 50), nil, testLogger(), WithRankingProvider(provider))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := e.Recommend(context.Background(), Request{UserID: 1, Category: models.CategoryCulture, City: "Jakarta"}); err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
	}
	if n := provider.calls.Load(); n != 3 {
		t.Errorf("provider calls = %d, want 3", n)
	}
}

func TestEngine_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	const c, n = models.CategoryCulture, models.CategoryNautical
	table := mustTable(t,
		review(1, 30, 1, "Museum Nasional", c, "Jakarta", 5, 0),
		review(1, 30, 2, "Pantai Ancol", n, "Jakarta", 3, 0),
		review(2, 30, 3, "Museum Wayang", c, "Jakarta", 4, 0),
		review(2, 30, 4, "Pulau Seribu", n, "Jakarta", 4, 0),
	)
	e := newTestEngine(t, table)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			_, _ = e.Recommend(context.Background(), Request{UserID: userID, Category: c, City: "Jakarta"})
		}(i%3 + 1)
	}
	wg.Wait()

	if got := e.Stats().RequestCount; got != 20 {
		t.Errorf("RequestCount = %d, want 20", got)
	}
}

func TestErrorKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{nil, "none"},
		{ErrUnknownCategory, "unknown_category"},
		{ErrEmptyDistribution, "empty_distribution"},
		{ErrNoCandidateAvailable, "no_candidate"},
		{ErrInvariantViolation, "invariant_violation"},
		{ErrUnsortedTable, "unsorted_table"},
		{ErrReloadInProgress, "reload_in_progress"},
		{context.Canceled, "other"},
	}

	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.want {
			t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
