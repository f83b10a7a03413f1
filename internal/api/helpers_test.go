// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/waypoint/internal/config"
	"github.com/tomtom215/waypoint/internal/models"
	"github.com/tomtom215/waypoint/internal/recommend"
)

const testAdminToken = "test-admin-token-0123456789abcdef"

func review(userID, age, placeID int, name, category string, rating, price float64) models.Review {
	return models.Review{
		UserID:     userID,
		Age:        age,
		Cohort:     models.CohortForAge(age),
		PlaceID:    placeID,
		PlaceName:  name,
		Category:   category,
		City:       "Jakarta",
		Rating:     rating,
		PlaceScore: 4.5,
		Price:      price,
	}
}

// testTable: user 1 visited P1 (Culture, 100) and P4 (Nautical, 50). User 2
// is in the same cohort and rated every place.
func testTable(t *testing.T) *recommend.Table {
	t.Helper()
	const (
		culture  = models.CategoryCulture
		nautical = models.CategoryNautical
	)
	rows := []models.Review{
		review(1, 30, 1, "Museum Nasional", culture, 5, 100),
		review(1, 30, 4, "Pantai Ancol", nautical, 4, 50),
		review(2, 28, 1, "Museum Nasional", culture, 5, 100),
		review(2, 28, 2, "Museum Wayang", culture, 4.5, 300),
		review(2, 28, 3, "Museum Bank Indonesia", culture, 4, 150),
		review(2, 28, 5, "Pantai Indah Kapuk", nautical, 4, 60),
		review(2, 28, 4, "Pantai Ancol", nautical, 3, 50),
	}
	recommend.SortReviews(rows)
	table, err := recommend.NewTable(rows)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return table
}

// stubLoader returns table or err and counts calls. When release is set,
// Load closes entered and blocks until release is closed.
type stubLoader struct {
	table   *recommend.Table
	err     error
	entered chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func (s *stubLoader) Load(context.Context) (*recommend.Table, error) {
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

type testServer struct {
	handler http.Handler
	engine  *recommend.Engine
	loader  *stubLoader
}

func newTestServer(t *testing.T, mwCfg *ChiMiddlewareConfig) *testServer {
	t.Helper()

	rankings := recommend.NewRankingCache(time.Minute)
	t.Cleanup(rankings.Close)
	engine, err := recommend.NewEngine(testTable(t), nil, zerolog.Nop(), recommend.WithRankingProvider(rankings))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	if mwCfg == nil {
		mwCfg = DefaultChiMiddlewareConfig()
		mwCfg.RateLimitDisabled = true
		mwCfg.AdminToken = testAdminToken
	}

	cfg := &config.Config{}
	cfg.Recommend.DefaultCity = "Jakarta"
	cfg.Recommend.RankingCacheTTL = time.Minute

	loader := &stubLoader{table: testTable(t)}
	h := NewHandler(engine, loader, cfg)
	return &testServer{
		handler: NewRouter(h, NewChiMiddleware(mwCfg)).SetupChi(),
		engine:  engine,
		loader:  loader,
	}
}

func (s *testServer) do(t *testing.T, method, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, http.NoBody)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the envelope and re-decodes its data into out.
func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) models.APIResponse {
	t.Helper()

	var raw struct {
		Status string           `json:"status"`
		Data   json.RawMessage  `json:"data"`
		Error  *models.APIError `json:"error"`
	}
	if err := json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&raw); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	if out != nil && len(raw.Data) > 0 && string(raw.Data) != "null" {
		if err := json.Unmarshal(raw.Data, out); err != nil {
			t.Fatalf("decode data %s: %v", raw.Data, err)
		}
	}
	return models.APIResponse{Status: raw.Status, Error: raw.Error}
}

var errBoom = errors.New("boom")
