// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package config

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"missing ratings", func(c *Config) { c.Dataset.RatingsPath = "" }, "RATINGS_CSV"},
		{"missing users", func(c *Config) { c.Dataset.UsersPath = "" }, "USERS_CSV"},
		{"missing places", func(c *Config) { c.Dataset.PlacesPath = "" }, "PLACES_CSV"},
		{"negative threads", func(c *Config) { c.Dataset.Threads = -1 }, "DUCKDB_THREADS"},
		{"quoted memory", func(c *Config) { c.Dataset.MaxMemory = "1GB'; DROP" }, "DUCKDB_MAX_MEMORY"},
		{"zero load timeout", func(c *Config) { c.Dataset.LoadTimeout = 0 }, "DATASET_LOAD_TIMEOUT"},
		{"zero breaker failures", func(c *Config) { c.Dataset.BreakerMaxFailures = 0 }, "DATASET_BREAKER_FAILURES"},
		{"negative refresh interval", func(c *Config) { c.Dataset.RefreshInterval = -time.Second }, "DATASET_REFRESH_INTERVAL"},
		{"zero multiplier", func(c *Config) { c.Recommend.BudgetMultiplier = 0 }, "RECOMMEND_BUDGET_MULTIPLIER"},
		{"NaN multiplier", func(c *Config) { c.Recommend.BudgetMultiplier = math.NaN() }, "RECOMMEND_BUDGET_MULTIPLIER"},
		{"negative ranking cache ttl", func(c *Config) { c.Recommend.RankingCacheTTL = -time.Minute }, "RECOMMEND_RANKING_CACHE_TTL"},
		{"port out of range", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"unknown environment", func(c *Config) { c.Server.Environment = "staging" }, "ENVIRONMENT"},
		{"zero rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"zero rate limit when disabled", func(c *Config) {
			c.Security.RateLimitReqs = 0
			c.Security.RateLimitDisabled = true
		}, ""},
		{"wildcard CORS in production", func(c *Config) { c.Server.Environment = "production" }, "CORS_ORIGINS"},
		{"short admin token in production", func(c *Config) {
			c.Server.Environment = "production"
			c.Security.CORSOrigins = []string{"https://waypoint.example"}
			c.Security.AdminToken = "short"
		}, "ADMIN_TOKEN"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want error mentioning %s", err, tt.wantErr)
			}
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := s.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:8080")
	}
}
