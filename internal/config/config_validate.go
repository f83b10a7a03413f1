// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/tomtom215/waypoint/internal/logging"
)

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDataset() error {
	d := &c.Dataset
	if d.RatingsPath == "" {
		return fmt.Errorf("RATINGS_CSV is required")
	}
	if d.UsersPath == "" {
		return fmt.Errorf("USERS_CSV is required")
	}
	if d.PlacesPath == "" {
		return fmt.Errorf("PLACES_CSV is required")
	}
	if d.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be >= 0, got %d", d.Threads)
	}
	if strings.ContainsAny(d.MaxMemory, "';") {
		return fmt.Errorf("DUCKDB_MAX_MEMORY contains invalid characters: %q", d.MaxMemory)
	}
	if d.LoadTimeout <= 0 {
		return fmt.Errorf("DATASET_LOAD_TIMEOUT must be positive, got %v", d.LoadTimeout)
	}
	if d.BreakerMaxFailures == 0 {
		return fmt.Errorf("DATASET_BREAKER_FAILURES must be at least 1")
	}
	if d.BreakerTimeout <= 0 {
		return fmt.Errorf("DATASET_BREAKER_TIMEOUT must be positive, got %v", d.BreakerTimeout)
	}
	if d.RefreshInterval < 0 {
		return fmt.Errorf("DATASET_REFRESH_INTERVAL must be >= 0, got %v", d.RefreshInterval)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	m := c.Recommend.BudgetMultiplier
	if m <= 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return fmt.Errorf("RECOMMEND_BUDGET_MULTIPLIER must be positive and finite, got %v", m)
	}
	if c.Recommend.RankingCacheTTL < 0 {
		return fmt.Errorf("RECOMMEND_RANKING_CACHE_TTL must be >= 0, got %v", c.Recommend.RankingCacheTTL)
	}
	return nil
}

func (c *Config) validateServer() error {
	s := &c.Server
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", s.Port)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", s.Timeout)
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %v", s.ShutdownTimeout)
	}
	switch s.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development or production, got %q", s.Environment)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	s := &c.Security
	if !s.RateLimitDisabled {
		if s.RateLimitReqs <= 0 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", s.RateLimitReqs)
		}
		if s.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", s.RateLimitWindow)
		}
	}
	if c.Server.IsProduction() {
		for _, origin := range s.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain * in production")
			}
		}
		if s.AdminToken != "" && len(s.AdminToken) < 32 {
			return fmt.Errorf("ADMIN_TOKEN must be at least 32 characters in production")
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
