// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatasetConfig configures the CSV inputs and the DuckDB instance that
// joins them.
type DatasetConfig struct {
	// RatingsPath is the ratings CSV (User_Id, Place_Id, Place_Ratings).
	RatingsPath string `koanf:"ratings_path"`

	// UsersPath is the users CSV (User_Id, Location, Age).
	UsersPath string `koanf:"users_path"`

	// PlacesPath is the places CSV (Place_Id, Place_Name, Category, City,
	// Price, Rating, ...).
	PlacesPath string `koanf:"places_path"`

	// DuckDBPath is the DuckDB database file. Empty means in-memory.
	DuckDBPath string `koanf:"duckdb_path"`

	// Threads limits DuckDB worker threads. 0 uses DuckDB's default.
	Threads int `koanf:"threads"`

	// MaxMemory limits DuckDB memory, e.g. "1GB". Empty uses DuckDB's default.
	MaxMemory string `koanf:"max_memory"`

	// LoadTimeout bounds a single dataset load.
	LoadTimeout time.Duration `koanf:"load_timeout"`

	// BreakerMaxFailures is the number of consecutive load failures that
	// opens the circuit breaker.
	BreakerMaxFailures uint32 `koanf:"breaker_max_failures"`

	// BreakerTimeout is how long the breaker stays open before a trial load.
	BreakerTimeout time.Duration `koanf:"breaker_timeout"`

	// RefreshInterval reloads the dataset periodically. Zero disables it.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

// RecommendConfig configures the recommendation engine.
type RecommendConfig struct {
	Seed             int64   `koanf:"seed"`
	BudgetMultiplier float64 `koanf:"budget_multiplier"`

	// DefaultCity is used when a request does not name a city.
	DefaultCity string `koanf:"default_city"`

	// RankingCacheTTL bounds how long a city ranking is reused. Zero disables caching.
	RankingCacheTTL time.Duration `koanf:"ranking_cache_ttl"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// SecurityConfig configures request limits and admin access.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`

	// AdminToken protects POST /api/v1/admin/reload. Empty disables the
	// endpoint.
	AdminToken string `koanf:"admin_token"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the host:port listen address.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the server runs in production mode.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}
