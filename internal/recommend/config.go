// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package recommend

import (
	"fmt"
	"math"
)

// defaultSeed is used when Config.Seed is zero.
const defaultSeed = 42

// Config contains configuration for the recommendation engine.
type Config struct {
	// Seed seeds the engine's random source for category sampling.
	// If zero, a fixed default seed is used.
	Seed int64 `json:"seed"`

	// BudgetMultiplier caps a candidate's price at this multiple of the
	// user's average spend in the category.
	// Default: 2.0.
	BudgetMultiplier float64 `json:"budget_multiplier"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Seed:             defaultSeed,
		BudgetMultiplier: DefaultBudgetMultiplier,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.BudgetMultiplier <= 0 || math.IsNaN(c.BudgetMultiplier) || math.IsInf(c.BudgetMultiplier, 0) {
		return fmt.Errorf("budget_multiplier must be positive and finite, got %v", c.BudgetMultiplier)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
