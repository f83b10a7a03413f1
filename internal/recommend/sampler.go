// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package recommend

import (
	"errors"
	"fmt"
	"math"
)

// DistributionTolerance is how far a row's weights may stray from 1.
const DistributionTolerance = 1e-8

// RandomSource yields uniform values in [0, 1). *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// SampleNextCategory draws the next category from the transition row of
// current. Unknown categories return ErrUnknownCategory; an empty row or
// weights that are not a distribution return ErrEmptyDistribution.
func SampleNextCategory(current string, matrix *TransitionMatrix, rng RandomSource) (string, error) {
	if matrix == nil {
		return "", fmt.Errorf("%w: nil transition matrix", ErrEmptyDistribution)
	}
	if rng == nil {
		return "", errors.New("random source is required")
	}

	row, ok := matrix.Row(current)
	if !ok {
		return "", fmt.Errorf("%w: %q is not in the transition matrix", ErrUnknownCategory, current)
	}

	return drawWeighted(current, row, rng)
}

// drawWeighted performs one inverse-CDF draw over the row's weights.
func drawWeighted(current string, row []Transition, rng RandomSource) (string, error) {
	if len(row) == 0 {
		return "", fmt.Errorf("%w: no transitions from %q", ErrEmptyDistribution, current)
	}

	var total float64
	for _, t := range row {
		if t.Weight < 0 || math.IsNaN(t.Weight) || math.IsInf(t.Weight, 0) {
			return "", fmt.Errorf("%w: weight %v for %q -> %q",
				ErrEmptyDistribution, t.Weight, t.From, t.To)
		}
		total += t.Weight
	}
	if math.Abs(total-1) > DistributionTolerance {
		return "", fmt.Errorf("%w: weights from %q sum to %v", ErrEmptyDistribution, current, total)
	}

	target := rng.Float64() * total
	var cumulative float64
	last := -1
	for i, t := range row {
		if t.Weight == 0 {
			continue
		}
		cumulative += t.Weight
		last = i
		if target < cumulative {
			return t.To, nil
		}
	}

	// Rounding can leave target just above the final cumulative weight.
	return row[last].To, nil
}
