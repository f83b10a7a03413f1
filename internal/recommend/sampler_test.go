// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package recommend

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestSampleNextCategory_InverseCDF(t *testing.T) {
	t.Parallel()

	m, err := BuildTransitionMatrix(testPreferences())
	if err != nil {
		t.Fatalf("BuildTransitionMatrix() error = %v", err)
	}

	// Row A is ordered B (0.3), C (0.2), A (0.5).
	tests := []struct {
		u    float64
		want string
	}{
		{0, "B"},
		{0.29, "B"},
		{0.35, "C"},
		{0.6, "A"},
		{0.9999999, "A"},
	}

	for _, tt := range tests {
		got, err := SampleNextCategory("A", m, fixedSource(tt.u))
		if err != nil {
			t.Fatalf("SampleNextCategory(u=%v) error = %v", tt.u, err)
		}
		if got != tt.want {
			t.Errorf("SampleNextCategory(u=%v) = %q, want %q", tt.u, got, tt.want)
		}
	}
}

func TestSampleNextCategory_Errors(t *testing.T) {
	t.Parallel()

	m, err := BuildTransitionMatrix(testPreferences())
	if err != nil {
		t.Fatalf("BuildTransitionMatrix() error = %v", err)
	}
	unnormalized, err := BuildTransitionMatrix([]Preference{
		{Category: "A", Probability: 0.25},
		{Category: "B", Probability: 0.25},
	})
	if err != nil {
		t.Fatalf("BuildTransitionMatrix() error = %v", err)
	}

	tests := []struct {
		name    string
		current string
		matrix  *TransitionMatrix
		wantErr error
	}{
		{"unknown current category", "Z", m, ErrUnknownCategory},
		{"nil matrix", "A", nil, ErrEmptyDistribution},
		{"empty matrix", "A", &TransitionMatrix{rows: map[string][]Transition{"A": nil}}, ErrEmptyDistribution},
		{"weights do not sum to one", "A", unnormalized, ErrEmptyDistribution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := SampleNextCategory(tt.current, tt.matrix, fixedSource(0.5))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SampleNextCategory() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSampleNextCategory_SkipsZeroWeights(t *testing.T) {
	t.Parallel()

	m, err := BuildTransitionMatrix([]Preference{
		{Category: "A", Probability: 1},
		{Category: "B", Probability: 0},
	})
	if err != nil {
		t.Fatalf("BuildTransitionMatrix() error = %v", err)
	}

	for _, u := range []float64{0, 0.25, 0.5, 0.75, 0.999} {
		got, err := SampleNextCategory("A", m, fixedSource(u))
		if err != nil {
			t.Fatalf("SampleNextCategory(u=%v) error = %v", u, err)
		}
		if got != "A" {
			t.Errorf("SampleNextCategory(u=%v) = %q, want %q", u, got, "A")
		}
	}
}

func TestSampleNextCategory_Frequencies(t *testing.T) {
	t.Parallel()

	m, err := BuildTransitionMatrix([]Preference{
		{Category: "A", Probability: 0.5},
		{Category: "B", Probability: 0.5},
	})
	if err != nil {
		t.Fatalf("BuildTransitionMatrix() error = %v", err)
	}

	rng := rand.New(rand.NewSource(7)) //nolint:gosec // test
	const draws = 10000
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		got, err := SampleNextCategory("A", m, rng)
		if err != nil {
			t.Fatalf("SampleNextCategory() error = %v", err)
		}
		counts[got]++
	}

	if len(counts) != 2 {
		t.Errorf("sampled categories = %v, want A and B", counts)
	}
	share := float64(counts["A"]) / draws
	if math.Abs(share-0.5) > 0.03 {
		t.Errorf("share of A = %v, want 0.5 +/- 0.03", share)
	}
}

func TestSampleNextCategory_Deterministic(t *testing.T) {
	t.Parallel()

	m, err := BuildTransitionMatrix(testPreferences())
	if err != nil {
		t.Fatalf("BuildTransitionMatrix() error = %v", err)
	}

	run := func() []string {
		rng := rand.New(rand.NewSource(99)) //nolint:gosec // test
		out := make([]string, 20)
		for i := range out {
			out[i], _ = SampleNextCategory("B", m, rng)
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d = %q then %q, want identical sequences", i, a[i], b[i])
		}
	}
}
