// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package recommend

import "fmt"

// Transition is one weighted edge of the category transition matrix.
type Transition struct {
	From   string  `json:"category_from"`
	To     string  `json:"category_to"`
	Weight float64 `json:"weight"`
}

// TransitionMatrix holds a weight for every ordered pair of categories in a
// preference distribution, self pairs included.
type TransitionMatrix struct {
	entries    []Transition
	rows       map[string][]Transition
	categories []string
}

// BuildTransitionMatrix derives the transition matrix from a preference
// distribution.
//
// Pairs are every permutation of two distinct categories followed by every
// self pair. The weight of (A, B) is
//
//	P(A) * P(B) / P(A)
//
// evaluated as written. It reduces to P(B): the destination's marginal
// probability, independent of the origin. Each row therefore sums to 1 and
// every row is the same distribution.
func BuildTransitionMatrix(prefs []Preference) (*TransitionMatrix, error) {
	prob := make(map[string]float64, len(prefs))
	var categories []string
	for _, p := range prefs {
		if _, ok := prob[p.Category]; ok {
			continue
		}
		prob[p.Category] = p.Probability
		categories = append(categories, p.Category)
	}

	n := len(categories)
	pairs := make([][2]string, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				pairs = append(pairs, [2]string{categories[i], categories[j]})
			}
		}
	}
	for i := 0; i < n; i++ {
		pairs = append(pairs, [2]string{categories[i], categories[i]})
	}

	m := &TransitionMatrix{
		entries:    make([]Transition, 0, len(pairs)),
		rows:       make(map[string][]Transition, n),
		categories: categories,
	}

	for _, pair := range pairs {
		from, okFrom := prob[pair[0]]
		to, okTo := prob[pair[1]]
		if !okFrom || !okTo {
			return nil, fmt.Errorf("%w: transition %q -> %q has no preference row",
				ErrUnknownCategory, pair[0], pair[1])
		}

		t := Transition{From: pair[0], To: pair[1], Weight: from * to / from}
		m.entries = append(m.entries, t)
		m.rows[t.From] = append(m.rows[t.From], t)
	}

	return m, nil
}

// Entries returns every transition in construction order.
func (m *TransitionMatrix) Entries() []Transition {
	return append([]Transition(nil), m.entries...)
}

// Row returns the transitions leaving from, and whether from is part of
// the matrix.
func (m *TransitionMatrix) Row(from string) ([]Transition, bool) {
	row, ok := m.rows[from]
	return append([]Transition(nil), row...), ok
}

// Categories returns the matrix categories in preference order.
func (m *TransitionMatrix) Categories() []string {
	return append([]string(nil), m.categories...)
}

// Len returns the number of transitions.
func (m *TransitionMatrix) Len() int {
	return len(m.entries)
}
