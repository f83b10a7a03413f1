// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package recommend

import (
	"fmt"
	"math"
	"sort"
)

// Preference is one row of a user's category preference distribution.
type Preference struct {
	// Category is the place category.
	Category string `json:"category"`

	// Count is the number of places the user rated in the category.
	// Zero for cold-start rows.
	Count int `json:"count"`

	// AvgRating is the user's mean rating in the category.
	// Zero for cold-start rows.
	AvgRating float64 `json:"avg_rating"`

	// Probability is the category's share of the distribution.
	Probability float64 `json:"probability"`
}

// EstimatePreferences builds the user's category preference distribution.
//
// A user without rows gets the cold-start policy: one row per category of
// the whole table, each with probability 1/n. Otherwise each category the
// user rated is weighted by visit count times average rating:
//
//	P(c) = count(c) * avg_rating(c) / sum_k(count(k) * avg_rating(k))
//
// Rows are ordered by count descending, ties by first appearance in the
// user's history. A zero weighted sum returns ErrInvariantViolation.
func EstimatePreferences(userID int, table *Table) ([]Preference, error) {
	if !table.HasUser(userID) {
		return uniformPreferences(table.Categories()), nil
	}

	type accumulator struct {
		order int
		count int
		sum   float64
	}

	byCategory := make(map[string]*accumulator)
	var categories []string
	for _, r := range table.UserRows(userID) {
		acc, ok := byCategory[r.Category]
		if !ok {
			acc = &accumulator{order: len(categories)}
			byCategory[r.Category] = acc
			categories = append(categories, r.Category)
		}
		acc.count++
		acc.sum += r.Rating
	}

	prefs := make([]Preference, 0, len(categories))
	var weightedSum float64
	for _, c := range categories {
		acc := byCategory[c]
		avg := acc.sum / float64(acc.count)
		weightedSum += float64(acc.count) * avg
		prefs = append(prefs, Preference{
			Category:  c,
			Count:     acc.count,
			AvgRating: avg,
		})
	}

	if weightedSum == 0 || math.IsNaN(weightedSum) || math.IsInf(weightedSum, 0) {
		return nil, fmt.Errorf("%w: weighted rating sum for user %d is %v",
			ErrInvariantViolation, userID, weightedSum)
	}

	for i := range prefs {
		prefs[i].Probability = float64(prefs[i].Count) * prefs[i].AvgRating / weightedSum
	}

	sort.SliceStable(prefs, func(i, j int) bool {
		if prefs[i].Count != prefs[j].Count {
			return prefs[i].Count > prefs[j].Count
		}
		return byCategory[prefs[i].Category].order < byCategory[prefs[j].Category].order
	})

	return prefs, nil
}

// uniformPreferences assigns equal probability to every category.
func uniformPreferences(categories []string) []Preference {
	prefs := make([]Preference, len(categories))
	if len(categories) == 0 {
		return prefs
	}
	p := 1 / float64(len(categories))
	for i, c := range categories {
		prefs[i] = Preference{Category: c, Probability: p}
	}
	return prefs
}
