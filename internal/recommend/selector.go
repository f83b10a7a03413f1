// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package recommend

import (
	"fmt"

	"github.com/tomtom215/waypoint/internal/models"
)

// DefaultBudgetMultiplier caps a candidate's price at this multiple of the
// user's average spend in the category.
const DefaultBudgetMultiplier = 2.0

// PlaceSelector picks a concrete place for a recommended category.
type PlaceSelector struct {
	// BudgetMultiplier bounds price relative to average spend.
	// Zero means DefaultBudgetMultiplier.
	BudgetMultiplier float64
}

// SelectPlace picks a place with the default budget multiplier.
// See PlaceSelector.Select.
func SelectPlace(userID int, category, city string, table *Table, ranking []RankingEntry, history []int) (models.Place, error) {
	return PlaceSelector{}.Select(userID, category, city, table, ranking, history)
}

// Select picks the place to recommend.
//
// Users without rows get the highest average-rated place in (category,
// city); ties resolve to the smallest place id. Other users walk the
// ranking for their cohort and the category and get the first place they
// have not visited whose price is within budget. When the user never rated
// the category the average spend is undefined and no price is excluded.
//
// Exhausting the candidates returns ErrNoCandidateAvailable.
func (s PlaceSelector) Select(userID int, category, city string, table *Table, ranking []RankingEntry, history []int) (models.Place, error) {
	if !table.HasUser(userID) {
		return selectColdStart(category, city, table)
	}

	multiplier := s.BudgetMultiplier
	if multiplier <= 0 {
		multiplier = DefaultBudgetMultiplier
	}

	userRows := table.UserRows(userID)
	cohort := userRows[0].Cohort

	var spent float64
	var visitsInCategory int
	for _, r := range userRows {
		if r.Category == category {
			spent += r.Price
			visitsInCategory++
		}
	}
	hasBudget := visitsInCategory > 0
	budget := 0.0
	if hasBudget {
		budget = multiplier * spent / float64(visitsInCategory)
	}

	visited := make(map[int]struct{}, len(history))
	for _, id := range history {
		visited[id] = struct{}{}
	}

	var considered int
	for _, entry := range ranking {
		if entry.Cohort != cohort || entry.Category != category {
			continue
		}
		considered++

		if _, ok := visited[entry.PlaceID]; ok {
			continue
		}
		row, ok := table.firstPlaceRow(entry.PlaceID)
		if !ok {
			continue
		}
		if hasBudget && row.Price > budget {
			continue
		}
		return models.Place{ID: row.PlaceID, Name: row.PlaceName}, nil
	}

	return models.Place{}, fmt.Errorf("%w: user %d, cohort %s, category %q, city %q: %d candidates excluded",
		ErrNoCandidateAvailable, userID, cohort, category, city, considered)
}

// selectColdStart returns the best average-rated place in (category, city).
func selectColdStart(category, city string, table *Table) (models.Place, error) {
	type accumulator struct {
		sum   float64
		count int
	}

	groups := make(map[models.Place]*accumulator)
	for _, r := range table.Rows() {
		if r.Category != category || r.City != city {
			continue
		}
		k := models.Place{ID: r.PlaceID, Name: r.PlaceName}
		acc, ok := groups[k]
		if !ok {
			acc = &accumulator{}
			groups[k] = acc
		}
		acc.sum += r.Rating
		acc.count++
	}

	var best models.Place
	bestAvg := 0.0
	found := false
	for place, acc := range groups {
		avg := acc.sum / float64(acc.count)
		switch {
		case !found, avg > bestAvg:
		case avg == bestAvg && placeBefore(place, best):
		default:
			continue
		}
		best, bestAvg, found = place, avg, true
	}

	if !found {
		return models.Place{}, fmt.Errorf("%w: no rated places for category %q in %q",
			ErrNoCandidateAvailable, category, city)
	}
	return best, nil
}

// placeBefore orders places by id, then name.
func placeBefore(a, b models.Place) bool {
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	return a.Name < b.Name
}
