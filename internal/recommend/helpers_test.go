// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package recommend

import (
	"testing"

	"github.com/tomtom215/waypoint/internal/models"
)

// fixedSource is a RandomSource that always returns the same value.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func review(userID, age, placeID int, name, category, city string, rating, price float64) models.Review {
	return models.Review{
		UserID:     userID,
		Age:        age,
		Cohort:     models.CohortForAge(age),
		PlaceID:    placeID,
		PlaceName:  name,
		Category:   category,
		City:       city,
		Rating:     rating,
		PlaceScore: 4.5,
		Price:      price,
	}
}

// mustTable sorts rows into table order and builds a Table.
func mustTable(t *testing.T, rows ...models.Review) *Table {
	t.Helper()
	SortReviews(rows)
	table, err := NewTable(rows)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	return table
}

// budgetTable has user 1 (age 30) who visited P1 for 100 in Culture, and
// user 2 (age 28) who rated P1 > P2 > P3 in Jakarta.
func budgetTable(t *testing.T, p3Price float64) *Table {
	t.Helper()
	const c = models.CategoryCulture
	return mustTable(t,
		review(1, 30, 1, "Museum Nasional", c, "Jakarta", 5, 100),
		review(2, 28, 1, "Museum Nasional", c, "Jakarta", 5, 100),
		review(2, 28, 2, "Museum Wayang", c, "Jakarta", 4.5, 300),
		review(2, 28, 3, "Museum Bank Indonesia", c, "Jakarta", 4, p3Price),
	)
}
