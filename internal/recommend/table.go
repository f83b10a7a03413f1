// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package recommend

import (
	"fmt"
	"sort"

	"github.com/tomtom215/waypoint/internal/models"
)

// Table is the immutable flat review table every core component reads.
//
// Rows are sorted by user id ascending, then review rating descending, then
// place score descending. History extraction and the cold-start tie-break
// depend on this order, so NewTable rejects input that breaks it.
type Table struct {
	rows []models.Review

	// userSpan maps a user id to its contiguous [start, end) row range.
	userSpan map[int][2]int

	// placeFirst maps a place id to the index of its first row.
	placeFirst map[int]int

	users      []int
	categories []string
	cities     []string
}

// NewTable validates the ordering contract and indexes rows. The slice is
// copied, so later changes by the caller do not affect the table.
func NewTable(rows []models.Review) (*Table, error) {
	t := &Table{
		rows:       make([]models.Review, len(rows)),
		userSpan:   make(map[int][2]int),
		placeFirst: make(map[int]int),
	}
	copy(t.rows, rows)

	seenCategory := make(map[string]struct{})
	seenCity := make(map[string]struct{})

	for i := range t.rows {
		r := &t.rows[i]
		if i > 0 && !reviewLess(&t.rows[i-1], r) {
			return nil, fmt.Errorf("%w: row %d (user %d, rating %.2f) is out of order",
				ErrUnsortedTable, i, r.UserID, r.Rating)
		}

		span, ok := t.userSpan[r.UserID]
		if !ok {
			t.users = append(t.users, r.UserID)
			span[0] = i
		}
		span[1] = i + 1
		t.userSpan[r.UserID] = span

		if _, ok := t.placeFirst[r.PlaceID]; !ok {
			t.placeFirst[r.PlaceID] = i
		}
		if _, ok := seenCategory[r.Category]; !ok {
			seenCategory[r.Category] = struct{}{}
			t.categories = append(t.categories, r.Category)
		}
		if _, ok := seenCity[r.City]; !ok {
			seenCity[r.City] = struct{}{}
			t.cities = append(t.cities, r.City)
		}
	}

	return t, nil
}

// reviewLess reports whether a may precede b under the table order.
// Equal keys are allowed.
func reviewLess(a, b *models.Review) bool {
	if a.UserID != b.UserID {
		return a.UserID < b.UserID
	}
	if a.Rating != b.Rating {
		return a.Rating > b.Rating
	}
	return a.PlaceScore >= b.PlaceScore
}

// SortReviews sorts rows in place into table order. The sort is stable so
// rows with equal keys keep their relative order.
func SortReviews(rows []models.Review) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := &rows[i], &rows[j]
		if a.UserID != b.UserID {
			return a.UserID < b.UserID
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.PlaceScore > b.PlaceScore
	})
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns all rows in table order. The slice must not be modified.
func (t *Table) Rows() []models.Review {
	return t.rows[:len(t.rows):len(t.rows)]
}

// HasUser reports whether the user has at least one row.
func (t *Table) HasUser(userID int) bool {
	_, ok := t.userSpan[userID]
	return ok
}

// UserRows returns the user's rows in table order, or nil for unknown
// users. The slice must not be modified.
func (t *Table) UserRows(userID int) []models.Review {
	span, ok := t.userSpan[userID]
	if !ok {
		return nil
	}
	return t.rows[span[0]:span[1]:span[1]]
}

// UserIDs returns the distinct user ids in ascending order.
func (t *Table) UserIDs() []int {
	return append([]int(nil), t.users...)
}

// Categories returns the distinct categories in order of first appearance.
func (t *Table) Categories() []string {
	return append([]string(nil), t.categories...)
}

// HasCategory reports whether any row carries the category.
func (t *Table) HasCategory(category string) bool {
	for _, c := range t.categories {
		if c == category {
			return true
		}
	}
	return false
}

// Cities returns the distinct cities in order of first appearance.
func (t *Table) Cities() []string {
	return append([]string(nil), t.cities...)
}

// HasCity reports whether any row is located in the city.
func (t *Table) HasCity(city string) bool {
	for _, c := range t.cities {
		if c == city {
			return true
		}
	}
	return false
}

// firstPlaceRow returns the first row describing the place.
func (t *Table) firstPlaceRow(placeID int) (models.Review, bool) {
	i, ok := t.placeFirst[placeID]
	if !ok {
		return models.Review{}, false
	}
	return t.rows[i], true
}
