// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package recommend

import (
	"errors"
	"testing"

	"github.com/tomtom215/waypoint/internal/models"
)

func TestNewTable_RejectsUnsortedRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows []models.Review
	}{
		{
			name: "user ids descending",
			rows: []models.Review{
				review(2, 30, 1, "A", models.CategoryCulture, "Jakarta", 4, 0),
				review(1, 30, 2, "B", models.CategoryCulture, "Jakarta", 4, 0),
			},
		},
		{
			name: "ratings ascending within user",
			rows: []models.Review{
				review(1, 30, 1, "A", models.CategoryCulture, "Jakarta", 3, 0),
				review(1, 30, 2, "B", models.CategoryCulture, "Jakarta", 5, 0),
			},
		},
		{
			name: "place scores ascending within equal ratings",
			rows: func() []models.Review {
				a := review(1, 30, 1, "A", models.CategoryCulture, "Jakarta", 4, 0)
				b := review(1, 30, 2, "B", models.CategoryCulture, "Jakarta", 4, 0)
				a.PlaceScore, b.PlaceScore = 4.1, 4.7
				return []models.Review{a, b}
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewTable(tt.rows)
			if !errors.Is(err, ErrUnsortedTable) {
				t.Errorf("NewTable() error = %v, want %v", err, ErrUnsortedTable)
			}
		})
	}
}

func TestSortReviews(t *testing.T) {
	t.Parallel()

	rows := []models.Review{
		review(3, 40, 5, "E", models.CategoryNautical, "Bandung", 2, 0),
		review(1, 30, 1, "A", models.CategoryCulture, "Jakarta", 3, 0),
		review(1, 30, 2, "B", models.CategoryCulture, "Jakarta", 5, 0),
		review(2, 20, 3, "C", models.CategoryAmusementPark, "Jakarta", 4, 0),
	}
	SortReviews(rows)

	want := []int{2, 1, 3, 5}
	for i, r := range rows {
		if r.PlaceID != want[i] {
			t.Errorf("rows[%d].PlaceID = %d, want %d", i, r.PlaceID, want[i])
		}
	}
	if _, err := NewTable(rows); err != nil {
		t.Errorf("NewTable() after SortReviews error = %v", err)
	}
}

func TestTable_Accessors(t *testing.T) {
	t.Parallel()

	table := mustTable(t,
		review(1, 30, 1, "A", models.CategoryCulture, "Jakarta", 5, 0),
		review(1, 30, 2, "B", models.CategoryNautical, "Bandung", 4, 0),
		review(2, 20, 1, "A", models.CategoryCulture, "Jakarta", 3, 0),
	)

	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
	if !table.HasUser(2) || table.HasUser(9) {
		t.Error("HasUser() mismatch")
	}
	if got := table.UserRows(9); got != nil {
		t.Errorf("UserRows(9) = %v, want nil", got)
	}
	if got := len(table.UserRows(1)); got != 2 {
		t.Errorf("len(UserRows(1)) = %d, want 2", got)
	}
	if got := table.UserIDs(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("UserIDs() = %v, want [1 2]", got)
	}
	if got := table.Categories(); len(got) != 2 || got[0] != models.CategoryCulture {
		t.Errorf("Categories() = %v, want [Culture Nautical]", got)
	}
	if !table.HasCategory(models.CategoryNautical) || table.HasCategory("Bahari") {
		t.Error("HasCategory() mismatch")
	}
	if !table.HasCity("Bandung") || table.HasCity("Surabaya") {
		t.Error("HasCity() mismatch")
	}
}

func TestNewTable_CopiesInput(t *testing.T) {
	t.Parallel()

	rows := []models.Review{review(1, 30, 1, "A", models.CategoryCulture, "Jakarta", 5, 0)}
	table, err := NewTable(rows)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	rows[0].PlaceName = "changed"

	if got := table.Rows()[0].PlaceName; got != "A" {
		t.Errorf("PlaceName = %q, want %q", got, "A")
	}
}
