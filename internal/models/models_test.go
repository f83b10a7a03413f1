// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package models

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestCohortForAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		age  int
		want AgeCohort
	}{
		{age: 0, want: CohortUnknown},
		{age: -3, want: CohortUnknown},
		{age: 1, want: Cohort0To17},
		{age: 17, want: Cohort0To17},
		{age: 18, want: Cohort18To25},
		{age: 25, want: Cohort18To25},
		{age: 26, want: Cohort26To35},
		{age: 35, want: Cohort26To35},
		{age: 36, want: Cohort36To50},
		{age: 50, want: Cohort36To50},
		{age: 51, want: Cohort51To65},
		{age: 65, want: Cohort51To65},
		{age: 66, want: Cohort65Plus},
		{age: 100, want: Cohort65Plus},
		{age: 101, want: CohortUnknown},
	}

	for _, tt := range tests {
		if got := CohortForAge(tt.age); got != tt.want {
			t.Errorf("CohortForAge(%d) = %v, want %v", tt.age, got, tt.want)
		}
	}
}

func TestAgeCohort_Ordering(t *testing.T) {
	t.Parallel()

	ordered := []AgeCohort{Cohort0To17, Cohort18To25, Cohort26To35, Cohort36To50, Cohort51To65, Cohort65Plus}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("cohort %v should sort before %v", ordered[i-1], ordered[i])
		}
		if !ordered[i].Known() {
			t.Errorf("%v.Known() = false, want true", ordered[i])
		}
	}
	if CohortUnknown.Known() {
		t.Error("CohortUnknown.Known() = true, want false")
	}
}

func TestAgeCohort_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Review{UserID: 1, Cohort: Cohort26To35})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"age_range":"26-35"`) {
		t.Errorf("Marshal() = %s, want age_range label", data)
	}
}

func TestTranslateCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{"Taman Hiburan", CategoryAmusementPark},
		{"Tempat Ibadah", CategoryPlaceOfWorship},
		{"Budaya", CategoryCulture},
		{"Cagar Alam", CategoryNaturalReserve},
		{"Bahari", CategoryNautical},
		{"Pusat Perbelanjaan", CategoryShoppingCenter},
		{"Culture", CategoryCulture},
		{"Something Else", "Something Else"},
	}

	for _, tt := range tests {
		if got := TranslateCategory(tt.raw); got != tt.want {
			t.Errorf("TranslateCategory(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestIsKnownCategory(t *testing.T) {
	t.Parallel()

	for _, c := range Categories() {
		if !IsKnownCategory(c) {
			t.Errorf("IsKnownCategory(%q) = false, want true", c)
		}
	}
	if IsKnownCategory("Budaya") {
		t.Error("IsKnownCategory(raw code) = true, want false")
	}
}
