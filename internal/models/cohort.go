// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package models

// AgeCohort is an age bucket. The zero value is CohortUnknown, so cohorts
// compare by their natural order (youngest first).
type AgeCohort int

const (
	// CohortUnknown marks an age outside every bucket.
	CohortUnknown AgeCohort = iota
	// Cohort0To17 covers ages up to 17.
	Cohort0To17
	// Cohort18To25 covers ages 18 to 25.
	Cohort18To25
	// Cohort26To35 covers ages 26 to 35.
	Cohort26To35
	// Cohort36To50 covers ages 36 to 50.
	Cohort36To50
	// Cohort51To65 covers ages 51 to 65.
	Cohort51To65
	// Cohort65Plus covers ages above 65 (up to 100).
	Cohort65Plus
)

// cohortUpperBounds are the right-closed bin edges, one per cohort.
var cohortUpperBounds = []struct {
	upper  int
	cohort AgeCohort
}{
	{17, Cohort0To17},
	{25, Cohort18To25},
	{35, Cohort26To35},
	{50, Cohort36To50},
	{65, Cohort51To65},
	{100, Cohort65Plus},
}

// CohortForAge bins an age into its cohort. Bins are right-closed and the
// lowest bin excludes zero, so ages <= 0 or > 100 map to CohortUnknown.
func CohortForAge(age int) AgeCohort {
	if age <= 0 {
		return CohortUnknown
	}
	for _, b := range cohortUpperBounds {
		if age <= b.upper {
			return b.cohort
		}
	}
	return CohortUnknown
}

// String returns the cohort label, e.g. "18-25".
func (c AgeCohort) String() string {
	switch c {
	case Cohort0To17:
		return "0-17"
	case Cohort18To25:
		return "18-25"
	case Cohort26To35:
		return "26-35"
	case Cohort36To50:
		return "36-50"
	case Cohort51To65:
		return "51-65"
	case Cohort65Plus:
		return "65+"
	default:
		return "unknown"
	}
}

// Known reports whether c is one of the six defined cohorts.
func (c AgeCohort) Known() bool {
	return c >= Cohort0To17 && c <= Cohort65Plus
}

// MarshalText encodes the cohort as its label.
func (c AgeCohort) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
