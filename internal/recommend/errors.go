// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package recommend

import "errors"

// Sentinel errors returned by the recommendation core. Callers match them
// with errors.Is; returned errors wrap them with request context.
var (
	// ErrUnknownCategory is returned when a category is absent from the
	// table or matrix it is looked up in.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrEmptyDistribution is returned when a weighted draw has no
	// candidates or its weights are not a probability distribution.
	ErrEmptyDistribution = errors.New("empty or non-normalized distribution")

	// ErrNoCandidateAvailable is returned when place selection exhausts
	// every ranked candidate without one passing the visited and budget
	// constraints.
	ErrNoCandidateAvailable = errors.New("no candidate place available")

	// ErrInvariantViolation is returned when preference estimation finds a
	// zero or non-finite weighted sum.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrUnsortedTable is returned by NewTable when rows break the
	// user/rating/score ordering contract.
	ErrUnsortedTable = errors.New("review table is not sorted")

	// ErrReloadInProgress is returned by Engine.Reload when another reload
	// holds the table.
	ErrReloadInProgress = errors.New("dataset reload already in progress")
)

// ErrorKind returns a stable label for err, suitable for metrics and API
// error codes.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrUnknownCategory):
		return "unknown_category"
	case errors.Is(err, ErrEmptyDistribution):
		return "empty_distribution"
	case errors.Is(err, ErrNoCandidateAvailable):
		return "no_candidate"
	case errors.Is(err, ErrInvariantViolation):
		return "invariant_violation"
	case errors.Is(err, ErrUnsortedTable):
		return "unsorted_table"
	case errors.Is(err, ErrReloadInProgress):
		return "reload_in_progress"
	default:
		return "other"
	}
}
