// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package recommend

// ExtractHistory returns the place ids the user rated, in table order.
// Because the table is sorted by rating, this is rating order rather than
// visit order. Unknown users get an empty, non-nil slice.
func ExtractHistory(userID int, table *Table) []int {
	rows := table.UserRows(userID)
	history := make([]int, 0, len(rows))
	for _, r := range rows {
		history = append(history, r.PlaceID)
	}
	return history
}
