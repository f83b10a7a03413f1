// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package models

// Display names for place categories.
const (
	CategoryAmusementPark  = "Amusement Park"
	CategoryPlaceOfWorship = "Place of Worship"
	CategoryCulture        = "Culture"
	CategoryNaturalReserve = "Natural Reserve"
	CategoryNautical       = "Nautical"
	CategoryShoppingCenter = "Shopping Center"
)

// rawCategories maps the source dataset's category codes to display names.
var rawCategories = map[string]string{
	"Taman Hiburan":      CategoryAmusementPark,
	"Tempat Ibadah":      CategoryPlaceOfWorship,
	"Budaya":             CategoryCulture,
	"Cagar Alam":         CategoryNaturalReserve,
	"Bahari":             CategoryNautical,
	"Pusat Perbelanjaan": CategoryShoppingCenter,
}

// Categories returns the display vocabulary in a stable order.
func Categories() []string {
	return []string{
		CategoryAmusementPark,
		CategoryPlaceOfWorship,
		CategoryCulture,
		CategoryNaturalReserve,
		CategoryNautical,
		CategoryShoppingCenter,
	}
}

// TranslateCategory converts a raw dataset category code to its display
// name. Values that are already display names, or unknown codes, are
// returned unchanged.
func TranslateCategory(raw string) string {
	if name, ok := rawCategories[raw]; ok {
		return name
	}
	return raw
}

// IsKnownCategory reports whether name belongs to the display vocabulary.
func IsKnownCategory(name string) bool {
	for _, c := range Categories() {
		if c == name {
			return true
		}
	}
	return false
}
