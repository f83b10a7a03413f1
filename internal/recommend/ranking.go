// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package recommend

import (
	"math"
	"sort"

	"github.com/tomtom215/waypoint/internal/models"
)

// RankingEntry is a place's average rating within one age cohort.
type RankingEntry struct {
	Cohort    models.AgeCohort `json:"age_range"`
	Category  string           `json:"category"`
	PlaceID   int              `json:"place_id"`
	PlaceName string           `json:"place_name"`
	AvgRating float64          `json:"avg_rating"`
}

// rankingKey groups rows for BuildAgeRanking.
type rankingKey struct {
	cohort    models.AgeCohort
	category  string
	placeID   int
	placeName string
}

// BuildAgeRanking ranks the places of a city per age cohort and category.
//
// Rows are grouped by (cohort, category, place id, place name) and their
// ratings averaged. Groups without a known cohort or a defined average are
// dropped. The result is sorted by cohort ascending, then average rating
// descending; ties keep group key order. A city without rows yields an
// empty ranking.
func BuildAgeRanking(city string, table *Table) []RankingEntry {
	type accumulator struct {
		sum   float64
		count int
	}

	groups := make(map[rankingKey]*accumulator)
	for _, r := range table.Rows() {
		if r.City != city {
			continue
		}
		k := rankingKey{cohort: r.Cohort, category: r.Category, placeID: r.PlaceID, placeName: r.PlaceName}
		acc, ok := groups[k]
		if !ok {
			acc = &accumulator{}
			groups[k] = acc
		}
		acc.sum += r.Rating
		acc.count++
	}

	ranking := make([]RankingEntry, 0, len(groups))
	for k, acc := range groups {
		if !k.cohort.Known() || acc.count == 0 {
			continue
		}
		avg := acc.sum / float64(acc.count)
		if math.IsNaN(avg) {
			continue
		}
		ranking = append(ranking, RankingEntry{
			Cohort:    k.cohort,
			Category:  k.category,
			PlaceID:   k.placeID,
			PlaceName: k.placeName,
			AvgRating: avg,
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		a, b := &ranking[i], &ranking[j]
		if a.Cohort != b.Cohort {
			return a.Cohort < b.Cohort
		}
		if a.AvgRating != b.AvgRating {
			return a.AvgRating > b.AvgRating
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.PlaceID != b.PlaceID {
			return a.PlaceID < b.PlaceID
		}
		return a.PlaceName < b.PlaceName
	})

	return ranking
}
