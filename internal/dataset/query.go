// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package dataset

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/tomtom215/waypoint/internal/models"
)

// reviewsQuery joins ratings with users on User_Id and with places on
// Place_Id, drops duplicate rows and orders the result the way the review
// table requires. Place_Id breaks remaining ties so loads are repeatable.
func reviewsQuery(ratingsPath, usersPath, placesPath string) string {
	return fmt.Sprintf(`
SELECT DISTINCT
    CAST(r.User_Id AS BIGINT)       AS user_id,
    CAST(u.Age AS BIGINT)           AS age,
    CAST(r.Place_Id AS BIGINT)      AS place_id,
    CAST(p.Place_Name AS VARCHAR)   AS place_name,
    CAST(p.Category AS VARCHAR)     AS category,
    CAST(p.City AS VARCHAR)         AS city,
    CAST(r.Place_Ratings AS DOUBLE) AS place_ratings,
    CAST(p.Rating AS DOUBLE)        AS rating,
    CAST(p.Price AS DOUBLE)         AS price
FROM read_csv_auto(%s, header = true) AS r
INNER JOIN read_csv_auto(%s, header = true) AS u ON r.User_Id = u.User_Id
INNER JOIN read_csv_auto(%s, header = true) AS p ON r.Place_Id = p.Place_Id
ORDER BY user_id ASC, place_ratings DESC, rating DESC, place_id ASC`,
		quoteLiteral(ratingsPath), quoteLiteral(usersPath), quoteLiteral(placesPath))
}

// quoteLiteral renders s as a single-quoted SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// scanReviews converts query rows into normalized reviews. Rows without a
// rating, place name, category or city are skipped and counted. A missing
// age yields CohortUnknown; a missing price or score reads as zero.
func scanReviews(rows *sql.Rows) ([]models.Review, int, error) {
	var (
		reviews []models.Review
		skipped int
	)

	for rows.Next() {
		var (
			userID, placeID      int64
			age                  sql.NullInt64
			name, category, city sql.NullString
			rating, score, price sql.NullFloat64
		)
		if err := rows.Scan(&userID, &age, &placeID, &name, &category, &city, &rating, &score, &price); err != nil {
			return nil, 0, fmt.Errorf("failed to scan review row: %w", err)
		}
		if !rating.Valid || !name.Valid || !category.Valid || !city.Valid {
			skipped++
			continue
		}

		r := models.Review{
			UserID:     int(userID),
			PlaceID:    int(placeID),
			PlaceName:  name.String,
			Category:   models.TranslateCategory(category.String),
			City:       city.String,
			Rating:     rating.Float64,
			PlaceScore: score.Float64,
			Price:      price.Float64,
		}
		if age.Valid {
			r.Age = int(age.Int64)
		}
		r.Cohort = models.CohortForAge(r.Age)
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read review rows: %w", err)
	}

	return reviews, skipped, nil
}
