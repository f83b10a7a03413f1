// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package models

// Review is a single row of the flat review table: one user's rating of one
// place, joined with the user's profile and the place's metadata.
type Review struct {
	// UserID identifies the reviewing user.
	UserID int `json:"user_id"`

	// Age is the user's age in years.
	Age int `json:"age"`

	// Cohort is the age bucket derived from Age at load time.
	Cohort AgeCohort `json:"age_range"`

	// PlaceID identifies the reviewed place.
	PlaceID int `json:"place_id"`

	// PlaceName is the display name of the place.
	PlaceName string `json:"place_name"`

	// Category is the place category in the display vocabulary.
	Category string `json:"category"`

	// City is the city the place is located in.
	City string `json:"city"`

	// Rating is the score this user gave the place.
	Rating float64 `json:"place_ratings"`

	// PlaceScore is the place's overall rating, used as secondary sort key.
	PlaceScore float64 `json:"rating"`

	// Price is the entry price of the place.
	Price float64 `json:"price"`
}

// Place identifies a recommended place.
type Place struct {
	ID   int    `json:"place_id"`
	Name string `json:"place_name"`
}
