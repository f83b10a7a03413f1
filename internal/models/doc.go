// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

/*
Package models defines data structures shared across Waypoint.

Key Components:

  - Review: one row of the flat review table (rating, user, place joined)
  - AgeCohort: fixed age buckets used to segment place rankings
  - Category vocabulary: display names and raw-code translation
  - APIResponse: standardized HTTP response wrapper

Review values are immutable once loaded; every consumer treats them as
read-only.
*/
package models
