// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

// Package recommend implements the travel destination recommendation core.
//
// # Pipeline
//
// A recommendation has two halves. The category half models a user's
// category choices as a first-order Markov chain:
//
//  1. EstimatePreferences: per-category probability from visit count times
//     average rating (uniform for users without history)
//  2. BuildTransitionMatrix: a weight for every ordered category pair
//  3. SampleNextCategory: one weighted draw from the current category's row
//
// The place half picks a concrete place in the sampled category:
//
//  4. BuildAgeRanking: places of a city ranked per age cohort and category
//  5. ExtractHistory: places the user already rated
//  6. SelectPlace: first ranked place in the user's cohort that is
//     unvisited and within budget (best-rated place for new users)
//
// Engine wires the six steps together for one request.
//
// # Transition Weights
//
// The weight of (A, B) is computed as P(A) * P(B) / P(A), which is just
// P(B). Every row of the matrix is the same distribution and the origin
// category only selects which row is read. The formula is kept as is;
// tests pin the behavior.
//
// # Table Contract
//
// All functions read an immutable Table sorted by user id ascending, then
// review rating descending, then place score descending. NewTable enforces
// the order because history order and cold-start tie-breaking depend on it.
//
// # Determinism
//
// Sampling is the only random step. It reads from an injected RandomSource;
// Engine seeds a math/rand source from Config.Seed and accepts a per-request
// seed for reproducible results.
//
// # Thread Safety
//
// Tables and matrices are never mutated after construction and may be
// shared freely. Engine guards its random source with a mutex and swaps
// tables atomically.
package recommend
