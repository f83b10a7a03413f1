// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package recommend

import (
	"time"

	"github.com/tomtom215/waypoint/internal/cache"
)

// RankingProvider supplies the age ranking of a city for a table. The engine
// builds rankings directly when no provider is set.
type RankingProvider interface {
	Ranking(city string, table *Table) []RankingEntry
}

// cachedRanking remembers which table a ranking was built from.
type cachedRanking struct {
	table   *Table
	entries []RankingEntry
}

// RankingCache is a RankingProvider backed by a TTL cache keyed by city.
// An entry built from an older table is rebuilt on the next lookup.
type RankingCache struct {
	entries *cache.Cache[cachedRanking]
}

// NewRankingCache creates a ranking cache whose entries live for ttl.
func NewRankingCache(ttl time.Duration) *RankingCache {
	return &RankingCache{entries: cache.New[cachedRanking]("city_ranking", ttl)}
}

// Ranking returns the ranking for city on table, reusing a cached one built
// from the same table.
func (c *RankingCache) Ranking(city string, table *Table) []RankingEntry {
	if cached, ok := c.entries.Get(city); ok && cached.table == table {
		return cached.entries
	}
	entries := BuildAgeRanking(city, table)
	c.entries.Set(city, cachedRanking{table: table, entries: entries})
	return entries
}

// Clear drops every cached ranking.
func (c *RankingCache) Clear() {
	c.entries.Clear()
}

// Close stops the cache's cleanup goroutine.
func (c *RankingCache) Close() {
	c.entries.Close()
}

// buildRanking is the provider used when none is configured.
type buildRanking struct{}

func (buildRanking) Ranking(city string, table *Table) []RankingEntry {
	return BuildAgeRanking(city, table)
}
