// Skyroute - Flight Route Analytics and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyroute

/*
Package cache provides a thread-safe in-memory TTL cache for analytics responses.

Analytics queries over the route table are aggregate scans, and their results
only change when a new dataset is ingested. The API caches each response under
a key derived from the endpoint and its parameters, and the event processor
clears the whole cache when a dataset.cleared or dataset.ingested event arrives.

# Usage Example

	c := cache.New("analytics", cfg.Cache.TTL, 0)
	defer c.Close()

	key := cache.GenerateKey("busiest_airports", map[string]int{"limit": 10})
	if data, ok := c.Get(key); ok {
	    return data.([]models.AirportTraffic), nil
	}
	result, err := db.BusiestAirports(ctx, 10)
	if err == nil {
	    c.Set(key, result)
	}

# Expiration

Entries expire lazily on Get and are swept by a background goroutine until
Close is called. A cache built with a zero TTL is disabled: Set is a no-op
and every Get is a miss.

# Metrics

Hits, misses, evictions and the current size are exported through the
skyroute_cache_* Prometheus series, labeled with the cache name.

# Thread Safety

All methods are safe for concurrent use. Entries are guarded by a
sync.RWMutex and statistics by their own lock.
*/
package cache
