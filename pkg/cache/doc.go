// Package cache provides a generic, thread-safe LRU cache with an optional
// time-to-live.
//
// The parameter accessor uses it to memoize decoded query strings:
//
//	c := cache.NewLRUCache[string, value.Value](1000, cache.WithTTL(time.Minute))
//	c.Put("a=1&b=2", decoded)
//	v, ok := c.Get("a=1&b=2")
//
// Capacity must be positive. When it is exceeded the least recently used
// entry is evicted. Entries older than the TTL are dropped lazily on Get.
// SetEvictCallback observes evictions, expiries, removals and Clear.
//
// All methods are safe for concurrent use.
package cache
