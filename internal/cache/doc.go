// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

/*
Package cache provides a thread-safe generic LRU cache with TTL support.

The session manager keeps every active swipe session in an LRUCache: the
capacity bounds memory, the TTL drops abandoned sessions, and the eviction
callback keeps the session gauges honest.

# Usage Example

	sessions := cache.NewLRUCache[*session.Session](1000, 30*time.Minute)
	sessions.OnEvict(func(id string, s *session.Session, reason cache.EvictReason) {
	    metrics.RecordSessionEviction(string(reason))
	})

	sessions.Add(id, s)
	if s, ok := sessions.Get(id); ok {
	    sessions.Touch(id) // restart the idle timer
	}

	removed := sessions.CleanupExpired() // periodic sweep

# Expiration

Expiration is lazy: Get and Contains ignore expired entries and Get removes
them. CleanupExpired sweeps the whole list and should be called
periodically. Touch restarts the TTL of a live entry, which turns the TTL
into an idle timeout.

# Thread Safety

All methods are safe for concurrent use. Eviction callbacks run after the
lock is released.
*/
package cache
