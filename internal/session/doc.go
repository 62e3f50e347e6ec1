// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

/*
Package session holds the state of swipe sessions.

A Session is the caller-owned state the recommendation scorer works from:
the quiz answers, the current card queue, the index into it, and the liked
and disliked lists. The scorer itself is stateless; the session threads its
lists into every call.

# Swipe Flow

	Swipe(liked)
	  append current card to liked or disliked
	  queue = UpdateRecommendations(queue, card, liked, liked', disliked')
	  index++
	  if index >= len(queue):
	      queue = MoreRecommendations(liked, disliked)  // lists before this swipe
	      index = 0

The re-ranked queue no longer holds the swiped card, so advancing the index
skips one card per swipe. Both quirks match how the swipe screen has always
behaved and are covered by tests.

# Manager

Manager keys sessions by UUID in a TTL + LRU cache (internal/cache). Idle
sessions expire after Config.TTL and the least recently used session is
evicted when Config.MaxSessions is reached. Every start, swipe, reset and
end is published to the event bus; publish failures are logged only.

# Persistence

WithStore attaches a Store. Every start, swipe and reset saves a Snapshot
(movies by id); a session missing from memory, whether evicted for capacity
or lost to a restart, is restored from its snapshot on the next Get.
BadgerStore keeps snapshots in BadgerDB with a TTL that restarts on every
save. Store failures are logged and never fail the request.

	store, err := session.OpenBadgerStore("/var/lib/cinemaswipe/sessions", cfg.TTL)
	mgr := session.NewManager(scorer, cfg, bus, logger, session.WithStore(store, cat))

# Thread Safety

Manager and Session are safe for concurrent use. Each Session serializes its
own actions with a mutex.
*/
package session
