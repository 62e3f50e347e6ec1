// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

// Package recommend ranks the movie catalog for swipe sessions.
//
// # Overview
//
// The Scorer exposes three batch operations, each a pure computation over the
// fixed catalog plus the session data passed in:
//
//   - InitialRecommendations: quiz-filtered catalog, sorted by a rating and
//     popularity composite, with the top of the list shuffled
//   - UpdateRecommendations: every unseen movie re-ranked by similarity to
//     liked movies minus similarity to disliked movies, plus small jitter
//   - MoreRecommendations: refill for an exhausted queue; popular movies when
//     nothing is liked yet, otherwise the same ranking as an update
//
// Two read-only helpers sit on the same metric: Similar ("more like this")
// and Explain (why a card is ranked where it is).
//
// # Similarity
//
//	sim(a, b) = 0.4 * genre_overlap + 0.2 * era_closeness +
//	            0.3 * mood_overlap  + 0.1 * rating_closeness
//
// Tag overlap is computed on distinct values. See Similarity for details.
//
// # Filter Relaxation
//
// The initial batch never comes back too small for a usable queue:
//
//	all filters       -> fewer than 10 matches ->
//	genre filter only -> fewer than 5 matches  ->
//	whole catalog
//
// # Randomness
//
// Shuffles and jitter draw from a RandomSource. Production uses a
// mutex-guarded math/rand source seeded from Config.Seed (zero seeds from the
// clock); tests inject a fixed source through WithRandomSource.
//
// # Usage
//
//	cat, _ := catalog.Load("")
//	scorer, err := recommend.NewScorer(cat, recommend.DefaultConfig(), logger)
//
//	queue := scorer.InitialRecommendations(prefs)
//	queue = scorer.UpdateRecommendations(queue, swiped, true, liked, disliked)
//
// # Thread Safety
//
// A Scorer keeps no per-session state and is safe for concurrent use.
package recommend
