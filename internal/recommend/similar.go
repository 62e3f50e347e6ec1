// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/tomtom215/cinemaswipe/internal/metrics"
	"github.com/tomtom215/cinemaswipe/internal/models"
)

// Similar returns the k catalog movies most similar to the movie with the
// given id, excluding the movie itself. Ties keep catalog order. k <= 0 uses
// Limits.DefaultK and k is capped at Limits.MaxK.
func (s *Scorer) Similar(id, k int) ([]ScoredMovie, error) {
	start := time.Now()

	target, ok := s.catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrMovieNotFound, id)
	}

	k = s.clampK(k)

	movies := s.catalog.Movies()
	scored := make([]ScoredMovie, 0, len(movies))
	for _, m := range movies {
		if m.ID == id {
			continue
		}
		scored = append(scored, ScoredMovie{Movie: m, Score: s.Similarity(target, m)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > k {
		scored = scored[:k]
	}

	metrics.RecordRecommendBatch(metrics.BatchSimilar, len(scored), time.Since(start))
	return scored, nil
}

func (s *Scorer) clampK(k int) int {
	if k <= 0 {
		return s.config.Limits.DefaultK
	}
	return min(k, s.config.Limits.MaxK)
}

// Explain breaks down the jitter-free feedback score of candidate, naming the
// liked movie it most resembles.
func (s *Scorer) Explain(candidate models.Movie, likedMovies, dislikedMovies []models.Movie) ScoreBreakdown {
	fb := s.config.Feedback
	w := s.config.Similarity

	out := ScoreBreakdown{MovieID: candidate.ID}

	for _, liked := range likedMovies {
		comps := w.Components(candidate, liked)
		sim := w.Weigh(comps)
		out.LikeScore += sim * fb.LikeWeight

		if out.BestMatch == nil || sim > out.BestMatch.Similarity {
			out.BestMatch = &Match{
				MovieID:    liked.ID,
				Title:      liked.Title,
				Similarity: sim,
				Components: comps,
			}
		}
	}
	for _, disliked := range dislikedMovies {
		out.DislikePenalty += s.Similarity(candidate, disliked) * fb.DislikeWeight
	}

	out.Score = out.LikeScore - out.DislikePenalty
	return out
}
