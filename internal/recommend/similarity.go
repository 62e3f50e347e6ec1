// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package recommend

import (
	"math"

	"github.com/tomtom215/cinemaswipe/internal/models"
)

// Similarity scores two movies with the default weights:
//
//	sim(a, b) = 0.4 * overlap(genres) +
//	            0.2 * (1 - min(1, |year_a - year_b| / 50)) +
//	            0.3 * overlap(moods) +
//	            0.1 * (1 - min(1, |rating_a - rating_b| / 10))
//
// overlap counts distinct tags: |A ∩ B| / max(1, |A|, |B|) over the sets of
// values, so a repeated tag is counted once. The result is symmetric, lies in
// [0, 1] and equals 1 for a movie compared with itself when both tag lists are
// non-empty.
func Similarity(a, b models.Movie) float64 {
	return DefaultSimilarityWeights().Score(a, b)
}

// Score returns the weighted similarity of a and b.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w SimilarityWeights) Score(a, b models.Movie) float64 {
	return w.Weigh(w.Components(a, b))
}

// Components returns the unweighted sub-scores of a and b.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w SimilarityWeights) Components(a, b models.Movie) SimilarityComponents {
	return SimilarityComponents{
		Genre:  tagOverlap(a.Genres, b.Genres),
		Era:    closeness(float64(a.Year-b.Year), w.EraSpanYears),
		Mood:   tagOverlap(a.Mood, b.Mood),
		Rating: closeness(a.Rating-b.Rating, w.RatingSpan),
	}
}

// Weigh combines sub-scores into a single similarity. The sum is capped at 1
// so identical movies score exactly 1 despite floating-point rounding.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w SimilarityWeights) Weigh(c SimilarityComponents) float64 {
	return math.Min(1, w.Genre*c.Genre+w.Era*c.Era+w.Mood*c.Mood+w.Rating*c.Rating)
}

// closeness maps a difference to 1 - min(1, |diff|/span).
func closeness(diff, span float64) float64 {
	return 1 - math.Min(1, math.Abs(diff)/span)
}

// tagOverlap is |A ∩ B| / max(1, max(|A|, |B|)) over distinct values.
func tagOverlap(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)

	common := 0
	for tag := range setA {
		if _, ok := setB[tag]; ok {
			common++
		}
	}

	denom := max(1, len(setA), len(setB))
	return float64(common) / float64(denom)
}

func toSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}
