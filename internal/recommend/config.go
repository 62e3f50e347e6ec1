// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package recommend

import (
	"fmt"
)

// weightSumTolerance absorbs rounding when similarity weights sum to 1.
const weightSumTolerance = 1e-9

// Config contains all configuration for the recommendation scorer.
type Config struct {
	// Similarity weights the four dimensions of the movie similarity metric.
	Similarity SimilarityWeights `json:"similarity"`

	// Initial controls the first batch built from onboarding preferences.
	Initial InitialConfig `json:"initial"`

	// Feedback controls re-ranking from likes and dislikes.
	Feedback FeedbackConfig `json:"feedback"`

	// ColdStart controls the batch served when nothing has been liked yet.
	ColdStart ColdStartConfig `json:"cold_start"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`

	// Seed is the random seed for shuffles and jitter.
	// If zero, the source is seeded from the clock.
	Seed int64 `json:"seed"`
}

// SimilarityWeights defines the contribution of each dimension to
// Similarity. The four weights must sum to at most 1, which keeps the
// metric in [0, 1].
type SimilarityWeights struct {
	// Genre weights the distinct-genre overlap. Default: 0.4.
	Genre float64 `json:"genre"`

	// Era weights release-year closeness. Default: 0.2.
	Era float64 `json:"era"`

	// Mood weights the distinct-mood overlap. Default: 0.3.
	Mood float64 `json:"mood"`

	// Rating weights rating closeness. Default: 0.1.
	Rating float64 `json:"rating"`

	// EraSpanYears is the year gap at which era closeness reaches 0. Default: 50.
	EraSpanYears float64 `json:"era_span_years"`

	// RatingSpan is the rating gap at which rating closeness reaches 0. Default: 10.
	RatingSpan float64 `json:"rating_span"`
}

// Sum returns the total of the four dimension weights.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w SimilarityWeights) Sum() float64 {
	return w.Genre + w.Era + w.Mood + w.Rating
}

// InitialConfig contains parameters for the preference-filtered first batch.
type InitialConfig struct {
	// RatingWeight and PopularityWeight form the composite sort key
	// RatingWeight*rating + PopularityWeight*popularity. Defaults: 0.7 and 0.3.
	RatingWeight     float64 `json:"rating_weight"`
	PopularityWeight float64 `json:"popularity_weight"`

	// RelaxThreshold: below this many matches the era and mood filters are
	// dropped and only the genre filter is kept. Default: 10.
	RelaxThreshold int `json:"relax_threshold"`

	// FallbackThreshold: below this many genre-only matches every filter is
	// dropped. Default: 5.
	FallbackThreshold int `json:"fallback_threshold"`

	// ShuffleWindow is how many top-ranked movies are shuffled. Default: 20.
	ShuffleWindow int `json:"shuffle_window"`
}

// FeedbackConfig contains parameters for re-ranking from swipes.
type FeedbackConfig struct {
	// LikeWeight multiplies the similarity to each liked movie. Default: 1.5.
	LikeWeight float64 `json:"like_weight"`

	// DislikeWeight multiplies the similarity to each disliked movie. Default: 1.0.
	DislikeWeight float64 `json:"dislike_weight"`

	// Jitter is the half-width of the uniform exploration noise added to
	// every score. Default: 0.1.
	Jitter float64 `json:"jitter"`
}

// ColdStartConfig contains parameters for the no-likes batch.
type ColdStartConfig struct {
	// Size is how many of the most popular unseen movies are served. Default: 30.
	Size int `json:"size"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultK is the number of similar movies returned when none is requested.
	DefaultK int `json:"default_k"`

	// MaxK caps the number of similar movies per request.
	MaxK int `json:"max_k"`
}

// DefaultSimilarityWeights returns the standard similarity weights.
func DefaultSimilarityWeights() SimilarityWeights {
	return SimilarityWeights{
		Genre:        0.4,
		Era:          0.2,
		Mood:         0.3,
		Rating:       0.1,
		EraSpanYears: 50,
		RatingSpan:   10,
	}
}

// DefaultConfig returns the default scorer configuration.
func DefaultConfig() *Config {
	return &Config{
		Similarity: DefaultSimilarityWeights(),
		Initial: InitialConfig{
			RatingWeight:      0.7,
			PopularityWeight:  0.3,
			RelaxThreshold:    10,
			FallbackThreshold: 5,
			ShuffleWindow:     20,
		},
		Feedback: FeedbackConfig{
			LikeWeight:    1.5,
			DislikeWeight: 1.0,
			Jitter:        0.1,
		},
		ColdStart: ColdStartConfig{
			Size: 30,
		},
		Limits: LimitsConfig{
			DefaultK: 10,
			MaxK:     50,
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	w := c.Similarity
	if w.Genre < 0 || w.Era < 0 || w.Mood < 0 || w.Rating < 0 {
		return fmt.Errorf("similarity weights must be non-negative, got %+v", w)
	}
	if sum := w.Sum(); sum <= 0 || sum > 1+weightSumTolerance {
		return fmt.Errorf("similarity weights must sum to a value in (0, 1], got %f", sum)
	}
	if w.EraSpanYears <= 0 {
		return fmt.Errorf("similarity.era_span_years must be positive, got %f", w.EraSpanYears)
	}
	if w.RatingSpan <= 0 {
		return fmt.Errorf("similarity.rating_span must be positive, got %f", w.RatingSpan)
	}

	if c.Initial.RatingWeight < 0 || c.Initial.PopularityWeight < 0 {
		return fmt.Errorf("initial composite weights must be non-negative")
	}
	if c.Initial.RelaxThreshold < 0 {
		return fmt.Errorf("initial.relax_threshold must be non-negative, got %d", c.Initial.RelaxThreshold)
	}
	if c.Initial.FallbackThreshold < 0 {
		return fmt.Errorf("initial.fallback_threshold must be non-negative, got %d", c.Initial.FallbackThreshold)
	}
	if c.Initial.FallbackThreshold > c.Initial.RelaxThreshold {
		return fmt.Errorf("initial.fallback_threshold (%d) must not exceed relax_threshold (%d)",
			c.Initial.FallbackThreshold, c.Initial.RelaxThreshold)
	}
	if c.Initial.ShuffleWindow < 0 {
		return fmt.Errorf("initial.shuffle_window must be non-negative, got %d", c.Initial.ShuffleWindow)
	}

	if c.Feedback.LikeWeight < 0 || c.Feedback.DislikeWeight < 0 {
		return fmt.Errorf("feedback weights must be non-negative")
	}
	if c.Feedback.Jitter < 0 {
		return fmt.Errorf("feedback.jitter must be non-negative, got %f", c.Feedback.Jitter)
	}

	if c.ColdStart.Size < 1 {
		return fmt.Errorf("cold_start.size must be positive, got %d", c.ColdStart.Size)
	}

	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k (%d) must be >= default_k (%d)", c.Limits.MaxK, c.Limits.DefaultK)
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// all nested structs contain only value types
	clone := *c
	return &clone
}
