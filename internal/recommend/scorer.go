// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinemaswipe/internal/catalog"
	"github.com/tomtom215/cinemaswipe/internal/metrics"
	"github.com/tomtom215/cinemaswipe/internal/models"
)

// Scorer ranks the catalog for a swipe session. It holds no session state:
// preferences and swipe history are passed in on every call, so one Scorer
// serves every session and is safe for concurrent use.
type Scorer struct {
	catalog *catalog.Catalog
	config  *Config
	rng     RandomSource
	logger  zerolog.Logger
}

// Option customizes a Scorer.
type Option func(*Scorer)

// WithRandomSource replaces the seeded source. Tests use it to make shuffles
// and jitter reproducible.
func WithRandomSource(rng RandomSource) Option {
	return func(s *Scorer) {
		s.rng = rng
	}
}

// NewScorer creates a scorer over cat. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewScorer(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger, opts ...Option) (*Scorer, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Scorer{
		catalog: cat,
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRandomSource(cfg.Seed)
	}

	return s, nil
}

// Config returns a copy of the scorer configuration.
func (s *Scorer) Config() *Config {
	return s.config.Clone()
}

// Catalog returns the catalog the scorer ranks.
func (s *Scorer) Catalog() *catalog.Catalog {
	return s.catalog
}

// InitialRecommendations builds the first card queue from quiz answers.
//
// Movies are kept when they share a genre with prefs.Genres, fall inside the
// era band and carry the mood; empty fields do not filter. When fewer than
// Initial.RelaxThreshold movies survive, only the genre filter is applied;
// when that leaves fewer than Initial.FallbackThreshold, the whole catalog is
// used. The result is sorted by 0.7*rating + 0.3*popularity (ties keep
// catalog order) and the top Initial.ShuffleWindow entries are shuffled.
// Nothing is dropped after the fallback step; an empty catalog yields an
// empty slice.
func (s *Scorer) InitialRecommendations(prefs models.Preferences) []models.Movie {
	start := time.Now()
	movies, level := s.filterByPreferences(prefs)

	cfg := s.config.Initial
	composite := func(m models.Movie) float64 {
		return cfg.RatingWeight*m.Rating + cfg.PopularityWeight*m.Popularity
	}
	sort.SliceStable(movies, func(i, j int) bool {
		return composite(movies[i]) > composite(movies[j])
	})

	window := min(cfg.ShuffleWindow, len(movies))
	shuffle(s.rng, movies[:window])

	metrics.RecordFallback(string(level))
	metrics.RecordRecommendBatch(metrics.BatchInitial, len(movies), time.Since(start))

	s.logger.Debug().
		Strs("genres", prefs.Genres).
		Str("era", string(prefs.Era)).
		Str("mood", prefs.Mood).
		Str("fallback", string(level)).
		Int("count", len(movies)).
		Msg("initial recommendations")

	return movies
}

// filterByPreferences applies the quiz filters with the two-step relaxation.
func (s *Scorer) filterByPreferences(prefs models.Preferences) ([]models.Movie, FallbackLevel) {
	all := s.catalog.Movies()
	matchesGenre := func(m models.Movie) bool {
		return len(prefs.Genres) == 0 || m.HasGenre(prefs.Genres...)
	}

	filtered := filterMovies(all, func(m models.Movie) bool {
		if !matchesGenre(m) {
			return false
		}
		if prefs.Era != models.EraAny && !prefs.Era.Contains(m.Year) {
			return false
		}
		return prefs.Mood == "" || m.HasMood(prefs.Mood)
	})
	if len(filtered) >= s.config.Initial.RelaxThreshold {
		return filtered, FallbackNone
	}

	filtered = filterMovies(all, matchesGenre)
	if len(filtered) >= s.config.Initial.FallbackThreshold {
		return filtered, FallbackGenreOnly
	}

	return all, FallbackFullCatalog
}

// UpdateRecommendations re-ranks every unseen catalog movie from the swipe
// history.
//
// The current queue, the swiped movie and the verdict are accepted for call
// compatibility but do not influence the result: the ranking is recomputed
// from likedMovies and dislikedMovies alone, which must already include the
// latest swipe.
//
// A movie is seen when its id appears in either list. Each unseen movie
// scores Feedback.LikeWeight*sim for every liked movie, minus
// Feedback.DislikeWeight*sim for every disliked movie, plus uniform jitter in
// [-Feedback.Jitter, Feedback.Jitter) drawn per candidate per call. Movies are
// sorted by descending score; the result holds catalog size minus seen movies.
func (s *Scorer) UpdateRecommendations(
	_ []models.Movie,
	_ models.Movie,
	_ bool,
	likedMovies, dislikedMovies []models.Movie,
) []models.Movie {
	start := time.Now()
	ranked := s.rankByFeedback(likedMovies, dislikedMovies)
	metrics.RecordRecommendBatch(metrics.BatchUpdate, len(ranked), time.Since(start))
	return ranked
}

// MoreRecommendations refills an exhausted queue.
//
// With no likes it returns the cold-start batch: the ColdStart.Size most
// popular unseen movies (ties keep catalog order), shuffled. Callers must not
// assume more than ColdStart.Size results in that case. Otherwise it ranks
// exactly like UpdateRecommendations(nil, models.Movie{}, true, likedMovies,
// dislikedMovies).
func (s *Scorer) MoreRecommendations(likedMovies, dislikedMovies []models.Movie) []models.Movie {
	start := time.Now()

	var out []models.Movie
	if len(likedMovies) == 0 {
		out = s.coldStart(dislikedMovies)
	} else {
		out = s.rankByFeedback(likedMovies, dislikedMovies)
	}

	metrics.RecordRecommendBatch(metrics.BatchMore, len(out), time.Since(start))
	s.logger.Debug().
		Int("liked", len(likedMovies)).
		Int("disliked", len(dislikedMovies)).
		Int("count", len(out)).
		Msg("more recommendations")

	return out
}

// coldStart returns the shuffled most popular unseen movies.
func (s *Scorer) coldStart(dislikedMovies []models.Movie) []models.Movie {
	available := s.unseen(nil, dislikedMovies)
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].Popularity > available[j].Popularity
	})

	top := available[:min(s.config.ColdStart.Size, len(available))]
	shuffle(s.rng, top)
	return top
}

// rankByFeedback scores unseen movies against the swipe history.
func (s *Scorer) rankByFeedback(likedMovies, dislikedMovies []models.Movie) []models.Movie {
	candidates := s.unseen(likedMovies, dislikedMovies)
	fb := s.config.Feedback

	scored := make([]ScoredMovie, len(candidates))
	for i, m := range candidates {
		score := s.feedbackScore(m, likedMovies, dislikedMovies)
		score += jitter(s.rng, fb.Jitter)
		scored[i] = ScoredMovie{Movie: m, Score: score}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	out := make([]models.Movie, len(scored))
	for i, sm := range scored {
		out[i] = sm.Movie
	}
	return out
}

// feedbackScore is the jitter-free score of m.
func (s *Scorer) feedbackScore(m models.Movie, likedMovies, dislikedMovies []models.Movie) float64 {
	var score float64
	for _, liked := range likedMovies {
		score += s.Similarity(m, liked) * s.config.Feedback.LikeWeight
	}
	for _, disliked := range dislikedMovies {
		score -= s.Similarity(m, disliked) * s.config.Feedback.DislikeWeight
	}
	return score
}

// Similarity scores two movies with the scorer's configured weights.
func (s *Scorer) Similarity(a, b models.Movie) float64 {
	return s.config.Similarity.Score(a, b)
}

// unseen returns catalog movies whose id is in neither list, in catalog order.
func (s *Scorer) unseen(likedMovies, dislikedMovies []models.Movie) []models.Movie {
	seen := make(map[int]struct{}, len(likedMovies)+len(dislikedMovies))
	for _, m := range likedMovies {
		seen[m.ID] = struct{}{}
	}
	for _, m := range dislikedMovies {
		seen[m.ID] = struct{}{}
	}

	return filterMovies(s.catalog.Movies(), func(m models.Movie) bool {
		_, ok := seen[m.ID]
		return !ok
	})
}

// filterMovies returns a new slice of the movies for which keep is true.
func filterMovies(movies []models.Movie, keep func(models.Movie) bool) []models.Movie {
	var out []models.Movie
	for _, m := range movies {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
