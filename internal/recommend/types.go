// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package recommend

import (
	"errors"

	"github.com/tomtom215/cinemaswipe/internal/models"
)

// ErrMovieNotFound is returned when a movie id is not in the catalog.
var ErrMovieNotFound = errors.New("movie not found")

// FallbackLevel reports how far the initial batch relaxed the quiz filters.
type FallbackLevel string

const (
	// FallbackNone means genre, era and mood filters all applied.
	FallbackNone FallbackLevel = "none"
	// FallbackGenreOnly means era and mood were dropped.
	FallbackGenreOnly FallbackLevel = "genre_only"
	// FallbackFullCatalog means every filter was dropped.
	FallbackFullCatalog FallbackLevel = "full_catalog"
)

// ScoredMovie pairs a movie with its score.
type ScoredMovie struct {
	Movie models.Movie `json:"movie"`
	Score float64      `json:"score"`
}

// SimilarityComponents holds the unweighted per-dimension sub-scores of
// Similarity, each in [0, 1].
type SimilarityComponents struct {
	Genre  float64 `json:"genre"`
	Era    float64 `json:"era"`
	Mood   float64 `json:"mood"`
	Rating float64 `json:"rating"`
}

// Match describes the liked movie a candidate most resembles.
type Match struct {
	MovieID    int                  `json:"movie_id"`
	Title      string               `json:"title"`
	Similarity float64              `json:"similarity"`
	Components SimilarityComponents `json:"components"`
}

// ScoreBreakdown explains a candidate's feedback score without jitter.
type ScoreBreakdown struct {
	MovieID int `json:"movie_id"`

	// Score is LikeScore - DislikePenalty.
	Score float64 `json:"score"`

	// LikeScore is the weighted similarity summed over liked movies.
	LikeScore float64 `json:"like_score"`

	// DislikePenalty is the weighted similarity summed over disliked movies.
	DislikePenalty float64 `json:"dislike_penalty"`

	// BestMatch is the most similar liked movie, nil when nothing is liked.
	BestMatch *Match `json:"best_match,omitempty"`
}
