// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package recommend

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinemaswipe/internal/catalog"
	"github.com/tomtom215/cinemaswipe/internal/models"
)

// fixedSource never swaps during a shuffle and always draws zero jitter.
type fixedSource struct{}

func (fixedSource) Intn(n int) int   { return n - 1 }
func (fixedSource) Float64() float64 { return 0.5 }

// newMovie returns a valid catalog record with neutral defaults.
func newMovie(id int, genre string, year int) models.Movie {
	return models.Movie{
		ID:         id,
		Title:      fmt.Sprintf("Movie %d", id),
		Director:   "Test Director",
		Year:       year,
		Rating:     7,
		Popularity: 50,
		Genres:     []string{genre},
		Mood:       []string{"thoughtful"},
		Duration:   110,
	}
}

func newTestCatalog(t *testing.T, movies []models.Movie) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(movies)
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return cat
}

func newTestScorer(t *testing.T, movies []models.Movie, cfg *Config, rng RandomSource) *Scorer {
	t.Helper()
	if rng == nil {
		rng = fixedSource{}
	}
	s, err := NewScorer(newTestCatalog(t, movies), cfg, zerolog.Nop(), WithRandomSource(rng))
	if err != nil {
		t.Fatalf("NewScorer() error = %v", err)
	}
	return s
}

// popularityCatalog returns n drama movies with popularity equal to twice
// their id.
func popularityCatalog(n int) []models.Movie {
	movies := make([]models.Movie, n)
	for i := range movies {
		m := newMovie(i+1, "Drama", 1990+i%30)
		m.Popularity = float64(2 * (i + 1))
		movies[i] = m
	}
	return movies
}

func movieIDs(movies []models.Movie) []int {
	ids := make([]int, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}
	return ids
}

func assertNoDuplicates(t *testing.T, movies []models.Movie) {
	t.Helper()
	seen := make(map[int]bool, len(movies))
	for _, m := range movies {
		if seen[m.ID] {
			t.Fatalf("movie %d appears more than once", m.ID)
		}
		seen[m.ID] = true
	}
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
