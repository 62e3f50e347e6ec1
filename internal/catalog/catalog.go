// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinemaswipe/internal/models"
	"github.com/tomtom215/cinemaswipe/internal/validation"
)

//go:embed data/movies.json
var embeddedMovies []byte

var (
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("duplicate movie id")

	// ErrInvalidMovie is returned when a record fails validation.
	ErrInvalidMovie = errors.New("invalid movie record")
)

// Catalog is an immutable, ordered collection of movies. Order is the load
// order and is significant: ranking ties are broken by catalog position.
type Catalog struct {
	movies []models.Movie
	index  map[int]int
}

// New builds a catalog from movies. Records are validated and deep-copied,
// so later changes to the input have no effect.
func New(movies []models.Movie) (*Catalog, error) {
	c := &Catalog{
		movies: make([]models.Movie, 0, len(movies)),
		index:  make(map[int]int, len(movies)),
	}

	for i := range movies {
		m := movies[i]
		if verr := validation.ValidateStruct(&m); verr != nil {
			return nil, fmt.Errorf("%w: record %d (id %d): %s", ErrInvalidMovie, i, m.ID, verr.Error())
		}
		if _, exists := c.index[m.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, m.ID)
		}

		c.index[m.ID] = len(c.movies)
		c.movies = append(c.movies, m.Clone())
	}

	return c, nil
}

// Parse decodes a JSON array of movies and builds a catalog from it.
func Parse(data []byte) (*Catalog, error) {
	var movies []models.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return New(movies)
}

// Load reads the catalog from path. An empty path loads the dataset
// embedded in the binary.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Embedded()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Embedded returns the catalog bundled with the binary.
func Embedded() (*Catalog, error) {
	c, err := Parse(embeddedMovies)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return c, nil
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Movies returns deep copies of the movies in catalog order.
func (c *Catalog) Movies() []models.Movie {
	out := make([]models.Movie, len(c.movies))
	for i, m := range c.movies {
		out[i] = m.Clone()
	}
	return out
}

// Get returns a deep copy of the movie with the given id.
func (c *Catalog) Get(id int) (models.Movie, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Movie{}, false
	}
	return c.movies[i].Clone(), true
}

// Position returns the catalog position of id, or -1 if absent.
func (c *Catalog) Position(id int) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// Genres returns the distinct genres present in the catalog, in order of
// first appearance.
func (c *Catalog) Genres() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range c.movies {
		for _, g := range m.Genres {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			out = append(out, g)
		}
	}
	return out
}
