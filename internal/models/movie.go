// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package models

// Movie is a single catalog record. Records are loaded once and never
// mutated; every value handed out by the catalog or the scorer is a copy.
//
// Genres is ordered and its first element is the primary genre, which
// drives the colour used by the history view.
type Movie struct {
	ID          int      `json:"id" validate:"required,gt=0"`
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	ImageURL    string   `json:"image_url,omitempty" validate:"omitempty,url"`
	ModelURL    string   `json:"model_url,omitempty" validate:"omitempty,url"`
	Director    string   `json:"director" validate:"max=200"`
	Year        int      `json:"year" validate:"gte=1870,lte=2100"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=10"`
	Popularity  float64  `json:"popularity" validate:"gte=0,lte=100"`
	Genres      []string `json:"genres" validate:"required,min=1,dive,required"`
	Mood        []string `json:"mood" validate:"dive,required"`
	Duration    int      `json:"duration" validate:"gte=0"`
}

// Clone returns a copy of m that shares no tag slices with it.
func (m Movie) Clone() Movie {
	out := m
	if m.Genres != nil {
		out.Genres = append([]string(nil), m.Genres...)
	}
	if m.Mood != nil {
		out.Mood = append([]string(nil), m.Mood...)
	}
	return out
}

// PrimaryGenre returns the first genre of the movie, or "" when the
// record carries no genres.
func (m Movie) PrimaryGenre() string {
	if len(m.Genres) == 0 {
		return ""
	}
	return m.Genres[0]
}

// HasGenre reports whether the movie is tagged with any of the given genres.
func (m Movie) HasGenre(genres ...string) bool {
	for _, g := range m.Genres {
		for _, want := range genres {
			if g == want {
				return true
			}
		}
	}
	return false
}

// HasMood reports whether the movie is tagged with the given mood.
func (m Movie) HasMood(mood string) bool {
	for _, md := range m.Mood {
		if md == mood {
			return true
		}
	}
	return false
}

// Era identifies a coarse release-year band.
type Era string

// Era bands used by the onboarding quiz. EraAny applies no year filter.
const (
	EraAny     Era = ""
	EraClassic Era = "classic"
	EraModern  Era = "modern"
	EraRecent  Era = "recent"
)

// Era band bounds. Classic is before 1980, modern is [1980, 2010) and
// recent is 2010 onwards.
const (
	ModernStartYear = 1980
	RecentStartYear = 2010
)

// Contains reports whether year falls within the band. Unknown eras and
// EraAny accept every year.
func (e Era) Contains(year int) bool {
	switch e {
	case EraClassic:
		return year < ModernStartYear
	case EraModern:
		return year >= ModernStartYear && year < RecentStartYear
	case EraRecent:
		return year >= RecentStartYear
	default:
		return true
	}
}

// Valid reports whether e is one of the known bands or EraAny.
func (e Era) Valid() bool {
	switch e {
	case EraAny, EraClassic, EraModern, EraRecent:
		return true
	}
	return false
}

// Preferences captures the onboarding quiz answers. An empty field means
// "no filter" for that dimension.
type Preferences struct {
	Genres []string `json:"genres" validate:"max=3,unique,dive,genre"`
	Era    Era      `json:"era" validate:"omitempty,era"`
	Mood   string   `json:"mood" validate:"omitempty,mood"`
}

// Clone returns a deep copy of the preferences.
func (p Preferences) Clone() Preferences {
	out := p
	if p.Genres != nil {
		out.Genres = append([]string(nil), p.Genres...)
	}
	return out
}
