// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package models

// MaxPreferredGenres caps how many genres a user may pick during onboarding.
const MaxPreferredGenres = 3

// DefaultGenreColor is used for genres without an entry in GenreColors.
const DefaultGenreColor = "#4a5568"

// Option is a selectable onboarding answer.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OnboardingOptions is the full set of quiz choices served to clients.
type OnboardingOptions struct {
	Genres    []string `json:"genres"`
	Eras      []Option `json:"eras"`
	Moods     []Option `json:"moods"`
	MaxGenres int      `json:"max_genres"`
}

// Genres lists the selectable genres in display order.
var Genres = []string{
	"Action",
	"Comedy",
	"Drama",
	"Horror",
	"Sci-Fi",
	"Romance",
	"Documentary",
	"Thriller",
	"Animation",
	"Fantasy",
}

// Eras lists the selectable release-year bands.
var Eras = []Option{
	{Value: string(EraClassic), Label: "Classic (Pre-1980)"},
	{Value: string(EraModern), Label: "Modern (1980-2010)"},
	{Value: string(EraRecent), Label: "Recent (2010+)"},
}

// Moods lists the selectable moods.
var Moods = []Option{
	{Value: "exciting", Label: "Exciting"},
	{Value: "thoughtful", Label: "Thoughtful"},
	{Value: "happy", Label: "Happy"},
	{Value: "dark", Label: "Dark"},
	{Value: "inspiring", Label: "Inspiring"},
}

// GenreColors maps a primary genre to the accent colour of its history card.
var GenreColors = map[string]string{
	"Action":      "#e53e3e",
	"Comedy":      "#38a169",
	"Drama":       "#6b46c1",
	"Horror":      "#1a202c",
	"Sci-Fi":      "#2b6cb0",
	"Romance":     "#d53f8c",
	"Documentary": "#718096",
	"Thriller":    "#dd6b20",
	"Animation":   "#319795",
	"Fantasy":     "#805ad5",
}

// DefaultOnboardingOptions returns a copy of the quiz choices.
func DefaultOnboardingOptions() OnboardingOptions {
	return OnboardingOptions{
		Genres:    append([]string(nil), Genres...),
		Eras:      append([]Option(nil), Eras...),
		Moods:     append([]Option(nil), Moods...),
		MaxGenres: MaxPreferredGenres,
	}
}

// GenreColor returns the accent colour for genre.
func GenreColor(genre string) string {
	if c, ok := GenreColors[genre]; ok {
		return c
	}
	return DefaultGenreColor
}

// IsKnownGenre reports whether genre is one of the selectable genres.
func IsKnownGenre(genre string) bool {
	for _, g := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// IsKnownMood reports whether mood is one of the selectable moods.
func IsKnownMood(mood string) bool {
	for _, m := range Moods {
		if m.Value == mood {
			return true
		}
	}
	return false
}
