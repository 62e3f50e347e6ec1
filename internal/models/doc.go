// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

/*
Package models defines the data structures shared across CinemaSwipe.

Key Components:

  - Movie: an immutable catalog record (genres, moods, year, rating, popularity)
  - Preferences: onboarding quiz answers used to seed the first card queue
  - Era: coarse release-year bands (classic, modern, recent)
  - OnboardingOptions: the genre, era and mood choices offered by the quiz

Era bands:

	classic  year < 1980
	modern   1980 <= year < 2010
	recent   year >= 2010

An empty field in Preferences means "no filter" for that dimension. The quiz
itself requires at least one genre, an era and a mood, but the recommendation
scorer accepts any combination.

Usage Example:

	import "github.com/tomtom215/cinemaswipe/internal/models"

	prefs := models.Preferences{
	    Genres: []string{"Action", "Sci-Fi"},
	    Era:    models.EraModern,
	    Mood:   "exciting",
	}
	if prefs.Era.Contains(1999) {
	    // matches the modern band
	}

Thread Safety:

Movie and Preferences are plain values. The package-level option lists are
read-only after init; use DefaultOnboardingOptions to obtain a copy.
*/
package models
