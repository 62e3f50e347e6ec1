// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

// Package catalog holds the fixed movie catalog served by CinemaSwipe.
//
// The catalog is loaded once at startup, either from a JSON file named in
// configuration or from the dataset embedded in the binary, and is never
// mutated afterwards. Every record is validated on load (ids must be unique
// and positive, ratings in [0,10], popularity in [0,100], at least one genre).
//
// The file format is a JSON array of movie objects:
//
//	[
//	  {
//	    "id": 1,
//	    "title": "The Godfather",
//	    "director": "Francis Ford Coppola",
//	    "year": 1972,
//	    "rating": 9.2,
//	    "popularity": 92,
//	    "genres": ["Drama", "Thriller"],
//	    "mood": ["dark", "thoughtful"],
//	    "duration": 175
//	  }
//	]
//
// A *Catalog is safe for concurrent use because it is read-only.
package catalog
