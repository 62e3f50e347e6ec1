// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a thread-safe
// singleton validator instance with the domain tags used by CinemaSwipe and
// user-friendly error messages that map onto the API error envelope.
//
// # Custom Tags
//
//   - genre: one of models.Genres (case sensitive)
//   - era: classic, modern or recent (pair with omitempty to allow "no filter")
//   - mood: one of the onboarding moods
//
// Field names in errors come from the json tag, so a failure on
// Preferences.Genres is reported as "genres".
//
// # Quick Start
//
//	type SwipeRequest struct {
//	    Liked *bool `json:"liked" validate:"required"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // render apiErr.Code / apiErr.Message / apiErr.Details
//	}
//
// # Thread Safety
//
// GetValidator initializes the validator exactly once; the returned instance
// caches struct metadata and is safe for concurrent use.
package validation
