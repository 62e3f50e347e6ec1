// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package api

// Request structs validated with go-playground/validator before handlers
// act on them. Field names in validation errors come from the json tags.

// SwipeRequest is the body of POST /sessions/{id}/swipe.
type SwipeRequest struct {
	Liked *bool `json:"liked" validate:"required"`
}

// QueueRequest holds the query parameters of GET /sessions/{id}/queue.
type QueueRequest struct {
	Limit int `json:"limit" validate:"min=1,max=100"`
}

// SimilarRequest holds the query parameters of GET /movies/{id}/similar.
// Zero means the scorer's default count.
type SimilarRequest struct {
	K int `json:"k" validate:"omitempty,min=1,max=100"`
}

// ListMoviesRequest holds the query parameters of GET /movies.
type ListMoviesRequest struct {
	Limit  int    `json:"limit" validate:"min=1,max=100"`
	Offset int    `json:"offset" validate:"min=0"`
	Genre  string `json:"genre" validate:"omitempty,genre"`
}

// Default and maximum page sizes.
const (
	defaultQueueLimit = 10
	defaultPageSize   = 50
	maxBodyBytes      = 64 << 10
)
