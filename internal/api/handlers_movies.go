// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package api

import (
	"net/http"

	"github.com/tomtom215/cinemaswipe/internal/models"
	"github.com/tomtom215/cinemaswipe/internal/recommend"
	"github.com/tomtom215/cinemaswipe/internal/validation"
)

// SimilarResponse is the payload of GET /movies/{id}/similar.
type SimilarResponse struct {
	MovieID int                     `json:"movie_id"`
	Similar []recommend.ScoredMovie `json:"similar"`
}

// OnboardingOptions handles GET /api/v1/onboarding/options.
func (h *Handler) OnboardingOptions(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.options)
}

// ListMovies handles GET /api/v1/movies?limit=&offset=&genre=
// Movies are returned in catalog order.
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, err := getIntParam(r, "limit", defaultPageSize)
	if err != nil {
		writeDomainError(rw, err)
		return
	}
	offset, err := getIntParam(r, "offset", 0)
	if err != nil {
		writeDomainError(rw, err)
		return
	}

	req := ListMoviesRequest{
		Limit:  limit,
		Offset: offset,
		Genre:  r.URL.Query().Get("genre"),
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	movies := h.catalog.Movies()
	if req.Genre != "" {
		filtered := movies[:0]
		for _, m := range movies {
			if m.HasGenre(req.Genre) {
				filtered = append(filtered, m)
			}
		}
		movies = filtered
	}

	total := len(movies)
	start := min(req.Offset, total)
	end := min(start+req.Limit, total)
	page := movies[start:end]
	if page == nil {
		page = []models.Movie{}
	}

	rw.SuccessWithPagination(page, &PaginationMeta{
		Total:   total,
		Count:   len(page),
		Offset:  req.Offset,
		Limit:   req.Limit,
		HasMore: end < total,
	})
}

// GetMovie handles GET /api/v1/movies/{id}.
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := movieIDParam(r)
	if err != nil {
		writeDomainError(rw, err)
		return
	}

	movie, ok := h.catalog.Get(id)
	if !ok {
		rw.NotFound(ErrCodeMovieNotFound, "Movie not found")
		return
	}
	rw.Success(movie)
}

// SimilarMovies handles GET /api/v1/movies/{id}/similar?k=
func (h *Handler) SimilarMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := movieIDParam(r)
	if err != nil {
		writeDomainError(rw, err)
		return
	}
	k, err := getIntParam(r, "k", 0)
	if err != nil {
		writeDomainError(rw, err)
		return
	}

	req := SimilarRequest{K: k}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	similar, err := h.scorer.Similar(id, req.K)
	if err != nil {
		writeDomainError(rw, err)
		return
	}
	rw.Success(SimilarResponse{MovieID: id, Similar: similar})
}
