// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cinemaswipe/internal/recommend"
	"github.com/tomtom215/cinemaswipe/internal/session"
	"github.com/tomtom215/cinemaswipe/internal/validation"
)

// errInvalidParam marks a malformed path or query parameter.
var errInvalidParam = errors.New("invalid parameter")

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// decodeJSONBody decodes a size-limited JSON body into v, rejecting unknown
// fields and trailing data.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	if dec.More() {
		return errors.New("decode request body: unexpected trailing data")
	}
	return nil
}

// getIntParam parses an integer query parameter, returning defaultValue when
// it is absent.
func getIntParam(r *http.Request, key string, defaultValue int) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errInvalidParam, key)
	}
	return n, nil
}

// movieIDParam parses the {id} path parameter as a movie id.
func movieIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, fmt.Errorf("%w: movie id must be an integer", errInvalidParam)
	}
	return id, nil
}

// writeDomainError maps domain errors onto API errors.
func writeDomainError(rw *ResponseWriter, err error) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		rw.ValidationError(verr)
	case errors.Is(err, errInvalidParam):
		rw.BadRequest(err.Error())
	case errors.Is(err, session.ErrSessionNotFound):
		rw.NotFound(ErrCodeSessionNotFound, "Session not found")
	case errors.Is(err, recommend.ErrMovieNotFound):
		rw.NotFound(ErrCodeMovieNotFound, "Movie not found")
	case errors.Is(err, session.ErrNoCurrentMovie):
		rw.Conflict(ErrCodeQueueEmpty, "No movie left to swipe; reset the session")
	default:
		rw.InternalError("Request failed", err)
	}
}
