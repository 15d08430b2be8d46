package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dangerclosesec/adoptionhub/internal/auth"
	"github.com/dangerclosesec/adoptionhub/internal/domain"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// ErrorResponse is the envelope of every failed request.
type ErrorResponse struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
}

// Options are shared by every handler.
type Options struct {
	// Debug exposes internal error text in 500 responses.
	Debug bool
	// Now is the clock used to derive the current period.
	Now func() time.Time
}

type base struct {
	debug bool
	now   func() time.Time
}

func newBase(opts Options) base {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return base{debug: opts.Debug, now: now}
}

// respondWithJSON sends a JSON response
func (b base) respondWithJSON(w http.ResponseWriter, r *http.Request, code int, payload interface{}) {
	render.Status(r, code)
	render.JSON(w, r, payload)
}

// respondWithError sends the error envelope
func (b base) respondWithError(w http.ResponseWriter, r *http.Request, code int, message, detail string) {
	if code == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	b.respondWithJSON(w, r, code, ErrorResponse{StatusCode: code, Message: message, Detail: detail})
}

// handleError maps domain errors onto the envelope. Only unexpected errors
// are logged.
func (b base) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidScore),
		errors.Is(err, domain.ErrInvalidPeriod):
		b.respondWithError(w, r, http.StatusBadRequest, "Validation error", err.Error())
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInactiveEmployee):
		b.respondWithError(w, r, http.StatusUnauthorized, "Not authenticated", "")
	case errors.Is(err, domain.ErrForbidden):
		b.respondWithError(w, r, http.StatusForbidden, "Forbidden", "Access denied")
	case domain.IsNotFound(err):
		b.respondWithError(w, r, http.StatusNotFound, "Resource not found", err.Error())
	default:
		slog.ErrorContext(r.Context(), "Request failed", "error", err, "path", r.URL.Path, "requestID", chmw.GetReqID(r.Context()))
		detail := "An error occurred"
		if b.debug {
			detail = err.Error()
		}
		b.respondWithError(w, r, http.StatusInternalServerError, "Internal server error", detail)
	}
}

// identity returns the authenticated caller or writes a 401.
func (b base) identity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		b.respondWithError(w, r, http.StatusUnauthorized, "Not authenticated", "")
	}
	return identity, ok
}

func (b base) period(r *http.Request) (domain.Period, error) {
	if v := r.URL.Query().Get("period"); v != "" {
		return domain.ParsePeriod(v)
	}
	return domain.PeriodOf(b.now()), nil
}

func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, name)
	}
	return id, nil
}

// positiveQuery parses an optional positive integer query value. An absent
// value yields 0.
func positiveQuery(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, name)
	}
	return n, nil
}

func decode(r *http.Request, v interface{}) error {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrInvalidInput)
	}
	return nil
}
