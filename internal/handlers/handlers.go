// Package handlers implements the JSON HTTP API.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vijay-heerarajan/billing-app/auth"
	"github.com/vijay-heerarajan/billing-app/httpx"
	"github.com/vijay-heerarajan/billing-app/internal/billing"
	"github.com/vijay-heerarajan/billing-app/internal/logging"
	"github.com/vijay-heerarajan/billing-app/internal/repository"
	"github.com/vijay-heerarajan/billing-app/internal/session"
	"github.com/vijay-heerarajan/billing-app/validation"
)

type ctxKey struct{}

// WithSession resolves the authenticated user id into a session.Session for
// the rest of the chain. Requests without a known user get an anonymous
// session.
func WithSession(users *repository.Users, log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.Anonymous()
			if uid, ok := auth.UserIDFromContext(r.Context()); ok {
				u, found, err := users.Identity(r.Context(), uid)
				if err != nil {
					writeError(w, log, "WithSession", err)
					return
				}
				if found {
					sess = session.For(u)
				}
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, sess)))
		})
	}
}

// SessionFrom returns the request session set by WithSession.
func SessionFrom(r *http.Request) session.Session {
	sess, _ := r.Context().Value(ctxKey{}).(session.Session)
	return sess
}

// decodeValid decodes the body into dst and validates it. On failure the
// response has been written and false is returned.
func decodeValid(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.Decode(r, dst); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		return false
	}
	return valid(w, dst)
}

func valid(w http.ResponseWriter, v any) bool {
	if violations := validation.Struct(v); !violations.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", violations)
		return false
	}
	return true
}

// writeError maps domain errors to HTTP statuses. Unknown errors are logged
// and reported as 500.
func writeError(w http.ResponseWriter, log logrus.FieldLogger, funcName string, err error) {
	switch {
	case errors.Is(err, repository.ErrNoActiveUser):
		httpx.JSONError(w, http.StatusUnauthorized, "unauthorized", nil)
	case errors.Is(err, repository.ErrUserNotFound), errors.Is(err, repository.ErrInvalidPassword):
		httpx.JSONError(w, http.StatusUnauthorized, "invalid email or password", nil)
	case errors.Is(err, repository.ErrUserExists):
		httpx.JSONError(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, billing.ErrProductNotFound):
		httpx.JSONError(w, http.StatusUnprocessableEntity, err.Error(), nil)
	case errors.Is(err, billing.ErrIncompleteInvoice), errors.Is(err, billing.ErrInvalidQuantityOrRate), errors.Is(err, httpx.ErrBadRequest):
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
	default:
		logging.LogError(log, "handlers", funcName, "request failed", nil, err)
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}
