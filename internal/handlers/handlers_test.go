package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/vijay-heerarajan/billing-app/auth"
	"github.com/vijay-heerarajan/billing-app/httpx"
	"github.com/vijay-heerarajan/billing-app/internal/billing"
	"github.com/vijay-heerarajan/billing-app/internal/models"
	"github.com/vijay-heerarajan/billing-app/internal/repository"
	"github.com/vijay-heerarajan/billing-app/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{repository.ErrNoActiveUser, http.StatusUnauthorized},
		{repository.ErrInvalidPassword, http.StatusUnauthorized},
		{repository.ErrUserNotFound, http.StatusUnauthorized},
		{repository.ErrUserExists, http.StatusConflict},
		{fmt.Errorf("%w: %q", billing.ErrProductNotFound, "Gizmo"), http.StatusUnprocessableEntity},
		{billing.ErrIncompleteInvoice, http.StatusBadRequest},
		{billing.ErrInvalidQuantityOrRate, http.StatusBadRequest},
		{fmt.Errorf("%w: eof", httpx.ErrBadRequest), http.StatusBadRequest},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, quietLogger(), "test", tt.err)
			if rec.Code != tt.want {
				t.Errorf("writeError(%v) status = %d, want %d", tt.err, rec.Code, tt.want)
			}
		})
	}
}

func TestWithSession(t *testing.T) {
	st := store.NewMemoryStore()
	users := repository.NewUsersWithCost(st, bcrypt.MinCost)
	u, err := users.Register(context.Background(), models.RegisterData{Email: "a@b.co", Password: "secret1", Name: "A", BusinessName: "B"})
	if err != nil {
		t.Fatal(err)
	}

	var gotActive bool
	var gotID string
	h := WithSession(users, quietLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFrom(r)
		gotActive = sess.Active()
		if sess.Active() {
			gotID = sess.User.ID
		}
	}))

	tests := []struct {
		name       string
		uid        string
		wantActive bool
	}{
		{"anonymous", "", false},
		{"known user", u.ID, true},
		{"unknown user", "ghost", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotActive, gotID = false, ""
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.uid != "" {
				req = req.WithContext(auth.WithUserID(req.Context(), tt.uid))
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			if gotActive != tt.wantActive {
				t.Errorf("Active() = %v, want %v", gotActive, tt.wantActive)
			}
			if tt.wantActive && gotID != u.ID {
				t.Errorf("session user = %q, want %q", gotID, u.ID)
			}
		})
	}
}

func TestSessionFrom_NoMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if SessionFrom(req).Active() {
		t.Errorf("SessionFrom() without middleware is active")
	}
}
