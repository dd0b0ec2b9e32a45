// Package auth issues and verifies HMAC-signed session cookies carrying a
// user id.
package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/vijay-heerarajan/billing-app/httpx"
)

type ctxKey string

const (
	SessionCookieName = "session"
	userIDCtxKey      = ctxKey("userID")
	defaultTTL        = 14 * 24 * time.Hour
)

// UserVerifier validates that a session's user still exists.
type UserVerifier func(ctx context.Context, uid string) bool

// Manager signs session cookies with a shared secret.
type Manager struct {
	secret   []byte
	ttl      time.Duration
	secure   bool
	verifier UserVerifier
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret), ttl: defaultTTL}
}

// SetUserVerifier configures the check RequireAuth runs on every request.
func (m *Manager) SetUserVerifier(v UserVerifier) { m.verifier = v }

// SetSecure marks issued cookies Secure.
func (m *Manager) SetSecure(secure bool) { m.secure = secure }

func (m *Manager) sign(uid string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(uid))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// CreateSession sets a signed cookie with the user id.
func (m *Manager) CreateSession(w http.ResponseWriter, userID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    userID + "." + m.sign(userID),
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(m.ttl),
	})
}

// ClearSession deletes the session cookie.
func (m *Manager) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: SessionCookieName, Value: "", Path: "/", Expires: time.Unix(0, 0), MaxAge: -1, HttpOnly: true, Secure: m.secure, SameSite: http.SameSiteLaxMode})
}

// ParseSession validates the cookie and returns the user id.
func (m *Manager) ParseSession(r *http.Request) (string, bool) {
	c, err := r.Cookie(SessionCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	i := strings.LastIndexByte(c.Value, '.')
	if i <= 0 {
		return "", false
	}
	uid, sig := c.Value[:i], c.Value[i+1:]
	if !hmac.Equal([]byte(sig), []byte(m.sign(uid))) {
		return "", false
	}
	return uid, true
}

// WithUserID stores user id in context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}

// UserIDFromContext extracts user id.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDCtxKey).(string)
	return id, ok && id != ""
}

// Middleware attaches user id to request context if present.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if uid, ok := m.ParseSession(r); ok {
			r = r.WithContext(WithUserID(r.Context(), uid))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth answers 401 unless the request carries a session for an
// existing user.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := UserIDFromContext(r.Context())
		if !ok {
			httpx.JSONError(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}
		if m.verifier != nil && !m.verifier(r.Context(), uid) {
			// Session refers to a deleted user.
			m.ClearSession(w)
			httpx.JSONError(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
