package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func sessionCookie(t *testing.T, m *Manager, uid string) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	m.CreateSession(rec, uid)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	return cookies[0]
}

func TestSession_RoundTrip(t *testing.T) {
	m := NewManager("s3cret")
	c := sessionCookie(t, m, "5d2c1f9e-8d0b-4f7b-9a57-0c3f0d2b9a11")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	uid, ok := m.ParseSession(req)
	if !ok || uid != "5d2c1f9e-8d0b-4f7b-9a57-0c3f0d2b9a11" {
		t.Errorf("ParseSession() = %q, %v", uid, ok)
	}
	if !c.HttpOnly {
		t.Errorf("cookie is not HttpOnly")
	}
}

func TestParseSession_Rejects(t *testing.T) {
	m := NewManager("s3cret")
	other := NewManager("other")
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"no signature", "user1"},
		{"leading dot", ".abc"},
		{"tampered id", "user2." + m.sign("user1")},
		{"other secret", "user1." + other.sign("user1")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.value})
			if uid, ok := m.ParseSession(req); ok {
				t.Errorf("ParseSession() = %q, true; want rejection", uid)
			}
		})
	}
}

func TestRequireAuth(t *testing.T) {
	m := NewManager("s3cret")
	m.SetUserVerifier(func(_ context.Context, uid string) bool { return uid == "alive" })
	h := m.Middleware(m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, _ := UserIDFromContext(r.Context())
		_, _ = w.Write([]byte(uid))
	})))

	tests := []struct {
		name   string
		cookie *http.Cookie
		want   int
	}{
		{"no cookie", nil, http.StatusUnauthorized},
		{"valid", sessionCookie(t, m, "alive"), http.StatusOK},
		{"deleted user", sessionCookie(t, m, "gone"), http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusOK && rec.Body.String() != "alive" {
				t.Errorf("body = %q, want alive", rec.Body.String())
			}
		})
	}
}
