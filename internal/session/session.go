// Package session carries the identity a repository call is made for.
package session

import "github.com/vijay-heerarajan/billing-app/internal/models"

// Session is passed explicitly to every repository call. A zero Session has
// no active user.
type Session struct {
	User *models.AuthUser
}

// For returns a session scoped to u.
func For(u models.AuthUser) Session {
	return Session{User: &u}
}

// Anonymous returns a session without a user.
func Anonymous() Session {
	return Session{}
}

// Active reports whether a user is scoped.
func (s Session) Active() bool {
	return s.User != nil && s.User.ID != ""
}

// Namespace returns the storage namespace of the scoped user.
func (s Session) Namespace() (string, bool) {
	if !s.Active() {
		return "", false
	}
	return s.User.ID, true
}
