package session

import (
	"testing"

	"github.com/vijay-heerarajan/billing-app/internal/models"
)

func TestSession_Namespace(t *testing.T) {
	tests := []struct {
		name   string
		sess   Session
		wantNS string
		wantOK bool
	}{
		{"anonymous", Anonymous(), "", false},
		{"zero value", Session{}, "", false},
		{"empty id", Session{User: &models.AuthUser{}}, "", false},
		{"user", For(models.AuthUser{ID: "u1", Email: "a@b.in"}), "u1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns, ok := tt.sess.Namespace()
			if ns != tt.wantNS || ok != tt.wantOK {
				t.Errorf("Namespace() = %q, %v, want %q, %v", ns, ok, tt.wantNS, tt.wantOK)
			}
			if got := tt.sess.Active(); got != tt.wantOK {
				t.Errorf("Active() = %v, want %v", got, tt.wantOK)
			}
		})
	}
}
