package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vijay-heerarajan/billing-app/internal/models"
	"github.com/vijay-heerarajan/billing-app/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// Directory location of the user records.
const (
	DirectoryNamespace = "_directory"
	UsersCollection    = "users"
)

// Users is the user directory. Only Profile projections leave it.
type Users struct {
	store store.Store
	locks namespaceLocks
	now   func() time.Time
	cost  int
}

func NewUsers(s store.Store) *Users {
	return &Users{store: s, now: time.Now, cost: bcrypt.DefaultCost}
}

// NewUsersWithCost is NewUsers with an explicit bcrypt cost.
func NewUsersWithCost(s store.Store, cost int) *Users {
	u := NewUsers(s)
	u.cost = cost
	return u
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *Users) load(ctx context.Context) ([]models.Credential, error) {
	return store.Load[models.Credential](ctx, r.store, DirectoryNamespace, UsersCollection)
}

// Register creates a user. Emails are unique ignoring case.
func (r *Users) Register(ctx context.Context, data models.RegisterData) (models.AuthUser, error) {
	unlock := r.locks.lock(DirectoryNamespace)
	defer unlock()

	users, err := r.load(ctx)
	if err != nil {
		return models.AuthUser{}, err
	}
	email := normalizeEmail(data.Email)
	for _, u := range users {
		if u.Email == email {
			return models.AuthUser{}, ErrUserExists
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), r.cost)
	if err != nil {
		return models.AuthUser{}, fmt.Errorf("hash password: %w", err)
	}
	cred := models.Credential{
		Profile: models.Profile{
			ID:              uuid.NewString(),
			Email:           email,
			Name:            strings.TrimSpace(data.Name),
			BusinessName:    strings.TrimSpace(data.BusinessName),
			BusinessAddress: strings.TrimSpace(data.BusinessAddress),
			Phone:           strings.TrimSpace(data.Phone),
			GSTNo:           strings.ToUpper(strings.TrimSpace(data.GSTNo)),
			CreatedAt:       r.now().UTC(),
		},
		PasswordHash: string(hash),
	}
	if err := store.Save(ctx, r.store, DirectoryNamespace, UsersCollection, append(users, cred)); err != nil {
		return models.AuthUser{}, err
	}
	return cred.Identity(), nil
}

// Login checks a password against the stored hash.
func (r *Users) Login(ctx context.Context, email, password string) (models.AuthUser, error) {
	users, err := r.load(ctx)
	if err != nil {
		return models.AuthUser{}, err
	}
	email = normalizeEmail(email)
	for _, u := range users {
		if u.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				return models.AuthUser{}, ErrInvalidPassword
			}
			return models.AuthUser{}, fmt.Errorf("compare password: %w", err)
		}
		return u.Identity(), nil
	}
	return models.AuthUser{}, ErrUserNotFound
}

// Profile returns the public profile of user id.
func (r *Users) Profile(ctx context.Context, id string) (models.Profile, bool, error) {
	users, err := r.load(ctx)
	if err != nil {
		return models.Profile{}, false, err
	}
	for _, u := range users {
		if u.ID == id {
			return u.Profile, true, nil
		}
	}
	return models.Profile{}, false, nil
}

// Identity returns the session identity of user id.
func (r *Users) Identity(ctx context.Context, id string) (models.AuthUser, bool, error) {
	p, ok, err := r.Profile(ctx, id)
	if err != nil || !ok {
		return models.AuthUser{}, ok, err
	}
	return p.Identity(), true, nil
}

// UpdateProfile applies the non-nil fields of upd. It reports false when the
// user does not exist. Email, id and password are not editable here.
func (r *Users) UpdateProfile(ctx context.Context, id string, upd models.ProfileUpdate) (bool, error) {
	unlock := r.locks.lock(DirectoryNamespace)
	defer unlock()

	users, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range users {
		if users[i].ID != id {
			continue
		}
		applyUpdate(&users[i].Profile, upd)
		if err := store.Save(ctx, r.store, DirectoryNamespace, UsersCollection, users); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func applyUpdate(p *models.Profile, upd models.ProfileUpdate) {
	if upd.Name != nil {
		p.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.BusinessName != nil {
		p.BusinessName = strings.TrimSpace(*upd.BusinessName)
	}
	if upd.BusinessAddress != nil {
		p.BusinessAddress = strings.TrimSpace(*upd.BusinessAddress)
	}
	if upd.Phone != nil {
		p.Phone = strings.TrimSpace(*upd.Phone)
	}
	if upd.GSTNo != nil {
		p.GSTNo = strings.ToUpper(strings.TrimSpace(*upd.GSTNo))
	}
	if upd.BankDetails != nil {
		p.BankDetails = *upd.BankDetails
	}
}
