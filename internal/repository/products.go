package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/vijay-heerarajan/billing-app/internal/models"
	"github.com/vijay-heerarajan/billing-app/internal/session"
	"github.com/vijay-heerarajan/billing-app/internal/store"
)

// Products is the product catalog of each user.
type Products struct {
	store store.Store
	locks namespaceLocks
}

func NewProducts(s store.Store) *Products {
	return &Products{store: s}
}

// List returns the catalog in insertion order.
func (r *Products) List(ctx context.Context, sess session.Session) ([]models.Product, error) {
	ns, ok := sess.Namespace()
	if !ok {
		return []models.Product{}, nil
	}
	return store.Load[models.Product](ctx, r.store, ns, ProductsCollection)
}

// Upsert inserts p, or replaces the product with the same id in place.
// An empty id is assigned before insertion; the stored product is returned.
func (r *Products) Upsert(ctx context.Context, sess session.Session, p models.Product) (models.Product, error) {
	ns, ok := sess.Namespace()
	if !ok {
		return models.Product{}, ErrNoActiveUser
	}
	unlock := r.locks.lock(ns)
	defer unlock()

	products, err := store.Load[models.Product](ctx, r.store, ns, ProductsCollection)
	if err != nil {
		return models.Product{}, err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	replaced := false
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, p)
	}
	if err := store.Save(ctx, r.store, ns, ProductsCollection, products); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Delete removes the product with id. Unknown ids and anonymous sessions
// are a no-op.
func (r *Products) Delete(ctx context.Context, sess session.Session, id string) error {
	ns, ok := sess.Namespace()
	if !ok {
		return nil
	}
	unlock := r.locks.lock(ns)
	defer unlock()

	products, err := store.Load[models.Product](ctx, r.store, ns, ProductsCollection)
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return nil
	}
	return store.Save(ctx, r.store, ns, ProductsCollection, kept)
}

// FindByID returns the product with id.
func (r *Products) FindByID(ctx context.Context, sess session.Session, id string) (models.Product, bool, error) {
	return r.find(ctx, sess, func(p models.Product) bool { return p.ID == id })
}

// FindByName returns the first product whose name equals name exactly.
// Duplicate names are not prevented; the earliest inserted one wins.
func (r *Products) FindByName(ctx context.Context, sess session.Session, name string) (models.Product, bool, error) {
	return r.find(ctx, sess, func(p models.Product) bool { return p.Name == name })
}

// Search returns products whose name or HSN contains query, ignoring case.
// An empty query returns the whole catalog.
func (r *Products) Search(ctx context.Context, sess session.Session, query string) ([]models.Product, error) {
	products, err := r.List(ctx, sess)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products, nil
	}
	matches := []models.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.HSN), q) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (r *Products) find(ctx context.Context, sess session.Session, match func(models.Product) bool) (models.Product, bool, error) {
	products, err := r.List(ctx, sess)
	if err != nil {
		return models.Product{}, false, err
	}
	for _, p := range products {
		if match(p) {
			return p, true, nil
		}
	}
	return models.Product{}, false, nil
}
