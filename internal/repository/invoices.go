package repository

import (
	"context"

	"github.com/vijay-heerarajan/billing-app/internal/models"
	"github.com/vijay-heerarajan/billing-app/internal/session"
	"github.com/vijay-heerarajan/billing-app/internal/store"
)

// Invoices is the append-only invoice history of each user.
type Invoices struct {
	store store.Store
	locks namespaceLocks
}

func NewInvoices(s store.Store) *Invoices {
	return &Invoices{store: s}
}

// List returns invoices in the order they were appended.
func (r *Invoices) List(ctx context.Context, sess session.Session) ([]models.Invoice, error) {
	ns, ok := sess.Namespace()
	if !ok {
		return []models.Invoice{}, nil
	}
	return store.Load[models.Invoice](ctx, r.store, ns, InvoicesCollection)
}

// Append adds a finalized invoice to the history. Numbers are not checked
// for uniqueness.
func (r *Invoices) Append(ctx context.Context, sess session.Session, inv models.Invoice) error {
	ns, ok := sess.Namespace()
	if !ok {
		return ErrNoActiveUser
	}
	unlock := r.locks.lock(ns)
	defer unlock()

	invoices, err := store.Load[models.Invoice](ctx, r.store, ns, InvoicesCollection)
	if err != nil {
		return err
	}
	return store.Save(ctx, r.store, ns, InvoicesCollection, append(invoices, inv))
}

// Delete removes the invoice with id. Unknown ids and anonymous sessions
// are a no-op.
func (r *Invoices) Delete(ctx context.Context, sess session.Session, id string) error {
	ns, ok := sess.Namespace()
	if !ok {
		return nil
	}
	unlock := r.locks.lock(ns)
	defer unlock()

	invoices, err := store.Load[models.Invoice](ctx, r.store, ns, InvoicesCollection)
	if err != nil {
		return err
	}
	kept := invoices[:0]
	for _, inv := range invoices {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	if len(kept) == len(invoices) {
		return nil
	}
	return store.Save(ctx, r.store, ns, InvoicesCollection, kept)
}

// FindByID returns the invoice with id.
func (r *Invoices) FindByID(ctx context.Context, sess session.Session, id string) (models.Invoice, bool, error) {
	invoices, err := r.List(ctx, sess)
	if err != nil {
		return models.Invoice{}, false, err
	}
	for _, inv := range invoices {
		if inv.ID == id {
			return inv, true, nil
		}
	}
	return models.Invoice{}, false, nil
}

// Numbers returns the invoice numbers in history order.
func (r *Invoices) Numbers(ctx context.Context, sess session.Session) ([]string, error) {
	invoices, err := r.List(ctx, sess)
	if err != nil {
		return nil, err
	}
	numbers := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		numbers = append(numbers, inv.InvoiceNo)
	}
	return numbers, nil
}
