// Package repository exposes per-user CRUD over products and invoices, and
// the user directory, on top of a namespaced store.
//
// Every call takes an explicit session. Reads without an active user return
// empty results; mutations that need a scope fail with ErrNoActiveUser.
// Writes are serialised per namespace within this process only: two
// processes writing the same namespace can still lose updates.
package repository

import (
	"errors"
	"sync"
)

// Collection names inside a user namespace.
const (
	ProductsCollection = "products"
	InvoicesCollection = "invoices"
)

// Sentinel errors returned by repository calls.
var (
	ErrNoActiveUser    = errors.New("no active user")
	ErrUserExists      = errors.New("user already exists with this email")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

// namespaceLocks hands out one mutex per namespace.
type namespaceLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (n *namespaceLocks) lock(namespace string) func() {
	n.mu.Lock()
	if n.locks == nil {
		n.locks = make(map[string]*sync.Mutex)
	}
	l, ok := n.locks[namespace]
	if !ok {
		l = &sync.Mutex{}
		n.locks[namespace] = l
	}
	n.mu.Unlock()
	l.Lock()
	return l.Unlock
}
