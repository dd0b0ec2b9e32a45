// Package store persists ordered record collections partitioned by namespace.
//
// A collection is stored as a single JSON array, so a Put replaces the whole
// collection. Backends are interchangeable: the repository layer only sees
// the Store interface.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Store is a namespaced collection store.
type Store interface {
	// Get returns the encoded collection, or nil if it was never written.
	Get(ctx context.Context, namespace, collection string) ([]byte, error)
	// Put replaces the encoded collection.
	Put(ctx context.Context, namespace, collection string, records []byte) error
}

// ErrInvalidKey is returned for an empty namespace or collection.
var ErrInvalidKey = errors.New("store: namespace and collection are required")

func checkKey(namespace, collection string) error {
	if namespace == "" || collection == "" {
		return ErrInvalidKey
	}
	return nil
}

// Load decodes a collection. A missing collection decodes to an empty slice.
func Load[T any](ctx context.Context, s Store, namespace, collection string) ([]T, error) {
	raw, err := s.Get(ctx, namespace, collection)
	if err != nil {
		return nil, err
	}
	records := []T{}
	if len(raw) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", namespace, collection, err)
	}
	return records, nil
}

// Save encodes and writes a collection.
func Save[T any](ctx context.Context, s Store, namespace, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", namespace, collection, err)
	}
	return s.Put(ctx, namespace, collection, raw)
}
