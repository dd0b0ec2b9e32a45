package store

import (
	"context"
	"sync"
)

// MemoryStore keeps collections in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func memoryKey(namespace, collection string) string {
	return namespace + "\x00" + collection
}

func (m *MemoryStore) Get(_ context.Context, namespace, collection string) ([]byte, error) {
	if err := checkKey(namespace, collection); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.data[memoryKey(namespace, collection)]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (m *MemoryStore) Put(_ context.Context, namespace, collection string, records []byte) error {
	if err := checkKey(namespace, collection); err != nil {
		return err
	}
	buf := make([]byte, len(records))
	copy(buf, records)
	m.mu.Lock()
	m.data[memoryKey(namespace, collection)] = buf
	m.mu.Unlock()
	return nil
}
