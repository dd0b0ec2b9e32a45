package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each collection under one string key.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore wraps a redis client. Keys are "<prefix>:<namespace>:<collection>".
func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "billing"
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) key(namespace, collection string) string {
	return s.prefix + ":" + namespace + ":" + collection
}

func (s *RedisStore) Get(ctx context.Context, namespace, collection string) ([]byte, error) {
	if err := checkKey(namespace, collection); err != nil {
		return nil, err
	}
	raw, err := s.rdb.Get(ctx, s.key(namespace, collection)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s/%s: %w", namespace, collection, err)
	}
	return raw, nil
}

func (s *RedisStore) Put(ctx context.Context, namespace, collection string, records []byte) error {
	if err := checkKey(namespace, collection); err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key(namespace, collection), records, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s/%s: %w", namespace, collection, err)
	}
	return nil
}
