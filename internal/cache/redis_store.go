package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const snapshotPrefix = "snapshot:"

// RedisStore persists snapshots in Redis. No key expiry is set: staleness is
// decided by the envelope timestamp at read time, so an expired snapshot can
// still be inspected manually.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Guardar(ctx context.Context, clave string, datos []byte) error {
	return s.rdb.Set(ctx, snapshotPrefix+clave, datos, 0).Err()
}

func (s *RedisStore) Recuperar(ctx context.Context, clave string) ([]byte, error) {
	datos, err := s.rdb.Get(ctx, snapshotPrefix+clave).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotVacio
	}
	if err != nil {
		return nil, fmt.Errorf("cache: leer snapshot de redis: %w", err)
	}
	return datos, nil
}
