package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

// ErrSnapshotCaducado marks a persisted snapshot older than the policy TTL.
// Callers must propagate the original fetch error instead of serving it.
var ErrSnapshotCaducado = errors.New("snapshot caducado")

// ErrSnapshotVacio marks the absence of any persisted snapshot for a key.
var ErrSnapshotVacio = errors.New("snapshot inexistente")

// SnapshotStore persists the raw snapshot blob per entity-type key.
// Implementations: Redis (shared across instances) and SQLite (single node).
type SnapshotStore interface {
	Guardar(ctx context.Context, clave string, datos []byte) error
	Recuperar(ctx context.Context, clave string) ([]byte, error)
}

// envelope is the persisted shape: the entity array, the pagination block it
// was fetched with, and the write timestamp the staleness check runs against.
type envelope[T any] struct {
	Data       []T               `json:"data"`
	Paginacion *model.Paginacion `json:"pagination,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// GuardarSnapshot persists the current entity set. Best-effort by contract:
// failures are logged, never returned — a full mirror beats a fresh snapshot.
func GuardarSnapshot[T any](ctx context.Context, s SnapshotStore, clave string, items []T, pag *model.Paginacion) {
	if s == nil {
		return
	}
	datos, err := json.Marshal(envelope[T]{Data: items, Paginacion: pag, Timestamp: time.Now()})
	if err != nil {
		log.Error().Err(err).Str("clave", clave).Msg("cache: no se pudo serializar el snapshot")
		return
	}
	if err := s.Guardar(ctx, clave, datos); err != nil {
		log.Warn().Err(err).Str("clave", clave).Msg("cache: no se pudo persistir el snapshot")
	}
}

// RecuperarSnapshot reads the persisted snapshot back. A snapshot older than
// ttl is invalid: ErrSnapshotCaducado is returned so the caller propagates
// the original fetch error rather than silently serving very stale data.
func RecuperarSnapshot[T any](ctx context.Context, s SnapshotStore, clave string, ttl time.Duration) ([]T, *model.Paginacion, error) {
	if s == nil {
		return nil, nil, ErrSnapshotVacio
	}
	datos, err := s.Recuperar(ctx, clave)
	if err != nil {
		return nil, nil, err
	}
	var env envelope[T]
	if err := json.Unmarshal(datos, &env); err != nil {
		return nil, nil, fmt.Errorf("cache: snapshot corrupto: %w", err)
	}
	if ttl > 0 && time.Since(env.Timestamp) > ttl {
		return nil, nil, ErrSnapshotCaducado
	}
	return env.Data, env.Paginacion, nil
}
