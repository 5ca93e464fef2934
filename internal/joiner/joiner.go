// Package joiner attaches related entities to a page of primary entities via
// parallel fan-out. Output order always matches input order (results land at
// the input index, never at completion order) because the UI zips enrichment
// results back onto the original list by position. One item's failure
// degrades that item to a fallback value — it never aborts the batch, is
// logged, and is not retried.
package joiner

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// LimiteDefecto caps the in-flight secondary fetches per batch.
const LimiteDefecto = 8

// Enriquecer runs fn over every item in parallel and returns the enriched
// slice in input order. When fn fails for an item, the original item is kept
// unchanged (graceful degradation); enrichment output is a total function of
// its input so rendering can always proceed.
func Enriquecer[T any](ctx context.Context, items []T, limite int, fn func(ctx context.Context, item T) (T, error)) []T {
	if len(items) == 0 {
		return items
	}
	if limite <= 0 {
		limite = LimiteDefecto
	}

	out := make([]T, len(items))
	copy(out, items)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limite)
	for i := range items {
		i := i
		g.Go(func() error {
			enriquecido, err := fn(gctx, items[i])
			if err != nil {
				log.Debug().Err(err).Int("indice", i).Msg("joiner: enriquecimiento parcial fallido")
				return nil
			}
			out[i] = enriquecido
			return nil
		})
	}
	// Workers never return errors; Wait is only the join point.
	_ = g.Wait()
	return out
}
