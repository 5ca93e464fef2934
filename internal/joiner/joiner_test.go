package joiner

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fila struct {
	ID    int64
	Extra string
}

func TestEnriquecerPreservaOrdenConLatenciasAdversas(t *testing.T) {
	// The earliest items sleep longest: completion order is the exact
	// reverse of input order, output must still match input order.
	items := make([]fila, 10)
	for i := range items {
		items[i] = fila{ID: int64(i + 1)}
	}

	out := Enriquecer(context.Background(), items, 10, func(_ context.Context, f fila) (fila, error) {
		time.Sleep(time.Duration(11-f.ID) * time.Millisecond)
		f.Extra = fmt.Sprintf("enriquecido-%d", f.ID)
		return f, nil
	})

	require.Len(t, out, 10)
	for i, f := range out {
		assert.Equal(t, int64(i+1), f.ID)
		assert.Equal(t, fmt.Sprintf("enriquecido-%d", f.ID), f.Extra)
	}
}

func TestEnriquecerFalloParcialConservaElOriginal(t *testing.T) {
	items := []fila{{ID: 1}, {ID: 2}, {ID: 3}}

	out := Enriquecer(context.Background(), items, 0, func(_ context.Context, f fila) (fila, error) {
		if f.ID == 2 {
			return fila{}, errors.New("backend caído")
		}
		f.Extra = "ok"
		return f, nil
	})

	require.Len(t, out, 3)
	assert.Equal(t, "ok", out[0].Extra)
	assert.Equal(t, fila{ID: 2}, out[1], "failed item degrades to its input value")
	assert.Equal(t, "ok", out[2].Extra)
}

func TestEnriquecerRespetaElLimite(t *testing.T) {
	var activos, pico int32
	items := make([]fila, 20)

	Enriquecer(context.Background(), items, 3, func(_ context.Context, f fila) (fila, error) {
		n := atomic.AddInt32(&activos, 1)
		for {
			p := atomic.LoadInt32(&pico)
			if n <= p || atomic.CompareAndSwapInt32(&pico, p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		atomic.AddInt32(&activos, -1)
		return f, nil
	})

	assert.LessOrEqual(t, atomic.LoadInt32(&pico), int32(3))
}

func TestEnriquecerVacio(t *testing.T) {
	out := Enriquecer(context.Background(), []fila(nil), 4, func(_ context.Context, f fila) (fila, error) {
		t.Fatal("fn must not run on an empty batch")
		return f, nil
	})
	assert.Empty(t, out)
}
