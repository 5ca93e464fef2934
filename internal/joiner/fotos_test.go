package joiner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

func fotoEn(id int64, subida time.Time) model.Foto {
	return model.Foto{ID: id, FechaSubida: subida}
}

func TestRecolectarOrdenaPorFechaDescendente(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	agg := FotosVehiculo{
		PiezasDe: func(_ context.Context, _ int64) ([]model.Pieza, error) {
			return []model.Pieza{{ID: 10}, {ID: 20}}, nil
		},
		FotosDe: func(_ context.Context, idPieza int64) ([]model.Foto, error) {
			if idPieza == 10 {
				return []model.Foto{fotoEn(1, base.Add(1 * time.Hour)), fotoEn(2, base.Add(3 * time.Hour))}, nil
			}
			return []model.Foto{fotoEn(3, base.Add(2 * time.Hour))}, nil
		},
	}

	fotos := agg.Recolectar(context.Background(), 99)
	require.Len(t, fotos, 3)
	assert.Equal(t, int64(2), fotos[0].ID)
	assert.Equal(t, int64(3), fotos[1].ID)
	assert.Equal(t, int64(1), fotos[2].ID)
}

func TestRecolectarDesempateEstable(t *testing.T) {
	// Same timestamp everywhere: (pieza, foto) input order must survive.
	instante := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	agg := FotosVehiculo{
		PiezasDe: func(_ context.Context, _ int64) ([]model.Pieza, error) {
			return []model.Pieza{{ID: 10}, {ID: 20}}, nil
		},
		FotosDe: func(_ context.Context, idPieza int64) ([]model.Foto, error) {
			if idPieza == 10 {
				return []model.Foto{fotoEn(1, instante), fotoEn(2, instante)}, nil
			}
			return []model.Foto{fotoEn(3, instante)}, nil
		},
	}

	fotos := agg.Recolectar(context.Background(), 99)
	require.Len(t, fotos, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{fotos[0].ID, fotos[1].ID, fotos[2].ID})
}

func TestRecolectarTruncaAlMaximo(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	agg := FotosVehiculo{
		PiezasDe: func(_ context.Context, _ int64) ([]model.Pieza, error) {
			return []model.Pieza{{ID: 10}}, nil
		},
		FotosDe: func(_ context.Context, _ int64) ([]model.Foto, error) {
			fotos := make([]model.Foto, 8)
			for i := range fotos {
				fotos[i] = fotoEn(int64(i+1), base.Add(time.Duration(i)*time.Minute))
			}
			return fotos, nil
		},
	}

	fotos := agg.Recolectar(context.Background(), 99)
	require.Len(t, fotos, MaxFotosVehiculo)
	assert.Equal(t, int64(8), fotos[0].ID, "newest first")
}

func TestRecolectarDegradaAnteFallos(t *testing.T) {
	agg := FotosVehiculo{
		PiezasDe: func(_ context.Context, _ int64) ([]model.Pieza, error) {
			return []model.Pieza{{ID: 10}, {ID: 20}}, nil
		},
		FotosDe: func(_ context.Context, idPieza int64) ([]model.Foto, error) {
			if idPieza == 10 {
				return nil, errors.New("timeout")
			}
			return []model.Foto{fotoEn(3, time.Now())}, nil
		},
	}

	fotos := agg.Recolectar(context.Background(), 99)
	assert.Len(t, fotos, 1, "one pieza failing costs its photos, not the batch")
}

func TestRecolectarSinPiezas(t *testing.T) {
	agg := FotosVehiculo{
		PiezasDe: func(_ context.Context, _ int64) ([]model.Pieza, error) {
			return nil, errors.New("no disponible")
		},
		FotosDe: func(_ context.Context, _ int64) ([]model.Foto, error) { return nil, nil },
	}
	assert.Nil(t, agg.Recolectar(context.Background(), 99))
}

func TestRecolectarDeNoVuelveAListarPiezas(t *testing.T) {
	// Callers holding the pieza list already (for the parts count) feed it
	// in directly; PiezasDe must stay untouched.
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	agg := FotosVehiculo{
		PiezasDe: func(_ context.Context, _ int64) ([]model.Pieza, error) {
			t.Fatal("the pieza listing must not be fetched again")
			return nil, nil
		},
		FotosDe: func(_ context.Context, idPieza int64) ([]model.Foto, error) {
			return []model.Foto{fotoEn(idPieza, base)}, nil
		},
	}

	fotos := agg.RecolectarDe(context.Background(), []model.Pieza{{ID: 10}, {ID: 20}})
	require.Len(t, fotos, 2)
	assert.Nil(t, agg.RecolectarDe(context.Background(), nil))
}
