package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"
)

func ptr(v int64) *int64 { return &v }

func TestMarcarPrincipalDegradaPrimeroALasHermanas(t *testing.T) {
	api := newStubFotosAPI(
		model.Foto{ID: 1, IDPieza: ptr(10), EsPrincipal: true},
		model.Foto{ID: 2, IDPieza: ptr(10)},
		model.Foto{ID: 3, IDPieza: ptr(10)},
	)
	svc := NewFotoService(api)

	foto, err := svc.MarcarPrincipal(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, foto.EsPrincipal)

	// The previous principal was demoted before the promotion.
	require.Equal(t, []int64{1, 2}, api.updates)
	assert.False(t, api.fotos[1].EsPrincipal)
	assert.True(t, api.fotos[2].EsPrincipal)
	assert.False(t, api.fotos[3].EsPrincipal)
}

func TestMarcarPrincipalEsIdempotente(t *testing.T) {
	api := newStubFotosAPI(
		model.Foto{ID: 1, IDPieza: ptr(10), EsPrincipal: true},
		model.Foto{ID: 2, IDPieza: ptr(10)},
	)
	svc := NewFotoService(api)

	_, err := svc.MarcarPrincipal(context.Background(), 2)
	require.NoError(t, err)
	_, err = svc.MarcarPrincipal(context.Background(), 2)
	require.NoError(t, err)

	// Same end state either way: exactly one principal.
	principales := 0
	for _, f := range api.fotos {
		if f.EsPrincipal {
			principales++
		}
	}
	assert.Equal(t, 1, principales)
	assert.True(t, api.fotos[2].EsPrincipal)
}

func TestMarcarPrincipalNoTocaOtrosPropietarios(t *testing.T) {
	api := newStubFotosAPI(
		model.Foto{ID: 1, IDPieza: ptr(10), EsPrincipal: true},
		model.Foto{ID: 2, IDPieza: ptr(20), EsPrincipal: true},
		model.Foto{ID: 3, IDPieza: ptr(10)},
	)
	svc := NewFotoService(api)

	_, err := svc.MarcarPrincipal(context.Background(), 3)
	require.NoError(t, err)

	assert.True(t, api.fotos[2].EsPrincipal, "a different pieza's principal is untouched")
}

func TestMarcarPrincipalFotoInexistente(t *testing.T) {
	svc := NewFotoService(newStubFotosAPI())
	_, err := svc.MarcarPrincipal(context.Background(), 99)
	assert.Error(t, err)
}

func TestSubirExigePropietarioUnico(t *testing.T) {
	svc := NewFotoService(newStubFotosAPI())

	_, err := svc.Subir(context.Background(), upstream.PropietarioFoto{}, "a.jpg", nil)
	assert.ErrorIs(t, err, ErrPropietarioAmbiguo)

	_, err = svc.Subir(context.Background(),
		upstream.PropietarioFoto{IDPieza: ptr(1), IDVehiculo: ptr(2)}, "a.jpg", nil)
	assert.ErrorIs(t, err, ErrPropietarioAmbiguo)

	_, err = svc.Subir(context.Background(), upstream.PropietarioFoto{IDPieza: ptr(1)}, "a.jpg", nil)
	assert.NoError(t, err)
}
