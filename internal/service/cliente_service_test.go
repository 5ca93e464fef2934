package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/cache"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/dto"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

func nuevoClienteService(api *stubClientesAPI) (ClienteService, *cache.Mirror[model.Cliente]) {
	mirror := cache.NewMirror[model.Cliente]()
	return NewClienteService(api, mirror), mirror
}

func TestCrearClienteParticularRequiereDNIYNombre(t *testing.T) {
	svc, _ := nuevoClienteService(&stubClientesAPI{})

	_, err := svc.Crear(context.Background(), dto.CrearClienteRequest{
		TipoCliente: "particular", Nombre: "Ana",
	})
	assert.ErrorIs(t, err, ErrClienteIncompleto)

	_, err = svc.Crear(context.Background(), dto.CrearClienteRequest{
		TipoCliente: "particular", DNI: "12345678Z",
	})
	assert.ErrorIs(t, err, ErrClienteIncompleto)
}

func TestCrearClienteEmpresaRequiereCIFYRazonSocial(t *testing.T) {
	svc, _ := nuevoClienteService(&stubClientesAPI{})

	_, err := svc.Crear(context.Background(), dto.CrearClienteRequest{
		TipoCliente: "empresa", RazonSocial: "Talleres Paco SL",
	})
	assert.ErrorIs(t, err, ErrClienteIncompleto)

	_, err = svc.Crear(context.Background(), dto.CrearClienteRequest{
		TipoCliente: "empresa", CIF: "B12345678",
	})
	assert.ErrorIs(t, err, ErrClienteIncompleto)
}

func TestCrearClienteTipoDesconocido(t *testing.T) {
	svc, _ := nuevoClienteService(&stubClientesAPI{})

	_, err := svc.Crear(context.Background(), dto.CrearClienteRequest{
		TipoCliente: "autonomo", Nombre: "Ana", DNI: "12345678Z",
	})
	assert.ErrorIs(t, err, ErrEstadoInvalido)
}

func TestCrearClienteValidoActualizaElMirror(t *testing.T) {
	svc, mirror := nuevoClienteService(&stubClientesAPI{})

	creado, err := svc.Crear(context.Background(), dto.CrearClienteRequest{
		TipoCliente: "particular", Nombre: "Ana", Apellidos: "García", DNI: "12345678Z",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ClienteParticular, creado.TipoCliente)

	cached, ok := mirror.Get(creado.ID)
	require.True(t, ok)
	assert.Equal(t, "Ana", cached.Nombre)
}

func TestObtenerClienteNoCaeAlMirrorTrasCaida(t *testing.T) {
	api := &stubClientesAPI{clientes: []model.Cliente{
		{ID: 1, TipoCliente: model.ClienteParticular, Nombre: "Ana", DNI: "12345678Z"},
	}}
	svc, mirror := nuevoClienteService(api)

	// A successful list populates the mirror first.
	_, err := svc.Listar(context.Background(), dto.ClienteFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	_, ok := mirror.Get(1)
	require.True(t, ok)

	// Cliente reads never degrade to cached data: the fetch error wins even
	// though the mirror holds the entry.
	api.caido = true
	_, err = svc.ObtenerPorID(context.Background(), 1)
	assert.ErrorIs(t, err, errRed)
}

func TestObtenerClienteSinMirrorPropagaElError(t *testing.T) {
	svc, _ := nuevoClienteService(&stubClientesAPI{caido: true})

	_, err := svc.ObtenerPorID(context.Background(), 99)
	assert.ErrorIs(t, err, errRed)
}

func TestListarClientesFiltraPorTipo(t *testing.T) {
	api := &stubClientesAPI{clientes: []model.Cliente{
		{ID: 1, TipoCliente: model.ClienteParticular, Nombre: "Ana"},
		{ID: 2, TipoCliente: model.ClienteEmpresa, RazonSocial: "Talleres Paco SL"},
	}}
	svc, _ := nuevoClienteService(api)

	resp, err := svc.Listar(context.Background(), dto.ClienteFilter{
		TipoCliente: "empresa", Page: 1, Limit: 20,
	})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(2), resp.Data[0].ID)
}

func TestEliminarClienteLimpiaElMirror(t *testing.T) {
	api := &stubClientesAPI{clientes: []model.Cliente{
		{ID: 1, TipoCliente: model.ClienteParticular, Nombre: "Ana"},
	}}
	svc, mirror := nuevoClienteService(api)

	_, err := svc.Listar(context.Background(), dto.ClienteFilter{Page: 1, Limit: 20})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), 1))
	assert.Equal(t, []int64{1}, api.borrados)

	_, ok := mirror.Get(1)
	assert.False(t, ok)
}
