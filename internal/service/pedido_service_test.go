package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/cache"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/dto"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

func nuevoPedidoService(api *stubPedidosAPI) PedidoService {
	return NewPedidoService(api, cache.NewMirror[model.Pedido]())
}

func TestCrearPedidoArrancaPendiente(t *testing.T) {
	api := &stubPedidosAPI{}
	svc := nuevoPedidoService(api)

	pedido, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
		IDCliente: 1, IDPieza: 5, Total: decimal.NewFromInt(120),
	})
	require.NoError(t, err)
	assert.Equal(t, model.PedidoPendiente, pedido.Estado)
}

func TestCambiarEstadoTransicionesValidas(t *testing.T) {
	casos := []struct {
		desde, hasta model.EstadoPedido
	}{
		{model.PedidoPendiente, model.PedidoPagado},
		{model.PedidoPendiente, model.PedidoCancelado},
		{model.PedidoPagado, model.PedidoEnviado},
		{model.PedidoPagado, model.PedidoCancelado},
		{model.PedidoEnviado, model.PedidoEntregado},
		{model.PedidoEntregado, model.PedidoDevuelto},
	}
	for _, c := range casos {
		t.Run(string(c.desde)+"_a_"+string(c.hasta), func(t *testing.T) {
			api := &stubPedidosAPI{pedidos: []model.Pedido{{ID: 1, Estado: c.desde}}}
			svc := nuevoPedidoService(api)

			pedido, err := svc.CambiarEstado(context.Background(), 1,
				dto.CambiarEstadoPedidoRequest{Estado: string(c.hasta)})
			require.NoError(t, err)
			assert.Equal(t, c.hasta, pedido.Estado)
		})
	}
}

func TestCambiarEstadoTransicionesInvalidas(t *testing.T) {
	casos := []struct {
		desde, hasta model.EstadoPedido
	}{
		{model.PedidoPendiente, model.PedidoEnviado},
		{model.PedidoPendiente, model.PedidoEntregado},
		{model.PedidoPagado, model.PedidoDevuelto},
		{model.PedidoCancelado, model.PedidoPagado},
		{model.PedidoDevuelto, model.PedidoPendiente},
		{model.PedidoEnviado, model.PedidoCancelado},
	}
	for _, c := range casos {
		t.Run(string(c.desde)+"_a_"+string(c.hasta), func(t *testing.T) {
			api := &stubPedidosAPI{pedidos: []model.Pedido{{ID: 1, Estado: c.desde}}}
			svc := nuevoPedidoService(api)

			_, err := svc.CambiarEstado(context.Background(), 1,
				dto.CambiarEstadoPedidoRequest{Estado: string(c.hasta)})
			assert.ErrorIs(t, err, ErrTransicionPedido)
		})
	}
}

func TestCambiarEstadoMismoEstadoEsNoOp(t *testing.T) {
	api := &stubPedidosAPI{pedidos: []model.Pedido{{ID: 1, Estado: model.PedidoPagado}}}
	svc := nuevoPedidoService(api)

	pedido, err := svc.CambiarEstado(context.Background(), 1,
		dto.CambiarEstadoPedidoRequest{Estado: "pagado"})
	require.NoError(t, err)
	assert.Equal(t, model.PedidoPagado, pedido.Estado)
}

func TestCambiarEstadoDesconocido(t *testing.T) {
	api := &stubPedidosAPI{pedidos: []model.Pedido{{ID: 1, Estado: model.PedidoPendiente}}}
	svc := nuevoPedidoService(api)

	_, err := svc.CambiarEstado(context.Background(), 1,
		dto.CambiarEstadoPedidoRequest{Estado: "volando"})
	assert.ErrorIs(t, err, ErrEstadoInvalido)
}
