package service

import (
	"context"
	"fmt"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/cache"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/dto"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"
)

// transicionesPedido lists the allowed estado transitions. Terminal states
// have no exits; devuelto is only reachable after delivery.
var transicionesPedido = map[model.EstadoPedido][]model.EstadoPedido{
	model.PedidoPendiente: {model.PedidoPagado, model.PedidoCancelado},
	model.PedidoPagado:    {model.PedidoEnviado, model.PedidoCancelado},
	model.PedidoEnviado:   {model.PedidoEntregado},
	model.PedidoEntregado: {model.PedidoDevuelto},
}

// PedidoService is the orders CRUD with estado-transition validation.
type PedidoService interface {
	Listar(ctx context.Context, filter dto.PedidoFilter) (*dto.PedidoListResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Pedido, error)
	Crear(ctx context.Context, req dto.CrearPedidoRequest) (*model.Pedido, error)
	CambiarEstado(ctx context.Context, id int64, req dto.CambiarEstadoPedidoRequest) (*model.Pedido, error)
}

type pedidoService struct {
	api    upstream.PedidosAPI
	mirror *cache.Mirror[model.Pedido]
}

func NewPedidoService(api upstream.PedidosAPI, mirror *cache.Mirror[model.Pedido]) PedidoService {
	return &pedidoService{api: api, mirror: mirror}
}

func (s *pedidoService) Listar(ctx context.Context, filter dto.PedidoFilter) (*dto.PedidoListResponse, error) {
	pagina, err := s.api.GetAll(ctx, upstream.PedidoFiltro{
		IDCliente: filter.IDCliente,
		IDPieza:   filter.IDPieza,
		Estado:    filter.Estado,
	}, upstream.PaginacionQuery{Page: filter.Page, Limit: filter.Limit, Count: true})
	if err != nil {
		return nil, err
	}
	s.mirror.UpsertTodos(pagina.Data)
	return &dto.PedidoListResponse{Data: pagina.Data, Paginacion: pagina.Paginacion}, nil
}

func (s *pedidoService) ObtenerPorID(ctx context.Context, id int64) (*model.Pedido, error) {
	pedido, err := s.api.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.mirror.Upsert(*pedido)
	return pedido, nil
}

func (s *pedidoService) Crear(ctx context.Context, req dto.CrearPedidoRequest) (*model.Pedido, error) {
	creado, err := s.api.Create(ctx, &model.Pedido{
		IDCliente: req.IDCliente,
		IDPieza:   req.IDPieza,
		Estado:    model.PedidoPendiente,
		Total:     req.Total,
	})
	if err != nil {
		return nil, fmt.Errorf("crear pedido: %w", err)
	}
	s.mirror.Upsert(*creado)
	return creado, nil
}

func (s *pedidoService) CambiarEstado(ctx context.Context, id int64, req dto.CambiarEstadoPedidoRequest) (*model.Pedido, error) {
	destino := model.EstadoPedido(req.Estado)
	if !destino.Valido() {
		return nil, ErrEstadoInvalido
	}

	actual, err := s.api.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !transicionPermitida(actual.Estado, destino) {
		return nil, fmt.Errorf("%w: %s → %s", ErrTransicionPedido, actual.Estado, destino)
	}

	actualizado, err := s.api.Update(ctx, id, map[string]any{"estado": string(destino)})
	if err != nil {
		return nil, fmt.Errorf("cambiar estado del pedido %d: %w", id, err)
	}
	s.mirror.Upsert(*actualizado)
	return actualizado, nil
}

func transicionPermitida(desde, hasta model.EstadoPedido) bool {
	if desde == hasta {
		return true
	}
	for _, permitido := range transicionesPedido[desde] {
		if permitido == hasta {
			return true
		}
	}
	return false
}
