package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/cache"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/dto"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"
)

// PiezaService is the parts CRUD with the two behaviors the UI depends on:
// tolerant datos_adicionales handling and the client-side delete lock — a
// pieza referenced by any non-terminal pedido is rejected before a single
// byte goes upstream. Piezas have no snapshot fallback (cache.PolicyNinguna).
type PiezaService interface {
	Listar(ctx context.Context, filter dto.PiezaFilter) (*dto.PiezaListResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Pieza, error)
	Crear(ctx context.Context, req dto.CrearPiezaRequest) (*model.Pieza, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarPiezaRequest) (*model.Pieza, error)
	Eliminar(ctx context.Context, id int64) error
}

type piezaService struct {
	api     upstream.PiezasAPI
	pedidos upstream.PedidosAPI
	mirror  *cache.Mirror[model.Pieza]
	policy  cache.Policy
}

func NewPiezaService(api upstream.PiezasAPI, pedidos upstream.PedidosAPI, mirror *cache.Mirror[model.Pieza]) PiezaService {
	return &piezaService{api: api, pedidos: pedidos, mirror: mirror, policy: cache.PolicyNinguna()}
}

func (s *piezaService) Listar(ctx context.Context, filter dto.PiezaFilter) (*dto.PiezaListResponse, error) {
	pagina, err := s.api.GetAll(ctx, upstream.PiezaFiltro{
		IDVehiculo: filter.IDVehiculo,
		TipoPieza:  filter.TipoPieza,
		Estado:     filter.Estado,
	}, upstream.PaginacionQuery{Page: filter.Page, Limit: filter.Limit, Count: true})
	if err != nil {
		// No fallback for piezas — the error propagates.
		return nil, err
	}

	s.mirror.UpsertTodos(pagina.Data)
	return &dto.PiezaListResponse{Data: pagina.Data, Paginacion: pagina.Paginacion}, nil
}

func (s *piezaService) ObtenerPorID(ctx context.Context, id int64) (*model.Pieza, error) {
	pieza, err := s.api.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.mirror.Upsert(*pieza)
	return pieza, nil
}

func (s *piezaService) Crear(ctx context.Context, req dto.CrearPiezaRequest) (*model.Pieza, error) {
	if !model.EstadoPieza(req.Estado).Valido() {
		return nil, ErrEstadoInvalido
	}
	// Reject datos_adicionales that neither parses nor repairs: storing it
	// would corrupt every later render of the pieza.
	if _, err := model.ParsearDatosAdicionales(req.DatosAdicionales); err != nil {
		return nil, fmt.Errorf("datos_adicionales: %w", err)
	}

	creada, err := s.api.Create(ctx, &model.Pieza{
		IDVehiculo:       req.IDVehiculo,
		TipoPieza:        req.TipoPieza,
		Descripcion:      req.Descripcion,
		RefOEM:           req.RefOEM,
		Estado:           model.EstadoPieza(req.Estado),
		PrecioVenta:      req.PrecioVenta,
		PrecioCoste:      req.PrecioCoste,
		DatosAdicionales: req.DatosAdicionales,
	})
	if err != nil {
		return nil, fmt.Errorf("crear pieza: %w", err)
	}

	s.mirror.Upsert(*creada)
	return creada, nil
}

func (s *piezaService) Actualizar(ctx context.Context, id int64, req dto.ActualizarPiezaRequest) (*model.Pieza, error) {
	cambios := req.Cambios()
	if estado, ok := cambios["estado"].(string); ok && !model.EstadoPieza(estado).Valido() {
		return nil, ErrEstadoInvalido
	}

	actualizada, err := s.api.Update(ctx, id, cambios)
	if err != nil {
		return nil, fmt.Errorf("actualizar pieza %d: %w", id, err)
	}

	s.mirror.Upsert(*actualizada)
	return actualizada, nil
}

// Eliminar applies the lock check first: one pedidos lookup, and any
// non-terminal pedido blocks the delete with no upstream delete issued.
func (s *piezaService) Eliminar(ctx context.Context, id int64) error {
	pedidos, err := s.pedidos.PorPieza(ctx, id)
	if err != nil {
		return fmt.Errorf("comprobar pedidos de la pieza %d: %w", id, err)
	}
	for _, p := range pedidos {
		if !p.Estado.Terminal() {
			log.Info().Int64("id_pieza", id).Int64("id_pedido", p.ID).Str("estado", string(p.Estado)).
				Msg("piezas: eliminación bloqueada por pedido activo")
			return ErrPiezaBloqueada
		}
	}

	if err := s.api.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar pieza %d: %w", id, err)
	}
	s.mirror.Remove(id)
	return nil
}
