package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/dto"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/worker"
)

// IncidenciaService is the incident-report CRUD; creation can fan out a
// notification email through the worker queue.
type IncidenciaService interface {
	Listar(ctx context.Context, filter dto.IncidenciaFilter) (*dto.IncidenciaListResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Incidencia, error)
	Crear(ctx context.Context, req dto.CrearIncidenciaRequest) (*model.Incidencia, error)
	CambiarEstado(ctx context.Context, id int64, req dto.CambiarEstadoIncidenciaRequest) (*model.Incidencia, error)
}

type incidenciaService struct {
	api        upstream.IncidenciasAPI
	dispatcher *worker.Dispatcher
}

func NewIncidenciaService(api upstream.IncidenciasAPI, dispatcher *worker.Dispatcher) IncidenciaService {
	return &incidenciaService{api: api, dispatcher: dispatcher}
}

func (s *incidenciaService) Listar(ctx context.Context, filter dto.IncidenciaFilter) (*dto.IncidenciaListResponse, error) {
	pagina, err := s.api.GetAll(ctx, upstream.IncidenciaFiltro{
		IDVehiculo: filter.IDVehiculo,
		IDPedido:   filter.IDPedido,
		Estado:     filter.Estado,
	}, upstream.PaginacionQuery{Page: filter.Page, Limit: filter.Limit, Count: true})
	if err != nil {
		return nil, err
	}
	return &dto.IncidenciaListResponse{Data: pagina.Data, Paginacion: pagina.Paginacion}, nil
}

func (s *incidenciaService) ObtenerPorID(ctx context.Context, id int64) (*model.Incidencia, error) {
	return s.api.GetByID(ctx, id)
}

func (s *incidenciaService) Crear(ctx context.Context, req dto.CrearIncidenciaRequest) (*model.Incidencia, error) {
	creada, err := s.api.Create(ctx, &model.Incidencia{
		IDVehiculo:  req.IDVehiculo,
		IDPedido:    req.IDPedido,
		Tipo:        req.Tipo,
		Descripcion: req.Descripcion,
		Estado:      model.IncidenciaAbierta,
	})
	if err != nil {
		return nil, fmt.Errorf("crear incidencia: %w", err)
	}

	if req.NotificarA != "" && s.dispatcher != nil {
		payload := worker.NotificacionPayload{
			Para:         req.NotificarA,
			Asunto:       fmt.Sprintf("Nueva incidencia: %s", creada.Tipo),
			Cuerpo:       creada.Descripcion,
			IDIncidencia: creada.ID,
		}
		if err := s.dispatcher.EnqueueNotificacion(ctx, payload); err != nil {
			log.Warn().Err(err).Int64("id_incidencia", creada.ID).
				Msg("incidencias: no se pudo encolar la notificación")
		}
	}
	return creada, nil
}

func (s *incidenciaService) CambiarEstado(ctx context.Context, id int64, req dto.CambiarEstadoIncidenciaRequest) (*model.Incidencia, error) {
	if !model.EstadoIncidencia(req.Estado).Valido() {
		return nil, ErrEstadoInvalido
	}
	actualizada, err := s.api.Update(ctx, id, map[string]any{"estado": req.Estado})
	if err != nil {
		return nil, fmt.Errorf("cambiar estado de la incidencia %d: %w", id, err)
	}
	return actualizada, nil
}
