package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/bus"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/cache"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/dto"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/filtro"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/joiner"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/worker"
)

const claveSnapshotVehiculos = "vehiculos"

// VehiculoService owns the vehicle aggregation flow: fetch one upstream
// page, write it through to the mirror + snapshot, enrich it with photos and
// parts counts, then narrow it with the client-side filters. Vehicles are
// the only resource with a snapshot fallback (declared in cache.Policy).
type VehiculoService interface {
	Listar(ctx context.Context, filter dto.VehiculoFilter) (*dto.VehiculoListResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Vehiculo, error)
	Crear(ctx context.Context, req dto.CrearVehiculoRequest) (*model.Vehiculo, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarVehiculoRequest) (*model.Vehiculo, error)
	Eliminar(ctx context.Context, id int64) error
}

type vehiculoService struct {
	api        upstream.VehiculosAPI
	piezas     upstream.PiezasAPI
	fotos      upstream.FotosAPI
	mirror     *cache.Mirror[model.Vehiculo]
	snapshots  cache.SnapshotStore
	policy     cache.Policy
	dispatcher *worker.Dispatcher
	eventos    *bus.Bus
}

func NewVehiculoService(
	api upstream.VehiculosAPI,
	piezas upstream.PiezasAPI,
	fotos upstream.FotosAPI,
	mirror *cache.Mirror[model.Vehiculo],
	snapshots cache.SnapshotStore,
	dispatcher *worker.Dispatcher,
	eventos *bus.Bus,
) VehiculoService {
	return &vehiculoService{
		api:        api,
		piezas:     piezas,
		fotos:      fotos,
		mirror:     mirror,
		snapshots:  snapshots,
		policy:     cache.PolicyVehiculos(),
		dispatcher: dispatcher,
		eventos:    eventos,
	}
}

func (s *vehiculoService) Listar(ctx context.Context, filter dto.VehiculoFilter) (*dto.VehiculoListResponse, error) {
	pagina, err := s.api.GetAll(ctx, upstream.VehiculoFiltro{Estado: filter.Estado},
		upstream.PaginacionQuery{Page: filter.Page, Limit: filter.Limit, Count: true})
	if err != nil {
		return s.listarDesdeSnapshot(ctx, filter, err)
	}

	// Write-through: mirror + persisted snapshot on every successful fetch.
	s.mirror.UpsertTodos(pagina.Data)
	cache.GuardarSnapshot(ctx, s.snapshots, claveSnapshotVehiculos, pagina.Data, &pagina.Paginacion)

	enriquecidos := s.enriquecer(ctx, pagina.Data)
	return s.filtrar(enriquecidos, pagina.Paginacion, filter, false), nil
}

// listarDesdeSnapshot serves the persisted snapshot when the fetch failed
// and the snapshot is still inside the policy TTL; otherwise the original
// fetch error propagates — very stale data is worse than an error state.
func (s *vehiculoService) listarDesdeSnapshot(ctx context.Context, filter dto.VehiculoFilter, cause error) (*dto.VehiculoListResponse, error) {
	if s.policy.Fallback != cache.FallbackSnapshot {
		return nil, cause
	}
	data, pag, err := cache.RecuperarSnapshot[model.Vehiculo](ctx, s.snapshots, claveSnapshotVehiculos, s.policy.TTL)
	if err != nil {
		log.Warn().Err(err).AnErr("causa", cause).Msg("vehiculos: snapshot no utilizable, propagando error original")
		return nil, cause
	}

	log.Info().Int("vehiculos", len(data)).Msg("vehiculos: sirviendo snapshot tras fallo de red")
	bloque := model.Paginacion{Page: filter.Page, Limit: filter.Limit}
	if pag != nil {
		bloque = *pag
	}
	return s.filtrar(data, bloque.Normalizar(len(data)), filter, true), nil
}

func (s *vehiculoService) filtrar(items []model.Vehiculo, pag model.Paginacion, filter dto.VehiculoFilter, desdeCache bool) *dto.VehiculoListResponse {
	filtrados := filtro.FiltrarVehiculos(items, filtro.FiltrosVehiculo{
		Busqueda:    filter.Busqueda,
		Marca:       filter.Marca,
		Modelo:      filter.Modelo,
		Combustible: filter.Combustible,
		Estado:      filter.Estado,
		AnioDesde:   filter.AnioDesde,
		AnioHasta:   filter.AnioHasta,
	})
	return &dto.VehiculoListResponse{
		Data:       filtrados,
		Paginacion: filtro.RecalcularPaginacion(len(filtrados), pag.Limit, pag.Page),
		DesdeCache: desdeCache,
	}
}

// enriquecer attaches the aggregated photo set and the parts count to every
// vehicle of the page, in parallel, preserving order. Per-item failures
// degrade to an un-enriched vehicle. The pieza listing is fetched once per
// vehicle and feeds both the count and the photo aggregation.
func (s *vehiculoService) enriquecer(ctx context.Context, items []model.Vehiculo) []model.Vehiculo {
	agregador := joiner.FotosVehiculo{
		FotosDe: func(ctx context.Context, idPieza int64) ([]model.Foto, error) {
			return s.fotos.PorPropietario(ctx, upstream.PropietarioFoto{IDPieza: &idPieza})
		},
	}
	return joiner.Enriquecer(ctx, items, 0, func(ctx context.Context, v model.Vehiculo) (model.Vehiculo, error) {
		piezas, err := s.piezas.PorVehiculo(ctx, v.ID)
		if err != nil {
			return v, err
		}
		v.NumPiezas = len(piezas)
		v.Fotos = agregador.RecolectarDe(ctx, piezas)
		return v, nil
	})
}

func (s *vehiculoService) ObtenerPorID(ctx context.Context, id int64) (*model.Vehiculo, error) {
	vehiculo, err := s.api.GetByID(ctx, id)
	if err != nil {
		// Single-item reads fall back to the in-memory mirror only: absence
		// there is a miss, not an error substitute.
		if cached, ok := s.mirror.Get(id); ok {
			log.Debug().Int64("id", id).Msg("vehiculos: sirviendo vehiculo desde mirror")
			return &cached, nil
		}
		return nil, err
	}
	s.mirror.Upsert(*vehiculo)
	return vehiculo, nil
}

func (s *vehiculoService) Crear(ctx context.Context, req dto.CrearVehiculoRequest) (*model.Vehiculo, error) {
	estado := model.EstadoVehiculo(req.Estado)
	if req.Estado == "" {
		estado = model.VehiculoActivo
	}
	if !estado.Valido() {
		return nil, ErrEstadoInvalido
	}

	creado, err := s.api.Create(ctx, &model.Vehiculo{
		Marca:           req.Marca,
		Modelo:          req.Modelo,
		Version:         req.Version,
		AnioFabricacion: req.AnioFabricacion,
		TipoCombustible: req.TipoCombustible,
		Kilometros:      req.Kilometros,
		Matricula:       req.Matricula,
		VIN:             req.VIN,
		IDCliente:       req.IDCliente,
		Estado:          estado,
	})
	if err != nil {
		return nil, fmt.Errorf("crear vehículo: %w", err)
	}

	s.mirror.Upsert(*creado)
	cache.GuardarSnapshot(ctx, s.snapshots, claveSnapshotVehiculos, s.mirror.List(), nil)
	return creado, nil
}

func (s *vehiculoService) Actualizar(ctx context.Context, id int64, req dto.ActualizarVehiculoRequest) (*model.Vehiculo, error) {
	cambios := req.Cambios()
	if estado, ok := cambios["estado"].(string); ok && !model.EstadoVehiculo(estado).Valido() {
		return nil, ErrEstadoInvalido
	}

	actualizado, err := s.api.Update(ctx, id, cambios)
	if err != nil {
		return nil, fmt.Errorf("actualizar vehículo %d: %w", id, err)
	}

	s.mirror.Upsert(*actualizado)
	cache.GuardarSnapshot(ctx, s.snapshots, claveSnapshotVehiculos, s.mirror.List(), nil)

	// Background re-enrichment: mounted lists get the fresh photos via the
	// bus instead of a full refetch.
	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueEnriquecimiento(ctx, id); err != nil {
			log.Warn().Err(err).Int64("id", id).Msg("vehiculos: no se pudo encolar el enriquecimiento")
		}
	}
	return actualizado, nil
}

func (s *vehiculoService) Eliminar(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, id); err != nil {
		// The upstream rejects deletion while piezas reference the vehicle;
		// surface it as the business error, do not auto-resolve.
		if upstream.EsRechazo(err) {
			return ErrVehiculoConPiezas
		}
		return fmt.Errorf("eliminar vehículo %d: %w", id, err)
	}

	s.mirror.Remove(id)
	cache.GuardarSnapshot(ctx, s.snapshots, claveSnapshotVehiculos, s.mirror.List(), nil)
	if s.eventos != nil {
		s.eventos.Publicar(bus.VehiculoActualizado{ID: id, Vehiculo: nil})
	}
	return nil
}
