package worker

// enriquecimiento_worker.go
// Processes background enrichment jobs: re-runs the photo/parts-count
// fan-out for one vehicle and publishes the refreshed record on the bus so
// mounted list views update without a full refetch.

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/bus"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/cache"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/joiner"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"
)

// EnriquecimientoWorker re-enriches single vehicles in the background.
type EnriquecimientoWorker struct {
	vehiculos upstream.VehiculosAPI
	piezas    upstream.PiezasAPI
	fotos     upstream.FotosAPI
	mirror    *cache.Mirror[model.Vehiculo]
	eventos   *bus.Bus
}

func NewEnriquecimientoWorker(
	vehiculos upstream.VehiculosAPI,
	piezas upstream.PiezasAPI,
	fotos upstream.FotosAPI,
	mirror *cache.Mirror[model.Vehiculo],
	eventos *bus.Bus,
) *EnriquecimientoWorker {
	return &EnriquecimientoWorker{
		vehiculos: vehiculos,
		piezas:    piezas,
		fotos:     fotos,
		mirror:    mirror,
		eventos:   eventos,
	}
}

// Process fetches the vehicle, aggregates its photos from its piezas, and
// broadcasts the result. Errors are logged and dropped: enrichment is
// fire-and-forget and the next list render will retry naturally.
func (w *EnriquecimientoWorker) Process(ctx context.Context, raw json.RawMessage, _ int) error {
	var payload EnriquecimientoPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("enriquecimiento_worker: invalid payload")
		return nil
	}

	vehiculo, err := w.vehiculos.GetByID(ctx, payload.IDVehiculo)
	if err != nil {
		log.Warn().Err(err).Int64("id_vehiculo", payload.IDVehiculo).
			Msg("enriquecimiento_worker: vehiculo no disponible")
		return nil
	}

	agregador := joiner.FotosVehiculo{
		FotosDe: func(ctx context.Context, idPieza int64) ([]model.Foto, error) {
			return w.fotos.PorPropietario(ctx, upstream.PropietarioFoto{IDPieza: &idPieza})
		},
	}
	// One pieza listing feeds both the count and the photo aggregation.
	if piezas, err := w.piezas.PorVehiculo(ctx, vehiculo.ID); err == nil {
		vehiculo.NumPiezas = len(piezas)
		vehiculo.Fotos = agregador.RecolectarDe(ctx, piezas)
	} else {
		log.Debug().Err(err).Int64("id_vehiculo", vehiculo.ID).
			Msg("enriquecimiento_worker: sin piezas para agregar")
	}

	w.mirror.Upsert(*vehiculo)
	w.eventos.Publicar(bus.VehiculoActualizado{ID: vehiculo.ID, Vehiculo: vehiculo})

	log.Info().Int64("id_vehiculo", vehiculo.ID).Int("fotos", len(vehiculo.Fotos)).
		Msg("enriquecimiento_worker: vehiculo actualizado publicado")
	return nil
}
