package worker

// woo_worker.go
// Processes WooCommerce publication jobs: loads the pieza with its photos,
// builds the store payload and pushes it through the upstream's woo bridge.
// A returned error enters the retry/backoff flow (see retry_cron.go).

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"
)

// WooSyncWorker publishes piezas to the WooCommerce store.
type WooSyncWorker struct {
	piezas upstream.PiezasAPI
	fotos  upstream.FotosAPI
	woo    upstream.WooAPI
}

func NewWooSyncWorker(piezas upstream.PiezasAPI, fotos upstream.FotosAPI, woo upstream.WooAPI) *WooSyncWorker {
	return &WooSyncWorker{piezas: piezas, fotos: fotos, woo: woo}
}

func (w *WooSyncWorker) Process(ctx context.Context, raw json.RawMessage, attempts int) error {
	var payload WooSyncPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Malformed payloads never succeed — drop instead of retrying.
		log.Error().Err(err).Msg("woo_worker: invalid payload")
		return nil
	}

	pieza, err := w.piezas.GetByID(ctx, payload.IDPieza)
	if err != nil {
		if upstream.EsNoEncontrado(err) {
			log.Warn().Int64("id_pieza", payload.IDPieza).Msg("woo_worker: pieza eliminada, descartando job")
			return nil
		}
		return fmt.Errorf("woo_worker: cargar pieza %d: %w", payload.IDPieza, err)
	}

	// The photo fetch is best-effort: the product publishes without image.
	if fotos, err := w.fotos.PorPropietario(ctx, upstream.PropietarioFoto{IDPieza: &pieza.ID}); err == nil {
		pieza.Fotos = fotos
	}

	estado, err := w.woo.Publicar(ctx, upstream.ProductoDesdePieza(*pieza))
	if err != nil {
		return fmt.Errorf("woo_worker: publicar pieza %d: %w", pieza.ID, err)
	}

	log.Info().Int64("id_pieza", pieza.ID).Interface("id_producto_woo", estado.IDProductoWoo).
		Int("attempts", attempts).Msg("woo_worker: pieza sincronizada")
	return nil
}
