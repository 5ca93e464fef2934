package worker

// notificacion_worker.go
// Processes incidencia notification jobs from QueueNotificacion.

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// NotificacionWorker sends incidencia emails via SMTP.
type NotificacionWorker struct {
	mailer *Mailer
}

func NewNotificacionWorker(mailer *Mailer) *NotificacionWorker {
	return &NotificacionWorker{mailer: mailer}
}

// Process sends the notification. Failures are logged, not retried — an
// incidencia email is informative, the incidencia itself is already stored.
func (w *NotificacionWorker) Process(_ context.Context, raw json.RawMessage, _ int) error {
	var payload NotificacionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notificacion_worker: invalid payload")
		return nil
	}
	if payload.Para == "" {
		log.Warn().Msg("notificacion_worker: destinatario vacío — skipping")
		return nil
	}

	if err := w.mailer.Enviar(payload.Para, payload.Asunto, payload.Cuerpo); err != nil {
		log.Error().Err(err).Str("para", payload.Para).Int64("id_incidencia", payload.IDIncidencia).
			Msg("notificacion_worker: failed to send email")
		return nil
	}
	log.Info().Str("para", payload.Para).Int64("id_incidencia", payload.IDIncidencia).
		Msg("notificacion_worker: notificacion enviada")
	return nil
}
