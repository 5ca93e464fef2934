package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueEnriquecimiento = "jobs:enriquecimiento"
	QueueWooSync         = "jobs:woo_sync"
	QueueNotificacion    = "jobs:notificacion"
)

// Job is the generic envelope for all async tasks. Attempts counts prior
// failed executions (retry bookkeeping for the woo sync flow).
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnriquecimientoPayload asks for a background re-enrichment of one vehicle;
// the result is published on the bus, not written anywhere upstream.
type EnriquecimientoPayload struct {
	IDVehiculo int64 `json:"id_vehiculo"`
}

// WooSyncPayload pushes one pieza to the WooCommerce store.
type WooSyncPayload struct {
	IDPieza int64 `json:"id_pieza"`
}

// NotificacionPayload is an incidencia notification email.
type NotificacionPayload struct {
	Para         string `json:"para"`
	Asunto       string `json:"asunto"`
	Cuerpo       string `json:"cuerpo"`
	IDIncidencia int64  `json:"id_incidencia"`
}

// EnqueueEnriquecimiento pushes a background enrichment job.
func (d *Dispatcher) EnqueueEnriquecimiento(ctx context.Context, idVehiculo int64) error {
	return d.enqueue(ctx, QueueEnriquecimiento, "enriquecimiento", EnriquecimientoPayload{IDVehiculo: idVehiculo}, 0)
}

// EnqueueWooSync pushes a WooCommerce publication job.
func (d *Dispatcher) EnqueueWooSync(ctx context.Context, idPieza int64) error {
	return d.enqueue(ctx, QueueWooSync, "woo_sync", WooSyncPayload{IDPieza: idPieza}, 0)
}

// EnqueueNotificacion pushes an incidencia email job.
func (d *Dispatcher) EnqueueNotificacion(ctx context.Context, payload NotificacionPayload) error {
	return d.enqueue(ctx, QueueNotificacion, "notificacion", payload, 0)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload any, attempts int) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data, Attempts: attempts}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// JobHandler processes one dequeued payload. A returned error means the job
// failed and enters the retry flow of its queue (woo sync) or is dropped
// with a log line (enrichment and notifications are fire-and-forget).
type JobHandler interface {
	Process(ctx context.Context, payload json.RawMessage, attempts int) error
}

// WorkerHandlers wires one handler per queue. Wired at the composition root
// so the pool has full access to all infrastructure dependencies.
type WorkerHandlers struct {
	Enriquecimiento JobHandler
	WooSync         JobHandler
	Notificacion    JobHandler
}

func (h *WorkerHandlers) para(queue string) JobHandler {
	switch queue {
	case QueueEnriquecimiento:
		return h.Enriquecimiento
	case QueueWooSync:
		return h.WooSync
	case QueueNotificacion:
		return h.Notificacion
	}
	return nil
}

// StartWorkerPool launches numWorkers goroutines consuming all three queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, id int) {
	queues := []string{QueueEnriquecimiento, QueueWooSync, QueueNotificacion}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, handlers, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, handlers *WorkerHandlers, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	handler := handlers.para(queue)
	if handler == nil {
		log.Error().Str("queue", queue).Str("type", job.Type).Msg("no handler for queue")
		return
	}

	log.Info().Str("type", job.Type).Str("queue", queue).Int("attempts", job.Attempts).Msg("processing job")

	if err := handler.Process(ctx, job.Payload, job.Attempts); err != nil {
		if queue == QueueWooSync {
			scheduleWooRetry(ctx, rdb, job, err)
			return
		}
		log.Error().Err(err).Str("queue", queue).Str("type", job.Type).Msg("job failed")
	}
}
