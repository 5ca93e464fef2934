package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/bus"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/cache"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/config"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/infra"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/router"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	snapshots, err := nuevoSnapshotStore(cfg, rdb)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open snapshot store")
	}

	backendCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	eventos := bus.New()
	dispatcher := worker.NewDispatcher(rdb)

	var mirrorVehiculos *cache.Mirror[model.Vehiculo]
	if cfg.CacheCapacity > 0 {
		mirrorVehiculos = cache.NewMirrorConCapacidad[model.Vehiculo](cfg.CacheCapacity)
	} else {
		mirrorVehiculos = cache.NewMirror[model.Vehiculo]()
	}

	// Start goroutine worker pool for async tasks (photo enrichment, woo
	// sync, incident notifications). Worker handlers are wired here
	// (composition root) so that the pool has full access to all
	// infrastructure dependencies.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := upstream.NewClient(cfg.BackendURL, backendCB)
	mailer := worker.NewMailer(cfg)

	workerHandlers := &worker.WorkerHandlers{
		Enriquecimiento: worker.NewEnriquecimientoWorker(client.Vehiculos(), client.Piezas(), client.Fotos(), mirrorVehiculos, eventos),
		WooSync:         worker.NewWooSyncWorker(client.Piezas(), client.Fotos(), client.Woo()),
		Notificacion:    worker.NewNotificacionWorker(mailer),
	}
	worker.StartWorkerPool(ctx, rdb, workerHandlers, cfg.WorkerPoolSize)
	worker.StartRetryCron(ctx, worker.RetryCronConfig{RDB: rdb, CB: backendCB})

	r := router.New(cfg, &router.Deps{
		RDB:             rdb,
		BackendCB:       backendCB,
		Snapshots:       snapshots,
		Eventos:         eventos,
		Dispatcher:      dispatcher,
		MirrorVehiculos: mirrorVehiculos,
	})

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		Handler:     r,
		ReadTimeout: 10 * time.Second,
		// No WriteTimeout: the SSE event stream stays open indefinitely.
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("catalog BFF listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}

func nuevoSnapshotStore(cfg *config.Config, rdb *redis.Client) (cache.SnapshotStore, error) {
	switch cfg.SnapshotBackend {
	case "redis":
		return cache.NewRedisStore(rdb), nil
	default:
		return cache.NewSQLiteStore(cfg.SnapshotPath)
	}
}
