package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/bus"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/infra"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/worker"
)

// Health returns a JSON health check response.
// Checks Redis connectivity and reports the backend circuit state; never
// exposes credentials or internals.
func Health(rdb *redis.Client, cb *infra.CircuitBreaker, b *bus.Bus) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		// Jobs parked in the woo DLQ signal a sync problem worth surfacing.
		var dlqWoo int64
		if redisStatus == "connected" {
			dlqWoo, _ = worker.DLQLength(ctx, rdb, worker.QueueWooSync)
		}

		status := http.StatusOK
		if redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":           status == http.StatusOK,
			"redis":        redisStatus,
			"backend":      cb.State().String(),
			"suscriptores": b.Suscriptores(),
			"dlq_woo":      dlqWoo,
		})
	}
}
