package worker

// retry_cron.go
// Background goroutine that re-queues WooCommerce sync jobs whose backoff
// window has elapsed. Failed woo jobs are parked in a Redis sorted set
// scored by their next-retry time; the cron moves the due ones back onto
// the queue. Uses the circuit breaker state to avoid hammering a downed
// upstream.

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/infra"
)

const (
	retryTickInterval = 30 * time.Second
	retryBatchSize    = 10

	// MaxWooRetries bounds the retry flow before a job goes to the DLQ.
	MaxWooRetries = 5

	wooDelayedSet = "jobs:woo_sync:delayed"
)

// scheduleWooRetry parks a failed woo job in the delayed set with
// exponential backoff, or moves it to the DLQ once retries are exhausted.
func scheduleWooRetry(ctx context.Context, rdb *redis.Client, job Job, cause error) {
	job.Attempts++

	if job.Attempts >= MaxWooRetries {
		log.Error().Int("attempts", job.Attempts).Err(cause).
			Msg("retry_cron: max retries exceeded, moving woo job to DLQ")
		SendToDLQ(ctx, rdb, QueueWooSync, job.Type, job.Payload,
			fmt.Sprintf("max retries (%d) exceeded: %s", MaxWooRetries, cause), job.Attempts)
		return
	}

	encoded, err := json.Marshal(job)
	if err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to marshal job for retry")
		return
	}

	nextRetry := time.Now().Add(computeRetryBackoff(job.Attempts))
	if err := rdb.ZAdd(ctx, wooDelayedSet, redis.Z{
		Score:  float64(nextRetry.Unix()),
		Member: string(encoded),
	}).Err(); err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to park woo job")
		return
	}

	log.Warn().Int("attempts", job.Attempts).Time("next_retry_at", nextRetry).Err(cause).
		Msg("retry_cron: woo sync failed, scheduled next attempt")
}

// computeRetryBackoff grows 1m, 2m, 4m, 8m… per attempt.
func computeRetryBackoff(attempts int) time.Duration {
	return time.Minute << uint(attempts-1)
}

// RetryCronConfig holds all dependencies for the retry goroutine.
type RetryCronConfig struct {
	RDB *redis.Client
	CB  *infra.CircuitBreaker
}

// StartRetryCron launches a background goroutine that ticks every 30s and
// re-queues due woo jobs. It respects the context for graceful shutdown.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processRetries(ctx, cfg)
			}
		}
	}()
}

func processRetries(ctx context.Context, cfg RetryCronConfig) {
	// If CB is open, skip entirely — don't hammer a downed upstream
	if cfg.CB != nil && cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("retry_cron: circuit breaker is open, skipping tick")
		return
	}

	now := strconv.FormatInt(time.Now().Unix(), 10)
	due, err := cfg.RDB.ZRangeByScore(ctx, wooDelayedSet, &redis.ZRangeBy{
		Min: "-inf", Max: now, Count: retryBatchSize,
	}).Result()
	if err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to query delayed jobs")
		return
	}
	if len(due) == 0 {
		return
	}

	log.Info().Int("count", len(due)).Msg("retry_cron: re-queuing due woo jobs")

	for _, raw := range due {
		// Remove first so a crash can lose a retry but never duplicate it.
		if removed, err := cfg.RDB.ZRem(ctx, wooDelayedSet, raw).Result(); err != nil || removed == 0 {
			continue
		}
		if err := cfg.RDB.LPush(ctx, QueueWooSync, raw).Err(); err != nil {
			log.Error().Err(err).Msg("retry_cron: failed to re-queue woo job")
		}
	}
}
