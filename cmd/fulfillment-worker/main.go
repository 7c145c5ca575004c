// cmd/fulfillment-worker/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	commonaws "dining-concierge/internal/common/aws"
	"dining-concierge/internal/common/config"
	"dining-concierge/internal/common/database"
	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/common/observability"
	processjob "dining-concierge/internal/workers/fulfillment/process-job"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting fulfillment worker...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("fulfillment-worker", cfg.Observability.JaegerEndpoint)
	defer obs.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Init AWS clients ---
	queue, err := commonaws.NewSQSQueue(ctx, cfg.AWS.Region, cfg.AWS.SQS.QueueURL)
	if err != nil {
		zapLog.Fatal("sqs client failed", zap.Error(err))
	}

	table, err := commonaws.NewRestaurantTable(ctx, cfg.AWS.Region, cfg.AWS.DynamoDB.RestaurantsTable)
	if err != nil {
		zapLog.Fatal("dynamodb client failed", zap.Error(err))
	}

	mail, err := commonaws.NewSESClient(ctx, cfg.AWS.Region, cfg.AWS.SES.FromEmail)
	if err != nil {
		zapLog.Fatal("ses client failed", zap.Error(err))
	}

	// --- Optional duplicate-job guard ---
	var dedup processjob.DedupGuard
	if cfg.Dedup.Enabled {
		var redisClient *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redisClient.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redisClient.Close()

		dedup = processjob.NewRedisDedup(redisClient.Client, time.Duration(cfg.Dedup.TTLSeconds)*time.Second)
		zapLog.Info("Duplicate-job guard enabled")
	}

	search := processjob.NewElasticsearchSearch(esClient.Client, cfg.Search.Index)

	handler := processjob.NewHandler(
		&processjob.Config{
			MaxResults: cfg.Search.MaxResults,
		},
		queue, search, table, mail, dedup, log,
	)

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening", zap.String("addr", cfg.Server.MetricsAddr))
		if err := http.ListenAndServe(cfg.Server.MetricsAddr, nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Poll Loop ---
	pollInterval := time.Duration(cfg.Worker.PollIntervalMS) * time.Millisecond
	runTimeout := time.Duration(cfg.Worker.TimeoutMS) * time.Millisecond
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	zapLog.Info("Polling for jobs", zap.Duration("interval", pollInterval))

	for {
		select {
		case <-sigCh:
			zapLog.Info("Shutdown signal received, stopping worker...")
			cancel()
			zapLog.Info("Fulfillment worker stopped gracefully")
			return
		case <-ticker.C:
			runCtx, runCancel := context.WithTimeout(ctx, runTimeout)
			spanCtx, endSpan := obs.StartSpan(runCtx, "fulfillment.run")

			start := time.Now()
			result, err := handler.RunOnce(spanCtx)
			if err != nil {
				zapLog.Error("run failed, job left on queue", zap.Error(err))
				obs.RecordRun(spanCtx, string(processjob.OutcomeFailed))
				obs.RecordRunDuration(spanCtx, time.Since(start), string(processjob.OutcomeFailed))
			} else {
				obs.RecordRun(spanCtx, string(result.Outcome))
				obs.RecordRunDuration(spanCtx, time.Since(start), string(result.Outcome))
				if result.Outcome != processjob.OutcomeNoMessage {
					zapLog.Info("run finished",
						zap.String("outcome", string(result.Outcome)),
						zap.String("messageId", result.MessageID),
						zap.Int("results", len(result.Results)),
					)
				}
			}

			endSpan()
			runCancel()
		}
	}
}
