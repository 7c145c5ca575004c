// cmd/dialog-server/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	commonaws "dining-concierge/internal/common/aws"
	"dining-concierge/internal/common/config"
	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/models"
	turnhandler "dining-concierge/internal/workers/dialog/turn-handler"
)

type turnServer struct {
	handler *turnhandler.Handler
	logger  *zap.Logger
}

func (s *turnServer) handleTurn(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set("X-Request-ID", requestID)

	var event models.TurnEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.handler.Execute(r.Context(), &event)
	if err != nil {
		if errors.Is(err, turnhandler.ErrUnknownPhase) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("turn failed", zap.Error(err), zap.String("requestId", requestID))
		writeError(w, http.StatusInternalServerError, "turn processing failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting dialog server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue, err := commonaws.NewSQSQueue(ctx, cfg.AWS.Region, cfg.AWS.SQS.QueueURL)
	if err != nil {
		zapLog.Fatal("sqs client failed", zap.Error(err))
	}

	dispatcher := turnhandler.NewDispatcher(queue, log)

	handler, err := turnhandler.NewHandler(
		&turnhandler.Config{Timezone: cfg.Dialog.Timezone},
		dispatcher, log,
	)
	if err != nil {
		zapLog.Fatal("turn handler init failed", zap.Error(err))
	}

	srv := &turnServer{handler: handler, logger: zapLog}

	r := mux.NewRouter()
	r.HandleFunc("/v1/dialog/turns", srv.handleTurn).Methods(http.MethodPost)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: r,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		zapLog.Info("Shutdown signal received, stopping server...")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	zapLog.Info("Dialog server listening", zap.String("addr", cfg.Server.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zapLog.Fatal("server error", zap.Error(err))
	}

	zapLog.Info("Dialog server stopped gracefully")
}
