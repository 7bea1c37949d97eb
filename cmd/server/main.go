package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/spbu-ds-practicum-2025/accounts-service/internal/config"
	"github.com/spbu-ds-practicum-2025/accounts-service/internal/domain"
	"github.com/spbu-ds-practicum-2025/accounts-service/internal/handlers"
	"github.com/spbu-ds-practicum-2025/accounts-service/internal/messaging"
)

func main() {
	// .env is optional; deployments configure via the environment directly
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	store := domain.NewAccountStore()

	// Select the notification sink: RabbitMQ when configured, log otherwise
	var notifier domain.Notifier
	if cfg.RabbitMQ.URL != "" {
		rabbit, err := messaging.NewRabbitMQNotifier(cfg.RabbitMQ)
		if err != nil {
			logger.Fatal("failed to initialize RabbitMQ notifier", zap.Error(err))
		}
		defer rabbit.Close()
		notifier = rabbit
		logger.Info("RabbitMQ notifier initialized",
			zap.String("exchange", cfg.RabbitMQ.Exchange),
			zap.String("routing_key", cfg.RabbitMQ.RoutingKey),
		)
	} else {
		notifier = domain.NewLogNotifier(logger)
		logger.Info("RABBITMQ_URL not set, notifications go to the log")
	}

	engine := domain.NewTransferEngine(store, notifier, logger)
	service := domain.NewAccountsService(store, engine)
	handler := handlers.NewHandler(service, logger)

	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: handler.Router(),
	}

	// Start server in a goroutine
	go func() {
		logger.Info("accounts service starting", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	logger.Info("HTTP server stopped")
}
