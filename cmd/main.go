package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/api"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/app"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/credentials"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/session"
)

func main() {
	log := logger.New()
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	store := credentials.NewFileStore(cfg.TokenFile)
	client := api.New(cfg.APIURL, cfg.HTTPTimeout, log)

	manager := session.NewManager(store, client, log)
	couriers := repository.NewCourierRepository(client, manager, log)
	orders := repository.NewOrderRepository(client, manager, couriers, log)

	sessionCtx := app.New(ctx, manager, orders, couriers, log)

	if err := sessionCtx.Hydrate(ctx); err != nil {
		log.Warn("session hydration failed", zap.Error(err))
	}

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	opsServer := &http.Server{
		Addr:         ":" + cfg.OpsPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("ops endpoint listening", zap.String("port", cfg.OpsPort))
		if err := opsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("ops endpoint failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("ops endpoint shutdown failed", zap.Error(err))
	}

	log.Info("stopped")
}
