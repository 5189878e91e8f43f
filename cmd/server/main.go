// @title           Permit Portal API
// @version         1.0
// @description     Building-permit projects, their documents and the accounts that own them.
// @host            localhost:8080
// @schemes         http https
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"permit-portal/docs"
	"permit-portal/internal/api"
	"permit-portal/internal/config"
	"permit-portal/internal/database"
	"permit-portal/internal/logging"
	"permit-portal/internal/storage"
	"permit-portal/internal/websocket"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.Log.Format, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wsHub := websocket.NewHub(logger.With("component", "websocket"))
	go wsHub.Run(ctx)

	store := database.NewStore(wsHub)
	memStorage := storage.NewMemoryStorage()
	server := api.NewServer(cfg, store, memStorage, wsHub, logger)

	if err := server.SeedAdmin(ctx); err != nil {
		logger.Error(ctx, "failed to seed admin account", "error", err)
		os.Exit(1)
	}

	prometheus.MustRegister(api.NewStoreCollector(store, memStorage))
	docs.SwaggerInfo.Host = cfg.AppHost

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info(ctx, "starting server", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "graceful shutdown failed", "error", err)
	}
}
