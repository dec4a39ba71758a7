package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/flicky/ecom-admin-console/internal/config"
	"github.com/flicky/ecom-admin-console/internal/session"
	"github.com/flicky/ecom-admin-console/internal/stubapi"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}
	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	gin.SetMode(gin.ReleaseMode)

	store := stubapi.NewStore()
	stubapi.Seed(store)
	log.Info("seeded in-memory store")

	opts := stubapi.Options{Log: log}
	if cfg.Server.RequireAuth {
		issuer, err := session.NewIssuer(cfg.Session.JWTSecret, cfg.Session.TTL)
		if err != nil {
			log.Error("create token issuer", "error", err)
			os.Exit(1)
		}
		opts.Issuer = issuer
		log.Info("bearer token checks enabled")
	}
	router := stubapi.NewRouter(store, opts)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	log.Info("server stopped")
}
