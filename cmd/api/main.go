package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mem "vet-clinic/internal/adapters/storage/memory"
	"vet-clinic/internal/platform/config"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"
	"vet-clinic/internal/router"
)

// @title       Vet Clinic API
// @version     1.0
// @description Dueños, mascotas, consultas, medicamentos, pedidos y promociones de la clínica.
// @BasePath    /
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    cfg.AppName,
	})
	for _, w := range cfg.Warnings {
		log.Warn("config", map[string]any{"warning": w})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := mem.NewStore()
	if cfg.SeedFixtures {
		if err := mem.Seed(ctx, store); err != nil {
			// sin datos de ejemplo igual se puede operar
			log.Error("seed failed", map[string]any{"err": err.Error()})
		}
	}

	rt := router.NewRouter(router.Options{
		Log:          log,
		Metrics:      metrics.New(),
		Store:        store,
		RefreshDelay: cfg.RefreshDelay,
	})
	defer rt.Close()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      rt,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr(), "seed": cfg.SeedFixtures})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err.Error()})
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", map[string]any{"err": err.Error()})
			return err
		}
	}
	return nil
}
