package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/bowling-catalog/internal/catalog"
	"github.com/rogerio-castellano/bowling-catalog/internal/config"
	api "github.com/rogerio-castellano/bowling-catalog/internal/http"
	"github.com/rogerio-castellano/bowling-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/bowling-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/bowling-catalog/internal/logger"
	"github.com/rogerio-castellano/bowling-catalog/internal/seed"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log := logger.Setup(cfg.AppEnv)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, closeStore, err := openStore(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer closeStore()

		if cfg.SeedOnStart || cfg.StoreDriver == config.DriverMemory {
			if _, err := seed.Run(ctx, store, log); err != nil {
				return err
			}
		}

		handlers.SetCatalogService(catalog.NewService(store))

		limiter := rl.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go limiter.StartVisitorCleanupLoop(ctx)

		srv := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           api.NewRouter(limiter.Middleware),
			ReadHeaderTimeout: 5 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("server running", "addr", cfg.HTTPAddr, "env", cfg.AppEnv)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
