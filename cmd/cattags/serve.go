package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cattags/config"
	_ "cattags/docs"
	"cattags/internal/adapters/cataas"
	deliveryhttp "cattags/internal/delivery/http"
	"cattags/internal/delivery/http/controllers"
	"cattags/internal/domain"
	"cattags/internal/repository/badgerdb"
	"cattags/internal/repository/postgres"
	"cattags/internal/services"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger := config.NewLogger(cfg.Environment)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		tagRepo, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeStore(); err != nil {
				logger.Error("failed to close store", "error", err)
			}
		}()
		logger.Info("store ready", "driver", cfg.StoreDriver)

		fetcher, err := cataas.NewHTTPFetcher(&http.Client{Timeout: cfg.UpstreamTimeout}, cfg.UpstreamBaseURL)
		if err != nil {
			return fmt.Errorf("failed to create upstream client: %w", err)
		}

		tagService := services.NewTagService(tagRepo, fetcher)
		tagController := controllers.NewTagController(logger, tagService)

		server := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           deliveryhttp.NewHandler(logger, cfg.AllowedOrigins, tagController),
			ReadHeaderTimeout: 5 * time.Second,
		}
		return run(ctx, logger, server)
	},
}

func run(ctx context.Context, logger *slog.Logger, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("gracefully shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	logger.Info("server shutdown complete")
	return nil
}

// openStore returns the tag repository selected by STORE_DRIVER and a close func.
func openStore(ctx context.Context, cfg *config.Config) (domain.TagRepository, func() error, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverBadger:
		db, err := badgerdb.Open(cfg.BadgerPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open badger store: %w", err)
		}
		return badgerdb.NewTagRepository(db), db.Close, nil
	default:
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		return postgres.NewTagRepository(db), db.Close, nil
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
