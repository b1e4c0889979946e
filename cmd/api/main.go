package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"hopeworks/internal/domain"
	"hopeworks/internal/http/handlers"
	"hopeworks/internal/http/httpapi"
	"hopeworks/internal/infra"
	"hopeworks/internal/store/memstore"
	"hopeworks/internal/store/pgstore"
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()

	var store domain.Storage
	switch cfg.StorageDriver {
	case infra.DriverPostgres:
		dbpool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer dbpool.Close()

		pg := pgstore.New(dbpool)
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to apply schema")
		}
		store = pg
	default:
		mem := memstore.New()
		if cfg.SeedSampleData {
			if err := mem.Seed(ctx); err != nil {
				logger.Fatal().Err(err).Msg("failed to seed sample data")
			}
		}
		store = mem
	}
	logger.Info().Str("driver", cfg.StorageDriver).Msg("storage ready")

	app := handlers.NewApp(store, logger, cfg)
	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
