// Command server loads the canonical race results and serves the report API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/race-results-etl/internal/adapter/http"
	"github.com/couchcryptid/race-results-etl/internal/config"
	"github.com/couchcryptid/race-results-etl/internal/dataset"
	"github.com/couchcryptid/race-results-etl/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	data, err := dataset.Load(dataset.Options{Path: cfg.ResultsCSV, RetainDNF: cfg.RetainDNF})
	if err != nil {
		logger.Error("load dataset", "error", err)
		os.Exit(1)
	}
	metrics.DatasetSize.Set(float64(data.Len()))

	countries, err := dataset.LoadCountries(cfg.CountryCSV)
	if err != nil {
		logger.Error("load country table", "error", err)
		os.Exit(1)
	}

	logger.Info("dataset loaded",
		"records", data.Len(),
		"countries", countries.Len(),
		"retain_dnf", cfg.RetainDNF,
	)

	srv := httpadapter.NewServer(cfg, data, countries, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
