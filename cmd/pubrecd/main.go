package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/elc-tools/pubrec/internal/adapter/census"
	httpadapter "github.com/elc-tools/pubrec/internal/adapter/http"
	"github.com/elc-tools/pubrec/internal/config"
	"github.com/elc-tools/pubrec/internal/directory"
	"github.com/elc-tools/pubrec/internal/domain"
	"github.com/elc-tools/pubrec/internal/letter"
	"github.com/elc-tools/pubrec/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	// Template sets are compiled in; a placeholder mismatch between
	// organizations is an authoring defect caught before serving.
	if err := letter.ValidateSets(); err != nil {
		logger.Error("template validation failed", "error", err)
		os.Exit(1)
	}
	if _, ok := letter.SetFor(cfg.TemplateOrg); !ok {
		logger.Error("unknown default template org", "org", cfg.TemplateOrg, "known", letter.Orgs())
		os.Exit(1)
	}

	store := directory.NewStore(cfg.XLSXPath, cfg.SheetNames, logger, metrics)
	if err := store.Load(); err != nil {
		logger.Error("initial directory load failed", "path", cfg.XLSXPath, "error", err)
		os.Exit(1)
	}

	var geocoder domain.Geocoder
	if cfg.GeocoderEnabled {
		client := census.NewClient(cfg.CensusBaseURL, cfg.CensusBenchmark, cfg.CensusVintage, cfg.CensusTimeout, metrics, logger)
		geocoder = census.NewCachedGeocoder(client, cfg.GeocodeCacheSize, metrics)
		metrics.GeocodeEnabled.Set(1)
		logger.Info("census geocoding enabled", "benchmark", cfg.CensusBenchmark, "cache_size", cfg.GeocodeCacheSize, "timeout", cfg.CensusTimeout)
	} else {
		logger.Info("census geocoding disabled; resolution requires manual county/city")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, store, geocoder, metrics, logger, cfg.TemplateOrg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
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
