// Waypoint - Travel Destination Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/waypoint

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/waypoint/internal/api"
	"github.com/tomtom215/waypoint/internal/config"
	"github.com/tomtom215/waypoint/internal/dataset"
	"github.com/tomtom215/waypoint/internal/logging"
	"github.com/tomtom215/waypoint/internal/recommend"
	"github.com/tomtom215/waypoint/internal/supervisor"
	"github.com/tomtom215/waypoint/internal/supervisor/services"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("ratings", cfg.Dataset.RatingsPath).
		Str("users", cfg.Dataset.UsersPath).
		Str("places", cfg.Dataset.PlacesPath).
		Msg("Starting Waypoint")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Waypoint stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	loader, err := dataset.New(&cfg.Dataset)
	if err != nil {
		return err
	}
	defer func() {
		if err := loader.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing dataset loader")
		}
	}()

	table, err := loader.Load(context.Background())
	if err != nil {
		return err
	}

	var opts []recommend.Option
	if cfg.Recommend.RankingCacheTTL > 0 {
		rankings := recommend.NewRankingCache(cfg.Recommend.RankingCacheTTL)
		defer rankings.Close()
		opts = append(opts, recommend.WithRankingProvider(rankings))
	}

	engine, err := recommend.NewEngine(table, engineConfig(&cfg.Recommend), logging.Logger(), opts...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	if cfg.Dataset.RefreshInterval > 0 {
		refresher, err := services.NewRefreshService(loader, engine, cfg.Dataset.RefreshInterval, logging.Logger())
		if err != nil {
			return err
		}
		tree.AddDataService(refresher)
	}

	handler := api.NewHandler(engine, loader, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	serveErr := tree.Run(ctx)

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}
	return serveErr
}

// engineConfig maps the recommend config section onto the engine config.
func engineConfig(cfg *config.RecommendConfig) *recommend.Config {
	ec := recommend.DefaultConfig()
	ec.Seed = cfg.Seed
	ec.BudgetMultiplier = cfg.BudgetMultiplier
	return ec
}
