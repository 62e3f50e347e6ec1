// CinemaSwipe - Swipe-to-Rate Movie Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemaswipe

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/cinemaswipe/internal/api"
	"github.com/tomtom215/cinemaswipe/internal/catalog"
	"github.com/tomtom215/cinemaswipe/internal/config"
	"github.com/tomtom215/cinemaswipe/internal/events"
	"github.com/tomtom215/cinemaswipe/internal/logging"
	"github.com/tomtom215/cinemaswipe/internal/metrics"
	"github.com/tomtom215/cinemaswipe/internal/recommend"
	"github.com/tomtom215/cinemaswipe/internal/session"
	"github.com/tomtom215/cinemaswipe/internal/supervisor"
	"github.com/tomtom215/cinemaswipe/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(loggingConfig(cfg))
	logging.Info().Str("config", cfg.String()).Msg("Starting CinemaSwipe")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

// run wires every component into the supervisor tree and blocks until ctx
// is canceled or the tree fails.
func run(ctx context.Context, cfg *config.Config) error {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	metrics.CatalogMovies.Set(float64(cat.Len()))
	logging.Info().
		Int("movies", cat.Len()).
		Str("path", cfg.Catalog.Path).
		Msg("Catalog loaded")

	scorer, err := recommend.NewScorer(cat, scorerConfig(cfg), logging.WithComponent("recommend"))
	if err != nil {
		return fmt.Errorf("create scorer: %w", err)
	}

	bus := events.NewBus(busConfig(cfg), nil)
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}()
	stats := events.NewStatsConsumer()
	routerCfg := routerConfig(cfg)
	routerSvc := services.NewEventRouterService(func() (services.EventRouter, error) {
		r, err := events.NewRouter(routerCfg, nil)
		if err != nil {
			return nil, err
		}
		stats.Register(r, bus)
		return r, nil
	})

	var opts []session.Option
	if cfg.Session.Persist {
		store, err := session.OpenBadgerStore(cfg.Session.StorePath, cfg.Session.TTL)
		if err != nil {
			return fmt.Errorf("open session store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing session store")
			}
		}()
		opts = append(opts, session.WithStore(store, cat))
		logging.Info().Str("path", cfg.Session.StorePath).Msg("Session persistence enabled")
	}

	publisher := events.NewBreakerPublisher(bus, breakerConfig(cfg))
	manager := session.NewManager(scorer, sessionConfig(cfg), publisher, logging.WithComponent("session"), opts...)

	handler := api.NewHandler(cat, scorer, manager, stats)
	handler.AddReadinessCheck("event_router", func() error {
		if !routerSvc.IsRunning() {
			return errors.New("event router not running")
		}
		return nil
	})
	router := api.NewRouter(handler, api.NewChiMiddleware(middlewareConfig(cfg)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddMessagingService(routerSvc)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddAPIService(services.NewSessionSweeperService(manager, cfg.Session.SweepInterval, logging.WithComponent("supervisor")))
	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")

	err = tree.Serve(ctx)

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
