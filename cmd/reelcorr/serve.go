// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/reelcorr/internal/api"
	"github.com/tomtom215/reelcorr/internal/config"
	"github.com/tomtom215/reelcorr/internal/logging"
	"github.com/tomtom215/reelcorr/internal/supervisor"
	"github.com/tomtom215/reelcorr/internal/supervisor/services"
)

// newHTTPServer wires the API handler, router and middleware for p.
func newHTTPServer(cfg *config.Config, p *pipeline) *http.Server {
	handler := api.NewHandler(p.rec, cfg, version, logging.WithComponent("api"))
	if p.db != nil {
		handler.SetDatabase(p.db)
	}
	p.OnRebuild(handler.InvalidateCache)

	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromServer(cfg.Server)))

	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}

// hangups forwards SIGHUP as rebuild requests until ctx is done.
func hangups(ctx context.Context) <-chan struct{} {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP)

	out := make(chan struct{}, 1)
	go func() {
		defer signal.Stop(sigCh)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigCh:
				logging.Info().Msg("Received SIGHUP, scheduling data reload")
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out
}

// serve runs the HTTP API and the rebuild service until SIGINT or SIGTERM.
func serve(ctx context.Context, cfg *config.Config, p *pipeline) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	server := newHTTPServer(cfg, p)
	serviceLogger := logging.WithComponent("supervisor")

	tree.AddDataService(services.NewRebuildService(p, services.RebuildConfig{
		Interval: cfg.Data.ReloadInterval,
		Trigger:  hangups(ctx),
	}, serviceLogger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, serviceLogger))

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Reelcorr stopped")
	return nil
}
