// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Rebuilder reloads rating data and rebuilds every derived structure.
type Rebuilder interface {
	Rebuild(ctx context.Context) error
}

// RebuildFunc adapts a function to Rebuilder.
type RebuildFunc func(ctx context.Context) error

// Rebuild calls f.
func (f RebuildFunc) Rebuild(ctx context.Context) error {
	return f(ctx)
}

// RebuildConfig controls when RebuildService rebuilds.
type RebuildConfig struct {
	// Interval between periodic rebuilds. Zero disables the timer.
	Interval time.Duration

	// Timeout bounds a single rebuild. Default: 10m
	Timeout time.Duration

	// Trigger requests an immediate rebuild. May be nil.
	Trigger <-chan struct{}
}

// RebuildService runs rebuilds on demand and on a schedule.
type RebuildService struct {
	rebuilder Rebuilder
	config    RebuildConfig
	logger    zerolog.Logger
	name      string
}

// NewRebuildService creates a rebuild service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRebuildService(rebuilder Rebuilder, cfg RebuildConfig, logger zerolog.Logger) *RebuildService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Minute
	}
	return &RebuildService{
		rebuilder: rebuilder,
		config:    cfg,
		logger:    logger.With().Str("service", "rebuild").Logger(),
		name:      "rebuild-service",
	}
}

// Serve implements suture.Service. Rebuild errors are logged, never
// returned, so a bad data file does not restart the service in a loop.
func (s *RebuildService) Serve(ctx context.Context) error {
	var tick <-chan time.Time
	if s.config.Interval > 0 {
		ticker := time.NewTicker(s.config.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	s.logger.Debug().Dur("interval", s.config.Interval).Msg("rebuild service running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case _, ok := <-s.config.Trigger:
			if !ok {
				// Closed trigger: keep serving on the timer only.
				s.config.Trigger = nil
				continue
			}
			s.rebuild(ctx, "signal")

		case <-tick:
			s.rebuild(ctx, "interval")
		}
	}
}

func (s *RebuildService) rebuild(ctx context.Context, reason string) {
	rebuildCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	s.logger.Info().Str("reason", reason).Msg("rebuilding similarity matrix")

	if err := s.rebuilder.Rebuild(rebuildCtx); err != nil {
		s.logger.Error().Err(err).Str("reason", reason).Msg("rebuild failed, keeping previous data")
		return
	}

	s.logger.Info().
		Str("reason", reason).
		Dur("duration", time.Since(start)).
		Msg("rebuild complete")
}

// String implements fmt.Stringer.
func (s *RebuildService) String() string {
	return s.name
}
