// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelcorr/internal/config"
	"github.com/tomtom215/reelcorr/internal/database"
	"github.com/tomtom215/reelcorr/internal/ingest"
	"github.com/tomtom215/reelcorr/internal/metrics"
	"github.com/tomtom215/reelcorr/internal/recommend"
	"github.com/tomtom215/reelcorr/internal/report"
)

// pipeline owns the loader and the recommender session built from it.
type pipeline struct {
	cfg    *config.Config
	loader ingest.Loader
	db     *database.DB
	rec    *recommend.Recommender
	logger zerolog.Logger

	mu        sync.Mutex
	onRebuild []func()
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func newPipeline(cfg *config.Config, logger zerolog.Logger) (*pipeline, error) {
	p := &pipeline{cfg: cfg, logger: logger}

	switch cfg.Data.Loader {
	case "duckdb":
		db, err := database.New(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		p.db = db
		p.loader = database.NewRatingsLoader(db, cfg.Data, logger)
	default:
		p.loader = ingest.NewFileLoader(ingest.Options{
			RatingsPath: cfg.Data.RatingsPath,
			TitlesPath:  cfg.Data.TitlesPath,
			Delimiter:   cfg.Data.DelimiterRune(),
			Scale:       ingest.Scale{Min: cfg.Data.RatingMin, Max: cfg.Data.RatingMax},
		}, logger)
	}
	return p, nil
}

func recommendConfig(cfg *config.Config) *recommend.Config {
	rc := recommend.DefaultConfig()
	rc.MinRatings = cfg.Recommend.MinRatings
	rc.MinOverlap = cfg.Recommend.MinOverlap
	rc.Workers = cfg.Recommend.Workers
	return rc
}

// Build loads the data and derives statistics and the matrix.
func (p *pipeline) Build(ctx context.Context) error {
	ds, err := p.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ratings: %w", err)
	}

	rec, err := recommend.New(ds.Store, recommendConfig(p.cfg), p.logger)
	if err != nil {
		return err
	}
	if _, err := rec.CalculateRatings(ctx); err != nil {
		return err
	}

	start := time.Now()
	m, err := rec.CreateMatrix(ctx)
	if err != nil {
		return err
	}
	metrics.RecordMatrixBuild(time.Since(start), m.Users(), m.Items(), m.Density())

	p.rec = rec
	return nil
}

// Rebuild reloads the data into the existing session. It implements
// services.Rebuilder.
func (p *pipeline) Rebuild(ctx context.Context) error {
	if p.rec == nil {
		return p.Build(ctx)
	}

	ds, err := p.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ratings: %w", err)
	}

	start := time.Now()
	m, err := p.rec.Rebuild(ctx, ds.Store)
	if err != nil {
		return err
	}
	metrics.RecordMatrixBuild(time.Since(start), m.Users(), m.Items(), m.Density())

	p.mu.Lock()
	hooks := append([]func(){}, p.onRebuild...)
	p.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
	return nil
}

// OnRebuild registers fn to run after every successful Rebuild.
func (p *pipeline) OnRebuild(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onRebuild = append(p.onRebuild, fn)
}

// PrintReport writes the distribution summary, both rankings and the
// similar-titles table for the configured target.
func (p *pipeline) PrintReport(ctx context.Context, w io.Writer) error {
	stats, err := p.rec.Statistics()
	if err != nil {
		return err
	}

	dist, err := report.Distributions(stats, p.cfg.Report.HistogramBins)
	if err != nil {
		return err
	}
	if err := report.WriteSummary(w, dist); err != nil {
		return err
	}

	n := p.cfg.Report.TopN
	fmt.Fprintln(w)
	if err := report.WriteRanking(w, fmt.Sprintf("Top %d rated", n), "mean_rating", report.TopRated(stats, n), "%.3f"); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := report.WriteRanking(w, fmt.Sprintf("Top %d most rated", n), "num_ratings", report.MostRated(stats, n), "%.0f"); err != nil {
		return err
	}

	target := p.cfg.Recommend.TargetTitle
	if target == "" {
		return nil
	}

	start := time.Now()
	similar, err := p.rec.FindSimilar(ctx, target, p.cfg.Recommend.MinRatings)
	metrics.RecordSimilarityQuery(time.Since(start), len(similar), err)
	if errors.Is(err, recommend.ErrNotFound) {
		p.logger.Warn().Str("title", target).Msg("target title not found, skipping similar titles")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	return report.WriteSimilar(w, target, similar, p.cfg.Report.SimilarRows)
}

// Close releases the database, if one was opened.
func (p *pipeline) Close() {
	if p.db == nil {
		return
	}
	if err := p.db.Close(); err != nil {
		p.logger.Error().Err(err).Msg("Error closing database")
	}
}
