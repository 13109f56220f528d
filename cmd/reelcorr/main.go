// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

// Package main is the entry point for Reelcorr.
//
// Reelcorr loads a MovieLens-style ratings file and a title lookup, computes
// per-title rating statistics, pivots the ratings into a user x title matrix
// and ranks titles by the Pearson correlation of their rating columns.
//
// # Startup Order
//
//  1. Configuration: defaults, config.yaml and environment (Koanf v2), then flags
//  2. Logging: zerolog, configured from LOG_LEVEL / LOG_FORMAT
//  3. Data: the csv loader, or DuckDB when DATA_LOADER=duckdb
//  4. Statistics, distributions and the rating matrix
//  5. Report: top rated, most rated and titles similar to the target title
//  6. HTTP API (with -serve or SERVER_ENABLED=true) under a suture supervisor
//
// # Flags
//
//	-config       path to a YAML config file
//	-title        target title for the similarity table
//	-min-ratings  rating-count threshold for similar titles
//	-top          rows in the top-rated and most-rated tables
//	-serve        run the HTTP API after printing the report
//
// # Signals
//
// While serving, SIGINT and SIGTERM shut the server down gracefully and
// SIGHUP reloads both data files and rebuilds the matrix in place.
//
// # Example Usage
//
//	./reelcorr -title "Liar Liar (1997)" -min-ratings 100
//
//	RATINGS_PATH=/data/u.data TITLES_PATH=/data/Movie_Id_Titles.txt ./reelcorr -serve
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/tomtom215/reelcorr/internal/config"
	"github.com/tomtom215/reelcorr/internal/logging"
	"github.com/tomtom215/reelcorr/internal/metrics"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// options holds the command-line overrides. Unset flags leave config alone.
type options struct {
	configPath string
	title      string
	minRatings int
	top        int
	serve      bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("reelcorr", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{minRatings: -1}
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&opts.title, "title", "", "target title for the similarity table")
	fs.IntVar(&opts.minRatings, "min-ratings", -1, "rating-count threshold for similar titles")
	fs.IntVar(&opts.top, "top", 0, "rows in the top-rated and most-rated tables")
	fs.BoolVar(&opts.serve, "serve", false, "run the HTTP API after printing the report")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// loadConfig loads configuration and applies flag overrides.
func loadConfig(opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.LoadWithKoanf()
	}
	if err != nil {
		return nil, err
	}

	if opts.title != "" {
		cfg.Recommend.TargetTitle = opts.title
	}
	if opts.minRatings >= 0 {
		cfg.Recommend.MinRatings = opts.minRatings
	}
	if opts.top > 0 {
		cfg.Report.TopN = opts.top
	}
	if opts.serve {
		cfg.Server.Enabled = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.FromSettings(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Caller))
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", version).
		Str("loader", cfg.Data.Loader).
		Str("ratings", cfg.Data.RatingsPath).
		Str("titles", cfg.Data.TitlesPath).
		Msg("Starting Reelcorr")

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		logging.Fatal().Err(err).Msg("Reelcorr failed")
	}
}

// run builds the similarity session, prints the report and optionally serves.
func run(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	p, err := newPipeline(cfg, logging.Logger())
	if err != nil {
		return err
	}
	defer p.Close()

	if err := p.Build(ctx); err != nil {
		return err
	}
	if err := p.PrintReport(ctx, stdout); err != nil {
		return err
	}

	if !cfg.Server.Enabled {
		return nil
	}
	return serve(ctx, cfg, p)
}
