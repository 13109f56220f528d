// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// config file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Config is immutable after LoadWithKoanf() and safe for concurrent reads.
type Config struct {
	Data      DataConfig      `koanf:"data"`
	Recommend RecommendConfig `koanf:"recommend"`
	Report    ReportConfig    `koanf:"report"`
	Database  DatabaseConfig  `koanf:"database"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DataConfig locates and describes the rating source files.
type DataConfig struct {
	// RatingsPath is the headerless user_id, item_id, rating, timestamp file.
	RatingsPath string `koanf:"ratings_path"`

	// TitlesPath is the item_id,title file.
	TitlesPath string `koanf:"titles_path"`

	// Loader selects the ingest implementation: "csv" or "duckdb".
	Loader string `koanf:"loader"`

	// Delimiter separates fields of the ratings file. Default: tab.
	Delimiter string `koanf:"delimiter"`

	// RatingMin and RatingMax bound valid ratings (inclusive).
	RatingMin float64 `koanf:"rating_min"`
	RatingMax float64 `koanf:"rating_max"`

	// ReloadInterval re-reads both files and rebuilds the matrix while
	// serving. Zero disables periodic reloads; SIGHUP always triggers one.
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// DelimiterRune returns the ratings delimiter as a rune.
func (d *DataConfig) DelimiterRune() rune {
	for _, r := range d.Delimiter {
		return r
	}
	return '\t'
}

// RecommendConfig holds similarity engine settings.
type RecommendConfig struct {
	// MinRatings is the default rating-count threshold; candidates need more
	// ratings than this to be returned.
	MinRatings int `koanf:"min_ratings"`

	// MinOverlap is the minimum number of shared raters per pair (>= 2).
	MinOverlap int `koanf:"min_overlap"`

	// Workers bounds correlation goroutines (0 = NumCPU).
	Workers int `koanf:"workers"`

	// TargetTitle is the title the CLI reports similar items for.
	TargetTitle string `koanf:"target_title"`
}

// ReportConfig holds report settings.
type ReportConfig struct {
	TopN          int `koanf:"top_n"`
	HistogramBins int `koanf:"histogram_bins"`
	SimilarRows   int `koanf:"similar_rows"` // rows of the similar-items table printed by the CLI
}

// DatabaseConfig holds DuckDB settings for the duckdb loader.
type DatabaseConfig struct {
	Path      string `koanf:"path"` // empty = in-memory
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // Number of DuckDB threads (0 = use NumCPU)
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Enabled           bool          `koanf:"enabled"`
	Port              int           `koanf:"port"`
	Host              string        `koanf:"host"`
	Timeout           time.Duration `koanf:"timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	// CacheTTL bounds how long a similarity list is reused; it must be positive.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}
