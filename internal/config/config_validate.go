// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package config

import (
	"fmt"
	"unicode/utf8"
)

var validLoaders = map[string]bool{
	"csv":    true,
	"duckdb": true,
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateData(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateData() error {
	if c.Data.RatingsPath == "" {
		return fmt.Errorf("RATINGS_PATH is required")
	}
	if c.Data.TitlesPath == "" {
		return fmt.Errorf("TITLES_PATH is required")
	}
	if !validLoaders[c.Data.Loader] {
		return fmt.Errorf("DATA_LOADER must be one of: csv, duckdb")
	}
	if utf8.RuneCountInString(c.Data.Delimiter) > 1 {
		return fmt.Errorf("RATINGS_DELIM must be a single character, got %q", c.Data.Delimiter)
	}
	if c.Data.RatingMin > c.Data.RatingMax {
		return fmt.Errorf("RATING_MIN (%v) must not exceed RATING_MAX (%v)", c.Data.RatingMin, c.Data.RatingMax)
	}
	if c.Data.ReloadInterval < 0 {
		return fmt.Errorf("RELOAD_INTERVAL must be non-negative, got %v", c.Data.ReloadInterval)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.MinRatings < 0 {
		return fmt.Errorf("MIN_RATINGS must be non-negative, got %d", c.Recommend.MinRatings)
	}
	if c.Recommend.MinOverlap < 2 {
		return fmt.Errorf("MIN_OVERLAP must be at least 2, got %d", c.Recommend.MinOverlap)
	}
	if c.Recommend.Workers < 0 {
		return fmt.Errorf("WORKERS must be non-negative, got %d", c.Recommend.Workers)
	}
	return nil
}

func (c *Config) validateReport() error {
	if c.Report.TopN < 1 {
		return fmt.Errorf("TOP_N must be positive, got %d", c.Report.TopN)
	}
	if c.Report.HistogramBins < 1 {
		return fmt.Errorf("HISTOGRAM_BINS must be positive, got %d", c.Report.HistogramBins)
	}
	if c.Report.SimilarRows < 0 {
		return fmt.Errorf("SIMILAR_ROWS must be non-negative, got %d", c.Report.SimilarRows)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if !c.Server.RateLimitDisabled {
		if c.Server.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQS must be positive when rate limiting is enabled")
		}
		if c.Server.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
		}
	}
	if c.Server.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
