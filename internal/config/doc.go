// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

/*
Package config provides centralized configuration management for Reelcorr.

Configuration is layered with Koanf v2: struct defaults, then an optional YAML
file (CONFIG_PATH, or config.yaml in the working directory), then a fixed set
of environment variables.

# Environment Variables

Data:
  - RATINGS_PATH: ratings file (default: u.data)
  - TITLES_PATH: titles file (default: Movie_Id_Titles.txt)
  - DATA_LOADER: csv or duckdb (default: csv)
  - RATINGS_DELIM: ratings field separator (default: tab)
  - RATING_MIN, RATING_MAX: valid rating range (default: 1 to 5)
  - RELOAD_INTERVAL: periodic data reload while serving, 0 = off (default: 0)

Recommender:
  - MIN_RATINGS: rating-count threshold (default: 100)
  - MIN_OVERLAP: shared raters per pair (default: 2)
  - WORKERS: correlation goroutines, 0 = NumCPU (default: 0)
  - TARGET_TITLE: CLI target (default: Star Wars (1977))

Report:
  - TOP_N (default: 5), HISTOGRAM_BINS (default: 70), SIMILAR_ROWS (default: 10)

Database (duckdb loader):
  - DUCKDB_PATH (default: in-memory), DUCKDB_MAX_MEMORY (default: 1GB), DUCKDB_THREADS

Server:
  - SERVER_ENABLED, HTTP_HOST, HTTP_PORT (default: 8080), HTTP_TIMEOUT, SHUTDOWN_TIMEOUT
  - RATE_LIMIT_REQS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS: comma-separated list
  - CACHE_TTL: similar-items response cache lifetime (must be positive)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example YAML

	data:
	  ratings_path: /data/ml-100k/u.data
	  titles_path: /data/Movie_Id_Titles.txt
	  loader: duckdb
	recommend:
	  min_ratings: 100
	server:
	  enabled: true
	  port: 8080
*/
package config
