// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelcorr/internal/config"
	"github.com/tomtom215/reelcorr/internal/ingest"
	"github.com/tomtom215/reelcorr/internal/metrics"
)

// RatingsLoader implements ingest.Loader by letting DuckDB parse both source
// files and perform the item_id join in SQL.
type RatingsLoader struct {
	db     *DB
	data   config.DataConfig
	logger zerolog.Logger
}

var _ ingest.Loader = (*RatingsLoader)(nil)

// NewRatingsLoader creates a loader reading the files named in data.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRatingsLoader(db *DB, data config.DataConfig, logger zerolog.Logger) *RatingsLoader {
	return &RatingsLoader{
		db:     db,
		data:   data,
		logger: logger.With().Str("component", "ingest").Str("loader", "duckdb").Logger(),
	}
}

// Name implements ingest.Loader.
func (l *RatingsLoader) Name() string {
	return "duckdb"
}

// ratingsSource is the read_csv call for the headerless ratings file.
func (l *RatingsLoader) ratingsSource() string {
	return fmt.Sprintf(
		"read_csv(%s, delim=%s, header=false, null_padding=true, "+
			"columns={'user_id': 'BIGINT', 'item_id': 'BIGINT', 'rating': 'DOUBLE', 'ts': 'BIGINT'})",
		quoteLiteral(l.data.RatingsPath), quoteLiteral(string(l.data.DelimiterRune())))
}

// titlesSource is the read_csv call for the item_id,title file.
func (l *RatingsLoader) titlesSource() string {
	return fmt.Sprintf(
		"read_csv(%s, delim=',', header=true, quote='\"', "+
			"columns={'item_id': 'BIGINT', 'title': 'VARCHAR'})",
		quoteLiteral(l.data.TitlesPath))
}

// joinQuery left-joins every rating to the smallest title recorded for its
// item so unmatched ratings can be counted.
func (l *RatingsLoader) joinQuery() string {
	return fmt.Sprintf(`
		SELECT r.user_id, r.item_id, r.rating, r.ts, t.title
		FROM %s AS r
		LEFT JOIN (
			SELECT item_id, min(title) AS title
			FROM %s
			GROUP BY item_id
		) AS t ON r.item_id = t.item_id`,
		l.ratingsSource(), l.titlesSource())
}

// Load implements ingest.Loader.
func (l *RatingsLoader) Load(ctx context.Context) (ds *ingest.Dataset, err error) {
	start := time.Now()
	defer func() {
		merged, unmatched := 0, 0
		if ds != nil {
			merged, unmatched = ds.Report.Merged, ds.Report.Unmatched
		}
		metrics.RecordIngest(l.Name(), time.Since(start), merged, unmatched, err)
	}()

	titles, err := l.countTitles(ctx)
	if err != nil {
		return nil, err
	}

	queryStart := time.Now()
	rows, err := l.db.conn.QueryContext(ctx, l.joinQuery())
	metrics.RecordDBQuery("SELECT", "ratings", time.Since(queryStart), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer closeWithLog(rows, l.logger, "rows")

	b := ingest.NewBuilder(ingest.Scale{Min: l.data.RatingMin, Max: l.data.RatingMax}, 0)
	for rows.Next() {
		var (
			userID, itemID int64
			rating         float64
			ts             sql.NullInt64
			title          sql.NullString
		)
		if err := rows.Scan(&userID, &itemID, &rating, &ts, &title); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		if !title.Valid {
			b.Unmatched()
			continue
		}
		raw := ingest.RawRating{UserID: int(userID), ItemID: int(itemID), Rating: rating, Timestamp: ts.Int64}
		if err := b.Add(raw, title.String); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ratings: %w", err)
	}

	ds = b.Dataset(titles)

	l.logger.Info().
		Int("ratings", ds.Report.Ratings).
		Int("titles", ds.Report.Titles).
		Int("merged", ds.Report.Merged).
		Int("unmatched", ds.Report.Unmatched).
		Int("users", ds.Report.Users).
		Int("items", ds.Report.Items).
		Dur("duration", time.Since(start)).
		Msg("rating data loaded")

	return ds, nil
}

func (l *RatingsLoader) countTitles(ctx context.Context) (int, error) {
	query := fmt.Sprintf("SELECT count(DISTINCT item_id) FROM %s", l.titlesSource())

	start := time.Now()
	var n int64
	err := l.db.conn.QueryRowContext(ctx, query).Scan(&n)
	metrics.RecordDBQuery("SELECT", "titles", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to read titles: %w", err)
	}
	return int(n), nil
}
