// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelcorr/internal/metrics"
)

// cancelCheckInterval is how many rows are read between context checks.
const cancelCheckInterval = 4096

// ReadRatings parses a headerless ratings file with columns user_id, item_id,
// rating and an optional timestamp, separated by delim.
func ReadRatings(ctx context.Context, r io.Reader, delim rune) ([]RawRating, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true

	var out []RawRating
	for line := 1; ; line++ {
		if line%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: ratings line %d: %v", ErrInput, line, err)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("%w: ratings line %d: expected at least 3 fields, got %d", ErrInput, line, len(rec))
		}

		row, err := parseRating(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: ratings line %d: %v", ErrInput, line, err)
		}
		out = append(out, row)
	}

	return out, nil
}

func parseRating(rec []string) (RawRating, error) {
	var row RawRating
	var err error

	if row.UserID, err = strconv.Atoi(strings.TrimSpace(rec[0])); err != nil {
		return row, fmt.Errorf("user_id: %w", err)
	}
	if row.ItemID, err = strconv.Atoi(strings.TrimSpace(rec[1])); err != nil {
		return row, fmt.Errorf("item_id: %w", err)
	}
	if row.Rating, err = strconv.ParseFloat(strings.TrimSpace(rec[2]), 64); err != nil {
		return row, fmt.Errorf("rating: %w", err)
	}
	if len(rec) > 3 && strings.TrimSpace(rec[3]) != "" {
		if row.Timestamp, err = strconv.ParseInt(strings.TrimSpace(rec[3]), 10, 64); err != nil {
			return row, fmt.Errorf("timestamp: %w", err)
		}
	}
	return row, nil
}

// ReadTitles parses a comma-separated item_id,title file. A header row is
// detected by a non-numeric first field and skipped. Titles may be quoted
// and contain commas.
func ReadTitles(r io.Reader) ([]TitlePair, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var out []TitlePair
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: titles line %d: %v", ErrInput, line, err)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("%w: titles line %d: expected 2 fields, got %d", ErrInput, line, len(rec))
		}

		id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, fmt.Errorf("%w: titles line %d: item_id: %v", ErrInput, line, err)
		}
		// Unquoted titles containing commas arrive split across fields.
		title := strings.TrimSpace(strings.Join(rec[1:], ","))
		out = append(out, TitlePair{ItemID: id, Title: title})
	}

	return out, nil
}

// Options configures a FileLoader.
type Options struct {
	RatingsPath string
	TitlesPath  string
	Delimiter   rune
	Scale       Scale
}

// FileLoader reads the ratings and titles files from disk and merges them in Go.
type FileLoader struct {
	opts   Options
	logger zerolog.Logger
}

// NewFileLoader creates a FileLoader. A zero Delimiter means tab and a zero
// Scale means DefaultScale.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewFileLoader(opts Options, logger zerolog.Logger) *FileLoader {
	if opts.Delimiter == 0 {
		opts.Delimiter = '\t'
	}
	if opts.Scale == (Scale{}) {
		opts.Scale = DefaultScale
	}
	return &FileLoader{
		opts:   opts,
		logger: logger.With().Str("component", "ingest").Str("loader", "csv").Logger(),
	}
}

// Name implements Loader.
func (l *FileLoader) Name() string {
	return "csv"
}

// Load implements Loader.
func (l *FileLoader) Load(ctx context.Context) (ds *Dataset, err error) {
	start := time.Now()
	defer func() {
		if ds != nil {
			metrics.RecordIngest(l.Name(), time.Since(start), ds.Report.Merged, ds.Report.Unmatched, err)
		} else {
			metrics.RecordIngest(l.Name(), time.Since(start), 0, 0, err)
		}
	}()

	ratings, err := l.readRatings(ctx)
	if err != nil {
		return nil, err
	}
	pairs, err := l.readTitles()
	if err != nil {
		return nil, err
	}

	ds, err = Merge(ratings, ResolveTitles(pairs), l.opts.Scale)
	if err != nil {
		return nil, err
	}

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

func (l *FileLoader) readRatings(ctx context.Context) ([]RawRating, error) {
	f, err := os.Open(l.opts.RatingsPath)
	if err != nil {
		l.logger.Error().Err(err).Str("path", l.opts.RatingsPath).Msg("ratings file not readable")
		return nil, fmt.Errorf("open ratings: %w", err)
	}
	defer f.Close()

	return ReadRatings(ctx, f, l.opts.Delimiter)
}

func (l *FileLoader) readTitles() ([]TitlePair, error) {
	f, err := os.Open(l.opts.TitlesPath)
	if err != nil {
		l.logger.Error().Err(err).Str("path", l.opts.TitlesPath).Msg("titles file not readable")
		return nil, fmt.Errorf("open titles: %w", err)
	}
	defer f.Close()

	return ReadTitles(f)
}
