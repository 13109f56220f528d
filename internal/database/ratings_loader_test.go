// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelcorr/internal/config"
	"github.com/tomtom215/reelcorr/internal/ingest"
)

// testDBSemaphore serializes DuckDB usage across tests; concurrent CGO
// connections are slow to start under CI load.
var testDBSemaphore = make(chan struct{}, 1)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	db, err := New(&config.DatabaseConfig{MaxMemory: "256MB", Threads: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func dataConfig(ratings, titles string) config.DataConfig {
	return config.DataConfig{
		RatingsPath: ratings,
		TitlesPath:  titles,
		Loader:      "duckdb",
		Delimiter:   "\t",
		RatingMin:   1,
		RatingMax:   5,
	}
}

func TestRatingsLoader_Load(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir()

	ratings := writeFile(t, dir, "u.data",
		"0\t50\t5\t881250949\n"+
			"0\t172\t5\t881250949\n"+
			"1\t50\t4\t881250950\n"+
			"1\t172\t3\t881250950\n"+
			"2\t999\t2\t881250951\n")
	titles := writeFile(t, dir, "titles.csv",
		"item_id,title\n"+
			"50,Star Wars (1977)\n"+
			"172,\"Empire Strikes Back, The (1980)\"\n"+
			"1,Toy Story (1995)\n")

	loader := NewRatingsLoader(db, dataConfig(ratings, titles), zerolog.Nop())
	if loader.Name() != "duckdb" {
		t.Errorf("Name() = %q, want duckdb", loader.Name())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ds, err := loader.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := ingest.LoadReport{Ratings: 5, Titles: 3, Merged: 4, Unmatched: 1, Users: 2, Items: 2}
	if ds.Report != want {
		t.Errorf("Report = %+v, want %+v", ds.Report, want)
	}

	found := false
	for _, r := range ds.Store.Records() {
		if r.Title == "Empire Strikes Back, The (1980)" && r.UserID == 1 && r.Rating == 3 {
			found = true
		}
	}
	if !found {
		t.Error("quoted title with comma not joined")
	}
}

// The DuckDB and CSV loaders agree on the same input.
func TestRatingsLoader_MatchesFileLoader(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir()

	ratings := writeFile(t, dir, "u.data",
		"1\t10\t4\t1\n2\t10\t5\t2\n1\t11\t3\t3\n3\t12\t1\t4\n")
	titles := writeFile(t, dir, "titles.csv",
		"item_id,title\n10,Alpha\n11,Beta\n11,Aardvark\n")

	data := dataConfig(ratings, titles)
	fromDB, err := NewRatingsLoader(db, data, zerolog.Nop()).Load(context.Background())
	if err != nil {
		t.Fatalf("duckdb Load() error = %v", err)
	}
	fromCSV, err := ingest.NewFileLoader(ingest.Options{
		RatingsPath: ratings,
		TitlesPath:  titles,
	}, zerolog.Nop()).Load(context.Background())
	if err != nil {
		t.Fatalf("csv Load() error = %v", err)
	}

	if fromDB.Report != fromCSV.Report {
		t.Errorf("reports differ: duckdb %+v, csv %+v", fromDB.Report, fromCSV.Report)
	}
	dbTitles, csvTitles := fromDB.Store.Titles(), fromCSV.Store.Titles()
	if len(dbTitles) != len(csvTitles) {
		t.Fatalf("titles differ: duckdb %v, csv %v", dbTitles, csvTitles)
	}
	for i := range dbTitles {
		if dbTitles[i] != csvTitles[i] {
			t.Errorf("title %d: duckdb %q, csv %q", i, dbTitles[i], csvTitles[i])
		}
	}
}

func TestRatingsLoader_OutOfScale(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir()

	ratings := writeFile(t, dir, "u.data", "1\t10\t9\t1\n")
	titles := writeFile(t, dir, "titles.csv", "item_id,title\n10,Alpha\n")

	_, err := NewRatingsLoader(db, dataConfig(ratings, titles), zerolog.Nop()).Load(context.Background())
	if !errors.Is(err, ingest.ErrInput) {
		t.Errorf("Load() error = %v, want ErrInput", err)
	}
}

func TestRatingsLoader_MissingFile(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir()

	titles := writeFile(t, dir, "titles.csv", "item_id,title\n10,Alpha\n")
	loader := NewRatingsLoader(db, dataConfig(filepath.Join(dir, "missing.data"), titles), zerolog.Nop())

	if _, err := loader.Load(context.Background()); err == nil {
		t.Error("Load() expected error for missing ratings file")
	}
}

func TestQuoteLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/data/u.data", "'/data/u.data'"},
		{"/data/o'brien.csv", "'/data/o''brien.csv'"},
		{"\t", "'\t'"},
	}
	for _, tt := range tests {
		if got := quoteLiteral(tt.in); got != tt.want {
			t.Errorf("quoteLiteral(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
