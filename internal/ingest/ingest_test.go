// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package ingest

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

const sampleRatings = "0\t50\t5\t881250949\n" +
	"0\t172\t5\t881250949\n" +
	"0\t133\t1\t881250949\n" +
	"196\t242\t3\t881250949\n" +
	"186\t302\t3\t891717742\n" +
	"22\t377\t1\t878887116\n"

const sampleTitles = "item_id,title\n" +
	"1,Toy Story (1995)\n" +
	"50,Star Wars (1977)\n" +
	"172,\"Empire Strikes Back, The (1980)\"\n" +
	"133,Gone with the Wind (1939)\n" +
	"242,Kolya (1996)\n" +
	"302,L.A. Confidential (1997)\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadRatings(t *testing.T) {
	t.Parallel()

	rows, err := ReadRatings(context.Background(), strings.NewReader(sampleRatings), '\t')
	if err != nil {
		t.Fatalf("ReadRatings() error = %v", err)
	}
	if len(rows) != 6 {
		t.Fatalf("len(rows) = %d, want 6", len(rows))
	}
	want := RawRating{UserID: 196, ItemID: 242, Rating: 3, Timestamp: 881250949}
	if rows[3] != want {
		t.Errorf("rows[3] = %+v, want %+v", rows[3], want)
	}
}

func TestReadRatings_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"too few fields", "1\t2\n"},
		{"bad user", "x\t2\t3\t0\n"},
		{"bad rating", "1\t2\tgood\t0\n"},
		{"bad timestamp", "1\t2\t3\tyesterday\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadRatings(context.Background(), strings.NewReader(tt.input), '\t')
			if !errors.Is(err, ErrInput) {
				t.Errorf("ReadRatings() error = %v, want ErrInput", err)
			}
		})
	}
}

func TestReadRatings_OptionalTimestamp(t *testing.T) {
	t.Parallel()

	rows, err := ReadRatings(context.Background(), strings.NewReader("1,2,4.5\n"), ',')
	if err != nil {
		t.Fatalf("ReadRatings() error = %v", err)
	}
	if len(rows) != 1 || rows[0].Rating != 4.5 || rows[0].Timestamp != 0 {
		t.Errorf("rows = %+v", rows)
	}
}

func TestReadTitles(t *testing.T) {
	t.Parallel()

	pairs, err := ReadTitles(strings.NewReader(sampleTitles))
	if err != nil {
		t.Fatalf("ReadTitles() error = %v", err)
	}
	if len(pairs) != 6 {
		t.Fatalf("len(pairs) = %d, want 6", len(pairs))
	}
	if pairs[2].Title != "Empire Strikes Back, The (1980)" {
		t.Errorf("quoted title = %q", pairs[2].Title)
	}

	// Headerless files are accepted too.
	pairs, err = ReadTitles(strings.NewReader("7,Twelve Monkeys (1995)\n"))
	if err != nil {
		t.Fatalf("ReadTitles(headerless) error = %v", err)
	}
	if len(pairs) != 1 || pairs[0].ItemID != 7 {
		t.Errorf("headerless pairs = %+v", pairs)
	}

	if _, err := ReadTitles(strings.NewReader("item_id,title\nabc,Broken\n")); !errors.Is(err, ErrInput) {
		t.Errorf("ReadTitles(bad id) error = %v, want ErrInput", err)
	}
}

func TestResolveTitles(t *testing.T) {
	t.Parallel()

	got := ResolveTitles([]TitlePair{
		{ItemID: 1, Title: "Zeta"},
		{ItemID: 2, Title: "Beta"},
		{ItemID: 1, Title: "Alpha"},
		{ItemID: 1, Title: "Gamma"},
	})
	if got[1] != "Alpha" || got[2] != "Beta" || len(got) != 2 {
		t.Errorf("ResolveTitles() = %v", got)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	ratings := []RawRating{
		{UserID: 1, ItemID: 10, Rating: 4},
		{UserID: 2, ItemID: 10, Rating: 5},
		{UserID: 2, ItemID: 99, Rating: 3},
		{UserID: 3, ItemID: 11, Rating: 1},
	}
	// Items 10 and 11 share a title and group together downstream.
	titles := map[int]string{10: "Same", 11: "Same", 12: "Unrated"}

	ds, err := Merge(ratings, titles, DefaultScale)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	want := LoadReport{Ratings: 4, Titles: 3, Merged: 3, Unmatched: 1, Users: 3, Items: 1}
	if ds.Report != want {
		t.Errorf("Report = %+v, want %+v", ds.Report, want)
	}
	if ds.Store.Len() != 3 {
		t.Errorf("Store.Len() = %d, want 3", ds.Store.Len())
	}
	for _, r := range ds.Store.Records() {
		if r.Title != "Same" {
			t.Errorf("record %+v has unexpected title", r)
		}
	}
}

func TestMerge_OutOfScale(t *testing.T) {
	t.Parallel()

	ratings := []RawRating{{UserID: 1, ItemID: 10, Rating: 6}}
	_, err := Merge(ratings, map[int]string{10: "A"}, DefaultScale)
	if !errors.Is(err, ErrInput) {
		t.Errorf("Merge() error = %v, want ErrInput", err)
	}

	// Unmatched ratings are not validated.
	ds, err := Merge(ratings, map[int]string{}, DefaultScale)
	if err != nil {
		t.Fatalf("Merge(unmatched) error = %v", err)
	}
	if ds.Report.Unmatched != 1 {
		t.Errorf("Unmatched = %d, want 1", ds.Report.Unmatched)
	}
}

func TestFileLoader_Load(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	loader := NewFileLoader(Options{
		RatingsPath: writeFile(t, dir, "u.data", sampleRatings),
		TitlesPath:  writeFile(t, dir, "Movie_Id_Titles.txt", sampleTitles),
	}, zerolog.Nop())

	if loader.Name() != "csv" {
		t.Errorf("Name() = %q, want csv", loader.Name())
	}

	ds, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// Item 377 has no title.
	if ds.Report.Merged != 5 || ds.Report.Unmatched != 1 {
		t.Errorf("Report = %+v, want 5 merged, 1 unmatched", ds.Report)
	}
	if got := ds.Store.Titles(); len(got) != 5 {
		t.Errorf("Titles() = %v, want 5 titles", got)
	}
}

func TestFileLoader_MissingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	loader := NewFileLoader(Options{
		RatingsPath: filepath.Join(dir, "missing.data"),
		TitlesPath:  writeFile(t, dir, "titles.csv", sampleTitles),
	}, zerolog.Nop())

	_, err := loader.Load(context.Background())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
	}
}
