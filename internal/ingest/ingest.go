// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

// Package ingest loads rating and title files and merges them into a
// recommend.RatingStore.
//
// The ratings file is MovieLens u.data: tab-separated, no header, columns
// user_id, item_id, rating, timestamp. The titles file is comma-separated
// with an item_id,title header. Ratings are inner-joined to titles on
// item_id; ratings whose item has no title are counted as unmatched and
// dropped.
package ingest

import (
	"context"
	"fmt"

	"github.com/tomtom215/reelcorr/internal/recommend"
)

// ErrInput indicates malformed or out-of-range source data. It is the same
// sentinel the recommender uses for invalid input.
var ErrInput = recommend.ErrInput

// Scale is the inclusive range valid ratings must fall in.
type Scale struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultScale is the MovieLens 1-5 star scale.
var DefaultScale = Scale{Min: 1, Max: 5}

// Contains reports whether v lies within the scale.
func (s Scale) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max
}

// RawRating is one row of the ratings file before titles are joined.
type RawRating struct {
	UserID    int
	ItemID    int
	Rating    float64
	Timestamp int64
}

// LoadReport summarizes a load.
type LoadReport struct {
	// Ratings is the number of rating rows read.
	Ratings int `json:"ratings"`

	// Titles is the number of distinct item IDs with a title.
	Titles int `json:"titles"`

	// Merged is the number of ratings joined to a title.
	Merged int `json:"merged"`

	// Unmatched is the number of ratings dropped for lack of a title.
	Unmatched int `json:"unmatched"`

	// Users is the number of distinct users among merged ratings.
	Users int `json:"users"`

	// Items is the number of distinct titles among merged ratings.
	Items int `json:"items"`
}

// Dataset is the result of a load.
type Dataset struct {
	Store  *recommend.RatingStore
	Report LoadReport
}

// Loader produces a Dataset from some source.
type Loader interface {
	// Name identifies the loader in logs and metrics.
	Name() string

	// Load reads and merges the source data.
	Load(ctx context.Context) (*Dataset, error)
}

// Builder accumulates joined ratings into a Dataset, validating each merged
// rating against a Scale.
type Builder struct {
	scale   Scale
	records []recommend.Rating
	users   map[int]struct{}
	items   map[string]struct{}
	report  LoadReport
}

// NewBuilder creates a Builder. capacity is a hint for the number of ratings.
func NewBuilder(scale Scale, capacity int) *Builder {
	return &Builder{
		scale:   scale,
		records: make([]recommend.Rating, 0, capacity),
		users:   make(map[int]struct{}),
		items:   make(map[string]struct{}),
	}
}

// Add records a rating joined to title.
func (b *Builder) Add(r RawRating, title string) error {
	b.report.Ratings++
	if !b.scale.Contains(r.Rating) {
		return fmt.Errorf("%w: rating %d (user %d, item %d) value %v outside [%v, %v]",
			ErrInput, b.report.Ratings, r.UserID, r.ItemID, r.Rating, b.scale.Min, b.scale.Max)
	}
	b.records = append(b.records, recommend.Rating{
		UserID:    r.UserID,
		ItemID:    r.ItemID,
		Rating:    r.Rating,
		Title:     title,
		Timestamp: r.Timestamp,
	})
	b.users[r.UserID] = struct{}{}
	b.items[title] = struct{}{}
	return nil
}

// Unmatched records a rating whose item has no title.
func (b *Builder) Unmatched() {
	b.report.Ratings++
	b.report.Unmatched++
}

// Dataset finalizes the build. titles is the number of distinct titled items
// in the source.
func (b *Builder) Dataset(titles int) *Dataset {
	report := b.report
	report.Titles = titles
	report.Merged = len(b.records)
	report.Users = len(b.users)
	report.Items = len(b.items)
	return &Dataset{Store: recommend.NewRatingStore(b.records), Report: report}
}

// Merge inner-joins ratings to titles on item ID and validates every merged
// rating against scale. Ratings with no title are counted and dropped.
func Merge(ratings []RawRating, titles map[int]string, scale Scale) (*Dataset, error) {
	b := NewBuilder(scale, len(ratings))
	for _, r := range ratings {
		title, ok := titles[r.ItemID]
		if !ok {
			b.Unmatched()
			continue
		}
		if err := b.Add(r, title); err != nil {
			return nil, err
		}
	}
	return b.Dataset(len(titles)), nil
}

// ResolveTitles collapses repeated item IDs to a single title. When an item
// ID appears with different titles the lexicographically smallest wins.
func ResolveTitles(pairs []TitlePair) map[int]string {
	out := make(map[int]string, len(pairs))
	for _, p := range pairs {
		if cur, ok := out[p.ItemID]; ok && cur <= p.Title {
			continue
		}
		out[p.ItemID] = p.Title
	}
	return out
}

// TitlePair is one row of the titles file.
type TitlePair struct {
	ItemID int
	Title  string
}
