// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package recommend

import "sort"

// RatingStore is the merged long-form rating table a session works on.
// It is immutable after construction.
type RatingStore struct {
	records []Rating
}

// NewRatingStore creates a store holding a copy of records.
func NewRatingStore(records []Rating) *RatingStore {
	owned := make([]Rating, len(records))
	copy(owned, records)
	return &RatingStore{records: owned}
}

// Len returns the number of rating records.
func (s *RatingStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Records returns the underlying records. The slice must not be modified.
func (s *RatingStore) Records() []Rating {
	if s == nil {
		return nil
	}
	return s.records
}

// UserCount returns the number of distinct users.
func (s *RatingStore) UserCount() int {
	users := make(map[int]struct{})
	for i := range s.Records() {
		users[s.records[i].UserID] = struct{}{}
	}
	return len(users)
}

// Titles returns the distinct titles in ascending order.
func (s *RatingStore) Titles() []string {
	seen := make(map[string]struct{})
	titles := make([]string, 0)
	for i := range s.Records() {
		t := s.records[i].Title
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		titles = append(titles, t)
	}
	sort.Strings(titles)
	return titles
}
