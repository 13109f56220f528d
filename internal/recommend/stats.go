// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package recommend

import "sort"

// Statistics maps each title to its mean rating and rating count.
// It is immutable once computed.
type Statistics struct {
	items  map[string]ItemStats
	titles []string
}

// ComputeStatistics groups the store by title and derives the mean rating and
// rating count of every title. An empty or nil store yields empty statistics.
func ComputeStatistics(store *RatingStore) *Statistics {
	type acc struct {
		sum   float64
		count int
	}

	groups := make(map[string]*acc)
	for _, r := range store.Records() {
		a := groups[r.Title]
		if a == nil {
			a = &acc{}
			groups[r.Title] = a
		}
		a.sum += r.Rating
		a.count++
	}

	s := &Statistics{
		items:  make(map[string]ItemStats, len(groups)),
		titles: make([]string, 0, len(groups)),
	}
	for title, a := range groups {
		s.items[title] = ItemStats{
			Title:       title,
			MeanRating:  a.sum / float64(a.count),
			RatingCount: a.count,
		}
		s.titles = append(s.titles, title)
	}
	sort.Strings(s.titles)

	return s
}

// Get returns the statistics for a title.
func (s *Statistics) Get(title string) (ItemStats, bool) {
	st, ok := s.items[title]
	return st, ok
}

// Len returns the number of titles.
func (s *Statistics) Len() int {
	return len(s.titles)
}

// Items returns the statistics of every title, ordered by title.
func (s *Statistics) Items() []ItemStats {
	out := make([]ItemStats, len(s.titles))
	for i, t := range s.titles {
		out[i] = s.items[t]
	}
	return out
}
