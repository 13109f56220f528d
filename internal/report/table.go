// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tomtom215/reelcorr/internal/recommend"
)

// WriteRanking prints a ranking as an aligned two-column table.
func WriteRanking(w io.Writer, heading, valueLabel string, rows []RankedValue, format string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n", heading)
	fmt.Fprintf(tw, "title\t%s\n", valueLabel)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t"+format+"\n", r.Title, r.Value)
	}
	return tw.Flush()
}

// WriteSimilar prints up to limit similarity rows. limit <= 0 prints all rows.
func WriteSimilar(w io.Writer, target string, rows []recommend.SimilarItem, limit int) error {
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Titles similar to %s\n", target)
	fmt.Fprintf(tw, "title\tcorrelation\tnum_ratings\n")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.4f\t%d\n", r.Title, r.Correlation, r.RatingCount)
	}
	return tw.Flush()
}

// WriteSummary prints the descriptive summaries of a distribution.
func WriteSummary(w io.Writer, d *Distribution) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "variable\tn\tmean\tstd\tmin\tmax\n")
	for _, row := range []struct {
		name string
		s    Summary
	}{
		{"rating_count", d.CountSummary},
		{"mean_rating", d.MeanSummary},
	} {
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.3f\t%.3f\t%.3f\n",
			row.name, row.s.N, row.s.Mean, row.s.StdDev, row.s.Min, row.s.Max)
	}
	return tw.Flush()
}
