// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package recommend

import "math"

// Pearson computes the sample Pearson correlation of two sparse columns over
// the rows present in both. It returns the coefficient, the number of shared
// rows, and whether the coefficient is defined.
//
// The coefficient is undefined when fewer than two rows are shared or when
// either side is constant over the shared rows.
func Pearson(a, b Vector) (r float64, overlap int, ok bool) {
	var sumA, sumB float64
	var firstA, firstB float64
	constA, constB := true, true

	// First pass: overlap size, sums and constancy.
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Row < b[j].Row:
			i++
		case a[i].Row > b[j].Row:
			j++
		default:
			x, y := a[i].Rating, b[j].Rating
			if overlap == 0 {
				firstA, firstB = x, y
			} else {
				constA = constA && x == firstA
				constB = constB && y == firstB
			}
			sumA += x
			sumB += y
			overlap++
			i++
			j++
		}
	}

	if overlap < 2 || constA || constB {
		return 0, overlap, false
	}

	meanA := sumA / float64(overlap)
	meanB := sumB / float64(overlap)

	// Second pass: centered cross products.
	var num, denA, denB float64
	i, j = 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Row < b[j].Row:
			i++
		case a[i].Row > b[j].Row:
			j++
		default:
			dA := a[i].Rating - meanA
			dB := b[j].Rating - meanB
			num += dA * dB
			denA += dA * dA
			denB += dB * dB
			i++
			j++
		}
	}

	if denA == 0 || denB == 0 {
		return 0, overlap, false
	}

	r = num / math.Sqrt(denA*denB)
	if math.IsNaN(r) {
		return 0, overlap, false
	}

	// Rounding can push perfectly correlated vectors just past the bounds.
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r, overlap, true
}
