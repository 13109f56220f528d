// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package recommend

import (
	"fmt"
	"math"
	"sort"
)

// Entry is one observed cell of a matrix column.
type Entry struct {
	// Row is the user's row index in the matrix.
	Row int

	// Rating is the observed rating.
	Rating float64
}

// Vector is a sparse matrix column: observed cells only, ordered by Row.
type Vector []Entry

// Matrix is a sparse user x title rating matrix. Rows are distinct user IDs
// in ascending order and columns are distinct titles in ascending order.
// Unrated cells are absent, never zero.
type Matrix struct {
	users    []int
	titles   []string
	columns  []Vector
	rowIndex map[int]int
	colIndex map[string]int
	cells    int
}

// BuildMatrix pivots the store into a Matrix.
//
// When the same user rated the same title more than once the cell holds the
// mean of those ratings. An empty store, or a store containing a non-finite
// rating, is rejected with ErrInput.
func BuildMatrix(store *RatingStore) (*Matrix, error) {
	records := store.Records()
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: rating store is empty", ErrInput)
	}

	type cellKey struct {
		user  int
		title string
	}
	type cellAcc struct {
		sum   float64
		count int
	}

	cells := make(map[cellKey]*cellAcc, len(records))
	userSet := make(map[int]struct{})
	titleSet := make(map[string]struct{})

	for i := range records {
		r := &records[i]
		if math.IsNaN(r.Rating) || math.IsInf(r.Rating, 0) {
			return nil, fmt.Errorf("%w: non-finite rating for user %d on %q", ErrInput, r.UserID, r.Title)
		}
		k := cellKey{user: r.UserID, title: r.Title}
		acc := cells[k]
		if acc == nil {
			acc = &cellAcc{}
			cells[k] = acc
		}
		acc.sum += r.Rating
		acc.count++
		userSet[r.UserID] = struct{}{}
		titleSet[r.Title] = struct{}{}
	}

	m := &Matrix{
		users:    make([]int, 0, len(userSet)),
		titles:   make([]string, 0, len(titleSet)),
		rowIndex: make(map[int]int, len(userSet)),
		colIndex: make(map[string]int, len(titleSet)),
		cells:    len(cells),
	}
	for u := range userSet {
		m.users = append(m.users, u)
	}
	sort.Ints(m.users)
	for i, u := range m.users {
		m.rowIndex[u] = i
	}
	for t := range titleSet {
		m.titles = append(m.titles, t)
	}
	sort.Strings(m.titles)
	for i, t := range m.titles {
		m.colIndex[t] = i
	}

	m.columns = make([]Vector, len(m.titles))
	for k, acc := range cells {
		col := m.colIndex[k.title]
		m.columns[col] = append(m.columns[col], Entry{
			Row:    m.rowIndex[k.user],
			Rating: acc.sum / float64(acc.count),
		})
	}
	for _, v := range m.columns {
		sort.Slice(v, func(i, j int) bool { return v[i].Row < v[j].Row })
	}

	return m, nil
}

// Users returns the number of rows.
func (m *Matrix) Users() int {
	return len(m.users)
}

// Items returns the number of columns.
func (m *Matrix) Items() int {
	return len(m.titles)
}

// Cells returns the number of observed cells.
func (m *Matrix) Cells() int {
	return m.cells
}

// Density returns the fraction of cells that are observed.
func (m *Matrix) Density() float64 {
	total := len(m.users) * len(m.titles)
	if total == 0 {
		return 0
	}
	return float64(m.cells) / float64(total)
}

// UserIDs returns the row user IDs in row order. The slice must not be modified.
func (m *Matrix) UserIDs() []int {
	return m.users
}

// Titles returns the column titles in column order. The slice must not be modified.
func (m *Matrix) Titles() []string {
	return m.titles
}

// Column returns the observed cells of a title's column.
func (m *Matrix) Column(title string) (Vector, bool) {
	idx, ok := m.colIndex[title]
	if !ok {
		return nil, false
	}
	return m.columns[idx], true
}

// Cell returns the rating a user gave a title, if present.
func (m *Matrix) Cell(userID int, title string) (float64, bool) {
	row, ok := m.rowIndex[userID]
	if !ok {
		return 0, false
	}
	col, ok := m.Column(title)
	if !ok {
		return 0, false
	}
	i := sort.Search(len(col), func(i int) bool { return col[i].Row >= row })
	if i < len(col) && col[i].Row == row {
		return col[i].Rating, true
	}
	return 0, false
}
