// SPDX-License-Identifier: MIT

// Package protograph - dense weighted base graph & safe accessors.
//
// Purpose:
//   - Hold a small m_p×n_p matrix of non-negative multiplicities.
//   - Row-major buffer with the explicit index formula i*cols + j.
//   - At/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); FromRows/Rows/String: O(r*c).

package protograph

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// protoErrorf attaches method context and coordinates to a sentinel.
func protoErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Protograph.%s(%d,%d): %w", method, row, col, err)
}

// Protograph is a dense matrix whose entry (row, col) is the number of
// parallel unit connections the lifted block at that position must realize.
// Rows correspond to check-node classes, columns to variable-node classes.
type Protograph struct {
	r, c int
	data []int
}

var _ fmt.Stringer = (*Protograph)(nil)

// New creates an all-zero rows×cols protograph.
// Returns ErrBadShape unless rows > 0 and cols > 0.
func New(rows, cols int) (*Protograph, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("protograph.New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Protograph{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// FromRows copies a literal [][]int into a Protograph.
//
// Errors:
//   - ErrBadShape when there are no rows or the first row is empty.
//   - ErrRagged when rows differ in length.
//   - ErrNegativeEntry when any multiplicity is < 0.
func FromRows(rows [][]int) (*Protograph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("protograph.FromRows: %w", ErrBadShape)
	}
	p, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != p.c {
			return nil, fmt.Errorf("protograph.FromRows: row %d has %d entries, want %d: %w",
				i, len(row), p.c, ErrRagged)
		}
		for j, v := range row {
			if err = p.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// Height returns the number of check-node classes (rows).
func (p *Protograph) Height() int { return p.r }

// Width returns the number of variable-node classes (columns).
func (p *Protograph) Width() int { return p.c }

// At returns the multiplicity at (row, col).
func (p *Protograph) At(row, col int) (int, error) {
	if row < 0 || row >= p.r || col < 0 || col >= p.c {
		return 0, protoErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return p.data[row*p.c+col], nil
}

// Set stores a non-negative multiplicity at (row, col).
func (p *Protograph) Set(row, col, v int) error {
	if row < 0 || row >= p.r || col < 0 || col >= p.c {
		return protoErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if v < 0 {
		return protoErrorf(ctxSet, row, col, ErrNegativeEntry)
	}
	p.data[row*p.c+col] = v

	return nil
}

// Max returns the largest multiplicity.
func (p *Protograph) Max() int {
	m := 0
	for _, v := range p.data {
		m = max(m, v)
	}

	return m
}

// Rows returns the matrix as a fresh [][]int.
func (p *Protograph) Rows() [][]int {
	out := make([][]int, p.r)
	for i := range out {
		out[i] = append([]int(nil), p.data[i*p.c:(i+1)*p.c]...)
	}

	return out
}

// String renders one bracketed row per line.
func (p *Protograph) String() string {
	var b strings.Builder
	for i := 0; i < p.r; i++ {
		b.WriteString(_fmtRowOpen)
		base := i * p.c
		for j := 0; j < p.c; j++ {
			b.WriteString(strconv.Itoa(p.data[base+j]))
			if j+1 < p.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Parse reads the compact "a,b;c,d" notation used on the command line:
// rows separated by ';', entries by ','. Whitespace is ignored.
func Parse(s string) (*Protograph, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("protograph.Parse: empty input: %w", ErrBadShape)
	}
	var rows [][]int
	for i, line := range strings.Split(s, ";") {
		var row []int
		for _, field := range strings.Split(line, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("protograph.Parse: row %d: %q: %w", i, field, ErrSyntax)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return FromRows(rows)
}
