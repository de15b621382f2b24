// SPDX-License-Identifier: MIT

// Package matrix - CostMatrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a dense n×n integer cost buffer with the index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewCostMatrix: O(n²) zero-init; At/Set: O(1); Row: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

func costErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CostMatrix.%s(%d,%d): %w", method, row, col, err)
}

// CostMatrix is a square row-major matrix of non-negative travel costs.
// A zero entry means "no direct link"; the diagonal is always zero.
type CostMatrix struct {
	n    int     // dimension (rows == cols == n)
	data []int64 // contiguous row-major storage (len == n*n)
}

var _ fmt.Stringer = (*CostMatrix)(nil)

// NewCostMatrix creates an n×n zero matrix. n == 0 is a valid empty matrix.
func NewCostMatrix(n int) (*CostMatrix, error) {
	if n < 0 {
		return nil, ErrBadShape
	}

	return &CostMatrix{n: n, data: make([]int64, n*n)}, nil
}

// Size returns the dimension n.
func (m *CostMatrix) Size() int { return m.n }

// indexOf computes the flat offset for (row, col) or returns ErrOutOfRange.
func (m *CostMatrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, costErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At returns the cost stored at (row, col).
func (m *CostMatrix) At(row, col int) (int64, error) {
	off, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set stores v at (row, col). Negative costs are rejected.
func (m *CostMatrix) Set(row, col int, v int64) error {
	off, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if v < 0 {
		return costErrorf(ctxSet, row, col, ErrNegativeCost)
	}
	m.data[off] = v

	return nil
}

// Row returns row i without copying. Callers must treat it as read-only.
// Panics on an out-of-range i; hot loops call it with indices they produced.
func (m *CostMatrix) Row(i int) []int64 {
	return m.data[i*m.n : (i+1)*m.n]
}

// IsSymmetric reports whether m[i][j] == m[j][i] for all i, j.
func (m *CostMatrix) IsSymmetric() bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return false
			}
		}
	}

	return true
}

// String renders the matrix one bracketed row per line.
func (m *CostMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString("[")
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
