// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency. Callers match
// with errors.Is; context is attached with fmt.Errorf("ctx: %w", ErrX).

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested size is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNegativeCost indicates an attempt to store a negative cost.
	ErrNegativeCost = errors.New("matrix: negative cost")

	// ErrNilGraph indicates that a nil graph was passed to Project.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrBadArc indicates an arc whose target lies outside the graph.
	ErrBadArc = errors.New("matrix: arc target out of range")
)
