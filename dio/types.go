// Package dio core types and sentinel errors.
package dio

import (
	"errors"
	"math"
)

// Unbounded may be passed as maxSize to InsertRow to leave the row's sum
// unconstrained from above. Precompute substitutes the column sum, which no
// row can exceed anyway.
const Unbounded = math.MaxInt

// Sentinel errors for system construction and read-back.
var (
	// ErrSystemClosed indicates an insertion after the first Solve call.
	ErrSystemClosed = errors.New("dio: system is closed once solving has started")
	// ErrBadCoefficient indicates a row coefficient ≤ 0.
	ErrBadCoefficient = errors.New("dio: row coefficient must be positive")
	// ErrBadBounds indicates minSize < 0 or minSize > maxSize.
	ErrBadBounds = errors.New("dio: row size bounds must satisfy 0 ≤ minSize ≤ maxSize")
	// ErrBadColumnValue indicates a column value ≤ 0.
	ErrBadColumnValue = errors.New("dio: column value must be positive")
	// ErrEmptySystem indicates Solve was called with no rows or no columns.
	ErrEmptySystem = errors.New("dio: system must have at least one row and one column")
	// ErrNoSolution indicates a read-back without a current solution.
	ErrNoSolution = errors.New("dio: no current solution to read")
	// ErrIndexRange indicates a read-back index outside the system's shape.
	ErrIndexRange = errors.New("dio: solution index out of range")
)

// insoluble marks entries of a solubility table for which no count exists.
// Real counts are natural numbers, so any negative value is out of band.
const insoluble = -1

// selection records one row's contribution to one column: a fixed base
// forced by solubility (always 0 in simple systems) plus a variable extra,
// bounded by maxExtra within the current search frame. The row contributes
// base+extra units to the column.
type selection struct {
	base     int
	extra    int
	maxExtra int
}

// soluble is one entry of a row's solubility table: the minimum and maximum
// count this row may take from a column of a given residual value while the
// remainder stays expressible over the rows below (their maxSize caps
// respected, minSize ignored: another column may make up the minimum).
// min == max == insoluble when no count works at all.
type soluble struct {
	min int
	max int
}
