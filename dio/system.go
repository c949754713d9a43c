package dio

// System is a bounded linear Diophantine system under construction or mid
// enumeration. Build one with NewSystem, describe it with InsertRow and
// InsertColumn, then call Solve repeatedly; the first call seals the shape.
// A System is not safe for concurrent use; distinct Systems are
// independent.
type System struct {
	rows       []row
	columns    []int // residual column values, mutated in place during search
	rowPermute []int // original row name → sorted index

	columnSum      int
	maxColumnValue int
	closed         bool // no more insertions once solving has started
	complex        bool
	failed         bool // no (further) solutions exist
}

// NewSystem returns an open System with capacity preallocated for the
// estimated numbers of rows and columns. The estimates only size the
// backing storage; the system may grow past them.
func NewSystem(estRows, estCols int) *System {
	return &System{
		rows:    make([]row, 0, max(estRows, 0)),
		columns: make([]int, 0, max(estCols, 0)),
	}
}

// InsertRow appends a row with the given coefficient and [minSize, maxSize]
// window for its sum. Pass Unbounded as maxSize to leave the sum
// unconstrained from above.
//
// Returns ErrSystemClosed after the first Solve, ErrBadCoefficient when
// coeff ≤ 0, or ErrBadBounds when the window is malformed.
func (s *System) InsertRow(coeff, minSize, maxSize int) error {
	if s.closed {
		return ErrSystemClosed
	}
	if coeff <= 0 {
		return ErrBadCoefficient
	}
	if minSize < 0 || minSize > maxSize {
		return ErrBadBounds
	}
	s.rows = append(s.rows, row{
		name:    len(s.rows),
		coeff:   coeff,
		minSize: minSize,
		maxSize: maxSize,
	})

	return nil
}

// InsertColumn appends a column with the given positive target value.
//
// Returns ErrSystemClosed after the first Solve or ErrBadColumnValue when
// value ≤ 0.
func (s *System) InsertColumn(value int) error {
	if s.closed {
		return ErrSystemClosed
	}
	if value <= 0 {
		return ErrBadColumnValue
	}
	s.columns = append(s.columns, value)
	s.columnSum += value
	if value > s.maxColumnValue {
		s.maxColumnValue = value
	}

	return nil
}

// RowCount returns the number of rows inserted so far.
func (s *System) RowCount() int { return len(s.rows) }

// ColumnCount returns the number of columns inserted so far.
func (s *System) ColumnCount() int { return len(s.columns) }

// Solve produces the next solution of the system, returning true when one
// is available for read-back through Solution. The first call seals the
// shape and runs precompute. A false result, whether the system was
// infeasible from the start or the enumeration is exhausted, is terminal,
// and every later call returns false immediately.
//
// Returns ErrEmptySystem when first called on a system with no rows or no
// columns.
func (s *System) Solve() (bool, error) {
	findFirst := !s.closed
	if findFirst {
		if len(s.rows) == 0 || len(s.columns) == 0 {
			return false, ErrEmptySystem
		}
		if !s.precompute() {
			return false, nil
		}
	} else if s.failed {
		return false, nil
	}

	if s.complex {
		return s.solveComplex(findFirst), nil
	}

	return s.solveSimple(findFirst), nil
}

// Solution returns the current value of M[rowName][col], where rowName is
// the row's insertion position. Valid only between a Solve call that
// returned true and the next Solve call.
//
// Returns ErrNoSolution when there is no current solution and
// ErrIndexRange for indices outside the system's shape.
func (s *System) Solution(rowName, col int) (int, error) {
	if !s.closed || s.failed {
		return 0, ErrNoSolution
	}
	if rowName < 0 || rowName >= len(s.rows) || col < 0 || col >= len(s.columns) {
		return 0, ErrIndexRange
	}
	sel := &s.rows[s.rowPermute[rowName]].selection[col]

	return sel.base + sel.extra, nil
}

// SolutionMatrix materializes the whole current solution as a freshly
// allocated matrix in row insertion order. Same validity window as
// Solution.
func (s *System) SolutionMatrix() ([][]int, error) {
	if !s.closed || s.failed {
		return nil, ErrNoSolution
	}
	m := make([][]int, len(s.rows))
	for i := range m {
		sel := s.rows[s.rowPermute[i]].selection
		m[i] = make([]int, len(s.columns))
		for j := range m[i] {
			m[i][j] = sel[j].base + sel[j].extra
		}
	}

	return m, nil
}
