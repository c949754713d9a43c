// Package dio enumerates the solutions of bounded linear Diophantine
// systems over the natural numbers.
//
// Given a vector R of positive row coefficients and a vector C of positive
// column values, a solution is a matrix M of natural numbers with
//
//	R · M = C
//
// where, additionally, the sum of each row of M is confined to a per-row
// [minSize, maxSize] window. The intuition (from AC/ACU matching, where the
// problem originates) is that M[i][j] is the multiplicity of the j-th
// constant assigned to the i-th variable.
//
// Usage:
//
//	sys := dio.NewSystem(2, 1)
//	_ = sys.InsertRow(1, 0, 2)
//	_ = sys.InsertRow(1, 0, 2)
//	_ = sys.InsertColumn(2)
//	for {
//		ok, err := sys.Solve()
//		if err != nil || !ok {
//			break
//		}
//		// sys.Solution(row, col) reads the current matrix entry
//	}
//
// Algorithm Outline:
//  1. Sort rows by descending coefficient (ascending maxSize on ties) and
//     solve one row at a time, backtracking whenever a dead end is detected.
//     To solve a row the current columns are viewed as a multiset and
//     selections from it are tried systematically, smallest first.
//  2. A system is "simple" iff its last sorted row has coefficient 1 and a
//     maxSize no smaller than the largest column value: any residual left
//     for that row can then be absorbed, so one whole class of dead ends
//     disappears. Otherwise the system is "complex" and a per-row
//     solubility table (the minimum and maximum count this row may take
//     from a column of residual v while keeping v consumable by the rows
//     below) is precomputed by dynamic programming and used to prune.
//  3. Solve returns one solution per call and resumes the interleaved
//     row-walk/selection state in place, so enumeration is incremental and
//     deterministic. After it reports false no further solutions exist.
//
// Complexity:
//
//	Precompute: O(m·n + m·V) time and memory, V = max column value
//	            (the solubility tables dominate in the complex case).
//	Search:     output-sensitive; allocations happen only at precompute,
//	            the search loop reuses its vectors in place.
//
// All quantities are machine-word natural numbers; column values bounded by
// the column sum fit comfortably for the matching workloads this targets.
//
// Use this package when you need every solution of a moderately sized
// system, produced lazily; it is not a general integer-programming solver.
package dio
