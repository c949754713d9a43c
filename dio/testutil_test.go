// Package dio_test shared helpers: solution validation, matrix keys and a
// brute-force reference enumerator for small systems.
package dio_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertValidSolution checks the universal invariants on one matrix: mass
// balance per column, row sums inside their windows, non-negative entries.
// rows are (coeff, minSize, maxSize); an Unbounded maxSize never fails the
// upper check.
func assertValidSolution(t *testing.T, rows [][3]int, cols []int, m [][]int) {
	t.Helper()

	for j, c := range cols {
		weighted := 0
		for i := range rows {
			assert.GreaterOrEqual(t, m[i][j], 0, "entry (%d,%d) must be non-negative", i, j)
			weighted += rows[i][0] * m[i][j]
		}
		assert.Equal(t, c, weighted, "column %d mass balance", j)
	}
	for i, r := range rows {
		sum := 0
		for j := range cols {
			sum += m[i][j]
		}
		assert.GreaterOrEqual(t, sum, r[1], "row %d sum below minSize", i)
		assert.LessOrEqual(t, sum, r[2], "row %d sum above maxSize", i)
	}
}

// matrixKey renders a matrix into a canonical comparable string.
func matrixKey(m [][]int) string {
	return fmt.Sprint(m)
}

// sortedKeys renders a set of matrices into a sorted key list, for
// order-insensitive comparison of solution sets.
func sortedKeys(ms [][][]int) []string {
	keys := make([]string, len(ms))
	for i, m := range ms {
		keys[i] = matrixKey(m)
	}
	sort.Strings(keys)

	return keys
}

// bruteForce enumerates every solution matrix of the system by exhaustive
// recursion: per column, all coefficient splits of the column value; across
// columns, their cartesian product; finally the row-sum windows filter.
// Only usable for tiny systems; it exists to pin down exhaustiveness.
func bruteForce(rows [][3]int, cols []int) [][][]int {
	nr, nc := len(rows), len(cols)

	// All per-column count vectors v with Σ coeff[i]·v[i] = value.
	var columnSplits func(value, i int, cur []int, out *[][]int)
	columnSplits = func(value, i int, cur []int, out *[][]int) {
		if i == nr {
			if value == 0 {
				*out = append(*out, append([]int(nil), cur...))
			}

			return
		}
		for k := 0; k*rows[i][0] <= value; k++ {
			cur[i] = k
			columnSplits(value-k*rows[i][0], i+1, cur, out)
		}
		cur[i] = 0
	}

	splits := make([][][]int, nc)
	for j, c := range cols {
		cur := make([]int, nr)
		columnSplits(c, 0, cur, &splits[j])
	}

	var out [][][]int
	choice := make([]int, nc)
	var product func(j int)
	product = func(j int) {
		if j == nc {
			m := make([][]int, nr)
			for i := range m {
				m[i] = make([]int, nc)
				sum := 0
				for jj := 0; jj < nc; jj++ {
					m[i][jj] = splits[jj][choice[jj]][i]
					sum += m[i][jj]
				}
				if sum < rows[i][1] || sum > rows[i][2] {
					return
				}
			}
			out = append(out, m)

			return
		}
		for k := range splits[j] {
			choice[j] = k
			product(j + 1)
		}
	}
	product(0)

	return out
}
