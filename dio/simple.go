package dio

// Simple systems: the last sorted row has coefficient 1 and enough
// capacity to absorb any residual, so solving a row needs no solubility
// bookkeeping at all.

// solveRowSimple solves a non-last row by finding its next selection,
// escalating the selection size when the current one is spent. On first
// entry to the frame it generates the multiset and determines the feasible
// range of selection sizes. Returns false when the frame is exhausted.
func (s *System) solveRowSimple(rowIdx int, findFirst bool) bool {
	r := &s.rows[rowIdx]

	if findFirst {
		if !s.viable(rowIdx) {
			return false
		}
		columnTotal := 0
		maxSum := 0
		for i, c := range s.columns {
			r.selection[i].extra = 0
			columnTotal += c
			me := c / r.coeff
			maxSum += me
			r.selection[i].maxExtra = me
		}
		minSize := max(r.minSize, ceilingDivision(columnTotal-r.maxLeave, r.coeff))
		maxSize := min(min(maxSum, r.maxSize), floorDivision(columnTotal-r.minLeave, r.coeff))
		if minSize > maxSize {
			return false
		}
		r.currentSize = minSize
		r.currentMaxSize = maxSize
	} else {
		if r.multisetSelect(s.columns, false) {
			return true
		}
		if r.currentSize == r.currentMaxSize {
			return false
		}
		r.currentSize++
	}

	return r.multisetSelect(s.columns, true) // always succeeds
}

// solveLastRowSimple solves the last row by allocating what is left; its
// coefficient is 1, so each column's residual is taken verbatim.
func (s *System) solveLastRowSimple() {
	sel := s.rows[len(s.rows)-1].selection
	for i, c := range s.columns {
		sel[i].extra = c
	}
}

// solveSimple walks the rows in both directions, forward on success and
// backward on failure, until either the penultimate row succeeds (a
// solution: the last row absorbs the rest) or the first row fails (the
// enumeration is exhausted).
func (s *System) solveSimple(findFirst bool) bool {
	if len(s.rows) > 1 {
		penultimate := len(s.rows) - 2
		i := penultimate
		if findFirst {
			i = 0
		}
		for {
			findFirst = s.solveRowSimple(i, findFirst)
			if findFirst {
				if i == penultimate {
					break
				}
				i++
			} else {
				if i == 0 {
					break
				}
				i--
			}
		}
	}

	if findFirst {
		s.solveLastRowSimple()
	} else {
		s.failed = true
	}

	return findFirst
}
