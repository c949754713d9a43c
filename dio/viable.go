package dio

// viable rules out one kind of dead end before searching row rowIdx: for
// each initial segment of the unsolved rows there must be a large enough
// sum of large enough residual columns to cover the segment's accumulated
// minimum demand. The last row is exempt: it absorbs whatever remains.
// Returns false when the current partial solution cannot be completed.
func (s *System) viable(rowIdx int) bool {
	localSumOfMinProducts := 0
rows:
	for i := rowIdx; i <= len(s.rows)-2; i++ {
		t := s.rows[i].minProduct
		if t == 0 {
			continue
		}
		localSumOfMinProducts += t
		// Rows above i in the segment have larger coefficients, so the
		// segment's smallest usable column value is this row's coefficient.
		lowerLimit := s.rows[i].coeff
		localColumnSum := 0
		for _, c := range s.columns {
			if c >= lowerLimit {
				localColumnSum += c
				if localColumnSum >= localSumOfMinProducts {
					continue rows
				}
			}
		}

		return false
	}

	return true
}
