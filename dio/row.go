package dio

// row is one row of the system together with its search state. Selection
// from the column multiset happens here, both plainly and under the
// solubility constraints of the rows below.
type row struct {
	name       int // original insertion position, for read-back
	coeff      int
	minSize    int
	minProduct int // coeff · minSize
	minLeave   int // minimum sum that must be left for the rows below
	maxSize    int
	maxProduct int // coeff · maxSize
	maxLeave   int // maximum sum that may be left for the rows below

	currentSize    int // current size of the selection being enumerated
	currentMaxSize int // largest selection size feasible in this frame

	selection []selection
	soluble   []soluble // complex systems only
}

// rowLess orders rows by descending coefficient, splitting ties by
// ascending maximum allowed sum.
func rowLess(a, b *row) bool {
	if a.coeff != b.coeff {
		return a.coeff > b.coeff
	}
	return a.maxSize < b.maxSize
}

// multisetSelect finds the next selection of currentSize elements from the
// column multiset bag, or the first one when findFirst is set. It undoes
// the previous selection until the selected amount of some element can be
// increased by one without exceeding the overall size, then makes up the
// size by selecting the earliest elements available. Columns are debited
// and credited in place. Returns false when no selection of this size
// remains.
func (r *row) multisetSelect(bag []int, findFirst bool) bool {
	var undone int

	if findFirst {
		undone = r.currentSize
	} else {
		if r.currentSize == 0 {
			return false
		}
		advanced := false
		for j := range bag {
			if r.selection[j].extra > r.selection[j].maxExtra {
				panic("dio: extra exceeds maxExtra")
			}
			t := r.selection[j].extra
			if undone > 0 && t < r.selection[j].maxExtra {
				r.selection[j].extra++
				undone--
				bag[j] -= r.coeff
				advanced = true
				break
			}
			if t > 0 {
				r.selection[j].extra = 0
				undone += t
				bag[j] += t * r.coeff
			}
		}
		if !advanced {
			return false
		}
	}

	for j := 0; undone > 0; j++ {
		if j >= len(bag) {
			panic("dio: overran bag")
		}
		t := min(undone, r.selection[j].maxExtra)
		if t > 0 {
			r.selection[j].extra = t
			undone -= t
			bag[j] -= t * r.coeff
		}
	}

	return true
}

// multisetComplex is multisetSelect threaded through the solubility table
// of the row below: every column residual this row leaves behind must stay
// expressible over the remaining rows. The forward pass selects earliest
// elements first; whenever a partial allocation leaves an insoluble
// residual, the backtrack pass unwinds positions until some element's count
// can be raised to the smallest value that restores solubility, and the
// forward pass resumes from there.
func (r *row) multisetComplex(bag []int, nextSoluble []soluble, findFirst bool) bool {
	var undone int

	if findFirst {
		undone = r.currentSize
	} else {
		if r.currentSize == 0 {
			return false
		}
	}

	forwarding := findFirst
	for {
		if forwarding {
			complete := true
			for j := 0; undone > 0; j++ {
				if j >= len(bag) {
					panic("dio: overran bag")
				}
				t := r.selection[j].maxExtra
				if t <= undone {
					if t > 0 {
						r.selection[j].extra = t
						undone -= t
						bag[j] -= t * r.coeff
					}
				} else {
					r.selection[j].extra = undone
					bag[j] -= undone * r.coeff
					undone = 0
					if nextSoluble[bag[j]].min == insoluble {
						complete = false
					}
				}
			}
			if complete {
				return true
			}
		}

		forwarding = false
		for j := range bag {
			if r.selection[j].extra > r.selection[j].maxExtra {
				panic("dio: extra exceeds maxExtra")
			}
			t := r.selection[j].extra
			if undone > 0 && t < r.selection[j].maxExtra {
				c := bag[j]
				for e := 1; e <= undone; e++ {
					if t+e > r.selection[j].maxExtra {
						panic("dio: selection overflow")
					}
					c -= r.coeff
					if nextSoluble[c].min != insoluble {
						r.selection[j].extra = t + e
						bag[j] = c
						undone -= e
						forwarding = true
						break
					}
				}
				if forwarding {
					break
				}
			}
			if t > 0 {
				r.selection[j].extra = 0
				undone += t
				bag[j] += t * r.coeff
			}
		}
		if !forwarding {
			return false
		}
	}
}
