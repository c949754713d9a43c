package dio

import (
	"fmt"
	"strings"
)

// DumpInfo renders the system's internal state (flags, permutation,
// per-row search state and residual columns) as a multi-line string.
// Intended for debugging and test failure messages; the format is not part
// of the API contract.
func (s *System) DumpInfo() string {
	var b strings.Builder

	fmt.Fprintf(&b, "row permute: %v\n", s.rowPermute)
	fmt.Fprintf(&b, "closed: %v\ncolumn sum: %d\ncomplex: %v\nfailed: %v\nmax column value: %d\n",
		s.closed, s.columnSum, s.complex, s.failed, s.maxColumnValue)

	b.WriteString("rows:")
	for i := range s.rows {
		r := &s.rows[i]
		fmt.Fprintf(&b, "\n\tname: %d coeff: %d", r.name, r.coeff)
		fmt.Fprintf(&b, "\n\tsize: [%d,%d] product: [%d,%d] leave: [%d,%d]",
			r.minSize, r.maxSize, r.minProduct, r.maxProduct, r.minLeave, r.maxLeave)
		fmt.Fprintf(&b, "\n\tcurrent size: %d current max size: %d", r.currentSize, r.currentMaxSize)
		b.WriteString("\n\tselection: [")
		for _, sel := range r.selection {
			fmt.Fprintf(&b, "{%d}", sel.base)
			if sel.extra != 0 {
				fmt.Fprintf(&b, "+%d extra, %d maxExtra", sel.extra, sel.maxExtra)
			}
			b.WriteString(", ")
		}
		b.WriteString("]\n\tsoluble: [")
		for _, sol := range r.soluble {
			fmt.Fprintf(&b, "{%d,%d} ", sol.min, sol.max)
		}
		b.WriteString("]")
	}

	fmt.Fprintf(&b, "\ncolumns: %v\n", s.columns)

	return b.String()
}
