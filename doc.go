// Package diophantine is an in-memory solver for the bounded linear
// Diophantine systems that arise in associative-commutative matching.
//
// 🚀 What is diophantine?
//
//	A compact, deterministic library that enumerates every non-negative
//	integer matrix M satisfying R·M = C, where:
//		• R is a vector of positive row coefficients
//		• C is a vector of positive column values
//		• each row sum of M is constrained to a [min,max] window
//
// ✨ Why choose diophantine?
//
//   - Incremental – one solution per Solve call, resumable in place
//   - Deterministic – identical inputs always enumerate in the same order
//   - Pruned search – a dynamic-programming solubility table cuts the
//     exponential tail off the naive enumeration
//   - Pure Go – no cgo, no hidden deps
//
// All of the work happens in one subpackage:
//
//	dio/ — the System type: insertion, precompute, search and read-back
//
// Quick sketch:
//
//	sys := dio.NewSystem(2, 2)
//	_ = sys.InsertRow(2, 0, 5)
//	_ = sys.InsertRow(1, 0, 5)
//	_ = sys.InsertColumn(3)
//	_ = sys.InsertColumn(4)
//	for ok, _ := sys.Solve(); ok; ok, _ = sys.Solve() {
//		// read entries with sys.Solution(row, col)
//	}
//
// Dive into dio's package documentation for the algorithm outline,
// complexity notes and the full API contract.
//
//	go get github.com/katalvlaran/diophantine/dio
package diophantine
