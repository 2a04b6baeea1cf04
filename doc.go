// Package gf2gauss is a small, zero-cgo toolkit for Gauss-Jordan elimination
// over GF(2), the field {0, 1} where addition is XOR.
//
// 🚀 What is gf2gauss?
//
//	A pure-Go library that brings together:
//		• Bit matrices: packed rows, no-copy views, word-wide row XOR
//		• Forward elimination: row-echelon form with partial pivoting
//		• Backward substitution: reduced row-echelon form
//		• Traces: which columns pivoted and which were skipped
//
// ✨ Why GF(2)?
//
//   - Threshold secret-sharing and coding-theory constructions work with
//     binary generator and parity matrices
//   - Over GF(2) every pivot is 1 and subtraction is XOR, so elimination
//     needs only row swaps and row XORs
//
// Under the hood, everything is organized under two subpackages:
//
//	bitmatrix/   — Matrix, View, accessors, validators, sentinel errors
//	elimination/ — Pivot, Forward, Backward, Reduce, Rank, checkers, options
//
// Quick example:
//
//	[1 1]  Forward  [1 1]  Backward  [1 0]
//	[1 0]  ──────▶  [0 1]  ───────▶  [0 1]
//
//	go get github.com/katalvlaran/gf2gauss
package gf2gauss
