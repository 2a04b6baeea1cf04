// SPDX-License-Identifier: MIT
// Package elimination_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for elimination tests.

package elimination_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gf2gauss/bitmatrix"
	"github.com/katalvlaran/gf2gauss/elimination"
)

// mustInts builds a matrix from 0/1 rows or fails the test.
func mustInts(t testing.TB, rows [][]int) *bitmatrix.Matrix {
	t.Helper()
	m, err := bitmatrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

// mustZeros allocates an r×c zero matrix or fails the test.
func mustZeros(t testing.TB, r, c int) *bitmatrix.Matrix {
	t.Helper()
	m, err := bitmatrix.New(r, c)
	require.NoError(t, err)

	return m
}

// randomMatrix fills an r×c matrix from a seeded source; each cell is set
// with probability 1/2.
func randomMatrix(t testing.TB, r, c int, seed int64) *bitmatrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustZeros(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Intn(2) == 1 {
				require.NoError(t, m.Set(i, j, true))
			}
		}
	}

	return m
}

// stack returns the rows of a followed by the rows of b (same column count).
func stack(t testing.TB, a, b *bitmatrix.Matrix) *bitmatrix.Matrix {
	t.Helper()
	require.Equal(t, a.Cols(), b.Cols())
	rows := append(a.Bools(), b.Bools()...)
	if len(rows) == 0 {
		return mustZeros(t, 0, a.Cols())
	}
	m, err := bitmatrix.FromBools(rows)
	require.NoError(t, err)

	return m
}

// requireSameRowSpace asserts that a and b span the same GF(2) row space:
// rank(a) == rank(b) == rank([a; b]).
func requireSameRowSpace(t testing.TB, a, b *bitmatrix.Matrix) {
	t.Helper()
	ra, err := elimination.Rank(a)
	require.NoError(t, err)
	rb, err := elimination.Rank(b)
	require.NoError(t, err)
	rab, err := elimination.Rank(stack(t, a, b))
	require.NoError(t, err)
	require.Equal(t, ra, rb, "rank changed")
	require.Equal(t, ra, rab, "row spaces differ")
}
