// SPDX-License-Identifier: MIT
// Package hill: key-matrix analysis. Determinant, rank and nullity over
// the reals via gonum, then the Z26 view of the rounded determinant.
// Pure functions: nothing here mutates the key or caches results.

package hill

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/WinterJet2021/Cryptography-Nullity-Demonstration/zmod"
)

// Analyze computes the MatrixProperties snapshot of k.
//
// Implementation:
//   - Stage 1: real determinant via gonum (LU underneath).
//   - Stage 2: rank = number of singular values above DefaultTolerance
//     (SVD); nullity = order − rank.
//   - Stage 3: the Z26 view — round the determinant, floor-reduce it into
//     [0, 26), then gcd against 26 with the documented 0 sentinel for
//     det ≡ 0 (mod 26).
//
// The call is pure and idempotent: same key in, same snapshot out, the
// key untouched either way.
//
// Errors:
//   - ErrNilMatrix     — k is nil.
//   - ErrNumericFailure — the SVD failed to factorize (not observed at
//     demonstration scales).
//
// Complexity: O(n³) time, O(n²) space.
func Analyze(k *KeyMatrix) (MatrixProperties, error) {
	if k == nil {
		return MatrixProperties{}, hillErrorf(opAnalyze, ErrNilMatrix)
	}

	d := k.dense()
	det := mat.Det(d)

	// Rank from the singular spectrum: σ below tolerance counts as zero.
	var svd mat.SVD
	if ok := svd.Factorize(d, mat.SVDNone); !ok {
		return MatrixProperties{}, hillErrorf(opAnalyze, ErrNumericFailure)
	}
	rank := 0
	for _, sigma := range svd.Values(nil) {
		if sigma > DefaultTolerance {
			rank++
		}
	}

	// Z26 view of the rounded determinant.
	detMod := zmod.Mod(int(math.Round(det)), Modulus)
	gcd := 0 // sentinel when det ≡ 0 (mod 26)
	if detMod != 0 {
		gcd = zmod.GCD(detMod, Modulus)
	}

	return MatrixProperties{
		Order:           k.n,
		Determinant:     det,
		Rank:            rank,
		Nullity:         k.n - rank,
		IsSingular:      math.Abs(det) < DefaultTolerance,
		DetMod26:        detMod,
		GCD:             gcd,
		InvertibleMod26: gcd == 1,
	}, nil
}
