// SPDX-License-Identifier: MIT
// Package hill: the inverse transform — the half of the cipher that can
// fail, and the point of the whole demonstration. Real mode inverts over
// the reals and refuses determinants within tolerance of zero; Mod26 mode
// rebuilds the exact modular inverse from the integer determinant and the
// adjugate, and refuses keys whose determinant shares a factor with 26.

package hill

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/WinterJet2021/Cryptography-Nullity-Demonstration/zmod"
)

// Decrypt applies the inverse of key to each ciphertext block and returns
// the recovered blocks plus their rounded symbol codes, in reading order.
//
// Real mode inverts the key over the reals; a determinant within
// DefaultTolerance of zero returns ErrSingularMatrix before any inversion
// is attempted. Mod26 mode builds the exact modular inverse via
// InverseKeyMod26 and applies it with every product reduced into [0, 26).
//
// Every failure is a structured error; no default result is ever
// substituted for a failed decryption.
//
// Complexity: O(n³ + len(blocks)·n²) in Real mode; Mod26 adds the O(n!·n)
// cofactor determinants, negligible at classroom orders.
func Decrypt(blocks []Block, key *KeyMatrix, mode CipherMode) ([]Block, []int, error) {
	if err := validateBlocks(opDecrypt, blocks, key, mode); err != nil {
		return nil, nil, err
	}
	if mode == Mod26 {
		return mod26Decrypt(blocks, key)
	}

	return realDecrypt(blocks, key)
}

// realDecrypt undoes c = K·v with the real inverse of K, rounding each
// recovered component to its nearest integer code.
func realDecrypt(blocks []Block, key *KeyMatrix) ([]Block, []int, error) {
	kd := key.dense()

	// Singularity gate: refuse before asking gonum to invert.
	det := mat.Det(kd)
	if math.Abs(det) < DefaultTolerance {
		return nil, nil, fmt.Errorf("%s: |det| = %.3g below tolerance: %w",
			opDecrypt, math.Abs(det), ErrSingularMatrix)
	}

	var inv mat.Dense
	if err := inv.Inverse(kd); err != nil {
		// gonum flags ill-conditioned keys with mat.Condition but still
		// fills in a usable inverse; only a hard failure is fatal here.
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, nil, fmt.Errorf("%s: inversion failed: %w", opDecrypt, ErrSingularMatrix)
		}
	}

	out := make([]Block, 0, len(blocks))
	codes := make([]int, 0, len(blocks)*key.n)
	for _, b := range blocks {
		v := mat.NewVecDense(key.n, append([]float64(nil), b...))
		var p mat.VecDense
		p.MulVec(&inv, v)

		res := make(Block, key.n)
		for i := 0; i < key.n; i++ {
			res[i] = p.AtVec(i)
			codes = append(codes, int(math.Round(res[i])))
		}
		out = append(out, res)
	}

	return out, codes, nil
}

// mod26Decrypt undoes the classical Hill cipher with the modular inverse
// key. All arithmetic stays in [0, 26).
func mod26Decrypt(blocks []Block, key *KeyMatrix) ([]Block, []int, error) {
	kinv, err := InverseKeyMod26(key)
	if err != nil {
		return nil, nil, err
	}

	kd := kinv.dense()
	out := make([]Block, 0, len(blocks))
	codes := make([]int, 0, len(blocks)*key.n)
	for _, b := range blocks {
		v := mat.NewVecDense(key.n, append([]float64(nil), b...))
		var p mat.VecDense
		p.MulVec(kd, v)

		res := make(Block, key.n)
		for i := 0; i < key.n; i++ {
			code := zmod.Mod(int(math.Round(p.AtVec(i))), Modulus)
			res[i] = float64(code)
			codes = append(codes, code)
		}
		out = append(out, res)
	}

	return out, codes, nil
}

// InverseKeyMod26 builds the modular inverse of an integer key in Z26:
// K⁻¹ = det⁻¹ · adj(K) (mod 26).
//
// Implementation:
//   - Stage 1: exact integer determinant by cofactor expansion, so no
//     floating-point rounding can leak into the Z26 reasoning.
//   - Stage 2: gatekeeping. det == 0 is ErrSingularMatrix; a determinant
//     sharing a factor with 26 = 2×13 returns *NotInvertibleMod26Error
//     carrying det mod 26 and the offending gcd (0 kept as the sentinel
//     when det ≡ 0 mod 26, matching Analyze).
//   - Stage 3: det⁻¹ by trial search over 1..25 (zmod.Inverse).
//   - Stage 4: adjugate — the cofactor of (i,j) with checkerboard sign
//     (−1)^(i+j), written transposed at (j,i), reduced into [0, 26).
//   - Stage 5: entrywise det⁻¹ · adj, reduced mod 26.
//
// Returns a fresh KeyMatrix; k itself is never touched.
//
// Errors:
//   - ErrNilMatrix, ErrNonIntegerKey — structural rejections.
//   - ErrSingularMatrix             — det == 0 exactly.
//   - *NotInvertibleMod26Error      — gcd(det mod 26, 26) ≠ 1.
//
// Complexity: O(n!·n) through the cofactor determinants — fine for the
// 2×2 and 3×3 classroom keys, and deliberately not optimized past them.
func InverseKeyMod26(k *KeyMatrix) (*KeyMatrix, error) {
	if k == nil {
		return nil, hillErrorf(opInverseKey, ErrNilMatrix)
	}
	entries, err := k.intEntries()
	if err != nil {
		return nil, hillErrorf(opInverseKey, err)
	}

	// Stage 1: exact determinant.
	det := intDeterminant(entries)
	if det == 0 {
		return nil, hillErrorf(opInverseKey, ErrSingularMatrix)
	}

	// Stage 2: the Z26 gate, with the 0 sentinel for det ≡ 0 (mod 26).
	detMod := zmod.Mod(det, Modulus)
	gcd := 0
	if detMod != 0 {
		gcd = zmod.GCD(detMod, Modulus)
	}
	if gcd != 1 {
		return nil, &NotInvertibleMod26Error{DetMod26: detMod, Gcd: gcd}
	}

	// Stage 3: modular inverse of the determinant.
	detInv, err := zmod.Inverse(detMod, Modulus)
	if err != nil {
		// gcd == 1 guarantees existence; anything else is an internal bug.
		return nil, fmt.Errorf("%s: %v: %w", opInverseKey, err, ErrNumericFailure)
	}

	// Stages 4+5: transposed cofactors scaled by det⁻¹, all in [0, 26).
	n := len(entries)
	kinv, err := NewKeyMatrix(n)
	if err != nil {
		return nil, hillErrorf(opInverseKey, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cof := intDeterminant(minorOf(entries, i, j))
			if (i+j)%2 == 1 {
				cof = -cof
			}
			adj := zmod.Mod(cof, Modulus) // adjugate entry destined for (j, i)
			kinv.data[j*n+i] = float64(zmod.Mod(detInv*adj, Modulus))
		}
	}

	return kinv, nil
}

// intDeterminant computes the exact determinant of an integer matrix by
// cofactor expansion along the first row. Exponential on purpose:
// exactness over speed at classroom sizes.
func intDeterminant(a [][]int) int {
	n := len(a)
	if n == 1 {
		return a[0][0]
	}
	if n == 2 {
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	}

	det := 0
	sign := 1
	for j := 0; j < n; j++ {
		det += sign * a[0][j] * intDeterminant(minorOf(a, 0, j))
		sign = -sign
	}

	return det
}

// minorOf returns a copy of a with row i and column j removed.
func minorOf(a [][]int, i, j int) [][]int {
	n := len(a)
	m := make([][]int, 0, n-1)
	for r := 0; r < n; r++ {
		if r == i {
			continue
		}
		row := make([]int, 0, n-1)
		for c := 0; c < n; c++ {
			if c == j {
				continue
			}
			row = append(row, a[r][c])
		}
		m = append(m, row)
	}

	return m
}
