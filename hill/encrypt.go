// SPDX-License-Identifier: MIT
// Package hill: the forward transform. One kernel serves both cipher
// modes; the modular reduction is the only difference between them.

package hill

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/WinterJet2021/Cryptography-Nullity-Demonstration/zmod"
)

// validateBlocks checks the key/blocks conformance shared by Encrypt and
// Decrypt: a non-nil key, block lengths equal to the key order, and in
// Mod26 mode an integer key with integer-valued blocks.
func validateBlocks(op string, blocks []Block, key *KeyMatrix, mode CipherMode) error {
	if key == nil {
		return hillErrorf(op, ErrNilMatrix)
	}
	for i, b := range blocks {
		if len(b) != key.n {
			return fmt.Errorf("%s: block %d has %d entries, key order %d: %w",
				op, i, len(b), key.n, ErrDimensionMismatch)
		}
	}
	if mode == Mod26 {
		if !key.IsInteger() {
			return hillErrorf(op, ErrNonIntegerKey)
		}
		for i, b := range blocks {
			for j, v := range b {
				if math.Abs(v-math.Round(v)) > IntegerEps {
					return fmt.Errorf("%s: block %d entry %d = %g: %w",
						op, i, j, v, ErrNonIntegerBlock)
				}
			}
		}
	}

	return nil
}

// Encrypt applies the key to each block: c = K·v, reduced into [0, 26) in
// Mod26 mode and left at full precision in Real mode. Inputs are never
// mutated; the result is freshly allocated.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, and in Mod26 mode
// ErrNonIntegerKey / ErrNonIntegerBlock.
// Complexity: O(len(blocks)·n²).
func Encrypt(blocks []Block, key *KeyMatrix, mode CipherMode) ([]Block, error) {
	if err := validateBlocks(opEncrypt, blocks, key, mode); err != nil {
		return nil, err
	}

	kd := key.dense()
	out := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		v := mat.NewVecDense(key.n, append([]float64(nil), b...))
		var c mat.VecDense
		c.MulVec(kd, v)

		res := make(Block, key.n)
		for i := 0; i < key.n; i++ {
			res[i] = c.AtVec(i)
			if mode == Mod26 {
				res[i] = float64(zmod.Mod(int(math.Round(res[i])), Modulus))
			}
		}
		out = append(out, res)
	}

	return out, nil
}
