package zmod_test

import (
	"testing"

	"github.com/WinterJet2021/Cryptography-Nullity-Demonstration/zmod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMod_NormalizesNegatives verifies that Mod returns values in [0, m)
// even for negative inputs, unlike the built-in % operator.
func TestMod_NormalizesNegatives(t *testing.T) {
	assert.Equal(t, 23, zmod.Mod(-3, 26), "-3 mod 26 must normalize to 23")
	assert.Equal(t, 0, zmod.Mod(-26, 26), "-26 mod 26 must normalize to 0")
	assert.Equal(t, 25, zmod.Mod(-1, 26), "-1 mod 26 must normalize to 25")
}

// TestMod_Range checks representative positive inputs across block boundaries.
func TestMod_Range(t *testing.T) {
	assert.Equal(t, 0, zmod.Mod(0, 26))
	assert.Equal(t, 25, zmod.Mod(25, 26))
	assert.Equal(t, 0, zmod.Mod(26, 26))
	assert.Equal(t, 1, zmod.Mod(27, 26))
	assert.Equal(t, 1, zmod.Mod(105, 26), "105 = 4*26 + 1")
}

// TestMod_BadModulusPanics ensures a non-positive modulus is treated as a
// programmer error.
func TestMod_BadModulusPanics(t *testing.T) {
	assert.Panics(t, func() { zmod.Mod(5, 0) }, "zero modulus must panic")
	assert.Panics(t, func() { zmod.Mod(5, -26) }, "negative modulus must panic")
}

// TestGCD_Known verifies the divisor structure of 26 = 2 * 13 and the
// conventional zero cases.
func TestGCD_Known(t *testing.T) {
	assert.Equal(t, 13, zmod.GCD(13, 26), "13 divides 26")
	assert.Equal(t, 2, zmod.GCD(2, 26), "2 divides 26")
	assert.Equal(t, 2, zmod.GCD(24, 26))
	assert.Equal(t, 1, zmod.GCD(7, 26), "7 is coprime with 26")
	assert.Equal(t, 26, zmod.GCD(0, 26), "gcd(0, n) is n")
	assert.Equal(t, 0, zmod.GCD(0, 0), "gcd(0, 0) is 0 by convention")
}

// TestGCD_NegativeOperands verifies the result stays non-negative.
func TestGCD_NegativeOperands(t *testing.T) {
	assert.Equal(t, 2, zmod.GCD(-2, 26))
	assert.Equal(t, 2, zmod.GCD(2, -26))
	assert.Equal(t, 13, zmod.GCD(-13, -26))
}

// TestInverse_Known checks hand-verified inverses in Z26.
func TestInverse_Known(t *testing.T) {
	cases := []struct{ a, inv int }{
		{1, 1},
		{3, 9},   // 27 = 26 + 1
		{5, 21},  // 105 = 4*26 + 1
		{7, 15},  // 105 again
		{25, 25}, // 625 = 24*26 + 1
	}
	for _, c := range cases {
		got, err := zmod.Inverse(c.a, 26)
		require.NoError(t, err, "inverse of %d must exist", c.a)
		assert.Equal(t, c.inv, got, "inverse of %d mod 26", c.a)
	}
}

// TestInverse_ExistsIffCoprime sweeps all residues of Z26 and checks that an
// inverse exists exactly when gcd(a, 26) == 1, and that it really inverts.
func TestInverse_ExistsIffCoprime(t *testing.T) {
	for a := 0; a < 26; a++ {
		inv, err := zmod.Inverse(a, 26)
		if zmod.GCD(a, 26) == 1 {
			require.NoError(t, err, "a=%d is coprime with 26", a)
			assert.Equal(t, 1, zmod.Mod(a*inv, 26), "a=%d: a*inv must be 1 mod 26", a)
		} else {
			assert.ErrorIs(t, err, zmod.ErrNoInverse, "a=%d shares a factor with 26", a)
		}
	}
}

// TestInverse_NormalizesNegatives verifies that negative inputs are reduced
// before the search.
func TestInverse_NormalizesNegatives(t *testing.T) {
	// -3 ≡ 23 (mod 26) and 23*17 = 391 = 15*26 + 1.
	inv, err := zmod.Inverse(-3, 26)
	require.NoError(t, err)
	assert.Equal(t, 17, inv)
}

// TestInverse_BadModulus ensures degenerate moduli error out instead of
// looping or panicking.
func TestInverse_BadModulus(t *testing.T) {
	_, err := zmod.Inverse(3, 1)
	assert.ErrorIs(t, err, zmod.ErrBadModulus)

	_, err = zmod.Inverse(3, 0)
	assert.ErrorIs(t, err, zmod.ErrBadModulus)
}
