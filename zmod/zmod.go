package zmod

import (
	"errors"
	"fmt"
)

// panicModulus is the stable panic message for a non-positive modulus.
const panicModulus = "zmod: modulus must be positive"

var (
	// ErrBadModulus indicates a modulus without multiplicative structure;
	// Inverse requires m > 1.
	ErrBadModulus = errors.New("zmod: modulus must be > 1")

	// ErrNoInverse indicates that a has no multiplicative inverse modulo m,
	// i.e. gcd(a, m) != 1.
	ErrNoInverse = errors.New("zmod: no multiplicative inverse")
)

// Mod returns a modulo m normalized into [0, m).
// Unlike the built-in % operator, the result is never negative:
// Mod(-3, 26) == 23.
// Panics if m <= 0 (programmer error; the modulus is a design constant).
// Complexity: O(1).
func Mod(a, m int) int {
	if m <= 0 {
		panic(panicModulus)
	}
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

// GCD returns the greatest common divisor of a and b via the Euclidean
// algorithm. The result is non-negative and GCD(0, 0) == 0.
// Complexity: O(log min(|a|, |b|)).
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Inverse returns the multiplicative inverse of a modulo m: the smallest
// d in 1..m-1 with (a*d) mod m == 1, found by trial search.
//
// Returns ErrBadModulus when m <= 1 and ErrNoInverse when no such d
// exists (exactly when gcd(a, m) != 1).
// Complexity: O(m) — fine for small moduli like 26.
func Inverse(a, m int) (int, error) {
	// Validate the modulus before normalizing a against it.
	if m <= 1 {
		return 0, ErrBadModulus
	}
	a = Mod(a, m)

	// Trial search: the first d with a*d ≡ 1 (mod m) is the inverse.
	for d := 1; d < m; d++ {
		if a*d%m == 1 {
			return d, nil
		}
	}

	return 0, fmt.Errorf("Inverse(%d, %d): %w", a, m, ErrNoInverse)
}
