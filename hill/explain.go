package hill

// Explanation returns the long-form answer to the question the whole
// package exists to demonstrate: why a singular key cannot be decrypted.
// The demo CLI prints it verbatim.
func Explanation() string {
	return explanationText
}

const explanationText = `============================================================
WHY SINGULAR MATRICES FAIL IN CRYPTOGRAPHY
============================================================

1. MATHEMATICAL EXPLANATION
----------------------------------------
Encryption:  C = K × P   (ciphertext = key × plaintext)
Decryption:  P = K⁻¹ × C (plaintext = inverse key × ciphertext)

If det(K) = 0, the inverse K⁻¹ does not exist.
Without K⁻¹ there is no way to recover P from C: the
ciphertext can be produced but never undone.

2. INFORMATION THEORY PERSPECTIVE
----------------------------------------
A singular matrix collapses n-dimensional space onto a
subspace of lower dimension (rank < n, nullity > 0).
Distinct plaintext vectors land on the SAME ciphertext
vector, so the mapping is many-to-one. A many-to-one map
cannot be reversed — the collapsed information is not
hidden, it is destroyed.

3. GEOMETRIC INTERPRETATION
----------------------------------------
An invertible 2×2 matrix sends the unit square to a
parallelogram of area |det| > 0: space is stretched and
sheared but never flattened. A singular matrix squashes
the square onto a line (or a single point). Once the
plane has been flattened onto a line, no transformation
can unfold it again.

4. HILL CIPHER ADDITIONAL CONSTRAINT
----------------------------------------
Classical Hill works modulo 26, which adds a second
requirement on top of det ≠ 0:

    gcd(det(K) mod 26, 26) = 1

Because 26 = 2 × 13, any determinant sharing a factor of
2 or 13 has no multiplicative inverse mod 26. Keys with
determinants such as 2, 4, 13 or 26 are useless for the
classical cipher even though they are invertible over
the reals.

5. SUMMARY
----------------------------------------
A usable Hill cipher key must satisfy BOTH conditions:

  a) det(K) ≠ 0               — invertible over the reals
  b) gcd(det(K) mod 26, 26) = 1 — invertible in Z26

Fail either one and encryption becomes a one-way trip:
messages go in, nothing comes back out.
`
