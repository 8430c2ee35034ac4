// Package hill implements the Hill cipher and the linear-algebra analysis
// behind it: a teaching engine for why singular matrices destroy messages.
//
// 🚀 What is the Hill cipher?
//
//	Each block of the message becomes a column vector v, and the key
//	matrix K encrypts it as c = K·v. Decryption needs K⁻¹ — so the whole
//	scheme stands or falls on the invertibility of K:
//	  • det(K) = 0 collapses a dimension of the message space; distinct
//	    plaintexts merge and no inverse exists.
//	  • In the classical mod-26 cipher even det(K) ≠ 0 is not enough:
//	    det(K) must also be coprime with 26 = 2 × 13.
//
// ✨ Key features:
//   - two cipher modes: the real-valued transform (Real) for the
//     rank/nullity demonstration, and the classical Hill cipher (Mod26)
//   - two alphabet conventions: Spaced (space=0, A..Z=1..26) and
//     Stripped (A..Z=0..25, spaces recorded and restored)
//   - Analyze: determinant, rank, nullity, det mod 26, gcd with 26
//   - exact modular key inversion via integer cofactors and adjugate
//   - every failure is a typed, inspectable error; decryption never
//     fabricates a plausible-looking wrong message
//
// ⚙️ Usage:
//
//	import "github.com/WinterJet2021/Cryptography-Nullity-Demonstration/hill"
//
//	eng := hill.NewEngine() // starts on the invertible demo key
//	res, err := eng.EncryptMessage("HELLO", hill.DefaultOptions())
//	if err != nil {
//	  // the request itself was malformed
//	}
//	if !res.Decryption.Success {
//	  // the key destroyed the message; res.Decryption.Err says why
//	}
//
// Performance is a non-concern here: orders 2 and 3 dominate, and the
// modular inverse deliberately uses exact cofactor expansion rather than
// anything clever.
package hill
