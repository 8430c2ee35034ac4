// Package nullity is a hands-on playground for one linear-algebra story:
// what the rank–nullity theorem does to cryptography.
//
// 🚀 What is this?
//
//	An educational Hill-cipher toolkit that brings together:
//		• Key matrices: build, parse, clone & validate square keys
//		• Analysis: determinant, rank, nullity, and the Z26 view
//		• Two ciphers: the raw real-valued map and the classical mod-26 Hill
//		• Two alphabets: space-preserving (0..26) and stripped (A..Z only)
//		• Decryption as an experiment: failure is an outcome, not a crash
//		• Geometry: before/after lattice plots that make nullity visible
//
// ✨ Why does it exist?
//
//   - Classroom-friendly – every intermediate of a run is kept and shown
//   - Honest failure – singular keys encrypt fine and then cannot decrypt,
//     which is exactly the lesson
//   - Pure library core – the CLI is a thin cobra shell over hill/
//
// Everything is organized under a few subpackages:
//
//	hill/   — key matrices, analysis, encode/encrypt/decrypt, the engine
//	zmod/   — arithmetic in Z26: mod, gcd, modular inverse
//	render/ — 2×2 transforms drawn as lattice plots (gonum/plot)
//	cmd/    — the nullitydemo console front end
//
// Quick ASCII example:
//
//	[ HELLO ] ──K──▶ [ 36 29 41 … ]   encryption: always works
//	[ ????? ] ◀─K⁻¹─ [ 36 29 41 … ]   decryption: needs det(K) ≠ 0
//
// With det(K) = 0 the second arrow does not exist: the key collapses a
// dimension of every block, distinct messages share a ciphertext, and no
// computation can split them apart again.
//
//	go get github.com/WinterJet2021/Cryptography-Nullity-Demonstration
package nullity
