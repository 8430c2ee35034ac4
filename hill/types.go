// SPDX-License-Identifier: MIT

// Package hill: core enums, documented defaults, and result records.
// Constants here are the single source of truth for tolerances and the
// modulus; result structs are plain data, fresh per call, safe to keep.

package hill

import "fmt"

// Modulus is the size of the cipher alphabet. 26 = 2 × 13, which is exactly
// why even determinants and multiples of 13 break the classical cipher.
const Modulus = 26

const (
	// DefaultTolerance is the magnitude below which a determinant or a
	// singular value is treated as zero.
	DefaultTolerance = 1e-10

	// IntegerEps bounds how far an entry may sit from a whole number and
	// still count as integral for the mod-26 cipher.
	IntegerEps = 1e-9

	// MinOrder is the smallest supported key order.
	MinOrder = 2
)

// AlphabetMode selects how text maps to symbol codes.
//
//   - Spaced — space is code 0 and A..Z are 1..26. Spaces survive
//     encryption as themselves; any other character is rejected.
//     Padding appends spaces.
//
//   - Stripped — A..Z are 0..25. Everything else is removed before
//     encryption; positions of removed spaces are recorded so decryption
//     can restore the shape of the message. Padding appends 'A' (code 0).
type AlphabetMode int

const (
	// Spaced keeps spaces in-band as code 0, letters at 1..26.
	Spaced AlphabetMode = iota

	// Stripped drops non-letters and maps A..Z onto 0..25.
	Stripped
)

// String implements fmt.Stringer with the convention names used in docs
// and CLI flags.
func (m AlphabetMode) String() string {
	switch m {
	case Spaced:
		return "spaced-1to26"
	case Stripped:
		return "stripped-0to25"
	default:
		return fmt.Sprintf("alphabet(%d)", int(m))
	}
}

// CipherMode selects the arithmetic of the transform.
//
//   - Real — the raw linear map c = K·v over the reals, no modulus.
//     Ciphertext values are real numbers; decryption uses the real
//     inverse and rounds. This is the rank/nullity demonstration mode.
//
//   - Mod26 — the classical Hill cipher: integer key, every product
//     reduced into [0, 26), ciphertext expressible as letters.
type CipherMode int

const (
	// Real applies the key with no modular reduction.
	Real CipherMode = iota

	// Mod26 reduces every product modulo 26.
	Mod26
)

// String implements fmt.Stringer with the mode names used in CLI flags.
func (m CipherMode) String() string {
	switch m {
	case Real:
		return "real"
	case Mod26:
		return "mod26"
	default:
		return fmt.Sprintf("cipher(%d)", int(m))
	}
}

// Options configures one EncryptMessage run.
//
// Example:
//
//	opts := hill.Options{
//	  Mode:     hill.Mod26,    // classical Hill cipher
//	  Alphabet: hill.Stripped, // required by Mod26
//	}
//	res, err := eng.EncryptMessage("HELLO WORLD", opts)
type Options struct {
	Mode     CipherMode
	Alphabet AlphabetMode
}

// DefaultOptions returns the classroom defaults: the real-valued transform
// over the spaced alphabet, the combination the interactive demonstration
// starts with.
func DefaultOptions() Options {
	return Options{Mode: Real, Alphabet: Spaced}
}

// Block is one column vector of symbol codes or transformed values.
type Block []float64

// PaddingInfo records what Encode did to align the message, so the way
// back can strip fillers precisely instead of guessing.
type PaddingInfo struct {
	Alphabet   AlphabetMode
	BlockSize  int
	MessageLen int  // symbol codes before padding
	PadLen     int  // filler codes appended (0 when already aligned)
	Filler     rune // the padding symbol of the alphabet

	// SpacePositions holds, for Stripped mode, the indices at which
	// spaces stood in the uppercased original. Decode reinserts them.
	SpacePositions []int
}

// Encoded is the result of Encode: the padded code sequence plus the
// bookkeeping needed to undo it.
type Encoded struct {
	Codes   []int
	Padded  string // the padded message rendered back as text
	Padding PaddingInfo
}

// MatrixProperties is the analysis snapshot of one key matrix. It is
// recomputed on demand and never cached; Analyze documents each field's
// derivation.
type MatrixProperties struct {
	Order       int
	Determinant float64
	Rank        int
	Nullity     int // Order − Rank: dimensions the transform destroys
	IsSingular  bool

	// The Z26 view, for the classical cipher.
	DetMod26        int // rounded determinant reduced into [0, 26)
	GCD             int // gcd(DetMod26, 26); 0 sentinel when DetMod26 == 0
	InvertibleMod26 bool
}

// DecryptOutcome reports the decryption half of a demonstration run.
// Success == false carries the typed reason in Err; no other field is
// filled with guesses.
type DecryptOutcome struct {
	Success bool
	Blocks  []Block
	Codes   []int
	Message string
	Err     error
}

// CipherResult captures every intermediate of one encrypt-then-decrypt
// run so the caller can show the whole story. A result is fresh per call
// and meant to be treated as read-only.
type CipherResult struct {
	Original string
	Padded   string
	Mode     CipherMode
	Alphabet AlphabetMode

	Codes        []int
	PlainBlocks  []Block
	CipherBlocks []Block
	CipherText   string // Mod26 only: ciphertext codes as letters
	Padding      PaddingInfo

	Decryption DecryptOutcome
}
