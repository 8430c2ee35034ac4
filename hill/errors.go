// SPDX-License-Identifier: MIT
// Package hill: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors, the one typed error
// carrying Z26 diagnostics, and the operation tags used to wrap them. All
// operations MUST return these sentinels and tests MUST check them via
// errors.Is / errors.As. Nothing here panics on user-triggered conditions.

package hill

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "hill: ..." for consistency and easy
// grepping. Do not %w-wrap these sentinels when returning directly; when
// context helps, wrap at the boundary with hillErrorf or fmt.Errorf — the
// sentinel stays matchable through errors.Is.

var (
	// ErrSingularMatrix is returned when the determinant sits within
	// tolerance of zero (or an inversion fails outright): the transform
	// collapsed a dimension and no inverse exists.
	ErrSingularMatrix = errors.New("hill: singular matrix, no inverse exists")

	// ErrNotInvertibleMod26 marks a key whose determinant shares a factor
	// with 26. Returned wrapped inside *NotInvertibleMod26Error, which
	// carries the offending gcd.
	ErrNotInvertibleMod26 = errors.New("hill: determinant has no inverse modulo 26")

	// ErrInvalidInput is the class sentinel for malformed caller data. The
	// specific causes below wrap it, so errors.Is matches either level.
	ErrInvalidInput = errors.New("hill: invalid input")

	// ErrBadOrder rejects key orders below MinOrder.
	ErrBadOrder = errors.New("hill: key order must be at least 2")

	// ErrNotSquare rejects row sets or cell counts that do not form an
	// n×n matrix.
	ErrNotSquare = errors.New("hill: key matrix must be square")

	// ErrNilMatrix indicates a nil *KeyMatrix argument.
	ErrNilMatrix = errors.New("hill: nil key matrix")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("hill: index out of range")

	// ErrDimensionMismatch indicates a block whose length differs from the
	// key order.
	ErrDimensionMismatch = errors.New("hill: block length does not match key order")

	// ErrBlockAlign indicates a code count that is not a multiple of the
	// block size. Encode always pads; only direct Blocks callers see this.
	ErrBlockAlign = errors.New("hill: code count is not a multiple of the block size")

	// ErrEmptyMessage indicates that nothing encodable survived the
	// alphabet mapping.
	ErrEmptyMessage = errors.New("hill: message has no encodable symbols")

	// ErrUnknownPreset indicates a preset name outside the built-in set.
	ErrUnknownPreset = errors.New("hill: unknown preset")

	// ErrNumericFailure marks an internal linear-algebra routine that
	// failed where the math says it must not. Seeing it is a bug report.
	ErrNumericFailure = errors.New("hill: numeric routine failed")
)

// Input-class errors. Each wraps ErrInvalidInput so callers can match the
// broad class or pin down the precise cause.
var (
	// ErrBadEntry — a custom matrix cell did not parse as a number. The
	// engine never substitutes a preset for a malformed key.
	ErrBadEntry = fmt.Errorf("%w: non-numeric matrix entry", ErrInvalidInput)

	// ErrUnsupportedRune — a character outside the configured alphabet.
	ErrUnsupportedRune = fmt.Errorf("%w: unsupported character", ErrInvalidInput)

	// ErrCodeRange — a symbol code with no counterpart in the alphabet.
	// Surfaced instead of a placeholder character.
	ErrCodeRange = fmt.Errorf("%w: symbol code outside the alphabet", ErrInvalidInput)

	// ErrNonIntegerKey — the mod-26 cipher needs whole-number key entries.
	ErrNonIntegerKey = fmt.Errorf("%w: mod-26 cipher requires an integer key", ErrInvalidInput)

	// ErrNonIntegerBlock — a mod-26 block carried fractional values,
	// typically real-mode ciphertext fed into the modular path.
	ErrNonIntegerBlock = fmt.Errorf("%w: mod-26 blocks must be integer-valued", ErrInvalidInput)

	// ErrAlphabetMismatch — the 27-symbol spaced alphabet cannot live in
	// Z26, so the mod-26 cipher insists on the stripped alphabet.
	ErrAlphabetMismatch = fmt.Errorf("%w: mod-26 cipher requires the stripped alphabet", ErrInvalidInput)
)

// NotInvertibleMod26Error reports a key whose determinant, reduced into
// [0, 26), shares a factor with 26 = 2 × 13. Gcd carries the shared factor;
// by convention Gcd is 0 when DetMod26 itself is 0, matching Analyze.
type NotInvertibleMod26Error struct {
	DetMod26 int
	Gcd      int
}

func (e *NotInvertibleMod26Error) Error() string {
	return fmt.Sprintf("hill: det mod 26 = %d, gcd = %d: key is not invertible in Z26", e.DetMod26, e.Gcd)
}

// Unwrap lets errors.Is(err, ErrNotInvertibleMod26) match the typed error.
func (e *NotInvertibleMod26Error) Unwrap() error { return ErrNotInvertibleMod26 }

// Operation tags for unified error wrapping (no magic strings at call sites).
const (
	opAnalyze      = "Analyze"
	opEncode       = "Encode"
	opDecode       = "Decode"
	opBlocks       = "Blocks"
	opLetters      = "CipherLetters"
	opCipherBlocks = "CipherBlocks"
	opEncrypt      = "Encrypt"
	opDecrypt      = "Decrypt"
	opInverseKey   = "InverseKeyMod26"
	opSetKey       = "SetKey"
	opEncryptMsg   = "EncryptMessage"
)

// hillErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is / errors.As. Call only with err != nil.
func hillErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
