// Text ↔ code mapping for both alphabet conventions, block grouping, and
// the padding bookkeeping that makes decryption reversible.

package hill

import (
	"fmt"
	"math"
	"strings"
)

// Alphabet bounds. In Spaced mode code 0 is the space and letters occupy
// 1..26; in Stripped mode letters occupy 0..25.
const (
	spacedSpaceCode = 0
	spacedMaxCode   = 26
	strippedMaxCode = 25
)

// spacedCode maps a rune of the spaced alphabet to its code.
func spacedCode(r rune) (int, bool) {
	if r == ' ' {
		return spacedSpaceCode, true
	}
	if r >= 'A' && r <= 'Z' {
		return int(r-'A') + 1, true
	}

	return 0, false
}

// spacedRune is the inverse of spacedCode.
func spacedRune(code int) (rune, bool) {
	if code == spacedSpaceCode {
		return ' ', true
	}
	if code >= 1 && code <= spacedMaxCode {
		return rune('A' + code - 1), true
	}

	return 0, false
}

// strippedCode maps A..Z onto 0..25.
func strippedCode(r rune) (int, bool) {
	if r >= 'A' && r <= 'Z' {
		return int(r - 'A'), true
	}

	return 0, false
}

// strippedRune is the inverse of strippedCode.
func strippedRune(code int) (rune, bool) {
	if code >= 0 && code <= strippedMaxCode {
		return rune('A' + code), true
	}

	return 0, false
}

// fillerOf returns the padding rune of a mode; both fillers encode as 0.
func fillerOf(mode AlphabetMode) rune {
	if mode == Stripped {
		return 'A'
	}

	return ' '
}

// textOf renders codes back into text under mode.
func textOf(codes []int, mode AlphabetMode) (string, error) {
	var b strings.Builder
	for i, code := range codes {
		var r rune
		var ok bool
		if mode == Stripped {
			r, ok = strippedRune(code)
		} else {
			r, ok = spacedRune(code)
		}
		if !ok {
			return "", fmt.Errorf("code %d at %d: %w", code, i, ErrCodeRange)
		}
		b.WriteRune(r)
	}

	return b.String(), nil
}

// Encode uppercases the message, maps it to symbol codes under mode, and
// pads the tail with the mode's filler until the code count divides
// blockSize evenly.
//
// Spaced mode accepts letters and spaces only; any other character is
// ErrUnsupportedRune — the caller must re-prompt, the engine does not
// guess. Stripped mode keeps letters, records the positions of removed
// spaces for later reinsertion, and drops any other character without a
// trace.
//
// Errors: ErrBadOrder (blockSize < MinOrder), ErrEmptyMessage (nothing
// encodable survived), ErrUnsupportedRune (Spaced mode only).
func Encode(message string, mode AlphabetMode, blockSize int) (*Encoded, error) {
	if blockSize < MinOrder {
		return nil, hillErrorf(opEncode, ErrBadOrder)
	}

	upper := []rune(strings.ToUpper(message))
	codes := make([]int, 0, len(upper))
	var spaces []int

	switch mode {
	case Spaced:
		for i, r := range upper {
			code, ok := spacedCode(r)
			if !ok {
				return nil, fmt.Errorf("%s: rune %q at %d: %w", opEncode, r, i, ErrUnsupportedRune)
			}
			codes = append(codes, code)
		}
	case Stripped:
		for i, r := range upper {
			if code, ok := strippedCode(r); ok {
				codes = append(codes, code)

				continue
			}
			if r == ' ' {
				spaces = append(spaces, i)
			}
			// Everything else is dropped without a trace.
		}
	default:
		return nil, fmt.Errorf("%s: alphabet %v: %w", opEncode, mode, ErrInvalidInput)
	}

	if len(codes) == 0 {
		return nil, hillErrorf(opEncode, ErrEmptyMessage)
	}

	// Pad the tail so the codes split evenly into blocks.
	messageLen := len(codes)
	padLen := 0
	if rem := messageLen % blockSize; rem != 0 {
		padLen = blockSize - rem
		for i := 0; i < padLen; i++ {
			codes = append(codes, 0) // both fillers encode as 0
		}
	}

	padded, err := textOf(codes, mode)
	if err != nil {
		return nil, hillErrorf(opEncode, err)
	}

	return &Encoded{
		Codes:  codes,
		Padded: padded,
		Padding: PaddingInfo{
			Alphabet:       mode,
			BlockSize:      blockSize,
			MessageLen:     messageLen,
			PadLen:         padLen,
			Filler:         fillerOf(mode),
			SpacePositions: spaces,
		},
	}, nil
}

// Decode converts symbol codes back into text. A code with no counterpart
// in the alphabet is a hard ErrCodeRange: a decryption that lands outside
// the alphabet must surface, not hide behind a placeholder character.
//
// With stripPadding the trailing Padding.PadLen filler symbols are
// removed. Stripped-mode space positions are then reinserted, restoring
// the shape of the original message.
func Decode(codes []int, p PaddingInfo, stripPadding bool) (string, error) {
	text, err := textOf(codes, p.Alphabet)
	if err != nil {
		return "", hillErrorf(opDecode, err)
	}

	if stripPadding && p.PadLen > 0 && p.PadLen <= len(text) {
		text = text[:len(text)-p.PadLen]
	}
	if p.Alphabet == Stripped && len(p.SpacePositions) > 0 {
		text = reinsertSpaces(text, p.SpacePositions)
	}

	return text, nil
}

// reinsertSpaces puts removed spaces back at their recorded positions.
// Positions beyond the rebuilt text are ignored: a best-effort restore
// when the decrypted text came back shorter than the original.
func reinsertSpaces(text string, positions []int) string {
	chars := []rune(text)
	out := make([]rune, 0, len(chars)+len(positions))
	next := 0
	for i := 0; i <= len(chars); i++ {
		for next < len(positions) && positions[next] == len(out) {
			out = append(out, ' ')
			next++
		}
		if i < len(chars) {
			out = append(out, chars[i])
		}
	}

	return string(out)
}

// Blocks groups codes into column vectors of the given order. Encode
// guarantees alignment; direct callers get ErrBlockAlign when the code
// count is not a multiple of order.
func Blocks(codes []int, order int) ([]Block, error) {
	if order < MinOrder {
		return nil, hillErrorf(opBlocks, ErrBadOrder)
	}
	if len(codes)%order != 0 {
		return nil, fmt.Errorf("%s: %d codes, order %d: %w", opBlocks, len(codes), order, ErrBlockAlign)
	}

	blocks := make([]Block, 0, len(codes)/order)
	for at := 0; at < len(codes); at += order {
		b := make(Block, order)
		for j := 0; j < order; j++ {
			b[j] = float64(codes[at+j])
		}
		blocks = append(blocks, b)
	}

	return blocks, nil
}

// CipherLetters renders Mod26 ciphertext blocks as letters on the
// stripped alphabet (0..25 → A..Z).
// Errors: ErrNonIntegerBlock for fractional entries, ErrCodeRange for
// whole values outside [0, 26).
func CipherLetters(blocks []Block) (string, error) {
	var b strings.Builder
	for i, blk := range blocks {
		for j, v := range blk {
			if math.Abs(v-math.Round(v)) > IntegerEps {
				return "", fmt.Errorf("%s: block %d entry %d = %g: %w", opLetters, i, j, v, ErrNonIntegerBlock)
			}
			r, ok := strippedRune(int(math.Round(v)))
			if !ok {
				return "", fmt.Errorf("%s: block %d entry %d = %g: %w", opLetters, i, j, v, ErrCodeRange)
			}
			b.WriteRune(r)
		}
	}

	return b.String(), nil
}

// CipherBlocks parses Mod26 ciphertext letters back into blocks of the
// given order — the inverse of CipherLetters. Ciphertext carries no
// spaces or padding of its own, so any non-letter is ErrUnsupportedRune
// and a ragged length is ErrBlockAlign.
func CipherBlocks(ciphertext string, order int) ([]Block, error) {
	upper := []rune(strings.ToUpper(strings.TrimSpace(ciphertext)))
	codes := make([]int, 0, len(upper))
	for i, r := range upper {
		code, ok := strippedCode(r)
		if !ok {
			return nil, fmt.Errorf("%s: rune %q at %d: %w", opCipherBlocks, r, i, ErrUnsupportedRune)
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil, hillErrorf(opCipherBlocks, ErrEmptyMessage)
	}

	return Blocks(codes, order)
}
