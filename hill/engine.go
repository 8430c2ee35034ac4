// The session engine: one mutable slot (the current key) and the full
// encrypt-then-attempt-decrypt pipeline the demonstration runs on it.

package hill

import "strings"

// Engine carries the single piece of session state: the current key
// matrix. One engine serves one demonstration session; it is not safe for
// concurrent use and is not meant to be.
type Engine struct {
	key *KeyMatrix
}

// NewEngine returns an engine holding the invertible demo preset — the
// same starting point the interactive demonstration uses.
func NewEngine() *Engine {
	k, err := PresetMatrix(PresetInvertible)
	if err != nil {
		// The preset table is compiled in; failing to load it is a bug.
		panic(err)
	}

	return &Engine{key: k}
}

// SetPreset switches the current key to a built-in preset and returns a
// copy of it. An unknown name returns ErrUnknownPreset and leaves the
// engine untouched.
func (e *Engine) SetPreset(p Preset) (*KeyMatrix, error) {
	k, err := PresetMatrix(p)
	if err != nil {
		return nil, err
	}
	e.key = k

	return k.Clone(), nil
}

// SetKey replaces the current key with a copy of k. Any square matrix of
// order at least MinOrder is accepted; singularity and Z26 checks happen
// at analysis and decryption time, so deliberately broken keys can be
// explored.
func (e *Engine) SetKey(k *KeyMatrix) error {
	if k == nil {
		return hillErrorf(opSetKey, ErrNilMatrix)
	}
	e.key = k.Clone()

	return nil
}

// Key returns a copy of the current key. The engine's own key cannot be
// reached, let alone mutated, through the result.
func (e *Engine) Key() *KeyMatrix {
	return e.key.Clone()
}

// Properties analyzes the current key; equivalent to Analyze on a copy.
func (e *Engine) Properties() (MatrixProperties, error) {
	return Analyze(e.key)
}

// EncryptMessage runs the whole demonstration pipeline on one message:
// encode → group into blocks → encrypt → attempt decryption → assemble
// the record of everything that happened.
//
// Problems with the request itself (bad mode/alphabet combination,
// unsupported characters, nothing encodable) fail the call. A failed
// DECRYPTION is not a failed call: the outcome lands in
// CipherResult.Decryption with Success == false and the typed reason in
// Err. That asymmetry is the demonstration.
func (e *Engine) EncryptMessage(message string, opts Options) (*CipherResult, error) {
	// The 27-symbol spaced alphabet cannot live in Z26: space and 'Z'
	// would collapse onto the same residue.
	if opts.Mode == Mod26 && opts.Alphabet != Stripped {
		return nil, hillErrorf(opEncryptMsg, ErrAlphabetMismatch)
	}

	key := e.key
	enc, err := Encode(message, opts.Alphabet, key.n)
	if err != nil {
		return nil, err
	}
	plain, err := Blocks(enc.Codes, key.n)
	if err != nil {
		return nil, err
	}
	cipher, err := Encrypt(plain, key, opts.Mode)
	if err != nil {
		return nil, err
	}

	res := &CipherResult{
		Original:     strings.ToUpper(message),
		Padded:       enc.Padded,
		Mode:         opts.Mode,
		Alphabet:     opts.Alphabet,
		Codes:        enc.Codes,
		PlainBlocks:  plain,
		CipherBlocks: cipher,
		Padding:      enc.Padding,
	}
	if opts.Mode == Mod26 {
		letters, lerr := CipherLetters(cipher)
		if lerr != nil {
			return nil, lerr
		}
		res.CipherText = letters
	}

	// Attempt the way back; failure is recorded, never returned.
	dec, codes, derr := Decrypt(cipher, key, opts.Mode)
	if derr != nil {
		res.Decryption = DecryptOutcome{Success: false, Err: derr}

		return res, nil
	}
	msg, merr := Decode(codes, enc.Padding, true)
	if merr != nil {
		res.Decryption = DecryptOutcome{Success: false, Blocks: dec, Codes: codes, Err: merr}

		return res, nil
	}
	res.Decryption = DecryptOutcome{Success: true, Blocks: dec, Codes: codes, Message: msg}

	return res, nil
}
