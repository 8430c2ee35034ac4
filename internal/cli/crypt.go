package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/WinterJet2021/Cryptography-Nullity-Demonstration/hill"
)

var (
	encMode     string
	encAlphabet string

	decSpaces string
	decPad    int
)

// encryptCmd runs the forward half of the pipeline only. Unlike demo it
// never attempts decryption, so it works with any key, broken ones
// included.
var encryptCmd = &cobra.Command{
	Use:   "encrypt [message]",
	Short: "Encrypt a message with the selected key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := resolveKey()
		if err != nil {
			return err
		}
		opts, err := cipherOptions(cmd, encMode, encAlphabet)
		if err != nil {
			return err
		}

		enc, err := hill.Encode(args[0], opts.Alphabet, key.Order())
		if err != nil {
			return err
		}
		plain, err := hill.Blocks(enc.Codes, key.Order())
		if err != nil {
			return err
		}
		cipher, err := hill.Encrypt(plain, key, opts.Mode)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Padded message: %q\n", enc.Padded)
		fmt.Fprintf(w, "Symbol codes:   %v\n", enc.Codes)
		for i, b := range cipher {
			fmt.Fprintf(w, "Cipher block %d: %v\n", i, []float64(b))
		}
		if opts.Mode == hill.Mod26 {
			letters, err := hill.CipherLetters(cipher)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Ciphertext:     %s\n", letters)
			printDecryptHint(cmd, enc.Padding, letters)
		}

		return nil
	},
}

// printDecryptHint shows the decrypt invocation that undoes this run,
// carrying the out-of-band padding and space bookkeeping.
func printDecryptHint(cmd *cobra.Command, p hill.PaddingInfo, letters string) {
	w := cmd.OutOrStdout()
	hint := fmt.Sprintf("nullitydemo decrypt %s", letters)
	if len(p.SpacePositions) > 0 {
		hint += " --spaces " + joinInts(p.SpacePositions)
	}
	if p.PadLen > 0 {
		hint += fmt.Sprintf(" --pad %d", p.PadLen)
	}
	fmt.Fprintf(w, "Undo with:      %s\n", hint)
}

// decryptCmd is the classical direction: letters in, letters out. Only
// the mod-26 cipher produces letter ciphertext, so the real mode has no
// decrypt command.
var decryptCmd = &cobra.Command{
	Use:   "decrypt [ciphertext]",
	Short: "Decrypt mod-26 ciphertext letters with the selected key",
	Long: `decrypt reverses an "encrypt --mode mod26" run. The ciphertext is
letters only; pass the --spaces and --pad values printed by encrypt to
restore the original shape of the message.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := resolveKey()
		if err != nil {
			return err
		}
		spaces, err := splitInts(decSpaces)
		if err != nil {
			return fmt.Errorf("bad --spaces: %w", err)
		}

		cipher, err := hill.CipherBlocks(args[0], key.Order())
		if err != nil {
			return err
		}
		_, codes, err := hill.Decrypt(cipher, key, hill.Mod26)
		if err != nil {
			return err
		}
		msg, err := hill.Decode(codes, hill.PaddingInfo{
			Alphabet:       hill.Stripped,
			BlockSize:      key.Order(),
			PadLen:         decPad,
			Filler:         'A',
			SpacePositions: spaces,
		}, true)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Decrypted message: %s\n", msg)

		return nil
	},
}

func init() {
	encryptCmd.Flags().StringVar(&encMode, "mode", "real",
		"cipher arithmetic: real or mod26")
	encryptCmd.Flags().StringVar(&encAlphabet, "alphabet", "spaced",
		"text encoding: spaced or stripped")

	decryptCmd.Flags().StringVar(&decSpaces, "spaces", "",
		"comma-separated space positions recorded by encrypt")
	decryptCmd.Flags().IntVar(&decPad, "pad", 0,
		"number of padding symbols appended by encrypt")
}

// splitInts parses a comma-separated integer list; empty input is an
// empty list.
func splitInts(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// joinInts renders ints as the comma-separated form splitInts accepts.
func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}
