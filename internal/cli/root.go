// Package cli wires the demonstration into a cobra command tree. The
// library does the math; everything here is flag plumbing and console
// presentation.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WinterJet2021/Cryptography-Nullity-Demonstration/hill"
)

// Key-selection flags, shared by every subcommand. An inline --key wins
// over --key-file, which wins over --preset.
var (
	presetName  string
	keyText     string
	keyFilePath string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nullitydemo",
	Short: "Hill cipher playground: why singular matrices cannot decrypt",
	Long: `nullitydemo demonstrates the role of rank and nullity in cryptography
using the Hill cipher. Encryption multiplies message blocks by a key
matrix; decryption needs the inverse. A singular key (det = 0) has no
inverse: its nullity collapses distinct messages onto the same
ciphertext, and the lost information cannot be recovered.

Key selection (available to all commands):
  --preset invertible-demo   well-behaved 3×3 key (det = 7)
  --preset singular-demo     broken 3×3 key (det = 0)
  --key "2,1;3,4"            inline key, rows ';', cells ','
  --key-file key.yaml        YAML key file (name: + rows:)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", string(hill.PresetInvertible),
		"built-in key: invertible-demo or singular-demo")
	rootCmd.PersistentFlags().StringVar(&keyText, "key", "",
		"inline key matrix, rows separated by ';' and cells by ','")
	rootCmd.PersistentFlags().StringVar(&keyFilePath, "key-file", "",
		"path to a YAML key file")

	// Add subcommands
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(visualizeCmd)
	rootCmd.AddCommand(versionCmd)
}

// parseMode maps the --mode flag onto a CipherMode.
func parseMode(s string) (hill.CipherMode, error) {
	switch s {
	case "real":
		return hill.Real, nil
	case "mod26":
		return hill.Mod26, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want real or mod26)", s)
	}
}

// parseAlphabet maps the --alphabet flag onto an AlphabetMode.
func parseAlphabet(s string) (hill.AlphabetMode, error) {
	switch s {
	case "spaced":
		return hill.Spaced, nil
	case "stripped":
		return hill.Stripped, nil
	default:
		return 0, fmt.Errorf("unknown alphabet %q (want spaced or stripped)", s)
	}
}

// cipherOptions assembles hill.Options from the mode/alphabet flag pair.
// When the alphabet flag was left untouched, mod26 flips it to stripped —
// the only alphabet that cipher accepts.
func cipherOptions(cmd *cobra.Command, modeFlag, alphabetFlag string) (hill.Options, error) {
	mode, err := parseMode(modeFlag)
	if err != nil {
		return hill.Options{}, err
	}
	alphabet, err := parseAlphabet(alphabetFlag)
	if err != nil {
		return hill.Options{}, err
	}
	if mode == hill.Mod26 && !cmd.Flags().Changed("alphabet") {
		alphabet = hill.Stripped
	}

	return hill.Options{Mode: mode, Alphabet: alphabet}, nil
}
