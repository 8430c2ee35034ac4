package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/WinterJet2021/Cryptography-Nullity-Demonstration/hill"
)

// analyzeCmd reports rank, nullity and the mod-26 view of the selected key.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Inspect a key matrix: determinant, rank, nullity, mod-26 invertibility",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := resolveKey()
		if err != nil {
			return err
		}

		props, err := hill.Analyze(key)
		if err != nil {
			return err
		}
		printProperties(cmd.OutOrStdout(), key, props)

		return nil
	},
}

// printProperties renders a MatrixProperties report, verdict lines
// included. Shared by analyze and demo.
func printProperties(w io.Writer, key *hill.KeyMatrix, props hill.MatrixProperties) {
	fmt.Fprintln(w, "Matrix Properties:")
	fmt.Fprint(w, key.String())
	fmt.Fprintf(w, "Determinant: %.4f\n", props.Determinant)
	fmt.Fprintf(w, "Rank: %d\n", props.Rank)
	fmt.Fprintf(w, "Nullity: %d\n", props.Nullity)
	fmt.Fprintf(w, "Invertible: %s\n", yesNo(!props.IsSingular))
	fmt.Fprintf(w, "Singular: %s\n", yesNo(props.IsSingular))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Mod-26 view:")
	fmt.Fprintf(w, "Det mod 26: %d\n", props.DetMod26)
	fmt.Fprintf(w, "gcd(det, 26): %d\n", props.GCD)
	fmt.Fprintf(w, "Invertible mod 26: %s\n", yesNo(props.InvertibleMod26))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Security Assessment:")
	if props.IsSingular {
		fmt.Fprintln(w, "❌ NOT SECURE - Cannot decrypt")
		fmt.Fprintln(w, "❌ Information is lost")
		fmt.Fprintln(w, "❌ Multiple inputs map to same output")
	} else {
		fmt.Fprintln(w, "✓ SECURE - Can encrypt and decrypt")
		fmt.Fprintln(w, "✓ No information loss")
		fmt.Fprintln(w, "✓ Each output uniquely identifies input")
		if !props.InvertibleMod26 {
			fmt.Fprintln(w, "⚠ But the classical mod-26 cipher cannot use this key: det shares a factor with 26")
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Mathematical Process:")
	fmt.Fprintln(w, "Encryption: Y = MX")
	if props.IsSingular {
		fmt.Fprintln(w, "Decryption: X = M⁻¹Y (IMPOSSIBLE)")
	} else {
		fmt.Fprintln(w, "Decryption: X = M⁻¹Y")
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}

	return "No"
}
