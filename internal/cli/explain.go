package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WinterJet2021/Cryptography-Nullity-Demonstration/hill"
)

// explainCmd prints the math/information-theory writeup. No key needed.
var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Print the writeup on why singular matrices cannot be decrypted",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), hill.Explanation())

		return nil
	},
}
