package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WinterJet2021/Cryptography-Nullity-Demonstration/render"
)

var visualizeOut string

// visualizeCmd draws the geometric side of the story for 2×2 keys: the
// unit lattice next to its image under the key.
var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Render a 2×2 key as a before/after lattice plot (PNG)",
	Long: `visualize draws two panels: the unit lattice and square on the left,
their image under the key on the right. An invertible key skews the
plane; a singular key flattens it onto a line, which is the picture of
nullity. Only 2×2 keys can be drawn.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := resolveKey()
		if err != nil {
			return err
		}

		if err := render.Figure(key, visualizeOut, render.DefaultOptions()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", visualizeOut)

		return nil
	},
}

func init() {
	visualizeCmd.Flags().StringVar(&visualizeOut, "out", "transform.png",
		"output PNG path")
}
