// Command nullitydemo is the console front end of the demonstration:
// analyze keys, run the cipher, and see why det = 0 breaks decryption.
package main

import (
	"fmt"
	"os"

	"github.com/WinterJet2021/Cryptography-Nullity-Demonstration/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
