package zmod_test

import (
	"fmt"

	"github.com/WinterJet2021/Cryptography-Nullity-Demonstration/zmod"
)

// ExampleInverse demonstrates the trial-search inverse in Z26, the step that
// decides whether a Hill-cipher key can be undone.
func ExampleInverse() {
	inv, err := zmod.Inverse(21, 26)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("inverse of 21 mod 26 = %d\n", inv)
	fmt.Printf("check: 21*%d mod 26 = %d\n", inv, zmod.Mod(21*inv, 26))
	// Output:
	// inverse of 21 mod 26 = 5
	// check: 21*5 mod 26 = 1
}

// ExampleMod shows the floor-modulus normalization used on negative
// determinants before any Z26 reasoning.
func ExampleMod() {
	fmt.Println(zmod.Mod(-2, 26))
	// Output:
	// 24
}
