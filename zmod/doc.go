// Package zmod provides small modular-arithmetic kernels over Z/m:
// a floor modulus that never returns negative values, the Euclidean
// greatest common divisor, and a multiplicative inverse found by trial
// search.
//
// The kernels stay parametric in the modulus, but they are tuned for
// small didactic moduli: the Hill cipher packages in this module use
// m = 26 (the English alphabet, 26 = 2 × 13) throughout.
package zmod
