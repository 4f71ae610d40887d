// Package karatsuba multiplies arbitrary-size non-negative integers with
// Karatsuba's divide-and-conquer algorithm on top of math/big.
//
// Each operand is split at decimal digit position m = ⌊n/2⌋, where n is the
// larger digit count:
//
//	x = high1·10^m + low1
//	y = high2·10^m + low2
//
// and the product is rebuilt from three half-size products instead of four:
//
//	z0 = low1·low2
//	z2 = high1·high2
//	z1 = (low1+high1)·(low2+high2)
//	x·y = z2·10^(2m) + (z1 − z2 − z0)·10^m + z0
//
// Operands below 10 are multiplied directly. The result is exact; there is
// no fixed-width arithmetic anywhere on the path.
//
// Complexity: O(n^log2(3)) ≈ O(n^1.585) digit operations for n digits;
// recursion depth O(log n).
//
// Multiply never mutates its operands and keeps no package-level state, so
// concurrent calls are safe. Traces and Stats passed via options belong to
// a single call.
package karatsuba
