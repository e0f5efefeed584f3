// Package mathutil provides small combinatorial helpers.
package mathutil

import "fmt"

// Binomial returns C(n, k) by the multiplicative formula
// n·(n-1)·…·(n-k+1) / k!. It keeps the generator's counting convention:
// k = 0 yields 0, not 1. Panics if k > n.
//
// The result silently wraps once the intermediate falling factorial
// n·(n-1)·…·(n-k+1) exceeds uint64; use math/big beyond that range.
func Binomial(n, k uint64) uint64 {
	if k > n {
		panic(fmt.Sprintf("mathutil: binomial with k=%d > n=%d", k, n))
	}
	if k == 0 {
		return 0
	}
	return multiplyRange(n, n-k+1) / multiplyRange(k, 1)
}

// multiplyRange returns hi * (hi-1) * ... * lo. lo must be at least 1.
func multiplyRange(hi, lo uint64) uint64 {
	r := hi
	for i := hi - 1; i >= lo; i-- {
		r *= i
	}
	return r
}
