// Package qrat: exact rational helpers over math/big.
//
// All helpers are pure: inputs are never mutated, results are freshly
// allocated. See doc.go for the package contract.
package qrat

import "math/big"

// Zero returns a new rational equal to 0.
func Zero() *big.Rat { return new(big.Rat) }

// One returns a new rational equal to 1.
func One() *big.Rat { return big.NewRat(1, 1) }

// Int returns a new rational equal to the integer n.
func Int(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }

// IsZero reports whether x equals 0.
func IsZero(x *big.Rat) bool { return x.Sign() == 0 }

// Add returns a+b without mutating either argument.
func Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Sub returns a-b without mutating either argument.
func Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

// Mul returns a*b without mutating either argument.
func Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Neg returns -a without mutating the argument.
func Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// Inv returns 1/a without mutating the argument. a must be nonzero.
func Inv(a *big.Rat) *big.Rat { return new(big.Rat).Inv(a) }

// MulInt returns a*n without mutating the argument.
func MulInt(a *big.Rat, n int64) *big.Rat {
	return new(big.Rat).Mul(a, new(big.Rat).SetInt64(n))
}

// Fact returns n! as a rational. n must be non-negative.
// Complexity: O(n) big-integer multiplications.
func Fact(n int) *big.Rat {
	f := new(big.Int).MulRange(1, int64(n))
	if n < 2 {
		f = big.NewInt(1)
	}
	return new(big.Rat).SetInt(f)
}

// Binom returns the generalized binomial coefficient C(m, k) for any
// integer m and k ≥ 0:
//
//	C(m, k) = m(m-1)…(m-k+1) / k!
//
// For k < 0 the result is 0, matching the convention used in
// mode-commutation sums. Complexity: O(k) big-integer operations.
func Binom(m, k int) *big.Rat {
	if k < 0 {
		return Zero()
	}
	num := big.NewInt(1)
	for i := 0; i < k; i++ {
		num.Mul(num, big.NewInt(int64(m-i)))
	}
	den := new(big.Int).MulRange(1, int64(k))
	if k < 2 {
		den = big.NewInt(1)
	}
	r := new(big.Rat).SetInt(num)
	return r.Quo(r, new(big.Rat).SetInt(den))
}

// NegOnePow returns (-1)^n as a rational, for any integer n.
func NegOnePow(n int) *big.Rat {
	if n%2 != 0 {
		return Int(-1)
	}
	return One()
}
