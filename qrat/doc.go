// Package qrat provides the exact rational scalar helpers used throughout
// veva: factorials, generalized binomial coefficients, and pure
// (allocating) arithmetic over *big.Rat.
//
// Every function returns a freshly allocated value; no argument is ever
// mutated. This keeps element coefficient maps safe to share without
// copying and makes all higher-level operations referentially
// transparent.
//
// The generalized binomial Binom(m, k) is defined for any integer m and
// k ≥ 0 as m(m-1)…(m-k+1)/k!, so Binom(-2, 3) = -4 and Binom(m, 0) = 1.
// Negative upper arguments appear constantly in mode-commutation sums, so
// this generality is load-bearing, not a convenience.
package qrat
