// Package vertex implements universal enveloping vertex algebras over
// exact rationals: PBW monomial elements, the translation operator T,
// the normal-ordered product, the full operator product expansion, the
// standard filtrations, and singular-vector search.
//
// # Model
//
// An Algebra is built from a lieconf structure-constant table plus a
// choice of scalar for every central generator. Elements are finite
// rational combinations of PBW basis monomials
//
//	gen_{i1}(-p1) gen_{i2}(-p2) … |0>
//
// indexed by partition tuples: slots in generator order, parts
// non-increasing, strictly decreasing in odd slots. Elements are
// immutable; every operation returns a fresh value.
//
// # Reduction
//
// Everything grounds out in one straightening engine that applies a
// single generator mode to a basis monomial using the commutation rule
//
//	a_(m) b_(n) = ± b_(n) a_(m) + Σ_j C(m,j) (a_(j)b)_(m+n-j)
//
// and the structure table for the a_(j)b. Composite left operands in
// Mul and Bracket are unwound with the associativity (iterate) identity.
// Both recursions are finite and memoized per algebra instance, so two
// algebras with different central scalars can never poison each other's
// caches.
//
// # Grading
//
// When every non-central generator has positive weight the algebra is
// graded by conformal weight and supports Dimension, HilbertSeries,
// Weight, NModeProduct, IsSingular and FindSingular. FindSingular works
// degree by degree: enumerate the graded piece, assemble the matrix of
// all positive shifted-mode actions into lower pieces, and return lifts
// of its exact left kernel.
//
// Elements of different Algebra values must never be mixed in one
// operation; that is a programming error and panics.
package vertex
