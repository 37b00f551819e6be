// Package lieconf models Lie conformal algebras by their structure
// constants: a finite list of generators and, for each ordered generator
// pair, a finitely supported λ-bracket table
//
//	[a_λ b] = Σ_n λ^(n) · Σ_k coef · T^(r) k      (λ^(n) = λⁿ/n!)
//
// stored as Bracket: pole order n → list of Term{Gen, Deriv, Coef}.
//
// Central generators commute with everything and are killed by T; the
// enveloping vertex algebra replaces them by fixed scalars. Tables are
// validated once at construction — unknown names, brackets keyed on a
// central generator, or derivatives of central generators are rejected
// with package sentinel errors.
//
// SkewOpposite completes a table by the skew-symmetry law
// [b_λ a] = -(-1)^{p(a)p(b)} [a_{-λ-T} b], so only one orientation of
// each pair has to be written down.
//
// Named constructors ship the classical examples: Virasoro, Neveu-
// Schwarz, the free boson, and affine sl₂.
package lieconf
