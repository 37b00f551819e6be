// Package veva is an exact computation kernel for universal enveloping
// vertex algebras — PBW bases, λ-brackets, normal-ordered products and
// singular-vector search, all over exact rational arithmetic.
//
// 🚀 What is veva?
//
//	A pure-Go library that brings together:
//		• Exact scalars: big.Rat factorials & generalized binomials (qrat)
//		• PBW indices: energy partitions & partition tuples (partition)
//		• Structure tables: Lie conformal algebras, named & declarative (lieconf, builder)
//		• The kernel: elements, T, normal order, full OPE, filtrations (vertex)
//		• Null vectors: exact left-kernel search per graded piece (vertex, ratmat)
//
// ✨ Why choose veva?
//
//   - Exact by construction – every coefficient is a rational number,
//     never a float
//   - Deterministic – enumeration order, matrix column order and String
//     output are all stable
//   - Pure Go – no cgo, no computer-algebra system required
//   - Batteries included – Virasoro, Neveu–Schwarz, free boson and
//     affine sl₂ ship as named algebras
//
// Under the hood, everything is organized by topic:
//
//	qrat/      — exact rational scalar helpers
//	partition/ — energy partitions, the PBW monomial index supplier
//	lieconf/   — generator & structure-constant tables, named algebras
//	ratmat/    — dense rational matrices, RREF, left kernels
//	vertex/    — elements, T, Mul, Bracket, filtrations, singular vectors
//	builder/   — YAML and catalog construction of algebras
//	cmd/veva   — CLI: graded dimensions, OPE tables, singular search
//
// Quick example — the Ising null vector:
//
//	V, _ := vertex.New(lieconf.Virasoro(), map[string]*big.Rat{"C": big.NewRat(1, 2)})
//	null, _ := V.FindSingular(big.NewRat(6, 1))
//	// null[0] = L_-2L_-2L_-2|0> + 93/64*L_-3L_-3|0> - 33/8*L_-4L_-2|0> - 27/16*L_-6|0>
//
// Dive into each package's doc.go for algorithms, complexity notes and
// worked examples.
//
//	go get github.com/arclimit/veva
package veva
