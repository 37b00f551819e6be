package lieconf

import "math/big"

// Named algebras. Each constructor builds its table from scratch, so
// callers can never interfere with each other through shared state.
// Construction cannot fail on these fixed tables, hence the panic on a
// non-nil error: it would mean the table itself is broken.

func mustNew(gens []Generator, brackets map[Pair]Bracket) *Algebra {
	a, err := New(gens, brackets)
	if err != nil {
		panic(err)
	}
	return a
}

// Virasoro returns the Virasoro Lie conformal algebra: an even
// generator L of weight 2 and a central element C, with
//
//	[L_λ L] = TL + 2λL + (λ³/12)·C.
//
// In divided powers the λ³ term sits at pole 3 with coefficient C/2.
func Virasoro() *Algebra {
	return mustNew(
		[]Generator{
			{Name: "L", Weight: big.NewRat(2, 1)},
			{Name: "C", Weight: new(big.Rat), Central: true},
		},
		map[Pair]Bracket{
			{Left: "L", Right: "L"}: {
				0: {{Gen: "L", Deriv: 1, Coef: big.NewRat(1, 1)}},
				1: {{Gen: "L", Deriv: 0, Coef: big.NewRat(2, 1)}},
				3: {{Gen: "C", Deriv: 0, Coef: big.NewRat(1, 2)}},
			},
		},
	)
}

// FreeBoson returns the rank-one free boson (Heisenberg) Lie conformal
// algebra: a weight-1 generator alpha with [α_λ α] = λK.
func FreeBoson() *Algebra {
	return mustNew(
		[]Generator{
			{Name: "alpha", Weight: big.NewRat(1, 1)},
			{Name: "K", Weight: new(big.Rat), Central: true},
		},
		map[Pair]Bracket{
			{Left: "alpha", Right: "alpha"}: {
				1: {{Gen: "K", Deriv: 0, Coef: big.NewRat(1, 1)}},
			},
		},
	)
}

// NeveuSchwarz returns the N=1 Neveu-Schwarz super Lie conformal
// algebra: the Virasoro L together with an odd generator G of weight
// 3/2, where
//
//	[L_λ G] = TG + (3/2)λG,
//	[G_λ G] = 2L + (λ²/3)·C.
//
// In divided powers the λ² term sits at pole 2 with coefficient 2C/3.
// [G_λ L] is filled in by skew-symmetry.
func NeveuSchwarz() *Algebra {
	lg := Bracket{
		0: {{Gen: "G", Deriv: 1, Coef: big.NewRat(1, 1)}},
		1: {{Gen: "G", Deriv: 0, Coef: big.NewRat(3, 2)}},
	}
	return mustNew(
		[]Generator{
			{Name: "L", Weight: big.NewRat(2, 1)},
			{Name: "G", Weight: big.NewRat(3, 2), Odd: true},
			{Name: "C", Weight: new(big.Rat), Central: true},
		},
		map[Pair]Bracket{
			{Left: "L", Right: "L"}: {
				0: {{Gen: "L", Deriv: 1, Coef: big.NewRat(1, 1)}},
				1: {{Gen: "L", Deriv: 0, Coef: big.NewRat(2, 1)}},
				3: {{Gen: "C", Deriv: 0, Coef: big.NewRat(1, 2)}},
			},
			{Left: "L", Right: "G"}: lg,
			{Left: "G", Right: "L"}: SkewOpposite(lg, false, true, func(n string) bool { return n == "C" }),
			{Left: "G", Right: "G"}: {
				0: {{Gen: "L", Deriv: 0, Coef: big.NewRat(2, 1)}},
				2: {{Gen: "C", Deriv: 0, Coef: big.NewRat(2, 3)}},
			},
		},
	)
}

// AffineSL2 returns the affine sl₂ Lie conformal algebra at generic
// level: weight-1 generators e, h, f with the Chevalley brackets
//
//	[e_λ f] = h + λK,  [h_λ e] = 2e,  [h_λ f] = -2f,  [h_λ h] = 2λK,
//
// and the remaining orientations written out explicitly.
func AffineSL2() *Algebra {
	one := big.NewRat(1, 1)
	two := big.NewRat(2, 1)
	return mustNew(
		[]Generator{
			{Name: "e", Weight: big.NewRat(1, 1)},
			{Name: "h", Weight: big.NewRat(1, 1)},
			{Name: "f", Weight: big.NewRat(1, 1)},
			{Name: "K", Weight: new(big.Rat), Central: true},
		},
		map[Pair]Bracket{
			{Left: "e", Right: "f"}: {
				0: {{Gen: "h", Deriv: 0, Coef: one}},
				1: {{Gen: "K", Deriv: 0, Coef: one}},
			},
			{Left: "f", Right: "e"}: {
				0: {{Gen: "h", Deriv: 0, Coef: big.NewRat(-1, 1)}},
				1: {{Gen: "K", Deriv: 0, Coef: one}},
			},
			{Left: "h", Right: "e"}: {
				0: {{Gen: "e", Deriv: 0, Coef: two}},
			},
			{Left: "e", Right: "h"}: {
				0: {{Gen: "e", Deriv: 0, Coef: big.NewRat(-2, 1)}},
			},
			{Left: "h", Right: "f"}: {
				0: {{Gen: "f", Deriv: 0, Coef: big.NewRat(-2, 1)}},
			},
			{Left: "f", Right: "h"}: {
				0: {{Gen: "f", Deriv: 0, Coef: two}},
			},
			{Left: "h", Right: "h"}: {
				1: {{Gen: "K", Deriv: 0, Coef: two}},
			},
		},
	)
}
