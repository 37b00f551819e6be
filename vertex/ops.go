package vertex

import (
	"math/big"

	"github.com/arclimit/veva/partition"
	"github.com/arclimit/veva/qrat"
)

// T returns the n-th translation derivative Tⁿx. T is the derivation
// with T|0> = 0 and T gen_(-p) = p·gen_(-p-1).
//
// Errors: ErrNegativeDerivative when n < 0.
func (x Element) T(n int) (Element, error) {
	if n < 0 {
		return Element{}, ErrNegativeDerivative
	}
	out := x
	for i := 0; i < n; i++ {
		out = out.alg.translate(out)
	}
	return out, nil
}

// translate is a single application of T, extended linearly.
func (a *Algebra) translate(x Element) Element {
	b := newBuilder(a)
	for _, t := range x.terms {
		b.addElem(a.translateMono(t.idx), t.c)
	}
	return b.build()
}

// translateMono applies the derivation rule to the leading mode and
// recurses into the tail:
//
//	T(g_(-p)·R) = p·g_(-p-1)·R + g_(-p)·T(R).
//
// Deepened leading modes can break the monomial order, so both pieces
// go back through the straightening engine.
func (a *Algebra) translateMono(idx partition.Tuple) Element {
	g, p, rest, ok := idx.Leading()
	if !ok {
		return a.Zero()
	}
	out := newBuilder(a)
	out.addElem(a.applyGenMono(g, -(p+1), rest), qrat.Int(int64(p)))
	out.addElem(a.applyGen(g, -p, a.translateMono(rest)), qrat.One())
	return out.build()
}

// tDiv returns the divided power T^(k)x = Tᵏx / k!.
func (a *Algebra) tDiv(x Element, k int) Element {
	out := x
	for i := 0; i < k; i++ {
		out = a.translate(out)
	}
	if k > 1 {
		out = out.Scale(qrat.Inv(qrat.Fact(k)))
	}
	return out
}

// Mul returns the normal-ordered product :x y: = x_(-1)y.
func (x Element) Mul(y Element) Element {
	x.sameAlgebra(y)
	b := newBuilder(x.alg)
	for _, t := range x.terms {
		b.addElem(x.alg.mulMono(t.idx, y), t.c)
	}
	return b.build()
}

// mulMono multiplies one left basis monomial against y.
//
// Description:
//
//	The vacuum is the unit and a single mode g_(-p) (with its divided
//	T-power absorbed) acts directly through the engine. A composite
//	monomial g_(-p)·R unwinds by the associativity identity at output
//	mode -1:
//
//	  (g_(-p)R)_(-1)y = Σ_{j≥0} (-1)^j C(-p,j) [ g_(-p-j)(R_(j-1)y)
//	                    - (-1)^p σ R_(-p-1-j)(g_(j)y) ]
//
//	where R_(-1)y is a recursive product, R_(j)y for j ≥ 0 comes from
//	the OPE of R against y, negative R-modes are products against
//	divided T-powers of R, and σ is the parity sign of swapping g past
//	R. All three sums are finite.
func (a *Algebra) mulMono(txIdx partition.Tuple, y Element) Element {
	if txIdx.IsVacuum() {
		return y
	}
	if y.IsZero() {
		return a.Zero()
	}
	if txIdx.Len() == 1 {
		g, p, _, _ := txIdx.Leading()
		return a.applyGen(g, -p, y)
	}

	g, p, restIdx, _ := txIdx.Leading()
	restElem := a.monomial(restIdx, big.NewRat(1, 1))
	sigma := qrat.One()
	if a.odd[g] && a.parity(restIdx) {
		sigma = qrat.Int(-1)
	}
	// -(-1)^p σ, the constant part of the second-piece sign
	swapSign := qrat.Neg(qrat.Mul(qrat.NegOnePow(p), sigma))

	B := a.bracketMap(restElem, y)
	G := a.posActions(g, y)

	out := newBuilder(a)
	// j = 0 of the first piece: R_(-1)y is the recursive product
	out.addElem(a.applyGen(g, -p, restElem.Mul(y)), qrat.One())
	for pole, e := range B {
		j := pole + 1
		c := qrat.Mul(qrat.NegOnePow(j), qrat.Binom(-p, j))
		out.addElem(a.applyGen(g, -p-j, e), c)
	}
	for j, e := range G {
		c := qrat.Mul(swapSign, qrat.Mul(qrat.NegOnePow(j), qrat.Binom(-p, j)))
		out.addElem(a.tDiv(restElem, p+j).Mul(e), c)
	}
	return out.build()
}

// Bracket returns the full OPE of x against y: the finite map
// n ≥ 0 → x_(n)y. Absent poles are zero; the zero map is empty.
func (x Element) Bracket(y Element) map[int]Element {
	x.sameAlgebra(y)
	return x.alg.bracketMap(x, y)
}

func (a *Algebra) bracketMap(x, y Element) map[int]Element {
	acc := make(map[int]*builder)
	for _, t := range x.terms {
		for n, e := range a.bracketMono(t.idx, y) {
			bl, ok := acc[n]
			if !ok {
				bl = newBuilder(a)
				acc[n] = bl
			}
			bl.addElem(e, t.c)
		}
	}
	return buildAll(acc)
}

// bracketMono computes the OPE of one left basis monomial against y.
//
// Description:
//
//	The vacuum has no positive modes on either side. A single-part
//	monomial in slot i with part p is the divided power T^((p-1))gen_i,
//	whose modes re-index the generator's positive actions:
//
//	  out[m+p-1] = (-1)^(p-1) C(m+p-1, p-1) · (gen_i)_(m)y.
//
//	A composite monomial g_(-p)·R unwinds by the same associativity
//	identity as mulMono, here at every output mode n ≥ 0:
//
//	  (g_(-p)R)_(n)y = Σ_{j≥0} (-1)^j C(-p,j) [ g_(-p-j)(R_(n+j)y)
//	                   - (-1)^p σ R_(n-p-j)(g_(j)y) ].
//
//	R_(ν) for ν < 0 multiplies by a divided T-power of R; for ν ≥ 0 it
//	recurses into a shorter-monomial OPE.
func (a *Algebra) bracketMono(txIdx partition.Tuple, y Element) map[int]Element {
	if txIdx.IsVacuum() || y.IsZero() {
		return map[int]Element{}
	}
	if txIdx.Len() == 1 {
		g, p, _, _ := txIdx.Leading()
		r := p - 1
		sign := qrat.NegOnePow(r)
		out := make(map[int]Element)
		for m, e := range a.posActions(g, y) {
			c := qrat.Mul(sign, qrat.Binom(m+r, r))
			if qrat.IsZero(c) {
				continue
			}
			out[m+r] = e.Scale(c)
		}
		return out
	}

	g, p, restIdx, _ := txIdx.Leading()
	restElem := a.monomial(restIdx, big.NewRat(1, 1))
	sigma := qrat.One()
	if a.odd[g] && a.parity(restIdx) {
		sigma = qrat.Int(-1)
	}
	swapSign := qrat.Neg(qrat.Mul(qrat.NegOnePow(p), sigma))

	B := a.bracketMap(restElem, y)
	G := a.posActions(g, y)

	acc := make(map[int]*builder)
	grow := func(n int, e Element, c *big.Rat) {
		if n < 0 || e.IsZero() || qrat.IsZero(c) {
			return
		}
		bl, ok := acc[n]
		if !ok {
			bl = newBuilder(a)
			acc[n] = bl
		}
		bl.addElem(e, c)
	}

	// first piece: g_(-p-j)(R_(n+j)y) contributes to every n ≤ pole - j
	for pole, e := range B {
		for j := 0; j <= pole; j++ {
			c := qrat.Mul(qrat.NegOnePow(j), qrat.Binom(-p, j))
			grow(pole-j, a.applyGen(g, -p-j, e), c)
		}
	}
	// second piece: R_(n-p-j)(g_(j)y)
	for j, e := range G {
		base := qrat.Mul(swapSign, qrat.Mul(qrat.NegOnePow(j), qrat.Binom(-p, j)))
		if qrat.IsZero(base) {
			continue
		}
		// creation modes of R: n < p+j
		for n := 0; n < p+j; n++ {
			k := p + j - n - 1
			grow(n, a.tDiv(restElem, k).Mul(e), base)
		}
		// annihilation modes of R: recurse on the shorter monomial
		for nu, f := range a.bracketMap(restElem, e) {
			grow(nu+p+j, f, base)
		}
	}
	return buildAll(acc)
}

// NProduct returns the n-th product x_(n)y for any integer n: the OPE
// coefficient for n ≥ 0 and T^((-1-n))(x)·y for n < 0, so that
// NProduct(x, y, -1) is the normal-ordered product.
func (x Element) NProduct(y Element, n int) Element {
	x.sameAlgebra(y)
	if n >= 0 {
		if e, ok := x.alg.bracketMap(x, y)[n]; ok {
			return e
		}
		return x.alg.Zero()
	}
	return x.alg.tDiv(x, -1-n).Mul(y)
}

// NModeProduct returns the weight-shifted product x_n y = x_(n+Δ-1)y,
// with Δ the conformal weight of x. The shift makes x_0 preserve
// weights.
//
// Errors: ErrNotGraded, ErrNotHomogeneous or ErrZeroElement from the
// weight of x; ErrFractionalMode when n+Δ-1 is not an integer.
func (x Element) NModeProduct(y Element, n int) (Element, error) {
	x.sameAlgebra(y)
	w, err := x.Weight()
	if err != nil {
		return Element{}, err
	}
	shift := new(big.Rat).Add(w, big.NewRat(int64(n)-1, 1))
	if !shift.IsInt() {
		return Element{}, ErrFractionalMode
	}
	return x.NProduct(y, int(shift.Num().Int64())), nil
}
