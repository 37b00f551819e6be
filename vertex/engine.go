package vertex

import (
	"math/big"

	"github.com/arclimit/veva/lieconf"
	"github.com/arclimit/veva/partition"
	"github.com/arclimit/veva/qrat"
)

// This file is the reduction core. Two primitives do all the work:
//
//	applyGen(g, m, y)  — the single mode gen_g_(m) applied to y,
//	                     re-expressed in the PBW basis;
//	posActions(g, y)   — the full finite map {m ≥ 0 : gen_g_(m) y}.
//
// Both are linear in y and memoized per basis monomial. Everything
// higher up (T, Mul, Bracket) reduces to these.

// applyGen applies gen_g_(m), any integer m, to y.
func (a *Algebra) applyGen(g, m int, y Element) Element {
	b := newBuilder(a)
	for _, t := range y.terms {
		b.addElem(a.applyGenMono(g, m, t.idx), t.c)
	}
	return b.build()
}

// applyGenMono is applyGen on one basis monomial, with caching.
func (a *Algebra) applyGenMono(g, m int, idx partition.Tuple) Element {
	key := actKey{slot: g, mode: m, idx: idx.Key()}
	a.mu.RLock()
	cached, ok := a.actCache[key]
	a.mu.RUnlock()
	if ok {
		return cached
	}
	res := a.straighten(g, m, idx)
	a.mu.Lock()
	a.actCache[key] = res
	a.mu.Unlock()
	return res
}

// straighten is the PBW straightening step for gen_g_(m) against one
// monomial.
//
// Description:
//
//	On the vacuum, creation modes (m < 0) deposit a part and
//	annihilation modes vanish. Otherwise let h_(-q) be the leading mode
//	of the monomial. A creation mode that respects the monomial order
//	is prepended directly; the square of an odd mode collapses through
//	the anticommutator; every other case commutes past the leading mode:
//
//	  g_(m) h_(-q) = ±h_(-q) g_(m) + Σ_i C(m,i) (g_(i)h)_(m-q-i)
//
//	with the g_(i)h read off the structure table. Terms T^((r))k of the
//	table act as (T^((r))k)_(n) = (-1)^r C(n,r) k_(n-r); central k are
//	scalars at mode -1 and zero elsewhere.
func (a *Algebra) straighten(g, m int, idx partition.Tuple) Element {
	j, q, rest, ok := idx.Leading()
	if !ok {
		if m < 0 {
			return a.monomial(idx.Prepend(g, -m), big.NewRat(1, 1))
		}
		return a.Zero()
	}

	if m < 0 {
		p := -m
		if g < j || (g == j && (p > q || (p == q && !a.odd[g]))) {
			return a.monomial(idx.Prepend(g, p), big.NewRat(1, 1))
		}
		if g == j && p == q && a.odd[g] {
			return a.oddSquare(g, p, rest)
		}
	}

	// commute g_(m) past h_(-q)
	eps := qrat.One()
	if a.odd[g] && a.odd[j] {
		eps = qrat.Int(-1)
	}
	out := newBuilder(a)
	out.addElem(a.applyGen(j, -q, a.applyGenMono(g, m, rest)), eps)

	gName, hName := a.slots[g].Name, a.slots[j].Name
	for pole, terms := range a.def.BracketOf(gName, hName) {
		cm := qrat.Binom(m, pole)
		if qrat.IsZero(cm) {
			continue
		}
		nu := m - q - pole
		out.addElem(a.applyTableTerms(terms, nu, rest), cm)
	}
	return out.build()
}

// oddSquare reduces g_(-p)g_(-p) for an odd generator through
//
//	g_(-p)g_(-p) = (1/2) Σ_i C(-p,i) (g_(i)g)_(-2p-i),
//
// applied to the tail monomial.
func (a *Algebra) oddSquare(g, p int, rest partition.Tuple) Element {
	out := newBuilder(a)
	name := a.slots[g].Name
	half := big.NewRat(1, 2)
	for pole, terms := range a.def.BracketOf(name, name) {
		c := qrat.Mul(half, qrat.Binom(-p, pole))
		if qrat.IsZero(c) {
			continue
		}
		out.addElem(a.applyTableTerms(terms, -2*p-pole, rest), c)
	}
	return out.build()
}

// applyTableTerms applies the mode-nu operator of a structure-table
// coefficient Σ coef·T^((r))k to one basis monomial.
func (a *Algebra) applyTableTerms(terms []lieconf.Term, nu int, rest partition.Tuple) Element {
	out := newBuilder(a)
	for _, tm := range terms {
		c := qrat.Mul(tm.Coef, qrat.NegOnePow(tm.Deriv))
		c = qrat.Mul(c, qrat.Binom(nu, tm.Deriv))
		if qrat.IsZero(c) {
			continue
		}
		mode := nu - tm.Deriv
		if a.def.IsCentral(tm.Gen) {
			if mode == -1 {
				out.add(rest, qrat.Mul(c, a.centralValue(tm.Gen)))
			}
			continue
		}
		out.addElem(a.applyGenMono(a.slotOf[tm.Gen], mode, rest), c)
	}
	return out.build()
}

// posActions returns the finite map {m ≥ 0 : gen_g_(m) y}; zero values
// are omitted, so the map support is exactly the pole support.
func (a *Algebra) posActions(g int, y Element) map[int]Element {
	acc := make(map[int]*builder)
	for _, t := range y.terms {
		for m, e := range a.posActionsMono(g, t.idx) {
			bl, ok := acc[m]
			if !ok {
				bl = newBuilder(a)
				acc[m] = bl
			}
			bl.addElem(e, t.c)
		}
	}
	return buildAll(acc)
}

// posActionsMono computes every non-negative mode action of one
// generator on one basis monomial in a single recursive pass, with
// caching.
//
// Description:
//
//	For the monomial h_(-q)·R, the commutation rule splits each
//	g_(m) into h_(-q)(g_(m)R) plus correction terms
//	C(m,i)(g_(i)h)_(m-q-i)R. Annihilation corrections recurse into the
//	positive actions of the table generators on R, creation corrections
//	go through the straightening engine, and central corrections pin a
//	single m. Every branch shortens the monomial, so the pass is finite
//	without any guessed pole bound.
func (a *Algebra) posActionsMono(g int, idx partition.Tuple) map[int]Element {
	key := posKey{slot: g, idx: idx.Key()}
	a.mu.RLock()
	cached, ok := a.posCache[key]
	a.mu.RUnlock()
	if ok {
		return cached
	}

	res := a.computePosActions(g, idx)
	a.mu.Lock()
	a.posCache[key] = res
	a.mu.Unlock()
	return res
}

func (a *Algebra) computePosActions(g int, idx partition.Tuple) map[int]Element {
	j, q, rest, ok := idx.Leading()
	if !ok {
		return map[int]Element{}
	}

	acc := make(map[int]*builder)
	grow := func(m int, e Element, c *big.Rat) {
		if e.IsZero() || qrat.IsZero(c) {
			return
		}
		bl, found := acc[m]
		if !found {
			bl = newBuilder(a)
			acc[m] = bl
		}
		bl.addElem(e, c)
	}

	eps := qrat.One()
	if a.odd[g] && a.odd[j] {
		eps = qrat.Int(-1)
	}
	for m, e := range a.posActionsMono(g, rest) {
		grow(m, a.applyGen(j, -q, e), eps)
	}

	restElem := a.monomial(rest, big.NewRat(1, 1))
	gName, hName := a.slots[g].Name, a.slots[j].Name
	for pole, terms := range a.def.BracketOf(gName, hName) {
		for _, tm := range terms {
			base := qrat.Mul(tm.Coef, qrat.NegOnePow(tm.Deriv))
			if a.def.IsCentral(tm.Gen) {
				// k_(nu) is the scalar at nu = -1, so exactly one m fires
				m := q + pole + tm.Deriv - 1
				if m < 0 {
					continue
				}
				c := qrat.Mul(base, qrat.Binom(m, pole))
				c = qrat.Mul(c, qrat.Binom(m-q-pole, tm.Deriv))
				c = qrat.Mul(c, a.centralValue(tm.Gen))
				grow(m, restElem, c)
				continue
			}
			k := a.slotOf[tm.Gen]
			// creation side: nu = m-q-pole-deriv < 0
			for m := 0; m < q+pole+tm.Deriv; m++ {
				c := qrat.Mul(base, qrat.Binom(m, pole))
				c = qrat.Mul(c, qrat.Binom(m-q-pole, tm.Deriv))
				if qrat.IsZero(c) {
					continue
				}
				grow(m, a.applyGenMono(k, m-q-pole-tm.Deriv, rest), c)
			}
			// annihilation side: recurse on the tail
			for nu, e := range a.posActionsMono(k, rest) {
				m := nu + q + pole + tm.Deriv
				c := qrat.Mul(base, qrat.Binom(m, pole))
				c = qrat.Mul(c, qrat.Binom(m-q-pole, tm.Deriv))
				grow(m, e, c)
			}
		}
	}
	return buildAll(acc)
}

// buildAll freezes a pole-indexed accumulator, dropping zero poles.
func buildAll(acc map[int]*builder) map[int]Element {
	out := make(map[int]Element, len(acc))
	for m, bl := range acc {
		e := bl.build()
		if !e.IsZero() {
			out[m] = e
		}
	}
	return out
}
