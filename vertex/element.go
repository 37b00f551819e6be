package vertex

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/arclimit/veva/partition"
)

// term is one summand: a basis monomial index and its coefficient.
// Coefficients are never mutated in place once stored.
type term struct {
	idx partition.Tuple
	c   *big.Rat
}

// Element is a finite rational combination of PBW basis monomials.
// The zero value is unusable; obtain elements from an Algebra.
// Elements are immutable.
type Element struct {
	alg   *Algebra
	terms map[string]term
}

// Monomial is one exported summand of an element.
type Monomial struct {
	Index partition.Tuple
	Coef  *big.Rat
}

// Algebra returns the algebra the element belongs to.
func (x Element) Algebra() *Algebra { return x.alg }

// IsZero reports whether the element has no terms.
func (x Element) IsZero() bool { return len(x.terms) == 0 }

// Coeff returns a copy of the coefficient of the given basis index.
func (x Element) Coeff(idx partition.Tuple) *big.Rat {
	if t, ok := x.terms[idx.Key()]; ok {
		return new(big.Rat).Set(t.c)
	}
	return new(big.Rat)
}

// Monomials returns the summands sorted by the index order, with
// copied indices and coefficients.
func (x Element) Monomials() []Monomial {
	out := make([]Monomial, 0, len(x.terms))
	for _, t := range x.terms {
		out = append(out, Monomial{Index: t.idx.Clone(), Coef: new(big.Rat).Set(t.c)})
	}
	sort.Slice(out, func(i, j int) bool {
		return partition.Compare(out[i].Index, out[j].Index) < 0
	})
	return out
}

// Equal reports whether x and y are the same element of the same
// algebra.
func (x Element) Equal(y Element) bool {
	if x.alg != y.alg || len(x.terms) != len(y.terms) {
		return false
	}
	for k, t := range x.terms {
		u, ok := y.terms[k]
		if !ok || t.c.Cmp(u.c) != 0 {
			return false
		}
	}
	return true
}

// Add returns x + y.
func (x Element) Add(y Element) Element {
	x.sameAlgebra(y)
	b := newBuilder(x.alg)
	b.addElem(x, nil)
	b.addElem(y, nil)
	return b.build()
}

// Sub returns x - y.
func (x Element) Sub(y Element) Element {
	x.sameAlgebra(y)
	b := newBuilder(x.alg)
	b.addElem(x, nil)
	b.addElem(y, big.NewRat(-1, 1))
	return b.build()
}

// Scale returns c·x.
func (x Element) Scale(c *big.Rat) Element {
	b := newBuilder(x.alg)
	b.addElem(x, c)
	return b.build()
}

// String renders the element the way computer algebra systems print PBW
// monomials: modes left to right in slot order with a trailing vacuum,
// e.g. "L_-4L_-2|0> - 2*G_-3/2|0>". Terms appear in index order.
func (x Element) String() string {
	if x.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, m := range x.Monomials() {
		c := m.Coef
		if i == 0 {
			if c.Sign() < 0 {
				b.WriteString("-")
				c = new(big.Rat).Neg(c)
			}
		} else {
			if c.Sign() < 0 {
				b.WriteString(" - ")
				c = new(big.Rat).Neg(c)
			} else {
				b.WriteString(" + ")
			}
		}
		mono := x.alg.renderIndex(m.Index)
		if c.Cmp(big.NewRat(1, 1)) != 0 {
			b.WriteString(c.RatString())
			b.WriteString("*")
		}
		b.WriteString(mono)
	}
	return b.String()
}

// renderIndex prints one basis monomial, "|0>" for the vacuum.
// Subscripts are the physical modes part + w - 1, so the part-1 mode of
// a weight-2 generator reads L_-2 and half-integer weights print
// fractions (G_-3/2).
func (a *Algebra) renderIndex(idx partition.Tuple) string {
	var b strings.Builder
	for i, p := range idx {
		shift := new(big.Rat).Sub(a.weights[i], big.NewRat(1, 1))
		for _, part := range p {
			mode := new(big.Rat).Add(big.NewRat(int64(part), 1), shift)
			fmt.Fprintf(&b, "%s_-%s", a.slots[i].Name, mode.RatString())
		}
	}
	b.WriteString("|0>")
	return b.String()
}

// sameAlgebra panics when two elements belong to different algebras;
// mixing them is a programming error, not a recoverable condition.
func (x Element) sameAlgebra(y Element) {
	if x.alg != y.alg {
		panic("vertex: elements of different algebras")
	}
}

// builder accumulates terms mutably and freezes them into an Element.
type builder struct {
	alg   *Algebra
	terms map[string]*term
}

func newBuilder(a *Algebra) *builder {
	return &builder{alg: a, terms: make(map[string]*term)}
}

// add accumulates c·idx. The index is stored as given; callers pass
// fresh or frozen tuples that are never mutated afterwards.
func (b *builder) add(idx partition.Tuple, c *big.Rat) {
	if c.Sign() == 0 {
		return
	}
	key := idx.Key()
	if t, ok := b.terms[key]; ok {
		t.c = new(big.Rat).Add(t.c, c)
		return
	}
	b.terms[key] = &term{idx: idx, c: new(big.Rat).Set(c)}
}

// addElem accumulates scale·e (scale nil means 1).
func (b *builder) addElem(e Element, scale *big.Rat) {
	for _, t := range e.terms {
		if scale == nil {
			b.add(t.idx, t.c)
			continue
		}
		b.add(t.idx, new(big.Rat).Mul(t.c, scale))
	}
}

// build freezes the accumulator, dropping cancelled terms.
func (b *builder) build() Element {
	out := make(map[string]term, len(b.terms))
	for k, t := range b.terms {
		if t.c.Sign() != 0 {
			out[k] = *t
		}
	}
	return Element{alg: b.alg, terms: out}
}
