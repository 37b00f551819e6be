package vertex

import (
	"math/big"

	"github.com/arclimit/veva/partition"
	"github.com/arclimit/veva/ratmat"
)

// IsSingular reports whether x is annihilated by every strictly
// positive shifted generator mode, i.e. whether x generates a proper
// submodule. The zero element is vacuously singular.
//
// Description:
//
//	For a generator g of weight w the shifted mode n corresponds to the
//	actual mode m = n + w - 1, so "all n > 0" means every integer m
//	with m > w - 1. Modes with m > w + Δ - 1 land in negative weight
//	and vanish automatically, which bounds the check.
//
// Errors: ErrNotGraded, and ErrNotHomogeneous when x mixes weights.
func (x Element) IsSingular() (bool, error) {
	if x.IsZero() {
		return true, nil
	}
	if !x.alg.graded {
		return false, ErrNotGraded
	}
	w, err := x.Weight()
	if err != nil {
		return false, err
	}
	for g := range x.alg.slots {
		lo, hi := x.alg.modeRange(g, w)
		for m := lo; m <= hi; m++ {
			if !x.alg.applyGen(g, m, x).IsZero() {
				return false, nil
			}
		}
	}
	return true, nil
}

// modeRange returns the integer modes of slot g whose shifted index is
// positive and whose image can be nonzero on weight-delta elements.
func (a *Algebra) modeRange(g int, delta *big.Rat) (lo, hi int) {
	wg := a.weights[g]
	lo = floorRat(new(big.Rat).Sub(wg, big.NewRat(1, 1))) + 1
	hi = floorRat(new(big.Rat).Sub(new(big.Rat).Add(wg, delta), big.NewRat(1, 1)))
	return lo, hi
}

// FindSingular returns a basis of the singular vectors of conformal
// weight e, as exact elements.
//
// Description:
//
//	Enumerate the PBW basis of the weight-e piece. For every generator
//	slot and every positively-shifted integer mode, the action maps the
//	piece into a lower piece; laying the coordinates of all those
//	actions out as the columns of one matrix, the singular vectors are
//	exactly the left kernel, computed exactly over ℚ. Each call works
//	its degree from scratch; results for different degrees share only
//	the engine caches.
//
// Errors: ErrNotGraded on an ungraded algebra.
func (a *Algebra) FindSingular(e *big.Rat) ([]Element, error) {
	if !a.graded {
		return nil, ErrNotGraded
	}
	basis := partition.EnumerateTuples(a.weights, a.odd, e)
	if len(basis) == 0 {
		return nil, nil
	}

	// column layout: one block per (slot, mode), one column per basis
	// index of the target piece, in enumeration order
	type block struct {
		slot, mode int
		colOf      map[string]int
	}
	var blocks []block
	cols := 0
	for g := range a.slots {
		lo, hi := a.modeRange(g, e)
		for m := lo; m <= hi; m++ {
			target := new(big.Rat).Add(e, a.weights[g])
			target.Sub(target, big.NewRat(int64(m)+1, 1))
			colOf := make(map[string]int)
			for _, idx := range partition.EnumerateTuples(a.weights, a.odd, target) {
				colOf[idx.Key()] = cols
				cols++
			}
			if len(colOf) > 0 {
				blocks = append(blocks, block{slot: g, mode: m, colOf: colOf})
			}
		}
	}

	lift := func(v []*big.Rat) Element {
		b := newBuilder(a)
		for i, c := range v {
			b.add(basis[i], c)
		}
		return b.build()
	}

	if cols == 0 {
		// no constraints reach this degree; everything is singular
		out := make([]Element, len(basis))
		for i, idx := range basis {
			out[i] = a.monomial(idx, big.NewRat(1, 1))
		}
		return out, nil
	}

	rows := make([][]*big.Rat, len(basis))
	for i, idx := range basis {
		row := make([]*big.Rat, cols)
		mono := a.monomial(idx, big.NewRat(1, 1))
		for _, bl := range blocks {
			img := a.applyGen(bl.slot, bl.mode, mono)
			for _, t := range img.terms {
				col, known := bl.colOf[t.idx.Key()]
				if !known {
					// the image of a weight-homogeneous monomial must land
					// in the enumerated target piece
					panic("vertex: singular-vector image outside its graded piece")
				}
				row[col] = new(big.Rat).Set(t.c)
			}
		}
		rows[i] = row
	}
	m, err := ratmat.FromRows(rows)
	if err != nil {
		return nil, err
	}

	kernel := m.LeftKernel()
	if len(kernel) == 0 {
		return nil, nil
	}
	// echelonize the kernel so each vector leads with 1 on its first
	// nonzero basis coordinate; output is then canonical
	km, err := ratmat.FromRows(kernel)
	if err != nil {
		return nil, err
	}
	reduced, pivots := km.RREF()
	out := make([]Element, 0, len(pivots))
	for i := range pivots {
		v := make([]*big.Rat, len(basis))
		for j := range v {
			v[j] = reduced.At(i, j)
		}
		out = append(out, lift(v))
	}
	return out, nil
}

// floorRat returns ⌊x⌋ assuming it fits in an int.
func floorRat(x *big.Rat) int {
	q := new(big.Int).Div(x.Num(), x.Denom())
	return int(q.Int64())
}
