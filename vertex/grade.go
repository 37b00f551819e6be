package vertex

import (
	"math"
	"math/big"
)

// LiDegreeInfinite is the Li filtration degree of the zero element,
// which sits in every filtration stratum.
const LiDegreeInfinite = math.MaxInt

// Weight returns the conformal weight of a homogeneous element.
//
// Errors: ErrNotGraded on an ungraded algebra, ErrZeroElement for the
// zero element, ErrNotHomogeneous when monomials of different weights
// are mixed.
func (x Element) Weight() (*big.Rat, error) {
	if !x.alg.graded {
		return nil, ErrNotGraded
	}
	if x.IsZero() {
		return nil, ErrZeroElement
	}
	var w *big.Rat
	for _, t := range x.terms {
		e := t.idx.Energy(x.alg.weights)
		if w == nil {
			w = e
			continue
		}
		if w.Cmp(e) != 0 {
			return nil, ErrNotHomogeneous
		}
	}
	return w, nil
}

// IsHomogeneous reports whether all monomials share one conformal
// weight; the zero element is homogeneous. On an ungraded algebra only
// the zero element and single monomials count as homogeneous.
func (x Element) IsHomogeneous() bool {
	if x.IsZero() || len(x.terms) == 1 {
		return true
	}
	if !x.alg.graded {
		return false
	}
	_, err := x.Weight()
	return err == nil
}

// PBWDegree returns the maximum number of modes over the monomials of
// x, the PBW filtration degree; -1 for the zero element.
func (x Element) PBWDegree() int {
	if x.IsZero() {
		return -1
	}
	max := 0
	for _, t := range x.terms {
		if n := t.idx.Len(); n > max {
			max = n
		}
	}
	return max
}

// LiDegree returns the Li filtration degree: the minimum over monomials
// of Σ(part - 1), i.e. total size minus mode count. The zero element
// reports LiDegreeInfinite.
func (x Element) LiDegree() int {
	if x.IsZero() {
		return LiDegreeInfinite
	}
	min := LiDegreeInfinite
	for _, t := range x.terms {
		if d := t.idx.Size() - t.idx.Len(); d < min {
			min = d
		}
	}
	return min
}
