// Package vertex: Algebra construction and graded enumeration.
//
// This file declares the Algebra type, its sentinel errors, and the
// construction-time resolution of central parameters and gradedness.
//
// Errors:
//
//	ErrCentralMismatch    - central parameters keyed on a non-central name.
//	ErrNotGraded          - grading-dependent operation on an ungraded algebra.
//	ErrNotHomogeneous     - mixed-weight input to a weight-dependent operation.
//	ErrZeroElement        - weight of the zero element requested.
//	ErrNegativeDerivative - T(x, n) with n < 0.
//	ErrFractionalMode     - shifted mode index that is not an integer.
//	ErrBadIndex           - malformed partition tuple passed to Monomial.
package vertex

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/arclimit/veva/lieconf"
	"github.com/arclimit/veva/partition"
)

// Sentinel errors for algebra and element operations.
var (
	// ErrCentralMismatch indicates central parameters keyed on a name
	// that is not a central generator.
	ErrCentralMismatch = errors.New("vertex: central parameters must be keyed on central generators")

	// ErrNotGraded indicates a grading-dependent operation on an
	// algebra with a non-positive generator weight.
	ErrNotGraded = errors.New("vertex: algebra is not graded")

	// ErrNotHomogeneous indicates a mixed-weight element where a single
	// conformal weight is required.
	ErrNotHomogeneous = errors.New("vertex: element is not homogeneous")

	// ErrZeroElement indicates the weight of the zero element was
	// requested; zero has no conformal weight.
	ErrZeroElement = errors.New("vertex: zero element has no weight")

	// ErrNegativeDerivative indicates T(x, n) with negative n.
	ErrNegativeDerivative = errors.New("vertex: negative derivative order")

	// ErrFractionalMode indicates a shifted mode n for which n+Δ-1 is
	// not an integer.
	ErrFractionalMode = errors.New("vertex: shifted mode is not an integer")

	// ErrBadIndex indicates a malformed partition tuple: wrong slot
	// count, increasing parts, or a repeated part in an odd slot.
	ErrBadIndex = errors.New("vertex: malformed monomial index")
)

// Algebra is the universal enveloping vertex algebra of a Lie conformal
// algebra with its central generators specialized to scalars.
//
// The value is immutable after New apart from its internal memoization
// caches, which are guarded by an RWMutex; concurrent use is safe.
type Algebra struct {
	def     *lieconf.Algebra
	slots   []lieconf.Generator // non-central generators, slot order
	slotOf  map[string]int      // generator name → slot
	weights []*big.Rat          // per slot
	odd     []bool              // per slot
	central map[string]*big.Rat // central name → scalar
	graded  bool

	mu       sync.RWMutex
	actCache map[actKey]Element
	posCache map[posKey]map[int]Element
}

type actKey struct {
	slot, mode int
	idx        string
}

type posKey struct {
	slot int
	idx  string
}

// New builds the enveloping algebra of def with the given central
// scalars. Central generators missing from the map default to zero.
//
// Errors: ErrCentralMismatch when the map carries a key that is not a
// central generator of def.
func New(def *lieconf.Algebra, central map[string]*big.Rat) (*Algebra, error) {
	a := &Algebra{
		def:      def,
		slotOf:   make(map[string]int),
		central:  make(map[string]*big.Rat),
		graded:   true,
		actCache: make(map[actKey]Element),
		posCache: make(map[posKey]map[int]Element),
	}
	for name, v := range central {
		if !def.IsCentral(name) {
			return nil, fmt.Errorf("%q: %w", name, ErrCentralMismatch)
		}
		a.central[name] = new(big.Rat).Set(v)
	}
	for _, g := range def.Central() {
		if _, ok := a.central[g.Name]; !ok {
			a.central[g.Name] = new(big.Rat)
		}
	}
	for _, g := range def.NonCentral() {
		a.slotOf[g.Name] = len(a.slots)
		a.slots = append(a.slots, g)
		a.weights = append(a.weights, new(big.Rat).Set(g.Weight))
		a.odd = append(a.odd, g.Odd)
		if g.Weight.Sign() <= 0 {
			a.graded = false
		}
	}
	return a, nil
}

// Def returns the underlying structure-constant table.
func (a *Algebra) Def() *lieconf.Algebra { return a.def }

// NumGens returns the number of non-central generators (the PBW slots).
func (a *Algebra) NumGens() int { return len(a.slots) }

// IsGraded reports whether every slot has positive conformal weight.
func (a *Algebra) IsGraded() bool { return a.graded }

// CentralParameters returns a copy of the central scalar assignment.
func (a *Algebra) CentralParameters() map[string]*big.Rat {
	out := make(map[string]*big.Rat, len(a.central))
	for k, v := range a.central {
		out[k] = new(big.Rat).Set(v)
	}
	return out
}

// centralValue returns the scalar assigned to a central generator.
func (a *Algebra) centralValue(name string) *big.Rat { return a.central[name] }

// Zero returns the zero element.
func (a *Algebra) Zero() Element {
	return Element{alg: a, terms: map[string]term{}}
}

// Vacuum returns |0>, the unit of the normal-ordered product.
func (a *Algebra) Vacuum() Element {
	return a.monomial(partition.EmptyTuple(len(a.slots)), big.NewRat(1, 1))
}

// Gen returns the i-th generator as the element gen_i_(-1)|0>.
func (a *Algebra) Gen(i int) Element {
	idx := partition.EmptyTuple(len(a.slots))
	idx[i] = partition.Partition{1}
	return a.monomial(idx, big.NewRat(1, 1))
}

// GenByName returns the generator element for a non-central name.
func (a *Algebra) GenByName(name string) (Element, bool) {
	i, ok := a.slotOf[name]
	if !ok {
		return Element{}, false
	}
	return a.Gen(i), true
}

// Gens returns all generator elements in slot order.
func (a *Algebra) Gens() []Element {
	out := make([]Element, len(a.slots))
	for i := range a.slots {
		out[i] = a.Gen(i)
	}
	return out
}

// Monomial returns the basis element for a well-formed index with
// coefficient 1.
//
// Errors: ErrBadIndex on a wrong slot count, non-monotone parts, or a
// repeated part in an odd slot.
func (a *Algebra) Monomial(idx partition.Tuple) (Element, error) {
	if len(idx) != len(a.slots) {
		return Element{}, fmt.Errorf("%d slots, want %d: %w", len(idx), len(a.slots), ErrBadIndex)
	}
	for i, p := range idx {
		if !p.IsValid(a.odd[i]) {
			return Element{}, fmt.Errorf("slot %d: %w", i, ErrBadIndex)
		}
	}
	return a.monomial(idx.Clone(), big.NewRat(1, 1)), nil
}

// monomial builds a single-term element without validation.
func (a *Algebra) monomial(idx partition.Tuple, c *big.Rat) Element {
	if c.Sign() == 0 {
		return a.Zero()
	}
	return Element{alg: a, terms: map[string]term{
		idx.Key(): {idx: idx, c: new(big.Rat).Set(c)},
	}}
}

// parity reports whether the monomial carries an odd number of modes in
// odd slots.
func (a *Algebra) parity(idx partition.Tuple) bool {
	n := 0
	for i, p := range idx {
		if a.odd[i] {
			n += len(p)
		}
	}
	return n%2 == 1
}

// Dimension returns the dimension of the graded piece of conformal
// weight e.
//
// Errors: ErrNotGraded on an ungraded algebra.
func (a *Algebra) Dimension(e *big.Rat) (int, error) {
	if !a.graded {
		return 0, ErrNotGraded
	}
	return len(partition.EnumerateTuples(a.weights, a.odd, e)), nil
}

// Basis returns the PBW basis of the graded piece of weight e as
// elements, in the deterministic enumeration order.
//
// Errors: ErrNotGraded on an ungraded algebra.
func (a *Algebra) Basis(e *big.Rat) ([]Element, error) {
	if !a.graded {
		return nil, ErrNotGraded
	}
	idxs := partition.EnumerateTuples(a.weights, a.odd, e)
	out := make([]Element, len(idxs))
	for i, idx := range idxs {
		out[i] = a.monomial(idx, big.NewRat(1, 1))
	}
	return out, nil
}

// HilbertSeries returns the dimensions of the integer-weight graded
// pieces 0..max. Fractional-weight pieces are reachable through
// Dimension directly.
//
// Errors: ErrNotGraded on an ungraded algebra.
func (a *Algebra) HilbertSeries(max int) ([]int, error) {
	if !a.graded {
		return nil, ErrNotGraded
	}
	out := make([]int, max+1)
	for e := 0; e <= max; e++ {
		out[e] = len(partition.EnumerateTuples(a.weights, a.odd, new(big.Rat).SetInt64(int64(e))))
	}
	return out, nil
}
