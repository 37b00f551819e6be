// Package lieconf: structure-constant tables for Lie conformal algebras.
//
// This file declares Generator, Term, Bracket, Algebra, the sentinel
// errors, and the validating New constructor.
//
// Errors:
//
//	ErrEmptyName         - generator with an empty name.
//	ErrDuplicateGen      - two generators share a name.
//	ErrNilWeight         - generator without a conformal weight.
//	ErrUnknownGen        - bracket or term references an unknown name.
//	ErrCentralBracket    - bracket keyed on a central generator.
//	ErrCentralDerivative - term takes T of a central generator.
//	ErrNegativePole      - bracket table with a negative pole order.
package lieconf

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors for table validation.
var (
	// ErrEmptyName indicates a generator with an empty name.
	ErrEmptyName = errors.New("lieconf: generator name is empty")

	// ErrDuplicateGen indicates two generators sharing one name.
	ErrDuplicateGen = errors.New("lieconf: duplicate generator name")

	// ErrNilWeight indicates a generator declared without a weight.
	ErrNilWeight = errors.New("lieconf: generator weight is nil")

	// ErrUnknownGen indicates a bracket or term referencing a name
	// that is not in the generator list.
	ErrUnknownGen = errors.New("lieconf: unknown generator")

	// ErrCentralBracket indicates a bracket keyed on a central
	// generator; central generators bracket to zero with everything.
	ErrCentralBracket = errors.New("lieconf: bracket keyed on central generator")

	// ErrCentralDerivative indicates a term applying T to a central
	// generator; T kills central elements.
	ErrCentralDerivative = errors.New("lieconf: derivative of central generator")

	// ErrNegativePole indicates a bracket entry at a negative pole order.
	ErrNegativePole = errors.New("lieconf: negative pole order")
)

// Generator declares one generator of the algebra.
type Generator struct {
	// Name uniquely identifies the generator.
	Name string

	// Weight is the conformal weight; must be non-nil.
	Weight *big.Rat

	// Odd marks fermionic generators.
	Odd bool

	// Central marks generators that bracket to zero with everything
	// and are annihilated by T.
	Central bool
}

// Term is one summand coef·T^(r)·gen of a bracket coefficient, with
// T^(r) the divided power Tʳ/r!.
type Term struct {
	// Gen names the generator the term is built on.
	Gen string

	// Deriv is the divided-power order r ≥ 0.
	Deriv int

	// Coef is the rational coefficient.
	Coef *big.Rat
}

// Bracket is a finitely supported λ-bracket table: pole order n ≥ 0
// maps to the terms of a_(n)b.
type Bracket map[int][]Term

// Pair is an ordered generator pair keying a bracket table.
type Pair struct{ Left, Right string }

// Algebra is a validated, immutable structure-constant table.
type Algebra struct {
	gens     []Generator
	index    map[string]int
	brackets map[Pair]Bracket
}

// New validates the generator list and bracket tables and returns an
// immutable Algebra.
//
// Description:
//
//	Names must be unique and non-empty, weights non-nil, poles ≥ 0.
//	Brackets may only be keyed on non-central generators; terms may
//	reference central generators but never differentiate them. Zero
//	terms and empty poles are dropped; duplicate (gen, deriv) terms
//	within one pole are merged.
//
// Errors: the sentinel errors above, wrapped with the offending name.
func New(gens []Generator, brackets map[Pair]Bracket) (*Algebra, error) {
	a := &Algebra{
		gens:     make([]Generator, len(gens)),
		index:    make(map[string]int, len(gens)),
		brackets: make(map[Pair]Bracket, len(brackets)),
	}
	for i, g := range gens {
		if g.Name == "" {
			return nil, fmt.Errorf("generator %d: %w", i, ErrEmptyName)
		}
		if g.Weight == nil {
			return nil, fmt.Errorf("generator %q: %w", g.Name, ErrNilWeight)
		}
		if _, dup := a.index[g.Name]; dup {
			return nil, fmt.Errorf("generator %q: %w", g.Name, ErrDuplicateGen)
		}
		a.index[g.Name] = i
		a.gens[i] = Generator{Name: g.Name, Weight: new(big.Rat).Set(g.Weight), Odd: g.Odd, Central: g.Central}
	}
	for pair, br := range brackets {
		for _, name := range []string{pair.Left, pair.Right} {
			i, ok := a.index[name]
			if !ok {
				return nil, fmt.Errorf("bracket [%s,%s]: %q: %w", pair.Left, pair.Right, name, ErrUnknownGen)
			}
			if a.gens[i].Central {
				return nil, fmt.Errorf("bracket [%s,%s]: %q: %w", pair.Left, pair.Right, name, ErrCentralBracket)
			}
		}
		norm, err := a.normalize(br)
		if err != nil {
			return nil, fmt.Errorf("bracket [%s,%s]: %w", pair.Left, pair.Right, err)
		}
		if len(norm) > 0 {
			a.brackets[pair] = norm
		}
	}
	return a, nil
}

// normalize validates one table, merges duplicate terms, and drops
// zero terms and empty poles.
func (a *Algebra) normalize(br Bracket) (Bracket, error) {
	out := make(Bracket, len(br))
	for pole, terms := range br {
		if pole < 0 {
			return nil, fmt.Errorf("pole %d: %w", pole, ErrNegativePole)
		}
		type termKey struct {
			gen   string
			deriv int
		}
		merged := make(map[termKey]*big.Rat)
		var order []termKey
		for _, tm := range terms {
			i, ok := a.index[tm.Gen]
			if !ok {
				return nil, fmt.Errorf("term %q: %w", tm.Gen, ErrUnknownGen)
			}
			if a.gens[i].Central && tm.Deriv != 0 {
				return nil, fmt.Errorf("term %q: %w", tm.Gen, ErrCentralDerivative)
			}
			if tm.Deriv < 0 {
				return nil, fmt.Errorf("term %q: %w", tm.Gen, ErrNegativePole)
			}
			if tm.Coef == nil || tm.Coef.Sign() == 0 {
				continue
			}
			key := termKey{gen: tm.Gen, deriv: tm.Deriv}
			if c, seen := merged[key]; seen {
				c.Add(c, tm.Coef)
			} else {
				merged[key] = new(big.Rat).Set(tm.Coef)
				order = append(order, key)
			}
		}
		var kept []Term
		for _, key := range order {
			if c := merged[key]; c.Sign() != 0 {
				kept = append(kept, Term{Gen: key.gen, Deriv: key.deriv, Coef: c})
			}
		}
		if len(kept) > 0 {
			out[pole] = kept
		}
	}
	return out, nil
}

// NumGens returns the number of generators, central ones included.
func (a *Algebra) NumGens() int { return len(a.gens) }

// Gens returns a copy of the generator list in declaration order.
func (a *Algebra) Gens() []Generator {
	out := make([]Generator, len(a.gens))
	copy(out, a.gens)
	return out
}

// Gen returns the generator at index i.
func (a *Algebra) Gen(i int) Generator { return a.gens[i] }

// Index returns the declaration index of name.
func (a *Algebra) Index(name string) (int, bool) {
	i, ok := a.index[name]
	return i, ok
}

// IsCentral reports whether name is a central generator; false when the
// name is unknown.
func (a *Algebra) IsCentral(name string) bool {
	i, ok := a.index[name]
	return ok && a.gens[i].Central
}

// BracketOf returns the validated table for the ordered pair (left,
// right), or nil when the bracket vanishes or was never declared.
func (a *Algebra) BracketOf(left, right string) Bracket {
	return a.brackets[Pair{Left: left, Right: right}]
}

// NonCentral returns the non-central generators in declaration order.
// Their positions define the slot indexing of PBW tuples.
func (a *Algebra) NonCentral() []Generator {
	var out []Generator
	for _, g := range a.gens {
		if !g.Central {
			out = append(out, g)
		}
	}
	return out
}

// Central returns the central generators in declaration order.
func (a *Algebra) Central() []Generator {
	var out []Generator
	for _, g := range a.gens {
		if g.Central {
			out = append(out, g)
		}
	}
	return out
}
