package partition

import (
	"math/big"
	"strconv"
	"strings"
)

// Tuple is one partition per generator slot. It indexes a PBW basis
// monomial: part p in slot i is the mode gen_i_(-p).
type Tuple []Partition

// EmptyTuple returns the all-empty tuple on n slots — the vacuum index.
func EmptyTuple(n int) Tuple { return make(Tuple, n) }

// IsVacuum reports whether every slot is empty.
func (t Tuple) IsVacuum() bool {
	for _, p := range t {
		if len(p) > 0 {
			return false
		}
	}
	return true
}

// Size returns the total of all parts across slots.
func (t Tuple) Size() int {
	s := 0
	for _, p := range t {
		s += p.Size()
	}
	return s
}

// Len returns the total number of parts (modes) across slots.
func (t Tuple) Len() int {
	n := 0
	for _, p := range t {
		n += len(p)
	}
	return n
}

// Energy returns the total energy Σ_i (|λ_i| + len(λ_i)(w_i - 1));
// weights[i] is the conformal weight of slot i.
func (t Tuple) Energy(weights []*big.Rat) *big.Rat {
	e := new(big.Rat)
	for i, p := range t {
		e.Add(e, p.Energy(weights[i]))
	}
	return e
}

// Leading returns the leftmost mode of the monomial: the first non-empty
// slot, its largest part, and the tuple with that part removed.
// ok is false on the vacuum index.
func (t Tuple) Leading() (slot, part int, rest Tuple, ok bool) {
	for i, p := range t {
		if len(p) > 0 {
			rest = t.Clone()
			rest[i] = p.Rest()
			return i, p.First(), rest, true
		}
	}
	return 0, 0, nil, false
}

// Prepend returns a copy with part placed at the front of the given
// slot. The caller guarantees the result stays well-formed.
func (t Tuple) Prepend(slot, part int) Tuple {
	out := t.Clone()
	out[slot] = out[slot].Prepend(part)
	return out
}

// Clone returns an independent deep copy.
func (t Tuple) Clone() Tuple {
	out := make(Tuple, len(t))
	for i, p := range t {
		out[i] = p.Clone()
	}
	return out
}

// Key returns the canonical map key: parts joined by commas, slots by
// semicolons. Two tuples are equal iff their keys are equal.
func (t Tuple) Key() string {
	var b strings.Builder
	for i, p := range t {
		if i > 0 {
			b.WriteByte(';')
		}
		for j, part := range p {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(part))
		}
	}
	return b.String()
}

// Compare imposes the total order used for deterministic enumeration and
// matrix layout: slot by slot, partitions compared lexicographically.
func Compare(a, b Tuple) int {
	for i := 0; i < len(a) || i < len(b); i++ {
		var pa, pb Partition
		if i < len(a) {
			pa = a[i]
		}
		if i < len(b) {
			pb = b[i]
		}
		if c := pa.compare(pb); c != 0 {
			return c
		}
	}
	return 0
}
