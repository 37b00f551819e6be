package partition

import "math/big"

// Partition is a non-increasing sequence of positive integer parts.
// The zero value (nil) is the empty partition.
type Partition []int

// Size returns the sum of all parts.
func (p Partition) Size() int {
	s := 0
	for _, part := range p {
		s += part
	}
	return s
}

// Len returns the number of parts.
func (p Partition) Len() int { return len(p) }

// IsValid reports whether parts are positive and non-increasing;
// with strict=true, strictly decreasing.
func (p Partition) IsValid(strict bool) bool {
	for i, part := range p {
		if part < 1 {
			return false
		}
		if i > 0 {
			if part > p[i-1] {
				return false
			}
			if strict && part == p[i-1] {
				return false
			}
		}
	}
	return true
}

// Energy returns |p| + len(p)·(w-1) for a slot of conformal weight w.
func (p Partition) Energy(w *big.Rat) *big.Rat {
	e := new(big.Rat).SetInt64(int64(p.Size()))
	shift := new(big.Rat).Sub(w, big.NewRat(1, 1))
	shift.Mul(shift, new(big.Rat).SetInt64(int64(len(p))))
	return e.Add(e, shift)
}

// First returns the leading (largest) part. Panics on the empty partition.
func (p Partition) First() int { return p[0] }

// Rest returns a copy of the partition without its leading part.
func (p Partition) Rest() Partition {
	if len(p) <= 1 {
		return nil
	}
	out := make(Partition, len(p)-1)
	copy(out, p[1:])
	return out
}

// Prepend returns a copy with part placed at the front. The caller
// guarantees part ≥ p[0] (> for strict slots); ordering is not rechecked.
func (p Partition) Prepend(part int) Partition {
	out := make(Partition, 0, len(p)+1)
	out = append(out, part)
	return append(out, p...)
}

// Clone returns an independent copy.
func (p Partition) Clone() Partition {
	if p == nil {
		return nil
	}
	out := make(Partition, len(p))
	copy(out, p)
	return out
}

// compare orders partitions lexicographically part by part, with a
// missing part reading as 0 (so a proper prefix sorts first).
func (p Partition) compare(q Partition) int {
	for i := 0; i < len(p) || i < len(q); i++ {
		pi, qi := 0, 0
		if i < len(p) {
			pi = p[i]
		}
		if i < len(q) {
			qi = q[i]
		}
		if pi != qi {
			if pi < qi {
				return -1
			}
			return 1
		}
	}
	return 0
}
