package partition

import (
	"math/big"
	"sort"
)

// minSum is the smallest integer partitionable into exactly n parts.
func minSum(n int, strict bool) int {
	if strict {
		return n * (n + 1) / 2
	}
	return n
}

// partsExact lists all partitions of s into exactly n parts with every
// part ≤ cap; strict demands strictly decreasing parts.
func partsExact(s, n, cap int, strict bool) []Partition {
	if n == 0 {
		if s == 0 {
			return []Partition{nil}
		}
		return nil
	}
	if s < minSum(n, strict) {
		return nil
	}
	if strict && cap < n {
		return nil
	}
	var out []Partition
	// leading part k: large enough to fit the rest under it.
	lo := (s + n - 1) / n // ceil(s/n): leading part is the maximum
	if lo < 1 {
		lo = 1
	}
	for k := lo; k <= cap && k <= s; k++ {
		nextCap := k
		if strict {
			nextCap = k - 1
		}
		for _, rest := range partsExact(s-k, n-1, nextCap, strict) {
			out = append(out, rest.Prepend(k))
		}
	}
	return out
}

// Enumerate lists every partition of exact energy e for a slot of
// conformal weight w > 0, sorted by the package order.
//
// Description:
//
//	energy(λ) = |λ| + len(λ)·(w-1), so for a fixed number of parts n the
//	required size s = e - n(w-1) is determined; n ranges while the minimal
//	n-part energy stays ≤ e. Strict slots use strictly decreasing parts.
//
// Complexity: output-sensitive; each partition is built once.
func Enumerate(w, e *big.Rat, strict bool) []Partition {
	var out []Partition
	if e.Sign() < 0 {
		return out
	}
	wShift := new(big.Rat).Sub(w, big.NewRat(1, 1))
	for n := 0; ; n++ {
		// minimal energy with n parts: minSum(n) + n(w-1)
		minE := new(big.Rat).SetInt64(int64(minSum(n, strict)))
		minE.Add(minE, new(big.Rat).Mul(wShift, new(big.Rat).SetInt64(int64(n))))
		if minE.Cmp(e) > 0 && n > 0 {
			break
		}
		sRat := new(big.Rat).Sub(e, new(big.Rat).Mul(wShift, new(big.Rat).SetInt64(int64(n))))
		if !sRat.IsInt() {
			continue
		}
		s := int(sRat.Num().Int64())
		if s < minSum(n, strict) {
			continue
		}
		out = append(out, partsExact(s, n, s, strict)...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].compare(out[j]) < 0 })
	return out
}

// EnumerateTuples lists every tuple of exact total energy e over the
// given slots, sorted by Compare. weights[i] > 0 is the conformal weight
// of slot i; odd[i] forces strictly decreasing parts in slot i.
func EnumerateTuples(weights []*big.Rat, odd []bool, e *big.Rat) []Tuple {
	out := enumSlots(weights, odd, 0, e)
	sort.Slice(out, func(i, j int) bool { return Compare(out[i], out[j]) < 0 })
	return out
}

func enumSlots(weights []*big.Rat, odd []bool, slot int, e *big.Rat) []Tuple {
	if e.Sign() < 0 {
		return nil
	}
	if slot == len(weights) {
		if e.Sign() == 0 {
			return []Tuple{EmptyTuple(len(weights))}
		}
		return nil
	}
	var out []Tuple
	for _, p := range enumerateAtMost(weights[slot], odd[slot], e) {
		rem := new(big.Rat).Sub(e, p.Energy(weights[slot]))
		for _, rest := range enumSlots(weights, odd, slot+1, rem) {
			t := rest
			t[slot] = p.Clone()
			out = append(out, t)
		}
	}
	return out
}

// enumerateAtMost lists every partition of energy ≤ e for the slot.
func enumerateAtMost(w *big.Rat, strict bool, e *big.Rat) []Partition {
	var out []Partition
	if e.Sign() < 0 {
		return out
	}
	wShift := new(big.Rat).Sub(w, big.NewRat(1, 1))
	for n := 0; ; n++ {
		minE := new(big.Rat).SetInt64(int64(minSum(n, strict)))
		minE.Add(minE, new(big.Rat).Mul(wShift, new(big.Rat).SetInt64(int64(n))))
		if minE.Cmp(e) > 0 && n > 0 {
			break
		}
		// largest admissible size: s + n(w-1) ≤ e
		sMax := new(big.Rat).Sub(e, new(big.Rat).Mul(wShift, new(big.Rat).SetInt64(int64(n))))
		top := floorRat(sMax)
		for s := minSum(n, strict); s <= top; s++ {
			out = append(out, partsExact(s, n, s, strict)...)
		}
	}
	return out
}

// floorRat returns ⌊x⌋ for x with |x| small enough to fit an int.
func floorRat(x *big.Rat) int {
	q := new(big.Int).Div(x.Num(), x.Denom()) // Euclidean: floors for positive denom
	return int(q.Int64())
}
