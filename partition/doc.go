// Package partition implements energy partitions and partition tuples,
// the index language of the PBW monomial basis.
//
// A Partition is a non-increasing sequence of positive integers. A part p
// sitting in generator slot i encodes the mode gen_i_(-p). A Tuple holds
// one partition per non-central generator slot; slots belonging to odd
// generators must carry strictly decreasing parts (a square of an odd
// mode reduces, so it never indexes a basis vector).
//
// The energy of a partition in a slot of conformal weight w is
//
//	energy(λ) = |λ| + len(λ)·(w-1)
//
// and the energy of a tuple is the sum over slots. For a graded algebra
// this is exactly the conformal weight of the indexed monomial, which is
// why enumeration by energy yields the graded pieces.
//
// Enumeration is deterministic: Enumerate and EnumerateTuples always
// return results sorted by Compare, so matrix layouts and printed output
// downstream are stable across runs.
//
// Tuples index basis vectors only when well-formed (non-increasing parts,
// strict in odd slots). Constructors in this package only produce
// well-formed values; feeding a malformed tuple to the kernel is a
// precondition violation, not a defended error.
package partition
