package partition_test

import (
	"math/big"
	"testing"

	"github.com/arclimit/veva/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPartition_SizeLenEnergy covers the basic slot accounting: for
// weight w the energy is |λ| + len(λ)(w-1).
func TestPartition_SizeLenEnergy(t *testing.T) {
	p := partition.Partition{3, 1, 1}
	assert.Equal(t, 5, p.Size(), "size is the part sum")
	assert.Equal(t, 3, p.Len(), "three parts")

	// weight 2: energy = 5 + 3·1 = 8
	assert.Equal(t, 0, p.Energy(big.NewRat(2, 1)).Cmp(big.NewRat(8, 1)))
	// weight 1: energy = size
	assert.Equal(t, 0, p.Energy(big.NewRat(1, 1)).Cmp(big.NewRat(5, 1)))
	// weight 3/2: energy = 5 + 3·(1/2) = 13/2
	assert.Equal(t, 0, p.Energy(big.NewRat(3, 2)).Cmp(big.NewRat(13, 2)))
}

// TestPartition_Validity checks ordering constraints including the
// strictly-decreasing requirement of odd slots.
func TestPartition_Validity(t *testing.T) {
	assert.True(t, partition.Partition{3, 2, 2}.IsValid(false))
	assert.False(t, partition.Partition{3, 2, 2}.IsValid(true), "repeat forbidden in strict slots")
	assert.True(t, partition.Partition{3, 2, 1}.IsValid(true))
	assert.False(t, partition.Partition{1, 2}.IsValid(false), "increasing parts are malformed")
	assert.False(t, partition.Partition{2, 0}.IsValid(false), "parts must be positive")
	assert.True(t, partition.Partition(nil).IsValid(true), "empty partition is valid")
}

// TestPartition_PeelPrepend verifies First/Rest/Prepend round-trip
// without aliasing the original.
func TestPartition_PeelPrepend(t *testing.T) {
	p := partition.Partition{4, 2, 1}
	assert.Equal(t, 4, p.First())

	rest := p.Rest()
	assert.Equal(t, partition.Partition{2, 1}, rest)

	back := rest.Prepend(4)
	assert.Equal(t, p, back)

	back[1] = 99
	assert.Equal(t, partition.Partition{4, 2, 1}, p, "Prepend must not alias the receiver")
}

// TestTuple_LeadingAndKey peels the leftmost mode and checks canonical keys.
func TestTuple_LeadingAndKey(t *testing.T) {
	tp := partition.Tuple{nil, {3, 1}, {2}}
	slot, part, rest, ok := tp.Leading()
	require.True(t, ok)
	assert.Equal(t, 1, slot, "first non-empty slot leads")
	assert.Equal(t, 3, part, "largest part of the leading slot")
	assert.Equal(t, partition.Tuple{nil, {1}, {2}}, rest)

	assert.Equal(t, ";3,1;2", tp.Key())
	assert.Equal(t, ";1;2", rest.Key())

	_, _, _, ok = partition.EmptyTuple(3).Leading()
	assert.False(t, ok, "vacuum index has no leading mode")
	assert.True(t, partition.EmptyTuple(3).IsVacuum())
}

// TestTuple_Compare checks the deterministic total order.
func TestTuple_Compare(t *testing.T) {
	a := partition.Tuple{{1, 1}}
	b := partition.Tuple{{2}}
	c := partition.Tuple{{1, 1}}

	assert.Negative(t, partition.Compare(a, b), "lexicographic on parts: 1,1 < 2")
	assert.Positive(t, partition.Compare(b, a))
	assert.Zero(t, partition.Compare(a, c))
}

// TestEnumerate_VirasoroEnergySix: weight-2 partitions of energy 6.
// Expected basis of the degree-6 piece of the Virasoro vacuum module:
// [5], [3,1], [2,2], [1,1,1] (modes L_-6, L_-4L_-2, L_-3L_-3, L_-2L_-2L_-2).
func TestEnumerate_VirasoroEnergySix(t *testing.T) {
	got := partition.Enumerate(big.NewRat(2, 1), big.NewRat(6, 1), false)
	require.Len(t, got, 4)
	assert.Contains(t, got, partition.Partition{5})
	assert.Contains(t, got, partition.Partition{3, 1})
	assert.Contains(t, got, partition.Partition{2, 2})
	assert.Contains(t, got, partition.Partition{1, 1, 1})
}

// TestEnumerate_HalfWeight: weight-1/2 partitions of energy 3.
// Non-strict: [3,1], [2,2], [2,1,1,1], [1,1,1,1,1,1] (sizes shifted by
// -len/2). Strict: only [3,1] survives.
func TestEnumerate_HalfWeight(t *testing.T) {
	got := partition.Enumerate(big.NewRat(1, 2), big.NewRat(3, 1), false)
	require.Len(t, got, 4)
	for _, p := range got {
		assert.Equal(t, 0, p.Energy(big.NewRat(1, 2)).Cmp(big.NewRat(3, 1)))
	}

	strict := partition.Enumerate(big.NewRat(1, 2), big.NewRat(3, 1), true)
	require.Len(t, strict, 1)
	assert.Equal(t, partition.Partition{3, 1}, strict[0])
}

// TestEnumerate_NonIntegerEnergyEmpty: an integer-weight slot has no
// partition of fractional energy.
func TestEnumerate_NonIntegerEnergyEmpty(t *testing.T) {
	got := partition.Enumerate(big.NewRat(2, 1), big.NewRat(5, 2), false)
	assert.Empty(t, got)
}

// TestEnumerateTuples_SingleSlotMatchesEnumerate sanity-checks the tuple
// enumerator against the single-partition one.
func TestEnumerateTuples_SingleSlotMatchesEnumerate(t *testing.T) {
	w := []*big.Rat{big.NewRat(2, 1)}
	odd := []bool{false}
	for e := int64(0); e <= 8; e++ {
		tuples := partition.EnumerateTuples(w, odd, big.NewRat(e, 1))
		parts := partition.Enumerate(w[0], big.NewRat(e, 1), false)
		assert.Len(t, tuples, len(parts), "energy %d", e)
	}
}

// TestEnumerateTuples_VirasoroDimensions pins the graded dimensions of
// the weight-2 vacuum module: 1, 0, 1, 1, 2, 2, 4, 4, 7.
func TestEnumerateTuples_VirasoroDimensions(t *testing.T) {
	w := []*big.Rat{big.NewRat(2, 1)}
	odd := []bool{false}
	want := []int{1, 0, 1, 1, 2, 2, 4, 4, 7}
	for e, dim := range want {
		got := partition.EnumerateTuples(w, odd, big.NewRat(int64(e), 1))
		assert.Len(t, got, dim, "dimension at energy %d", e)
	}
}

// TestEnumerateTuples_TwoSlots: two weight-1 slots at total energy 2
// give [2];[], [1,1];[], [1];[1], [];[2], [];[1,1] — five tuples.
func TestEnumerateTuples_TwoSlots(t *testing.T) {
	w := []*big.Rat{big.NewRat(1, 1), big.NewRat(1, 1)}
	odd := []bool{false, false}
	got := partition.EnumerateTuples(w, odd, big.NewRat(2, 1))
	require.Len(t, got, 5)
	// sorted by Compare, so the output order itself is pinned
	for i := 1; i < len(got); i++ {
		assert.Negative(t, partition.Compare(got[i-1], got[i]), "sorted output")
	}
}
