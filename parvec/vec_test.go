package parvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickwritereader/parvec/alloc"
	"github.com/quickwritereader/parvec/column"
	"github.com/quickwritereader/parvec/layout"
)

func TestNewAllocatesNothing(t *testing.T) {
	counting := &alloc.Counting{Inner: alloc.Heap{}}
	v := NewVec2In[int, string](counting)

	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.True(t, v.IsEmpty())
	assert.Equal(t, 0, counting.Allocs)

	_, _, ok := v.Get(0)
	assert.False(t, ok)
	_, _, ok = v.Pop()
	assert.False(t, ok)

	ints, strs := v.Slices()
	assert.Empty(t, ints)
	assert.Empty(t, strs)
}

func TestWithCapacityExact(t *testing.T) {
	counting := &alloc.Counting{Inner: alloc.Heap{}}
	v := WithCapacity2In[int, string](7, counting)

	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 7, v.Cap())
	assert.Equal(t, 1, counting.Allocs)

	zero := WithCapacity2In[int, string](0, counting)
	assert.Equal(t, 0, zero.Cap())
	assert.Equal(t, 1, counting.Allocs, "capacity 0 must not allocate")
}

func TestPushPopLIFO(t *testing.T) {
	v := NewVec2[int, string]()
	words := []string{"zero", "one", "two", "three", "four"}
	for i, w := range words {
		v.Push(i, w)
		assert.LessOrEqual(t, v.Len(), v.Cap())
	}
	require.Equal(t, len(words), v.Len())

	for i := len(words) - 1; i >= 0; i-- {
		n, w, ok := v.Pop()
		require.True(t, ok)
		assert.Equal(t, i, n)
		assert.Equal(t, words[i], w)
	}
	assert.Equal(t, 0, v.Len())

	_, _, ok := v.Pop()
	assert.False(t, ok)
}

func TestGrowthPolicy(t *testing.T) {
	v := NewVec2[int, int]()

	v.Push(0, 0)
	assert.Equal(t, 4, v.Cap(), "first growth lands on the 4-element floor")

	for i := 1; i < 5; i++ {
		v.Push(i, i)
	}
	assert.Equal(t, 8, v.Cap(), "fifth element doubles to the next power of two")

	v.Reserve(9) // len 5 + 9 = 14 -> 16
	assert.Equal(t, 16, v.Cap())
	assert.Equal(t, 5, v.Len(), "reserve must not change the length")

	v.Reserve(1)
	assert.Equal(t, 16, v.Cap(), "reserve within capacity is a no-op")
}

func TestGetAndAt(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(10, "ten")
	v.Push(20, "twenty")

	n, s, ok := v.Get(1)
	require.True(t, ok)
	assert.Equal(t, 20, *n)
	assert.Equal(t, "twenty", *s)

	*n = 21 // writes go straight into the column
	ints, _ := v.Slices()
	assert.Equal(t, []int{10, 21}, ints)

	_, _, ok = v.Get(2)
	assert.False(t, ok)
	_, _, ok = v.Get(-1)
	assert.False(t, ok)

	pn, ps := v.At(0)
	assert.Equal(t, 10, *pn)
	assert.Equal(t, "ten", *ps)
}

func TestSwap(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")
	v.Push(2, "b")

	v.Swap(0, 1)
	ints, strs := v.Slices()
	assert.Equal(t, []int{2, 1}, ints)
	assert.Equal(t, []string{"b", "a"}, strs)

	assert.Panics(t, func() { v.Swap(0, 2) })
	assert.Panics(t, func() { v.Swap(-1, 0) })
}

func TestSwapRemove(t *testing.T) {
	v := NewVec2[int, string]()
	words := []string{"a", "b", "c", "d", "e"}
	for i, w := range words {
		v.Push(i, w)
	}

	n, w := v.SwapRemove(1)
	assert.Equal(t, 1, n)
	assert.Equal(t, "b", w)
	require.Equal(t, 4, v.Len())

	ints, strs := v.Slices()
	assert.Equal(t, []int{0, 4, 2, 3}, ints, "last element backfills the hole")
	assert.Equal(t, []string{"a", "e", "c", "d"}, strs)

	// removing the last index needs no backfill
	n, w = v.SwapRemove(3)
	assert.Equal(t, 3, n)
	assert.Equal(t, "d", w)
	assert.Equal(t, 3, v.Len())

	assert.Panics(t, func() { v.SwapRemove(3) })
}

func TestTruncate(t *testing.T) {
	v := NewVec2[int, string]()
	for i := 0; i < 6; i++ {
		v.Push(i, "s")
	}
	before := v.Cap()

	v.Truncate(9)
	assert.Equal(t, 6, v.Len(), "truncate past the length is a no-op")

	v.Truncate(2)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, before, v.Cap(), "truncate never touches capacity")

	v.Clear()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, before, v.Cap())
}

// Destruction completeness: dropping elements must clear every vacated
// cell in every column, so nothing they referenced stays reachable
// through the block.
func TestTruncateClearsVacatedCells(t *testing.T) {
	v := NewVec2[int, string]()
	for i, w := range []string{"a", "b", "c", "d"} {
		v.Push(i, w)
	}

	v.Truncate(1)

	ints := column.Slice[int](v.c0, v.cap)
	strs := column.Slice[string](v.c1, v.cap)
	assert.Equal(t, 0, ints[0])
	assert.Equal(t, "a", strs[0])
	for i := 1; i < v.cap; i++ {
		assert.Zero(t, ints[i], "cell %d", i)
		assert.Empty(t, strs[i], "cell %d", i)
	}
}

func TestShrink(t *testing.T) {
	counting := &alloc.Counting{Inner: alloc.Heap{}}
	v := NewVec2In[int, string](counting)
	for i := 0; i < 5; i++ {
		v.Push(i, "w")
	}
	require.Equal(t, 8, v.Cap())

	v.ShrinkTo(20)
	assert.Equal(t, 8, v.Cap(), "shrinking toward more than capacity is a no-op")

	v.ShrinkTo(2)
	assert.Equal(t, 5, v.Cap(), "capacity never drops below length")

	v.ShrinkToFit()
	assert.Equal(t, v.Len(), v.Cap())

	allocs := counting.Allocs
	v.ShrinkToFit()
	assert.Equal(t, v.Len(), v.Cap())
	assert.Equal(t, allocs, counting.Allocs, "repeated shrink_to_fit must not reallocate")

	ints, _ := v.Slices()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, ints, "shrinking preserves elements")

	v.Clear()
	v.ShrinkToFit()
	assert.Equal(t, 0, v.Cap(), "an empty vector shrinks to no allocation at all")
	assert.Equal(t, 0, counting.Live())
}

func TestAppend(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")
	v.Push(2, "b")

	other := NewVec2[int, string]()
	other.Push(3, "c")
	other.Push(4, "d")
	other.Push(5, "e")
	otherCap := other.Cap()

	v.Append(other)

	require.Equal(t, 5, v.Len())
	ints, strs := v.Slices()
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ints)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, strs)

	assert.Equal(t, 0, other.Len())
	assert.Equal(t, otherCap, other.Cap(), "append drains other but keeps its capacity")

	// drained cells retain nothing
	drained := column.Slice[string](other.c1, other.cap)
	for i, s := range drained {
		assert.Empty(t, s, "cell %d", i)
	}

	v.Append(other) // appending an empty vector is a no-op
	assert.Equal(t, 5, v.Len())
}

func TestFromSlicesRoundTrip(t *testing.T) {
	v, err := FromSlices3(
		[]int{1, 2, 3},
		[]string{"a", "b", "c"},
		[]bool{true, false, true},
	)
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	assert.Equal(t, 3, v.Cap(), "conversion sizes storage exactly")

	n, s, b, ok := v.Get(1)
	require.True(t, ok)
	assert.Equal(t, 2, *n)
	assert.Equal(t, "b", *s)
	assert.Equal(t, false, *b)
}

func TestFromSlicesUnevenLengths(t *testing.T) {
	first := []int{1, 2, 3}
	second := []int{1, 2}

	v, err := FromSlices2(first, second)
	assert.ErrorIs(t, err, ErrUnevenLengths)
	assert.Nil(t, v)

	// sources stay intact
	assert.Equal(t, []int{1, 2, 3}, first)
	assert.Equal(t, []int{1, 2}, second)
}

func TestFromSlicesInAllocator(t *testing.T) {
	counting := &alloc.Counting{Inner: alloc.Heap{}}

	v, err := FromSlices2In([]int{1, 2, 3}, []string{"a", "b", "c"}, counting)
	require.NoError(t, err)
	assert.Equal(t, 1, counting.Allocs, "conversion allocates one block")

	n, s, ok := v.Get(2)
	require.True(t, ok)
	assert.Equal(t, 3, *n)
	assert.Equal(t, "c", *s)

	v.Release()
	assert.Equal(t, 0, counting.Live())

	// a failed conversion never touches the allocator
	_, err = FromSlices2In([]int{1}, []string{"a", "b"}, counting)
	assert.ErrorIs(t, err, ErrUnevenLengths)
	assert.Equal(t, 1, counting.Allocs)
}

func TestExtend(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(0, "z")

	require.NoError(t, v.Extend([]int{1, 2}, []string{"a", "b"}))
	assert.Equal(t, 3, v.Len())
	ints, strs := v.Slices()
	assert.Equal(t, []int{0, 1, 2}, ints)
	assert.Equal(t, []string{"z", "a", "b"}, strs)

	err := v.Extend([]int{1}, []string{"a", "b"})
	assert.ErrorIs(t, err, ErrUnevenLengths)
	assert.Equal(t, 3, v.Len(), "a failed extend leaves the vector unchanged")

	require.NoError(t, v.Extend(nil, nil))
	assert.Equal(t, 3, v.Len())
}

func TestAllocationFailureIsFatal(t *testing.T) {
	failing := &alloc.FailAfter{Inner: alloc.Heap{}, Remaining: 0}
	v := NewVec2In[int, string](failing)

	assert.Panics(t, func() { v.Push(1, "a") })
}

// Growth copies into the new block before releasing the old one, so a
// failed reallocation must leave every live element intact.
func TestFailedGrowthPreservesData(t *testing.T) {
	failing := &alloc.FailAfter{Inner: alloc.Heap{}, Remaining: 1}
	v := NewVec2In[int, string](failing)
	for i, w := range []string{"a", "b", "c", "d"} {
		v.Push(i, w) // one allocation covers capacity 4
	}

	assert.Panics(t, func() { v.Push(4, "e") })

	require.Equal(t, 4, v.Len())
	ints, strs := v.Slices()
	assert.Equal(t, []int{0, 1, 2, 3}, ints)
	assert.Equal(t, []string{"a", "b", "c", "d"}, strs)
}

// A reservation whose total wraps past the largest int must fail loudly
// instead of no-opping on the wrapped comparison.
func TestReserveOverflowPanics(t *testing.T) {
	v := NewVec2[int, string]()
	v.Push(1, "a")

	require.PanicsWithValue(t, layout.ErrSizeOverflow, func() {
		v.Reserve(math.MaxInt)
	})

	// the failed reservation changes nothing
	require.Equal(t, 1, v.Len())
	n, s, ok := v.Get(0)
	require.True(t, ok)
	assert.Equal(t, 1, *n)
	assert.Equal(t, "a", *s)

	before := v.Cap()
	v.Reserve(0)
	v.Reserve(-5)
	assert.Equal(t, before, v.Cap(), "non-positive reservations are no-ops")
}

func TestReleaseReturnsBlocks(t *testing.T) {
	counting := &alloc.Counting{Inner: alloc.Heap{}}
	v := NewVec2In[int, string](counting)
	for i := 0; i < 100; i++ {
		v.Push(i, "w")
	}
	assert.Equal(t, 1, counting.Live(), "grown vector owns exactly one block")

	v.Release()
	assert.Equal(t, 0, counting.Live())
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())

	// the vector stays usable
	v.Push(7, "again")
	n, s, ok := v.Get(0)
	require.True(t, ok)
	assert.Equal(t, 7, *n)
	assert.Equal(t, "again", *s)
	assert.Equal(t, 1, counting.Live())
}

func TestPoolAllocatorReuse(t *testing.T) {
	pool := alloc.NewPool()
	for round := 0; round < 3; round++ {
		v := NewVec2In[int, string](pool)
		v.Push(round, "r")
		n, s, ok := v.Get(0)
		require.True(t, ok)
		assert.Equal(t, round, *n)
		assert.Equal(t, "r", *s)
		v.Release()
	}
}

func TestLenNeverExceedsCap(t *testing.T) {
	v := NewVec3[int, float64, string]()
	check := func() {
		assert.LessOrEqual(t, v.Len(), v.Cap())
	}

	for i := 0; i < 33; i++ {
		v.Push(i, float64(i), "x")
		check()
	}
	v.Truncate(10)
	check()
	v.ShrinkToFit()
	check()
	v.Reserve(50)
	check()
	v.SwapRemove(0)
	check()
	v.Pop()
	check()
	v.Clear()
	check()
	v.ShrinkTo(0)
	check()
}

func TestMixedAlignmentColumns(t *testing.T) {
	// byte columns next to wider ones exercise the padding math
	v := NewVec4[byte, int64, int16, string]()
	for i := 0; i < 9; i++ {
		v.Push(byte(i), int64(i)*1000, int16(-i), "val")
	}

	bs, ns, hs, ss := v.Slices()
	for i := 0; i < 9; i++ {
		assert.Equal(t, byte(i), bs[i])
		assert.Equal(t, int64(i)*1000, ns[i])
		assert.Equal(t, int16(-i), hs[i])
		assert.Equal(t, "val", ss[i])
	}
}

func TestVec12Smoke(t *testing.T) {
	v := NewVec12[int, int, int, int, int, int, int, int, int, int, int, string]()
	v.Push(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, "last")

	v1, _, _, _, _, _, _, _, _, _, v11, s, ok := v.Get(0)
	require.True(t, ok)
	assert.Equal(t, 1, *v1)
	assert.Equal(t, 11, *v11)
	assert.Equal(t, "last", *s)

	_, _, _, _, _, _, _, _, _, _, _, last, popped := v.Pop()
	require.True(t, popped)
	assert.Equal(t, "last", last)
	assert.True(t, v.IsEmpty())
}

func TestZeroSizedColumn(t *testing.T) {
	v := NewVec2[struct{}, int]()
	for i := 0; i < 5; i++ {
		v.Push(struct{}{}, i)
	}
	_, ints := v.Slices()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, ints)

	_, n, ok := v.Pop()
	require.True(t, ok)
	assert.Equal(t, 4, n)
}
