package alloc

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type twoCols struct {
	C0 [8]int64
	C1 [8]string
}

var blockType = reflect.TypeFor[twoCols]()

func TestHeapAllocZeroed(t *testing.T) {
	ptr, err := Heap{}.Alloc(blockType)
	require.NoError(t, err)
	require.NotNil(t, ptr)

	block := (*twoCols)(ptr)
	assert.Equal(t, twoCols{}, *block)
}

func TestGrowCapacity(t *testing.T) {
	cases := map[int]int{
		-1:   4,
		0:    4,
		1:    4,
		4:    4,
		5:    8,
		8:    8,
		9:    16,
		17:   32,
		1000: 1024,
		1024: 1024,
	}
	for need, want := range cases {
		assert.Equal(t, want, GrowCapacity(need), "need=%d", need)
	}
}

func TestShrinkCapacity(t *testing.T) {
	// min above capacity: nothing to shrink toward
	assert.Equal(t, -1, ShrinkCapacity(2, 8, 9))
	// never below length
	assert.Equal(t, 5, ShrinkCapacity(5, 16, 2))
	// honors the requested floor
	assert.Equal(t, 6, ShrinkCapacity(2, 16, 6))
	// already there: no-op
	assert.Equal(t, -1, ShrinkCapacity(3, 8, 8))
	assert.Equal(t, -1, ShrinkCapacity(4, 4, 0))
	// empty vector may drop the allocation entirely
	assert.Equal(t, 0, ShrinkCapacity(0, 4, 0))
}

func TestPoolScrubsFreedBlocks(t *testing.T) {
	p := NewPool()

	ptr, err := p.Alloc(blockType)
	require.NoError(t, err)
	block := (*twoCols)(ptr)
	block.C0[3] = 42
	block.C1[0] = "leftover"

	p.Free(ptr, blockType)

	again, err := p.Alloc(blockType)
	require.NoError(t, err)
	assert.Equal(t, twoCols{}, *(*twoCols)(again), "pooled blocks must come back zeroed")
}

func TestCounting(t *testing.T) {
	c := &Counting{Inner: Heap{}}

	p1, err := c.Alloc(blockType)
	require.NoError(t, err)
	p2, err := c.Alloc(blockType)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Live())
	assert.Equal(t, 2*blockType.Size(), c.Bytes)

	c.Free(p1, blockType)
	assert.Equal(t, 1, c.Live())
	assert.Equal(t, blockType.Size(), c.Bytes)

	c.Free(p2, blockType)
	assert.Equal(t, 0, c.Live())
	assert.Equal(t, uintptr(0), c.Bytes)
}

func TestFailAfter(t *testing.T) {
	f := &FailAfter{Inner: Heap{}, Remaining: 1}

	ptr, err := f.Alloc(blockType)
	require.NoError(t, err)
	require.NotNil(t, ptr)

	var nilPtr unsafe.Pointer
	ptr, err = f.Alloc(blockType)
	assert.ErrorIs(t, err, ErrAllocFailed)
	assert.Equal(t, nilPtr, ptr)
}
