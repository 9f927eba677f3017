package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayOf(t *testing.T) {
	l, err := ArrayOf(Of[int32](), 5)
	require.NoError(t, err)
	assert.Equal(t, Layout{Size: 20, Align: 4}, l)

	l, err = ArrayOf(Of[struct{}](), 1000)
	require.NoError(t, err)
	assert.Equal(t, Layout{Size: 0, Align: 1}, l)

	l, err = ArrayOf(Of[byte](), 0)
	require.NoError(t, err)
	assert.Equal(t, Layout{Size: 0, Align: 1}, l)
}

func TestArrayOfOverflow(t *testing.T) {
	_, err := ArrayOf(Of[uint64](), math.MaxInt/4)
	assert.ErrorIs(t, err, ErrSizeOverflow)

	_, err = ArrayOf(Of[byte](), -1)
	assert.ErrorIs(t, err, ErrSizeOverflow)
}

func TestExtendInsertsPadding(t *testing.T) {
	head, err := ArrayOf(Of[byte](), 3) // {3, 1}
	require.NoError(t, err)
	tail, err := ArrayOf(Of[uint32](), 2) // {8, 4}
	require.NoError(t, err)

	combined, off, err := head.Extend(tail)
	require.NoError(t, err)
	assert.Equal(t, uintptr(4), off, "second array starts at the next 4-aligned byte")
	assert.Equal(t, Layout{Size: 12, Align: 4}, combined)
}

func TestExtendAlreadyAligned(t *testing.T) {
	head := Layout{Size: 8, Align: 8}
	combined, off, err := head.Extend(Layout{Size: 4, Align: 4})
	require.NoError(t, err)
	assert.Equal(t, uintptr(8), off)
	assert.Equal(t, Layout{Size: 12, Align: 8}, combined)
}

func TestExtendOverflow(t *testing.T) {
	head := Layout{Size: maxSize - 2, Align: 1}
	_, _, err := head.Extend(Layout{Size: 8, Align: 8})
	assert.ErrorIs(t, err, ErrSizeOverflow)
}

func TestFinalize(t *testing.T) {
	l, err := Layout{Size: 5, Align: 4}.Finalize()
	require.NoError(t, err)
	assert.Equal(t, Layout{Size: 8, Align: 4}, l)

	l, err = Layout{Size: 12, Align: 4}.Finalize()
	require.NoError(t, err)
	assert.Equal(t, Layout{Size: 12, Align: 4}, l)
}

func TestDeterminism(t *testing.T) {
	build := func() (Layout, []uintptr) {
		total, err := ArrayOf(Of[byte](), 7)
		require.NoError(t, err)
		offs := []uintptr{0}
		for _, next := range []Layout{Of[int64](), Of[int16](), Of[string]()} {
			arr, err := ArrayOf(next, 7)
			require.NoError(t, err)
			var off uintptr
			total, off, err = total.Extend(arr)
			require.NoError(t, err)
			offs = append(offs, off)
		}
		total, err = total.Finalize()
		require.NoError(t, err)
		return total, offs
	}

	l1, o1 := build()
	l2, o2 := build()
	assert.Equal(t, l1, l2)
	assert.Equal(t, o1, o2)
}

// The accumulate-and-pad algorithm must agree with how the Go runtime
// lays out a struct of the same arrays; the allocator depends on it.
func TestMatchesRuntimeStructLayout(t *testing.T) {
	types := []reflect.Type{
		reflect.TypeFor[byte](),
		reflect.TypeFor[int64](),
		reflect.TypeFor[int16](),
		reflect.TypeFor[string](),
	}
	layouts := []Layout{Of[byte](), Of[int64](), Of[int16](), Of[string]()}

	for _, capacity := range []int{1, 3, 7, 64} {
		fields := make([]reflect.StructField, len(types))
		for i, typ := range types {
			fields[i] = reflect.StructField{
				Name: "C" + string(rune('0'+i)),
				Type: reflect.ArrayOf(capacity, typ),
			}
		}
		block := reflect.StructOf(fields)

		total, err := ArrayOf(layouts[0], capacity)
		require.NoError(t, err)
		offs := []uintptr{0}
		for _, elem := range layouts[1:] {
			arr, err := ArrayOf(elem, capacity)
			require.NoError(t, err)
			var off uintptr
			total, off, err = total.Extend(arr)
			require.NoError(t, err)
			offs = append(offs, off)
		}
		total, err = total.Finalize()
		require.NoError(t, err)

		assert.Equal(t, block.Size(), total.Size, "capacity %d", capacity)
		assert.Equal(t, uintptr(block.Align()), total.Align, "capacity %d", capacity)
		for i := range types {
			assert.Equal(t, block.Field(i).Offset, offs[i], "capacity %d column %d", capacity, i)
		}
	}
}
