package column

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func base[T any](s []T) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(s))
}

func TestIndexStride(t *testing.T) {
	s := make([]int64, 4)
	b := base(s)
	for i := range s {
		assert.Equal(t, unsafe.Pointer(&s[i]), Index[int64](b, i))
	}
}

func TestWriteAt(t *testing.T) {
	s := make([]string, 3)
	b := base(s)

	Write(b, 1, "mid")
	assert.Equal(t, []string{"", "mid", ""}, s)
	assert.Equal(t, "mid", *At[string](b, 1))

	*At[string](b, 2) = "end"
	assert.Equal(t, "end", s[2])
}

func TestTakeZeroesCell(t *testing.T) {
	s := []string{"a", "b", "c"}
	b := base(s)

	got := Take[string](b, 1)
	assert.Equal(t, "b", got)
	assert.Equal(t, []string{"a", "", "c"}, s, "the vacated cell must not keep its value")
}

func TestMove(t *testing.T) {
	s := []int{10, 20, 30}
	b := base(s)

	Move[int](b, 0, 2)
	assert.Equal(t, []int{30, 20, 0}, s)
}

func TestSwap(t *testing.T) {
	s := []string{"x", "y"}
	b := base(s)

	Swap[string](b, 0, 1)
	assert.Equal(t, []string{"y", "x"}, s)
}

func TestCopyBetweenBlocks(t *testing.T) {
	src := []int32{1, 2, 3, 4}
	dst := make([]int32, 4)

	Copy[int32](base(dst), base(src), 3)
	assert.Equal(t, []int32{1, 2, 3, 0}, dst)

	// zero count never touches memory, even with sentinel bases
	Copy[int32](Dangling[int32](), Dangling[int32](), 0)
}

func TestClearRange(t *testing.T) {
	s := []string{"a", "b", "c", "d"}
	b := base(s)

	Clear[string](b, 1, 3)
	assert.Equal(t, []string{"a", "", "", "d"}, s)

	Clear[string](b, 2, 2) // empty range is a no-op
	assert.Equal(t, []string{"a", "", "", "d"}, s)
}

func TestSliceAliasesStorage(t *testing.T) {
	s := []float64{1, 2, 3}
	view := Slice[float64](base(s), 2)

	require.Len(t, view, 2)
	view[0] = 9
	assert.Equal(t, []float64{9, 2, 3}, s)
}

func TestDangling(t *testing.T) {
	p := Dangling[string]()
	require.NotNil(t, p)

	// aligned for the column type, valid for zero-length views
	assert.Zero(t, uintptr(p)%unsafe.Alignof(""))
	assert.Empty(t, Slice[string](p, 0))
}
