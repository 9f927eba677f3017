// Package layout computes sizes, alignments and byte offsets for blocks
// of memory that hold several typed arrays back to back.
package layout

import (
	"errors"
	"math"
	"unsafe"
)

// ErrSizeOverflow is returned when a requested layout does not fit in
// the address space.
var ErrSizeOverflow = errors.New("layout: size overflows address space")

// maxSize is the largest byte size a single Go allocation may have.
const maxSize = uintptr(math.MaxInt)

// Layout describes the size and alignment of a block of memory.
// Alignments are always powers of two.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// Of returns the layout of a single value of type T.
func Of[T any]() Layout {
	var z T
	return Layout{Size: unsafe.Sizeof(z), Align: unsafe.Alignof(z)}
}

// ArrayOf returns the layout of n contiguous values of elem.
func ArrayOf(elem Layout, n int) (Layout, error) {
	if n < 0 {
		return Layout{}, ErrSizeOverflow
	}
	if elem.Size > 0 && uintptr(n) > maxSize/elem.Size {
		return Layout{}, ErrSizeOverflow
	}
	return Layout{Size: elem.Size * uintptr(n), Align: elem.Align}, nil
}

// Extend appends next after l, inserting padding so next starts at an
// address satisfying its alignment. It returns the combined layout and
// the byte offset at which next begins. The result is deterministic:
// the same inputs always produce the same offsets.
func (l Layout) Extend(next Layout) (Layout, uintptr, error) {
	off, err := alignUp(l.Size, next.Align)
	if err != nil {
		return Layout{}, 0, err
	}
	if next.Size > maxSize-off {
		return Layout{}, 0, ErrSizeOverflow
	}
	align := l.Align
	if next.Align > align {
		align = next.Align
	}
	return Layout{Size: off + next.Size, Align: align}, off, nil
}

// Finalize rounds the total size up to a multiple of the alignment,
// matching what the Go runtime does for struct types.
func (l Layout) Finalize() (Layout, error) {
	size, err := alignUp(l.Size, l.Align)
	if err != nil {
		return Layout{}, err
	}
	return Layout{Size: size, Align: l.Align}, nil
}

func alignUp(n, align uintptr) (uintptr, error) {
	if align == 0 {
		align = 1
	}
	if n > maxSize-(align-1) {
		return 0, ErrSizeOverflow
	}
	return (n + align - 1) &^ (align - 1), nil
}
