// Package column implements the per-column primitives every arity of
// the container instantiates: pointer stepping, element moves, swaps,
// bulk copies and slice views over one typed array inside a shared
// block. None of these operations check bounds; callers must keep every
// index inside the live allocation.
package column

import "unsafe"

// danglingWord backs every zero-capacity column. It is aligned for any
// Go type and must never be written through.
var danglingWord uint64

// Dangling returns a well-defined, non-nil, aligned address for a
// column with no allocation behind it. It is valid for arithmetic and
// zero-length slice views only, never for dereference.
func Dangling[T any]() unsafe.Pointer {
	return unsafe.Pointer(&danglingWord)
}

// Index advances base by i elements of type T.
func Index[T any](base unsafe.Pointer, i int) unsafe.Pointer {
	var z T
	return unsafe.Add(base, uintptr(i)*unsafe.Sizeof(z))
}

// At returns a pointer to the i-th element of the column at base.
func At[T any](base unsafe.Pointer, i int) *T {
	return (*T)(Index[T](base, i))
}

// Write stores v into cell i, making it initialized.
func Write[T any](base unsafe.Pointer, i int, v T) {
	*At[T](base, i) = v
}

// Take moves the value at cell i out of the column. The cell is zeroed
// so it no longer retains anything the value referenced.
func Take[T any](base unsafe.Pointer, i int) T {
	p := At[T](base, i)
	v := *p
	var z T
	*p = z
	return v
}

// Move transfers the value at cell src into cell dst, zeroing src.
// dst and src must be distinct.
func Move[T any](base unsafe.Pointer, dst, src int) {
	d, s := At[T](base, dst), At[T](base, src)
	*d = *s
	var z T
	*s = z
}

// Swap exchanges the values at cells i and j.
func Swap[T any](base unsafe.Pointer, i, j int) {
	a, b := At[T](base, i), At[T](base, j)
	*a, *b = *b, *a
}

// Copy copies n elements from the column starting at src to the one
// starting at dst. The two may live in different blocks; overlapping
// ranges are handled like the built-in copy.
func Copy[T any](dst, src unsafe.Pointer, n int) {
	if n <= 0 {
		return
	}
	copy(unsafe.Slice((*T)(dst), n), unsafe.Slice((*T)(src), n))
}

// Clear zeroes cells [from, to), releasing whatever they referenced.
func Clear[T any](base unsafe.Pointer, from, to int) {
	if to <= from {
		return
	}
	clear(unsafe.Slice(At[T](base, from), to-from))
}

// Slice views the first n elements of the column as a contiguous Go
// slice aliasing the block's memory.
func Slice[T any](base unsafe.Pointer, n int) []T {
	return unsafe.Slice((*T)(base), n)
}
