// Package alloc manages the single backing block a container's columns
// live in. Blocks are precisely typed (a struct with one array field
// per column) so the garbage collector traces pointers stored in any
// column. The allocator is an injected collaborator: production code
// uses Heap or Pool, tests wrap them with Counting or FailAfter.
package alloc

import (
	"math/bits"
	"reflect"
	"unsafe"
)

// Allocator provides and reclaims backing blocks.
//
// Alloc returns a zeroed block of the given type. Free releases a block
// previously obtained from Alloc with the same block type; passing a
// different type is a contract violation, not a reported error.
type Allocator interface {
	Alloc(block reflect.Type) (unsafe.Pointer, error)
	Free(ptr unsafe.Pointer, block reflect.Type)
}

// Heap allocates blocks on the Go heap and leaves reclamation to the
// garbage collector. Free is a no-op; the block dies when the last
// pointer into it does.
type Heap struct{}

func (Heap) Alloc(block reflect.Type) (unsafe.Pointer, error) {
	return reflect.New(block).UnsafePointer(), nil
}

func (Heap) Free(unsafe.Pointer, reflect.Type) {}

// GrowCapacity returns the capacity a container should adopt to hold at
// least need elements: the next power of two, never less than 4.
func GrowCapacity(need int) int {
	if need <= 4 {
		return 4
	}
	p := 1 << bits.Len(uint(need-1))
	if p < need {
		// next power of two does not fit in an int; hand back the raw
		// requirement and let the layout overflow check reject it.
		return need
	}
	return p
}

// ShrinkCapacity returns the capacity shrink_to(minCapacity) adopts for
// a container of length length, or -1 when the request is a no-op.
func ShrinkCapacity(length, capacity, minCapacity int) int {
	if minCapacity > capacity {
		return -1
	}
	next := length
	if minCapacity > next {
		next = minCapacity
	}
	if next == capacity {
		return -1
	}
	return next
}
