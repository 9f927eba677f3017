package alloc

import (
	"errors"
	"reflect"
	"unsafe"
)

// ErrAllocFailed is the error the FailAfter double reports once its
// budget is spent.
var ErrAllocFailed = errors.New("alloc: simulated allocation failure")

// Counting wraps another allocator and keeps single-threaded bookkeeping
// of the blocks it handed out. Intended for tests.
type Counting struct {
	Inner  Allocator
	Allocs int
	Frees  int
	Bytes  uintptr // bytes currently live
}

func (c *Counting) Alloc(block reflect.Type) (unsafe.Pointer, error) {
	ptr, err := c.Inner.Alloc(block)
	if err != nil {
		return nil, err
	}
	c.Allocs++
	c.Bytes += block.Size()
	return ptr, nil
}

func (c *Counting) Free(ptr unsafe.Pointer, block reflect.Type) {
	c.Frees++
	c.Bytes -= block.Size()
	c.Inner.Free(ptr, block)
}

// Live reports how many blocks have been allocated and not yet freed.
func (c *Counting) Live() int {
	return c.Allocs - c.Frees
}

// FailAfter delegates to Inner until Remaining allocations have
// succeeded, then reports ErrAllocFailed from every further Alloc.
type FailAfter struct {
	Inner     Allocator
	Remaining int
}

func (f *FailAfter) Alloc(block reflect.Type) (unsafe.Pointer, error) {
	if f.Remaining <= 0 {
		return nil, ErrAllocFailed
	}
	f.Remaining--
	return f.Inner.Alloc(block)
}

func (f *FailAfter) Free(ptr unsafe.Pointer, block reflect.Type) {
	f.Inner.Free(ptr, block)
}
