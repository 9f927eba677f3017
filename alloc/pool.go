package alloc

import (
	"reflect"
	"sync"
	"unsafe"
)

// Pool reuses freed blocks instead of handing them back to the garbage
// collector, keyed by block type. Useful when vectors of the same shape
// are built and released at a high rate.
type Pool struct {
	pools sync.Map // reflect.Type -> *sync.Pool
}

func NewPool() *Pool {
	return &Pool{}
}

// Alloc returns a pooled block of the given type if one is available,
// otherwise a fresh one. Either way the block is zeroed.
func (p *Pool) Alloc(block reflect.Type) (unsafe.Pointer, error) {
	if entry, ok := p.pools.Load(block); ok {
		if v := entry.(*sync.Pool).Get(); v != nil {
			return v.(unsafe.Pointer), nil
		}
	}
	return reflect.New(block).UnsafePointer(), nil
}

// Free scrubs the block and returns it to the pool for its type.
// Scrubbing before pooling means a parked block retains nothing its
// former cells referenced.
func (p *Pool) Free(ptr unsafe.Pointer, block reflect.Type) {
	reflect.NewAt(block, ptr).Elem().SetZero()
	entry, _ := p.pools.LoadOrStore(block, &sync.Pool{})
	entry.(*sync.Pool).Put(ptr)
}
