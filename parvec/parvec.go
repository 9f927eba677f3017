// Package parvec provides structure-of-arrays vectors: VecN stores
// logical N-tuples as N parallel column arrays packed into a single
// allocation, indexed by one shared length. Rows are read and written
// as tuples; each column iterates as a dense contiguous slice.
//
// The arity instances Vec2 through Vec12 are generated; the shared
// machinery lives in the layout, alloc and column packages.
package parvec

//go:generate go run github.com/quickwritereader/parvec/parvecgen -out .

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// ErrUnevenLengths reports a conversion from parallel slices whose
// lengths differ. Nothing is consumed; the sources stay valid.
var ErrUnevenLengths = errors.New("parvec: slices have uneven lengths")

// blockOf builds the runtime type of the backing block for one
// capacity: a struct with one [capacity]T array field per column, in
// declared column order. Typing the block precisely lets the garbage
// collector trace pointers stored in any column, and the struct's
// field offsets coincide with the layout engine's accumulate-and-pad
// algorithm.
func blockOf(capacity int, cols ...reflect.Type) reflect.Type {
	fields := make([]reflect.StructField, len(cols))
	for i, t := range cols {
		fields[i] = reflect.StructField{
			Name: "C" + strconv.Itoa(i),
			Type: reflect.ArrayOf(capacity, t),
		}
	}
	return reflect.StructOf(fields)
}

func checkIndex(i, length int) {
	if uint(i) >= uint(length) {
		panic(fmt.Sprintf("parvec: index out of range [%d] with length %d", i, length))
	}
}
