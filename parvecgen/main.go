// parvecgen emits the arity instances (vec2.go through vec12.go) of the
// parvec container. Every instance is the same algorithm over a
// different tuple width; only this template is maintained by hand.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const (
	minArity = 2
	maxArity = 12
)

var letters = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}

type col struct {
	Idx  int
	Type string
}

type arity struct {
	N        int
	Params   string // A, B
	Ptrs     string // *A, *B
	PushArgs string // v0 A, v1 B
	GetRets  string // p0 *A, p1 *B
	SliceArg string // s0 []A, s1 []B
	Slices   string // []A, []B
	Cols     []col
}

func makeArity(n int) arity {
	a := arity{N: n}
	var params, ptrs, push, get, sarg, slices []string
	for i := 0; i < n; i++ {
		t := letters[i]
		a.Cols = append(a.Cols, col{Idx: i, Type: t})
		params = append(params, t)
		ptrs = append(ptrs, "*"+t)
		push = append(push, fmt.Sprintf("v%d %s", i, t))
		get = append(get, fmt.Sprintf("p%d *%s", i, t))
		sarg = append(sarg, fmt.Sprintf("s%d []%s", i, t))
		slices = append(slices, "[]"+t)
	}
	a.Params = strings.Join(params, ", ")
	a.Ptrs = strings.Join(ptrs, ", ")
	a.PushArgs = strings.Join(push, ", ")
	a.GetRets = strings.Join(get, ", ")
	a.SliceArg = strings.Join(sarg, ", ")
	a.Slices = strings.Join(slices, ", ")
	return a
}

func main() {
	out := flag.String("out", ".", "output directory")
	flag.Parse()

	tmpl := template.Must(template.New("vec").Parse(vecTemplate))
	for n := minArity; n <= maxArity; n++ {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, makeArity(n)); err != nil {
			fatal(err)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			fatal(err)
		}
		name := filepath.Join(*out, fmt.Sprintf("vec%d.go", n))
		if err := os.WriteFile(name, src, 0o644); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "parvecgen:", err)
	os.Exit(1)
}

const vecTemplate = `// Code generated by parvecgen; DO NOT EDIT.

package parvec

import (
	"reflect"
	"unsafe"

	"github.com/quickwritereader/parvec/alloc"
	"github.com/quickwritereader/parvec/column"
	"github.com/quickwritereader/parvec/layout"
)

// Vec{{.N}} stores logical ({{.Params}}) elements as {{.N}} parallel column
// arrays backed by a single allocation. Every column of an element at
// index < Len is initialized; slots past Len are not. Construct with
// NewVec{{.N}}, WithCapacity{{.N}} or FromSlices{{.N}}; the zero value has no
// allocator and is not usable.
type Vec{{.N}}[{{.Params}} any] struct {
	len  int
	cap  int
	mem  alloc.Allocator
	base unsafe.Pointer // backing block; nil while cap == 0
{{- range .Cols}}
	c{{.Idx}} unsafe.Pointer
{{- end}}
}

// NewVec{{.N}} returns an empty vector. Nothing is allocated until the
// first push or reserve.
func NewVec{{.N}}[{{.Params}} any]() *Vec{{.N}}[{{.Params}}] {
	return NewVec{{.N}}In[{{.Params}}](alloc.Heap{})
}

// NewVec{{.N}}In is NewVec{{.N}} with an explicit allocator.
func NewVec{{.N}}In[{{.Params}} any](mem alloc.Allocator) *Vec{{.N}}[{{.Params}}] {
	return &Vec{{.N}}[{{.Params}}]{
		mem: mem,
{{- range .Cols}}
		c{{.Idx}}: column.Dangling[{{.Type}}](),
{{- end}}
	}
}

// WithCapacity{{.N}} returns an empty vector able to hold exactly capacity
// elements per column before reallocating. A capacity of 0 allocates
// nothing.
func WithCapacity{{.N}}[{{.Params}} any](capacity int) *Vec{{.N}}[{{.Params}}] {
	return WithCapacity{{.N}}In[{{.Params}}](capacity, alloc.Heap{})
}

// WithCapacity{{.N}}In is WithCapacity{{.N}} with an explicit allocator.
func WithCapacity{{.N}}In[{{.Params}} any](capacity int, mem alloc.Allocator) *Vec{{.N}}[{{.Params}}] {
	v := NewVec{{.N}}In[{{.Params}}](mem)
	if capacity > 0 {
		v.realloc(capacity)
	}
	return v
}

// FromSlices{{.N}} builds a vector from parallel slices with one bulk copy
// per column. It fails with ErrUnevenLengths when the slice lengths
// differ, leaving the sources untouched.
func FromSlices{{.N}}[{{.Params}} any]({{.SliceArg}}) (*Vec{{.N}}[{{.Params}}], error) {
	return FromSlices{{.N}}In({{range $i, $c := .Cols}}{{if $i}}, {{end}}s{{$c.Idx}}{{end}}, alloc.Heap{})
}

// FromSlices{{.N}}In is FromSlices{{.N}} with an explicit allocator.
func FromSlices{{.N}}In[{{.Params}} any]({{.SliceArg}}, mem alloc.Allocator) (*Vec{{.N}}[{{.Params}}], error) {
{{- range .Cols}}{{if .Idx}}
	if len(s{{.Idx}}) != len(s0) {
		return nil, ErrUnevenLengths
	}
{{- end}}{{end}}
	v := WithCapacity{{.N}}In[{{.Params}}](len(s0), mem)
	if len(s0) > 0 {
{{- range .Cols}}
		column.Copy[{{.Type}}](v.c{{.Idx}}, unsafe.Pointer(unsafe.SliceData(s{{.Idx}})), len(s0))
{{- end}}
		v.len = len(s0)
	}
	return v, nil
}

func (v *Vec{{.N}}[{{.Params}}]) colTypes() []reflect.Type {
	return []reflect.Type{
{{- range .Cols}}
		reflect.TypeFor[{{.Type}}](),
{{- end}}
	}
}

// offsetsFor runs the layout engine for one capacity: column 0 opens
// the block and every later column extends it with whatever padding
// its alignment requires. Offsets are recomputed on each allocation,
// never cached.
func (v *Vec{{.N}}[{{.Params}}]) offsetsFor(capacity int) ([{{.N}}]uintptr, error) {
	var offs [{{.N}}]uintptr
	total, err := layout.ArrayOf(layout.Of[A](), capacity)
	if err != nil {
		return offs, err
	}
	var arr layout.Layout
{{- range .Cols}}{{if .Idx}}
	if arr, err = layout.ArrayOf(layout.Of[{{.Type}}](), capacity); err != nil {
		return offs, err
	}
	if total, offs[{{.Idx}}], err = total.Extend(arr); err != nil {
		return offs, err
	}
{{- end}}{{end}}
	if _, err = total.Finalize(); err != nil {
		return offs, err
	}
	return offs, nil
}

// realloc moves storage to a fresh block of capacity newCap > 0. Live
// elements are copied before the old block is released, so a failure
// while allocating never destroys data.
func (v *Vec{{.N}}[{{.Params}}]) realloc(newCap int) {
	offs, err := v.offsetsFor(newCap)
	if err != nil {
		panic(err)
	}
	base, err := v.mem.Alloc(blockOf(newCap, v.colTypes()...))
	if err != nil {
		panic(err)
	}
{{- range .Cols}}
	c{{.Idx}} := unsafe.Add(base, offs[{{.Idx}}])
{{- end}}
{{- range .Cols}}
	column.Copy[{{.Type}}](c{{.Idx}}, v.c{{.Idx}}, v.len)
{{- end}}
	v.release()
	v.base = base
{{- range .Cols}}
	v.c{{.Idx}} = c{{.Idx}}
{{- end}}
	v.cap = newCap
}

// release frees the backing block, if any, and parks the columns on
// dangling sentinels. Cells are not cleared here; callers dropping live
// elements clear them first.
func (v *Vec{{.N}}[{{.Params}}]) release() {
	if v.cap == 0 {
		return
	}
	v.mem.Free(v.base, blockOf(v.cap, v.colTypes()...))
	v.base = nil
{{- range .Cols}}
	v.c{{.Idx}} = column.Dangling[{{.Type}}]()
{{- end}}
	v.cap = 0
}

// Len returns the number of live elements.
func (v *Vec{{.N}}[{{.Params}}]) Len() int { return v.len }

// Cap returns how many elements each column can hold without
// reallocating.
func (v *Vec{{.N}}[{{.Params}}]) Cap() int { return v.cap }

// IsEmpty reports whether the vector holds no elements.
func (v *Vec{{.N}}[{{.Params}}]) IsEmpty() bool { return v.len == 0 }

// Get returns pointers to the columns of element i, or ok == false when
// i is out of range. The pointers alias the vector's storage and are
// invalidated by any capacity-changing call.
func (v *Vec{{.N}}[{{.Params}}]) Get(i int) ({{.GetRets}}, ok bool) {
	if uint(i) >= uint(v.len) {
		return
	}
{{- range .Cols}}
	p{{.Idx}} = column.At[{{.Type}}](v.c{{.Idx}}, i)
{{- end}}
	return {{range .Cols}}p{{.Idx}}, {{end}}true
}

// At returns pointers to the columns of element i without bounds
// checking. The caller must guarantee 0 <= i < Len; anything else
// addresses memory the vector does not consider live.
func (v *Vec{{.N}}[{{.Params}}]) At(i int) ({{.Ptrs}}) {
	return {{range $i, $c := .Cols}}{{if $i}}, {{end}}column.At[{{$c.Type}}](v.c{{$c.Idx}}, i){{end}}
}

// Push appends one element, growing storage if needed.
func (v *Vec{{.N}}[{{.Params}}]) Push({{.PushArgs}}) {
	v.Reserve(1)
{{- range .Cols}}
	column.Write(v.c{{.Idx}}, v.len, v{{.Idx}})
{{- end}}
	v.len++
}

// Pop removes and returns the element at index Len-1. ok is false when
// the vector is empty.
func (v *Vec{{.N}}[{{.Params}}]) Pop() ({{.PushArgs}}, ok bool) {
	if v.len == 0 {
		return
	}
	i := v.len - 1
{{- range .Cols}}
	v{{.Idx}} = column.Take[{{.Type}}](v.c{{.Idx}}, i)
{{- end}}
	v.len = i
	return {{range .Cols}}v{{.Idx}}, {{end}}true
}

// Swap exchanges elements a and b. Panics when either index is out of
// range.
func (v *Vec{{.N}}[{{.Params}}]) Swap(a, b int) {
	checkIndex(a, v.len)
	checkIndex(b, v.len)
{{- range .Cols}}
	column.Swap[{{.Type}}](v.c{{.Idx}}, a, b)
{{- end}}
}

// SwapRemove removes element i in O(1) by moving the last element into
// its slot, and returns the removed values. Order is not preserved.
// Panics when i is out of range.
func (v *Vec{{.N}}[{{.Params}}]) SwapRemove(i int) ({{.Params}}) {
	checkIndex(i, v.len)
{{- range .Cols}}
	v{{.Idx}} := column.Take[{{.Type}}](v.c{{.Idx}}, i)
{{- end}}
	last := v.len - 1
	if i != last {
{{- range .Cols}}
		column.Move[{{.Type}}](v.c{{.Idx}}, i, last)
{{- end}}
	}
	v.len = last
	return {{range $i, $c := .Cols}}{{if $i}}, {{end}}v{{$c.Idx}}{{end}}
}

// Truncate keeps the first n elements and destroys the rest. It has no
// effect when n >= Len, and never touches capacity.
func (v *Vec{{.N}}[{{.Params}}]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= v.len {
		return
	}
	end := v.len
	v.len = n
{{- range .Cols}}
	column.Clear[{{.Type}}](v.c{{.Idx}}, n, end)
{{- end}}
}

// Clear removes all elements, keeping capacity.
func (v *Vec{{.N}}[{{.Params}}]) Clear() {
	v.Truncate(0)
}

// Reserve ensures the vector can hold at least additional more elements
// without reallocating, growing per the power-of-two policy. Growth
// invalidates previously returned pointers and slices. A total that
// overflows the element count panics with layout.ErrSizeOverflow;
// additional <= 0 is a no-op.
func (v *Vec{{.N}}[{{.Params}}]) Reserve(additional int) {
	if additional <= 0 {
		return
	}
	need := v.len + additional
	if need < 0 {
		panic(layout.ErrSizeOverflow)
	}
	if need <= v.cap {
		return
	}
	v.realloc(alloc.GrowCapacity(need))
}

// ShrinkTo reduces capacity toward minCapacity, never below Len. It is
// a no-op when minCapacity exceeds the current capacity.
func (v *Vec{{.N}}[{{.Params}}]) ShrinkTo(minCapacity int) {
	next := alloc.ShrinkCapacity(v.len, v.cap, minCapacity)
	if next < 0 {
		return
	}
	if next == 0 {
		v.release()
		return
	}
	v.realloc(next)
}

// ShrinkToFit drops capacity down to exactly Len.
func (v *Vec{{.N}}[{{.Params}}]) ShrinkToFit() {
	v.ShrinkTo(v.len)
}

// Append moves every element of other to the end of v, leaving other
// empty with its capacity intact. other must not be v itself.
func (v *Vec{{.N}}[{{.Params}}]) Append(other *Vec{{.N}}[{{.Params}}]) {
	n := other.len
	if n == 0 {
		return
	}
	v.Reserve(n)
{{- range .Cols}}
	column.Copy[{{.Type}}](column.Index[{{.Type}}](v.c{{.Idx}}, v.len), other.c{{.Idx}}, n)
{{- end}}
	v.len += n
	other.len = 0
{{- range .Cols}}
	column.Clear[{{.Type}}](other.c{{.Idx}}, 0, n)
{{- end}}
}

// Extend bulk-appends parallel slices with one copy per column. It
// fails with ErrUnevenLengths when the slice lengths differ, leaving
// both the vector and the sources untouched. The sources must not
// alias the vector's own storage.
func (v *Vec{{.N}}[{{.Params}}]) Extend({{.SliceArg}}) error {
{{- range .Cols}}{{if .Idx}}
	if len(s{{.Idx}}) != len(s0) {
		return ErrUnevenLengths
	}
{{- end}}{{end}}
	n := len(s0)
	if n == 0 {
		return nil
	}
	v.Reserve(n)
{{- range .Cols}}
	column.Copy[{{.Type}}](column.Index[{{.Type}}](v.c{{.Idx}}, v.len), unsafe.Pointer(unsafe.SliceData(s{{.Idx}})), n)
{{- end}}
	v.len += n
	return nil
}

// Slices returns each column as a contiguous slice of exactly Len
// elements. The slices alias the vector's storage; any capacity-
// changing call invalidates them.
func (v *Vec{{.N}}[{{.Params}}]) Slices() ({{.Slices}}) {
	return {{range $i, $c := .Cols}}{{if $i}}, {{end}}column.Slice[{{$c.Type}}](v.c{{$c.Idx}}, v.len){{end}}
}

// Release destroys every live element and returns the backing block to
// the allocator. The vector remains usable and empty afterwards.
func (v *Vec{{.N}}[{{.Params}}]) Release() {
	v.Clear()
	v.release()
}
`
