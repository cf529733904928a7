package vector

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/vector/buf"
)

const (
	// shiftStep is the number of index bits consumed per tree level.
	shiftStep = 5
	// branchFactor is the maximum number of children per interior node and
	// elements per leaf or tail. It must stay in sync with buf.Capacity.
	branchFactor = 1 << shiftStep
	bitMask      = branchFactor - 1
)

// The tree arithmetic assumes buffers hold exactly one branch worth of slots.
var _ = [1]struct{}{}[branchFactor-buf.Capacity]

// Vector stores an ordered sequence of elements in a persistent,
// structurally shared 32-ary tree with a tail buffer.
//
// A vector created by
//
//	Vector[T]{}
//
// is a valid object and behaves like an empty vector, though clients should
// prefer Empty for a canonical empty value.
//
// Methods never mutate their receiver; every “modifying” operation returns a
// new Vector which shares untouched subtrees with its input.
type Vector[T any] struct {
	length    int
	rootShift uint
	tree      tree[T]
	tail      buf.Buffer[T]
}

// shift returns the vector's root shift, normalizing the zero value.
//
// Canonical vectors carry rootShift >= shiftStep even when the tree is empty,
// so that the overflow check at depth 0 is well-defined.
func (v Vector[T]) shift() uint {
	if v.rootShift == 0 {
		return shiftStep
	}
	return v.rootShift
}

// Empty returns the canonical empty vector.
func Empty[T any]() Vector[T] {
	return Vector[T]{rootShift: shiftStep}
}

// FromSlice creates a vector holding the elements of values, in order.
//
// The input slice is copied; later changes to it do not affect the vector.
func FromSlice[T any](values []T) Vector[T] {
	var b Builder[T]
	rest := values
	for {
		filled, remaining := buf.FromSlice(rest, branchFactor)
		if filled.Len() < branchFactor {
			b.tail = filled
			return b.vector()
		}
		b.leaves = append(b.leaves, leaf[T]{values: filled})
		rest = remaining
	}
}

// Collect creates a vector from an iterator sequence.
func Collect[T any](seq iter.Seq[T]) Vector[T] {
	b := NewBuilder[T]()
	for value := range seq {
		_ = b.Append(value)
	}
	return b.Vector()
}

// Initialize creates a vector of n elements, with element i set to f(i).
// A count of zero or less yields the empty vector.
func Initialize[T any](n int, f func(int) T) Vector[T] {
	if n <= 0 {
		return Empty[T]()
	}
	tailLen := n & bitMask
	treeLen := n - tailLen
	b := Builder[T]{tail: buf.Initialize(tailLen, treeLen, f)}
	if treeLen > 0 {
		b.leaves = make([]leaf[T], 0, treeLen/branchFactor)
		for from := 0; from < treeLen; from += branchFactor {
			b.leaves = append(b.leaves, leaf[T]{values: buf.Initialize(branchFactor, from, f)})
		}
	}
	return b.vector()
}

// Repeat creates a vector of n copies of value.
// A count of zero or less yields the empty vector.
func Repeat[T any](n int, value T) Vector[T] {
	return Initialize(n, func(int) T { return value })
}

// Len returns the number of elements in the vector.
func (v Vector[T]) Len() int {
	return v.length
}

// IsEmpty reports whether the vector has no elements.
func (v Vector[T]) IsEmpty() bool {
	return v.length == 0
}

// Get returns the element at index i, if it exists. The second return value
// indicates whether the element exists; an out-of-bounds index is a normal
// outcome, not a fault.
func (v Vector[T]) Get(i int) (T, bool) {
	if i < 0 || i >= v.length {
		var zero T
		return zero, false
	}
	return v.unsafeGet(i), true
}

// At returns the element at index i, or ErrIndexOutOfBounds if there is
// none. It is the error-reporting sibling of Get, for callers that want to
// propagate the failure.
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.length {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return v.unsafeGet(i), nil
}

// Last returns the final element of the vector, if any.
func (v Vector[T]) Last() (T, bool) {
	return v.Get(v.length - 1)
}

// unsafeGet returns the element at index i without bounds checking.
//
// Callers must have proven 0 <= i < Len(); it exists for internal use by
// operations that have already validated their range (indexedMap, slice).
func (v Vector[T]) unsafeGet(i int) T {
	if i >= tailIndex(v.length) {
		return v.tail.UnsafeGet(i & bitMask)
	}
	return treeGet[T](v.tree, v.shift(), i)
}

// Values returns an iterator over all elements in index order.
func (v Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(v.unsafeGet(i)) {
				return
			}
		}
	}
}

// All returns an iterator over index/element pairs in index order.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.unsafeGet(i)) {
				return
			}
		}
	}
}

// ToSlice returns all elements as a Go slice. This allocates a fresh backing
// array of Len() elements.
func (v Vector[T]) ToSlice() []T {
	out := make([]T, 0, v.length)
	return Foldl(v, out, func(acc []T, value T) []T {
		return append(acc, value)
	})
}

// IndexedValue pairs an element with its index, for ToIndexedSlice.
type IndexedValue[T any] struct {
	Index int
	Value T
}

// ToIndexedSlice returns all elements paired with their indices.
func (v Vector[T]) ToIndexedSlice() []IndexedValue[T] {
	out := make([]IndexedValue[T], 0, v.length)
	for i, value := range v.All() {
		out = append(out, IndexedValue[T]{Index: i, Value: value})
	}
	return out
}

// String renders the vector elements for debugging. This may be an expensive
// operation, as it visits every element.
func (v Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, value := range v.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", value)
	}
	sb.WriteByte(']')
	return sb.String()
}
