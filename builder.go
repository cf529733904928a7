package vector

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/vector/buf"
)

// Builder accumulates elements for efficient one-shot vector construction.
// Appending n elements costs O(n), as opposed to O(n log n) for repeated
// Vector.Push, yet the resulting vector is guaranteed to be
// representation-identical to one grown by pushing.
//
// The builder keeps completed leaves in element order and an open tail for
// the trailing partial group. It is not safe for concurrent use.
//
// Creating a Builder is lightweight:
//
//	b := vector.NewBuilder[rune]()
//
// After a call to b.Vector() the builder is completed and further appends
// return ErrVectorCompleted. Use Reset to recycle a completed builder.
type Builder[T any] struct {
	leaves []leaf[T]
	tail   buf.Buffer[T]
	done   bool
}

// NewBuilder creates an empty vector builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Len returns the number of elements appended so far.
func (b *Builder[T]) Len() int {
	return len(b.leaves)*branchFactor + b.tail.Len()
}

// Append adds value after the elements appended so far. It fails with
// ErrVectorCompleted if the builder has already produced its vector.
func (b *Builder[T]) Append(value T) error {
	if b.done {
		return ErrVectorCompleted
	}
	b.tail = b.tail.Push(value)
	if b.tail.IsFull() {
		b.leaves = append(b.leaves, leaf[T]{values: b.tail})
		b.tail = buf.Empty[T]()
	}
	return nil
}

// AppendSlice adds all elements of values, in order.
func (b *Builder[T]) AppendSlice(values []T) error {
	if b.done {
		return ErrVectorCompleted
	}
	rest := values
	for len(rest) > 0 {
		var filled buf.Buffer[T]
		filled, rest = buf.FromSlice(rest, branchFactor-b.tail.Len())
		b.pushBuffer(filled)
	}
	return nil
}

// Vector produces the vector from all appended elements and completes the
// builder.
func (b *Builder[T]) Vector() Vector[T] {
	b.done = true
	return b.vector()
}

// Reset discards all accumulated elements and reopens the builder.
func (b *Builder[T]) Reset() {
	b.leaves = nil
	b.tail = buf.Empty[T]()
	b.done = false
}

// pushBuffer merges a buffer of at most branchFactor elements into the
// builder, completing a leaf whenever the open tail fills up.
func (b *Builder[T]) pushBuffer(values buf.Buffer[T]) {
	if values.IsEmpty() {
		return
	}
	merged, rest := buf.Merge(b.tail, values, branchFactor)
	if merged.IsFull() {
		b.leaves = append(b.leaves, leaf[T]{values: merged})
		b.tail = rest
		return
	}
	b.tail = merged
}

// vector assembles the canonical vector for the accumulated leaves and tail.
func (b *Builder[T]) vector() Vector[T] {
	if len(b.leaves) == 0 {
		return Vector[T]{length: b.tail.Len(), rootShift: shiftStep, tail: b.tail}
	}
	treeLen := len(b.leaves) * branchFactor
	nodes := make([]node[T], len(b.leaves))
	for i, l := range b.leaves {
		nodes[i] = l
	}
	// the root shift dictates the tree depth; compressing once per level
	// below the root also wraps a run of exactly 32 full groupings once more
	rootShift := rootShiftForTreeLen(treeLen)
	for shift := uint(shiftStep); shift < rootShift; shift += shiftStep {
		nodes = compressNodes(nodes)
	}
	root, remaining := buf.FromSlice(nodes, branchFactor)
	assert(len(remaining) == 0, "vector: root node overfull after compression")
	return Vector[T]{
		length:    treeLen + b.tail.Len(),
		rootShift: rootShift,
		tree:      root,
		tail:      b.tail,
	}
}

// compressNodes wraps consecutive groups of branchFactor nodes into interior
// nodes, producing the next higher tree level. The final group may be
// smaller but is never empty.
func compressNodes[T any](nodes []node[T]) []node[T] {
	out := make([]node[T], 0, (len(nodes)+bitMask)/branchFactor)
	rest := nodes
	for len(rest) > 0 {
		var group tree[T]
		group, rest = buf.FromSlice(rest, branchFactor)
		out = append(out, subTree[T]{children: group})
	}
	return out
}
