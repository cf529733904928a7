package vector

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/vector/buf"
)

// This file contains the tree-level plumbing behind the public vector
// operations: index navigation, path-copying updates, tail insertion and
// right-slicing. The public API in ops.go is a thin veneer over these.

// tailIndex returns the index of the first element stored in the tail of a
// vector of n elements, i.e. the element count of its tree.
func tailIndex(n int) int {
	return n &^ bitMask
}

// rootShiftForTreeLen returns the minimal root shift for a tree holding
// treeLen elements. treeLen must be a multiple of branchFactor.
//
// Push, builder and slice all derive the root shift from this single
// formula, which is what makes equal-content vectors representation-identical
// no matter how they were produced.
func rootShiftForTreeLen(treeLen int) uint {
	shift := uint(shiftStep)
	for (treeLen >> shiftStep) >= (1 << shift) {
		shift += shiftStep
	}
	return shift
}

// translateIndex normalizes a possibly negative slice index: negative values
// count from the end, and the result is clamped to [0, length].
func translateIndex(i, length int) int {
	if i < 0 {
		i += length
	}
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

// treeGet retrieves element i from a tree addressed at the given shift.
// The index must lie within the tree, i.e. i < tailIndex of the vector.
func treeGet[T any](t tree[T], shift uint, i int) T {
	pos := (i >> shift) & bitMask
	switch n := t.UnsafeGet(pos).(type) {
	case subTree[T]:
		return treeGet[T](n.children, shift-shiftStep, i)
	case leaf[T]:
		return n.values.UnsafeGet(i & bitMask)
	}
	panic("vector: corrupt tree")
}

// treeSet replaces element i in a tree addressed at the given shift,
// copying the path from the root to the affected leaf.
func treeSet[T any](t tree[T], shift uint, i int, value T) tree[T] {
	pos := (i >> shift) & bitMask
	switch n := t.UnsafeGet(pos).(type) {
	case subTree[T]:
		sub := subTree[T]{children: treeSet(n.children, shift-shiftStep, i, value)}
		return t.UnsafeSet(pos, node[T](sub))
	case leaf[T]:
		l := leaf[T]{values: n.values.UnsafeSet(i&bitMask, value)}
		return t.UnsafeSet(pos, node[T](l))
	}
	panic("vector: corrupt tree")
}

// pushLeaf inserts a full buffer of values as the new rightmost leaf of a
// tree addressed at the given shift. index is the element index the leaf
// will start at (before any root growth); it steers the descent. Missing
// interior nodes along the rightmost path are created on the way down.
func pushLeaf[T any](t tree[T], shift uint, index int, values buf.Buffer[T]) tree[T] {
	pos := (index >> shift) & bitMask
	if pos >= t.Len() {
		if shift == shiftStep {
			return t.Push(node[T](leaf[T]{values: values}))
		}
		sub := subTree[T]{children: pushLeaf(buf.Empty[node[T]](), shift-shiftStep, index, values)}
		return t.Push(node[T](sub))
	}
	switch n := t.UnsafeGet(pos).(type) {
	case subTree[T]:
		sub := subTree[T]{children: pushLeaf(n.children, shift-shiftStep, index, values)}
		return t.UnsafeSet(pos, node[T](sub))
	case leaf[T]:
		// a leaf in the descent path gets demoted to the sole child of a
		// fresh interior node
		sub := subTree[T]{children: pushLeaf(buf.Singleton[node[T]](n), shift-shiftStep, index, values)}
		return t.UnsafeSet(pos, node[T](sub))
	}
	panic("vector: corrupt tree")
}

// replaceTail substitutes the vector's tail buffer and adjusts the length
// accordingly. A full replacement tail is flushed into the tree, growing the
// root by one level if the tree is at capacity for the current shift.
func (v Vector[T]) replaceTail(newTail buf.Buffer[T]) Vector[T] {
	newLength := v.length + newTail.Len() - v.tail.Len()
	if !newTail.IsFull() {
		return Vector[T]{length: newLength, rootShift: v.shift(), tree: v.tree, tail: newTail}
	}
	if (newLength >> shiftStep) >= (1 << v.shift()) {
		newShift := v.shift() + shiftStep
		tracer().Debugf("vector of %d elements grows to root shift %d", newLength, newShift)
		root := buf.Singleton[node[T]](subTree[T]{children: v.tree})
		return Vector[T]{
			length:    newLength,
			rootShift: newShift,
			tree:      pushLeaf(root, newShift, v.length, newTail),
		}
	}
	return Vector[T]{
		length:    newLength,
		rootShift: v.shift(),
		tree:      pushLeaf(v.tree, v.shift(), v.length, newTail),
	}
}

// sliceRight truncates the vector to its first end elements. end must be in
// [0, length].
func (v Vector[T]) sliceRight(end int) Vector[T] {
	if end == v.length {
		return v
	}
	if end >= tailIndex(v.length) {
		// cut runs through the tail, the tree stays as is
		return Vector[T]{
			length:    end,
			rootShift: v.shift(),
			tree:      v.tree,
			tail:      v.tail.Slice(0, end&bitMask),
		}
	}
	endIdx := tailIndex(end)
	newShift := rootShiftForTreeLen(endIdx)
	if newShift < v.shift() {
		tracer().Debugf("vector truncated to %d elements, root hoisted to shift %d", end, newShift)
	}
	return Vector[T]{
		length:    end,
		rootShift: newShift,
		tree:      hoistTree[T](sliceTree[T](v.tree, v.shift(), endIdx), v.shift(), newShift),
		tail:      fetchNewTail[T](v.tree, v.shift(), end, endIdx),
	}
}

// sliceTree drops every element at and beyond endIdx from a tree addressed
// at the given shift. endIdx must be a multiple of branchFactor and lie
// within the tree.
func sliceTree[T any](t tree[T], shift uint, endIdx int) tree[T] {
	lastPos := (endIdx >> shift) & bitMask
	switch n := t.UnsafeGet(lastPos).(type) {
	case subTree[T]:
		sub := sliceTree[T](n.children, shift-shiftStep, endIdx)
		if sub.IsEmpty() {
			return t.Slice(0, lastPos)
		}
		return t.Slice(0, lastPos+1).UnsafeSet(lastPos, node[T](subTree[T]{children: sub}))
	case leaf[T]:
		// endIdx is leaf-aligned, so the leaf at lastPos is cut off entirely
		return t.Slice(0, lastPos)
	}
	panic("vector: corrupt tree")
}

// hoistTree removes now-unary root levels after a right-slice, lowering the
// tree from oldShift to newShift.
func hoistTree[T any](t tree[T], oldShift, newShift uint) tree[T] {
	if oldShift <= newShift || t.IsEmpty() {
		return t
	}
	switch n := t.UnsafeGet(0).(type) {
	case subTree[T]:
		return hoistTree[T](n.children, oldShift-shiftStep, newShift)
	case leaf[T]:
		return t
	}
	panic("vector: corrupt tree")
}

// fetchNewTail extracts the elements [endIdx, end) from the tree; they become
// the tail of the right-sliced vector. All of them live in the single leaf
// containing element endIdx.
func fetchNewTail[T any](t tree[T], shift uint, end, endIdx int) buf.Buffer[T] {
	pos := (endIdx >> shift) & bitMask
	switch n := t.UnsafeGet(pos).(type) {
	case subTree[T]:
		return fetchNewTail[T](n.children, shift-shiftStep, end, endIdx)
	case leaf[T]:
		return n.values.Slice(0, end&bitMask)
	}
	panic("vector: corrupt tree")
}

// collectLeaves appends all leaves of a tree to acc, in element order.
func collectLeaves[T any](t tree[T], acc []leaf[T]) []leaf[T] {
	return buf.Foldl(t, acc, func(acc []leaf[T], n node[T]) []leaf[T] {
		switch n := n.(type) {
		case subTree[T]:
			return collectLeaves[T](n.children, acc)
		case leaf[T]:
			return append(acc, n)
		}
		panic("vector: corrupt tree")
	})
}
