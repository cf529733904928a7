package vector

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Set returns a vector with the element at index i replaced by value. If i is
// out of bounds, the vector is returned unchanged.
func (v Vector[T]) Set(i int, value T) Vector[T] {
	if i < 0 || i >= v.length {
		return v
	}
	out := v
	out.rootShift = v.shift()
	if i >= tailIndex(v.length) {
		out.tail = v.tail.UnsafeSet(i&bitMask, value)
		return out
	}
	out.tree = treeSet(v.tree, v.shift(), i, value)
	return out
}

// Push returns a vector with value appended after the last element.
func (v Vector[T]) Push(value T) Vector[T] {
	return v.replaceTail(v.tail.Push(value))
}

// Pop returns a vector with the last element removed. Popping the empty
// vector returns the empty vector.
func (v Vector[T]) Pop() Vector[T] {
	if v.length == 0 {
		return Empty[T]()
	}
	return v.sliceRight(v.length - 1)
}

// Slice returns a vector holding the elements of the half-open index range
// [from, to). Negative indices count from the end of the vector, i.e.
//
//	FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8}).Slice(2, -2)
//
// yields [3 4 5 6]. Indices are clamped to the vector's bounds; an empty or
// inverted range yields the empty vector.
func (v Vector[T]) Slice(from, to int) Vector[T] {
	from = translateIndex(from, v.length)
	to = translateIndex(to, v.length)
	if from >= to {
		return Empty[T]()
	}
	if from == 0 {
		return v.sliceRight(to)
	}
	// general slices shift every element's index and are rebuilt leaf by leaf
	return Initialize(to-from, func(i int) T {
		return v.unsafeGet(i + from)
	})
}

// Append returns the concatenation of v and other.
func (v Vector[T]) Append(other Vector[T]) Vector[T] {
	if v.length == 0 {
		other.rootShift = other.shift()
		return other
	}
	if other.length == 0 {
		v.rootShift = v.shift()
		return v
	}
	b := Builder[T]{
		leaves: collectLeaves[T](v.tree, make([]leaf[T], 0, tailIndex(v.length+other.length)/branchFactor)),
		tail:   v.tail,
	}
	for _, l := range collectLeaves[T](other.tree, nil) {
		b.pushBuffer(l.values)
	}
	b.pushBuffer(other.tail)
	return b.vector()
}
