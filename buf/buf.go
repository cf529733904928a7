package buf

// Capacity is the fixed maximum number of elements per buffer. It equals the
// branch factor of the vector tree built on top of this package.
const Capacity = 32

// Buffer is a fixed-capacity ordered sequence of up to Capacity elements.
//
// The buffer is immutable by convention: modifying operations return a new
// Buffer. Slots at and beyond the logical length always hold the zero value,
// so two buffers with equal content are identical values.
type Buffer[T any] struct {
	// store is the fixed backing storage; valid elements are store[:n].
	store [Capacity]T
	n     uint8
}

// Empty returns a buffer with no elements.
func Empty[T any]() Buffer[T] {
	return Buffer[T]{}
}

// Singleton returns a buffer holding exactly one element.
func Singleton[T any](value T) Buffer[T] {
	var b Buffer[T]
	b.store[0] = value
	b.n = 1
	return b
}

// Initialize builds a buffer of n elements, filling slot i with f(offset+i).
//
// n is clamped to [0, Capacity].
func Initialize[T any](n int, offset int, f func(int) T) Buffer[T] {
	if n < 0 {
		n = 0
	} else if n > Capacity {
		n = Capacity
	}
	var b Buffer[T]
	for i := 0; i < n; i++ {
		b.store[i] = f(offset + i)
	}
	b.n = uint8(n)
	return b
}

// FromSlice consumes up to limit elements from the front of src.
//
// It returns the filled buffer and the unconsumed remainder of src. limit is
// clamped to Capacity.
func FromSlice[T any](src []T, limit int) (Buffer[T], []T) {
	if limit < 0 {
		limit = 0
	} else if limit > Capacity {
		limit = Capacity
	}
	if limit > len(src) {
		limit = len(src)
	}
	var b Buffer[T]
	copy(b.store[:limit], src[:limit])
	b.n = uint8(limit)
	return b, src[limit:]
}

// Len returns the number of elements in the buffer.
func (b Buffer[T]) Len() int {
	return int(b.n)
}

// IsEmpty reports whether the buffer has no elements.
func (b Buffer[T]) IsEmpty() bool {
	return b.n == 0
}

// IsFull reports whether the buffer holds Capacity elements.
func (b Buffer[T]) IsFull() bool {
	return int(b.n) == Capacity
}

// Get returns the element at index i, if it exists.
func (b Buffer[T]) Get(i int) (T, bool) {
	if i < 0 || i >= int(b.n) {
		var zero T
		return zero, false
	}
	return b.store[i], true
}

// UnsafeGet returns the element at index i without bounds checking.
//
// Callers must have proven 0 <= i < Len().
func (b Buffer[T]) UnsafeGet(i int) T {
	return b.store[i]
}

// UnsafeSet returns a copy of the buffer with slot i replaced.
//
// Callers must have proven 0 <= i < Len().
func (b Buffer[T]) UnsafeSet(i int, value T) Buffer[T] {
	assert(i >= 0 && i < int(b.n), "buf: UnsafeSet index out of range")
	out := b
	out.store[i] = value
	return out
}

// Push returns a copy of the buffer with value appended.
func (b Buffer[T]) Push(value T) Buffer[T] {
	assert(int(b.n) < Capacity, "buf: Push on full buffer")
	out := b
	out.store[out.n] = value
	out.n++
	return out
}

// Slice returns a new buffer holding the elements of [from, to).
func (b Buffer[T]) Slice(from, to int) Buffer[T] {
	assert(from >= 0 && from <= to && to <= int(b.n), "buf: Slice bounds invalid")
	var out Buffer[T]
	copy(out.store[:to-from], b.store[from:to])
	out.n = uint8(to - from)
	return out
}

// Merge concatenates src onto dest, up to a combined length of max.
//
// It returns the combined buffer and a buffer holding the unconsumed
// remainder of src (empty when everything fit). max is clamped to Capacity.
func Merge[T any](dest, src Buffer[T], max int) (Buffer[T], Buffer[T]) {
	if max > Capacity {
		max = Capacity
	}
	room := max - dest.Len()
	if room <= 0 {
		return dest, src
	}
	take := src.Len()
	if take > room {
		take = room
	}
	out := dest
	copy(out.store[dest.Len():dest.Len()+take], src.store[:take])
	out.n = dest.n + uint8(take)
	return out, src.Slice(take, src.Len())
}

// Map returns a buffer with f applied to every element.
func Map[T, U any](b Buffer[T], f func(T) U) Buffer[U] {
	var out Buffer[U]
	for i := 0; i < int(b.n); i++ {
		out.store[i] = f(b.store[i])
	}
	out.n = b.n
	return out
}

// Foldl folds the buffer left to right.
func Foldl[T, A any](b Buffer[T], acc A, f func(A, T) A) A {
	for i := 0; i < int(b.n); i++ {
		acc = f(acc, b.store[i])
	}
	return acc
}

// Foldr folds the buffer right to left.
func Foldr[T, A any](b Buffer[T], acc A, f func(T, A) A) A {
	for i := int(b.n) - 1; i >= 0; i-- {
		acc = f(b.store[i], acc)
	}
	return acc
}
