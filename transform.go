package vector

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/vector/buf"
)

// Map returns a vector with f applied to every element of v. The result has
// the same length and the same tree shape as v.
//
// Map is a free function rather than a method because Go methods cannot
// introduce a type parameter for the target element type.
func Map[T, U any](v Vector[T], f func(T) U) Vector[U] {
	return Vector[U]{
		length:    v.length,
		rootShift: v.shift(),
		tree:      mapTree(v.tree, f),
		tail:      buf.Map(v.tail, f),
	}
}

func mapTree[T, U any](t tree[T], f func(T) U) tree[U] {
	return buf.Map(t, func(n node[T]) node[U] {
		switch n := n.(type) {
		case subTree[T]:
			return subTree[U]{children: mapTree(n.children, f)}
		case leaf[T]:
			return leaf[U]{values: buf.Map(n.values, f)}
		}
		panic("vector: corrupt tree")
	})
}

// IndexedMap returns a vector with f applied to every element of v, where f
// additionally receives the element's index.
func IndexedMap[T, U any](v Vector[T], f func(int, T) U) Vector[U] {
	return Initialize(v.length, func(i int) U {
		return f(i, v.unsafeGet(i))
	})
}

// Filter returns a vector holding the elements of v for which pred returns
// true, in their original order.
func Filter[T any](v Vector[T], pred func(T) bool) Vector[T] {
	kept := Foldl(v, make([]T, 0, v.length), func(acc []T, value T) []T {
		if pred(value) {
			return append(acc, value)
		}
		return acc
	})
	return FromSlice(kept)
}

// Foldl reduces the vector from the first element to the last.
func Foldl[T, A any](v Vector[T], acc A, f func(A, T) A) A {
	acc = foldlTree(v.tree, acc, f)
	return buf.Foldl(v.tail, acc, f)
}

func foldlTree[T, A any](t tree[T], acc A, f func(A, T) A) A {
	return buf.Foldl(t, acc, func(acc A, n node[T]) A {
		switch n := n.(type) {
		case subTree[T]:
			return foldlTree(n.children, acc, f)
		case leaf[T]:
			return buf.Foldl(n.values, acc, f)
		}
		panic("vector: corrupt tree")
	})
}

// Foldr reduces the vector from the last element to the first.
func Foldr[T, A any](v Vector[T], acc A, f func(T, A) A) A {
	acc = buf.Foldr(v.tail, acc, f)
	return foldrTree(v.tree, acc, f)
}

func foldrTree[T, A any](t tree[T], acc A, f func(T, A) A) A {
	return buf.Foldr(t, acc, func(n node[T], acc A) A {
		switch n := n.(type) {
		case subTree[T]:
			return foldrTree(n.children, acc, f)
		case leaf[T]:
			return buf.Foldr(n.values, acc, f)
		}
		panic("vector: corrupt tree")
	})
}
