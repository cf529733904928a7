package vector

import (
	"github.com/npillmayer/vector/buf"
)

// tree is the root level of a vector's element tree: a buffer of nodes
// interpreted as the root's children.
type tree[T any] = buf.Buffer[node[T]]

// node is one level of the element tree, either an interior level holding
// child nodes, or a terminal level holding elements.
type node[T any] interface {
	isLeaf() bool
}

// subTree is an interior tree level with 1..32 children.
type subTree[T any] struct {
	children tree[T]
}

func (s subTree[T]) isLeaf() bool { return false }

// leaf is a terminal tree level holding up to 32 elements.
//
// Every leaf reachable from a vector's tree is full; partially filled runs of
// elements live in the vector's tail instead.
type leaf[T any] struct {
	values buf.Buffer[T]
}

func (l leaf[T]) isLeaf() bool { return true }
