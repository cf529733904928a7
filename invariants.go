package vector

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
)

// Check validates the structural invariants of a vector:
//
//   - the tree holds exactly the elements not covered by the tail
//   - every leaf is full and sits at the lowest tree level
//   - every interior level is densely filled, except possibly its last node
//   - the root shift is minimal for the tree's element count
//   - the tail holds fewer than branchFactor elements
//
// Check exists mainly for tests; it visits every node of the tree. A nil
// result certifies the vector is in canonical shape.
func (v Vector[T]) Check() error {
	if v.length < 0 {
		return fmt.Errorf("vector has negative length %d", v.length)
	}
	if v.tail.Len() != v.length&bitMask {
		return fmt.Errorf("tail holds %d elements, expected %d", v.tail.Len(), v.length&bitMask)
	}
	treeLen := tailIndex(v.length)
	if shift := rootShiftForTreeLen(treeLen); v.shift() != shift {
		return fmt.Errorf("root shift is %d, expected %d for %d tree elements", v.shift(), shift, treeLen)
	}
	count, err := checkTree[T](v.tree, v.shift())
	if err != nil {
		return err
	}
	if count != treeLen {
		return fmt.Errorf("tree holds %d elements, expected %d", count, treeLen)
	}
	return nil
}

// checkTree validates one tree level addressed at the given shift and
// returns the number of elements below it.
func checkTree[T any](t tree[T], shift uint) (int, error) {
	count := 0
	for i := 0; i < t.Len(); i++ {
		var c int
		switch n := t.UnsafeGet(i).(type) {
		case leaf[T]:
			if shift != shiftStep {
				return 0, fmt.Errorf("leaf node at shift %d", shift)
			}
			if !n.values.IsFull() {
				return 0, fmt.Errorf("tree leaf holds %d elements, expected %d", n.values.Len(), branchFactor)
			}
			c = n.values.Len()
		case subTree[T]:
			if shift == shiftStep {
				return 0, fmt.Errorf("interior node at leaf level")
			}
			if n.children.IsEmpty() {
				return 0, fmt.Errorf("empty interior node at shift %d", shift)
			}
			var err error
			if c, err = checkTree[T](n.children, shift-shiftStep); err != nil {
				return 0, err
			}
		default:
			return 0, fmt.Errorf("unknown node type at shift %d", shift)
		}
		if i < t.Len()-1 && c != 1<<shift {
			return 0, fmt.Errorf("non-terminal node at shift %d holds %d elements, expected %d",
				shift, c, 1<<shift)
		}
		count += c
	}
	return count, nil
}
