package vector

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
)

// ToDot outputs the internal structure of a vector in Graphviz DOT format
// (for debugging purposes). Interior nodes are drawn as circles labelled with
// their child count, leaves and the tail as boxes listing their elements.
func (v Vector[T]) ToDot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	d := &dotter{w: w}
	rootID := d.alloc()
	fmt.Fprintf(w, "\t\"%d\" [label=\"len %d, shift %d\"%s];\n", rootID, v.length, v.shift(), innerDotStyles)
	for i := 0; i < v.tree.Len(); i++ {
		dotNode[T](d, rootID, v.tree.UnsafeGet(i))
	}
	tailID := d.alloc()
	tail := dotElements(v.tail.Len(), func(i int) any { return v.tail.UnsafeGet(i) })
	fmt.Fprintf(w, "\t\"%d\" [label=\"tail %s\"%s];\n", tailID, tail, leafDotStyles)
	fmt.Fprintf(w, "\t\"%d\" -> \"%d\" [style=dashed];\n", rootID, tailID)
	io.WriteString(w, "}\n")
}

const (
	innerDotStyles = ",style=filled,color=black,fillcolor=\"#a3d7e4\",shape=circle"
	leafDotStyles  = ",style=filled,shape=box"
)

// dotter hands out node IDs while writing a DOT graph.
type dotter struct {
	w   io.Writer
	max int
}

func (d *dotter) alloc() int {
	d.max++
	return d.max
}

func dotNode[T any](d *dotter, parentID int, n node[T]) {
	ID := d.alloc()
	switch n := n.(type) {
	case subTree[T]:
		fmt.Fprintf(d.w, "\t\"%d\" [label=%d%s];\n", ID, n.children.Len(), innerDotStyles)
		fmt.Fprintf(d.w, "\t\"%d\" -> \"%d\";\n", parentID, ID)
		for i := 0; i < n.children.Len(); i++ {
			dotNode[T](d, ID, n.children.UnsafeGet(i))
		}
	case leaf[T]:
		values := dotElements(n.values.Len(), func(i int) any { return n.values.UnsafeGet(i) })
		fmt.Fprintf(d.w, "\t\"%d\" [label=\"%s\"%s];\n", ID, values, leafDotStyles)
		fmt.Fprintf(d.w, "\t\"%d\" -> \"%d\";\n", parentID, ID)
	}
}

func dotElements(n int, get func(int) any) string {
	s := "“"
	for i := 0; i < n; i++ {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%v", get(i))
	}
	return s + "”"
}
