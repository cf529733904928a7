package vector

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump writes an indented per-level listing of the vector's internal
// structure to w (for debugging purposes). Interior nodes and element runs
// are colorized; whether colors are active follows the fatih/color package's
// global settings. Long element runs are truncated to the terminal width.
func (v Vector[T]) Dump(w io.Writer) {
	d := &dumper{
		w:     w,
		width: lineWidthFromTerminal(),
		inner: color.New(color.FgBlue),
		elems: color.New(color.FgRed),
	}
	fmt.Fprintf(w, "vector of %d elements, root shift %d\n", v.length, v.shift())
	for i := 0; i < v.tree.Len(); i++ {
		dumpNode[T](d, 1, i, v.tree.UnsafeGet(i))
	}
	fmt.Fprintf(w, "tail  %s\n", d.elems.Sprint(d.elements(v.tail.Len(), func(i int) any {
		return v.tail.UnsafeGet(i)
	})))
}

type dumper struct {
	w     io.Writer
	width int
	inner *color.Color
	elems *color.Color
}

func dumpNode[T any](d *dumper, depth, pos int, n node[T]) {
	indent := strings.Repeat("  ", depth)
	switch n := n.(type) {
	case subTree[T]:
		fmt.Fprintf(d.w, "%s%s\n", indent, d.inner.Sprintf("#%d: node of %d", pos, n.children.Len()))
		for i := 0; i < n.children.Len(); i++ {
			dumpNode[T](d, depth+1, i, n.children.UnsafeGet(i))
		}
	case leaf[T]:
		elements := d.elements(n.values.Len(), func(i int) any { return n.values.UnsafeGet(i) })
		fmt.Fprintf(d.w, "%s#%d: %s\n", indent, pos, d.elems.Sprint(elements))
	}
}

// elements renders up to width characters of an element run.
func (d *dumper) elements(n int, get func(int) any) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", get(i))
		if sb.Len() > d.width {
			sb.WriteString(" …")
			break
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// lineWidthFromTerminal checks wether stdout is a terminal, and if so reads
// the terminal's width to bound the length of dumped element runs.
func lineWidthFromTerminal() int {
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil && w > 30 {
			return w - 10
		}
	}
	return 65
}
