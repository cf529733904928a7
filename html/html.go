package html

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"

	"github.com/npillmayer/vector"
	"golang.org/x/net/html"
)

// InnerText creates a vector of text fragments for the textual content of an
// HTML element and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendents).
//
// Each text node of the DOM subtree contributes one vector element, in
// document order.
func InnerText(n *html.Node) (vector.Vector[string], error) {
	if n == nil {
		return vector.Empty[string](), vector.ErrIllegalArguments
	}
	b := vector.NewBuilder[string]()
	collectText(n, b)
	return b.Vector(), nil
}

func collectText(n *html.Node, b *vector.Builder[string]) {
	if n.Type == html.TextNode {
		_ = b.Append(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// TextFromHTML creates a vector of text fragments from the textual content
// of an HTML fragment. It does no interpretation of layout and styling, but
// extracts the pure text.
func TextFromHTML(input io.Reader) (vector.Vector[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return vector.Empty[string](), err
	}
	b := vector.NewBuilder[string]()
	for _, n := range nodes {
		collectText(n, b)
	}
	return b.Vector(), nil
}
