package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/vector"
	"golang.org/x/net/html"
)

func TestTextFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	v, err := TextFromHTML(strings.NewReader("<p>Hello <b>World</b>!</p>"))
	if err != nil {
		t.Fatal(err)
	}
	text := vector.Foldl(v, "", func(acc, frag string) string { return acc + frag })
	if text != "Hello World!" {
		t.Errorf("extracted text = %q, expected \"Hello World!\"", text)
	}
	if err := v.Check(); err != nil {
		t.Error(err)
	}
}

func TestInnerText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	doc, err := html.Parse(strings.NewReader("<html><body><p>one<span>two</span>three</p></body></html>"))
	if err != nil {
		t.Fatal(err)
	}
	v, err := InnerText(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"one", "two", "three"}
	got := v.ToSlice()
	if len(got) != len(want) {
		t.Fatalf("expected %d fragments, got %v", len(want), got)
	}
	for i, frag := range want {
		if got[i] != frag {
			t.Errorf("fragment %d = %q, expected %q", i, got[i], frag)
		}
	}
}

func TestInnerTextNilNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	if _, err := InnerText(nil); !errors.Is(err, vector.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments, got %v", err)
	}
}
