package vector

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilderBasic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	b := NewBuilder[int]()
	for i := 0; i < 1000; i++ {
		if err := b.Append(i); err != nil {
			t.Fatal(err)
		}
	}
	if b.Len() != 1000 {
		t.Errorf("builder reports %d elements, expected 1000", b.Len())
	}
	v := b.Vector()
	if err := v.Check(); err != nil {
		t.Error(err)
	}
	if !reflect.DeepEqual(v, FromSlice(iota1(1000))) {
		t.Errorf("built vector is not identical to FromSlice result")
	}
}

func TestBuilderCompleted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	b := NewBuilder[int]()
	_ = b.Append(1)
	_ = b.Vector()
	if err := b.Append(2); !errors.Is(err, ErrVectorCompleted) {
		t.Errorf("expected ErrVectorCompleted, got %v", err)
	}
	if err := b.AppendSlice([]int{2, 3}); !errors.Is(err, ErrVectorCompleted) {
		t.Errorf("expected ErrVectorCompleted, got %v", err)
	}
	b.Reset()
	if err := b.Append(7); err != nil {
		t.Errorf("expected Reset to reopen the builder, got %v", err)
	}
	if v := b.Vector(); v.Len() != 1 {
		t.Errorf("recycled builder produced %d elements, expected 1", v.Len())
	}
}

func TestBuilderAppendSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	b := NewBuilder[int]()
	_ = b.Append(0)                // leave the open tail misaligned
	_ = b.AppendSlice(iota1(500))  // spans many leaves
	v := b.Vector()
	if v.Len() != 501 {
		t.Fatalf("expected 501 elements, got %d", v.Len())
	}
	if err := v.Check(); err != nil {
		t.Error(err)
	}
	for i := 1; i <= 500; i++ {
		if n, _ := v.Get(i); n != i-1 {
			t.Fatalf("Get(%d) = %d, expected %d", i, n, i-1)
		}
	}
}

// A bulk build whose top level ends in a partial grouping (here 993 leaf
// groupings, i.e. 31 full interior nodes plus one holding a single leaf)
// must stay at root shift 10; wrapping a further level corrupts descent.
func TestBuilderPartialTopLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	const n = 31777
	v := FromSlice(iota1(n))
	if err := v.Check(); err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{0, 1000, 31743, 31744, n - 1} {
		if m, ok := v.Get(i); !ok || m != i {
			t.Fatalf("Get(%d) = %d", i, m)
		}
	}
	pushed := Empty[int]()
	for i := 0; i < n; i++ {
		pushed = pushed.Push(i)
	}
	if !reflect.DeepEqual(v, pushed) {
		t.Errorf("bulk-built vector differs from push-built one")
	}
}

func TestBuilderEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	v := NewBuilder[int]().Vector()
	if !reflect.DeepEqual(v, Empty[int]()) {
		t.Errorf("empty builder did not produce the canonical empty vector")
	}
}
