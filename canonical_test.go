package vector

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Equal-content vectors are guaranteed to be representation-identical, no
// matter which sequence of operations produced them. The sizes cover the
// tail boundary, one and two levels of root growth, and their off-by-one
// neighbours.
func TestCanonicalShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	sizes := []int{0, 1, 31, 32, 33, 63, 64, 1023, 1024, 1025, 2048, 31777, 32000, 32767, 32768, 32769}
	for _, n := range sizes {
		fromSlice := FromSlice(iota1(n))
		pushed := Empty[int]()
		for i := 0; i < n; i++ {
			pushed = pushed.Push(i)
		}
		b := NewBuilder[int]()
		for i := 0; i < n; i++ {
			_ = b.Append(i)
		}
		built := b.Vector()
		slicedDown := FromSlice(iota1(n + 50)).Slice(0, n)
		half := n / 2
		appended := FromSlice(iota1(half)).Append(
			Initialize(n-half, func(i int) int { return i + half }))
		if err := fromSlice.Check(); err != nil {
			t.Fatalf("size %d: %s", n, err.Error())
		}
		if !reflect.DeepEqual(fromSlice, pushed) {
			t.Errorf("size %d: pushed vector differs from FromSlice", n)
		}
		if !reflect.DeepEqual(fromSlice, built) {
			t.Errorf("size %d: built vector differs from FromSlice", n)
		}
		if !reflect.DeepEqual(fromSlice, slicedDown) {
			t.Errorf("size %d: sliced-down vector differs from FromSlice", n)
		}
		if !reflect.DeepEqual(fromSlice, appended) {
			t.Errorf("size %d: appended vector differs from FromSlice", n)
		}
	}
}

func TestHeightTransitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	for _, n := range []int{31, 32, 33, 1023, 1024, 1025, 32767, 32768, 32769} {
		v := FromSlice(iota1(n))
		if err := v.Check(); err != nil {
			t.Fatalf("size %d: %s", n, err.Error())
		}
		if last, ok := v.Last(); !ok || last != n-1 {
			t.Errorf("size %d: last element is %d", n, last)
		}
		grown := v.Push(n)
		if err := grown.Check(); err != nil {
			t.Fatalf("size %d after push: %s", n, err.Error())
		}
		shrunk := grown.Pop()
		if !reflect.DeepEqual(v, shrunk) {
			t.Errorf("size %d: push followed by pop is not the identity", n)
		}
	}
}

func TestStressLargeVector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	const n = 40000
	v := FromSlice(iota1(n))
	if err := v.Check(); err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{0, 1, 31, 32, 1023, 1024, 20000, 32768, n - 1} {
		if m, ok := v.Get(i); !ok || m != i {
			t.Errorf("Get(%d) = %d", i, m)
		}
	}
	w := v
	for i := n; i < n+100; i++ {
		w = w.Push(i)
	}
	w = w.Slice(0, n)
	if !reflect.DeepEqual(v, w) {
		t.Errorf("pushing and slicing back is not the identity")
	}
	sum := Foldl(v, 0, func(acc, m int) int { return acc + m })
	if sum != n*(n-1)/2 {
		t.Errorf("fold sums to %d, expected %d", sum, n*(n-1)/2)
	}
}
