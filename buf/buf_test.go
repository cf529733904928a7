package buf

import (
	"reflect"
	"testing"
)

func TestBufferEmpty(t *testing.T) {
	b := Empty[int]()
	if !b.IsEmpty() || b.Len() != 0 {
		t.Errorf("expected empty buffer, has %d elements", b.Len())
	}
	if _, ok := b.Get(0); ok {
		t.Errorf("expected Get(0) on empty buffer to fail")
	}
}

func TestBufferPushGet(t *testing.T) {
	b := Empty[int]()
	for i := 0; i < Capacity; i++ {
		b = b.Push(i * i)
	}
	if !b.IsFull() {
		t.Fatalf("expected buffer to be full, has %d elements", b.Len())
	}
	for i := 0; i < Capacity; i++ {
		if v, ok := b.Get(i); !ok || v != i*i {
			t.Errorf("Get(%d) = %d, expected %d", i, v, i*i)
		}
	}
}

func TestBufferImmutability(t *testing.T) {
	b := Singleton(1)
	c := b.Push(2)
	d := c.UnsafeSet(0, 7)
	if b.Len() != 1 || c.Len() != 2 {
		t.Errorf("expected lengths 1 and 2, have %d and %d", b.Len(), c.Len())
	}
	if v := c.UnsafeGet(0); v != 1 {
		t.Errorf("UnsafeSet modified its receiver: got %d", v)
	}
	if v := d.UnsafeGet(0); v != 7 {
		t.Errorf("expected replaced element 7, got %d", v)
	}
}

func TestBufferInitialize(t *testing.T) {
	b := Initialize(4, 10, func(i int) int { return i })
	want := []int{10, 11, 12, 13}
	for i, w := range want {
		if v := b.UnsafeGet(i); v != w {
			t.Errorf("element %d = %d, expected %d", i, v, w)
		}
	}
	if b := Initialize(-3, 0, func(i int) int { return i }); !b.IsEmpty() {
		t.Errorf("expected negative count to yield empty buffer")
	}
	if b := Initialize(99, 0, func(i int) int { return i }); b.Len() != Capacity {
		t.Errorf("expected count to be clamped to %d, got %d", Capacity, b.Len())
	}
}

func TestBufferFromSlice(t *testing.T) {
	src := []int{1, 2, 3, 4, 5}
	b, rest := FromSlice(src, 3)
	if b.Len() != 3 || len(rest) != 2 {
		t.Fatalf("expected 3 consumed and 2 remaining, got %d and %d", b.Len(), len(rest))
	}
	if rest[0] != 4 {
		t.Errorf("remainder starts at %d, expected 4", rest[0])
	}
	b, rest = FromSlice(rest, Capacity)
	if b.Len() != 2 || len(rest) != 0 {
		t.Errorf("expected the remainder to be fully consumed")
	}
}

func TestBufferSlice(t *testing.T) {
	b := Initialize(8, 0, func(i int) int { return i })
	s := b.Slice(2, 6)
	if s.Len() != 4 {
		t.Fatalf("expected slice of 4 elements, got %d", s.Len())
	}
	for i := 0; i < 4; i++ {
		if v := s.UnsafeGet(i); v != i+2 {
			t.Errorf("slice element %d = %d, expected %d", i, v, i+2)
		}
	}
}

func TestBufferSliceCanonical(t *testing.T) {
	// slots beyond the logical length must be zero, making buffers with
	// equal content identical values
	b := Initialize(8, 0, func(i int) int { return i + 1 })
	s := b.Slice(0, 2)
	c := Singleton(1).Push(2)
	if !reflect.DeepEqual(s, c) {
		t.Errorf("expected sliced and pushed buffers to be identical")
	}
}

func TestBufferMerge(t *testing.T) {
	a := Initialize(30, 0, func(i int) int { return i })
	b := Initialize(5, 30, func(i int) int { return i })
	combined, rest := Merge(a, b, Capacity)
	if combined.Len() != Capacity || rest.Len() != 3 {
		t.Fatalf("expected 32 combined and 3 remaining, got %d and %d", combined.Len(), rest.Len())
	}
	if v := combined.UnsafeGet(31); v != 31 {
		t.Errorf("combined element 31 = %d, expected 31", v)
	}
	if v := rest.UnsafeGet(0); v != 32 {
		t.Errorf("remainder starts at %d, expected 32", v)
	}
}

func TestBufferFolds(t *testing.T) {
	b := Initialize(4, 0, func(i int) int { return i + 1 })
	left := Foldl(b, "", func(acc string, v int) string { return acc + string(rune('0'+v)) })
	if left != "1234" {
		t.Errorf("Foldl visited elements in order %q, expected \"1234\"", left)
	}
	right := Foldr(b, "", func(v int, acc string) string { return acc + string(rune('0'+v)) })
	if right != "4321" {
		t.Errorf("Foldr visited elements in order %q, expected \"4321\"", right)
	}
}

func TestBufferMap(t *testing.T) {
	b := Initialize(3, 0, func(i int) int { return i })
	m := Map(b, func(v int) string { return string(rune('a' + v)) })
	if m.Len() != 3 || m.UnsafeGet(2) != "c" {
		t.Errorf("unexpected mapped buffer %v", m)
	}
}
