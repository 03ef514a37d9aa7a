package index

import (
	"slices"
	"testing"
)

func TestNewEmpty(t *testing.T) {
	x := New[string, int]()
	if x.Has("a") {
		t.Fatal("new index should not contain a")
	}
	if x.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", x.Len())
	}
	if _, ok := x.Get("a"); ok {
		t.Fatal("Get on empty index should report ok=false")
	}
}

func TestPutGet(t *testing.T) {
	x := New[string, int]()
	x.Put("a", 1)
	x.Put("b", 2)

	v, ok := x.Get("b")
	if !ok || v != 2 {
		t.Fatalf("Get(b) = (%d, %v), want (2, true)", v, ok)
	}
	if x.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", x.Len())
	}
}

func TestPutExistingKeepsPosition(t *testing.T) {
	x := New[string, int]()
	x.Put("a", 1)
	x.Put("b", 2)
	x.Put("a", 10)

	if !slices.Equal(x.Keys(), []string{"a", "b"}) {
		t.Fatalf("Keys() = %v, want [a b]", x.Keys())
	}
	if !slices.Equal(x.Values(), []int{10, 2}) {
		t.Fatalf("Values() = %v, want [10 2]", x.Values())
	}
}

func TestDeletePreservesOrder(t *testing.T) {
	x := New[string, int]()
	for i, k := range []string{"a", "b", "c", "d"} {
		x.Put(k, i)
	}

	if !x.Delete("b") {
		t.Fatal("Delete(b) should report true")
	}
	if x.Has("b") {
		t.Fatal("expected b removed")
	}
	if !slices.Equal(x.Keys(), []string{"a", "c", "d"}) {
		t.Fatalf("Keys() = %v, want [a c d]", x.Keys())
	}

	// Delete of a missing key is a no-op.
	if x.Delete("z") {
		t.Fatal("Delete(z) should report false")
	}
	if x.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", x.Len())
	}
}

func TestReinsertAfterDeleteGoesLast(t *testing.T) {
	x := New[string, int]()
	x.Put("a", 1)
	x.Put("b", 2)
	x.Delete("a")
	x.Put("a", 3)

	if !slices.Equal(x.Keys(), []string{"b", "a"}) {
		t.Fatalf("Keys() = %v, want [b a]", x.Keys())
	}
}

func TestCompaction(t *testing.T) {
	x := New[int, int]()
	for i := range 100 {
		x.Put(i, i*i)
	}
	// Delete most entries to force at least one compaction.
	for i := range 90 {
		x.Delete(i)
	}
	if x.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", x.Len())
	}
	for i := 90; i < 100; i++ {
		v, ok := x.Get(i)
		if !ok || v != i*i {
			t.Fatalf("Get(%d) = (%d, %v), want (%d, true)", i, v, ok, i*i)
		}
	}
	want := []int{90, 91, 92, 93, 94, 95, 96, 97, 98, 99}
	if !slices.Equal(x.Keys(), want) {
		t.Fatalf("Keys() = %v, want %v", x.Keys(), want)
	}
}

func TestValuesIsACopy(t *testing.T) {
	x := New[string, int]()
	x.Put("a", 1)
	vals := x.Values()
	vals[0] = 42
	if v, _ := x.Get("a"); v != 1 {
		t.Fatalf("mutating Values() leaked into index: Get(a) = %d", v)
	}
}
