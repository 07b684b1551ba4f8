package collection

import (
	"errors"
	"testing"
)

type item struct {
	id    string
	value int
}

func newItems() *Keyed[string, *item] {
	return NewKeyed(func(i *item) string { return i.id })
}

func TestKeyedAddRejectsDuplicateKey(t *testing.T) {
	c := newItems()
	if err := c.Add(&item{id: "a"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	err := c.Add(&item{id: "a"})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("error = %v, want %v", err, ErrDuplicateKey)
	}
	if c.Count() != 1 {
		t.Fatalf("count = %d, want 1", c.Count())
	}
}

func TestKeyedPreservesInsertionOrder(t *testing.T) {
	c := newItems()
	for _, id := range []string{"c", "a", "b"} {
		if err := c.Add(&item{id: id}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	c.Remove("a")
	got := c.Values()
	if len(got) != 2 || got[0].id != "c" || got[1].id != "b" {
		t.Fatalf("order = %v, want [c b]", ids(got))
	}
	if c.Exists("a") {
		t.Fatal("expected a to be removed")
	}
	if c.Remove("missing") {
		t.Fatal("expected remove of missing key to report false")
	}
}

func TestKeyedSetReplacesInPlace(t *testing.T) {
	c := newItems()
	_ = c.Add(&item{id: "a", value: 1})
	_ = c.Add(&item{id: "b", value: 2})
	c.Set(&item{id: "a", value: 10})
	c.Set(&item{id: "z", value: 26})

	got := c.Values()
	if ids(got) != "abz" {
		t.Fatalf("order = %s, want abz", ids(got))
	}
	if v, _ := c.Get("a"); v.value != 10 {
		t.Fatalf("a = %d, want 10", v.value)
	}
}

func TestKeyedSnapshotToleratesGrowth(t *testing.T) {
	c := newItems()
	_ = c.Add(&item{id: "a"})
	for _, v := range c.Values() {
		_ = c.Add(&item{id: v.id + "+"})
	}
	if c.Count() != 2 {
		t.Fatalf("count = %d, want 2", c.Count())
	}
}

func TestKeyedConcatAndClone(t *testing.T) {
	left := newItems()
	_ = left.Add(&item{id: "a", value: 1})
	right := newItems()
	_ = right.Add(&item{id: "b", value: 2})

	if err := left.Concat(right); err != nil {
		t.Fatalf("concat: %v", err)
	}
	if err := left.Concat(right); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("error = %v, want %v", err, ErrDuplicateKey)
	}

	clone := left.Clone(func(i *item) *item { cp := *i; return &cp })
	orig, _ := left.Get("a")
	orig.value = 99
	cloned, _ := clone.Get("a")
	if cloned.value != 1 {
		t.Fatalf("clone value = %d, want 1", cloned.value)
	}
}

func TestList(t *testing.T) {
	l := NewList(1, 2)
	l.Add(3)
	l.Concat(NewList(4))
	if l.Count() != 4 {
		t.Fatalf("count = %d, want 4", l.Count())
	}
	doubled := l.Clone(func(v int) int { return v * 2 })
	got := doubled.Values()
	want := []int{2, 4, 6, 8}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	var nilList *List[int]
	if nilList.Count() != 0 || nilList.Values() != nil {
		t.Fatal("expected nil list to be empty")
	}
}

func ids(items []*item) string {
	out := ""
	for _, i := range items {
		out += i.id
	}
	return out
}
