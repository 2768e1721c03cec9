package export

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAllocate(t *testing.T) {
	a := Allocate([]string{"Barrel", "Crate", "Barrel", "Lamp", "Crate"}, 100)

	want := map[string]int{"Barrel": 100, "Crate": 101, "Lamp": 102}
	for name, id := range want {
		got, ok := a.ID(name)
		if !ok || got != id {
			t.Errorf("ID(%q) = %d, %v; want %d", name, got, ok, id)
		}
	}
	if diff := cmp.Diff([]string{"Barrel", "Crate", "Lamp"}, a.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if a.Len() != 3 {
		t.Errorf("Len() = %d, want 3", a.Len())
	}
	if a.StartID() != 100 {
		t.Errorf("StartID() = %d, want 100", a.StartID())
	}
}

func TestAllocate_Empty(t *testing.T) {
	a := Allocate(nil, 5)
	if a.Len() != 0 || len(a.Names()) != 0 {
		t.Errorf("expected empty allocation, got %v", a.Names())
	}
	if _, ok := a.ID("anything"); ok {
		t.Error("empty allocation should not resolve names")
	}
}

func TestAllocate_Deterministic(t *testing.T) {
	names := []string{"c", "a", "b", "a", "c", "d"}
	first := Allocate(names, 4542)
	for i := 0; i < 10; i++ {
		again := Allocate(names, 4542)
		for _, n := range names {
			x, _ := first.ID(n)
			y, _ := again.ID(n)
			if x != y {
				t.Fatalf("run %d: ID(%q) = %d, first run gave %d", i, n, y, x)
			}
		}
	}
}

func TestAllocate_StrictlyIncreasing(t *testing.T) {
	a := Allocate([]string{"z", "y", "z", "x", "w", "y"}, 0)
	prev := -1
	for _, n := range a.Names() {
		id, _ := a.ID(n)
		if id != prev+1 {
			t.Errorf("ID(%q) = %d, want %d", n, id, prev+1)
		}
		prev = id
	}
}

func TestAllocate_NamesIsCopy(t *testing.T) {
	a := Allocate([]string{"a", "b"}, 1)
	names := a.Names()
	names[0] = "mutated"
	if a.Names()[0] != "a" {
		t.Error("Names() should return a copy")
	}
}
