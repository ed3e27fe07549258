package core

import (
	"slices"
	"testing"
)

func TestBoundsNeighborsClipsAtEdges(t *testing.T) {
	b := Bounds{W: 4, H: 3}

	if got := b.Neighbors(nil, 0, 0); !slices.Equal(got, []int{1, 4, 5}) {
		t.Fatalf("corner neighbors = %v", got)
	}
	if got := b.Neighbors(nil, 1, 0); len(got) != 5 {
		t.Fatalf("top edge should have 5 neighbors, got %d", len(got))
	}
	want := []int{0, 1, 2, 4, 6, 8, 9, 10}
	if got := b.Neighbors(nil, 1, 1); !slices.Equal(got, want) {
		t.Fatalf("interior neighbors = %v, want %v", got, want)
	}
}

func TestBoundsSquareClips(t *testing.T) {
	b := Bounds{W: 10, H: 10}
	x0, y0, x1, y1 := b.Square(5, 5, 2)
	if x0 != 3 || y0 != 3 || x1 != 8 || y1 != 8 {
		t.Fatalf("square = (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}
	x0, y0, x1, y1 = b.Square(0, 9, 2)
	if x0 != 0 || y0 != 7 || x1 != 3 || y1 != 10 {
		t.Fatalf("clipped square = (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}
	x0, _, x1, _ = b.Square(-5, -5, 1)
	if x1-x0 != 0 {
		t.Fatal("square outside the grid must be empty")
	}
}

func TestCadenceFiresEveryNth(t *testing.T) {
	c := NewCadence(4)
	var fired []int
	for i := 0; i < 10; i++ {
		if c.Tick() {
			fired = append(fired, i)
		}
	}
	if !slices.Equal(fired, []int{0, 4, 8}) {
		t.Fatalf("fired on %v", fired)
	}
	c.Reset()
	if !c.Tick() {
		t.Fatal("cadence should fire right after reset")
	}
}

func TestParameterControlClamp(t *testing.T) {
	ctrl := ParameterControl{Min: 0, Max: 1, HasMin: true, HasMax: true}
	if got := ctrl.Clamp(2); got != 1 {
		t.Fatalf("clamp high = %f", got)
	}
	if got := ctrl.Clamp(-1); got != 0 {
		t.Fatalf("clamp low = %f", got)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	Register("zz-test", func(map[string]string) Sim { return nil })
	Register("aa-test", func(map[string]string) Sim { return nil })
	defer delete(sims, "zz-test")
	defer delete(sims, "aa-test")

	names := Names()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
}
