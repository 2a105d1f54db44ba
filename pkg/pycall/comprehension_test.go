package pycall

import "testing"

func ints(vs ...int) func(func(int) bool) {
	return func(yield func(int) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}

func TestComprehensionMapsElements(t *testing.T) {
	c := NewComprehension(ints(1, 2, 3), func(x int) int { return x * x })
	got := c.Collect()
	want := []int{1, 4, 9}
	if len(got) != len(want) {
		t.Fatalf("Collect() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Collect()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFlattenComprehensionFlattensOneLevel(t *testing.T) {
	c := NewFlattenComprehension(ints(1, 2), func(x int) func(func(int) bool) {
		return ints(x, x*10)
	})
	got := c.Collect()
	want := []int{1, 10, 2, 20}
	if len(got) != len(want) {
		t.Fatalf("Collect() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Collect()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
