package tiling

import "testing"

func TestRectContainsUsesHalfOpenBounds(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Fatalf("Contains(%d,%d)=%v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 8, Width: 10, Height: 10}
	got := a.Intersect(b)
	want := Rect{X: 5, Y: 8, Width: 5, Height: 2}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if !a.Intersects(b) {
		t.Fatalf("expected rects to intersect")
	}

	edge := Rect{X: 10, Y: 0, Width: 3, Height: 3}
	if a.Intersects(edge) {
		t.Fatalf("adjacent rects must not intersect")
	}
	if !a.Intersect(edge).Empty() {
		t.Fatalf("expected empty intersection for adjacent rects")
	}
}

func TestUnion(t *testing.T) {
	if _, ok := Union(nil); ok {
		t.Fatalf("expected ok=false for empty slice")
	}
	got, ok := Union([]Rect{{X: 1, Y: 1, Width: 2, Height: 2}, {X: 5, Y: 0, Width: 1, Height: 1}})
	if !ok {
		t.Fatalf("expected ok")
	}
	want := Rect{X: 1, Y: 0, Width: 5, Height: 3}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
