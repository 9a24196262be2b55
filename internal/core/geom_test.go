package core

import (
	"math/rand"
	"testing"
)

func TestOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{"same center", NewAABB(0, 0, 10, 10), NewAABB(0, 0, 5, 5), true},
		{"partial overlap", NewAABB(0, 0, 10, 10), NewAABB(15, 5, 10, 10), true},
		{"touching horizontally", NewAABB(0, 0, 10, 10), NewAABB(20, 0, 10, 10), false},
		{"touching vertically", NewAABB(0, 0, 10, 10), NewAABB(0, 20, 10, 10), false},
		{"apart", NewAABB(0, 0, 10, 10), NewAABB(100, 0, 10, 10), false},
		{"x overlaps but y apart", NewAABB(0, 0, 10, 10), NewAABB(5, 50, 10, 10), false},
		{"zero extent", NewAABB(0, 0, 10, 10), NewAABB(0, 0, 0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlap(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlap() = %v, expected %v", got, tc.expected)
			}
			if got := Overlap(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlap() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestOverlapSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	box := func() AABB {
		return NewAABB(rng.Float64()*200-100, rng.Float64()*200-100, rng.Float64()*40, rng.Float64()*40)
	}
	for i := 0; i < 2000; i++ {
		a, b := box(), box()
		if Overlap(a, b) != Overlap(b, a) {
			t.Fatalf("Overlap not symmetric for %+v and %+v", a, b)
		}
	}
}

func TestAABBEdges(t *testing.T) {
	b := NewAABB(50, 20, 10, 5)
	if b.Left() != 40 || b.Right() != 60 {
		t.Errorf("Left/Right = %v/%v, expected 40/60", b.Left(), b.Right())
	}
	if b.Bottom() != 15 || b.Top() != 25 {
		t.Errorf("Bottom/Top = %v/%v, expected 15/25", b.Bottom(), b.Top())
	}
	if b.Empty() {
		t.Error("box with area should not be empty")
	}
	if !(AABB{X: 1, Y: 1}).Empty() {
		t.Error("zero-extent box should be empty")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
