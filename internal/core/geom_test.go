package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(10, 20, 10, 4)
	in := r.Inset(0.1)

	if in.W != 9 || in.H != 3.6 {
		t.Errorf("Inset(0.1) dimensions = %fx%f, expected 9x3.6", in.W, in.H)
	}
	if in.X != 10.5 || in.Y != 20.2 {
		t.Errorf("Inset(0.1) position = (%f, %f), expected (10.5, 20.2)", in.X, in.Y)
	}

	// Inset boxes that visually touch should no longer intersect
	a := NewRect(0, 0, 10, 10).Inset(0.1)
	b := NewRect(9.5, 0, 10, 10).Inset(0.1)
	if a.Intersects(b) {
		t.Error("inset rects with marginal visual overlap should not intersect")
	}
}

func TestRectOverlapsX(t *testing.T) {
	a := NewRect(10, 0, 5, 5)

	if !a.OverlapsX(NewRect(12, 100, 5, 5)) {
		t.Error("OverlapsX should ignore the vertical axis")
	}
	if a.OverlapsX(NewRect(15, 0, 5, 5)) {
		t.Error("touching spans should not overlap")
	}
	if a.OverlapsX(NewRect(20, 0, 5, 5)) {
		t.Error("disjoint spans should not overlap")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %f, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %f, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{0.0, 0.0, 10.0, 0.0},
		{10.0, 0.0, 10.0, 10.0},
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
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
