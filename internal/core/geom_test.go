package core

import "testing"

func TestBoxOverlap(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Box
		ok     bool
		dx, dy float64
	}{
		{
			name: "overlapping",
			a:    NewBox(0, 0, 10, 10),
			b:    NewBox(8, 6, 10, 10),
			ok:   true,
			dx:   2,
			dy:   4,
		},
		{
			name: "touching edges",
			a:    NewBox(0, 0, 10, 10),
			b:    NewBox(10, 0, 10, 10),
			ok:   false,
		},
		{
			name: "apart vertically",
			a:    NewBox(0, 0, 10, 10),
			b:    NewBox(0, 30, 10, 10),
			ok:   false,
		},
		{
			name: "contained",
			a:    NewBox(0, 0, 100, 20),
			b:    NewBox(10, 0, 4, 4),
			ok:   true,
			dx:   54,
			dy:   12,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy, ok := tc.a.Overlap(tc.b)
			if ok != tc.ok {
				t.Fatalf("Overlap() ok = %v, expected %v", ok, tc.ok)
			}
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Overlap() = (%v, %v), expected (%v, %v)", dx, dy, tc.dx, tc.dy)
			}
			// Also test symmetry
			if tc.b.Intersects(tc.a) != tc.ok {
				t.Error("Intersects() is not symmetric")
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(400, 550, 100, 20)

	if b.Left() != 350 || b.Right() != 450 {
		t.Errorf("horizontal edges = (%v, %v), expected (350, 450)", b.Left(), b.Right())
	}
	if b.Top() != 540 || b.Bottom() != 560 {
		t.Errorf("vertical edges = (%v, %v), expected (540, 560)", b.Top(), b.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{400, 50, 750, 400},
		{10, 50, 750, 50},
		{790, 50, 750, 750},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}
