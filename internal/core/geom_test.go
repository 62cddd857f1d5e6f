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
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
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

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
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


func TestRectInflate(t *testing.T) {
	r := NewRect(100, 200, 80, 60)

	grown := r.Inflate(20, 10)
	if grown != NewRect(90, 195, 100, 70) {
		t.Errorf("Inflate(20, 10) = %+v", grown)
	}

	shrunk := r.Inflate(-24, -18)
	if shrunk != NewRect(112, 209, 56, 42) {
		t.Errorf("Inflate(-24, -18) = %+v", shrunk)
	}

	// The center must not move for even deltas
	cx, cy := r.Center()
	sx, sy := shrunk.Center()
	if cx != sx || cy != sy {
		t.Errorf("center moved from (%d, %d) to (%d, %d)", cx, cy, sx, sy)
	}
}

func TestRectScale(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		ratio    float64
		expected Rect
	}{
		{"player at 0.7", NewRect(200, 510, 80, 60), 0.7, NewRect(212, 519, 56, 42)},
		{"obstacle at 0.7", NewRect(10, -110, 140, 110), 0.7, NewRect(31, -94, 98, 77)},
		{"identity", NewRect(5, 5, 10, 10), 1.0, NewRect(5, 5, 10, 10)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Scale(tc.ratio)
			if got != tc.expected {
				t.Errorf("Scale(%v) = %+v, expected %+v", tc.ratio, got, tc.expected)
			}
		})
	}
}

func TestIntersectsScaled(t *testing.T) {
	// Boxes overlapping only in their outer 15% margins
	a := NewRect(0, 0, 100, 100)
	b := NewRect(90, 0, 100, 100)

	if !a.Intersects(b) {
		t.Fatal("full boxes should overlap")
	}
	if IntersectsScaled(a, b, 0.7) {
		t.Error("shrunk boxes should not overlap")
	}

	// Deep overlap survives shrinking
	c := NewRect(40, 40, 100, 100)
	if !IntersectsScaled(a, c, 0.7) {
		t.Error("deeply overlapping boxes should still overlap when shrunk")
	}
}
