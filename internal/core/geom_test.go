package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "player over obstacle",
			a:        NewRectF(100, 350, 40, 40),
			b:        NewRectF(100, 350, 20, 40),
			expected: true,
		},
		{
			name:     "touching right edge",
			a:        NewRectF(100, 350, 40, 40),
			b:        NewRectF(140, 350, 20, 40),
			expected: false,
		},
		{
			name:     "touching bottom edge",
			a:        NewRectF(100, 310, 40, 40),
			b:        NewRectF(100, 350, 20, 40),
			expected: false,
		},
		{
			name:     "fractional overlap",
			a:        NewRectF(100, 350, 40, 40),
			b:        NewRectF(139.5, 389.5, 20, 40),
			expected: true,
		},
		{
			name:     "far apart",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(50, 50, 10, 10),
			expected: false,
		},
		{
			name:     "contained",
			a:        NewRectF(0, 0, 20, 20),
			b:        NewRectF(5, 5, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFContains(t *testing.T) {
	r := NewRectF(620, 50, 160, 40)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Point{700, 70}, true},
		{"top-left corner", Point{620, 50}, true},
		{"right edge (exclusive)", Point{780, 70}, false},
		{"bottom edge (exclusive)", Point{700, 90}, false},
		{"outside left", Point{619.9, 70}, false},
		{"outside top", Point{700, 49}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestCellSpan(t *testing.T) {
	tests := []struct {
		pos, size, cell float64
		start, length   int
	}{
		{0, 40, 10, 0, 4},
		{100, 40, 10, 10, 4},
		{50, 40, 20, 2, 3},  // 2.5 .. 4.5 covers rows 2, 3, 4
		{-3, 20, 10, -1, 3}, // partially off-screen
		{10, 0, 10, 1, 0},
	}

	for _, tc := range tests {
		start, length := CellSpan(tc.pos, tc.size, tc.cell)
		if start != tc.start || length != tc.length {
			t.Errorf("CellSpan(%v, %v, %v) = (%d, %d), expected (%d, %d)",
				tc.pos, tc.size, tc.cell, start, length, tc.start, tc.length)
		}
	}
}

func TestSnapToCells(t *testing.T) {
	tests := []struct {
		name     string
		r        RectF
		expected RectF
	}{
		{"aligned", RectF{600, 40, 100, 60}, RectF{600, 40, 100, 60}},
		{"half rows", RectF{605, 50, 150, 40}, RectF{600, 40, 160, 60}},
		{"inside one cell", RectF{3, 3, 2, 2}, RectF{0, 0, 10, 20}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SnapToCells(tc.r, 10, 20); got != tc.expected {
				t.Errorf("SnapToCells(%v) = %v, expected %v", tc.r, got, tc.expected)
			}
		})
	}
}
