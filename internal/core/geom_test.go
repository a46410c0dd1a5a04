package core

import "testing"

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
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
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

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		x, m, expected int
	}{
		{0, 32, 0},
		{31, 32, 31},
		{32, 32, 0},
		{33, 32, 1},
		{-1, 32, 31},
		{-32, 32, 0},
		{-33, 32, 31},
		{100, 24, 4},
	}

	for _, tc := range tests {
		result := Mod(tc.x, tc.m)
		if result != tc.expected {
			t.Errorf("Mod(%d, %d) = %d, expected %d", tc.x, tc.m, result, tc.expected)
		}
	}
}

func TestRectContainsRect(t *testing.T) {
	screen := NewRect(0, 0, 80, 30)

	tests := []struct {
		name     string
		r        Rect
		expected bool
	}{
		{"inside", NewRect(7, 2, 66, 26), true},
		{"exact fit", NewRect(0, 0, 80, 30), true},
		{"too wide", NewRect(0, 2, 81, 26), false},
		{"negative x", NewRect(-1, 2, 66, 26), false},
		{"too tall", NewRect(7, 2, 66, 29), false},
		{"empty", NewRect(3, 3, 0, 4), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := screen.ContainsRect(tc.r); got != tc.expected {
				t.Errorf("ContainsRect(%+v) = %v, expected %v", tc.r, got, tc.expected)
			}
		})
	}
}
