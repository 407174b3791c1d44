package core

import (
	"math"
	"testing"
)

func TestCircleOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{
			name:     "concentric",
			a:        Circle{X: 10, Y: 10, R: 3},
			b:        Circle{X: 10, Y: 10, R: 1},
			expected: true,
		},
		{
			name:     "overlapping horizontal",
			a:        Circle{X: 0, Y: 0, R: 5},
			b:        Circle{X: 9, Y: 0, R: 5},
			expected: true,
		},
		{
			name:     "touching (no overlap)",
			a:        Circle{X: 0, Y: 0, R: 5},
			b:        Circle{X: 10, Y: 0, R: 5},
			expected: false,
		},
		{
			name:     "touching diagonal 3-4-5 (no overlap)",
			a:        Circle{X: 0, Y: 0, R: 2},
			b:        Circle{X: 3, Y: 4, R: 3},
			expected: false,
		},
		{
			name:     "apart",
			a:        Circle{X: 0, Y: 0, R: 3},
			b:        Circle{X: 100, Y: 100, R: 12},
			expected: false,
		},
		{
			name:     "bullet inside shield",
			a:        Circle{X: 300, Y: 520, R: 3},
			b:        Circle{X: 300, Y: 550, R: 35},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleDist(t *testing.T) {
	a := Circle{X: 1, Y: 1}
	b := Circle{X: 4, Y: 5}
	if d := a.Dist(b); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist() = %f, expected 5", d)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, offset, size, expected float64
	}{
		{300, 60000, 600, 300},
		{-1, 60000, 600, 599},
		{600, 60000, 600, 0},
		{601, 60000, 600, 1},
		{0, 60000, 600, 0},
	}

	for _, tc := range tests {
		if got := Wrap(tc.v, tc.offset, tc.size); got != tc.expected {
			t.Errorf("Wrap(%v, %v, %v) = %v, expected %v", tc.v, tc.offset, tc.size, got, tc.expected)
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

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
	in := TickInput(42)
	if in.Action != ActionTick || in.Elapsed != 42 {
		t.Errorf("TickInput(42) = %+v", in)
	}
}
