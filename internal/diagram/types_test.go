package diagram

import (
	"math"
	"testing"
)

func TestClampStep(t *testing.T) {
	tests := []struct {
		step, total, expected int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 4},
		{-1, 5, 0},
		{100, 5, 4},
		{2, 5, 2},
		{0, 0, 0},
		{3, -1, 0},
	}

	for _, tt := range tests {
		got := ClampStep(tt.step, tt.total)
		if got != tt.expected {
			t.Errorf("ClampStep(%d, %d) = %d, expected %d", tt.step, tt.total, got, tt.expected)
		}
	}
}

func TestUnitFromAngle(t *testing.T) {
	tests := []struct {
		deg  float64
		x, y float64
	}{
		{0, 1, 0},
		{90, 0, -1},
		{180, -1, 0},
		{270, 0, 1},
	}

	for _, tt := range tests {
		v := UnitFromAngle(tt.deg)
		if math.Abs(v.X-tt.x) > 1e-12 || math.Abs(v.Y-tt.y) > 1e-12 {
			t.Errorf("UnitFromAngle(%v) = (%v, %v), expected (%v, %v)", tt.deg, v.X, v.Y, tt.x, tt.y)
		}
	}
}

func TestVec2Ops(t *testing.T) {
	a := Vec2{3, 4}
	if a.Norm() != 5 {
		t.Errorf("expected norm 5, got %f", a.Norm())
	}

	b := a.Add(Vec2{1, -1})
	if b.X != 4 || b.Y != 3 {
		t.Errorf("unexpected sum: %+v", b)
	}

	c := a.Scale(2)
	if c.X != 6 || c.Y != 8 {
		t.Errorf("unexpected scale: %+v", c)
	}
}
