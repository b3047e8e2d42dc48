package geom

import "testing"

func TestRectEdges(t *testing.T) {
	tests := []struct {
		name                     string
		rect                     Rect
		left, right, top, bottom float64
	}{
		{"unit at origin", Rect{X: 0, Y: 0, W: 2, H: 2}, -1, 1, -1, 1},
		{"brick-sized", Rect{X: 100, Y: 100, W: 60, H: 20}, 70, 130, 90, 110},
		{"offset", Rect{X: 10, Y: 5, W: 4, H: 6}, 8, 12, 2, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Left(); got != tt.left {
				t.Errorf("Left() = %v, want %v", got, tt.left)
			}
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Top(); got != tt.top {
				t.Errorf("Top() = %v, want %v", got, tt.top)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
		})
	}
}

func TestCircleEdges(t *testing.T) {
	c := Circle{X: 95, Y: 100, R: 5}

	if got := c.Left(); got != 90 {
		t.Errorf("Left() = %v, want 90", got)
	}
	if got := c.Right(); got != 100 {
		t.Errorf("Right() = %v, want 100", got)
	}
	if got := c.Top(); got != 95 {
		t.Errorf("Top() = %v, want 95", got)
	}
	if got := c.Bottom(); got != 105 {
		t.Errorf("Bottom() = %v, want 105", got)
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 2, Y: -3}

	sum := v.Add(Vec2{X: 1, Y: 1})
	if sum != (Vec2{X: 3, Y: -2}) {
		t.Errorf("Add = %v, want {3 -2}", sum)
	}

	scaled := v.Scale(2)
	if scaled != (Vec2{X: 4, Y: -6}) {
		t.Errorf("Scale = %v, want {4 -6}", scaled)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %v", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1,0,10) = %v", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11,0,10) = %v", got)
	}
}
