package gamemath

import (
	"errors"
	"testing"
)

func TestNewRect(t *testing.T) {
	if _, err := NewRect(1, -1, 0, 1); !errors.Is(err, ErrInvalidRect) {
		t.Errorf("inverted horizontal edges: got %v, want ErrInvalidRect", err)
	}
	if _, err := NewRect(0, 1, 2, 1); !errors.Is(err, ErrInvalidRect) {
		t.Errorf("inverted vertical edges: got %v, want ErrInvalidRect", err)
	}
	r, err := NewRect(-2, 2, -1, 3)
	if err != nil {
		t.Fatalf("NewRect: %v", err)
	}
	if r.Width() != 4 || r.Height() != 4 {
		t.Errorf("size = %vx%v, want 4x4", r.Width(), r.Height())
	}
}

func TestPenetration(t *testing.T) {
	a := Square(1).At(0, 0)

	tests := []struct {
		name    string
		b       Rect
		overlap bool
		ix, iy  float64
	}{
		{"half width offset", Square(1).At(0.5, 0), true, 1.5, 2},
		{"one and a half offset", Square(1).At(1.5, 0), true, 0.5, 2},
		{"touching edge", Square(1).At(2, 0), false, 0, 2},
		{"apart", Square(1).At(5, 5), false, -3, -3},
		{"diagonal", Square(1).At(1.5, 1), true, 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix, iy := Penetration(a, tt.b)
			if ix != tt.ix || iy != tt.iy {
				t.Errorf("Penetration = (%v, %v), want (%v, %v)", ix, iy, tt.ix, tt.iy)
			}
			if got := Overlaps(a, tt.b); got != tt.overlap {
				t.Errorf("Overlaps = %v, want %v", got, tt.overlap)
			}
		})
	}
}

func TestUnionSlack(t *testing.T) {
	a := Square(1).At(0, 0)
	b := Square(1).At(0.5, 0)
	u := Union(a, b)
	if u.Width() != 2.5 {
		t.Fatalf("union width = %v, want 2.5", u.Width())
	}
	if sum := a.Width() + b.Width(); sum-u.Width() != 1.5 {
		t.Errorf("x correction = %v, want 1.5", sum-u.Width())
	}
}

func TestShallowAxis(t *testing.T) {
	tests := []struct {
		ix, iy float64
		want   Axis
	}{
		{2, 1, AxisY},
		{1, 2, AxisX},
		{1, 1, AxisX},
	}
	for _, tt := range tests {
		if got := ShallowAxis(tt.ix, tt.iy); got != tt.want {
			t.Errorf("ShallowAxis(%v, %v) = %v, want %v", tt.ix, tt.iy, got, tt.want)
		}
	}
}

func TestGrow(t *testing.T) {
	r := Square(2).At(10, 20).Grow(1)
	want := Rect{Left: 7, Right: 13, Bottom: 17, Top: 23}
	if r != want {
		t.Errorf("Grow = %+v, want %+v", r, want)
	}
}
