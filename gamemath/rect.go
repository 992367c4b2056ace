package gamemath

import (
	"errors"
	"fmt"
)

// ErrInvalidRect is returned when a rect's edges are inverted.
var ErrInvalidRect = errors.New("invalid rect")

// Axis identifies the axis a collision is corrected along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Rect is an axis-aligned bounding box. Edges are relative to the owning
// entity's origin until translated with At. Y points up.
type Rect struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
}

// NewRect builds a rect and rejects inverted edges.
func NewRect(left, right, bottom, top float64) (Rect, error) {
	if left > right || bottom > top {
		return Rect{}, fmt.Errorf("%w: left=%v right=%v bottom=%v top=%v", ErrInvalidRect, left, right, bottom, top)
	}
	return Rect{Left: left, Right: right, Bottom: bottom, Top: top}, nil
}

// Square returns a rect of the given half size centered on the origin.
func Square(half float64) Rect {
	return Rect{Left: -half, Right: half, Bottom: -half, Top: half}
}

func (r Rect) Width() float64 {
	return r.Right - r.Left
}

func (r Rect) Height() float64 {
	return r.Top - r.Bottom
}

// At translates the rect to world space for an origin at (x, y).
func (r Rect) At(x, y float64) Rect {
	return Rect{
		Left:   x + r.Left,
		Right:  x + r.Right,
		Bottom: y + r.Bottom,
		Top:    y + r.Top,
	}
}

// Grow expands the rect by d on every side.
func (r Rect) Grow(d float64) Rect {
	return Rect{Left: r.Left - d, Right: r.Right + d, Bottom: r.Bottom - d, Top: r.Top + d}
}

// Center returns the middle of the rect.
func (r Rect) Center() (float64, float64) {
	return (r.Left + r.Right) / 2, (r.Bottom + r.Top) / 2
}

// Union returns the smallest rect containing both a and b.
func Union(a, b Rect) Rect {
	return Rect{
		Left:   min(a.Left, b.Left),
		Right:  max(a.Right, b.Right),
		Bottom: min(a.Bottom, b.Bottom),
		Top:    max(a.Top, b.Top),
	}
}

// Penetration returns how far a and b intrude into each other on each axis:
// the summed size minus the union size. A positive value on both axes means
// the rects overlap.
func Penetration(a, b Rect) (ix, iy float64) {
	u := Union(a, b)
	ix = a.Width() + b.Width() - u.Width()
	iy = a.Height() + b.Height() - u.Height()
	return ix, iy
}

// Overlaps reports whether a and b share interior area. Rects that only touch
// along an edge do not overlap.
func Overlaps(a, b Rect) bool {
	u := Union(a, b)
	return u.Width() < a.Width()+b.Width() && u.Height() < a.Height()+b.Height()
}

// ShallowAxis picks the axis with the smaller penetration. Equal depths
// resolve to X.
func ShallowAxis(ix, iy float64) Axis {
	if ix > iy {
		return AxisY
	}
	return AxisX
}
