package sketchpad

import (
	"fmt"
	"math"
)

// Segment is an ordered pair of points.
type Segment struct {
	P1, P2 Pair
}

// Seg is a quick notation for constructing a segment from four floats.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{P1: P(x1, y1), P2: P(x2, y2)}
}

func (s Segment) String() string {
	return fmt.Sprintf("%s--%s", s.P1, s.P2)
}

// Delta returns the vector from P1 to P2.
func (s Segment) Delta() Pair {
	return s.P2 - s.P1
}

// Length returns the Euclidean length of s.
func (s Segment) Length() float64 {
	return s.Delta().Length()
}

// Points returns the endpoints of s as a point set.
func (s Segment) Points() []Pair {
	return []Pair{s.P1, s.P2}
}

// Equal compares two segments endpoint by endpoint, within ε.
func (s Segment) Equal(o Segment) bool {
	return s.P1.Equal(o.P1) && s.P2.Equal(o.P2)
}

// Rect is an axis-aligned rectangle. The zero value is the degenerate
// rectangle at the origin. Rectangles built with R always satisfy
// XMin ≤ XMax and YMin ≤ YMax.
type Rect struct {
	XMin, YMin float64
	XMax, YMax float64
}

// R creates a rectangle from two arbitrary corners.
func R(p, q Pair) Rect {
	return Rect{
		XMin: math.Min(p.X(), q.X()),
		YMin: math.Min(p.Y(), q.Y()),
		XMax: math.Max(p.X(), q.X()),
		YMax: math.Max(p.Y(), q.Y()),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g|%g,%g]", r.XMin, r.YMin, r.XMax, r.YMax)
}

// Width returns XMax - XMin.
func (r Rect) Width() float64 {
	return r.XMax - r.XMin
}

// Height returns YMax - YMin.
func (r Rect) Height() float64 {
	return r.YMax - r.YMin
}

// IsEmpty is true for rectangles without area.
func (r Rect) IsEmpty() bool {
	return Is0(r.Width()) || Is0(r.Height())
}

// Contains is true if pt is inside r or on its border.
func (r Rect) Contains(pt Pair) bool {
	return pt.X() >= r.XMin && pt.X() <= r.XMax && pt.Y() >= r.YMin && pt.Y() <= r.YMax
}

// Corners returns the corners of r, clockwise on screen, starting at (XMin,YMin).
func (r Rect) Corners() []Pair {
	return []Pair{
		P(r.XMin, r.YMin),
		P(r.XMax, r.YMin),
		P(r.XMax, r.YMax),
		P(r.XMin, r.YMax),
	}
}

// BoundingBox returns the smallest rectangle containing all points.
// The flag is false for an empty point set.
func BoundingBox(points []Pair) (Rect, bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	r := R(points[0], points[0])
	for _, pt := range points[1:] {
		r.XMin = math.Min(r.XMin, pt.X())
		r.YMin = math.Min(r.YMin, pt.Y())
		r.XMax = math.Max(r.XMax, pt.X())
		r.YMax = math.Max(r.YMax, pt.Y())
	}
	return r, true
}

// Circle approximates a circle around center by a regular polygon with
// the given number of sides. Fewer than 3 sides are raised to 3.
func Circle(center Pair, radius float64, sides int) []Pair {
	if sides < 3 {
		sides = 3
	}
	pts := make([]Pair, sides)
	for i := 0; i < sides; i++ {
		sin, cos := math.Sincos(float64(i) * 2 * math.Pi / float64(sides))
		pts[i] = P(cos*radius+center.X(), sin*radius+center.Y())
	}
	return pts
}
