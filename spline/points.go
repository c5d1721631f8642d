package spline

import (
	"math"
	"sort"

	"github.com/npillmayer/sketchpad"
)

// ControlPoints is an ordered list of points with strictly ascending
// x-coordinates. The zero value is an empty list, ready to use.
//
// Inserting a point with the x-coordinate of an existing point replaces the
// y-coordinate of the existing point. Points are considered to share their
// x-coordinate if they differ by at most Tolerance, which defaults to 0, i.e.
// exact equality. This is what we want for integral pixel input.
type ControlPoints struct {
	points    []sketchpad.Pair
	Tolerance float64
}

// Len returns the number of control points.
func (cp *ControlPoints) Len() int {
	return len(cp.points)
}

// At returns control point #i.
func (cp *ControlPoints) At(i int) sketchpad.Pair {
	return cp.points[i]
}

// Points returns a copy of the control points.
func (cp *ControlPoints) Points() []sketchpad.Pair {
	return append([]sketchpad.Pair(nil), cp.points...)
}

// Reset clears the list.
func (cp *ControlPoints) Reset() {
	cp.points = cp.points[:0]
}

// search returns the position of the first point with x ≥ px-Tolerance.
func (cp *ControlPoints) search(px float64) int {
	return sort.Search(len(cp.points), func(i int) bool {
		return cp.points[i].X() >= px-cp.Tolerance
	})
}

// Insert adds pt to the list, keeping the ascending x-order. If a point with
// the same x-coordinate already exists, its y-coordinate is replaced instead.
// Insert returns the index of the inserted or updated point and a flag
// telling whether an existing point has been updated.
func (cp *ControlPoints) Insert(pt sketchpad.Pair) (int, bool) {
	i := cp.search(pt.X())
	if i < len(cp.points) && math.Abs(cp.points[i].X()-pt.X()) <= cp.Tolerance {
		cp.points[i] = sketchpad.P(cp.points[i].X(), pt.Y())
		tracer().Debugf("control point #%d updated to %s", i, cp.points[i])
		return i, true
	}
	cp.points = append(cp.points, sketchpad.Origin)
	copy(cp.points[i+1:], cp.points[i:])
	cp.points[i] = pt
	tracer().Debugf("control point #%d inserted at %s", i, pt)
	return i, false
}

// Drag moves control point #i to pt. Moving a point onto or beyond the
// x-coordinate of one of its neighbours would break the ordering of the
// list; such a move is rejected and Drag returns false, leaving the list
// unchanged.
func (cp *ControlPoints) Drag(i int, pt sketchpad.Pair) bool {
	if i < 0 || i >= len(cp.points) {
		return false
	}
	if i+1 < len(cp.points) && pt.X() >= cp.points[i+1].X() {
		return false
	}
	if i > 0 && pt.X() <= cp.points[i-1].X() {
		return false
	}
	cp.points[i] = pt
	return true
}

// Nearest finds the control point closest to pt, if it is not further away
// than radius.
func (cp *ControlPoints) Nearest(pt sketchpad.Pair, radius float64) (int, bool) {
	found, best := -1, radius
	for i, q := range cp.points {
		if d := (q - pt).Length(); d <= best {
			found, best = i, d
		}
	}
	return found, found >= 0
}

// Scale scales all control points by (kx, ky) around the origin.
// Non-positive kx would reverse or collapse the x-order and is ignored.
func (cp *ControlPoints) Scale(kx, ky float64) {
	if kx <= 0 {
		tracer().Errorf("refusing to scale control points by kx = %g", kx)
		return
	}
	for i, q := range cp.points {
		cp.points[i] = sketchpad.P(q.X()*kx, q.Y()*ky)
	}
}
