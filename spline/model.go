package spline

import (
	"errors"

	"github.com/npillmayer/sketchpad"
)

// Model owns a list of control points, a boundary condition and the spline
// curve derived from both. The curve is recomputed from scratch whenever
// the points or the boundary condition change.
type Model struct {
	points   ControlPoints
	boundary Boundary
	samples  int
	spline   *Spline
	curve    Curve
}

// NewModel creates an empty model. samples is the number of samples of the
// curve; if it is less than 2, DefaultSamples is used.
func NewModel(b Boundary, samples int) *Model {
	if samples < 2 {
		samples = DefaultSamples
	}
	return &Model{boundary: b, samples: samples}
}

// SetTolerance sets the tolerance for considering two x-coordinates equal.
func (m *Model) SetTolerance(tol float64) {
	m.points.Tolerance = tol
}

// Len returns the number of control points.
func (m *Model) Len() int {
	return m.points.Len()
}

// Points returns a copy of the control points.
func (m *Model) Points() []sketchpad.Pair {
	return m.points.Points()
}

// Point returns control point #i.
func (m *Model) Point(i int) sketchpad.Pair {
	return m.points.At(i)
}

// Boundary returns the current boundary condition.
func (m *Model) Boundary() Boundary {
	return m.boundary
}

// Insert inserts or updates a control point and recomputes the curve.
// It returns the index of the point.
func (m *Model) Insert(pt sketchpad.Pair) int {
	i, _ := m.points.Insert(pt)
	m.recompute()
	return i
}

// Drag moves control point #i to pt. If the move would invert the order of
// the control points, it is rejected, the model stays unchanged and Drag
// returns false.
func (m *Model) Drag(i int, pt sketchpad.Pair) bool {
	if !m.points.Drag(i, pt) {
		tracer().Debugf("drag of control point #%d to %s rejected", i, pt)
		return false
	}
	m.recompute()
	return true
}

// Nearest finds the control point closest to pt within radius.
func (m *Model) Nearest(pt sketchpad.Pair, radius float64) (int, bool) {
	return m.points.Nearest(pt, radius)
}

// SetBoundary selects a boundary condition and re-fits the curve.
func (m *Model) SetBoundary(b Boundary) {
	m.boundary = b
	m.recompute()
}

// Scale scales all control points, e.g. after a resize of the drawing
// surface, and recomputes the curve.
func (m *Model) Scale(kx, ky float64) {
	m.points.Scale(kx, ky)
	m.recompute()
}

// Reset removes all control points and the curve.
func (m *Model) Reset() {
	m.points.Reset()
	m.recompute()
}

// Curve returns the sampled curve. The flag is false if there are too few
// control points for a spline.
func (m *Model) Curve() (Curve, bool) {
	return m.curve, m.curve != nil
}

// Spline returns the fitted spline, or nil.
func (m *Model) Spline() *Spline {
	return m.spline
}

func (m *Model) recompute() {
	m.spline, m.curve = nil, nil
	sp, err := Fit(m.points.Points(), m.boundary)
	if err != nil {
		if !errors.Is(err, ErrTooFewPoints) {
			tracer().Errorf("no curve: %v", err)
		}
		return
	}
	m.spline = sp
	m.curve = sp.Sample(m.samples)
}
