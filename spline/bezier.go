package spline

import (
	"fmt"
	"math/cmplx"
	"strings"

	"github.com/npillmayer/sketchpad"
)

// Controls collects Bézier control points of a spline: for every knot i an
// incoming control point i- and an outgoing control point i+.
// Surfaces able to draw cubic Bézier curves natively may render a spline
// from its knots and controls instead of from a sampled curve.
type Controls struct {
	prec  []sketchpad.Pair // control point i-
	postc []sketchpad.Pair // control point i+
}

var unknown = sketchpad.Pair(cmplx.NaN())

// SetPreControl sets the incoming control point at knot i.
func (ctrls *Controls) SetPreControl(i int, c sketchpad.Pair) {
	ctrls.prec = extendC(ctrls.prec, i, unknown)
	ctrls.prec[i] = c
}

// SetPostControl sets the outgoing control point at knot i.
func (ctrls *Controls) SetPostControl(i int, c sketchpad.Pair) {
	ctrls.postc = extendC(ctrls.postc, i, unknown)
	ctrls.postc[i] = c
}

// PreControl returns the incoming control point at knot i, or NaN if unset.
func (ctrls *Controls) PreControl(i int) sketchpad.Pair {
	return getC(ctrls.prec, i, unknown)
}

// PostControl returns the outgoing control point at knot i, or NaN if unset.
func (ctrls *Controls) PostControl(i int) sketchpad.Pair {
	return getC(ctrls.postc, i, unknown)
}

// Knots returns the control points of the spline, i.e. the knots of its
// Bézier representation.
func (sp *Spline) Knots() []sketchpad.Pair {
	knots := make([]sketchpad.Pair, sp.span)
	for i := range knots {
		knots[i] = sketchpad.P(sp.xs[i], sp.ys[i])
	}
	return knots
}

// Controls converts the spline between its first and last control point
// into cubic Bézier segments. The x-coordinate is linear in the curve
// parameter, so the inner control points sit at thirds of every interval,
// in direction of the spline's tangents.
func (sp *Spline) Controls() *Controls {
	ctrls := &Controls{}
	for i := 0; i < sp.span-1; i++ {
		h := sp.h(i)
		d0 := sp.chord(i) - h*(2*sp.m[i]+sp.m[i+1])/6
		d1 := sp.chord(i) + h*(sp.m[i]+2*sp.m[i+1])/6
		ctrls.SetPostControl(i, sketchpad.P(sp.xs[i]+h/3, sp.ys[i]+h/3*d0))
		ctrls.SetPreControl(i+1, sketchpad.P(sp.xs[i+1]-h/3, sp.ys[i+1]-h/3*d1))
	}
	return ctrls
}

// AsString returns a spline as a path in MetaPost notation, with control
// points if contr is non-nil. Without controls, a path through three knots
// looks like this:
//
//	(0,0) .. (10,20) .. (20,5)
func AsString(knots []sketchpad.Pair, contr *Controls) string {
	var s strings.Builder
	for i, pt := range knots {
		if i > 0 {
			if contr != nil {
				s.WriteString(fmt.Sprintf(" and %s\n  .. ", ptstring(contr.PreControl(i), true)))
			} else {
				s.WriteString(" .. ")
			}
		}
		s.WriteString(ptstring(pt, false))
		if contr != nil && i < len(knots)-1 {
			s.WriteString(fmt.Sprintf(" .. controls %s", ptstring(contr.PostControl(i), true)))
		}
	}
	return s.String()
}

// Extend a slice of pairs to make room for index i.
// Will do nothing if the slice is already large enough.
func extendC(arr []sketchpad.Pair, i int, deflt sketchpad.Pair) []sketchpad.Pair {
	for len(arr) <= i {
		arr = append(arr, deflt)
	}
	return arr
}

// Get a value from a slice if present, default value deflt otherwise.
func getC(arr []sketchpad.Pair, i int, deflt sketchpad.Pair) sketchpad.Pair {
	if i < 0 || i >= len(arr) {
		return deflt
	}
	return arr[i]
}

func ptstring(p sketchpad.Pair, iscontrol bool) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
