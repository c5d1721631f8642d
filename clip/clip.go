/*
Package clip clips geometry against axis-aligned rectangles.

Segments are clipped with the Cohen–Sutherland algorithm: both endpoints are
classified by a 4-bit outcode relative to the four half-planes of the clip
rectangle. Segments with both codes 0 are trivially accepted, segments with
codes sharing a bit are trivially rejected; all other segments get one outside
endpoint moved onto the violated boundary and are classified again.

Polylines are clipped segment by segment and broken into visible runs.
Polygons are intersected with the rectangle by a general polygon clipper.

All functions are stateless. Clipping a batch of segments against one
rectangle yields one independent result per segment.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package clip

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sketchpad"
)

// tracer writes to trace with key 'sketchpad.clip'
func tracer() tracing.Trace {
	return tracing.Select("sketchpad.clip")
}

// Outcode classifies a point relative to the half-planes of a clip rectangle.
// At most one of Left/Right and one of Below/Above is set.
type Outcode uint8

// Outcode bits.
const (
	Inside Outcode = 0
	Left   Outcode = 1 // x < xmin
	Right  Outcode = 2 // x > xmax
	Below  Outcode = 4 // y < ymin
	Above  Outcode = 8 // y > ymax
)

// OutcodeOf computes the outcode of pt with respect to r.
func OutcodeOf(pt sketchpad.Pair, r sketchpad.Rect) Outcode {
	code := Inside
	if pt.X() < r.XMin {
		code |= Left
	} else if pt.X() > r.XMax {
		code |= Right
	}
	if pt.Y() < r.YMin {
		code |= Below
	} else if pt.Y() > r.YMax {
		code |= Above
	}
	return code
}

// Every round moves an endpoint onto one more boundary, so four rounds
// suffice in exact arithmetic. The rest is headroom for rounding noise.
const maxRounds = 8

// Segment clips s against r. It returns the visible part of s and true,
// or false if s lies completely outside of r. A segment completely inside
// of r is returned unchanged.
func Segment(s sketchpad.Segment, r sketchpad.Rect) (sketchpad.Segment, bool) {
	p1, p2 := s.P1, s.P2
	code1, code2 := OutcodeOf(p1, r), OutcodeOf(p2, r)
	for round := 0; round < maxRounds; round++ {
		if code1|code2 == Inside {
			tracer().Debugf("accept %s as %s--%s", s, p1, p2)
			return sketchpad.Segment{P1: p1, P2: p2}, true
		}
		if code1&code2 != Inside {
			tracer().Debugf("reject %s", s)
			return sketchpad.Segment{}, false
		}
		if code1 != Inside {
			p1 = intersect(p1, p2, code1, r)
			code1 = OutcodeOf(p1, r)
		} else {
			p2 = intersect(p2, p1, code2, r)
			code2 = OutcodeOf(p2, r)
		}
	}
	tracer().Errorf("clipping %s against %s did not converge", s, r)
	return sketchpad.Segment{}, false
}

// Segments clips every segment of a batch against r. The result has one
// entry per input segment; rejected segments have ok = false.
func Segments(segs []sketchpad.Segment, r sketchpad.Rect) []Result {
	results := make([]Result, len(segs))
	for i, s := range segs {
		results[i].Segment, results[i].Visible = Segment(s, r)
	}
	return results
}

// Result is the outcome of clipping a single segment of a batch.
type Result struct {
	Segment sketchpad.Segment
	Visible bool
}

// intersect moves the outside point pout onto the boundary it violates.
// Above/Below are tested before Left/Right.
func intersect(pout, other sketchpad.Pair, code Outcode, r sketchpad.Rect) sketchpad.Pair {
	switch {
	case code&Above != 0:
		return sketchpad.P(xAt(pout, other, r.YMax), r.YMax)
	case code&Below != 0:
		return sketchpad.P(xAt(pout, other, r.YMin), r.YMin)
	case code&Right != 0:
		return sketchpad.P(r.XMax, yAt(pout, other, r.XMax))
	case code&Left != 0:
		return sketchpad.P(r.XMin, yAt(pout, other, r.XMin))
	}
	return pout
}

// xAt returns the x-coordinate of the line through p1 and p2 at height y.
// A horizontal line has no unique crossing, so p1 is projected onto the edge.
func xAt(p1, p2 sketchpad.Pair, y float64) float64 {
	x1, y1 := p1.F()
	x2, y2 := p2.F()
	if y2 == y1 {
		return x1
	}
	return x1 + (x2-x1)/(y2-y1)*(y-y1)
}

// yAt returns the y-coordinate of the line through p1 and p2 at x.
// A vertical line is projected onto the edge.
func yAt(p1, p2 sketchpad.Pair, x float64) float64 {
	x1, y1 := p1.F()
	x2, y2 := p2.F()
	if x2 == x1 {
		return y1
	}
	return y1 + (y2-y1)/(x2-x1)*(x-x1)
}
