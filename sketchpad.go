/*
Package sketchpad implements the 2D geometry kernel of an interactive drawing
surface: pairs, vector normalization, rotation about an arbitrary origin,
centroids, segments, rectangles and affine transformations.

Sub-packages build on this kernel: clip (Cohen–Sutherland clipping),
spline (cubic interpolating splines through editable control points),
arrow (annotated coordinate axes), surface (the drawing surface contract)
and sketch (the tool state machines driving all of the above).

Coordinates are surface coordinates, i.e. y grows downwards. A positive
rotation angle therefore turns clockwise on screen.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package sketchpad

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sketchpad'
func tracer() tracing.Trace {
	return tracing.Select("sketchpad")
}

// ErrDegenerateVector is returned for operations requiring a direction, when
// given a vector of length 0.
var ErrDegenerateVector = errors.New("degenerate vector of length 0")

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = math.Pi / 180

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// === Pair Data Type ========================================================

// Pair is a 2D point or vector. It is represented as a complex number,
// which gives us vector addition, subtraction and negation for free.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return Origin
	}
	return P(real(c), imag(c))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs, within ε.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Near compares two pairs with a caller-supplied tolerance.
func (p Pair) Near(p2 Pair, tolerance float64) bool {
	return math.Abs(p.X()-p2.X()) <= tolerance && math.Abs(p.Y()-p2.Y()) <= tolerance
}

// Length returns |p|.
func (p Pair) Length() float64 {
	return cmplx.Abs(p.C())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return Translation(v).Transform(p)
}

// Rotated returns a new pair rotated around origin by theta.
func (p Pair) Rotated(theta float64) Pair {
	return Rotation(theta).Transform(p)
}

// RotatedAround returns a new pair rotated around v by theta.
func (p Pair) RotatedAround(v Pair, theta float64) Pair {
	return p.Shifted(-v).Rotated(theta).Shifted(v)
}

// === Vector utilities ======================================================

// Normalize returns v / |v|. For a vector of length 0 it returns
// ErrDegenerateVector; callers are expected to skip whatever they were about
// to draw.
func Normalize(v Pair) (Pair, error) {
	l := v.Length()
	if l == 0 || math.IsNaN(l) {
		tracer().Errorf("cannot normalize vector %s", v)
		return Origin, ErrDegenerateVector
	}
	return P(v.X()/l, v.Y()/l), nil
}

// Rotate rotates every point of a point set around origin by theta radians,
// turning clockwise on the surface for positive theta (see Rotation).
// Rotate does not change its argument, but returns a new slice.
func Rotate(points []Pair, origin Pair, theta float64) []Pair {
	T := Translation(-origin).Combine(Rotation(theta)).Combine(Translation(origin))
	return T.TransformAll(points)
}

// Centroid returns the arithmetic mean of a point set, i.e. the mean of all
// x-parts and the mean of all y-parts. The centroid of an empty set is the
// origin.
func Centroid(points []Pair) Pair {
	if len(points) == 0 {
		return Origin
	}
	var sx, sy float64
	for _, pt := range points {
		sx += pt.X()
		sy += pt.Y()
	}
	n := float64(len(points))
	return P(sx/n, sy/n)
}
