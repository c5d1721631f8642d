/*
Package spline fits piecewise cubic interpolating splines through an ordered
set of control points.

Control points are kept in strictly ascending x-order (see ControlPoints).
The spline through n+1 points is represented by its second derivatives
M.0 … M.n at the knots ("moments"). Every cubic piece S.i on [x.i, x.i+1]
is then fully determined by y.i, y.i+1, M.i and M.i+1, and the spline
interpolates all control points by construction. The moments follow from a
system of linear equations: continuity of the first derivative at the n-1
interior knots, plus two equations expressing the boundary condition:

	Natural    S''(x.0) = S''(x.n) = 0
	Clamped    S'(x.0) = S'(x.n) = 0
	Periodic   S'(x.0) = S'(x.n) and S''(x.0) = S''(x.n)
	NotAKnot   S''' continuous at x.1 and at x.n-1

For periodic splines a synthetic point is appended before fitting, closing
the loop back to the height of the first point. The equations are solved by
the linear equation solver of package polyn.

A Model owns the control points and the derived, sampled curve, and
recomputes the curve from scratch on every change.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package spline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sketchpad.spline'
func tracer() tracing.Trace {
	return tracing.Select("sketchpad.spline")
}

var (
	// ErrTooFewPoints indicates that a spline needs at least 3 control points.
	ErrTooFewPoints = errors.New("spline needs at least 3 control points")
	// ErrNotAscending indicates control points not in strictly ascending x-order.
	ErrNotAscending = errors.New("control points must have strictly ascending x")
	// ErrUnknownBoundary indicates an unknown boundary condition name.
	ErrUnknownBoundary = errors.New("unknown boundary condition")
)

// MinPoints is the minimum number of control points for fitting a spline.
const MinPoints = 3

// DefaultSamples is the default number of samples of a spline curve.
const DefaultSamples = 200

// Boundary selects the boundary condition of a spline.
type Boundary int

// Boundary conditions. The zero value is Natural.
const (
	Natural Boundary = iota
	Clamped
	Periodic
	NotAKnot
)

var boundaryNames = [...]string{"natural", "clamped", "periodic", "not-a-knot"}

func (b Boundary) String() string {
	if b < Natural || b > NotAKnot {
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
	return boundaryNames[b]
}

// ParseBoundary finds a boundary condition by name. Case, dashes and
// underscores are ignored, i.e. "NotAKnot", "not-a-knot" and "not_a_knot"
// are all accepted.
func ParseBoundary(name string) (Boundary, error) {
	norm := func(s string) string {
		return strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	}
	for b, s := range boundaryNames {
		if norm(s) == norm(name) {
			return Boundary(b), nil
		}
	}
	return Natural, fmt.Errorf("%w: %q", ErrUnknownBoundary, name)
}

// MarshalText makes Boundary usable in configuration files.
func (b Boundary) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText makes Boundary usable in configuration files.
func (b *Boundary) UnmarshalText(text []byte) error {
	bb, err := ParseBoundary(string(text))
	if err != nil {
		return err
	}
	*b = bb
	return nil
}
