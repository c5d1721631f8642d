package sketchpad

import (
	"fmt"
	"math"
)

// AT is an affine transformation of surface coordinates,
//
//	| a  b  tx |   | x |
//	| c  d  ty | ⋅ | y |
//	| 0  0  1  |   | 1 |
//
// The zero value maps every point onto the origin; use Identity as a
// neutral starting point.
type AT struct {
	a, b, tx float64
	c, d, ty float64
}

// Identity maps every point onto itself.
func Identity() AT {
	return AT{a: 1, d: 1}
}

// Translation shifts points by v.
func Translation(v Pair) AT {
	return AT{a: 1, d: 1, tx: v.X(), ty: v.Y()}
}

// Rotation turns points around the origin by theta radians:
//
//	x' = x⋅cos θ − y⋅sin θ
//	y' = x⋅sin θ + y⋅cos θ
//
// The positive x-axis turns towards the positive y-axis. With y pointing
// downwards on a surface, positive angles turn clockwise.
func Rotation(theta float64) AT {
	sin, cos := math.Sincos(theta)
	return AT{a: cos, b: -sin, c: sin, d: cos}
}

// Scaling stretches points by kx and ky, keeping origin fixed.
// This is how a surface follows a resize of its window.
func Scaling(origin Pair, kx, ky float64) AT {
	return AT{
		a: kx, tx: origin.X() * (1 - kx),
		d: ky, ty: origin.Y() * (1 - ky),
	}
}

// Combine returns the transformation applying m first, then n.
func (m AT) Combine(n AT) AT {
	return AT{
		a:  n.a*m.a + n.b*m.c,
		b:  n.a*m.b + n.b*m.d,
		tx: n.a*m.tx + n.b*m.ty + n.tx,
		c:  n.c*m.a + n.d*m.c,
		d:  n.c*m.b + n.d*m.d,
		ty: n.c*m.tx + n.d*m.ty + n.ty,
	}
}

// Transform maps a single point.
func (m AT) Transform(p Pair) Pair {
	x, y := p.F()
	return P(m.a*x+m.b*y+m.tx, m.c*x+m.d*y+m.ty)
}

// TransformAll maps a point set to a new slice. nil stays nil.
func (m AT) TransformAll(points []Pair) []Pair {
	if points == nil {
		return nil
	}
	r := make([]Pair, len(points))
	for i, pt := range points {
		r[i] = m.Transform(pt)
	}
	return r
}

func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g]", m.a, m.b, m.tx, m.c, m.d, m.ty)
}
