package spline

import (
	"fmt"
	"math"
	"sort"

	"github.com/npillmayer/sketchpad"
	"github.com/npillmayer/sketchpad/polyn"
)

// Spline is a fitted cubic spline. It is immutable.
type Spline struct {
	boundary Boundary
	xs, ys   []float64 // knots, including a synthetic one for periodic splines
	m        []float64 // moments, i.e. S'' at the knots
	span     int       // number of knots belonging to control points
}

// Curve is a sampled spline: a polyline of ascending x.
type Curve []sketchpad.Pair

// Fit fits a cubic spline with boundary condition b through points.
// points must be in strictly ascending x-order and contain at least
// MinPoints points.
func Fit(points []sketchpad.Pair, b Boundary) (*Spline, error) {
	if len(points) < MinPoints {
		return nil, fmt.Errorf("%w, have %d", ErrTooFewPoints, len(points))
	}
	if b < Natural || b > NotAKnot {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBoundary, b)
	}
	sp := &Spline{boundary: b, span: len(points)}
	for i, pt := range points {
		x, y := pt.F()
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return nil, fmt.Errorf("invalid control point #%d: %s", i, pt)
		}
		if i > 0 && x <= sp.xs[i-1] {
			return nil, fmt.Errorf("%w: x.%d = %g after x.%d = %g", ErrNotAscending, i, x, i-1, sp.xs[i-1])
		}
		sp.xs = append(sp.xs, x)
		sp.ys = append(sp.ys, y)
	}
	if b == Periodic {
		n := len(points)
		sp.xs = append(sp.xs, 2*sp.xs[n-1]-sp.xs[n-2])
		sp.ys = append(sp.ys, sp.ys[0])
	}
	if err := sp.solveMoments(); err != nil {
		return nil, err
	}
	tracer().Infof("fitted %s spline through %d points", b, len(points))
	return sp, nil
}

// MustFit is like Fit, but panics on error.
func MustFit(points []sketchpad.Pair, b Boundary) *Spline {
	sp, err := Fit(points, b)
	if err != nil {
		panic(err)
	}
	return sp
}

// Boundary returns the boundary condition the spline has been fitted with.
func (sp *Spline) Boundary() Boundary {
	return sp.boundary
}

// Domain returns the x-range covered by the control points.
func (sp *Spline) Domain() (float64, float64) {
	return sp.xs[0], sp.xs[sp.span-1]
}

func (sp *Spline) h(i int) float64 {
	return sp.xs[i+1] - sp.xs[i]
}

// slope of the chord from knot i to knot i+1
func (sp *Spline) chord(i int) float64 {
	return (sp.ys[i+1] - sp.ys[i]) / sp.h(i)
}

// Relative tolerance of the moment solver. Elimination terms decay
// geometrically along the knots and must not be dropped early.
const solverEpsilon = 1e-15

// Variable IDs of the solver are 1-based, moment M.i is x.(i+1).
type momentNames struct{}

func (momentNames) GetVariableName(i int) string {
	return fmt.Sprintf("M.%d", i-1)
}

func (momentNames) SetVariableSolved(int, float64) {}

func mvar(i int) int {
	return i + 1
}

func (sp *Spline) solveMoments() error {
	n := len(sp.xs) - 1
	var eqs []polyn.Polynomial
	eq := func(c float64, terms ...polyn.X) {
		p, _ := polyn.New(c, terms...) // IDs are ≥ 1 by construction
		eqs = append(eqs, p)
	}
	// continuity of S' at interior knots:
	// h.i-1 M.i-1 + 2(h.i-1 + h.i) M.i + h.i M.i+1 = 6 (chord.i - chord.i-1)
	for i := 1; i < n; i++ {
		hl, hr := sp.h(i-1), sp.h(i)
		eq(-6*(sp.chord(i)-sp.chord(i-1)),
			polyn.X{I: mvar(i - 1), C: hl},
			polyn.X{I: mvar(i), C: 2 * (hl + hr)},
			polyn.X{I: mvar(i + 1), C: hr})
	}
	h0, hn := sp.h(0), sp.h(n-1)
	switch sp.boundary {
	case Natural:
		eq(0, polyn.X{I: mvar(0), C: 1})
		eq(0, polyn.X{I: mvar(n), C: 1})
	case Clamped:
		// S'(x.0) = chord.0 - h.0 (2 M.0 + M.1) / 6 = 0
		eq(-6*sp.chord(0), polyn.X{I: mvar(0), C: 2 * h0}, polyn.X{I: mvar(1), C: h0})
		// S'(x.n) = chord.n-1 + h.n-1 (M.n-1 + 2 M.n) / 6 = 0
		eq(6*sp.chord(n-1), polyn.X{I: mvar(n - 1), C: hn}, polyn.X{I: mvar(n), C: 2 * hn})
	case Periodic:
		eq(0, polyn.X{I: mvar(0), C: 1}, polyn.X{I: mvar(n), C: -1})
		eq(6*(sp.chord(0)-sp.chord(n-1)),
			polyn.X{I: mvar(0), C: -2 * h0},
			polyn.X{I: mvar(1), C: -h0},
			polyn.X{I: mvar(n - 1), C: -hn},
			polyn.X{I: mvar(n), C: -2 * hn})
	case NotAKnot:
		if n == 2 {
			// both conditions refer to the same knot; the spline degenerates
			// to the parabola through all three points
			eq(0, polyn.X{I: mvar(0), C: 1}, polyn.X{I: mvar(1), C: -1})
			eq(0, polyn.X{I: mvar(2), C: 1}, polyn.X{I: mvar(1), C: -1})
			break
		}
		// (M.1 - M.0) / h.0 = (M.2 - M.1) / h.1, same at the other end
		h1, hm := sp.h(1), sp.h(n-2)
		eq(0, polyn.X{I: mvar(0), C: -h1}, polyn.X{I: mvar(1), C: h0 + h1}, polyn.X{I: mvar(2), C: -h0})
		eq(0, polyn.X{I: mvar(n - 2), C: -hn}, polyn.X{I: mvar(n - 1), C: hm + hn}, polyn.X{I: mvar(n), C: -hm})
	}
	leq := polyn.NewLinEqSolver()
	leq.SetVariableResolver(momentNames{})
	leq.SetEpsilon(solverEpsilon)
	if err := leq.AddEqs(eqs); err != nil {
		return fmt.Errorf("cannot fit %s spline: %w", sp.boundary, err)
	}
	sp.m = make([]float64, n+1)
	for i := range sp.m {
		v, err := leq.Value(mvar(i))
		if err != nil {
			return fmt.Errorf("cannot fit %s spline: %w", sp.boundary, err)
		}
		sp.m[i] = v
	}
	return nil
}

// segment finds the index of the cubic piece to use for x. Values outside
// the knot range are extrapolated from the first or last piece.
func (sp *Spline) segment(x float64) int {
	i := sort.SearchFloat64s(sp.xs, x) - 1
	if i < 0 {
		i = 0
	}
	if i > len(sp.xs)-2 {
		i = len(sp.xs) - 2
	}
	return i
}

// At evaluates the spline at x.
func (sp *Spline) At(x float64) float64 {
	i := sp.segment(x)
	h := sp.h(i)
	t0, t1 := x-sp.xs[i], sp.xs[i+1]-x
	return sp.m[i]*t1*t1*t1/(6*h) + sp.m[i+1]*t0*t0*t0/(6*h) +
		(sp.ys[i]/h-sp.m[i]*h/6)*t1 + (sp.ys[i+1]/h-sp.m[i+1]*h/6)*t0
}

// Slope evaluates the first derivative of the spline at x. At a knot the
// piece to the left of it is used.
func (sp *Spline) Slope(x float64) float64 {
	return sp.slopeOn(sp.segment(x), x)
}

// slopeOn evaluates the first derivative of piece i at x.
func (sp *Spline) slopeOn(i int, x float64) float64 {
	h := sp.h(i)
	t0, t1 := x-sp.xs[i], sp.xs[i+1]-x
	return -sp.m[i]*t1*t1/(2*h) + sp.m[i+1]*t0*t0/(2*h) + sp.chord(i) - (sp.m[i+1]-sp.m[i])*h/6
}

// Moments returns the second derivatives at the knots, including the
// synthetic knot of a periodic spline.
func (sp *Spline) Moments() []float64 {
	return append([]float64(nil), sp.m...)
}

// Sample samples the spline at n evenly spaced x-values, spanning the
// x-range of the control points. n is at least 2.
func (sp *Spline) Sample(n int) Curve {
	if n < 2 {
		n = 2
	}
	x0, x1 := sp.Domain()
	curve := make(Curve, n)
	for k := 0; k < n; k++ {
		x := x0 + (x1-x0)*float64(k)/float64(n-1)
		if k == n-1 {
			x = x1
		}
		curve[k] = sketchpad.P(x, sp.At(x))
	}
	return curve
}
