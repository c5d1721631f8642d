package polyn

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/npillmayer/sketchpad"
)

var (
	// ErrEmptyEquationList indicates no equations were supplied to AddEqs.
	ErrEmptyEquationList = errors.New("empty list of equations")
	// ErrInconsistentEquation indicates an equation reduced to 0 = c with c != 0.
	ErrInconsistentEquation = errors.New("inconsistent equation")
	// ErrUnsolved indicates a variable has not (yet) been solved.
	ErrUnsolved = errors.New("variable is not solved")
)

/*
----------------------------------------------------------------------

Objects and interfaces for solving systems of linear equations (LEQ).

Inspired by Donald E. Knuth's MetaFont, John Hobby's MetaPost and by
a Lua project by John D. Ramsdell: http://luaforge.net/projects/lineqpp/

Equations are added one at a time. Every new equation 0 = p is first
rewritten in terms of independent variables only, then resolved for the
variable with the largest coefficient. This variable becomes dependent and
is eliminated from all other dependent equations. Whenever the right hand
side of a dependent variable becomes constant, the variable is solved.
*/

// A VariableResolver links solver variable IDs to "real" variable names.
type VariableResolver interface {
	GetVariableName(int) string     // get real-life name of x.i
	SetVariableSolved(int, float64) // message: x.i is solved
}

// EquationMap holds equations x.i = p(i), keyed by i.
type EquationMap map[int]Polynomial

// LinEqSolver is a container for linear equations. Used to incrementally solve
// systems of linear equations.
type LinEqSolver struct {
	dependents  EquationMap      // x.i = p(i), p containing independent variables only
	solved      map[int]float64  // x.i = c
	varresolver VariableResolver // to resolve variable names from IDs
	eps         float64          // relative tolerance for negligible terms
}

// NewLinEqSolver creates a new system of linear equations.
func NewLinEqSolver() *LinEqSolver {
	return &LinEqSolver{
		dependents: make(EquationMap),
		solved:     make(map[int]float64),
		eps:        sketchpad.Epsilon,
	}
}

// SetEpsilon sets the relative tolerance of the solver. Terms of an equation
// with a coefficient |a.i| ≤ eps⋅max|a.j| are dropped, and an equation
// reducing to 0 = c is redundant if |c| ≤ eps times its largest original
// coefficient. The default is sketchpad.Epsilon.
//
// Systems with widely varying magnitudes of their unknowns need a tolerance
// close to the float64 precision.
func (leq *LinEqSolver) SetEpsilon(eps float64) {
	leq.eps = math.Abs(eps)
}

// SetVariableResolver sets a variable resolver for tracing and for
// notifications about solved variables.
func (leq *LinEqSolver) SetVariableResolver(resolver VariableResolver) {
	leq.varresolver = resolver
}

// AddEq adds a new equation 0 = p to a system of linear equations and
// solves the -- possibly incomplete -- system as far as possible.
// Redundant equations (0 = 0 after substitution) are accepted silently.
func (leq *LinEqSolver) AddEq(p Polynomial) error {
	scale := math.Max(p.magnitude(), math.Abs(p.GetConstantValue()))
	p = leq.substituteKnown(p.CopyPolynomial().ZapRelative(leq.eps)).ZapRelative(leq.eps)
	T().P("op", "new equation").Debugf("0 = %s", leq.PolynString(p))
	if c, isconst := p.IsConstant(); isconst {
		if math.Abs(c) > leq.eps*scale {
			return fmt.Errorf("%w: 0 = %s (off by %g)", ErrInconsistentEquation, leq.PolynString(p), c)
		}
		T().Debugf("redundant equation")
		return nil
	}
	i, a := p.maxCoeff()
	rhs := p.CopyPolynomial()
	rhs.terms.Remove(i)
	rhs = rhs.Scale(-1 / a) // now x.i = -1/a * p(...)
	T().P("var", leq.VarString(i)).Debugf("## %s = %s", leq.VarString(i), leq.PolynString(rhs))
	for _, j := range sortedKeys(leq.dependents) {
		leq.dependents[j] = leq.dependents[j].Substitute(i, rhs).ZapRelative(leq.eps)
	}
	leq.dependents[i] = rhs
	leq.harvestSolved()
	return nil
}

// AddEqs adds a set of linear equations to the LEQ system.
// See AddEq.
func (leq *LinEqSolver) AddEqs(plist []Polynomial) error {
	if len(plist) == 0 {
		T().Errorf("given empty list of equations")
		return ErrEmptyEquationList
	}
	for k, p := range plist {
		T().Debugf("adding equation %d/%d", k+1, len(plist))
		if err := leq.AddEq(p); err != nil {
			return err
		}
	}
	return nil
}

// Value returns the value of a solved variable x.i.
func (leq *LinEqSolver) Value(i int) (float64, error) {
	if c, ok := leq.solved[i]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsolved, leq.VarString(i))
}

// IsSolved is a predicate: is x.i known?
func (leq *LinEqSolver) IsSolved(i int) bool {
	_, ok := leq.solved[i]
	return ok
}

// Dependents returns the number of variables which depend on still unknown
// variables.
func (leq *LinEqSolver) Dependents() int {
	return len(leq.dependents)
}

// Replace every solved or dependent variable in p by its value or its
// right hand side. The result contains independent variables only.
func (leq *LinEqSolver) substituteKnown(p Polynomial) Polynomial {
	for _, i := range p.Exponents() {
		if i == 0 {
			continue
		}
		if c, ok := leq.solved[i]; ok {
			p = p.Substitute(i, NewConstantPolynomial(c))
		} else if rhs, ok := leq.dependents[i]; ok {
			p = p.Substitute(i, rhs)
		}
	}
	return p
}

// Move every dependent variable with a constant right hand side to the set
// of solved variables.
func (leq *LinEqSolver) harvestSolved() {
	for _, i := range sortedKeys(leq.dependents) {
		if c, isconst := leq.dependents[i].IsConstant(); isconst {
			delete(leq.dependents, i)
			leq.setSolved(i, c)
		}
	}
}

// Mark a variable as solved. Sends a message to the variable resolver.
func (leq *LinEqSolver) setSolved(i int, c float64) {
	T().P("var", leq.VarString(i)).Debugf("#### %s = %g", leq.VarString(i), c)
	leq.solved[i] = c
	if leq.varresolver != nil {
		leq.varresolver.SetVariableSolved(i, c)
	}
}

// VarString returns a readable variable name for an internal variable.
// Uses a VariableResolver, if present.
func (leq *LinEqSolver) VarString(i int) string {
	return TraceStringVar(i, leq.varresolver)
}

// PolynString outputs a polynomial as string. Uses VariableResolver, if present.
func (leq *LinEqSolver) PolynString(p Polynomial) string {
	return p.TraceString(leq.varresolver)
}

// Keys of an equation map in ascending order, for deterministic elimination.
func sortedKeys(m EquationMap) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
