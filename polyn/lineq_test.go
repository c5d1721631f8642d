package polyn

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type res map[int]float64 // a variable resolver for testing purposes

func newResolver() res {
	return make(map[int]float64)
}

func (r res) GetVariableName(n int) string { // get real-life name of x.i
	return string(rune(n + 96)) // 'a', 'b', ...
}

func (r res) SetVariableSolved(n int, v float64) { // message: x.i is solved
	r[n] = v // remember the value to assert test conditions
}

func snapshotPolynomial(p Polynomial) map[int]float64 {
	snap := make(map[int]float64)
	for _, i := range p.Exponents() {
		snap[i] = p.GetCoeffForTerm(i)
	}
	return snap
}

func mustAddEq(t *testing.T, leq *LinEqSolver, p Polynomial) {
	t.Helper()
	assert.NoError(t, leq.AddEq(p))
}

func assertBefore(t *testing.T, s, first, second string) {
	t.Helper()
	iFirst := strings.Index(s, first)
	iSecond := strings.Index(s, second)
	assert.NotEqual(t, -1, iFirst, "missing substring %q", first)
	assert.NotEqual(t, -1, iSecond, "missing substring %q", second)
	assert.Less(t, iFirst, iSecond, "expected %q before %q", first, second)
}

// --- Tests -----------------------------------------------------------------

func TestPolynSimple(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := NewConstantPolynomial(0.5)
	assert.Equal(t, 1, p.TermCount())
	p.SetTerm(1, 3)
	assert.Equal(t, 2, p.TermCount())
	_, isconst := p.IsConstant()
	assert.False(t, isconst)
}

func TestNewRejectsConstantID(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, err := New(1, X{0, 5}, X{2, 1})
	assert.Error(t, err)
	assert.Equal(t, 2, p.TermCount())
}

func TestZapPolyn(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := NewConstantPolynomial(0.5)
	p.SetTerm(1, 0.0000000005)
	p = p.Zap()
	_, isconst := p.IsConstant()
	if !isconst {
		t.Error("Expected polynomial to be of constant type, isn't")
	}
}

func TestPolynAdd(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, _ := New(5, X{1, 1}, X{2, 2})
	p2, _ := New(4, X{1, 6}, X{5, 4})
	pBefore, p2Before := snapshotPolynomial(p), snapshotPolynomial(p2)
	pr := p.Add(p2)
	t.Logf("# pr = %s\n", pr.String())
	assert.InDelta(t, 9.0, pr.GetConstantValue(), 1e-9)
	assert.InDelta(t, 7.0, pr.GetCoeffForTerm(1), 1e-9)
	assert.InDelta(t, 4.0, pr.GetCoeffForTerm(5), 1e-9)
	assert.Equal(t, pBefore, snapshotPolynomial(p), "Add mutated left operand")
	assert.Equal(t, p2Before, snapshotPolynomial(p2), "Add mutated right operand")
}

func TestPolynSubtract(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, _ := New(10, X{1, 7}, X{2, 2})
	q, _ := New(4, X{1, 2}, X{3, 9})
	r := p.Subtract(q)
	assert.InDelta(t, 6.0, r.GetCoeffForTerm(0), 1e-9)
	assert.InDelta(t, 5.0, r.GetCoeffForTerm(1), 1e-9)
	assert.InDelta(t, 2.0, r.GetCoeffForTerm(2), 1e-9)
	assert.InDelta(t, -9.0, r.GetCoeffForTerm(3), 1e-9)
	assert.Equal(t, 1, p.Subtract(p).TermCount(), "p - p should collapse to a constant")
}

func TestPolynMul(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, _ := New(6, X{1, 4}, X{2, 2})
	pr, err := p.Multiply(NewConstantPolynomial(-2.0))
	require.NoError(t, err)
	assert.InDelta(t, -8.0, pr.GetCoeffForTerm(1), 1e-9)
	pr, err = NewConstantPolynomial(0.5).Multiply(p)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, pr.GetConstantValue(), 1e-9)
	_, err = p.Multiply(p)
	assert.Error(t, err, "expected error for non-linear product")
}

func TestPolynSubst(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, _ := New(1, X{1, 10}, X{2, 20})
	p2, _ := New(2, X{3, 30}, X{4, 40})
	q := p.Substitute(1, p2)
	t.Logf("T -> p = %s\n", q.String())
	assert.InDelta(t, 300.0, q.GetCoeffForTerm(3), 1e-9)
	assert.InDelta(t, 21.0, q.GetConstantValue(), 1e-9)
	assert.InDelta(t, 0.0, q.GetCoeffForTerm(1), 1e-9)
	assert.InDelta(t, 10.0, p.GetCoeffForTerm(1), 1e-9, "Substitute mutated p")
}

func TestPolynMaxCoeffTieBehavior(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, _ := New(0, X{1, 5}, X{2, -5}, X{4, 5})
	i, c := p.maxCoeff()
	assert.Equal(t, 1, i, "tie should resolve to lowest ID in ascending scan")
	assert.InDelta(t, 5.0, c, 1e-9)
	p, _ = New(1, X{1, 8}, X{2, 2}, X{3, -9})
	i, c = p.maxCoeff()
	assert.Equal(t, 3, i)
	assert.InDelta(t, -9.0, c, 1e-9)
}

func TestTraceString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, "x.3", TraceStringVar(3, nil))
	r := newResolver()
	assert.Equal(t, "c", TraceStringVar(3, r))
	p, _ := New(0, X{8, 1}, X{2, -1}, X{5, 2})
	s := p.TraceString(r)
	assert.Equal(t, "-b + 2e + h", s)
	assertBefore(t, p.String(), "x.2", "x.5")
}

func TestLinEqSingle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	leq := NewLinEqSolver()
	r := newResolver()
	leq.SetVariableResolver(r)
	p, _ := New(1, X{1, 2}) // 0 = 1 + 2a
	mustAddEq(t, leq, p)
	require.Contains(t, r, 1, "a still unsolved")
	assert.InDelta(t, -0.5, r[1], 1e-9)
	v, err := leq.Value(1)
	assert.NoError(t, err)
	assert.InDelta(t, -0.5, v, 1e-9)
}

func TestLinEqTwoByTwo(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	leq := NewLinEqSolver()
	// a + b = 3, a - b = 1
	p1, _ := New(-3, X{1, 1}, X{2, 1})
	p2, _ := New(-1, X{1, 1}, X{2, -1})
	mustAddEq(t, leq, p1)
	assert.False(t, leq.IsSolved(1))
	assert.Equal(t, 1, leq.Dependents())
	mustAddEq(t, leq, p2)
	a, err := leq.Value(1)
	require.NoError(t, err)
	b, err := leq.Value(2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, a, 1e-9)
	assert.InDelta(t, 1.0, b, 1e-9)
	assert.Equal(t, 0, leq.Dependents())
}

func TestLinEqTridiagonal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// 4a + b = 6, a + 4b + c = 12, b + 4c = 14  =>  a = 1, b = 2, c = 3
	leq := NewLinEqSolver()
	eqs := make([]Polynomial, 3)
	eqs[0], _ = New(-6, X{1, 4}, X{2, 1})
	eqs[1], _ = New(-12, X{1, 1}, X{2, 4}, X{3, 1})
	eqs[2], _ = New(-14, X{2, 1}, X{3, 4})
	require.NoError(t, leq.AddEqs(eqs))
	for i, want := range []float64{1, 2, 3} {
		v, err := leq.Value(i + 1)
		require.NoError(t, err)
		assert.InDelta(t, want, v, 1e-7)
	}
}

func TestLinEqRedundantAndInconsistent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	leq := NewLinEqSolver()
	p, _ := New(-2, X{1, 1}) // a = 2
	mustAddEq(t, leq, p)
	mustAddEq(t, leq, p) // 0 = 0
	q, _ := New(-3, X{1, 1}) // a = 3
	err := leq.AddEq(q)
	assert.True(t, errors.Is(err, ErrInconsistentEquation), "err = %v", err)
	_, err = leq.Value(7)
	assert.True(t, errors.Is(err, ErrUnsolved))
	assert.True(t, errors.Is(leq.AddEqs(nil), ErrEmptyEquationList))
}

func TestZapRelative(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, _ := New(1000, X{1, 1e-9}, X{2, 1}, X{3, 1e-17})
	q := p.ZapRelative(1e-12)
	assert.Equal(t, 3, q.TermCount(), "only x.3 is negligible")
	assert.InDelta(t, 1e-9, q.GetCoeffForTerm(1), 1e-20)
	assert.InDelta(t, 1000.0, q.GetConstantValue(), 1e-9, "constant must be untouched")
	assert.Equal(t, 2, p.Zap().TermCount(), "Zap drops coefficients below ε")
}

func TestLinEqSmallCoefficients(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	leq := NewLinEqSolver()
	p, _ := New(-5e-8, X{1, 1e-8}) // 1e-8 a = 5e-8
	mustAddEq(t, leq, p)
	a, err := leq.Value(1)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, a, 1e-9)
}

func TestLinEqSetEpsilon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// chain a.i - 1e-9 a.i+1 = 1, a.n = 1e6: the coupling must survive
	const n = 6
	leq := NewLinEqSolver()
	leq.SetEpsilon(1e-15)
	for i := 1; i < n; i++ {
		p, _ := New(-1, X{i, 1}, X{i + 1, -1e-9})
		mustAddEq(t, leq, p)
	}
	p, _ := New(-1e6, X{n, 1})
	mustAddEq(t, leq, p)
	want := 1e6
	for i := n - 1; i >= 1; i-- {
		want = 1 + 1e-9*want
		v, err := leq.Value(i)
		require.NoError(t, err)
		assert.InDelta(t, want, v, 1e-12, "a.%d", i)
	}
}
