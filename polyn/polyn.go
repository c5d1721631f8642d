// Package polyn is for arithmetic with linear polynomials and linear equations.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"bytes"
	"fmt"
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sketchpad"
)

// T traces to the equations tracer.
func T() tracing.Trace {
	return tracing.Select("sketchpad.equations")
}

// X is a helper for quick construction of polynomials.
// It denotes a term
//
//	C⋅x[I]
//
// I > 0
type X struct {
	I int     // variable ID
	C float64 // coefficient
}

// New creates a polynomial, given a constant and a list of terms.
//
// Use it as
//
//	polyn.New(8, polyn.X{2,5}, polyn.X{1,2/3} )
//
// to get
//
//	P(x) = 8 + 5b + 2/3a
func New(c float64, tms ...X) (Polynomial, error) {
	p := NewConstantPolynomial(c)
	var err error
	for _, t := range tms {
		if t.I < 1 {
			err = fmt.Errorf("variable ID must be at least 1, skipping term %g⋅x.%d", t.C, t.I)
		} else {
			p.SetTerm(t.I, p.GetCoeffForTerm(t.I)+t.C)
		}
	}
	return p.dropZeros(), err
}

// Polynomial is a type for linear polynomials
//
//	c + a.1 x.1 + a.2 x.2 + ... a.n x.n .
//
// We store the coefficients only, ordered by variable ID. Key 0 is the
// constant term and is always present.
type Polynomial struct {
	terms *treemap.Map // int -> float64
}

// NewConstantPolynomial creates a Polynomial consisting of just a constant term.
func NewConstantPolynomial(c float64) Polynomial {
	p := Polynomial{terms: treemap.NewWithIntComparator()}
	p.terms.Put(0, c)
	return p
}

func (p *Polynomial) checkTerms() {
	if p.terms == nil {
		p.terms = treemap.NewWithIntComparator()
		p.terms.Put(0, 0.0)
	}
}

// each calls fn for every term, in ascending order of variable IDs.
func (p Polynomial) each(fn func(i int, a float64)) {
	if p.terms == nil {
		fn(0, 0)
		return
	}
	it := p.terms.Iterator()
	for it.Next() {
		fn(it.Key().(int), it.Value().(float64))
	}
}

// SetTerm sets the coefficient for a term a.i within a Polynomial.
// For i=0, sets the constant term. SetTerm modifies p.
func (p Polynomial) SetTerm(i int, scale float64) Polynomial {
	p.checkTerms()
	p.terms.Put(i, scale)
	return p
}

// GetCoeffForTerm gets the coefficient for term #i.
//
// Example:
//
//	p = x + 3x.2
//
// ⇒
//
//	coeff(2) = 3
func (p Polynomial) GetCoeffForTerm(i int) float64 {
	if p.terms == nil {
		return 0
	}
	if a, found := p.terms.Get(i); found {
		return a.(float64)
	}
	return 0
}

// GetConstantValue returns the constant term of a polynomial.
func (p Polynomial) GetConstantValue() float64 {
	return p.GetCoeffForTerm(0)
}

// IsValid checks if this a correctly initialized polynomial.
func (p Polynomial) IsValid() bool {
	return p.terms != nil
}

// CopyPolynomial makes a copy of a numeric Polynomial.
func (p Polynomial) CopyPolynomial() Polynomial {
	p1 := NewConstantPolynomial(0)
	p.each(func(i int, a float64) {
		p1.terms.Put(i, a)
	})
	return p1
}

// Exponents returns the IDs of all terms of p, including 0 for the
// constant term, in ascending order.
func (p Polynomial) Exponents() []int {
	ids := make([]int, 0, p.TermCount())
	p.each(func(i int, _ float64) {
		ids = append(ids, i)
	})
	return ids
}

// TermCount returns the number of terms, including the constant term.
func (p Polynomial) TermCount() int {
	if p.terms == nil {
		return 1
	}
	return p.terms.Size()
}

// Add adds two Polynomials. Returns a new Polynomial.
func (p Polynomial) Add(p2 Polynomial) Polynomial {
	return p.addOrSub(p2, 1)
}

// Subtract subtracts two Polynomials. Returns a new Polynomial.
func (p Polynomial) Subtract(p2 Polynomial) Polynomial {
	return p.addOrSub(p2, -1)
}

func (p Polynomial) addOrSub(p2 Polynomial, sign float64) Polynomial {
	p1 := p.CopyPolynomial()
	p2.each(func(i int, a float64) {
		p1.terms.Put(i, p1.GetCoeffForTerm(i)+sign*a)
	})
	return p1.dropZeros()
}

// Scale multiplies all coefficients by c. Returns a new Polynomial.
func (p Polynomial) Scale(c float64) Polynomial {
	p1 := NewConstantPolynomial(0)
	p.each(func(i int, a float64) {
		p1.terms.Put(i, a*c)
	})
	return p1.dropZeros()
}

// Multiply multiplies two Polynomials. One of both must be a constant,
// otherwise the product would not be linear.
func (p Polynomial) Multiply(p2 Polynomial) (Polynomial, error) {
	if c, isconst := p2.IsConstant(); isconst {
		return p.Scale(c), nil
	}
	if c, isconst := p.IsConstant(); isconst {
		return p2.Scale(c), nil
	}
	return Polynomial{}, fmt.Errorf("cannot multiply non-constant polynomials %s and %s", p, p2)
}

// Substitute replaces variable x.i within p by polynomial q.
// If p does not contain x.i, a copy of p is returned.
func (p Polynomial) Substitute(i int, q Polynomial) Polynomial {
	a := p.GetCoeffForTerm(i)
	if i == 0 || a == 0 {
		return p.CopyPolynomial()
	}
	p1 := p.CopyPolynomial()
	p1.terms.Remove(i)
	return p1.Add(q.Scale(a))
}

// Zap eliminates all terms with coefficient=0 from a polynomial, where
// coefficients |a| ≤ ε count as 0. The constant term is kept, even if it is 0.
func (p Polynomial) Zap() Polynomial {
	return p.zapBelow(sketchpad.Epsilon, true)
}

// ZapRelative eliminates all terms whose coefficient is negligible compared
// to the largest coefficient of a variable, i.e. |a.i| ≤ eps⋅max|a.j|.
// The constant term is left untouched.
func (p Polynomial) ZapRelative(eps float64) Polynomial {
	return p.zapBelow(eps*p.magnitude(), false)
}

// dropZeros eliminates terms with a coefficient of exactly 0.
func (p Polynomial) dropZeros() Polynomial {
	return p.zapBelow(0, false)
}

func (p Polynomial) zapBelow(limit float64, zapConst bool) Polynomial {
	p.checkTerms()
	var zeros []int
	p.each(func(i int, a float64) {
		if i != 0 && math.Abs(a) <= limit {
			zeros = append(zeros, i)
		}
	})
	for _, i := range zeros {
		p.terms.Remove(i)
	}
	if zapConst {
		p.terms.Put(0, sketchpad.Zap(p.GetConstantValue()))
	}
	return p
}

// magnitude is the largest absolute coefficient of a variable, or 0 for
// constant polynomials.
func (p Polynomial) magnitude() float64 {
	var m float64
	p.each(func(i int, a float64) {
		if i != 0 {
			m = math.Max(m, math.Abs(a))
		}
	})
	return m
}

// IsConstant checks whether
// a Polynomial is a constant, i.e. p = { c }? Returns the constant and a flag.
func (p Polynomial) IsConstant() (float64, bool) {
	return p.GetConstantValue(), p.TermCount() == 1
}

// maxCoeff finds the variable with the coefficient of maximum absolute
// value. Ties are broken by the lower variable ID.
func (p Polynomial) maxCoeff() (int, float64) {
	var maxi int
	var maxc, coeff float64
	p.each(func(i int, a float64) {
		if i != 0 && math.Abs(a) > maxc {
			maxi, maxc, coeff = i, math.Abs(a), a
		}
	})
	return maxi, coeff
}

// String creates a readable string representation for a Polynomial.
// Uses internal variable representations x.<n> where n corresponds to
// the variable's ID.
func (p Polynomial) String() string {
	return p.TraceString(nil)
}

// TraceString creates a string representation for a Polynomial. Uses a variable name
// resolver to print 'real' variable identifiers. If no resolver is
// present, variables are printed in a generic form: { a.i x.i }.
func (p Polynomial) TraceString(resolv VariableResolver) string {
	var buffer bytes.Buffer
	indent := false // no sign before first term
	for _, i := range p.Exponents() {
		a := p.GetCoeffForTerm(i)
		if i == 0 {
			if resolv == nil {
				buffer.WriteString(fmt.Sprintf("{ %g } ", sketchpad.Round(a)))
			} else if !sketchpad.Is0(a) {
				buffer.WriteString(fmt.Sprintf("%g", sketchpad.Round(a)))
				indent = true
			}
			continue
		}
		if resolv == nil {
			buffer.WriteString(fmt.Sprintf("{ %g x.%d } ", sketchpad.Round(a), i))
			continue
		}
		if indent {
			if a < 0 {
				buffer.WriteString(" - ")
			} else {
				buffer.WriteString(" + ")
			}
		} else if a < 0 {
			buffer.WriteString("-")
		}
		indent = true
		if !sketchpad.Is1(math.Abs(a)) {
			buffer.WriteString(fmt.Sprintf("%g", math.Abs(a)))
		}
		buffer.WriteString(resolv.GetVariableName(i))
	}
	return buffer.String()
}

// TraceStringVar is a helper for tracing output. Parameter resolv may be nil.
func TraceStringVar(i int, resolv VariableResolver) string {
	if resolv == nil {
		return fmt.Sprintf("x.%d", i)
	}
	return resolv.GetVariableName(i)
}
