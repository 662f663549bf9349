// Package iir provides polynomial transfer-function values and single-pass
// IIR filtering for arbitrary filter orders.
//
// A filter is represented as a plain coefficient pair rather than an object
// hierarchy: designers produce Coefficients, appliers consume them. This
// keeps the numerical code inspectable and independently testable.
package iir

import (
	"fmt"
	"math"

	"github.com/fieldline/sigcond/dsp/core"
)

// Coefficients holds the coefficient pair of a rational z-domain transfer
// function
//
//	H(z) = (B[0] + B[1] z^-1 + ... + B[m] z^-m) /
//	       (A[0] + A[1] z^-1 + ... + A[k] z^-k)
//
// Designers normalize A[0] to 1. Filtering tolerates any non-zero A[0] and
// normalizes internally.
type Coefficients struct {
	B []float64 // feedforward (numerator)
	A []float64 // feedback (denominator)
}

// Order returns the filter order, max(len(B), len(A)) - 1.
func (c Coefficients) Order() int {
	n := len(c.B)
	if len(c.A) > n {
		n = len(c.A)
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

// Validate checks the structural invariants: both coefficient sequences
// non-empty, all values finite, and A[0] != 0.
func (c Coefficients) Validate() error {
	if len(c.B) == 0 || len(c.A) == 0 {
		return fmt.Errorf("iir: empty coefficient sequence: %w", core.ErrInvalidParameter)
	}
	if c.A[0] == 0 {
		return fmt.Errorf("iir: a[0] must be non-zero: %w", core.ErrInvalidParameter)
	}
	for _, v := range c.B {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("iir: non-finite numerator coefficient: %w", core.ErrInvalidParameter)
		}
	}
	for _, v := range c.A {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("iir: non-finite denominator coefficient: %w", core.ErrInvalidParameter)
		}
	}
	return nil
}

// Normalized returns a copy with both sequences divided by A[0].
func (c Coefficients) Normalized() Coefficients {
	a0 := c.A[0]
	out := Coefficients{
		B: make([]float64, len(c.B)),
		A: make([]float64, len(c.A)),
	}
	for i, v := range c.B {
		out.B[i] = v / a0
	}
	for i, v := range c.A {
		out.A[i] = v / a0
	}
	return out
}

// Filter runs one causal Direct Form II Transposed pass of the filter over
// src into dst, starting from a zero delay line. dst and src must have the
// same length; they may alias.
func (c Coefficients) Filter(dst, src []float64) {
	b, a := c.padded()
	run(dst, src, b, a, make([]float64, len(b)-1))
}

// FilterConditioned runs one causal pass with the delay line pre-loaded to
// the steady state for a constant input equal to src[0]. For signals that
// begin near steady state this suppresses the start-up transient that a
// zero initial state would inject.
func (c Coefficients) FilterConditioned(dst, src []float64) {
	b, a := c.padded()
	z := make([]float64, len(b)-1)
	if len(src) > 0 {
		stepState(z, b, a, src[0])
	}
	run(dst, src, b, a, z)
}

// padded returns the coefficient sequences divided by A[0] and zero-extended
// to the common length order+1.
func (c Coefficients) padded() (b, a []float64) {
	n := c.Order() + 1
	a0 := c.A[0]
	b = make([]float64, n)
	a = make([]float64, n)
	for i, v := range c.B {
		b[i] = v / a0
	}
	for i, v := range c.A {
		a[i] = v / a0
	}
	return b, a
}

// run is the shared DF2T loop. b and a have equal length, a[0] == 1, and z
// holds len(b)-1 delay-line values.
func run(dst, src, b, a, z []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint

	if len(z) == 0 {
		for i, x := range src {
			dst[i] = b[0] * x
		}
		return
	}

	n := len(b)
	for i, x := range src {
		y := b[0]*x + z[0]
		for j := 0; j < n-2; j++ {
			z[j] = b[j+1]*x - a[j+1]*y + z[j+1]
		}
		z[n-2] = b[n-1]*x - a[n-1]*y
		dst[i] = y
	}
}

// stepState fills z with the DF2T delay-line steady state for constant input
// x0. With y0 = x0 * B(1)/A(1), the state equations become a backward
// recursion. Falls back to a zero state when A(1) is numerically zero.
func stepState(z, b, a []float64, x0 float64) {
	sumA := 0.0
	sumB := 0.0
	for i := range a {
		sumA += a[i]
		sumB += b[i]
	}
	if math.Abs(sumA) < 1e-12 {
		return
	}

	n := len(b)
	y0 := x0 * sumB / sumA
	z[n-2] = b[n-1]*x0 - a[n-1]*y0
	for j := n - 3; j >= 0; j-- {
		z[j] = b[j+1]*x0 - a[j+1]*y0 + z[j+1]
	}
}
