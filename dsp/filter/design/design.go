// Package design synthesizes IIR filter coefficients from frequency-domain
// specifications. All designers are pure functions returning normalized
// transfer-function polynomials (a[0] = 1).
package design

import (
	"fmt"
	"math"

	"github.com/fieldline/sigcond/dsp/core"
	"github.com/fieldline/sigcond/dsp/filter/iir"
)

// Notch designs a second-order notch filter centered at freq (Hz).
//
// The zero pair sits exactly on the unit circle at the target angle, so the
// response is a true null at freq. The pole pair shares the angle with radius
// below 1 controlled by q: higher quality factors pull the poles toward the
// unit circle and narrow the rejection band.
func Notch(freq, q, sampleRate float64) (iir.Coefficients, error) {
	w0, err := normalizedW0(freq, sampleRate)
	if err != nil {
		return iir.Coefficients{}, fmt.Errorf("design: notch: %w", err)
	}
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return iir.Coefficients{}, fmt.Errorf("design: notch quality factor must be > 0, got %v: %w",
			q, core.ErrInvalidParameter)
	}

	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b := []float64{1, -2 * cw, 1}
	a := []float64{1 + alpha, -2 * cw, 1 - alpha}

	return normalized(b, a), nil
}

// normalizedW0 converts freq (Hz) to the radian frequency on the unit circle,
// validating it against the open interval (0, Nyquist).
func normalizedW0(freq, sampleRate float64) (float64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("sample rate must be > 0, got %v: %w", sampleRate, core.ErrInvalidParameter)
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, fmt.Errorf("frequency %v Hz not in (0, %v): %w", freq, nyquist, core.ErrInvalidFrequency)
	}

	return 2 * math.Pi * freq / sampleRate, nil
}

// normalized divides both polynomials by a[0].
func normalized(b, a []float64) iir.Coefficients {
	a0 := a[0]
	for i := range b {
		b[i] /= a0
	}
	for i := range a {
		a[i] /= a0
	}
	return iir.Coefficients{B: b, A: a}
}

// polyMul multiplies two polynomials in z^-1 (coefficient convolution).
func polyMul(p, q []float64) []float64 {
	out := make([]float64, len(p)+len(q)-1)
	for i, pv := range p {
		for j, qv := range q {
			out[i+j] += pv * qv
		}
	}
	return out
}
