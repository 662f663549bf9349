package iir

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^jw) at the given
// frequency (Hz) and sample rate (Hz).
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	zinv := cmplx.Exp(complex(0, -w))

	return polyEval(c.B, zinv) / polyEval(c.A, zinv)
}

// MagnitudeSquared returns |H(f)|^2.
func (c Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	h := c.Response(freqHz, sampleRate)
	return real(h)*real(h) + imag(h)*imag(h)
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// polyEval evaluates a polynomial in z^-1 by Horner's method.
func polyEval(coeffs []float64, zinv complex128) complex128 {
	acc := complex(0, 0)
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*zinv + complex(coeffs[i], 0)
	}
	return acc
}
