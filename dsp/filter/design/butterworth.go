package design

import (
	"fmt"
	"math"

	"github.com/fieldline/sigcond/dsp/core"
	"github.com/fieldline/sigcond/dsp/filter/iir"
)

// ButterworthLP designs a lowpass Butterworth filter of the given order at
// freq (Hz), returned as a single order+1/order+1 polynomial pair.
//
// The design follows the classic recipe: the analog prototype places pole
// pairs on the left half of the unit circle, realized here as one biquadratic
// section per pair with Q = 1/(2 sin θ) and a first-order remainder for odd
// orders. Each section is mapped to the digital domain with a bilinear
// transform whose tan pre-warp puts the digital -3 dB point exactly at freq.
// The section polynomials are then convolved into one transfer function.
func ButterworthLP(freq float64, order int, sampleRate float64) (iir.Coefficients, error) {
	w0, err := normalizedW0(freq, sampleRate)
	if err != nil {
		return iir.Coefficients{}, fmt.Errorf("design: butterworth: %w", err)
	}
	if order < 1 {
		return iir.Coefficients{}, fmt.Errorf("design: butterworth order must be >= 1, got %d: %w",
			order, core.ErrInvalidParameter)
	}

	b := []float64{1}
	a := []float64{1}

	for i := order/2 - 1; i >= 0; i-- {
		sb, sa := lowpassSection(w0, butterworthQ(order, i))
		b = polyMul(b, sb)
		a = polyMul(a, sa)
	}
	if order%2 != 0 {
		sb, sa := firstOrderLowpass(freq, sampleRate)
		b = polyMul(b, sb)
		a = polyMul(a, sa)
	}

	return normalized(b, a), nil
}

// butterworthQ returns the quality factor for one Butterworth pole pair.
// index ranges from 0 to (order/2 - 1).
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return 1 / math.Sqrt2 // default Q
	}

	return 1 / (2 * s)
}

// lowpassSection designs one second-order lowpass section at radian
// frequency w0 with quality factor q. The RBJ biquadratic form already folds
// in the bilinear transform with frequency pre-warp.
func lowpassSection(w0, q float64) (b, a []float64) {
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b = []float64{(1 - cw) / 2, 1 - cw, (1 - cw) / 2}
	a = []float64{1 + alpha, -2 * cw, 1 - alpha}
	return b, a
}

// firstOrderLowpass designs the first-order remainder section used for odd
// orders, via the pre-warped bilinear constant k = tan(pi*freq/sampleRate).
func firstOrderLowpass(freq, sampleRate float64) (b, a []float64) {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	b = []float64{k * norm, k * norm}
	a = []float64{1, (k - 1) * norm}
	return b, a
}
