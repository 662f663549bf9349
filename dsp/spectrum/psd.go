package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"

	"github.com/fieldline/sigcond/dsp/core"
)

// Estimate is a one-sided spectral power estimate: parallel bin slices
// covering frequencies from 0 up to (exclusive) the Nyquist frequency in
// ascending order, spaced sampleRate/N apart for an N-sample input.
type Estimate struct {
	Frequencies []float64 // bin center frequencies in Hz
	Power       []float64 // squared transform magnitude per bin
}

// Bins returns the number of spectral bins.
func (e Estimate) Bins() int {
	return len(e.Frequencies)
}

// PSD computes the one-sided periodogram of samples at the given sample rate.
//
// The full-length transform of the buffer is taken with no windowing, the
// redundant negative-frequency half is discarded, and each retained bin
// carries the squared magnitude of its complex coefficient. The estimate is
// deliberately not normalized by N: it is a comparative measure between
// outputs of this same procedure, not a calibrated physical density.
func PSD(samples []float64, sampleRate float64) (Estimate, error) {
	n := len(samples)
	if n < 2 {
		return Estimate{}, fmt.Errorf("spectrum: transform needs at least 2 samples, got %d: %w",
			n, core.ErrInsufficientSamples)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return Estimate{}, fmt.Errorf("spectrum: sample rate must be > 0, got %v: %w",
			sampleRate, core.ErrInvalidParameter)
	}

	bins, err := transform(samples)
	if err != nil {
		return Estimate{}, err
	}

	half := n / 2
	freqs := make([]float64, half)
	step := sampleRate / float64(n)
	for k := range freqs {
		freqs[k] = float64(k) * step
	}

	return Estimate{
		Frequencies: freqs,
		Power:       Power(bins[:half]),
	}, nil
}

// transform computes the full complex DFT of a real buffer. Power-of-two
// lengths go through a cached-plan FFT; any other length falls back to the
// go-dsp implementation, which handles arbitrary N via Bluestein's algorithm.
func transform(samples []float64) ([]complex128, error) {
	n := len(samples)
	if n&(n-1) != 0 {
		return fft.FFTReal(samples), nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan for %d samples: %w", n, err)
	}

	in := make([]complex128, n)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}
	return out, nil
}
