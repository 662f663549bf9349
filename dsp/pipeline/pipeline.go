// Package pipeline chains filter design, zero-phase filtering, spectral
// estimation and band aggregation into a single conditioning run.
package pipeline

import (
	"fmt"
	"sync"

	"github.com/fieldline/sigcond/dsp/band"
	"github.com/fieldline/sigcond/dsp/filter/design"
	"github.com/fieldline/sigcond/dsp/filter/iir"
	"github.com/fieldline/sigcond/dsp/filter/zerophase"
	"github.com/fieldline/sigcond/dsp/spectrum"
)

// Defaults for the conditioning chain.
const (
	DefaultNotchFreq    = 15.0
	DefaultNotchQ       = 30.0
	DefaultLowpassFreq  = 10.0
	DefaultLowpassOrder = 4
)

// DefaultBandLimit is the upper edge of the default band partition in Hz.
const DefaultBandLimit = 100.0

// DefaultBandCount is the number of bands in the default partition.
const DefaultBandCount = 10

type notchSpec struct {
	freq float64
	q    float64
}

type lowpassSpec struct {
	cutoff float64
	order  int
}

// Analyzer holds designed filters and band layout for repeated runs.
type Analyzer struct {
	sampleRate float64

	notch   *notchSpec
	lowpass *lowpassSpec
	bands   []band.Band

	notchCoeffs   iir.Coefficients
	lowpassCoeffs iir.Coefficients
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithNotch sets the interference notch frequency and quality factor.
// A zero or negative frequency disables the notch stage.
func WithNotch(freqHz, q float64) Option {
	return func(a *Analyzer) {
		if freqHz <= 0 {
			a.notch = nil
			return
		}
		a.notch = &notchSpec{freq: freqHz, q: q}
	}
}

// WithLowpass sets the low-pass cutoff frequency and filter order.
// A zero or negative cutoff disables the low-pass stage.
func WithLowpass(cutoffHz float64, order int) Option {
	return func(a *Analyzer) {
		if cutoffHz <= 0 {
			a.lowpass = nil
			return
		}
		a.lowpass = &lowpassSpec{cutoff: cutoffHz, order: order}
	}
}

// WithBands replaces the default band partition.
func WithBands(bands []band.Band) Option {
	return func(a *Analyzer) {
		a.bands = bands
	}
}

// New creates an Analyzer for the given sample rate, designing all enabled
// filters up front. The defaults reproduce the reference conditioning chain:
// a 15 Hz notch at Q 30, a 4th-order 10 Hz low-pass, and ten 10 Hz wide
// bands covering 0 to 100 Hz.
func New(sampleRate float64, opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		sampleRate: sampleRate,
		notch:      &notchSpec{freq: DefaultNotchFreq, q: DefaultNotchQ},
		lowpass:    &lowpassSpec{cutoff: DefaultLowpassFreq, order: DefaultLowpassOrder},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	if a.bands == nil {
		bands, err := band.Split(0, DefaultBandLimit, DefaultBandCount)
		if err != nil {
			return nil, err
		}
		a.bands = bands
	}

	if a.notch != nil {
		c, err := design.Notch(a.notch.freq, a.notch.q, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("pipeline: notch design: %w", err)
		}
		a.notchCoeffs = c
	}
	if a.lowpass != nil {
		c, err := design.ButterworthLP(a.lowpass.cutoff, a.lowpass.order, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("pipeline: lowpass design: %w", err)
		}
		a.lowpassCoeffs = c
	}
	return a, nil
}

// SampleRate returns the analyzer sample rate in Hz.
func (a *Analyzer) SampleRate() float64 {
	return a.sampleRate
}

// Bands returns the band layout used for aggregation.
func (a *Analyzer) Bands() []band.Band {
	return a.bands
}

// Result holds the outcome of one conditioning run: the cleaned signal and
// the spectral analysis of both the raw input and the cleaned output.
// RawBands and CleanedBands are indexed like the analyzer's band layout.
type Result struct {
	Raw     []float64
	Cleaned []float64

	RawSpectrum     spectrum.Estimate
	CleanedSpectrum spectrum.Estimate

	RawBands     []float64
	CleanedBands []float64
}

// Run conditions samples through the enabled filter stages, each applied
// zero-phase, and analyzes the raw and cleaned signals. The input is not
// modified. The raw-side and cleaned-side analyses are independent and run
// concurrently.
func (a *Analyzer) Run(samples []float64) (Result, error) {
	cleaned := samples
	if a.notch != nil {
		out, err := zerophase.Apply(a.notchCoeffs, cleaned)
		if err != nil {
			return Result{}, fmt.Errorf("pipeline: notch stage: %w", err)
		}
		cleaned = out
	}
	if a.lowpass != nil {
		out, err := zerophase.Apply(a.lowpassCoeffs, cleaned)
		if err != nil {
			return Result{}, fmt.Errorf("pipeline: lowpass stage: %w", err)
		}
		cleaned = out
	}
	if a.notch == nil && a.lowpass == nil {
		// No stage enabled: keep Cleaned distinct from the caller's slice.
		cleaned = append([]float64(nil), samples...)
	}

	res := Result{Raw: samples, Cleaned: cleaned}

	var wg sync.WaitGroup
	var rawErr, cleanedErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		res.RawSpectrum, res.RawBands, rawErr = a.analyze(samples)
	}()
	go func() {
		defer wg.Done()
		res.CleanedSpectrum, res.CleanedBands, cleanedErr = a.analyze(cleaned)
	}()
	wg.Wait()

	if rawErr != nil {
		return Result{}, fmt.Errorf("pipeline: raw analysis: %w", rawErr)
	}
	if cleanedErr != nil {
		return Result{}, fmt.Errorf("pipeline: cleaned analysis: %w", cleanedErr)
	}
	return res, nil
}

func (a *Analyzer) analyze(samples []float64) (spectrum.Estimate, []float64, error) {
	est, err := spectrum.PSD(samples, a.sampleRate)
	if err != nil {
		return spectrum.Estimate{}, nil, err
	}
	powers, err := band.Powers(est, a.bands)
	if err != nil {
		return spectrum.Estimate{}, nil, err
	}
	return est, powers, nil
}
