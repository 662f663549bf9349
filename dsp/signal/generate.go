// Package signal generates deterministic test and demo signals.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/fieldline/sigcond/dsp/core"
)

// Generator creates deterministic signals at a fixed sample rate.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed for noise generation. The default seed is 1.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a signal generator for the given sample rate in Hz.
func NewGenerator(sampleRate float64, opts ...Option) (*Generator, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("signal: sample rate must be > 0, got %v: %w",
			sampleRate, core.ErrInvalidParameter)
	}
	g := &Generator{
		sampleRate: sampleRate,
		seed:       1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g, nil
}

// SampleRate returns the generator sample rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Sine generates a sine wave of the given frequency and amplitude.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: sine samples must be > 0, got %d: %w",
			samples, core.ErrInvalidParameter)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: noise samples must be > 0, got %d: %w",
			samples, core.ErrInvalidParameter)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0, got %v: %w",
			amplitude, core.ErrInvalidParameter)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Mix sums equal-length signals into a new slice.
func Mix(signals ...[]float64) ([]float64, error) {
	if len(signals) == 0 {
		return nil, fmt.Errorf("signal: mix needs at least one input: %w",
			core.ErrInvalidParameter)
	}
	n := len(signals[0])
	for i, s := range signals[1:] {
		if len(s) != n {
			return nil, fmt.Errorf("signal: mix input %d has length %d, want %d: %w",
				i+1, len(s), n, core.ErrInvalidParameter)
		}
	}

	out := make([]float64, n)
	for _, s := range signals {
		for i, v := range s {
			out[i] += v
		}
	}
	return out, nil
}

// Normalize scales data to the target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0, got %v: %w",
			targetPeak, core.ErrInvalidParameter)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty: %w",
			core.ErrInsufficientSamples)
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
