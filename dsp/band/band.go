// Package band aggregates spectral power estimates over frequency bands.
//
// A band is a half-open interval [Low, High) in Hz. Aggregation sums the
// power of every spectral bin whose center frequency falls inside the band,
// so adjacent bands sharing an edge never double-count a bin.
package band

import (
	"fmt"
	"math"

	"github.com/fieldline/sigcond/dsp/core"
	"github.com/fieldline/sigcond/dsp/spectrum"
)

// Band is a half-open frequency interval [Low, High) in Hz.
type Band struct {
	Low  float64
	High float64
}

// Contains reports whether freq falls inside the band.
func (b Band) Contains(freq float64) bool {
	return freq >= b.Low && freq < b.High
}

// Width returns the band width in Hz.
func (b Band) Width() float64 {
	return b.High - b.Low
}

func (b Band) String() string {
	return fmt.Sprintf("[%g, %g) Hz", b.Low, b.High)
}

func (b Band) validate() error {
	if math.IsNaN(b.Low) || math.IsNaN(b.High) ||
		math.IsInf(b.Low, 0) || math.IsInf(b.High, 0) {
		return fmt.Errorf("band: edges must be finite, got %v: %w", b, core.ErrInvalidBand)
	}
	if b.Low < 0 {
		return fmt.Errorf("band: lower edge must be >= 0, got %v: %w", b, core.ErrInvalidBand)
	}
	if b.High <= b.Low {
		return fmt.Errorf("band: upper edge must exceed lower edge, got %v: %w", b, core.ErrInvalidBand)
	}
	return nil
}

// Split partitions [low, high) into count equally wide contiguous bands.
func Split(low, high float64, count int) ([]Band, error) {
	if count < 1 {
		return nil, fmt.Errorf("band: split count must be >= 1, got %d: %w",
			count, core.ErrInvalidParameter)
	}
	if err := (Band{Low: low, High: high}).validate(); err != nil {
		return nil, err
	}

	bands := make([]Band, count)
	width := (high - low) / float64(count)
	for i := range bands {
		bands[i] = Band{
			Low:  low + float64(i)*width,
			High: low + float64(i+1)*width,
		}
	}
	// Keep the outer edge exact regardless of rounding in the interior.
	bands[count-1].High = high
	return bands, nil
}

// Powers sums est's bin powers over each band, preserving band order.
//
// Bands are independent: they may overlap, touch, or leave gaps, and each
// returned value accounts only for its own band. A band lying entirely
// outside the estimate's frequency axis yields 0.
func Powers(est spectrum.Estimate, bands []Band) ([]float64, error) {
	for _, b := range bands {
		if err := b.validate(); err != nil {
			return nil, err
		}
	}

	out := make([]float64, len(bands))
	for i, b := range bands {
		var sum float64
		for k, f := range est.Frequencies {
			if b.Contains(f) {
				sum += est.Power[k]
			}
		}
		out[i] = sum
	}
	return out, nil
}

// Total returns the sum of est's bin powers across the whole estimate.
func Total(est spectrum.Estimate) float64 {
	return core.Sum(est.Power)
}
