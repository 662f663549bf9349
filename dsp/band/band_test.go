package band

import (
	"errors"
	"math"
	"testing"

	"github.com/fieldline/sigcond/dsp/core"
	"github.com/fieldline/sigcond/dsp/spectrum"
	"github.com/fieldline/sigcond/internal/testutil"
)

func TestBandContains(t *testing.T) {
	b := Band{Low: 10, High: 20}

	tests := []struct {
		freq float64
		want bool
	}{
		{freq: 10, want: true},  // lower edge included
		{freq: 15, want: true},
		{freq: 20, want: false}, // upper edge excluded
		{freq: 9.999, want: false},
		{freq: 19.999, want: true},
		{freq: 0, want: false},
	}

	for _, tt := range tests {
		if got := b.Contains(tt.freq); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.freq, got, tt.want)
		}
	}
}

func TestSplit(t *testing.T) {
	bands, err := Split(0, 100, 10)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(bands) != 10 {
		t.Fatalf("got %d bands, want 10", len(bands))
	}

	for i, b := range bands {
		if !core.NearlyEqual(b.Low, float64(i*10), 1e-9) {
			t.Fatalf("band %d low = %v, want %v", i, b.Low, i*10)
		}
		if !core.NearlyEqual(b.High, float64((i+1)*10), 1e-9) {
			t.Fatalf("band %d high = %v, want %v", i, b.High, (i+1)*10)
		}
	}

	// Contiguous: every upper edge is the next lower edge.
	for i := 1; i < len(bands); i++ {
		if bands[i].Low != bands[i-1].High {
			t.Fatalf("gap between band %d and %d", i-1, i)
		}
	}
	if bands[9].High != 100 {
		t.Fatalf("outer edge = %v, want exactly 100", bands[9].High)
	}
}

func TestSplit_Errors(t *testing.T) {
	tests := []struct {
		name      string
		low, high float64
		count     int
		want      error
	}{
		{name: "zero count", low: 0, high: 100, count: 0, want: core.ErrInvalidParameter},
		{name: "negative count", low: 0, high: 100, count: -3, want: core.ErrInvalidParameter},
		{name: "inverted range", low: 50, high: 10, count: 5, want: core.ErrInvalidBand},
		{name: "empty range", low: 10, high: 10, count: 5, want: core.ErrInvalidBand},
		{name: "negative low", low: -5, high: 10, count: 5, want: core.ErrInvalidBand},
		{name: "nan edge", low: 0, high: math.NaN(), count: 5, want: core.ErrInvalidBand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Split(tt.low, tt.high, tt.count); !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPowers_PartitionIsAdditive(t *testing.T) {
	sr := 200.0
	sig := testutil.Add(
		testutil.Sine(5, sr, 0.8, 1000),
		testutil.Sine(15, sr, 0.5, 1000),
		testutil.Noise(42, 0.2, 1000),
	)
	est, err := spectrum.PSD(sig, sr)
	if err != nil {
		t.Fatalf("PSD: %v", err)
	}

	bands, err := Split(0, sr/2, 10)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	powers, err := Powers(est, bands)
	if err != nil {
		t.Fatalf("Powers: %v", err)
	}
	if len(powers) != len(bands) {
		t.Fatalf("got %d powers for %d bands", len(powers), len(bands))
	}

	// A partition of the full frequency axis accounts for every bin once.
	var sum float64
	for _, p := range powers {
		sum += p
	}
	total := Total(est)
	testutil.RequireNearlyEqual(t, sum, total, 1e-9*total)
}

func TestPowers_BandSelection(t *testing.T) {
	sr := 200.0
	est, err := spectrum.PSD(testutil.Sine(15, sr, 1, 1000), sr)
	if err != nil {
		t.Fatalf("PSD: %v", err)
	}

	powers, err := Powers(est, []Band{
		{Low: 0, High: 10},
		{Low: 10, High: 20},
		{Low: 20, High: 100},
	})
	if err != nil {
		t.Fatalf("Powers: %v", err)
	}

	if powers[1] < 1000*powers[0] || powers[1] < 1000*powers[2] {
		t.Fatalf("tone power not concentrated in [10, 20): got %v", powers)
	}
}

func TestPowers_EdgeCases(t *testing.T) {
	sr := 200.0
	est, err := spectrum.PSD(testutil.Sine(5, sr, 1, 1000), sr)
	if err != nil {
		t.Fatalf("PSD: %v", err)
	}

	t.Run("empty band list", func(t *testing.T) {
		powers, err := Powers(est, nil)
		if err != nil {
			t.Fatalf("Powers: %v", err)
		}
		if len(powers) != 0 {
			t.Fatalf("got %d powers, want 0", len(powers))
		}
	})

	t.Run("band above Nyquist", func(t *testing.T) {
		powers, err := Powers(est, []Band{{Low: 150, High: 200}})
		if err != nil {
			t.Fatalf("Powers: %v", err)
		}
		if powers[0] != 0 {
			t.Fatalf("out-of-range band power = %v, want 0", powers[0])
		}
	})

	t.Run("overlapping bands are independent", func(t *testing.T) {
		powers, err := Powers(est, []Band{
			{Low: 0, High: 100},
			{Low: 0, High: 100},
		})
		if err != nil {
			t.Fatalf("Powers: %v", err)
		}
		if powers[0] != powers[1] {
			t.Fatalf("identical bands disagree: %v vs %v", powers[0], powers[1])
		}
	})

	t.Run("order preserved", func(t *testing.T) {
		powers, err := Powers(est, []Band{
			{Low: 20, High: 100}, // quiet first
			{Low: 0, High: 10},   // tone band second
		})
		if err != nil {
			t.Fatalf("Powers: %v", err)
		}
		if powers[1] <= powers[0] {
			t.Fatalf("band order not preserved: %v", powers)
		}
	})

	t.Run("invalid band rejected", func(t *testing.T) {
		if _, err := Powers(est, []Band{{Low: 20, High: 10}}); !errors.Is(err, core.ErrInvalidBand) {
			t.Fatalf("error = %v, want ErrInvalidBand", err)
		}
	})
}
