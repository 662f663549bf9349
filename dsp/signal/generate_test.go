package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/fieldline/sigcond/dsp/core"
)

func TestSine(t *testing.T) {
	g, err := NewGenerator(200)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	s, err := g.Sine(5, 0.8, 1000)
	if err != nil {
		t.Fatalf("Sine: %v", err)
	}
	if len(s) != 1000 {
		t.Fatalf("len = %d, want 1000", len(s))
	}

	// 5 Hz at 200 Hz sampling: one period every 40 samples.
	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	if !core.NearlyEqual(s[10], 0.8, 1e-12) {
		t.Fatalf("quarter period = %v, want 0.8", s[10])
	}
	if !core.NearlyEqual(s[40], 0, 1e-9) {
		t.Fatalf("full period = %v, want 0", s[40])
	}
}

func TestWhiteNoise(t *testing.T) {
	t.Run("deterministic for equal seeds", func(t *testing.T) {
		g1, _ := NewGenerator(200, WithSeed(42))
		g2, _ := NewGenerator(200, WithSeed(42))

		n1, err := g1.WhiteNoise(1, 16)
		if err != nil {
			t.Fatalf("WhiteNoise: %v", err)
		}
		n2, err := g2.WhiteNoise(1, 16)
		if err != nil {
			t.Fatalf("WhiteNoise: %v", err)
		}
		for i := range n1 {
			if n1[i] != n2[i] {
				t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
			}
		}
	})

	t.Run("different seeds differ", func(t *testing.T) {
		g1, _ := NewGenerator(200, WithSeed(1))
		g2, _ := NewGenerator(200, WithSeed(2))

		n1, _ := g1.WhiteNoise(1, 16)
		n2, _ := g2.WhiteNoise(1, 16)

		same := true
		for i := range n1 {
			if n1[i] != n2[i] {
				same = false
				break
			}
		}
		if same {
			t.Fatal("expected different seeds to produce different noise")
		}
	})

	t.Run("bounded by amplitude", func(t *testing.T) {
		g, _ := NewGenerator(200, WithSeed(7))
		n, err := g.WhiteNoise(0.2, 1000)
		if err != nil {
			t.Fatalf("WhiteNoise: %v", err)
		}
		for i, v := range n {
			if math.Abs(v) > 0.2 {
				t.Fatalf("sample %d = %v exceeds amplitude 0.2", i, v)
			}
		}
	})
}

func TestMix(t *testing.T) {
	out, err := Mix(
		[]float64{1, 2, 3},
		[]float64{10, 20, 30},
	)
	if err != nil {
		t.Fatalf("Mix: %v", err)
	}
	want := []float64{11, 22, 33}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}

	if _, err := Mix(); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("empty mix error = %v, want ErrInvalidParameter", err)
	}
	if _, err := Mix([]float64{1, 2}, []float64{1}); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("length mismatch error = %v, want ErrInvalidParameter", err)
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if out[1] != 0.5 {
		t.Fatalf("peak = %v, want 0.5", out[1])
	}

	silent, err := Normalize([]float64{0, 0, 0}, 1)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	for i, v := range silent {
		if v != 0 {
			t.Fatalf("silent input sample %d = %v, want 0", i, v)
		}
	}

	if _, err := Normalize(nil, 1); !errors.Is(err, core.ErrInsufficientSamples) {
		t.Fatalf("empty input error = %v, want ErrInsufficientSamples", err)
	}
}

func TestGeneratorErrors(t *testing.T) {
	if _, err := NewGenerator(0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("zero sample rate error = %v, want ErrInvalidParameter", err)
	}
	if _, err := NewGenerator(math.NaN()); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("NaN sample rate error = %v, want ErrInvalidParameter", err)
	}

	g, _ := NewGenerator(200)
	if _, err := g.Sine(5, 1, 0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("zero samples error = %v, want ErrInvalidParameter", err)
	}
	if _, err := g.WhiteNoise(-1, 8); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("negative amplitude error = %v, want ErrInvalidParameter", err)
	}
}
