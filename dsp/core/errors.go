package core

import "errors"

// Shared error kinds for the dsp packages. Leaf packages wrap these with
// call-site context via fmt.Errorf and %w, so callers can branch with
// errors.Is regardless of which stage raised the failure.
var (
	// ErrInvalidFrequency reports a design frequency outside (0, Nyquist).
	ErrInvalidFrequency = errors.New("frequency outside (0, Nyquist)")

	// ErrInvalidParameter reports a non-positive quality factor, order or
	// sample rate, or otherwise malformed coefficients.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInsufficientSamples reports an input sequence too short for the
	// requested transform or padding length.
	ErrInsufficientSamples = errors.New("insufficient samples")

	// ErrInvalidBand reports a frequency band with low >= high.
	ErrInvalidBand = errors.New("invalid band")
)
