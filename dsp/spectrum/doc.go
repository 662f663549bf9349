// Package spectrum estimates how signal power is distributed over frequency.
//
// The central entry point is PSD, an unnormalized one-sided periodogram of a
// full sample buffer. Lower-level helpers convert complex transform bins to
// power and magnitude values.
package spectrum
