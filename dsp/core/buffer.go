package core

// Reverse reverses buf in place.
func Reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}

// Sum returns the sum of all values in buf.
func Sum(buf []float64) float64 {
	total := 0.0
	for _, v := range buf {
		total += v
	}
	return total
}
