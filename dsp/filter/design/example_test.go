package design_test

import (
	"fmt"

	"github.com/fieldline/sigcond/dsp/filter/design"
)

func ExampleNotch() {
	c, _ := design.Notch(15, 30, 200)
	fmt.Printf("order %d, |H(15)|^2 = %.6f, |H(5)|^2 = %.3f\n",
		c.Order(), c.MagnitudeSquared(15, 200), c.MagnitudeSquared(5, 200))
	// Output:
	// order 2, |H(15)|^2 = 0.000000, |H(5)|^2 = 1.000
}

func ExampleButterworthLP() {
	c, _ := design.ButterworthLP(10, 4, 200)
	fmt.Printf("order %d, |H(cutoff)|^2 = %.3f\n", c.Order(), c.MagnitudeSquared(10, 200))
	// Output:
	// order 4, |H(cutoff)|^2 = 0.500
}
