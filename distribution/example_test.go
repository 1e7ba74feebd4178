package distribution_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/lensprior/distribution"
)

// ExampleSampleNormal draws an Einstein radius that must stay non-negative.
func ExampleSampleNormal() {
	rng := rand.New(rand.NewPCG(1, 2))
	thetaE, err := distribution.SampleNormal(rng, 1.0, 0.1, distribution.WithLower(0))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(thetaE >= 0)
	// Output:
	// true
}

// ExampleSampleBeta draws a source amplitude on [10, 20].
func ExampleSampleBeta() {
	rng := rand.New(rand.NewPCG(1, 2))
	amp, err := distribution.SampleBeta(rng, 2, 2, distribution.WithBounds(10, 20))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(amp >= 10 && amp <= 20)
	// Output:
	// true
}

// ExampleNewMultivarNormal draws a correlated lens centroid inside a box.
func ExampleNewMultivarNormal() {
	mvn, err := distribution.NewMultivarNormal(
		[]float64{0, 0},
		[][]float64{{0.01, 0.005}, {0.005, 0.01}},
		[]float64{-0.5}, // broadcast to both dimensions
		[]float64{0.5},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	rng := rand.New(rand.NewPCG(3, 4))
	x := mvn.Rand(rng)
	fmt.Println(len(x), x[0] > -0.5 && x[0] < 0.5, x[1] > -0.5 && x[1] < 0.5)
	// Output:
	// 2 true true
}
