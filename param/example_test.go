package param_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/lensprior/param"
)

// ExampleFromMap decodes a config mapping and resolves it.
func ExampleFromMap() {
	spec, err := param.FromMap(map[string]any{"dist": "beta", "a": 2, "b": 2, "lower": 20, "upper": 25})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	v, err := param.Resolve(rand.New(rand.NewPCG(1, 2)), spec)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(spec.Kind(), v >= 20 && v <= 25)
	// Output:
	// beta true
}
