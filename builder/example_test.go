package builder_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/noisefield/builder"
	"github.com/katalvlaran/noisefield/noise"
)

// ExampleBuilder configures a fractal gradient source fluently. Every
// generator reports the canonical [0,1] output range regardless of its
// parameters.
func ExampleBuilder() {
	m, err := builder.New().
		Seed(1234).
		Octaves(5).
		Scale(200).
		Perlin()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(m.MinValue(), m.MaxValue())
	// Output:
	// 0 1
}

// ExampleBuilder_Constant builds a fixed-value field; its bounds collapse
// onto the value itself.
func ExampleBuilder_Constant() {
	m, err := builder.New().Value(0.25).Constant()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(m.Value(100, -100), m.MinValue(), m.MaxValue())
	// Output:
	// 0.25 0.25 0.25
}

// ExampleBuilder_Build shows the fail-loud construction contract: bad
// parameters surface as sentinel errors instead of a fallback generator.
func ExampleBuilder_Build() {
	_, err := builder.New().Octaves(0).Build(builder.Perlin)

	fmt.Println(errors.Is(err, noise.ErrBadOctaves))
	// Output:
	// true
}
