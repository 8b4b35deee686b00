package selector_test

import (
	"fmt"

	"github.com/katalvlaran/noisefield/field"
	"github.com/katalvlaran/noisefield/selector"
)

// axisControl exposes the x coordinate as a [0,1] control signal.
type axisControl struct{}

func (axisControl) Value(x, _ float32) float32 { return x }
func (axisControl) MinValue() float32          { return 0 }
func (axisControl) MaxValue() float32          { return 1 }

// ExampleNewSelect switches hard between two fields at a threshold on
// the control value.
func ExampleNewSelect() {
	sea := field.NewConstant(0.1)
	land := field.NewConstant(0.9)

	s, err := selector.NewSelect(axisControl{}, sea, land, 0.5, 0, field.Linear)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(s.Value(0.2, 0), s.Value(0.8, 0))
	// Output:
	// 0.1 0.9
}

// ExampleNewBlend mixes two fields continuously, with the control value
// as the blend factor.
func ExampleNewBlend() {
	bl, err := selector.NewBlend(axisControl{}, field.Zero, field.One, field.Linear)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(bl.Value(0, 0), bl.Value(0.25, 0), bl.Value(1, 0))
	// Output:
	// 0 0.25 1
}

// ExampleNewMultiBlend partitions the control range into one equal cell
// per source; each cell center maps onto exactly one source.
func ExampleNewMultiBlend() {
	mb, err := selector.NewMultiBlend(0.5, field.Linear, axisControl{},
		field.NewConstant(0.2),
		field.NewConstant(0.5),
		field.NewConstant(0.8),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Cell centers for three sources sit at 1/6, 1/2 and 5/6.
	fmt.Println(mb.Value(0.5, 0))
	// Output:
	// 0.5
}
