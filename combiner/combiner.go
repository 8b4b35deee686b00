// Package combiner: the shared fold node and its four reductions.
package combiner

import (
	"fmt"

	"github.com/katalvlaran/noisefield/field"
)

// Combiner folds an ordered child sequence with an associative reduction.
// Immutable after construction; bounds are derived once from the children.
type Combiner struct {
	children []field.Module
	combine  func(total, value float32) float32
	min      float32
	max      float32
}

// Value implements field.Module: evaluate every child, fold left to right.
// O(children) child evaluations.
func (c *Combiner) Value(x, y float32) float32 {
	total := c.children[0].Value(x, y)
	for _, child := range c.children[1:] {
		total = c.combine(total, child.Value(x, y))
	}

	return total
}

// MinValue implements field.Module.
func (c *Combiner) MinValue() float32 { return c.min }

// MaxValue implements field.Module.
func (c *Combiner) MaxValue() float32 { return c.max }

// Add returns a combiner summing its children.
func Add(modules ...field.Module) (*Combiner, error) {
	return build(modules,
		func(total, v float32) float32 { return total + v },
		func(mn, mx float32, child field.Module) (float32, float32) {
			return mn + child.MinValue(), mx + child.MaxValue()
		})
}

// Multiply returns a combiner multiplying its children. Bound folding
// takes the min/max over all four sign-corner products, so children with
// negative ranges are handled exactly.
func Multiply(modules ...field.Module) (*Combiner, error) {
	return build(modules,
		func(total, v float32) float32 { return total * v },
		func(mn, mx float32, child field.Module) (float32, float32) {
			cmin, cmax := child.MinValue(), child.MaxValue()
			lo, hi := corner(mn*cmin, mn*cmax, mx*cmin, mx*cmax)

			return lo, hi
		})
}

// Min returns a combiner taking the elementwise minimum of its children.
func Min(modules ...field.Module) (*Combiner, error) {
	return build(modules,
		minOf,
		func(mn, mx float32, child field.Module) (float32, float32) {
			return minOf(mn, child.MinValue()), minOf(mx, child.MaxValue())
		})
}

// Max returns a combiner taking the elementwise maximum of its children.
func Max(modules ...field.Module) (*Combiner, error) {
	return build(modules,
		maxOf,
		func(mn, mx float32, child field.Module) (float32, float32) {
			return maxOf(mn, child.MinValue()), maxOf(mx, child.MaxValue())
		})
}

// build validates the children and folds the bounds with foldBounds,
// starting from the first child's own range.
func build(
	modules []field.Module,
	combine func(total, value float32) float32,
	foldBounds func(mn, mx float32, child field.Module) (float32, float32),
) (*Combiner, error) {
	if len(modules) == 0 {
		return nil, ErrNoModules
	}
	for i, m := range modules {
		if m == nil {
			return nil, fmt.Errorf("module %d: %w", i, ErrNilModule)
		}
	}

	mn, mx := modules[0].MinValue(), modules[0].MaxValue()
	for _, child := range modules[1:] {
		mn, mx = foldBounds(mn, mx, child)
	}

	children := make([]field.Module, len(modules))
	copy(children, modules)

	return &Combiner{children: children, combine: combine, min: mn, max: mx}, nil
}

func minOf(a, b float32) float32 {
	if a < b {
		return a
	}

	return b
}

func maxOf(a, b float32) float32 {
	if a > b {
		return a
	}

	return b
}

// corner returns the smallest and largest of four candidates.
func corner(a, b, c, d float32) (float32, float32) {
	lo := minOf(minOf(a, b), minOf(c, d))
	hi := maxOf(maxOf(a, b), maxOf(c, d))

	return lo, hi
}
