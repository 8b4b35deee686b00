// Package modifier: simple value remaps (Abs, Invert, Bias, Clamp, Map,
// Steps).
package modifier

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/katalvlaran/noisefield/field"
)

// Abs emits |child|. Bounds fold through the absolute value: a child
// range straddling zero gains a zero lower bound.
type Abs struct {
	modifier
}

// NewAbs builds an Abs modifier.
func NewAbs(source field.Module) (*Abs, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	cmin, cmax := source.MinValue(), source.MaxValue()
	var mn, mx float32
	switch {
	case cmin >= 0:
		mn, mx = cmin, cmax
	case cmax <= 0:
		mn, mx = -cmax, -cmin
	default:
		mn, mx = 0, math32.Max(-cmin, cmax)
	}

	m, err := newModifier(source, mn, mx)
	if err != nil {
		return nil, err
	}

	return &Abs{modifier: m}, nil
}

// Value implements field.Module.
func (a *Abs) Value(x, y float32) float32 {
	return math32.Abs(a.source.Value(x, y))
}

// Invert mirrors the child's value within its own bounds:
// v -> min + max - v. Bounds are unchanged.
type Invert struct {
	modifier
	sum float32
}

// NewInvert builds an Invert modifier.
func NewInvert(source field.Module) (*Invert, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	m, err := newModifier(source, source.MinValue(), source.MaxValue())
	if err != nil {
		return nil, err
	}

	return &Invert{modifier: m, sum: m.min + m.max}, nil
}

// Value implements field.Module.
func (i *Invert) Value(x, y float32) float32 {
	return i.sum - i.source.Value(x, y)
}

// Bias shifts the child by a constant; bounds shift with it.
type Bias struct {
	modifier
	bias float32
}

// NewBias builds a Bias modifier.
func NewBias(source field.Module, bias float32) (*Bias, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	m, err := newModifier(source, source.MinValue()+bias, source.MaxValue()+bias)
	if err != nil {
		return nil, err
	}

	return &Bias{modifier: m, bias: bias}, nil
}

// Value implements field.Module.
func (b *Bias) Value(x, y float32) float32 {
	return b.source.Value(x, y) + b.bias
}

// Clamp restricts the child to [lo, hi]; bounds are the clamped child
// bounds.
type Clamp struct {
	modifier
	lo float32
	hi float32
}

// NewClamp builds a Clamp modifier. lo must not exceed hi.
func NewClamp(source field.Module, lo, hi float32) (*Clamp, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if lo > hi {
		return nil, fmt.Errorf("lo=%v hi=%v: %w", lo, hi, ErrBadRange)
	}

	m, err := newModifier(source,
		field.Clamp(source.MinValue(), lo, hi),
		field.Clamp(source.MaxValue(), lo, hi))
	if err != nil {
		return nil, err
	}

	return &Clamp{modifier: m, lo: lo, hi: hi}, nil
}

// Value implements field.Module.
func (c *Clamp) Value(x, y float32) float32 {
	return field.Clamp(c.source.Value(x, y), c.lo, c.hi)
}

// Map remaps the child's declared range affinely onto [lo, hi]; the new
// bounds are exactly [lo, hi].
type Map struct {
	modifier
	cmin  float32
	scale float32
}

// NewMap builds a Map modifier. lo must not exceed hi. A zero-width child
// range maps to lo.
func NewMap(source field.Module, lo, hi float32) (*Map, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if lo > hi {
		return nil, fmt.Errorf("lo=%v hi=%v: %w", lo, hi, ErrBadRange)
	}

	m, err := newModifier(source, lo, hi)
	if err != nil {
		return nil, err
	}

	crng := source.MaxValue() - source.MinValue()
	scale := float32(0)
	if crng > 0 {
		scale = (hi - lo) / crng
	}

	return &Map{modifier: m, cmin: source.MinValue(), scale: scale}, nil
}

// Value implements field.Module.
func (mp *Map) Value(x, y float32) float32 {
	return mp.min + (mp.source.Value(x, y)-mp.cmin)*mp.scale
}

// Steps quantizes the child's normalized value into n discrete levels
// spread across the child's own range; bounds are unchanged.
type Steps struct {
	modifier
	steps float32
	cmin  float32
	crng  float32
}

// NewSteps builds a Steps modifier with n >= 2 levels.
func NewSteps(source field.Module, n int) (*Steps, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if n < 2 {
		return nil, fmt.Errorf("steps=%d: %w", n, ErrBadSteps)
	}

	m, err := newModifier(source, source.MinValue(), source.MaxValue())
	if err != nil {
		return nil, err
	}

	return &Steps{
		modifier: m,
		steps:    float32(n),
		cmin:     source.MinValue(),
		crng:     source.MaxValue() - source.MinValue(),
	}, nil
}

// Value implements field.Module.
func (s *Steps) Value(x, y float32) float32 {
	norm := field.NormalizeClamped(s.source.Value(x, y), s.cmin, s.crng)

	level := math32.Floor(norm * s.steps)
	if level >= s.steps {
		level = s.steps - 1
	}

	return s.cmin + (level/(s.steps-1))*s.crng
}
