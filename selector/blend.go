// Package selector: binary full-range blend.
package selector

import "github.com/katalvlaran/noisefield/field"

// Blend mixes two sources continuously: the normalized control value is
// the blend factor itself, shaped by the interpolation kernel. Control at
// its lower bound yields a, at its upper bound yields b.
type Blend struct {
	base
	a field.Module
	b field.Module
}

// NewBlend builds a Blend.
func NewBlend(control, a, b field.Module, interp field.Interpolation) (*Blend, error) {
	bs, err := newBase(control, []field.Module{a, b}, interp)
	if err != nil {
		return nil, err
	}

	return &Blend{base: bs, a: a, b: b}, nil
}

// Value implements field.Module.
func (bl *Blend) Value(x, y float32) float32 {
	alpha := bl.controlValue(x, y)

	return bl.blendValues(bl.a.Value(x, y), bl.b.Value(x, y), alpha)
}
