// Package selector: shared control-normalization base.
package selector

import (
	"fmt"

	"github.com/katalvlaran/noisefield/field"
)

// base carries the control module, the blend kernel, the precomputed
// control normalization and the source-union bounds.
type base struct {
	control field.Module
	interp  field.Interpolation

	// Control normalization: value -> (value-cmin)/crng, clamped.
	cmin float32
	crng float32

	// Union bounds over the sources.
	min float32
	max float32
}

// newBase validates control and sources and precomputes normalization
// and bounds.
func newBase(control field.Module, sources []field.Module, interp field.Interpolation) (base, error) {
	if control == nil {
		return base{}, ErrNilControl
	}
	if len(sources) < 2 {
		return base{}, fmt.Errorf("%d sources: %w", len(sources), ErrTooFewSources)
	}
	for i, s := range sources {
		if s == nil {
			return base{}, fmt.Errorf("source %d: %w", i, ErrNilModule)
		}
	}

	mn, mx := sources[0].MinValue(), sources[0].MaxValue()
	for _, s := range sources[1:] {
		if v := s.MinValue(); v < mn {
			mn = v
		}
		if v := s.MaxValue(); v > mx {
			mx = v
		}
	}

	return base{
		control: control,
		interp:  interp,
		cmin:    control.MinValue(),
		crng:    control.MaxValue() - control.MinValue(),
		min:     mn,
		max:     mx,
	}, nil
}

// controlValue evaluates the control at (x, y) normalized into [0,1].
func (b *base) controlValue(x, y float32) float32 {
	return field.NormalizeClamped(b.control.Value(x, y), b.cmin, b.crng)
}

// blendValues mixes a and b by alpha shaped through the kernel.
func (b *base) blendValues(a, v, alpha float32) float32 {
	return field.Lerp(a, v, b.interp.Apply(alpha))
}

// MinValue implements field.Module.
func (b *base) MinValue() float32 { return b.min }

// MaxValue implements field.Module.
func (b *base) MaxValue() float32 { return b.max }
