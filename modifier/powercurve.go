// Package modifier: midpoint-symmetric power remap.
package modifier

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/noisefield/field"
)

// PowerCurve bends the child's value around its range midpoint: above
// the midpoint v -> mid + (v-mid)^power, below v -> mid - (mid-v)^power.
// The curved signal is then normalized by the exact bounds the same
// curve produces from the child's own min/max, so PowerCurve always
// emits the canonical [0,1] range.
//
// Negative bases under fractional powers yield NaN, which propagates per
// IEEE-754; the underlying pow owns its domain.
type PowerCurve struct {
	modifier
	power float32
	mid   float32
	cmin  float32
	crng  float32
}

// NewPowerCurve builds a PowerCurve modifier.
func NewPowerCurve(source field.Module, power float32) (*PowerCurve, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	childMin, childMax := source.MinValue(), source.MaxValue()
	childMid := childMin + (childMax-childMin)/2

	// Exact curved bounds, derived from the child's bounds through the
	// same transform.
	cmin := childMid - math32.Pow(childMid-childMin, power)
	cmax := childMid + math32.Pow(childMax-childMid, power)

	m, err := newModifier(source, 0, 1)
	if err != nil {
		return nil, err
	}

	crng := cmax - cmin

	return &PowerCurve{
		modifier: m,
		power:    power,
		mid:      cmin + crng/2,
		cmin:     cmin,
		crng:     crng,
	}, nil
}

// Value implements field.Module.
func (p *PowerCurve) Value(x, y float32) float32 {
	v := p.source.Value(x, y)

	if v >= p.mid {
		v = p.mid + math32.Pow(v-p.mid, p.power)
	} else {
		v = p.mid - math32.Pow(p.mid-v, p.power)
	}

	return field.NormalizeClamped(v, p.cmin, p.crng)
}
