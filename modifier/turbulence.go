// Package modifier: turbulence domain warping.
package modifier

import "github.com/katalvlaran/noisefield/field"

// Phase constants decorrelating the two perturbation fields even when
// both are driven by the same generator family. Values are fixed 16-bit
// fractions carried over from the reference warp.
const (
	turbX0 float32 = 12414.0 / 65536.0
	turbY0 float32 = 31337.0 / 65536.0
	turbX1 float32 = 53820.0 / 65536.0
	turbY1 float32 = 44845.0 / 65536.0
)

// Turbulence perturbs the query coordinate with two independent noise
// fields, each sampled at a distinct fixed phase offset and scaled by
// power, before evaluating the wrapped source. With power = 0 it is the
// identity transform. Bounds are the source's own.
type Turbulence struct {
	modifier
	warpX field.Module
	warpY field.Module
	power float32
}

// NewTurbulence builds a Turbulence modifier. warpX and warpY drive the
// x- and y-perturbation respectively; they may share one underlying
// generator.
func NewTurbulence(source, warpX, warpY field.Module, power float32) (*Turbulence, error) {
	if source == nil || warpX == nil || warpY == nil {
		return nil, ErrNilSource
	}

	m, err := newModifier(source, source.MinValue(), source.MaxValue())
	if err != nil {
		return nil, err
	}

	return &Turbulence{modifier: m, warpX: warpX, warpY: warpY, power: power}, nil
}

// Value implements field.Module. Both perturbation fields sample at
// offsets of the unperturbed coordinate.
func (t *Turbulence) Value(x, y float32) float32 {
	x0, y0 := x+turbX0, y+turbY0
	x1, y1 := x+turbX1, y+turbY1

	x += t.warpX.Value(x0, y0) * t.power
	y += t.warpY.Value(x1, y1) * t.power

	return t.source.Value(x, y)
}
