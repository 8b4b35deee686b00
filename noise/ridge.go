// Package noise: ridge-shaped gradient noise source.
package noise

import "github.com/chewxy/math32"

// Ridge applies 1-|raw| to each gradient-noise octave before summation,
// producing sharp crests along the zero-crossings of the underlying
// field. A shaped octave spans [0,1], so the raw sum spans [0, Σ gain^i].
type Ridge struct {
	source
}

// NewRidge builds a Ridge source from cfg. Fails on invalid parameters.
func NewRidge(cfg Config) (*Ridge, error) {
	s, err := newSource(cfg, 1)
	if err != nil {
		return nil, err
	}

	// Shaped octaves are non-negative; tighten the raw bounds.
	s.min = 0
	s.rng = s.max

	return &Ridge{source: s}, nil
}

// Value implements field.Module. O(octaves).
func (r *Ridge) Value(x, y float32) float32 {
	x *= r.frequency
	y *= r.frequency

	sum := float32(0)
	amp := float32(1)
	for i := 0; i < r.octaves; i++ {
		sum += (1 - math32.Abs(singlePerlin(x, y, r.seed+int32(i), r.interp))) * amp
		x *= r.lacunarity
		y *= r.lacunarity
		amp *= r.gain
	}

	return r.mapValue(sum)
}
