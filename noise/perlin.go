// Package noise: Perlin-style gradient noise source.
package noise

// Perlin is fractal square-lattice gradient noise. A single octave spans
// ±1, so a 2-octave gain-0.5 source has raw bounds ±1.5 before the remap
// into [0,1].
type Perlin struct {
	source
}

// NewPerlin builds a Perlin source from cfg. Fails on invalid parameters.
func NewPerlin(cfg Config) (*Perlin, error) {
	s, err := newSource(cfg, 1)
	if err != nil {
		return nil, err
	}

	return &Perlin{source: s}, nil
}

// Value implements field.Module. O(octaves).
func (p *Perlin) Value(x, y float32) float32 {
	x *= p.frequency
	y *= p.frequency

	sum := float32(0)
	amp := float32(1)
	for i := 0; i < p.octaves; i++ {
		sum += singlePerlin(x, y, p.seed+int32(i), p.interp) * amp
		x *= p.lacunarity
		y *= p.lacunarity
		amp *= p.gain
	}

	return p.mapValue(sum)
}

// RawBounds exposes the analytic pre-remap bounds of the octave sum.
// Mostly useful for verifying the closed-form amplitude math.
func (p *Perlin) RawBounds() (min, max float32) {
	return p.min, p.max
}
