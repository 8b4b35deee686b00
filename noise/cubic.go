// Package noise: cubic value noise source.
package noise

// Cubic is fractal value noise interpolated with a Catmull-Rom cubic over
// a 4×4 lattice neighborhood in both axes. The bounding factor inside
// singleCubic keeps a single octave within ±1.
type Cubic struct {
	source
}

// NewCubic builds a Cubic source from cfg. Fails on invalid parameters.
func NewCubic(cfg Config) (*Cubic, error) {
	s, err := newSource(cfg, 1)
	if err != nil {
		return nil, err
	}

	return &Cubic{source: s}, nil
}

// Value implements field.Module. O(octaves), 16 lattice hashes per octave.
func (c *Cubic) Value(x, y float32) float32 {
	x *= c.frequency
	y *= c.frequency

	sum := float32(0)
	amp := float32(1)
	for i := 0; i < c.octaves; i++ {
		sum += singleCubic(x, y, c.seed+int32(i)) * amp
		x *= c.lacunarity
		y *= c.lacunarity
		amp *= c.gain
	}

	return c.mapValue(sum)
}
