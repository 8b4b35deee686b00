// Package noise: simplex gradient noise source.
package noise

// Simplex is fractal gradient noise over a skewed triangular lattice,
// more isotropic than the square-lattice Perlin family. Its raw bounds
// use the per-octave simplex signal table.
type Simplex struct {
	source
}

// NewSimplex builds a Simplex source from cfg. Fails on invalid parameters.
func NewSimplex(cfg Config) (*Simplex, error) {
	s, err := newSource(cfg, simplexSignal(cfg.Octaves))
	if err != nil {
		return nil, err
	}

	return &Simplex{source: s}, nil
}

// Value implements field.Module. O(octaves).
func (s *Simplex) Value(x, y float32) float32 {
	x *= s.frequency
	y *= s.frequency

	sum := float32(0)
	amp := float32(1)
	for i := 0; i < s.octaves; i++ {
		sum += singleSimplex(x, y, s.seed+int32(i)) * amp
		x *= s.lacunarity
		y *= s.lacunarity
		amp *= s.gain
	}

	return s.mapValue(sum)
}
