// Package noise: sine-product noise source.
package noise

// Sin is fractal sine-product noise: sin(x)·sin(y) per octave, with the
// seed rotating the phase so stacked octaves decorrelate. Useful as a
// cheap periodic control signal.
type Sin struct {
	source
}

// NewSin builds a Sin source from cfg. Fails on invalid parameters.
func NewSin(cfg Config) (*Sin, error) {
	s, err := newSource(cfg, 1)
	if err != nil {
		return nil, err
	}

	return &Sin{source: s}, nil
}

// Value implements field.Module. O(octaves).
func (s *Sin) Value(x, y float32) float32 {
	x *= s.frequency
	y *= s.frequency

	sum := float32(0)
	amp := float32(1)
	for i := 0; i < s.octaves; i++ {
		sum += singleSin(x, y, s.seed+int32(i)) * amp
		x *= s.lacunarity
		y *= s.lacunarity
		amp *= s.gain
	}

	return s.mapValue(sum)
}
