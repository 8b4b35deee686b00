// Package noise: per-cell white noise source.
package noise

// Rand emits an uncorrelated hashed value per lattice cell: white noise
// with no interpolation between cells. Octave parameters are ignored;
// frequency still scales the cell size.
type Rand struct {
	source
}

// NewRand builds a Rand source from cfg. Fails on invalid parameters.
func NewRand(cfg Config) (*Rand, error) {
	s, err := newSource(cfg, 1)
	if err != nil {
		return nil, err
	}

	return &Rand{source: s}, nil
}

// Value implements field.Module. O(1).
func (r *Rand) Value(x, y float32) float32 {
	xi := fastFloor(x * r.frequency)
	yi := fastFloor(y * r.frequency)

	return (valCoord2D(r.seed, xi, yi) + 1) / 2
}
