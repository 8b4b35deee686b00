// Package noise: cellular/Voronoi point-value source.
package noise

// Cell derives a value from the nearest jittered cell point around the
// query coordinate: either the hashed value of that point's cell or its
// distance, per the configured CellFunc. Cellular sources evaluate a
// single layer; the octave parameters of Config are ignored.
type Cell struct {
	source
	cellFunc CellFunc
	distFunc DistanceFunc
}

// NewCell builds a Cell source from cfg with the given cell and distance
// functions. Fails on invalid parameters.
func NewCell(cfg Config, cellFn CellFunc, distFn DistanceFunc) (*Cell, error) {
	s, err := newSource(cfg, 1)
	if err != nil {
		return nil, err
	}

	// Raw bounds come from the cell function, not the fractal sum.
	s.min = cellFn.Min()
	s.max = cellFn.Max()
	s.rng = s.max - s.min

	return &Cell{source: s, cellFunc: cellFn, distFunc: distFn}, nil
}

// Value implements field.Module. O(9) lattice hashes.
func (c *Cell) Value(x, y float32) float32 {
	x *= c.frequency
	y *= c.frequency

	d1, _, xc, yc := cellular(x, y, c.seed, c.distFunc)

	return c.mapValue(c.cellFunc.Apply(c.seed, xc, yc, d1))
}
