// Package noise: cellular/Voronoi edge source.
package noise

// CellEdge combines the nearest and second-nearest jittered point
// distances through the configured EdgeFunc, tracing cell borders.
// Like Cell it evaluates a single layer; octave parameters are ignored.
type CellEdge struct {
	source
	edgeFunc EdgeFunc
	distFunc DistanceFunc
}

// NewCellEdge builds a CellEdge source from cfg with the given edge and
// distance functions. Fails on invalid parameters.
func NewCellEdge(cfg Config, edgeFn EdgeFunc, distFn DistanceFunc) (*CellEdge, error) {
	s, err := newSource(cfg, 1)
	if err != nil {
		return nil, err
	}

	s.min = edgeFn.Min()
	s.max = edgeFn.Max()
	s.rng = s.max - s.min

	return &CellEdge{source: s, edgeFunc: edgeFn, distFunc: distFn}, nil
}

// Value implements field.Module. O(9) lattice hashes.
func (c *CellEdge) Value(x, y float32) float32 {
	x *= c.frequency
	y *= c.frequency

	d1, d2, _, _ := cellular(x, y, c.seed, c.distFunc)

	return c.mapValue(c.edgeFunc.Apply(d1, d2))
}
