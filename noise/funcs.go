// Package noise: selectable cellular functions (distance metrics, cell
// value functions, edge functions), each with analytic output bounds.
package noise

import "github.com/chewxy/math32"

// maxCellDistance is the analytic worst case for the distance from a query
// point to the nearest jittered cell point under the Manhattan metric
// (nearest lattice corner ≤ 1 per axis, jitter ≤ 0.45 per axis). It upper
// bounds the Euclidean and Natural metrics as well; the clamped remap in
// the sources absorbs any slack.
const maxCellDistance float32 = 1.9

// DistanceFunc selects the metric used to measure query-to-point
// distances in the cellular generators.
type DistanceFunc int

const (
	// Euclidean measures sqrt(dx² + dy²).
	Euclidean DistanceFunc = iota
	// Manhattan measures |dx| + |dy|.
	Manhattan
	// Natural averages the Manhattan and squared-Euclidean measures.
	Natural
)

// Apply computes the metric for the offset (dx, dy). O(1).
func (d DistanceFunc) Apply(dx, dy float32) float32 {
	switch d {
	case Manhattan:
		return math32.Abs(dx) + math32.Abs(dy)
	case Natural:
		return (math32.Abs(dx) + math32.Abs(dy) + dx*dx + dy*dy) / 2
	default:
		return math32.Sqrt(dx*dx + dy*dy)
	}
}

// String returns the metric name.
func (d DistanceFunc) String() string {
	switch d {
	case Manhattan:
		return "Manhattan"
	case Natural:
		return "Natural"
	default:
		return "Euclidean"
	}
}

// CellFunc selects how the Cell source derives a value from the nearest
// jittered point.
type CellFunc int

const (
	// CellValue returns the hashed value of the nearest cell, in [-1,1].
	CellValue CellFunc = iota
	// CellDistance returns the distance to the nearest point, shifted
	// down by one so the raw signal straddles zero like the other
	// families.
	CellDistance
)

// Apply derives the cell value from the nearest point's cell coordinates
// and distance.
func (c CellFunc) Apply(seed, xc, yc int32, d1 float32) float32 {
	if c == CellDistance {
		return d1 - 1
	}

	return valCoord2D(seed, xc, yc)
}

// Min returns the analytic lower bound of the function's raw output.
func (c CellFunc) Min() float32 {
	return -1
}

// Max returns the analytic upper bound of the function's raw output.
func (c CellFunc) Max() float32 {
	if c == CellDistance {
		return maxCellDistance - 1
	}

	return 1
}

// String returns the function name.
func (c CellFunc) String() string {
	if c == CellDistance {
		return "CellDistance"
	}

	return "CellValue"
}

// EdgeFunc selects how the CellEdge source combines the nearest (d1) and
// second-nearest (d2) point distances into an edge signal.
type EdgeFunc int

const (
	// Distance2 returns d2 - 1.
	Distance2 EdgeFunc = iota
	// Distance2Add returns (d2 + d1)/2 - 1.
	Distance2Add
	// Distance2Sub returns d2 - d1 - 1; zero-crossings trace cell edges.
	Distance2Sub
	// Distance2Mul returns d2·d1 - 1.
	Distance2Mul
	// Distance2Div returns d1/d2 - 1, always in [-1, 0].
	Distance2Div
)

// Apply combines the two distances. d1 ≤ d2 by construction.
func (e EdgeFunc) Apply(d1, d2 float32) float32 {
	switch e {
	case Distance2Add:
		return (d2+d1)/2 - 1
	case Distance2Sub:
		return d2 - d1 - 1
	case Distance2Mul:
		return d2*d1 - 1
	case Distance2Div:
		return d1/d2 - 1
	default:
		return d2 - 1
	}
}

// Min returns the analytic lower bound of the function's raw output.
func (e EdgeFunc) Min() float32 {
	return -1
}

// Max returns the analytic upper bound of the function's raw output.
func (e EdgeFunc) Max() float32 {
	switch e {
	case Distance2Mul:
		return maxCellDistance*maxCellDistance - 1
	case Distance2Div:
		return 0
	default:
		return maxCellDistance - 1
	}
}

// String returns the function name.
func (e EdgeFunc) String() string {
	switch e {
	case Distance2Add:
		return "Distance2Add"
	case Distance2Sub:
		return "Distance2Sub"
	case Distance2Mul:
		return "Distance2Mul"
	case Distance2Div:
		return "Distance2Div"
	default:
		return "Distance2"
	}
}
