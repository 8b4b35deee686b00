// Package builder: the closed generator-kind enum.
package builder

// Kind enumerates the constructible generator families. The set is
// closed: Build dispatches over it exhaustively and rejects anything
// else with ErrUnknownKind.
type Kind int

const (
	// Perlin is square-lattice gradient noise.
	Perlin Kind = iota
	// Simplex is skewed-lattice gradient noise.
	Simplex
	// Ridge is 1-|raw| shaped gradient noise.
	Ridge
	// Billow is |raw| shaped gradient noise.
	Billow
	// Cubic is 4×4 Catmull-Rom value noise.
	Cubic
	// Cell is cellular/Voronoi nearest-point value noise.
	Cell
	// CellEdge is cellular/Voronoi edge noise over d1/d2 distances.
	CellEdge
	// Sin is sine-product noise.
	Sin
	// Rand is per-cell white noise.
	Rand
	// Constant is the fixed-value field.
	Constant
)

// String returns the kind name, "Kind(n)" for out-of-enum values.
func (k Kind) String() string {
	switch k {
	case Perlin:
		return "Perlin"
	case Simplex:
		return "Simplex"
	case Ridge:
		return "Ridge"
	case Billow:
		return "Billow"
	case Cubic:
		return "Cubic"
	case Cell:
		return "Cell"
	case CellEdge:
		return "CellEdge"
	case Sin:
		return "Sin"
	case Rand:
		return "Rand"
	case Constant:
		return "Constant"
	default:
		return "Kind(?)"
	}
}
