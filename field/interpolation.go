// Package field: smoothing kernels applied to lattice/blend fractions.
package field

// Interpolation selects the smoothing kernel applied to a unit fraction
// before it is used to blend lattice corners (noise package) or sibling
// sources (selector package).
type Interpolation int

const (
	// Linear applies no smoothing: f(t) = t.
	Linear Interpolation = iota
	// Hermite applies the cubic ease curve f(t) = 3t² - 2t³.
	Hermite
	// Quintic applies the C2-continuous curve f(t) = 6t⁵ - 15t⁴ + 10t³.
	Quintic
)

// Apply maps t ∈ [0,1] through the kernel. Out-of-range t is not clamped;
// callers own the domain. O(1).
func (i Interpolation) Apply(t float32) float32 {
	switch i {
	case Hermite:
		return t * t * (3 - 2*t)
	case Quintic:
		return t * t * t * (t*(t*6-15) + 10)
	default:
		return t
	}
}

// String returns the kernel name, "Interpolation(n)" for unknown values.
func (i Interpolation) String() string {
	switch i {
	case Linear:
		return "Linear"
	case Hermite:
		return "Hermite"
	case Quintic:
		return "Quintic"
	default:
		return "Interpolation(?)"
	}
}
