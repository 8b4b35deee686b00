// Package field: Module interface and the constant leaf.
package field

// Module is a queryable scalar noise field over continuous 2D coordinates.
// Implementations must be pure: identical inputs always yield bit-identical
// outputs, and evaluation has no side effects.
//
// The bounds accessors report the analytic output range fixed at
// construction time; Value never escapes [MinValue, MaxValue] for finite
// coordinates.
type Module interface {
	// Value evaluates the field at (x, y).
	Value(x, y float32) float32
	// MinValue returns the analytic lower bound of the field. O(1).
	MinValue() float32
	// MaxValue returns the analytic upper bound of the field. O(1).
	MaxValue() float32
}

// Constant is a leaf module that returns the same value everywhere.
// Its bounds collapse to the value itself.
type Constant struct {
	value float32
}

// NewConstant returns a constant field of the given value.
func NewConstant(value float32) Constant {
	return Constant{value: value}
}

// Value implements Module. O(1).
func (c Constant) Value(_, _ float32) float32 { return c.value }

// MinValue implements Module.
func (c Constant) MinValue() float32 { return c.value }

// MaxValue implements Module.
func (c Constant) MaxValue() float32 { return c.value }

// Common constant fields, handy as selector controls and combiner operands.
var (
	// Zero is the constant 0 field.
	Zero Module = NewConstant(0)
	// Half is the constant 0.5 field.
	Half Module = NewConstant(0.5)
	// One is the constant 1 field.
	One Module = NewConstant(1)
)
