// Package domain: the Domain interface and its building blocks.
package domain

import "github.com/katalvlaran/noisefield/field"

// Domain remaps a 2D coordinate. Implementations must be pure.
type Domain interface {
	// Apply transforms (x, y) into a new coordinate pair.
	Apply(x, y float32) (float32, float32)
}

// Identity is the no-op transform.
type Identity struct{}

// Apply implements Domain.
func (Identity) Apply(x, y float32) (float32, float32) { return x, y }

// Offset shifts coordinates by a fixed vector.
type Offset struct {
	dx float32
	dy float32
}

// NewOffset returns a constant-shift transform.
func NewOffset(dx, dy float32) Offset {
	return Offset{dx: dx, dy: dy}
}

// Apply implements Domain.
func (o Offset) Apply(x, y float32) (float32, float32) {
	return x + o.dx, y + o.dy
}

// Shift perturbs each axis by a noise module's value scaled by strength,
// the generic form of module-driven warping.
type Shift struct {
	xMod     field.Module
	yMod     field.Module
	strength float32
}

// NewShift returns a module-driven perturbation. Either module may be
// shared with the value graph; both are evaluated at the incoming
// coordinate.
func NewShift(xMod, yMod field.Module, strength float32) Shift {
	return Shift{xMod: xMod, yMod: yMod, strength: strength}
}

// Apply implements Domain.
func (s Shift) Apply(x, y float32) (float32, float32) {
	return x + s.xMod.Value(x, y)*s.strength, y + s.yMod.Value(x, y)*s.strength
}

// Compound chains two transforms: a first, then b.
type Compound struct {
	a Domain
	b Domain
}

// NewCompound returns the chained transform b∘a.
func NewCompound(a, b Domain) Compound {
	return Compound{a: a, b: b}
}

// Apply implements Domain.
func (c Compound) Apply(x, y float32) (float32, float32) {
	x, y = c.a.Apply(x, y)

	return c.b.Apply(x, y)
}
