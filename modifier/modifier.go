// Package modifier: shared wrapped-child base.
package modifier

import "github.com/katalvlaran/noisefield/field"

// modifier holds the wrapped child and the transform's recomputed bounds.
type modifier struct {
	source field.Module
	min    float32
	max    float32
}

// newModifier validates the child and seeds the bounds with the given
// values (each transform computes its own).
func newModifier(source field.Module, min, max float32) (modifier, error) {
	if source == nil {
		return modifier{}, ErrNilSource
	}

	return modifier{source: source, min: min, max: max}, nil
}

// MinValue implements field.Module.
func (m *modifier) MinValue() float32 { return m.min }

// MaxValue implements field.Module.
func (m *modifier) MaxValue() float32 { return m.max }
