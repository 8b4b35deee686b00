// Package modifier: generic domain-transform wrapper.
package modifier

import (
	"github.com/katalvlaran/noisefield/domain"
	"github.com/katalvlaran/noisefield/field"
)

// Warped evaluates the wrapped source at a domain-transformed coordinate.
// Coordinate remapping never changes the value range, so bounds are the
// source's own.
type Warped struct {
	modifier
	dom domain.Domain
}

// NewWarped builds a Warped modifier over the given coordinate transform.
func NewWarped(source field.Module, dom domain.Domain) (*Warped, error) {
	if dom == nil {
		return nil, ErrNilDomain
	}
	if source == nil {
		return nil, ErrNilSource
	}

	m, err := newModifier(source, source.MinValue(), source.MaxValue())
	if err != nil {
		return nil, err
	}

	return &Warped{modifier: m, dom: dom}, nil
}

// Value implements field.Module.
func (w *Warped) Value(x, y float32) float32 {
	x, y = w.dom.Apply(x, y)

	return w.source.Value(x, y)
}
