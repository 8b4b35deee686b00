// Package selector: N-way partitioned blend.
package selector

import (
	"fmt"

	"github.com/katalvlaran/noisefield/field"
)

// node is one source's slot in the partitioned control range: outside
// [min, max] the neighboring slot starts contributing.
type node struct {
	source field.Module
	min    float32
	max    float32
}

// MultiBlend partitions the normalized control range into N equal cells,
// one per source, with centers at i/N + 1/(2N). A symmetric blend margin
// around each cell boundary, sized by the blend-radius fraction passed
// at construction, linearly mixes the adjacent source; inside a slot's
// core only that source is sampled. blend = 0 degenerates to a hard
// select with no interpolation.
type MultiBlend struct {
	base
	nodes      []node
	maxIndex   int
	blendRange float32
}

// NewMultiBlend builds a MultiBlend over sources. blend is the
// blend-radius fraction in [0,1]: the share of each cell's half-width
// given over to the transition margin.
func NewMultiBlend(blend float32, interp field.Interpolation, control field.Module, sources ...field.Module) (*MultiBlend, error) {
	b, err := newBase(control, sources, interp)
	if err != nil {
		return nil, err
	}
	if blend < 0 || blend > 1 {
		return nil, fmt.Errorf("blend=%v: %w", blend, ErrBadBlendRadius)
	}

	spacing := 1 / float32(len(sources))
	radius := spacing / 2
	blendRange := radius * blend
	cellRadius := (radius - blendRange) / 2
	maxIndex := len(sources) - 1

	nodes := make([]node, len(sources))
	for i, s := range sources {
		pos := float32(i)*spacing + radius
		mn := float32(0)
		if i > 0 {
			mn = pos - cellRadius
		}
		mx := float32(1)
		if i < maxIndex {
			mx = pos + cellRadius
		}
		nodes[i] = node{source: s, min: mn, max: mx}
	}

	return &MultiBlend{base: b, nodes: nodes, maxIndex: maxIndex, blendRange: blendRange}, nil
}

// Value implements field.Module. At an exact cell center the matching
// source is returned with zero contribution from its neighbors.
func (m *MultiBlend) Value(x, y float32) float32 {
	c := m.controlValue(x, y)

	index := fastRound(c * float32(m.maxIndex))
	lo := m.nodes[index]
	hi := lo

	if m.blendRange == 0 {
		return lo.source.Value(x, y)
	}

	switch {
	case c > lo.max:
		hi = m.nodes[index+1]
	case c < lo.min:
		lo = m.nodes[index-1]
	default:
		return lo.source.Value(x, y)
	}

	alpha := field.Clamp01((c - lo.max) / m.blendRange)

	return m.blendValues(lo.source.Value(x, y), hi.source.Value(x, y), alpha)
}

// fastRound rounds half away from zero; c is non-negative here.
func fastRound(f float32) int {
	return int(f + 0.5)
}
