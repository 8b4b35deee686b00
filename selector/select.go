// Package selector: binary threshold selection.
package selector

import (
	"fmt"

	"github.com/katalvlaran/noisefield/field"
)

// Select switches between two sources at a threshold on the normalized
// control value. With falloff = 0 the switch is hard; otherwise values
// inside [threshold-falloff, threshold+falloff] blend linearly (shaped by
// the interpolation kernel) between the two sources.
type Select struct {
	base
	lower     field.Module
	upper     field.Module
	threshold float32
	falloff   float32
}

// NewSelect builds a Select. threshold must lie in [0,1], falloff >= 0.
func NewSelect(control, lower, upper field.Module, threshold, falloff float32, interp field.Interpolation) (*Select, error) {
	b, err := newBase(control, []field.Module{lower, upper}, interp)
	if err != nil {
		return nil, err
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("threshold=%v: %w", threshold, ErrBadThreshold)
	}
	if falloff < 0 {
		return nil, fmt.Errorf("falloff=%v: %w", falloff, ErrBadFalloff)
	}

	return &Select{base: b, lower: lower, upper: upper, threshold: threshold, falloff: falloff}, nil
}

// Value implements field.Module.
func (s *Select) Value(x, y float32) float32 {
	c := s.controlValue(x, y)

	if s.falloff == 0 {
		if c < s.threshold {
			return s.lower.Value(x, y)
		}

		return s.upper.Value(x, y)
	}

	lo := s.threshold - s.falloff
	hi := s.threshold + s.falloff
	switch {
	case c <= lo:
		return s.lower.Value(x, y)
	case c >= hi:
		return s.upper.Value(x, y)
	default:
		alpha := field.Clamp01((c - lo) / (hi - lo))

		return s.blendValues(s.lower.Value(x, y), s.upper.Value(x, y), alpha)
	}
}
