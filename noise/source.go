// Package noise: shared fractal source machinery.
package noise

import "github.com/katalvlaran/noisefield/field"

// simplexSignals holds the per-octave raw amplitude of a single simplex
// octave, indexed by min(octaves, len-1). The skewed lattice concentrates
// energy slightly differently per octave count, so the closed-form bound
// uses these measured-family constants rather than a flat 1.0.
var simplexSignals = [...]float32{1.00, 0.989, 0.810, 0.781, 0.708, 0.702, 0.696}

// source carries the parameter snapshot and the analytically derived raw
// bounds common to all fractal generators. Concrete sources embed it and
// implement Value; MinValue/MaxValue report the canonical post-remap
// range [0, 1].
type source struct {
	seed       int32
	octaves    int
	gain       float32
	lacunarity float32
	frequency  float32
	interp     field.Interpolation

	// Raw fractal sum bounds, pre-remap. rng = max - min.
	min float32
	max float32
	rng float32
}

// newSource validates cfg and derives the raw bounds for a family whose
// single-octave signal spans ±signal.
func newSource(cfg Config, signal float32) (source, error) {
	if err := cfg.Validate(); err != nil {
		return source{}, err
	}

	max := fractalMax(cfg.Octaves, cfg.Gain, signal)
	s := source{
		seed:       cfg.Seed,
		octaves:    cfg.Octaves,
		gain:       cfg.Gain,
		lacunarity: cfg.Lacunarity,
		frequency:  cfg.Frequency,
		interp:     cfg.Interp,
		min:        -max,
		max:        max,
		rng:        2 * max,
	}

	return s, nil
}

// fractalMax is the closed-form maximum of the raw octave sum:
// Σ gain^i · signal for i = 0..octaves-1.
func fractalMax(octaves int, gain, signal float32) float32 {
	sum := float32(0)
	amp := float32(1)
	for i := 0; i < octaves; i++ {
		sum += amp * signal
		amp *= gain
	}

	return sum
}

// simplexSignal looks up the simplex per-octave amplitude for the given
// octave count.
func simplexSignal(octaves int) float32 {
	if octaves >= len(simplexSignals) {
		return simplexSignals[len(simplexSignals)-1]
	}

	return simplexSignals[octaves]
}

// MinValue implements field.Module: sources emit the canonical range.
func (s *source) MinValue() float32 { return 0 }

// MaxValue implements field.Module.
func (s *source) MaxValue() float32 { return 1 }

// mapValue remaps a raw fractal sum into [0, 1], clamped so the bounds
// invariant holds even when a signal grazes its analytic extreme.
func (s *source) mapValue(sum float32) float32 {
	return field.NormalizeClamped(sum, s.min, s.rng)
}
