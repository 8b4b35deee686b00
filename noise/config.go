// Package noise: source configuration and deterministic defaults.
package noise

import (
	"fmt"

	"github.com/katalvlaran/noisefield/field"
)

// Deterministic defaults (named, no magic numbers in construction paths).
const (
	// DefaultSeed seeds every lattice hash unless overridden.
	DefaultSeed int32 = 1337
	// DefaultOctaves is the fractal layer count.
	DefaultOctaves = 3
	// DefaultGain is the per-octave amplitude multiplier.
	DefaultGain float32 = 0.5
	// DefaultRidgeGain is the gain applied to Ridge sources when the
	// caller has not chosen one; ridge shaping wants near-flat falloff.
	DefaultRidgeGain float32 = 0.975
	// DefaultLacunarity is the per-octave frequency multiplier.
	DefaultLacunarity float32 = 2.0
	// DefaultFrequency is the base coordinate scale.
	DefaultFrequency float32 = 0.01
	// DefaultInterp is the lattice smoothing kernel.
	DefaultInterp = field.Hermite
)

// Config carries the per-source parameter snapshot. Sources copy it at
// construction; mutating a Config afterwards never affects built modules.
type Config struct {
	// Seed scrambles the lattice hash; octave i uses Seed+i.
	Seed int32
	// Octaves is the fractal layer count, >= 1.
	Octaves int
	// Gain multiplies the amplitude per octave, > 0.
	Gain float32
	// Lacunarity multiplies the frequency per octave, > 0.
	Lacunarity float32
	// Frequency scales input coordinates before octave 0, > 0.
	Frequency float32
	// Interp is the smoothing kernel for lattice fractions.
	Interp field.Interpolation
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Seed:       DefaultSeed,
		Octaves:    DefaultOctaves,
		Gain:       DefaultGain,
		Lacunarity: DefaultLacunarity,
		Frequency:  DefaultFrequency,
		Interp:     DefaultInterp,
	}
}

// Validate reports the first violated parameter constraint, wrapping the
// matching sentinel so callers can branch with errors.Is.
func (c Config) Validate() error {
	if c.Octaves < 1 {
		return fmt.Errorf("octaves=%d: %w", c.Octaves, ErrBadOctaves)
	}
	if c.Gain <= 0 {
		return fmt.Errorf("gain=%v: %w", c.Gain, ErrBadGain)
	}
	if c.Lacunarity <= 0 {
		return fmt.Errorf("lacunarity=%v: %w", c.Lacunarity, ErrBadLacunarity)
	}
	if c.Frequency <= 0 {
		return fmt.Errorf("frequency=%v: %w", c.Frequency, ErrBadFrequency)
	}

	return nil
}
