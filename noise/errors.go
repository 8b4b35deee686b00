// Package noise: sentinel errors for source construction.
//
// Error policy (matches the rest of the module):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Constructors validate and return errors; never panic, never
//     substitute a default configuration.
package noise

import "errors"

// ErrBadOctaves indicates an octave count below 1.
// Usage: if errors.Is(err, noise.ErrBadOctaves) { /* fix Octaves */ }.
var ErrBadOctaves = errors.New("noise: octaves must be >= 1")

// ErrBadGain indicates a non-positive per-octave amplitude multiplier.
var ErrBadGain = errors.New("noise: gain must be > 0")

// ErrBadLacunarity indicates a non-positive per-octave frequency multiplier.
var ErrBadLacunarity = errors.New("noise: lacunarity must be > 0")

// ErrBadFrequency indicates a non-positive base frequency.
var ErrBadFrequency = errors.New("noise: frequency must be > 0")
