// Package noise implements the coherent-noise leaf modules of
// github.com/katalvlaran/noisefield: seeded lattice hashing, the fixed
// gradient and cell-offset tables, the single-octave generator kernels,
// and the fractal (multi-octave) sources built on them.
//
// 🚀 Families
//
//   - Perlin    — square-lattice gradient noise, kernel-smoothed corners
//   - Simplex   — skewed triangular-lattice gradient noise (isotropic)
//   - Ridge     — per-octave 1-|raw| shaping of gradient noise
//   - Billow    — per-octave |raw| shaping of gradient noise
//   - Cubic     — 4×4 Catmull-Rom value noise
//   - Cell      — cellular/Voronoi value of the nearest jittered point
//   - CellEdge  — cellular/Voronoi edge functions over d1/d2 distances
//   - Sin       — sine-product noise
//   - Rand      — per-cell white noise
//
// ⚙️ Fractal summation
//
// For octave i = 0..N-1 a source accumulates
//
//	gain^i · single(x·freq·lacunarity^i, y·freq·lacunarity^i, seed+i)
//
// The raw sum's exact min/max follow in closed form from the octave count,
// the gain and a per-family signal amplitude, so the result is affinely
// remapped into the canonical [0,1] range with analytically known bounds —
// no empirical sampling anywhere. Every source therefore reports
// MinValue()=0 and MaxValue()=1.
//
// Determinism: identical (seed, parameters, x, y) always produce a
// bit-identical result. Hashing is int32 wraparound arithmetic over two
// large odd primes with a multiplicative scramble; the gradient and
// cell-offset tables are compile-time constants.
//
// Construction is fail-loud: NewX constructors validate the Config and
// return sentinel errors (ErrBadOctaves, ErrBadGain, ErrBadLacunarity,
// ErrBadFrequency) instead of substituting defaults.
package noise
