// Package builder assembles noise modules from a mutable parameter bag.
//
// A Builder carries one snapshot-able configuration: seed, octaves, gain,
// lacunarity, frequency (or Scale = 1/frequency), interpolation kernel,
// cell/edge/distance function selection, a constant value and an optional
// wrapped-source slot. Fluent setters mutate the bag; each Build copies
// the current snapshot into the constructed module, so mutating the
// builder afterwards never affects modules already built.
//
// Construction is dispatched over the closed Kind enum:
//
//	m, err := builder.New().Seed(42).Octaves(4).Build(builder.Simplex)
//
// or through the per-family convenience methods (Perlin(), Simplex(), ...)
// which delegate to Build. Dispatch is fail-loud: an out-of-enum Kind
// returns ErrUnknownKind and invalid parameters surface the noise
// package's sentinel errors — nothing silently substitutes a default
// generator.
//
// Deterministic defaults: seed 1337, octaves 3, gain 0.5 (0.975 for Ridge
// when gain was never set), lacunarity 2.0, frequency 0.01, Hermite
// interpolation, CellValue / Distance2 / Euclidean cellular functions.
package builder
