// Package noisefield builds and evaluates composable scalar noise fields
// over a continuous 2D coordinate space — deterministic pseudo-random
// terrain-like signals (elevation, moisture, biome selectors) with
// analytically known output bounds.
//
// 🚀 What is noisefield?
//
//	A modern, deterministic, allocation-light library that brings together:
//		• Coherent-noise leaves: Perlin, Simplex, Ridge, Billow, Cubic,
//		  Cellular/Voronoi, Sin, Rand, Constant — each with fractal
//		  (multi-octave) summation and closed-form bounds
//		• Combiners: n-ary Add / Multiply / Min / Max with bound folding
//		• Selectors: threshold Select, Blend, N-way MultiBlend with a
//		  configurable blend radius
//		• Modifiers: Turbulence domain warping, PowerCurve, Cache, and
//		  the Abs/Invert/Bias/Clamp/Map/Steps remaps
//		• Domain transforms: pure coordinate remaps, chainable
//		• A snapshotting Builder with a closed generator-kind enum and
//		  fail-loud construction
//
// ✨ Why choose noisefield?
//
//   - Bound-aware composition — every node knows its exact output range
//     at construction time, no empirical sampling anywhere
//   - Rock-solid determinism — identical (seed, params, x, y) yield
//     bit-identical results, across calls and across rebuilds
//   - Pure Go — evaluation is a pure recursive function over an
//     immutable DAG; share graphs freely across goroutines
//   - Fail-loud configuration — sentinel errors instead of silent
//     defaults
//
// Under the hood, everything is organized under focused subpackages:
//
//	field/    — the Module contract, Constant, interpolation kernels
//	noise/    — lattice hashing, gradient/cell tables, fractal sources
//	combiner/ — associative n-ary merges
//	selector/ — control-driven choice and blending
//	modifier/ — unary value and coordinate transforms
//	domain/   — coordinate remapping building blocks
//	builder/  — parameter bag + construction dispatch
//	render/   — preview rasterizer (consumer of the public surface)
//
// Quick sketch:
//
//	elevation, _ := builder.New().Seed(1337).Octaves(4).Perlin()
//	moisture, _  := builder.New().Seed(7).Simplex()
//	biome, _     := selector.NewMultiBlend(0.4, field.Hermite, moisture,
//	                    desert, plains, forest)
//	h := elevation.Value(512.5, 96.25) // always within [0,1]
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and examples.
//
//	go get github.com/katalvlaran/noisefield
package noisefield
