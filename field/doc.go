// Package field defines the core abstraction shared by every noise package
// in github.com/katalvlaran/noisefield: the Module — a pure function from a
// 2D coordinate to a bounded float32 — plus the interpolation kernels and
// small scalar helpers the generator and composition packages build on.
//
// 🚀 The Module contract
//
//	Value(x, y)  — deterministic, total for finite inputs; NaN/Inf on
//	               non-finite input propagates per IEEE-754.
//	MinValue()   — O(1); analytic lower bound, fixed at construction.
//	MaxValue()   — O(1); analytic upper bound, fixed at construction.
//
// Invariant: MinValue() ≤ Value(x, y) ≤ MaxValue() for all finite (x, y).
// Bounds are computed from a node's parameters and children when the node
// is built — never sampled empirically — which lets combiners and
// selectors downstream reason about ranges without evaluating the field.
//
// All modules are immutable after construction and safe for concurrent
// evaluation (the single exception, modifier.Cache, documents its own
// sharing rule). Children may be shared between parents freely: a module
// graph is a read-only DAG of pure functions.
//
// See the noise, combiner, selector, modifier, domain and builder
// packages for the concrete node kinds.
package field
