// Package modifier provides unary transforms wrapping a single noise
// module: value remaps (Abs, Invert, Bias, Clamp, Map, Steps,
// PowerCurve), coordinate remaps (Turbulence domain warping, Warped for
// arbitrary domain transforms) and the single-slot Cache memo.
//
// Every modifier owns exactly one child and recomputes its own analytic
// bounds from the child's bounds and the transform parameters at
// construction — never by sampling.
//
// ⚠️ Concurrency: all modifiers are immutable and freely shareable except
// Cache, whose single memo slot is unsynchronized by contract. Give each
// goroutine its own Cache instance or guard it externally.
//
// Construction is fail-loud: nil children and out-of-domain parameters
// return sentinel errors.
package modifier
