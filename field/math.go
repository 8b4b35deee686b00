// Package field: scalar helpers shared by the generator and composition
// packages. All operate on float32 and allocate nothing.
package field

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// CubicLerp interpolates with a Catmull-Rom cubic through four samples;
// t blends between b (t=0) and c (t=1).
func CubicLerp(a, b, c, d, t float32) float32 {
	p := (d - c) - (a - b)
	return t*t*t*p + t*t*((a-b)-p) + t*(c-a) + b
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to the unit interval.
func Clamp01(v float32) float32 {
	return Clamp(v, 0, 1)
}

// NormalizeClamped maps v from [min, min+range] into [0,1], clamped.
// A non-positive range yields 0; the clamp keeps downstream bound
// invariants intact even when a raw signal grazes its analytic extreme.
func NormalizeClamped(v, min, rng float32) float32 {
	if rng <= 0 {
		return 0
	}
	return Clamp01((v - min) / rng)
}
