// Package noise: single-octave generator kernels. Each maps one
// (coordinate, seed) pair to a raw signal roughly in [-1, 1]; the fractal
// sources own frequency scaling, octave iteration and range remapping.
package noise

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/noisefield/field"
)

// Simplex skew constants for 2D: F2 = (sqrt(3)-1)/2, G2 = (3-sqrt(3))/6.
const (
	simplexF2 float32 = 0.3660254037844386
	simplexG2 float32 = 0.21132486540518713
	// simplexScale lifts the summed corner contributions to ~[-1, 1].
	simplexScale float32 = 50
)

// cubicBounding normalizes Catmull-Rom overshoot (1.5 per axis).
const cubicBounding float32 = 1 / (1.5 * 1.5)

// singlePerlin evaluates square-lattice gradient noise at (x, y).
func singlePerlin(x, y float32, seed int32, interp field.Interpolation) float32 {
	x0 := fastFloor(x)
	y0 := fastFloor(y)
	x1 := x0 + 1
	y1 := y0 + 1

	xd0 := x - float32(x0)
	yd0 := y - float32(y0)
	xd1 := xd0 - 1
	yd1 := yd0 - 1

	xs := interp.Apply(xd0)
	ys := interp.Apply(yd0)

	xf0 := field.Lerp(gradCoord2D(seed, x0, y0, xd0, yd0), gradCoord2D(seed, x1, y0, xd1, yd0), xs)
	xf1 := field.Lerp(gradCoord2D(seed, x0, y1, xd0, yd1), gradCoord2D(seed, x1, y1, xd1, yd1), xs)

	return field.Lerp(xf0, xf1, ys)
}

// singleSimplex evaluates skewed triangular-lattice gradient noise at (x, y).
func singleSimplex(x, y float32, seed int32) float32 {
	t := (x + y) * simplexF2
	i := fastFloor(x + t)
	j := fastFloor(y + t)

	t = float32(i+j) * simplexG2
	x0 := x - (float32(i) - t)
	y0 := y - (float32(j) - t)

	// Pick the second simplex corner along the major diagonal.
	var i1, j1 int32
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float32(i1) + simplexG2
	y1 := y0 - float32(j1) + simplexG2
	x2 := x0 - 1 + 2*simplexG2
	y2 := y0 - 1 + 2*simplexG2

	var n0, n1, n2 float32

	if t0 := 0.5 - x0*x0 - y0*y0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * gradCoord2D(seed, i, j, x0, y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * gradCoord2D(seed, i+i1, j+j1, x1, y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * gradCoord2D(seed, i+1, j+1, x2, y2)
	}

	return simplexScale * (n0 + n1 + n2)
}

// singleCubic evaluates 4×4-neighborhood Catmull-Rom value noise at (x, y).
func singleCubic(x, y float32, seed int32) float32 {
	x1 := fastFloor(x)
	y1 := fastFloor(y)
	x0 := x1 - 1
	y0 := y1 - 1
	x2 := x1 + 1
	y2 := y1 + 1
	x3 := x1 + 2
	y3 := y1 + 2

	xs := x - float32(x1)
	ys := y - float32(y1)

	return field.CubicLerp(
		field.CubicLerp(valCoord2D(seed, x0, y0), valCoord2D(seed, x1, y0), valCoord2D(seed, x2, y0), valCoord2D(seed, x3, y0), xs),
		field.CubicLerp(valCoord2D(seed, x0, y1), valCoord2D(seed, x1, y1), valCoord2D(seed, x2, y1), valCoord2D(seed, x3, y1), xs),
		field.CubicLerp(valCoord2D(seed, x0, y2), valCoord2D(seed, x1, y2), valCoord2D(seed, x2, y2), valCoord2D(seed, x3, y2), xs),
		field.CubicLerp(valCoord2D(seed, x0, y3), valCoord2D(seed, x1, y3), valCoord2D(seed, x2, y3), valCoord2D(seed, x3, y3), xs),
		ys,
	) * cubicBounding
}

// singleSin evaluates sine-product noise at (x, y). The seed rotates the
// phase so octaves decorrelate like the lattice families.
func singleSin(x, y float32, seed int32) float32 {
	phase := float32(seed&1023) * (1.0 / 1024.0)

	return math32.Sin(x+phase) * math32.Sin(y+phase)
}

// cellular scans the 3×3 cell neighborhood of (x, y) and returns the
// nearest and second-nearest jittered point distances under dist, plus
// the nearest point's cell coordinates.
func cellular(x, y float32, seed int32, dist DistanceFunc) (d1, d2 float32, xc, yc int32) {
	xr := fastRound(x)
	yr := fastRound(y)

	d1 = math32.MaxFloat32
	d2 = math32.MaxFloat32

	for xi := xr - 1; xi <= xr+1; xi++ {
		for yi := yr - 1; yi <= yr+1; yi++ {
			vec := cell2D[hash2D(seed, xi, yi)&255]

			vecX := float32(xi) - x + vec[0]
			vecY := float32(yi) - y + vec[1]

			d := dist.Apply(vecX, vecY)
			switch {
			case d < d1:
				d2 = d1
				d1 = d
				xc, yc = xi, yi
			case d < d2:
				d2 = d
			}
		}
	}

	return d1, d2, xc, yc
}
