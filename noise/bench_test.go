package noise_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/noisefield/noise"
)

// benchSink keeps the compiler from eliding the sampled values.
var benchSink float32

// BenchmarkPerlin_Octaves measures fractal gradient sampling at several
// octave counts.
func BenchmarkPerlin_Octaves(b *testing.B) {
	for _, octaves := range []int{1, 3, 6} {
		cfg := noise.DefaultConfig()
		cfg.Octaves = octaves

		p, err := noise.NewPerlin(cfg)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(strconv.Itoa(octaves), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink = p.Value(float32(i)*0.37, float32(i)*0.91)
			}
		})
	}
}

// BenchmarkSimplex samples skewed-lattice noise at the defaults.
func BenchmarkSimplex(b *testing.B) {
	s, err := noise.NewSimplex(noise.DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = s.Value(float32(i)*0.37, float32(i)*0.91)
	}
}

// BenchmarkRidge samples the ridged variant at the defaults.
func BenchmarkRidge(b *testing.B) {
	r, err := noise.NewRidge(noise.DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = r.Value(float32(i)*0.37, float32(i)*0.91)
	}
}

// BenchmarkCubic samples 4x4 Catmull-Rom value noise at the defaults.
func BenchmarkCubic(b *testing.B) {
	c, err := noise.NewCubic(noise.DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = c.Value(float32(i)*0.37, float32(i)*0.91)
	}
}

// BenchmarkCell_DistanceFuncs compares the cellular metrics.
func BenchmarkCell_DistanceFuncs(b *testing.B) {
	for _, tc := range []struct {
		name string
		dist noise.DistanceFunc
	}{
		{"Euclidean", noise.Euclidean},
		{"Manhattan", noise.Manhattan},
		{"Natural", noise.Natural},
	} {
		c, err := noise.NewCell(noise.DefaultConfig(), noise.CellValue, tc.dist)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink = c.Value(float32(i)*0.37, float32(i)*0.91)
			}
		})
	}
}

// BenchmarkCellEdge measures d1/d2 edge derivation.
func BenchmarkCellEdge(b *testing.B) {
	e, err := noise.NewCellEdge(noise.DefaultConfig(), noise.Distance2Sub, noise.Euclidean)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = e.Value(float32(i)*0.37, float32(i)*0.91)
	}
}
