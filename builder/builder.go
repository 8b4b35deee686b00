// Package builder: the parameter bag and construction dispatch.
package builder

import (
	"fmt"

	"github.com/katalvlaran/noisefield/field"
	"github.com/katalvlaran/noisefield/noise"
)

// Builder is a transient configuration record, not part of the runtime
// graph. It is consumed by Build (which snapshots the current parameters)
// and may be reused or mutated afterwards without affecting built
// modules.
type Builder struct {
	cfg      noise.Config
	gainSet  bool
	cellFunc noise.CellFunc
	edgeFunc noise.EdgeFunc
	distFunc noise.DistanceFunc
	value    float32
	source   field.Module
}

// New returns a Builder with the documented deterministic defaults.
func New() *Builder {
	return &Builder{
		cfg:      noise.DefaultConfig(),
		cellFunc: noise.CellValue,
		edgeFunc: noise.Distance2,
		distFunc: noise.Euclidean,
		source:   field.Zero,
	}
}

// Seed sets the lattice hash seed.
func (b *Builder) Seed(seed int32) *Builder {
	b.cfg.Seed = seed

	return b
}

// Octaves sets the fractal layer count.
func (b *Builder) Octaves(octaves int) *Builder {
	b.cfg.Octaves = octaves

	return b
}

// Gain sets the per-octave amplitude multiplier. Setting it explicitly
// disables the Ridge-specific default.
func (b *Builder) Gain(gain float32) *Builder {
	b.cfg.Gain = gain
	b.gainSet = true

	return b
}

// Lacunarity sets the per-octave frequency multiplier.
func (b *Builder) Lacunarity(lacunarity float32) *Builder {
	b.cfg.Lacunarity = lacunarity

	return b
}

// Frequency sets the base coordinate scale.
func (b *Builder) Frequency(frequency float32) *Builder {
	b.cfg.Frequency = frequency

	return b
}

// Scale sets the frequency to 1/scale.
func (b *Builder) Scale(scale int) *Builder {
	b.cfg.Frequency = 1 / float32(scale)

	return b
}

// Interp sets the lattice smoothing kernel.
func (b *Builder) Interp(interp field.Interpolation) *Builder {
	b.cfg.Interp = interp

	return b
}

// CellFunc sets the Cell source's value derivation.
func (b *Builder) CellFunc(fn noise.CellFunc) *Builder {
	b.cellFunc = fn

	return b
}

// EdgeFunc sets the CellEdge source's distance combination.
func (b *Builder) EdgeFunc(fn noise.EdgeFunc) *Builder {
	b.edgeFunc = fn

	return b
}

// DistFunc sets the cellular distance metric.
func (b *Builder) DistFunc(fn noise.DistanceFunc) *Builder {
	b.distFunc = fn

	return b
}

// Value sets the value emitted by Constant builds.
func (b *Builder) Value(value float32) *Builder {
	b.value = value

	return b
}

// Source fills the wrapped-source slot consumed by composition helpers.
func (b *Builder) Source(source field.Module) *Builder {
	b.source = source

	return b
}

// WrappedSource returns the source slot (field.Zero when never set).
func (b *Builder) WrappedSource() field.Module {
	return b.source
}

// Build constructs the requested generator from the current parameter
// snapshot. Invalid parameters and out-of-enum kinds return errors;
// nothing falls back to a default generator.
func (b *Builder) Build(kind Kind) (field.Module, error) {
	cfg := b.cfg
	if kind == Ridge && !b.gainSet {
		cfg.Gain = noise.DefaultRidgeGain
	}

	var (
		m   field.Module
		err error
	)
	switch kind {
	case Perlin:
		m, err = noise.NewPerlin(cfg)
	case Simplex:
		m, err = noise.NewSimplex(cfg)
	case Ridge:
		m, err = noise.NewRidge(cfg)
	case Billow:
		m, err = noise.NewBillow(cfg)
	case Cubic:
		m, err = noise.NewCubic(cfg)
	case Cell:
		m, err = noise.NewCell(cfg, b.cellFunc, b.distFunc)
	case CellEdge:
		m, err = noise.NewCellEdge(cfg, b.edgeFunc, b.distFunc)
	case Sin:
		m, err = noise.NewSin(cfg)
	case Rand:
		m, err = noise.NewRand(cfg)
	case Constant:
		return field.NewConstant(b.value), nil
	default:
		return nil, fmt.Errorf("%v: %w", kind, ErrUnknownKind)
	}
	if err != nil {
		return nil, fmt.Errorf("%v: %w", kind, err)
	}

	return m, nil
}

// Perlin builds a Perlin source from the current snapshot.
func (b *Builder) Perlin() (field.Module, error) { return b.Build(Perlin) }

// Simplex builds a Simplex source from the current snapshot.
func (b *Builder) Simplex() (field.Module, error) { return b.Build(Simplex) }

// Ridge builds a Ridge source from the current snapshot.
func (b *Builder) Ridge() (field.Module, error) { return b.Build(Ridge) }

// Billow builds a Billow source from the current snapshot.
func (b *Builder) Billow() (field.Module, error) { return b.Build(Billow) }

// Cubic builds a Cubic source from the current snapshot.
func (b *Builder) Cubic() (field.Module, error) { return b.Build(Cubic) }

// Cell builds a Cell source from the current snapshot.
func (b *Builder) Cell() (field.Module, error) { return b.Build(Cell) }

// CellEdge builds a CellEdge source from the current snapshot.
func (b *Builder) CellEdge() (field.Module, error) { return b.Build(CellEdge) }

// Sin builds a Sin source from the current snapshot.
func (b *Builder) Sin() (field.Module, error) { return b.Build(Sin) }

// Rand builds a Rand source from the current snapshot.
func (b *Builder) Rand() (field.Module, error) { return b.Build(Rand) }

// Constant builds a constant field from the current value.
func (b *Builder) Constant() (field.Module, error) { return b.Build(Constant) }
