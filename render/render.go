// Package render: module-to-image rasterization.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/katalvlaran/noisefield/field"
)

// Sentinel errors. Branch with errors.Is.
var (
	// ErrNilModule indicates a nil module.
	ErrNilModule = errors.New("render: nil module")
	// ErrBadSize indicates non-positive image dimensions.
	ErrBadSize = errors.New("render: width and height must be > 0")
)

// Options positions the sampling window. Each pixel (px, py) samples the
// module at (OriginX + px·Step, OriginY + py·Step).
type Options struct {
	// OriginX, OriginY anchor the top-left pixel in field coordinates.
	OriginX float32
	OriginY float32
	// Step is the field-space distance between adjacent pixels.
	Step float32
}

// DefaultOptions samples from the origin with unit step.
func DefaultOptions() Options {
	return Options{OriginX: 0, OriginY: 0, Step: 1}
}

// Image rasterizes m into a width×height grayscale image. Values are
// normalized across [m.MinValue(), m.MaxValue()]; a zero-width range
// renders black.
func Image(m field.Module, width, height int, opts Options) (*image.Gray, error) {
	if m == nil {
		return nil, ErrNilModule
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrBadSize)
	}

	mn := m.MinValue()
	rng := m.MaxValue() - mn

	img := image.NewGray(image.Rect(0, 0, width, height))
	for py := 0; py < height; py++ {
		y := opts.OriginY + float32(py)*opts.Step
		for px := 0; px < width; px++ {
			x := opts.OriginX + float32(px)*opts.Step

			norm := field.NormalizeClamped(m.Value(x, y), mn, rng)
			img.SetGray(px, py, color.Gray{Y: uint8(norm * 255)})
		}
	}

	return img, nil
}

// WritePNG rasterizes m and encodes the result as PNG to w.
func WritePNG(w io.Writer, m field.Module, width, height int, opts Options) error {
	img, err := Image(m, width, height, opts)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}
