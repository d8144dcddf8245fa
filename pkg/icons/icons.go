// Package icons produces square icon derivatives from a master image.
package icons

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/menta2k/icon-generator/pkg/processing"
	"github.com/menta2k/icon-generator/pkg/types"
)

// DefaultTolerance is the per-channel chroma-key threshold on a 0-255 scale
const DefaultTolerance = 30

// SafeZoneRatio is the share of a maskable icon guaranteed to survive any mask shape
const SafeZoneRatio = 0.8

// ErrInvalidSize is returned for non-positive target sizes
var ErrInvalidSize = errors.New("icon size must be positive")

// Resize resamples master to size×size. Unless preserveTransparency is set,
// the result is flattened onto white and is fully opaque.
func Resize(master image.Image, size int, preserveTransparency bool) (image.Image, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	resized := processing.Resize(master, size, size)
	if preserveTransparency {
		return resized, nil
	}
	return processing.Flatten(resized, processing.White), nil
}

// SampleCorners averages the RGB of the four corner pixels, rounding down
func SampleCorners(img *image.NRGBA) types.BackgroundSample {
	b := img.Bounds()
	corners := []color.NRGBA{
		img.NRGBAAt(b.Min.X, b.Min.Y),
		img.NRGBAAt(b.Max.X-1, b.Min.Y),
		img.NRGBAAt(b.Min.X, b.Max.Y-1),
		img.NRGBAAt(b.Max.X-1, b.Max.Y-1),
	}

	var r, g, bl int
	for _, c := range corners {
		r += int(c.R)
		g += int(c.G)
		bl += int(c.B)
	}
	return types.BackgroundSample{
		R: uint8(r / len(corners)),
		G: uint8(g / len(corners)),
		B: uint8(bl / len(corners)),
	}
}

// ReplaceBackground resamples master to size×size and turns every pixel close
// to the corner-sampled background color black, keeping its alpha.
// A pixel is keyed only when all three channels differ by less than tolerance.
// The corner heuristic assumes a flat background that reaches every corner.
func ReplaceBackground(master image.Image, size, tolerance int) (*image.NRGBA, types.BackgroundSample, error) {
	if size < 1 {
		return nil, types.BackgroundSample{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	img := processing.Resize(master, size, size)
	bg := SampleCorners(img)
	KeyColor(img, bg, tolerance)
	return img, bg, nil
}

// KeyColor blackens in place every pixel of img within tolerance of bg
func KeyColor(img *image.NRGBA, bg types.BackgroundSample, tolerance int) int {
	keyed := 0
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			if within(row[i], bg.R, tolerance) && within(row[i+1], bg.G, tolerance) && within(row[i+2], bg.B, tolerance) {
				row[i], row[i+1], row[i+2] = 0, 0, 0
				keyed++
			}
		}
	}
	return keyed
}

func within(v, ref uint8, tolerance int) bool {
	d := int(v) - int(ref)
	if d < 0 {
		d = -d
	}
	return d < tolerance
}

// ContentSize returns the side of the safe-zone content for a maskable canvas of the given size
func ContentSize(size int) int {
	return int(float64(size) * SafeZoneRatio)
}

// Maskable scales master into the inner 80% of a transparent size×size canvas
func Maskable(master image.Image, size int) (*image.NRGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	contentSize := ContentSize(size)
	canvas := imaging.New(size, size, color.NRGBA{})
	if contentSize < 1 {
		return canvas, nil
	}

	content := processing.Resize(master, contentSize, contentSize)
	offset := (size - contentSize) / 2
	return imaging.Paste(canvas, content, image.Pt(offset, offset)), nil
}
