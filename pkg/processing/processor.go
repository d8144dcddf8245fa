package processing

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// White is the background used when flattening transparency
var White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Processor handles image loading and encoding
type Processor struct {
	encoder png.Encoder
}

// NewProcessor creates a new image processor writing maximally compressed PNGs
func NewProcessor() *Processor {
	return &Processor{
		encoder: png.Encoder{CompressionLevel: png.BestCompression},
	}
}

// LoadImage loads an image from a file path with WebP support
func (p *Processor) LoadImage(path string) (image.Image, error) {
	// Try imaging.Open (registered decoders)
	img, openErr := imaging.Open(path)
	if openErr == nil {
		return img, nil
	}

	// Fallback: explicit WebP decode
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".webp") {
		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("failed to decode %s: %w", path, openErr)
}

// SavePNG encodes img as PNG at path. Fully opaque images are written without an alpha channel.
func (p *Processor) SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := p.encoder.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// SaveICO writes all images into a single multi-resolution ICO file
func (p *Processor) SaveICO(images []image.Image, path string) error {
	if len(images) == 0 {
		return fmt.Errorf("no images for %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := ico.EncodeAll(f, images); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// Normalize converts any image to the canonical NRGBA representation with origin (0,0)
func Normalize(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// Resize resamples img to exactly w×h using the Lanczos filter
func Resize(img image.Image, w, h int) *image.NRGBA {
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// Crop cuts rect out of img. rect is relative to the image origin.
func Crop(img image.Image, rect image.Rectangle) *image.NRGBA {
	return imaging.Crop(img, rect.Add(img.Bounds().Min))
}

// Flatten composites img over an opaque bg canvas, weighting by the source alpha
func Flatten(img image.Image, bg color.Color) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

// IsOpaque reports whether every pixel of img has full alpha
func IsOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

// CreateCropOverlay draws the crop rectangle over a copy of img for debugging
func CreateCropOverlay(img image.Image, crop image.Rectangle) image.Image {
	nrgba := imaging.Clone(img)
	w := nrgba.Bounds().Dx()
	h := nrgba.Bounds().Dy()

	gold := color.NRGBA{255, 204, 0, 255}           // crop box
	blue := color.NRGBA{0, 170, 255, 255}           // image center
	stroke := int(max(2, 0.004*float64(min(w, h)))) // ~0.4% of min side

	for s := 0; s < stroke; s++ {
		drawHLine(nrgba, crop.Min.Y+s, crop.Min.X, crop.Max.X, gold)
		drawHLine(nrgba, crop.Max.Y-1-s, crop.Min.X, crop.Max.X, gold)
		drawVLine(nrgba, crop.Min.X+s, crop.Min.Y, crop.Max.Y, gold)
		drawVLine(nrgba, crop.Max.X-1-s, crop.Min.Y, crop.Max.Y, gold)
	}

	ix, iy := w/2, h/2
	drawHLine(nrgba, iy, ix-6, ix+6, blue)
	drawVLine(nrgba, ix, iy-6, iy+6, blue)

	return nrgba
}

func drawHLine(img *image.NRGBA, y, x0, x1 int, c color.NRGBA) {
	if y < 0 || y >= img.Bounds().Dy() {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0 = max(x0, 0)
	x1 = min(x1, img.Bounds().Dx())
	i := y*img.Stride + x0*4
	for x := x0; x < x1; x++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += 4
	}
}

func drawVLine(img *image.NRGBA, x, y0, y1 int, c color.NRGBA) {
	if x < 0 || x >= img.Bounds().Dx() {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	y0 = max(y0, 0)
	y1 = min(y1, img.Bounds().Dy())
	i := y0*img.Stride + x*4
	for y := y0; y < y1; y++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += img.Stride
	}
}
