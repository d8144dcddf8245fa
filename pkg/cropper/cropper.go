package cropper

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/menta2k/icon-generator/pkg/processing"
)

// ErrInvalidDimensions is returned for empty source or target sizes
var ErrInvalidDimensions = errors.New("invalid image dimensions")

// AspectRatio represents a target output size
type AspectRatio struct {
	Width  int
	Height int
	Name   string
}

// Ratio returns width divided by height
func (a AspectRatio) Ratio() float64 {
	return float64(a.Width) / float64(a.Height)
}

// OpenGraph is the link preview size
var OpenGraph = AspectRatio{1200, 630, "og"}

// CenterCropper crops to a fixed aspect ratio around the image center and resizes to the target
type CenterCropper struct {
	target AspectRatio
}

// New creates a cropper for the Open Graph preview size
func New() *CenterCropper {
	return &CenterCropper{target: OpenGraph}
}

// NewWithTarget creates a cropper for a custom target size
func NewWithTarget(target AspectRatio) *CenterCropper {
	return &CenterCropper{target: target}
}

// Target returns the output size of the cropper
func (c *CenterCropper) Target() AspectRatio {
	return c.target
}

// CropResult contains the result of a cropping operation
type CropResult struct {
	Image  image.Image
	Region image.Rectangle
}

// CropBox returns the largest rectangle with the target ratio centered in a w×h image.
// The longer axis is trimmed; the shorter one is kept whole.
func (c *CenterCropper) CropBox(w, h int) (image.Rectangle, error) {
	if w < 1 || h < 1 || c.target.Width < 1 || c.target.Height < 1 {
		return image.Rectangle{}, ErrInvalidDimensions
	}

	targetRatio := c.target.Ratio()
	imgRatio := float64(w) / float64(h)

	switch {
	case imgRatio > targetRatio:
		newW := int(math.Round(float64(h) * targetRatio))
		left := (w - newW) / 2
		return image.Rect(left, 0, left+newW, h), nil
	case imgRatio < targetRatio:
		newH := int(math.Round(float64(w) / targetRatio))
		top := (h - newH) / 2
		return image.Rect(0, top, w, top+newH), nil
	default:
		return image.Rect(0, 0, w, h), nil
	}
}

// Crop center-crops img to the target ratio, resizes it to the target size
// and flattens transparency onto white
func (c *CenterCropper) Crop(img image.Image) (CropResult, error) {
	bounds := img.Bounds()
	region, err := c.CropBox(bounds.Dx(), bounds.Dy())
	if err != nil {
		return CropResult{}, fmt.Errorf("crop %dx%d: %w", bounds.Dx(), bounds.Dy(), err)
	}

	cropped := image.Image(img)
	if region != image.Rect(0, 0, bounds.Dx(), bounds.Dy()) {
		cropped = processing.Crop(img, region)
	}

	resized := processing.Resize(cropped, c.target.Width, c.target.Height)
	return CropResult{
		Image:  processing.Flatten(resized, processing.White),
		Region: region,
	}, nil
}
