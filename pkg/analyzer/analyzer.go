package analyzer

import (
	"fmt"
	"image"

	"github.com/menta2k/icon-generator/pkg/types"
)

// ImageAnalyzer inspects the master image before derivatives are produced
type ImageAnalyzer struct {
	config Config
}

// Config holds the soft size thresholds for the master image
type Config struct {
	RecommendedSize int
	MinIconSize     int
}

// New creates a new ImageAnalyzer with default configuration
func New() *ImageAnalyzer {
	return &ImageAnalyzer{
		config: Config{
			RecommendedSize: 1280,
			MinIconSize:     1024,
		},
	}
}

// NewWithConfig creates a new ImageAnalyzer with custom configuration
func NewWithConfig(config Config) *ImageAnalyzer {
	return &ImageAnalyzer{config: config}
}

// ImageInfo contains basic image metadata
type ImageInfo struct {
	Width       int
	Height      int
	AspectRatio float64
	Area        int
}

// Square reports whether the image has equal sides
func (i ImageInfo) Square() bool {
	return i.Width == i.Height
}

// GetImageInfo returns basic information about an image
func (a *ImageAnalyzer) GetImageInfo(img image.Image) ImageInfo {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	info := ImageInfo{
		Width:  width,
		Height: height,
		Area:   width * height,
	}
	if height > 0 {
		info.AspectRatio = float64(width) / float64(height)
	}
	return info
}

// CheckMaster returns the non-fatal quality warnings for a master image.
// Only one size warning is reported: the general one wins below MinIconSize.
func (a *ImageAnalyzer) CheckMaster(img image.Image) []types.Warning {
	info := a.GetImageInfo(img)
	var warnings []types.Warning

	if !info.Square() {
		warnings = append(warnings, types.Warning{
			Kind:    types.WarnNotSquare,
			Message: fmt.Sprintf("Master image is not square (%dx%d)", info.Width, info.Height),
		})
	}

	side := min(info.Width, info.Height)
	switch {
	case side < a.config.MinIconSize:
		warnings = append(warnings, types.Warning{
			Kind: types.WarnBelowIconSize,
			Message: fmt.Sprintf("Master image is smaller than %dx%d, quality may be reduced",
				a.config.MinIconSize, a.config.MinIconSize),
		})
	case side < a.config.RecommendedSize:
		warnings = append(warnings, types.Warning{
			Kind: types.WarnBelowOGSize,
			Message: fmt.Sprintf("Master image is smaller than %dx%d, OG image quality may be reduced",
				a.config.RecommendedSize, a.config.RecommendedSize),
		})
	}

	return warnings
}
