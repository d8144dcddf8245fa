package config

import (
	"fmt"

	"github.com/menta2k/icon-generator/pkg/types"
)

// Config holds the fixed asset set produced from a master image
type Config struct {
	Icons    []types.IconSpec `json:"icons"`
	Maskable MaskableConfig   `json:"maskable"`
	Logo     LogoConfig       `json:"logo"`
	OG       OGConfig         `json:"og"`
	Master   MasterConfig     `json:"master"`
	Output   OutputConfig     `json:"output"`
}

// MaskableConfig holds configuration for the safe-zone padded icon
type MaskableConfig struct {
	Size     int    `json:"size"`
	Filename string `json:"filename"`
}

// LogoConfig holds configuration for the chroma-keyed logo
type LogoConfig struct {
	Size      int    `json:"size"`
	Filename  string `json:"filename"`
	Tolerance int    `json:"tolerance"`
}

// OGConfig holds configuration for the link preview image
type OGConfig struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Filename string `json:"filename"`
}

// MasterConfig holds the soft size recommendations for the master image
type MasterConfig struct {
	RecommendedSize int `json:"recommended_size"`
	MinIconSize     int `json:"min_icon_size"`
}

// OutputConfig holds configuration for output generation
type OutputConfig struct {
	OutputDir       string `json:"output_dir"`
	FaviconFilename string `json:"favicon_filename"`
	FaviconSizes    []int  `json:"favicon_sizes"`
}

// Default returns the asset catalog for iOS, web and PWA icons
func Default() *Config {
	return &Config{
		Icons: []types.IconSpec{
			// iOS
			{Size: 1024, Filename: "icon-1024.png"},
			{Size: 180, Filename: "apple-touch-icon.png"},
			{Size: 167, Filename: "icon-167.png"},
			{Size: 152, Filename: "icon-152.png"},
			{Size: 120, Filename: "icon-120.png"},
			{Size: 76, Filename: "icon-76.png"},
			{Size: 60, Filename: "icon-60.png"},
			{Size: 87, Filename: "icon-87.png"},
			{Size: 80, Filename: "icon-80.png"},
			{Size: 58, Filename: "icon-58.png"},
			{Size: 40, Filename: "icon-40.png"},
			{Size: 29, Filename: "icon-29.png"},
			// web favicons
			{Size: 32, Filename: "favicon-32x32.png", PreserveTransparency: true},
			{Size: 16, Filename: "favicon-16x16.png", PreserveTransparency: true},
			{Size: 48, Filename: "favicon-48.png", PreserveTransparency: true},
			// PWA
			{Size: 192, Filename: "icon-192.png", PreserveTransparency: true},
			{Size: 512, Filename: "icon-512.png", PreserveTransparency: true},
		},
		Maskable: MaskableConfig{
			Size:     512,
			Filename: "icon-512-maskable.png",
		},
		Logo: LogoConfig{
			Size:      192,
			Filename:  "logo.png",
			Tolerance: 30,
		},
		OG: OGConfig{
			Width:    1200,
			Height:   630,
			Filename: "og-image.png",
		},
		Master: MasterConfig{
			RecommendedSize: 1280,
			MinIconSize:     1024,
		},
		Output: OutputConfig{
			OutputDir:       "./icons_output",
			FaviconFilename: "favicon.ico",
			FaviconSizes:    []int{16, 32, 48},
		},
	}
}

// Total returns the number of images a run writes, excluding the optional favicon.ico
func (c *Config) Total() int {
	return len(c.Icons) + 3
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Icons) == 0 {
		return fmt.Errorf("icons cannot be empty")
	}

	seen := make(map[string]bool)
	for _, ic := range c.Icons {
		if ic.Size < 1 {
			return fmt.Errorf("icon %s: size must be positive", ic.Filename)
		}
		if ic.Filename == "" {
			return fmt.Errorf("icon of size %d has no filename", ic.Size)
		}
		if seen[ic.Filename] {
			return fmt.Errorf("duplicate icon filename: %s", ic.Filename)
		}
		seen[ic.Filename] = true
	}

	if c.Maskable.Size < 1 {
		return fmt.Errorf("maskable.size must be positive")
	}

	if c.Logo.Size < 1 {
		return fmt.Errorf("logo.size must be positive")
	}

	if c.Logo.Tolerance < 0 || c.Logo.Tolerance > 256 {
		return fmt.Errorf("logo.tolerance must be between 0 and 256")
	}

	if c.OG.Width < 1 || c.OG.Height < 1 {
		return fmt.Errorf("og dimensions must be positive")
	}

	for _, name := range []string{c.Maskable.Filename, c.Logo.Filename, c.OG.Filename} {
		if name == "" {
			return fmt.Errorf("derived image filename cannot be empty")
		}
		if seen[name] {
			return fmt.Errorf("duplicate output filename: %s", name)
		}
		seen[name] = true
	}

	if c.Master.MinIconSize > c.Master.RecommendedSize {
		return fmt.Errorf("master.min_icon_size must not exceed master.recommended_size")
	}

	return nil
}
