// Package icongen generates the icon set of a web and mobile app from a single master image.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		icongen "github.com/menta2k/icon-generator"
//	)
//
//	func main() {
//		gen := icongen.New()
//		res, err := gen.Generate("master.png", "./icons_output")
//		if err != nil {
//			log.Fatal(err)
//		}
//		log.Printf("wrote %d files", len(res.Files))
//	}
//
// The package consists of these components:
//
// 1. Processing (pkg/processing): loading, resampling, cropping, flattening and encoding
// 2. Icons (pkg/icons): square icons, the chroma-keyed logo and the maskable icon
// 3. Cropper (pkg/cropper): the center-cropped Open Graph preview
// 4. Generator (pkg/generator): runs the fixed catalog and writes every file
//
// Outputs for the default catalog:
//
//   - 12 opaque iOS icons from 29 to 1024 px
//   - 5 transparent web and PWA icons from 16 to 512 px
//   - icon-512-maskable.png with content in the inner 80% safe zone
//   - logo.png with the corner-sampled background keyed to black
//   - og-image.png, 1200x630 and opaque
package icongen

import (
	"log"

	"github.com/menta2k/icon-generator/internal/config"
	"github.com/menta2k/icon-generator/pkg/generator"
)

// Version of the icon generator
const Version = "1.0.0"

// IconGenerator provides a high-level interface for generating the default asset set
type IconGenerator struct {
	config    *config.Config
	generator *generator.Generator
}

// New creates an IconGenerator for the default catalog
func New() *IconGenerator {
	cfg := config.Default()
	return &IconGenerator{
		config:    cfg,
		generator: generator.New(cfg),
	}
}

// SetLogger sets where progress is reported
func (ig *IconGenerator) SetLogger(logger *log.Logger) {
	ig.generator.SetLogger(logger)
}

// Generate writes all derivatives of masterPath into outDir.
// An empty outDir selects the default ./icons_output.
func (ig *IconGenerator) Generate(masterPath, outDir string) (*generator.Result, error) {
	if outDir == "" {
		outDir = ig.config.Output.OutputDir
	}
	return ig.generator.Run(masterPath, outDir)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
