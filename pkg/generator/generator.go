// Package generator drives the full icon derivative batch for a master image.
//
// Every derivative is computed from the same normalized master and written to
// disk before the next one starts. A failed write aborts the run and leaves
// earlier files in place.
package generator

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/menta2k/icon-generator/internal/config"
	"github.com/menta2k/icon-generator/internal/utils"
	"github.com/menta2k/icon-generator/pkg/analyzer"
	"github.com/menta2k/icon-generator/pkg/cropper"
	"github.com/menta2k/icon-generator/pkg/icons"
	"github.com/menta2k/icon-generator/pkg/processing"
	"github.com/menta2k/icon-generator/pkg/types"
)

// ErrMasterNotFound is returned when the master path does not name a file
var ErrMasterNotFound = errors.New("master file not found")

// Generator produces the configured asset set from a master image
type Generator struct {
	config    *config.Config
	processor *processing.Processor
	analyzer  *analyzer.ImageAnalyzer
	cropper   *cropper.CenterCropper
	logger    *log.Logger
	favicon   bool
	debug     bool
}

// New creates a Generator for cfg, logging nowhere until SetLogger is called
func New(cfg *config.Config) *Generator {
	return &Generator{
		config:    cfg,
		processor: processing.NewProcessor(),
		analyzer: analyzer.NewWithConfig(analyzer.Config{
			RecommendedSize: cfg.Master.RecommendedSize,
			MinIconSize:     cfg.Master.MinIconSize,
		}),
		cropper: cropper.NewWithTarget(cropper.AspectRatio{
			Width:  cfg.OG.Width,
			Height: cfg.OG.Height,
			Name:   "og",
		}),
		logger: log.New(io.Discard, "", 0),
	}
}

// SetLogger sets where progress and warnings are reported
func (g *Generator) SetLogger(logger *log.Logger) {
	g.logger = logger
}

// SetFavicon enables writing a multi-resolution favicon.ico
func (g *Generator) SetFavicon(enabled bool) {
	g.favicon = enabled
}

// SetDebug enables writing an overlay of the OG crop region on the master
func (g *Generator) SetDebug(enabled bool) {
	g.debug = enabled
}

// Result summarizes a completed run
type Result struct {
	OutputDir  string
	Files      []string
	Warnings   []types.Warning
	Background types.BackgroundSample
	OGRegion   image.Rectangle
}

// Run loads the master at masterPath and writes every derivative into outDir
func (g *Generator) Run(masterPath, outDir string) (*Result, error) {
	if err := g.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if !utils.FileExists(masterPath) {
		return nil, fmt.Errorf("%w: %s", ErrMasterNotFound, masterPath)
	}

	g.logger.Printf("Loading master image: %s", masterPath)
	img, err := g.processor.LoadImage(masterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load master image: %w", err)
	}

	res := &Result{OutputDir: outDir}
	res.Warnings = g.analyzer.CheckMaster(img)
	for _, w := range res.Warnings {
		g.logger.Printf("Warning: %s", w)
	}

	master := processing.Normalize(img)

	if err := utils.EnsureDir(outDir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	g.logger.Printf("Output directory: %s", outDir)

	g.logger.Println()
	g.logger.Printf("Generating icons...")
	for _, spec := range g.config.Icons {
		icon, err := icons.Resize(master, spec.Size, spec.PreserveTransparency)
		if err != nil {
			return res, fmt.Errorf("icon %s: %w", spec.Filename, err)
		}
		d := types.Derived{
			Filename:    spec.Filename,
			Image:       icon,
			Description: fmt.Sprintf("%dx%d, %s", spec.Size, spec.Size, spec.Mode()),
		}
		if err := g.write(res, d); err != nil {
			return res, err
		}
	}

	if err := g.writeMaskable(res, master); err != nil {
		return res, err
	}
	if err := g.writeLogo(res, master); err != nil {
		return res, err
	}

	g.logger.Println()
	g.logger.Printf("Generating OG image...")
	if err := g.writeOG(res, master); err != nil {
		return res, err
	}

	if g.favicon {
		if err := g.writeFavicon(res, master); err != nil {
			return res, err
		}
	}

	g.logger.Println()
	g.logger.Printf("Done! Generated %d images in %s", len(res.Files), outDir)
	return res, nil
}

func (g *Generator) writeMaskable(res *Result, master image.Image) error {
	c := g.config.Maskable
	img, err := icons.Maskable(master, c.Size)
	if err != nil {
		return fmt.Errorf("maskable icon: %w", err)
	}
	return g.write(res, types.Derived{
		Filename:    c.Filename,
		Image:       img,
		Description: fmt.Sprintf("%dx%d, maskable with padding", c.Size, c.Size),
	})
}

func (g *Generator) writeLogo(res *Result, master image.Image) error {
	c := g.config.Logo
	img, bg, err := icons.ReplaceBackground(master, c.Size, c.Tolerance)
	if err != nil {
		return fmt.Errorf("logo: %w", err)
	}
	res.Background = bg
	return g.write(res, types.Derived{
		Filename:    c.Filename,
		Image:       img,
		Description: fmt.Sprintf("%dx%d, black background", c.Size, c.Size),
	})
}

func (g *Generator) writeOG(res *Result, master image.Image) error {
	c := g.config.OG
	crop, err := g.cropper.Crop(master)
	if err != nil {
		return fmt.Errorf("og image: %w", err)
	}
	res.OGRegion = crop.Region
	if err := g.write(res, types.Derived{
		Filename:    c.Filename,
		Image:       crop.Image,
		Description: fmt.Sprintf("%dx%d", c.Width, c.Height),
	}); err != nil {
		return err
	}

	if !g.debug {
		return nil
	}
	name := strings.TrimSuffix(c.Filename, filepath.Ext(c.Filename)) + "_debug.png"
	path := filepath.Join(res.OutputDir, name)
	if err := g.processor.SavePNG(processing.CreateCropOverlay(master, crop.Region), path); err != nil {
		g.logger.Printf("debug overlay save failed: %v", err)
		return nil
	}
	g.logger.Printf("  %s (crop %v)", name, crop.Region)
	return nil
}

func (g *Generator) writeFavicon(res *Result, master image.Image) error {
	var images []image.Image
	for _, size := range g.config.Output.FaviconSizes {
		img, err := icons.Resize(master, size, true)
		if err != nil {
			return fmt.Errorf("favicon: %w", err)
		}
		images = append(images, img)
	}

	name := g.config.Output.FaviconFilename
	path := filepath.Join(res.OutputDir, name)
	if err := g.processor.SaveICO(images, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	res.Files = append(res.Files, path)
	g.logger.Printf("  %s (%v, %s)", name, g.config.Output.FaviconSizes, utils.FormatFileSize(utils.FileSize(path)))
	return nil
}

func (g *Generator) write(res *Result, d types.Derived) error {
	path := filepath.Join(res.OutputDir, d.Filename)
	if err := g.processor.SavePNG(d.Image, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.Filename, err)
	}
	res.Files = append(res.Files, path)
	g.logger.Printf("  %s (%s, %s)", d.Filename, d.Description, utils.FormatFileSize(utils.FileSize(path)))
	return nil
}
