package config

import (
	"testing"

	"github.com/menta2k/icon-generator/pkg/types"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}

	if len(cfg.Icons) != 17 {
		t.Errorf("Expected 17 catalog icons, got %d", len(cfg.Icons))
	}
	if cfg.Total() != 20 {
		t.Errorf("Expected 20 images per run, got %d", cfg.Total())
	}

	minSize, maxSize := cfg.Icons[0].Size, cfg.Icons[0].Size
	transparent := 0
	for _, ic := range cfg.Icons {
		minSize = min(minSize, ic.Size)
		maxSize = max(maxSize, ic.Size)
		if ic.PreserveTransparency {
			transparent++
		}
	}
	if minSize != 16 || maxSize != 1024 {
		t.Errorf("Expected catalog to span 16-1024, got %d-%d", minSize, maxSize)
	}
	if transparent != 5 {
		t.Errorf("Expected 5 transparent icons, got %d", transparent)
	}

	if cfg.Logo.Tolerance != 30 || cfg.Logo.Size != 192 {
		t.Errorf("Unexpected logo config %+v", cfg.Logo)
	}
	if cfg.Maskable.Size != 512 {
		t.Errorf("Expected maskable size 512, got %d", cfg.Maskable.Size)
	}
	if cfg.OG.Width != 1200 || cfg.OG.Height != 630 {
		t.Errorf("Expected OG 1200x630, got %dx%d", cfg.OG.Width, cfg.OG.Height)
	}
	if cfg.Output.OutputDir != "./icons_output" {
		t.Errorf("Unexpected default output dir %s", cfg.Output.OutputDir)
	}
}

func TestDefaultIsFresh(t *testing.T) {
	a := Default()
	a.Icons[0].Size = 1
	if Default().Icons[0].Size != 1024 {
		t.Error("Default() must return an independent catalog")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no icons", func(c *Config) { c.Icons = nil }},
		{"zero size", func(c *Config) { c.Icons[3].Size = 0 }},
		{"empty filename", func(c *Config) { c.Icons[0].Filename = "" }},
		{"duplicate icon", func(c *Config) {
			c.Icons = append(c.Icons, types.IconSpec{Size: 64, Filename: "icon-60.png"})
		}},
		{"maskable size", func(c *Config) { c.Maskable.Size = -1 }},
		{"logo size", func(c *Config) { c.Logo.Size = 0 }},
		{"tolerance", func(c *Config) { c.Logo.Tolerance = -5 }},
		{"og size", func(c *Config) { c.OG.Height = 0 }},
		{"logo clashes with icon", func(c *Config) { c.Logo.Filename = "icon-192.png" }},
		{"empty og filename", func(c *Config) { c.OG.Filename = "" }},
		{"master thresholds", func(c *Config) { c.Master.MinIconSize = 2000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
