package icongen

import (
	"bytes"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	ig := New()
	if ig == nil {
		t.Fatal("New() returned nil")
	}
	if ig.config == nil {
		t.Error("config is nil")
	}
	if ig.generator == nil {
		t.Error("generator is nil")
	}
}

func TestGenerate(t *testing.T) {
	master := filepath.Join(t.TempDir(), "master.png")
	f, err := os.Create(master)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 48, 48))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	var buf bytes.Buffer
	ig := New()
	ig.SetLogger(log.New(&buf, "", 0))

	outDir := t.TempDir()
	res, err := ig.Generate(master, outDir)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(res.Files) != 20 {
		t.Errorf("Expected 20 files, got %d", len(res.Files))
	}
	if !strings.Contains(buf.String(), "Loading master image") {
		t.Error("Expected progress output")
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() != Version {
		t.Errorf("Expected %s, got %s", Version, GetVersion())
	}
}
