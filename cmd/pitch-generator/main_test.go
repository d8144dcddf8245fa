package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/menta2k/icon-generator/pkg/pitch"
)

type stubRunner struct{}

func (stubRunner) Run(_ context.Context, name string, _ ...string) (*pitch.Output, error) {
	if name == "aubiopitch" {
		return &pitch.Output{Stdout: "0.0 0.0\n0.1 220.0\n0.2 220.0\n"}, nil
	}
	return &pitch.Output{}, nil
}

func TestRootCmd(t *testing.T) {
	source := filepath.Join(t.TempDir(), "voice.wav")
	if err := os.WriteFile(source, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}
	outDir := t.TempDir()

	cmd := newRootCmd(stubRunner{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{source, "-o", outDir})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for _, want := range []string{
		"Detected pitch: 220.00 Hz (MIDI 57.0, ~A3)",
		"Done! Generated 48 files in " + outDir,
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out.String())
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "octave_5")); err != nil {
		t.Errorf("Expected octave directory: %v", err)
	}
}

func TestRootCmdMissingSource(t *testing.T) {
	cmd := newRootCmd(stubRunner{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.wav")})
	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "source file not found") {
		t.Errorf("Expected source not found error, got %v", err)
	}
}
