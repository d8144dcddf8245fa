package pitch

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Trim is cut from both ends of every shifted sample, in seconds
const Trim = "0.2"

// Shifter writes pitch-shifted copies of a recording with sox
type Shifter struct {
	runner Runner
	logger *log.Logger
}

// NewShifter creates a shifter that reports nothing until SetLogger is called
func NewShifter(runner Runner) *Shifter {
	return &Shifter{runner: runner, logger: log.New(io.Discard, "", 0)}
}

// SetLogger sets where per-note progress is reported
func (s *Shifter) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// ShiftResult lists the samples written and the notes sox failed on
type ShiftResult struct {
	Files  []string
	Failed []string
}

// Cents returns the shift from a fractional source note to a target note, truncated toward zero
func Cents(sourceMidi float64, targetMidi int) int {
	return int((float64(targetMidi) - sourceMidi) * 100)
}

// SamplePath returns octave_<n>/<Note>.wav under outDir
func SamplePath(outDir string, midi int) string {
	return filepath.Join(outDir, fmt.Sprintf("octave_%d", Octave(midi)), NoteName(midi)+".wav")
}

// Generate writes one sample per note from StartMidi to EndMidi.
// A note sox fails on is reported and skipped; an error starting sox aborts.
func (s *Shifter) Generate(ctx context.Context, source string, sourceHz float64, outDir string) (*ShiftResult, error) {
	sourceMidi := HzToMidi(sourceHz)
	res := &ShiftResult{}

	s.logger.Printf("Generating %d pitch-shifted files...", EndMidi-StartMidi+1)
	s.logger.Printf("Output directory: %s", outDir)

	for target := StartMidi; target <= EndMidi; target++ {
		path := SamplePath(outDir, target)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return res, fmt.Errorf("failed to create octave directory: %w", err)
		}

		cents := Cents(sourceMidi, target)
		out, err := s.runner.Run(ctx, "sox", source, path, "pitch", strconv.Itoa(cents), "trim", Trim, "-"+Trim)
		if err != nil {
			return res, fmt.Errorf("running sox: %w", err)
		}

		name := NoteName(target)
		rel := filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path))
		if out.ExitCode != 0 {
			s.logger.Printf("Error generating %s: %s", name, strings.TrimSpace(out.Stderr))
			res.Failed = append(res.Failed, name)
			continue
		}
		res.Files = append(res.Files, path)
		s.logger.Printf("  Generated: %s (shift: %+.1f semitones)", rel, float64(target)-sourceMidi)
	}

	s.logger.Printf("Done! Generated %d files in %s", len(res.Files), outDir)
	return res, nil
}
