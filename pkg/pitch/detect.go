package pitch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// MinPitch is the lowest frequency in Hz treated as a voiced frame
const MinPitch = 50.0

// ErrNoPitch is returned when no frame above MinPitch was detected
var ErrNoPitch = errors.New("no valid pitch detected in the audio file")

// Detector estimates the pitch of a recording with aubiopitch
type Detector struct {
	runner Runner
	method string
}

// NewDetector creates a detector using the yinfft method
func NewDetector(runner Runner) *Detector {
	return &Detector{runner: runner, method: "yinfft"}
}

// Detect returns the median pitch in Hz of all voiced frames in source
func (d *Detector) Detect(ctx context.Context, source string) (float64, error) {
	out, err := d.runner.Run(ctx, "aubiopitch", "-p", d.method, source)
	if err != nil {
		return 0, fmt.Errorf("running aubiopitch: %w", err)
	}
	if out.ExitCode != 0 {
		return 0, fmt.Errorf("aubiopitch: %w (exit %d): %s", ErrCommandFailed, out.ExitCode, strings.TrimSpace(out.Stderr))
	}

	pitches := ParsePitchTrack(out.Stdout)
	if len(pitches) == 0 {
		return 0, ErrNoPitch
	}
	return Median(pitches), nil
}

// ParsePitchTrack reads "timestamp pitch" lines and keeps pitches above MinPitch.
// Malformed lines are skipped.
func ParsePitchTrack(track string) []float64 {
	var pitches []float64
	sc := bufio.NewScanner(strings.NewReader(track))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		p, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || math.IsNaN(p) {
			continue
		}
		if p > MinPitch {
			pitches = append(pitches, p)
		}
	}
	return pitches
}

// Median returns the upper median of values, or 0 for an empty slice
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}
