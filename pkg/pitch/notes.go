package pitch

import (
	"fmt"
	"math"
)

// MIDI range of the generated samples: C2 through B5
const (
	StartMidi = 36
	EndMidi   = 83
)

// NoteNames uses "s" for sharps so names are safe in file paths
var NoteNames = []string{"C", "Cs", "D", "Ds", "E", "F", "Fs", "G", "Gs", "A", "As", "B"}

// HzToMidi converts a frequency to a fractional MIDI note number
func HzToMidi(freq float64) float64 {
	if freq <= 0 {
		return 0
	}
	return 69 + 12*math.Log2(freq/440)
}

// Octave returns the scientific pitch octave of a MIDI note (60 is C4)
func Octave(midi int) int {
	return midi/12 - 1
}

// NoteName returns names like "C2" or "Cs3"
func NoteName(midi int) string {
	return fmt.Sprintf("%s%d", NoteNames[midi%12], Octave(midi))
}
