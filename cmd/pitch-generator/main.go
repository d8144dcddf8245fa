package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/menta2k/icon-generator/internal/utils"
	"github.com/menta2k/icon-generator/pkg/pitch"
)

func newRootCmd(runner pitch.Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pitch-generator SOURCE",
		Short:         "Generate pitch-shifted WAV files for all notes C2-B5",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			outDir, _ := cmd.Flags().GetString("output")

			if !utils.FileExists(source) {
				return fmt.Errorf("source file not found: %s", source)
			}

			logger := log.New(cmd.OutOrStdout(), "", 0)
			logger.Printf("Detecting pitch from: %s", source)

			hz, err := pitch.NewDetector(runner).Detect(cmd.Context(), source)
			if err != nil {
				return err
			}
			midi := pitch.HzToMidi(hz)
			logger.Printf("Detected pitch: %.2f Hz (MIDI %.1f, ~%s)", hz, midi, pitch.NoteName(int(math.Round(midi))))
			logger.Println()

			shifter := pitch.NewShifter(runner)
			shifter.SetLogger(logger)
			_, err = shifter.Generate(cmd.Context(), source, hz, outDir)
			return err
		},
	}

	cmd.Flags().StringP("output", "o", "output", "Output directory")
	return cmd
}

func main() {
	if err := newRootCmd(pitch.ExecRunner{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
