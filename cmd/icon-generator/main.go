package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/menta2k/icon-generator/internal/config"
	"github.com/menta2k/icon-generator/pkg/generator"
)

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "icon-generator MASTER",
		Short: "Generate all required icon sizes from a master PNG",
		Long: "Generate iOS, web and PWA icons, a maskable icon, a logo and an OG image (1200x630)\n" +
			"from a master PNG. The master should be 1280x1280 or a larger square.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir, _ := cmd.Flags().GetString("output")
			ico, _ := cmd.Flags().GetBool("ico")
			debug, _ := cmd.Flags().GetBool("debug")

			gen := generator.New(cfg)
			gen.SetLogger(log.New(cmd.OutOrStdout(), "", 0))
			gen.SetFavicon(ico)
			gen.SetDebug(debug)

			_, err := gen.Run(args[0], outDir)
			return err
		},
	}

	cmd.Flags().StringP("output", "o", cfg.Output.OutputDir, "Output directory")
	cmd.Flags().Bool("ico", false, "Also write a multi-resolution "+cfg.Output.FaviconFilename)
	cmd.Flags().Bool("debug", false, "Also write an overlay of the OG crop region")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
