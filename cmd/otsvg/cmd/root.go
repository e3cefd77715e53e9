package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSVG/pkg/board"
)

var (
	// Global flags
	verbose   bool
	tolerance float64
	layerPat  string
	minWidth  float64
)

var rootCmd = &cobra.Command{
	Use:   "otsvg",
	Short: "OpenTraceSVG - PCB trace topology recovery from SVG layouts",
	Long: `OpenTraceSVG (otsvg) recovers the electrical topology of a PCB layout
from its SVG representation: per-trace geometry and routing direction,
junction points where traces meet, and the implied connectivity and nets.

Examples:
  otsvg analyze board.svg               # Analyze traces and junctions
  otsvg nets board.svg                  # List derived nets
  otsvg nets board.svg trace42          # Show one trace's connectivity
  otsvg export --format kicad board.svg # Export netlist
  otsvg ui board.svg                    # Interactive trace browser`,
	Version: "0.9.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Float64VarP(&tolerance, "tolerance", "t", board.DefaultTolerance,
		"endpoint distance treated as the same junction point")
	rootCmd.PersistentFlags().StringVar(&layerPat, "layer", "",
		"only analyze traces whose layer matches this regex")
	rootCmd.PersistentFlags().Float64Var(&minWidth, "min-width", 0,
		"drop traces narrower than this width")
}

// analysisConfig assembles a board.Config from the global flags.
func analysisConfig() *board.Config {
	cfg := board.DefaultConfig()
	cfg.Tolerance = tolerance
	cfg.OnlyLayerPattern = layerPat
	cfg.MinWidth = minWidth
	return cfg
}
