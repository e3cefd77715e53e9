package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSVG/pkg/board"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <layout.svg>",
	Short: "Export the derived netlist",
	Long: `Exports the netlist inferred from trace junctions.

Formats:
  json   - structured netlist with net ids and member traces
  kicad  - simplified KiCad netlist s-expression`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format (json|kicad)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	result, err := analyzeFile(args[0])
	if err != nil {
		return err
	}

	nl := board.NetlistFromJunctions(result.Traces, result.Junctions)
	nl.Finalize()

	var data []byte
	switch exportFormat {
	case "json":
		data, err = nl.ExportJSON()
		if err != nil {
			return fmt.Errorf("error exporting netlist: %w", err)
		}
	case "kicad":
		out, err := nl.ExportKiCad()
		if err != nil {
			return fmt.Errorf("error exporting netlist: %w", err)
		}
		data = []byte(out)
	default:
		return fmt.Errorf("unknown format '%s' (want json or kicad)", exportFormat)
	}

	if exportOutput == "" {
		fmt.Print(string(data))
		return nil
	}

	if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	if verbose {
		fmt.Printf("Wrote %d nets to %s\n", nl.NetCount(), exportOutput)
	}
	return nil
}
