package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSVG/pkg/board"
)

var netsCmd = &cobra.Command{
	Use:   "nets <layout.svg> [trace-id]",
	Short: "Show derived net information",
	Long: `Display the electrical nets inferred from trace junctions.

Without trace-id: lists all nets with their member traces
With trace-id: shows detailed connectivity for that specific trace`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runNets,
}

func init() {
	rootCmd.AddCommand(netsCmd)
}

func runNets(cmd *cobra.Command, args []string) error {
	result, err := analyzeFile(args[0])
	if err != nil {
		return err
	}

	if len(args) >= 2 {
		return showTraceDetails(result, args[1])
	}

	listAllNets(result)
	return nil
}

func listAllNets(result *board.Result) {
	fmt.Printf("Board: %d nets across %d traces\n\n", len(result.Nets), len(result.Traces))
	fmt.Printf("%-8s %6s  %s\n", "Net", "Traces", "Members")
	fmt.Println(strings.Repeat("─", 56))

	for _, net := range result.Nets {
		fmt.Printf("Net-%-4d %6d  %s\n", net.ID, len(net.TraceIDs), strings.Join(net.TraceIDs, ", "))
	}
}

func showTraceDetails(result *board.Result, traceID string) error {
	var trace *board.Trace
	for i := range result.Traces {
		if result.Traces[i].ID == traceID {
			trace = &result.Traces[i]
			break
		}
	}
	if trace == nil {
		return fmt.Errorf("trace '%s' not found", traceID)
	}

	fmt.Printf("Trace: %s\n", trace.ID)
	fmt.Printf("  Direction: %s\n", trace.Direction)
	fmt.Printf("  Width:     %.2f\n", trace.Width)
	if trace.Layer != "" {
		fmt.Printf("  Layer:     %s\n", trace.Layer)
	}
	if trace.Start != nil && trace.End != nil {
		fmt.Printf("  Route:     (%.2f, %.2f) to (%.2f, %.2f), %d points\n",
			trace.Start.X, trace.Start.Y, trace.End.X, trace.End.Y, len(trace.Points))
	}

	fmt.Printf("\nConnected traces (%d):\n", len(trace.Connected))
	for _, id := range trace.Connected {
		fmt.Printf("  %s\n", id)
	}

	fmt.Printf("\nJunctions:\n")
	for _, j := range result.Junctions {
		for _, id := range j.TraceIDs {
			if id == traceID {
				fmt.Printf("  (%.4f, %.4f) with %s\n",
					j.Point.X, j.Point.Y, strings.Join(j.TraceIDs, ", "))
				break
			}
		}
	}

	return nil
}
