package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSVG/pkg/board"
	"github.com/OpenTraceLab/OpenTraceSVG/pkg/svg"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <layout.svg>",
	Short: "Analyze traces and junctions in an SVG layout",
	Long: `Extracts copper traces from an SVG layout, resolves their geometry,
and reports routing directions, junction points, and connectivity.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	result, err := analyzeFile(args[0])
	if err != nil {
		return err
	}

	fmt.Print(formatSummary(result, args[0]))
	return nil
}

// analyzeFile runs extraction plus the full analysis pipeline on one file.
func analyzeFile(filename string) (*board.Result, error) {
	traces, err := svg.ExtractFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error extracting traces: %w", err)
	}

	result, err := board.Analyze(traces, analysisConfig())
	if err != nil {
		return nil, fmt.Errorf("error analyzing traces: %w", err)
	}
	return result, nil
}

// formatSummary renders the analysis report. The core returns structured
// data only; all presentation happens here.
func formatSummary(result *board.Result, filename string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", titleStyle.Render("Board: "+filename))
	fmt.Fprintf(&b, "  Traces:    %d\n", len(result.Traces))
	fmt.Fprintf(&b, "  Junctions: %d\n", len(result.Junctions))
	fmt.Fprintf(&b, "  Nets:      %d\n", len(result.Nets))

	bbox := result.BoundingBox()
	if !bbox.IsEmpty() {
		fmt.Fprintf(&b, "  Extent:    %.2f x %.2f\n", bbox.Width(), bbox.Height())
		fmt.Fprintf(&b, "  Center:    (%.2f, %.2f)\n", bbox.Center().X, bbox.Center().Y)
	}

	if verbose {
		fmt.Fprintf(&b, "\n%s\n", titleStyle.Render("Traces"))
		fmt.Fprintf(&b, "%-16s %-10s %8s %10s %s\n", "ID", "Direction", "Width", "Points", "Connected")
		for i := range result.Traces {
			t := &result.Traces[i]
			fmt.Fprintf(&b, "%-16s %-10s %8.2f %10d %s\n",
				t.ID, t.Direction, t.Width, len(t.Points), strings.Join(t.Connected, ","))
		}

		fmt.Fprintf(&b, "\n%s\n", titleStyle.Render("Junctions"))
		for i, j := range result.Junctions {
			fmt.Fprintf(&b, "  [%d] (%.4f, %.4f): %s\n",
				i, j.Point.X, j.Point.Y, strings.Join(j.TraceIDs, ", "))
		}
	}

	if len(result.Issues) > 0 {
		fmt.Fprintf(&b, "\n%s\n", warnStyle.Render(fmt.Sprintf("Issues (%d)", len(result.Issues))))
		for _, issue := range result.Issues {
			fmt.Fprintf(&b, "  %s\n", dimStyle.Render(issue.String()))
		}
	}

	return b.String()
}
