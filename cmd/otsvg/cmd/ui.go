package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSVG/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui <layout.svg>",
	Short: "Browse traces and junctions interactively",
	Long: `Opens an interactive terminal browser over the analyzed layout.

Controls:
  j / down, k / up  - Select trace
  tab               - Toggle junction view
  q / Esc           - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	result, err := analyzeFile(args[0])
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(args[0], result), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running UI: %w", err)
	}
	return nil
}
