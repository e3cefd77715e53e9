// Package tui is an interactive terminal browser over an analyzed layout:
// a trace list on the left, connectivity details on the right, and an
// alternate junction view.
package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/OpenTraceLab/OpenTraceSVG/pkg/board"
)

// Model holds the browser state.
type Model struct {
	// Data
	Filename string
	Result   *board.Result

	// UI state
	SelectedIdx   int
	ShowJunctions bool
	WindowSize    tea.WindowSizeMsg

	// Components
	Details viewport.Model
}

// NewModel returns the initial state over an analysis result.
func NewModel(filename string, result *board.Result) Model {
	return Model{
		Filename: filename,
		Result:   result,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}
