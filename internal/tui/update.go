package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.Details.Width = msg.Width - msg.Width/2 - 4
		m.Details.Height = msg.Height - 7 // minus title, footer, borders
		m.Details.SetContent(m.detailContent())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
			m.Details.SetContent(m.detailContent())
			m.Details.GotoTop()

		case "down", "j":
			if m.SelectedIdx < m.listLen()-1 {
				m.SelectedIdx++
			}
			m.Details.SetContent(m.detailContent())
			m.Details.GotoTop()

		case "tab":
			m.ShowJunctions = !m.ShowJunctions
			m.SelectedIdx = 0
			m.Details.SetContent(m.detailContent())
			m.Details.GotoTop()

		default:
			// pgup/pgdn and mouse wheel scroll the detail panel
			m.Details, cmd = m.Details.Update(msg)
		}
	}

	return m, cmd
}

// listLen is the length of whichever list is showing.
func (m Model) listLen() int {
	if m.ShowJunctions {
		return len(m.Result.Junctions)
	}
	return len(m.Result.Traces)
}

// detailContent renders the right-hand panel for the current selection.
func (m Model) detailContent() string {
	if m.ShowJunctions {
		return m.junctionDetails()
	}
	return m.traceDetails()
}
