package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OpenTraceLab/OpenTraceSVG/pkg/board"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))
)

// directionGlyph gives each routing direction a one-cell marker.
func directionGlyph(d board.Direction) string {
	switch d {
	case board.DirectionHorizontal:
		return "─"
	case board.DirectionVertical:
		return "│"
	case board.DirectionDiagonal:
		return "╱"
	default:
		return "?"
	}
}

func (m Model) View() string {
	width := m.WindowSize.Width
	height := m.WindowSize.Height
	if width == 0 {
		return "loading..."
	}

	listWidth := width/2 - 4
	if listWidth < 20 {
		listWidth = 20
	}
	panelHeight := height - 5
	if panelHeight < 4 {
		panelHeight = 4
	}

	var left string
	if m.ShowJunctions {
		left = m.junctionList(panelHeight)
	} else {
		left = m.traceList(panelHeight)
	}

	leftPanel := panelStyle.Width(listWidth).Height(panelHeight).Render(left)
	rightPanel := panelStyle.Width(width - listWidth - 6).Height(panelHeight).Render(m.Details.View())

	title := titleStyle.Render(fmt.Sprintf("OpenTraceSVG — %s", m.Filename))
	footer := dimStyle.Render("j/k: select   tab: traces/junctions   q: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel),
		footer,
	)
}

// window clamps the visible slice of a list around the selection.
func window(selected, total, visible int) (int, int) {
	if total <= visible {
		return 0, total
	}
	start := selected - visible/2
	if start < 0 {
		start = 0
	}
	if start+visible > total {
		start = total - visible
	}
	return start, start + visible
}

func (m Model) traceList(height int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Traces (%d)\n", len(m.Result.Traces)))

	start, end := window(m.SelectedIdx, len(m.Result.Traces), height-2)
	for i := start; i < end; i++ {
		t := &m.Result.Traces[i]
		line := fmt.Sprintf("%s %-14s %s", directionGlyph(t.Direction), t.ID, t.Direction)
		if i == m.SelectedIdx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(normalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) traceDetails() string {
	if m.SelectedIdx >= len(m.Result.Traces) {
		return dimStyle.Render("no trace selected")
	}
	t := &m.Result.Traces[m.SelectedIdx]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Trace %s\n\n", t.ID))
	b.WriteString(fmt.Sprintf("Direction: %s\n", t.Direction))
	b.WriteString(fmt.Sprintf("Width:     %.2f\n", t.Width))
	if t.Layer != "" {
		b.WriteString(fmt.Sprintf("Layer:     %s\n", t.Layer))
	}
	if t.Start != nil && t.End != nil {
		b.WriteString(fmt.Sprintf("Start:     (%.2f, %.2f)\n", t.Start.X, t.Start.Y))
		b.WriteString(fmt.Sprintf("End:       (%.2f, %.2f)\n", t.End.X, t.End.Y))
		b.WriteString(fmt.Sprintf("Points:    %d\n", len(t.Points)))
	}

	b.WriteString(fmt.Sprintf("\nConnected (%d):\n", len(t.Connected)))
	for _, id := range t.Connected {
		b.WriteString("  " + id + "\n")
	}

	var member []string
	for _, j := range m.Result.Junctions {
		for _, id := range j.TraceIDs {
			if id == t.ID {
				member = append(member, fmt.Sprintf("(%.2f, %.2f)", j.Point.X, j.Point.Y))
				break
			}
		}
	}
	b.WriteString(fmt.Sprintf("\nJunctions (%d):\n", len(member)))
	for _, loc := range member {
		b.WriteString("  " + loc + "\n")
	}

	return b.String()
}

func (m Model) junctionList(height int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Junctions (%d)\n", len(m.Result.Junctions)))

	start, end := window(m.SelectedIdx, len(m.Result.Junctions), height-2)
	for i := start; i < end; i++ {
		j := m.Result.Junctions[i]
		line := fmt.Sprintf("(%.2f, %.2f) ×%d", j.Point.X, j.Point.Y, len(j.TraceIDs))
		if i == m.SelectedIdx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(normalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) junctionDetails() string {
	if m.SelectedIdx >= len(m.Result.Junctions) {
		return dimStyle.Render("no junction selected")
	}
	j := m.Result.Junctions[m.SelectedIdx]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Junction at (%.4f, %.4f)\n\n", j.Point.X, j.Point.Y))
	b.WriteString(fmt.Sprintf("Traces (%d):\n", len(j.TraceIDs)))
	for _, id := range j.TraceIDs {
		b.WriteString("  " + id + "\n")
	}
	return b.String()
}
