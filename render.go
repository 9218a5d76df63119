package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	tileStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("236"))
	flapStyle = tileStyle.Copy().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("240"))
	hingeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("232")).
			Background(lipgloss.Color("236"))
	labelStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	unitStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).PaddingLeft(1)
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

const tileGap = " "

// renderTile draws one tile as a card: the upper half, the hinge and the
// lower half. While flipping the lower half is the falling flap.
func renderTile(f Face) string {
	top := tileStyle.Render(" " + string(f.Top) + " ")
	bottomStyle := tileStyle
	if f.Flipping {
		bottomStyle = flapStyle
	}
	bottom := bottomStyle.Render(" " + string(f.Bottom) + " ")
	return lipgloss.JoinVertical(lipgloss.Left, top, hingeStyle.Render("───"), bottom)
}

func renderBoard(b *Board) string {
	faces := b.Faces()
	if len(faces) == 0 {
		return ""
	}
	cells := make([]string, 0, 2*len(faces)-1)
	for i, f := range faces {
		if i > 0 {
			cells = append(cells, tileGap)
		}
		cells = append(cells, renderTile(f))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m model) renderPanel(p *panel, selected bool) string {
	marker, style := "  ", labelStyle
	if selected {
		marker, style = "▶ ", selectedLabelStyle
	}
	label := marker
	if m.config.ShowName && p.name != "" {
		label += p.name
	}

	row := []string{"  ", renderBoard(p.board)}
	if p.amPm != nil && p.amPm.Len() > 0 {
		row = append(row, "  ", renderBoard(p.amPm))
	}
	if m.config.ShowUnit && p.unit != "" && !p.pinned {
		row = append(row, unitStyle.Render(p.unit))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		style.Render(label),
		lipgloss.JoinHorizontal(lipgloss.Bottom, row...),
	)
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var blocks []string
	for i, p := range m.panels {
		blocks = append(blocks, m.renderPanel(p, i == m.selected), "")
	}

	var result strings.Builder
	result.WriteString(lipgloss.JoinVertical(lipgloss.Left, blocks...))
	if m.mode == uiEditing {
		result.WriteString("\n")
		result.WriteString(m.input.View())
	}
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) statusLine() string {
	status := fmt.Sprintf("Mode: %s", m.modeString())
	if p := m.selectedPanel(); p != nil {
		status += fmt.Sprintf(" | Board %d/%d", m.selected+1, len(m.panels))
		if p.pinned {
			status += " | MESSAGE"
		}
	}
	if m.config.ForceNumeric {
		status += " | NUMERIC"
	}
	if m.sound.Enabled() {
		status += " | SOUND"
	}

	if m.mode == uiEditing {
		return statusStyle.Render(status + " | Enter=show, Esc=cancel")
	}
	if m.successMessage != "" {
		status += fmt.Sprintf(" | %s", m.successMessage)
	}
	if m.errorMessage != "" {
		return statusStyle.Render(status) + errorStyle.Render(fmt.Sprintf(" | ERROR: %s", m.errorMessage))
	}
	if m.successMessage == "" {
		status += " | ? for help | q to quit"
	}
	return statusStyle.Render(status)
}

func (m model) modeString() string {
	switch m.mode {
	case uiNormal:
		if m.config.Mode == ModeClock {
			return "CLOCK"
		}
		return "DATA"
	case uiEditing:
		return "EDIT"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpLines() []string {
	lines := []string{
		"Split-Flap Help",
		"===============",
		"",
	}
	for _, b := range m.keys.helpBindings() {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("  %-16s %s", h.Key, h.Desc))
	}
	lines = append(lines,
		"",
		"Boards spin forward through their drum until every tile shows its",
		"character. A new value mid-spin takes over from where the tile is.",
	)
	return lines
}

func (m model) helpView() string {
	helpLines := m.helpLines()

	visibleHeight := m.helpHeight()
	startLine := m.helpScroll
	if startLine > len(helpLines)-visibleHeight {
		startLine = len(helpLines) - visibleHeight
	}
	if startLine < 0 {
		startLine = 0
	}
	endLine := startLine + visibleHeight
	if endLine > len(helpLines) {
		endLine = len(helpLines)
	}

	result := strings.Join(helpLines[startLine:endLine], "\n")
	result += "\n" + statusStyle.Render(fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines)))
	return result
}

func (m model) helpHeight() int {
	// Leave room for the status line.
	if m.height-1 < 1 {
		return 1
	}
	return m.height - 1
}
