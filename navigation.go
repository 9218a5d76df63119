package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) handleNavigation(msg tea.KeyMsg) {
	delta := 1
	if key.Matches(msg, m.keys.Up) {
		delta = -1
	}
	if m.help {
		m.scrollHelp(delta)
		return
	}
	m.moveSelection(delta)
}

// moveSelection steps through the panels, wrapping at either end.
func (m *model) moveSelection(delta int) {
	n := len(m.panels)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
}

func (m *model) scrollHelp(delta int) {
	m.helpScroll += delta
	maxScroll := len(m.helpLines()) - m.helpHeight()
	if m.helpScroll > maxScroll {
		m.helpScroll = maxScroll
	}
	if m.helpScroll < 0 {
		m.helpScroll = 0
	}
}
