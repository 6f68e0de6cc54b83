// Package ui provides the terminal client for a local Hearts table.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts m in the alternate screen and blocks until the user quits.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
