package ui

import tea "github.com/charmbracelet/bubbletea"

// TUI wraps our Bubble Tea program.
type TUI struct {
	model   Model
	program *tea.Program
}

// New returns a new TUI handle
func New(m Model) *TUI {
	return &TUI{model: m}
}

// Start runs the TUI main loop
func (t *TUI) Start() error {
	p := tea.NewProgram(t.model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	t.program = p
	_, err := p.Run()
	return err
}
