package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tempbar/internal/bar"
)

// coarseStep is the fraction moved by the shifted navigation keys.
const coarseStep = 0.1

// Update is the main update function for the bubbletea loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.help.Width = msg.Width

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		if m.commandMode {
			return m.updateCommandMode(msg)
		}

		if msg.Type != tea.KeyCtrlC {
			m.exitPrompt = false
		}

		switch {
		case msg.Type == tea.KeyCtrlC:
			// If we're already prompting to exit, this time we really quit
			if m.exitPrompt {
				return m, tea.Quit
			}
			m.exitPrompt = true
			m.setOutput(levelWarning, "Press Ctrl+C again to exit or any other key to continue...")

		case msg.String() == "q":
			return m, tea.Quit

		case key.Matches(msg, m.keys.Warmer):
			m.nudge(-m.fineStep())
		case key.Matches(msg, m.keys.Cooler):
			m.nudge(m.fineStep())
		case msg.String() == "H" || msg.String() == "K":
			m.nudge(-coarseStep)
		case msg.String() == "L" || msg.String() == "J":
			m.nudge(coarseStep)

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Command):
			m.commandMode = true
			m.input.Focus()
			return m, textinput.Blink

		default:
			output, err, cmd := m.handleShortcut(msg.String())
			if err != nil {
				m.setOutput(levelError, fmt.Sprintf("Error: %v", err))
			} else if output != "" {
				m.setOutput(levelInfo, output)
			}
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// handleMouse translates terminal mouse events into drag events along the
// bar axis. Presses off the bar are not the bar's to handle.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	coord, onBar := m.barCoord(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if onBar {
				m.bar.DragStart(coord)
			}
		case tea.MouseButtonWheelUp:
			m.nudge(-m.fineStep())
		case tea.MouseButtonWheelDown:
			m.nudge(m.fineStep())
		}
	case tea.MouseActionMotion:
		m.bar.DragMove(coord)
	case tea.MouseActionRelease:
		m.bar.DragEnd()
	}
}

// barCoord maps a screen cell to a coordinate along the bar axis and
// reports whether the cell is part of the bar widget.
func (m Model) barCoord(x, y int) (float64, bool) {
	g := m.bar.Geometry()
	thickness := g.Thickness
	if thickness < 1 {
		thickness = 1
	}

	cells := drawnCells(g)
	if g.Orientation == bar.Vertical {
		onBar := x >= 0 && x <= thickness && y >= barTop && y < barTop+cells
		return float64(y - barTop), onBar
	}
	onBar := y >= barTop && y <= barTop+thickness && x >= 0 && x < cells
	return float64(x), onBar
}

// drawnCells is how many cells the bar occupies along its axis; the upper
// pointer position is always one of them, even without a halo.
func drawnCells(g bar.Geometry) int {
	return max(g.Extent(), g.Upper()+1)
}

func (m Model) fineStep() float64 {
	return 1 / float64(m.bar.Geometry().Length)
}

// nudge moves the pointer by delta of the scale, staying on the bar.
func (m *Model) nudge(delta float64) {
	f := m.bar.NormalizedTemperature() + delta
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	m.bar.SetTemperature(f)
}

func (m Model) updateCommandMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.Type {
	case tea.KeyEsc:
		m.leaveCommandMode()
		return m, nil

	case tea.KeyCtrlC:
		m.leaveCommandMode()
		return m, nil

	case tea.KeyTab:
		m.handleTabCompletion()
		return m, nil

	case tea.KeyUp:
		if m.historyPos < len(m.history)-1 {
			m.historyPos++
			m.input.SetValue(m.history[len(m.history)-1-m.historyPos])
		}
		return m, nil

	case tea.KeyDown:
		if m.historyPos > 0 {
			m.historyPos--
			m.input.SetValue(m.history[len(m.history)-1-m.historyPos])
		} else if m.historyPos == 0 {
			m.historyPos = -1
			m.input.SetValue("")
		}
		return m, nil

	case tea.KeyEnter:
		command := strings.TrimSpace(m.input.Value())
		m.clearTabCompletion()
		m.leaveCommandMode()
		if command == "" {
			return m, nil
		}

		output, err, cmd := m.commander.Execute(command)
		if err != nil {
			m.setOutput(levelError, fmt.Sprintf("Error: %v", err))
		} else {
			m.setOutput(levelInfo, output)
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.history = append(m.history, command)
		m.historyPos = -1
		return m, tea.Batch(cmds...)

	case tea.KeyBackspace:
		if len(m.input.Value()) == 0 {
			m.clearTabCompletion()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) leaveCommandMode() {
	m.commandMode = false
	m.input.Blur()
	m.input.SetValue("")
}
