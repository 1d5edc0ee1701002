package ui

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"tempbar/internal/bar"
	"tempbar/internal/commands"
	"tempbar/internal/logging"
	"tempbar/pkg/colortemp"
	"tempbar/pkg/viz"
)

// barTop is the first screen row used by the bar.
const barTop = 2

// reservedRows are taken by everything below a vertical bar.
const reservedRows = 12

type keyMap struct {
	Warmer  key.Binding
	Cooler  key.Binding
	Coarse  key.Binding
	Command key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Warmer, k.Cooler, k.Command, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Warmer, k.Cooler, k.Coarse},
		{k.Command, k.Help, k.Quit},
	}
}

func newKeyMap(o bar.Orientation) keyMap {
	warmer, cooler := []string{"left", "h"}, []string{"right", "l"}
	warmerHelp, coolerHelp := "←/h", "→/l"
	if o == bar.Vertical {
		warmer, cooler = []string{"up", "k"}, []string{"down", "j"}
		warmerHelp, coolerHelp = "↑/k", "↓/j"
	}
	return keyMap{
		Warmer:  key.NewBinding(key.WithKeys(warmer...), key.WithHelp(warmerHelp, "warmer")),
		Cooler:  key.NewBinding(key.WithKeys(cooler...), key.WithHelp(coolerHelp, "cooler")),
		Coarse:  key.NewBinding(key.WithKeys("H", "L", "K", "J"), key.WithHelp("shift", "10% steps")),
		Command: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// notices collects listener callbacks; it is shared by every copy of Model.
type notices struct {
	lastColor colortemp.Color
	count     int
}

type Model struct {
	commander *commands.Commander
	bar       *bar.Controller
	preferred bar.Geometry

	input     textinput.Model
	help      help.Model
	keys      keyMap
	scheme    viz.ColorScheme
	style     lipgloss.Style
	notices   *notices
	shortcuts map[string]string

	ready       bool
	width       int
	height      int
	mainOutput  string
	outputLevel outputLevel
	tabOutput   string
	history     []string
	historyPos  int
	tabState    *TabState
	commandMode bool
	exitPrompt  bool
}

// outputLevel picks the scheme color of the output pane.
type outputLevel int

const (
	levelInfo outputLevel = iota
	levelWarning
	levelError
)

func (m *Model) setOutput(level outputLevel, text string) {
	m.outputLevel = level
	m.mainOutput = text
}

func (m Model) Init() tea.Cmd {
	return nil
}

// NewModel wraps a commander whose bar was built from the preferred geometry.
func NewModel(cmdr *commands.Commander, scheme viz.ColorScheme) Model {
	input := textinput.New()
	input.Placeholder = "Enter command (type 'help' for list)"
	input.CharLimit = 256
	input.Width = 60

	ctrl := cmdr.Bar()
	n := &notices{}
	ctrl.SetListener(bar.ListenerFunc(func(c colortemp.Color) {
		n.lastColor = c
		n.count++
	}))

	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))

	// Define keyboard shortcuts
	shortcuts := map[string]string{
		"ctrl+s": "save",
		"ctrl+r": "restore",
		"ctrl+g": "info",
	}

	m := Model{
		commander:  cmdr,
		bar:        ctrl,
		preferred:  ctrl.Geometry(),
		input:      input,
		help:       help.New(),
		keys:       newKeyMap(ctrl.Geometry().Orientation),
		scheme:     scheme,
		style:      style,
		notices:    n,
		shortcuts:  shortcuts,
		historyPos: -1,
		mainOutput: "Drag the pointer or press ':' for commands. Press '?' for help.",
	}

	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil {
		m.resize(w, h)
	}
	return m
}

// measure fits the preferred geometry into the space available along the
// bar axis; the bar never grows past its preferred length.
func measure(preferred bar.Geometry, available int) bar.Geometry {
	intrinsic := drawnCells(preferred)
	size := intrinsic
	if available < intrinsic {
		size = available
	}

	g := preferred
	g.Length = size - (intrinsic - preferred.Length)
	return g
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true

	available := width
	if m.preferred.Orientation == bar.Vertical {
		available = height - barTop - reservedRows
	}
	g := measure(m.preferred, available)
	if err := m.bar.SetGeometry(g); err != nil {
		logging.Debug("ui: resize %dx%d: %v", width, height, err)
		m.setOutput(levelWarning, "Window too small for the bar")
	}
}
