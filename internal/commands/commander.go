package commands

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tempbar/internal/bar"
	"tempbar/internal/picker"
)

// Commander runs typed commands against a bar and its picker.
type Commander struct {
	bar       *bar.Controller
	picker    *picker.ColorPicker
	statePath string
}

func NewCommander(c *bar.Controller, p *picker.ColorPicker, statePath string) *Commander {
	return &Commander{
		bar:       c,
		picker:    p,
		statePath: statePath,
	}
}

func (c *Commander) Bar() *bar.Controller { return c.bar }

func (c *Commander) Picker() *picker.ColorPicker { return c.picker }

func (c *Commander) StatePath() string { return c.statePath }

func (c *Commander) Execute(input string) (string, error, tea.Cmd) {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, ":")

	parts := strings.Fields(input)
	if len(parts) == 0 {
		return "", fmt.Errorf("empty command"), nil
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]
	return c.handleCommand(cmd, args)
}
