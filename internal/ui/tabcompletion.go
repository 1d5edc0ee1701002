package ui

import (
	"sort"
	"strings"
)

// TabState holds the current state of partial completions in progress.
type TabState struct {
	Completions  []string
	CurrentIndex int
}

// CompletionDef records a command, its aliases and the values it suggests.
type CompletionDef struct {
	Command     string
	Aliases     []string
	SubCommands []string
	Description string
}

// completionDefs is the table of known commands we can suggest on <Tab>.
var completionDefs = []CompletionDef{
	{Command: "temp", Aliases: []string{"t"}, SubCommands: []string{"0", "0.25", "0.5", "0.75", "1"}, Description: "Move pointer to a fraction"},
	{Command: "kelvin", Aliases: []string{"k"}, SubCommands: []string{"3500", "5000", "6500", "9000"}, Description: "Move pointer to a temperature"},
	{Command: "color", Aliases: []string{"c"}, SubCommands: []string{"#ffffff", "#d2dfff", "#ff0000"}, Description: "Set the bar end color"},
	{Command: "value", Aliases: []string{"v"}, Description: "Picker value"},
	{Command: "opacity", Aliases: []string{"o"}, Description: "Picker opacity"},
	{Command: "saturation", Aliases: []string{"s"}, Description: "Picker saturation"},
	{Command: "save", Description: "Save state"},
	{Command: "restore", Aliases: []string{"r"}, Description: "Restore state"},
	{Command: "info", Aliases: []string{"i"}, Description: "Show bar state"},
	{Command: "help", Aliases: []string{"h"}, Description: "Show help"},
	{Command: "quit", Aliases: []string{"q", "exit"}, Description: "Exit application"},
}

// handleTabCompletion completes the command name, or its argument once the
// command is known.
func (m *Model) handleTabCompletion() {
	input := m.input.Value()

	// Keep cycling through the suggestions we already offered.
	if m.tabState != nil && input == m.currentCompletion() {
		m.tabState.CurrentIndex = (m.tabState.CurrentIndex + 1) % len(m.tabState.Completions)
		m.input.SetValue(m.currentCompletion())
		m.input.CursorEnd()
		return
	}

	parts := strings.Fields(input)
	if len(parts) == 0 || (len(parts) == 1 && !strings.HasSuffix(input, " ")) {
		partial := ""
		if len(parts) == 1 {
			partial = strings.ToLower(parts[0])
		}
		m.startCompletion(commandCompletions(partial))
		return
	}

	def := findCompletionDef(strings.ToLower(parts[0]))
	if def == nil {
		m.clearTabCompletion()
		return
	}
	partial := ""
	if len(parts) > 1 {
		partial = parts[1]
	}
	var completions []string
	for _, sub := range def.SubCommands {
		if strings.HasPrefix(sub, partial) {
			completions = append(completions, parts[0]+" "+sub)
		}
	}
	m.startCompletion(completions)
}

func commandCompletions(partial string) []string {
	var completions []string
	for _, def := range completionDefs {
		if strings.HasPrefix(def.Command, partial) {
			completions = append(completions, def.Command)
		}
	}
	sort.Strings(completions)
	return completions
}

func findCompletionDef(cmd string) *CompletionDef {
	for i, def := range completionDefs {
		if cmd == def.Command || contains(def.Aliases, cmd) {
			return &completionDefs[i]
		}
	}
	return nil
}

func (m *Model) startCompletion(completions []string) {
	if len(completions) == 0 {
		m.clearTabCompletion()
		return
	}
	m.tabState = &TabState{Completions: completions}
	m.input.SetValue(m.currentCompletion())
	m.input.CursorEnd()
	m.tabOutput = completionHint(completions)
}

// completionHint lists the candidates, or describes the single command
// that was completed.
func completionHint(completions []string) string {
	if len(completions) > 1 {
		return "Completions: " + strings.Join(completions, "  ")
	}
	if strings.Contains(completions[0], " ") {
		return ""
	}
	if def := findCompletionDef(completions[0]); def != nil {
		return def.Command + ": " + def.Description
	}
	return ""
}

func (m *Model) currentCompletion() string {
	if m.tabState == nil || len(m.tabState.Completions) == 0 {
		return ""
	}
	return m.tabState.Completions[m.tabState.CurrentIndex]
}

func (m *Model) clearTabCompletion() {
	m.tabState = nil
	m.tabOutput = ""
}

func contains(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}
