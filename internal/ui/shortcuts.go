package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleShortcut(key string) (string, error, tea.Cmd) {
	if command, ok := m.shortcuts[key]; ok {
		return m.commander.Execute(command)
	}
	return "", nil, nil
}

func (m Model) showShortcuts() string {
	keys := make([]string, 0, len(m.shortcuts))
	for k := range m.shortcuts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("Keyboard Shortcuts:\n")
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("%-12s: %s\n", k, m.shortcuts[k]))
	}
	return sb.String()
}
