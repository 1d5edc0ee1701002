package commands

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tempbar/internal/logging"
	"tempbar/internal/state"
	"tempbar/pkg/colortemp"
	"tempbar/pkg/viz"
)

func (c *Commander) handleCommand(cmd string, args []string) (string, error, tea.Cmd) {
	switch cmd {
	case "help", "h":
		return c.handleHelp()
	case "temp", "t":
		return c.handleTemperature(args)
	case "kelvin", "k":
		return c.handleKelvin(args)
	case "color", "c":
		return c.handleColor(args)
	case "value", "v":
		return c.handleFactor("value", args, c.picker.SetValue)
	case "opacity", "o":
		return c.handleFactor("opacity", args, c.picker.SetOpacity)
	case "saturation", "s":
		return c.handleFactor("saturation", args, c.picker.SetSaturation)
	case "save":
		return c.handleSave(args)
	case "restore", "r":
		return c.handleRestore(args)
	case "info", "i":
		return c.handleInfo()
	case "quit", "q", "exit":
		return "Goodbye!", nil, tea.Quit
	default:
		return "", fmt.Errorf("unknown command: %s (type 'help' for available commands)", cmd), nil
	}
}

func parseFraction(args []string, usage string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	f, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", args[0])
	}
	return f, nil
}

func (c *Commander) handleTemperature(args []string) (string, error, tea.Cmd) {
	f, err := parseFraction(args, "temp <0..1>")
	if err != nil {
		return "", err, nil
	}
	if f < 0 || f > 1 {
		return "", fmt.Errorf("temperature fraction %.3f outside 0..1", f), nil
	}
	c.bar.SetTemperature(f)
	return fmt.Sprintf("Temperature set to %s", viz.FormatKelvin(c.bar.Temperature())), nil, nil
}

func (c *Commander) handleKelvin(args []string) (string, error, tea.Cmd) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: kelvin <0..%d>", colortemp.MaxKelvin), nil
	}
	k, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(args[0]), "k"))
	if err != nil {
		return "", fmt.Errorf("not a temperature: %s", args[0]), nil
	}
	if k < 0 || k > colortemp.MaxKelvin {
		return "", fmt.Errorf("temperature %d outside 0..%d", k, colortemp.MaxKelvin), nil
	}
	c.bar.SetTemperature(float64(k) / colortemp.MaxKelvin)
	return fmt.Sprintf("Temperature set to %s", viz.FormatKelvin(c.bar.Temperature())), nil, nil
}

func (c *Commander) handleColor(args []string) (string, error, tea.Cmd) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: color <#rrggbb>"), nil
	}
	col, err := colortemp.ParseHex(args[0])
	if err != nil {
		return "", err, nil
	}
	got := c.bar.SetColor(col)
	return fmt.Sprintf("Bar end color %s, pointer color %s", col.Hex(), got.Hex()), nil, nil
}

func (c *Commander) handleFactor(name string, args []string, set func(float64)) (string, error, tea.Cmd) {
	f, err := parseFraction(args, name+" <0..1>")
	if err != nil {
		return "", err, nil
	}
	if f < 0 || f > 1 {
		return "", fmt.Errorf("%s %.3f outside 0..1", name, f), nil
	}
	set(f)
	// Reapply the pointer so the picker's combined color picks up the change.
	c.bar.SetTemperature(c.bar.NormalizedTemperature())
	logging.Debug("commands: %s set to %.3f", name, f)
	return fmt.Sprintf("%s set to %s", cases.Title(language.English).String(name), viz.FormatPercent(f)), nil, nil
}

func (c *Commander) statePathArg(args []string) string {
	if len(args) > 0 {
		return strings.Trim(strings.Join(args, " "), `"'`)
	}
	return c.statePath
}

func (c *Commander) handleSave(args []string) (string, error, tea.Cmd) {
	path := c.statePathArg(args)
	if path == "" {
		return "", fmt.Errorf("usage: save <path>"), nil
	}
	if err := state.Save(path, c.bar); err != nil {
		return "", fmt.Errorf("save failed: %w", err), nil
	}
	return fmt.Sprintf("State saved to %s", path), nil, nil
}

func (c *Commander) handleRestore(args []string) (string, error, tea.Cmd) {
	path := c.statePathArg(args)
	if path == "" {
		return "", fmt.Errorf("usage: restore <path>"), nil
	}
	if err := state.Restore(path, c.bar); err != nil {
		return "", fmt.Errorf("restore failed: %w", err), nil
	}
	return fmt.Sprintf("State restored from %s", path), nil, nil
}

func (c *Commander) handleInfo() (string, error, tea.Cmd) {
	g := c.bar.Geometry()
	col := c.bar.Color()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Temperature:  %s (%.3f of scale)\n",
		viz.FormatKelvin(c.bar.Temperature()), c.bar.NormalizedTemperature()))
	sb.WriteString(fmt.Sprintf("Pointer:      %d in [%d, %d], %s\n",
		c.bar.Position(), g.Lower(), g.Upper(), c.bar.DragState()))
	sb.WriteString(fmt.Sprintf("Color:        %s alpha %d\n", col.Hex(), col.A()))
	sb.WriteString(fmt.Sprintf("Pointer paint %s\n", c.bar.PointerColor().Hex()))
	sb.WriteString(fmt.Sprintf("Gradient:     %s -> %s\n",
		c.bar.Gradient().Start.Hex(), c.bar.Gradient().End.Hex()))
	sb.WriteString(fmt.Sprintf("Center color: %s\n", c.picker.CenterColor().Hex()))
	sb.WriteString(fmt.Sprintf("Bar:          length %d, halo %d, %s",
		g.Length, g.HaloRadius, g.Orientation))
	return sb.String(), nil, nil
}
