package commands

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (c *Commander) handleHelp() (string, error, tea.Cmd) {
	help := `Available Commands:

temp, t <0..1>          Move the pointer to a fraction of the scale
kelvin, k <K>           Move the pointer to a temperature (0..9000)
color, c <#hex>         Set the color at the cool end of the bar
value, v <0..1>         Set the picker's value adjustment
opacity, o <0..1>       Set the picker's opacity adjustment
saturation, s <0..1>    Set the picker's saturation adjustment
save [path]             Save the bar state
restore, r [path]       Restore the bar state
info, i                 Show the bar's current state
help, h                 Show this help message
quit, q, exit           Exit application

Commands can be used with or without a colon prefix (:)`

	return help, nil, nil
}
