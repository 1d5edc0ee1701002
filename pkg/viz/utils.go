package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tempbar/pkg/colortemp"
)

var printer = message.NewPrinter(language.English)

// FormatKelvin renders a temperature with digit grouping, e.g. "6,500 K".
func FormatKelvin(k int) string {
	return printer.Sprintf("%d K", k)
}

// FormatPercent renders a [0,1] fraction as a whole percentage.
func FormatPercent(f float64) string {
	return printer.Sprintf("%.0f%%", f*100)
}

// Drawing helpers
func createBar(width int, fill float64, style lipgloss.Style) string {
	if width < 1 {
		return ""
	}
	if fill < 0 {
		fill = 0
	}

	filled := int(float64(width) * fill)
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled)
	if filled < width {
		bar += strings.Repeat("░", width-filled)
	}

	return style.Render(bar)
}

// FactorBar draws a labelled fill bar for one of the picker's adjustments.
func FactorBar(label string, width int, fill float64, scheme ColorScheme) string {
	labelStyle := lipgloss.NewStyle().Foreground(scheme.Text).Width(12)
	barStyle := lipgloss.NewStyle().Foreground(scheme.Secondary)
	return labelStyle.Render(label) + createBar(width, fill, barStyle) + " " + FormatPercent(fill)
}

// Swatch draws a width x height block filled with c.
func Swatch(c colortemp.Color, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return lipgloss.NewStyle().Background(lipglossColor(c)).Render(strings.Join(rows, "\n"))
}
