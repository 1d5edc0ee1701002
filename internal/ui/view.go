package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tempbar/internal/bar"
	"tempbar/pkg/viz"
)

const factorBarWidth = 20

func (m Model) View() string {
	if !m.ready {
		return "\nInitializing..."
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(m.scheme.Primary).
		Render("tempbar - color temperature")

	barView := viz.RenderBar(m.barView(), m.scheme)
	details := m.detailsView()

	var body string
	if m.bar.Geometry().Orientation == bar.Vertical {
		body = lipgloss.JoinHorizontal(lipgloss.Top, barView, "   ", details)
	} else {
		body = barView + "\n\n" + details
	}

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n\n")
	sb.WriteString(body)
	sb.WriteString("\n\n")
	sb.WriteString(m.outputView())
	sb.WriteString("\n")
	sb.WriteString(m.footerView())
	return sb.String()
}

func (m Model) barView() viz.BarView {
	g := m.bar.Geometry()
	return viz.BarView{
		Gradient:     m.bar.Gradient(),
		Length:       g.Length,
		HaloRadius:   g.HaloRadius,
		Thickness:    g.Thickness,
		Position:     m.bar.Position(),
		PointerColor: m.bar.PointerColor(),
		Vertical:     g.Orientation == bar.Vertical,
		Dragging:     m.bar.Dragging(),
	}
}

func (m Model) detailsView() string {
	label := lipgloss.NewStyle().Foreground(m.scheme.Text).Width(12)
	value := lipgloss.NewStyle().Foreground(m.scheme.Highlight)

	color := m.bar.Color()
	p := m.commander.Picker()

	lines := []string{
		label.Render("Temperature") + value.Render(viz.FormatKelvin(m.bar.Temperature())),
		label.Render("Color") + value.Render(fmt.Sprintf("%s  alpha %d", color.Hex(), color.A())),
		label.Render("Center") + value.Render(p.CenterColor().Hex()),
		label.Render("Pointer") + value.Render(fmt.Sprintf("%d (%s)", m.bar.Position(), m.bar.DragState())),
	}
	if m.notices.count > 0 {
		lines = append(lines, label.Render("Changed")+
			value.Render(fmt.Sprintf("%s (%d updates)", m.notices.lastColor.Hex(), m.notices.count)))
	}

	readouts := strings.Join(lines, "\n")
	swatch := viz.Swatch(color, 8, len(lines))
	factors := strings.Join([]string{
		viz.FactorBar("Value", factorBarWidth, p.Value(), m.scheme),
		viz.FactorBar("Opacity", factorBarWidth, p.Opacity(), m.scheme),
		viz.FactorBar("Saturation", factorBarWidth, p.Saturation(), m.scheme),
	}, "\n")

	return lipgloss.JoinHorizontal(lipgloss.Top, swatch, "  ", readouts) + "\n\n" + factors
}

func (m Model) outputView() string {
	content := m.mainOutput
	switch m.outputLevel {
	case levelWarning:
		content = lipgloss.NewStyle().Foreground(m.scheme.Warning).Render(content)
	case levelError:
		content = lipgloss.NewStyle().Foreground(m.scheme.Error).Bold(true).Render(content)
	}
	if m.tabOutput != "" {
		content += "\n" + m.tabOutput
	}
	if m.help.ShowAll {
		content += "\n\n" + m.showShortcuts()
	}
	return m.style.Width(max(m.width-2, 20)).Render(content)
}

func (m Model) footerView() string {
	if m.commandMode {
		return ":" + m.input.View()
	}
	return m.help.View(m.keys)
}
