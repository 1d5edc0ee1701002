package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	pointerGlyph     = "●"
	pointerGlyphDrag = "◉"
	markerHorizontal = "▼"
	markerVertical   = "▶"
	barGlyph         = "█"
)

// RenderBar draws the bar with its pointer. Horizontal bars are a marker
// row followed by Thickness rows of cells; vertical bars are one row per
// cell with a marker column on the left.
func RenderBar(v BarView, scheme ColorScheme) string {
	if v.Length < 1 {
		return ""
	}

	cells := v.cells(scheme)
	if v.Vertical {
		return v.renderVertical(cells, scheme)
	}
	return v.renderHorizontal(cells, scheme)
}

// cells renders each position along the axis once, pointer included.
func (v BarView) cells(scheme ColorScheme) []string {
	stops := v.Gradient.Stops(v.Length + 1)

	pointerStyle := lipgloss.NewStyle().
		Foreground(lipglossColor(v.PointerColor)).
		Background(scheme.Background)
	glyph := pointerGlyph
	if v.Dragging {
		glyph = pointerGlyphDrag
		pointerStyle = pointerStyle.Background(scheme.Accent)
	}

	out := make([]string, v.cellCount())
	for i := range out {
		switch {
		case i == v.Position:
			out[i] = pointerStyle.Render(glyph)
		case i >= v.HaloRadius && i-v.HaloRadius < len(stops):
			out[i] = lipgloss.NewStyle().
				Foreground(lipglossColor(stops[i-v.HaloRadius])).
				Render(barGlyph)
		default:
			out[i] = " "
		}
	}
	return out
}

func (v BarView) thickness() int {
	if v.Thickness < 1 {
		return 1
	}
	return v.Thickness
}

func (v BarView) renderHorizontal(cells []string, scheme ColorScheme) string {
	markerStyle := lipgloss.NewStyle().Foreground(scheme.Highlight)

	var sb strings.Builder
	for i := 0; i < len(cells); i++ {
		if i == v.Position {
			sb.WriteString(markerStyle.Render(markerHorizontal))
		} else {
			sb.WriteString(" ")
		}
	}

	row := strings.Join(cells, "")
	for i := 0; i < v.thickness(); i++ {
		sb.WriteString("\n")
		sb.WriteString(row)
	}
	return sb.String()
}

func (v BarView) renderVertical(cells []string, scheme ColorScheme) string {
	markerStyle := lipgloss.NewStyle().Foreground(scheme.Highlight)

	lines := make([]string, len(cells))
	for i, cell := range cells {
		marker := " "
		if i == v.Position {
			marker = markerStyle.Render(markerVertical)
		}
		lines[i] = marker + strings.Repeat(cell, v.thickness())
	}
	return strings.Join(lines, "\n")
}
