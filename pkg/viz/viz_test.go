package viz

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"tempbar/pkg/colortemp"
)

func testView() BarView {
	return BarView{
		Gradient:     colortemp.DefaultGradient(),
		Length:       10,
		HaloRadius:   1,
		Thickness:    2,
		Position:     6,
		PointerColor: colortemp.ToColor(4500),
	}
}

func TestRenderBarHorizontal(t *testing.T) {
	out := RenderBar(testView(), DefaultColorScheme())
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 3)
	for _, l := range lines {
		assert.Equal(t, 12, lipgloss.Width(l))
	}
	assert.Contains(t, lines[0], markerHorizontal)
	assert.Contains(t, lines[1], pointerGlyph)
	assert.Equal(t, 10, strings.Count(lines[1], barGlyph))
}

func TestRenderBarVertical(t *testing.T) {
	v := testView()
	v.Vertical = true
	v.Dragging = true

	lines := strings.Split(RenderBar(v, DefaultColorScheme()), "\n")

	assert.Len(t, lines, 12)
	assert.Contains(t, lines[6], markerVertical)
	assert.Contains(t, lines[6], pointerGlyphDrag)
	assert.Equal(t, 3, lipgloss.Width(lines[0]))
}

func TestRenderBarPointerOffBar(t *testing.T) {
	v := testView()
	v.Position = 40

	lines := strings.Split(RenderBar(v, DefaultColorScheme()), "\n")
	assert.NotContains(t, lines[0], markerHorizontal)
	assert.Equal(t, 11, strings.Count(lines[1], barGlyph))
}

func TestRenderBarWithoutHalo(t *testing.T) {
	tests := []struct {
		name     string
		vertical bool
	}{
		{"horizontal", false},
		{"vertical", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := BarView{
				Gradient:     colortemp.DefaultGradient(),
				Length:       10,
				Position:     10,
				PointerColor: colortemp.ToColor(colortemp.MaxKelvin),
				Vertical:     tt.vertical,
			}

			out := RenderBar(v, DefaultColorScheme())
			assert.Contains(t, out, pointerGlyph)
			if tt.vertical {
				lines := strings.Split(out, "\n")
				assert.Len(t, lines, 11)
				assert.Contains(t, lines[10], markerVertical)
			} else {
				lines := strings.Split(out, "\n")
				assert.Contains(t, lines[0], markerHorizontal)
				assert.Equal(t, 11, lipgloss.Width(lines[1]))
				assert.Equal(t, 10, strings.Count(lines[1], barGlyph))
			}
		})
	}
}

func TestRenderBarEmpty(t *testing.T) {
	assert.Empty(t, RenderBar(BarView{}, DefaultColorScheme()))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "6,500 K", FormatKelvin(6500))
	assert.Equal(t, "900 K", FormatKelvin(900))
	assert.Equal(t, "60%", FormatPercent(0.6))
}

func TestSchemeFallback(t *testing.T) {
	assert.Equal(t, ColorSchemes["nord"], Scheme("nord"))
	assert.Equal(t, DefaultColorScheme(), Scheme("missing"))
}

func TestSchemesComplete(t *testing.T) {
	for name, s := range ColorSchemes {
		for _, c := range []lipgloss.Color{s.Primary, s.Secondary, s.Accent, s.Background, s.Text, s.Highlight, s.Warning, s.Error} {
			assert.NotEmpty(t, string(c), name)
		}
	}
}

func TestFactorBar(t *testing.T) {
	out := FactorBar("Value", 10, 0.5, DefaultColorScheme())
	assert.Contains(t, out, "Value")
	assert.Equal(t, 5, strings.Count(out, "█"))
	assert.Equal(t, 5, strings.Count(out, "░"))
	assert.Contains(t, out, "50%")
}
