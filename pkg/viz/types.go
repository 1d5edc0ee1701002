package viz

import (
	"github.com/charmbracelet/lipgloss"

	"tempbar/pkg/colortemp"
)

// BarView is everything needed to draw one temperature bar. Positions are
// cells from the start of the widget, halo included.
type BarView struct {
	Gradient     colortemp.Gradient
	Length       int
	HaloRadius   int
	Thickness    int
	Position     int
	PointerColor colortemp.Color
	Vertical     bool
	Dragging     bool
}

// Extent is the widget size along the bar axis.
func (v BarView) Extent() int {
	return v.Length + 2*v.HaloRadius
}

// cellCount is the number of cells drawn along the axis. Without a halo the
// upper pointer position sits one cell past the extent.
func (v BarView) cellCount() int {
	return max(v.Extent(), v.HaloRadius+v.Length+1)
}

// lipglossColor drops alpha; terminals have no translucency.
func lipglossColor(c colortemp.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
