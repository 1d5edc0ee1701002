// Package bar holds the pointer state of a color-temperature bar: where the
// pointer is, which color that selects, and how drag input moves it.
package bar

import (
	"math"

	"tempbar/internal/logging"
	"tempbar/pkg/colortemp"
)

type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Controller converts pointer positions to colors. All methods are meant to
// be called from a single event loop goroutine.
type Controller struct {
	geom  Geometry
	scale ScaleFactors

	position     int
	normalized   float64 // fraction of MaxKelvin selected by the pointer
	color        colortemp.Color
	pointerColor colortemp.Color
	notified     colortemp.Color
	dragging     bool

	gradient colortemp.Gradient

	picker   Picker
	listener Listener
	redraw   func()
}

// NewController returns a controller with the pointer at the far end of the bar.
func NewController(g Geometry) (*Controller, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		geom:       g,
		scale:      NewScaleFactors(g.Length),
		position:   g.Upper(),
		normalized: 1,
		gradient:   colortemp.DefaultGradient(),
		notified:   colortemp.Transparent,
	}
	c.color = c.colorAt(c.position)
	c.pointerColor = c.color
	return c, nil
}

// SetPicker attaches the aggregate picker; nil detaches it.
func (c *Controller) SetPicker(p Picker) { c.picker = p }

func (c *Controller) SetListener(l Listener) { c.listener = l }

func (c *Controller) Listener() Listener { return c.listener }

// SetRedrawFunc registers the hook called whenever the bar needs repainting.
func (c *Controller) SetRedrawFunc(fn func()) { c.redraw = fn }

func (c *Controller) invalidate() {
	if c.redraw != nil {
		c.redraw()
	}
}

// SetGeometry applies new bar dimensions and moves the pointer so that it
// keeps selecting the same temperature.
func (c *Controller) SetGeometry(g Geometry) error {
	if err := g.Validate(); err != nil {
		return err
	}

	c.geom = g
	c.scale = NewScaleFactors(g.Length)
	c.position = roundCoord(c.scale.ToPosition(c.normalized*colortemp.MaxKelvin)) + g.HaloRadius

	logging.Debug("bar: geometry length=%d halo=%d %s, pointer at %d",
		g.Length, g.HaloRadius, g.Orientation, c.position)
	c.invalidate()
	return nil
}

// DragStart begins a drag. The pointer only jumps when coord is on the bar.
func (c *Controller) DragStart(coord float64) {
	c.dragging = true

	if c.inRange(coord) {
		c.moveTo(roundCoord(coord))
		c.color = c.colorAt(c.position)
		c.pointerColor = c.color
		c.invalidate()
	}
	logging.Debug("bar: drag start at %.1f, pointer %d", coord, c.position)
}

// DragMove follows the pointer while dragging. Coordinates past either end
// pin the pointer to that end.
func (c *Controller) DragMove(coord float64) {
	if c.dragging {
		switch {
		case c.inRange(coord):
			c.moveTo(roundCoord(coord))
			c.color = c.colorAt(c.position)
		case coord < float64(c.geom.Lower()):
			c.moveTo(c.geom.Lower())
			c.color = colortemp.White
		default:
			c.moveTo(c.geom.Upper())
			c.color = c.gradient.End
		}
		c.pointerColor = c.color
		c.applyPicker(false)
		c.invalidate()
	}

	// Runs even when nothing moved, so a color changed elsewhere is still reported.
	if c.listener != nil && c.notified != c.color {
		c.listener.OnTemperatureChanged(c.color)
		c.notified = c.color
	}
}

// DragEnd finishes a drag.
func (c *Controller) DragEnd() {
	c.dragging = false
	logging.Debug("bar: drag end, pointer %d color %s", c.position, c.color)
}

// SetColor makes color the end stop of the bar gradient and returns the
// color now selected by the pointer, which does not move.
func (c *Controller) SetColor(color colortemp.Color) colortemp.Color {
	c.gradient = colortemp.Gradient{
		Start: colortemp.ToColor(colortemp.GradientStartKelvin),
		End:   color,
	}
	c.color = c.colorAt(c.position)
	c.pointerColor = c.color
	c.invalidate()
	return c.color
}

// SetTemperature places the pointer at fraction of the bar, 0 being the
// start and 1 the end. fraction is not clamped; the selected color is.
func (c *Controller) SetTemperature(fraction float64) {
	c.normalized = fraction
	c.position = roundCoord(c.scale.ToPosition(fraction*colortemp.MaxKelvin)) + c.geom.HaloRadius
	c.color = c.colorAt(c.position)
	c.pointerColor = c.color
	c.applyPicker(true)

	logging.Debug("bar: temperature %.3f, pointer %d color %s", fraction, c.position, c.color)
	c.invalidate()
}

func (c *Controller) applyPicker(withSaturation bool) {
	if c.picker == nil {
		return
	}
	c.color = c.picker.ChangeValueBarColor(c.color)
	c.color = c.picker.ChangeOpacityBarColor(c.color)
	if withSaturation {
		c.color = c.picker.ChangeSaturationBarColor(c.color)
	}
	c.picker.SetNewCenterColor(c.color)
}

// Color returns the selected color after picker adjustments.
func (c *Controller) Color() colortemp.Color { return c.color }

// PointerColor is the color the pointer itself is painted with.
func (c *Controller) PointerColor() colortemp.Color { return c.pointerColor }

func (c *Controller) Position() int { return c.position }

func (c *Controller) Geometry() Geometry { return c.geom }

func (c *Controller) Scale() ScaleFactors { return c.scale }

func (c *Controller) Gradient() colortemp.Gradient { return c.gradient }

func (c *Controller) NormalizedTemperature() float64 { return c.normalized }

// Temperature is the Kelvin value under the pointer.
func (c *Controller) Temperature() int {
	return c.scale.Temperature(c.offset(c.position))
}

func (c *Controller) Dragging() bool { return c.dragging }

func (c *Controller) DragState() DragState {
	if c.dragging {
		return Dragging
	}
	return Idle
}

func (c *Controller) inRange(coord float64) bool {
	return coord >= float64(c.geom.Lower()) && coord <= float64(c.geom.Upper())
}

func (c *Controller) moveTo(pos int) {
	c.position = pos
	c.normalized = float64(c.offset(pos)) / float64(c.geom.Length)
}

// offset clamps pos to the bar and makes it relative to the bar start.
func (c *Controller) offset(pos int) int {
	off := pos - c.geom.HaloRadius
	if off < 0 {
		return 0
	}
	if off > c.geom.Length {
		return c.geom.Length
	}
	return off
}

// colorAt is the color selected at pos. Temperatures too low for the
// converter read as white.
func (c *Controller) colorAt(pos int) colortemp.Color {
	kelvin := c.scale.Temperature(c.offset(pos))
	if kelvin < colortemp.MinKelvin {
		return colortemp.White
	}
	return colortemp.ToColor(kelvin)
}

// roundCoord rounds half up like the host toolkit's pixel snapping.
func roundCoord(x float64) int {
	return int(math.Floor(x + 0.5))
}
