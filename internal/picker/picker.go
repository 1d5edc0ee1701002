// Package picker combines the temperature bar with value, opacity and
// saturation adjustments into a single center color.
package picker

import (
	"github.com/lucasb-eyer/go-colorful"

	"tempbar/internal/logging"
	"tempbar/pkg/colortemp"
)

type ColorPicker struct {
	value      float64
	saturation float64
	opacity    float64

	center   colortemp.Color
	onChange func(colortemp.Color)
}

// New returns a picker whose adjustments leave colors untouched.
func New() *ColorPicker {
	return &ColorPicker{
		value:      1,
		saturation: 1,
		opacity:    1,
		center:     colortemp.White,
	}
}

// OnCenterColorChanged registers fn to be called when the center color changes.
func (p *ColorPicker) OnCenterColorChanged(fn func(colortemp.Color)) {
	p.onChange = fn
}

func (p *ColorPicker) SetValue(v float64)      { p.value = clamp01(v) }
func (p *ColorPicker) SetSaturation(s float64) { p.saturation = clamp01(s) }
func (p *ColorPicker) SetOpacity(o float64)    { p.opacity = clamp01(o) }

func (p *ColorPicker) Value() float64      { return p.value }
func (p *ColorPicker) Saturation() float64 { return p.saturation }
func (p *ColorPicker) Opacity() float64    { return p.opacity }

func (p *ColorPicker) CenterColor() colortemp.Color { return p.center }

// ChangeValueBarColor scales the HSV value of c.
func (p *ColorPicker) ChangeValueBarColor(c colortemp.Color) colortemp.Color {
	if p.value == 1 {
		return c
	}
	h, s, v := c.Colorful().Hsv()
	return colortemp.FromColorful(colorful.Hsv(h, s, v*p.value), c.A())
}

// ChangeOpacityBarColor replaces the alpha of c.
func (p *ColorPicker) ChangeOpacityBarColor(c colortemp.Color) colortemp.Color {
	return c.WithAlpha(uint8(p.opacity*255 + 0.5))
}

// ChangeSaturationBarColor scales the HSV saturation of c.
func (p *ColorPicker) ChangeSaturationBarColor(c colortemp.Color) colortemp.Color {
	if p.saturation == 1 {
		return c
	}
	h, s, v := c.Colorful().Hsv()
	return colortemp.FromColorful(colorful.Hsv(h, s*p.saturation, v), c.A())
}

func (p *ColorPicker) SetNewCenterColor(c colortemp.Color) {
	if c == p.center {
		return
	}
	p.center = c
	logging.Debug("picker: center color %s", c)
	if p.onChange != nil {
		p.onChange(c)
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
