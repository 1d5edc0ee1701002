package colortemp

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 0xAARRGGBB value.
type Color uint32

const (
	Transparent Color = 0x00000000
	Black       Color = 0xff000000
	White       Color = 0xffffffff
)

// RGB returns a fully opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return ARGB(0xff, r, g, b)
}

// ARGB packs the four channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha replaces the alpha channel.
func (c Color) WithAlpha(a uint8) Color {
	return ARGB(a, c.R(), c.G(), c.B())
}

// Hex formats the RGB channels as #rrggbb, alpha is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.A(), c.R(), c.G(), c.B())
}

// Colorful converts the RGB channels to a go-colorful color.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255.0,
		G: float64(c.G()) / 255.0,
		B: float64(c.B()) / 255.0,
	}
}

// FromColorful converts a go-colorful color back to a Color with the given alpha.
func FromColorful(cc colorful.Color, alpha uint8) Color {
	r, g, b := cc.Clamped().RGB255()
	return ARGB(alpha, r, g, b)
}

// HSV returns hue in [0,360) and saturation/value in [0,1].
func (c Color) HSV() [3]float64 {
	h, s, v := c.Colorful().Hsv()
	return [3]float64{h, s, v}
}

// FromHSV builds an opaque color from an HSV triple as returned by HSV.
func FromHSV(hsv [3]float64) Color {
	return FromColorful(colorful.Hsv(hsv[0], hsv[1], hsv[2]), 0xff)
}

// ParseHex parses #rgb or #rrggbb into an opaque color.
func ParseHex(s string) (Color, error) {
	cc, err := colorful.Hex(expandShortHex(s))
	if err != nil {
		return Transparent, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return FromColorful(cc, 0xff), nil
}

func expandShortHex(s string) string {
	if len(s) == 4 && s[0] == '#' {
		return "#" + string(s[1]) + string(s[1]) +
			string(s[2]) + string(s[2]) +
			string(s[3]) + string(s[3])
	}
	return s
}
