// Package colortemp maps black-body color temperatures to RGB colors.
package colortemp

import "math"

const (
	// MinKelvin is the lowest temperature ToColor is defined for.
	MinKelvin = 100
	// MaxKelvin is the temperature at the far end of the bar scale.
	MaxKelvin = 9000

	// GradientStartKelvin and GradientEndKelvin are the temperatures whose
	// colors form the default bar gradient.
	GradientStartKelvin = 3500
	GradientEndKelvin   = 9000
)

// ToColor converts a temperature in Kelvin to an opaque color using
// Tanner Helland's curve fit. The caller must keep kelvin >= MinKelvin;
// below that the logarithm is undefined.
func ToColor(kelvin int) Color {
	temp := kelvin / 100

	var red, green, blue int
	if temp <= 66 {
		red = 255
		green = round(99.4708025861*math.Log(float64(temp)) - 161.1195681661)

		if temp <= 19 {
			blue = 0
		} else {
			blue = round(138.5177312231*math.Log(float64(temp-10)) - 305.0447927307)
		}
	} else {
		red = round(329.698727446 * math.Pow(float64(temp-60), -0.1332047592))
		green = round(288.1221695283 * math.Pow(float64(temp-60), -0.0755148492))
		blue = 255
	}

	return RGB(clampChannel(red), clampChannel(green), clampChannel(blue))
}

// round rounds half up, so 0.5 -> 1 and -0.5 -> 0.
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
