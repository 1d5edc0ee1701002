package bar

import (
	"errors"
	"fmt"

	"tempbar/pkg/colortemp"
)

// ErrInvalidGeometry is returned for bar dimensions that cannot be scaled.
var ErrInvalidGeometry = errors.New("invalid bar geometry")

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Geometry describes the bar along its principal axis. The pointer travels
// over [HaloRadius, HaloRadius+Length].
type Geometry struct {
	Length        int
	Thickness     int
	PointerRadius int
	HaloRadius    int
	Orientation   Orientation
}

// Validate rejects geometry that would break the scale factors.
func (g Geometry) Validate() error {
	switch {
	case g.Length <= 0:
		return fmt.Errorf("%w: length %d must be positive", ErrInvalidGeometry, g.Length)
	case g.HaloRadius < 0:
		return fmt.Errorf("%w: halo radius %d is negative", ErrInvalidGeometry, g.HaloRadius)
	case g.PointerRadius < 0:
		return fmt.Errorf("%w: pointer radius %d is negative", ErrInvalidGeometry, g.PointerRadius)
	case g.Thickness < 0:
		return fmt.Errorf("%w: thickness %d is negative", ErrInvalidGeometry, g.Thickness)
	}
	return nil
}

// Lower is the smallest pointer position.
func (g Geometry) Lower() int { return g.HaloRadius }

// Upper is the largest pointer position.
func (g Geometry) Upper() int { return g.HaloRadius + g.Length }

// Extent is the size of the whole widget along the bar axis, halo included.
func (g Geometry) Extent() int { return g.Length + 2*g.HaloRadius }

// ScaleFactors convert between pixel offsets along the bar and Kelvin.
// The two factors are always computed together from the same length.
type ScaleFactors struct {
	Length                int
	PositionToTemperature float64
	TemperatureToPosition float64
}

func NewScaleFactors(length int) ScaleFactors {
	return ScaleFactors{
		Length:                length,
		PositionToTemperature: colortemp.MaxKelvin / float64(length),
		TemperatureToPosition: float64(length) / colortemp.MaxKelvin,
	}
}

func (s ScaleFactors) ToTemperature(offset float64) float64 {
	return s.PositionToTemperature * offset
}

func (s ScaleFactors) ToPosition(kelvin float64) float64 {
	return s.TemperatureToPosition * kelvin
}

// Temperature converts an offset from the start of the bar to whole Kelvin,
// truncating. The far end always maps to MaxKelvin.
func (s ScaleFactors) Temperature(offset int) int {
	if offset == s.Length {
		return colortemp.MaxKelvin
	}
	return int(s.ToTemperature(float64(offset)))
}
