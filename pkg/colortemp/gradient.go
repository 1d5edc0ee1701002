package colortemp

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Gradient is a two-stop linear gradient between Start and End.
type Gradient struct {
	Start Color
	End   Color
}

// DefaultGradient spans the bar's display range.
func DefaultGradient() Gradient {
	return Gradient{
		Start: ToColor(GradientStartKelvin),
		End:   ToColor(GradientEndKelvin),
	}
}

// At returns the color at t in [0,1]; t outside that range is clamped.
func (g Gradient) At(t float64) Color {
	return g.sampler().at(t)
}

// Stops samples n evenly spaced colors from Start to End inclusive.
func (g Gradient) Stops(n int) []Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Color{g.Start}
	}

	s := g.sampler()
	stops := make([]Color, n)
	for i := range stops {
		stops[i] = s.at(float64(i) / float64(n-1))
	}
	return stops
}

type gradientSampler struct {
	g        Gradient
	channels [4]interp.PiecewiseLinear // a, r, g, b
}

func (g Gradient) sampler() *gradientSampler {
	s := &gradientSampler{g: g}
	xs := []float64{0, 1}
	from := [4]uint8{g.Start.A(), g.Start.R(), g.Start.G(), g.Start.B()}
	to := [4]uint8{g.End.A(), g.End.R(), g.End.G(), g.End.B()}
	for i := range s.channels {
		if err := s.channels[i].Fit(xs, []float64{float64(from[i]), float64(to[i])}); err != nil {
			panic(fmt.Sprintf("colortemp: fit gradient channel %d: %v", i, err))
		}
	}
	return s
}

func (s *gradientSampler) at(t float64) Color {
	if t <= 0 {
		return s.g.Start
	}
	if t >= 1 {
		return s.g.End
	}
	var c [4]uint8
	for i := range s.channels {
		c[i] = clampChannel(round(s.channels[i].Predict(t)))
	}
	return ARGB(c[0], c[1], c[2], c[3])
}
