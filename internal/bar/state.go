package bar

import "tempbar/pkg/colortemp"

// State is what a bar needs to come back after being recreated: the HSV
// triple of the gradient end color and the selected temperature fraction.
type State struct {
	Color       [3]float64
	Temperature float64
}

func (c *Controller) SaveState() State {
	return State{
		Color:       c.gradient.End.HSV(),
		Temperature: c.normalized,
	}
}

// RestoreState reapplies a saved state: gradient color first, then pointer.
func (c *Controller) RestoreState(s State) {
	c.SetColor(colortemp.FromHSV(s.Color))
	c.SetTemperature(s.Temperature)
}
