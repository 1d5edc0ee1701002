package bar

import "tempbar/pkg/colortemp"

// Listener is told about color changes caused by dragging the pointer.
type Listener interface {
	OnTemperatureChanged(c colortemp.Color)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(c colortemp.Color)

func (f ListenerFunc) OnTemperatureChanged(c colortemp.Color) { f(c) }

// Picker is the aggregate color picker the bar belongs to. It adjusts the
// bar's color with its other bars and is told the combined result.
type Picker interface {
	ChangeValueBarColor(c colortemp.Color) colortemp.Color
	ChangeOpacityBarColor(c colortemp.Color) colortemp.Color
	ChangeSaturationBarColor(c colortemp.Color) colortemp.Color
	SetNewCenterColor(c colortemp.Color)
}
