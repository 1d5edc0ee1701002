package bar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempbar/pkg/colortemp"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	c, err := NewController(Geometry{Length: 200, HaloRadius: 10, PointerRadius: 6, Thickness: 4})
	require.NoError(t, err)
	return c
}

type recordingPicker struct {
	calls   []string
	centers []colortemp.Color
}

func (p *recordingPicker) ChangeValueBarColor(c colortemp.Color) colortemp.Color {
	p.calls = append(p.calls, "value")
	return c
}

func (p *recordingPicker) ChangeOpacityBarColor(c colortemp.Color) colortemp.Color {
	p.calls = append(p.calls, "opacity")
	return c.WithAlpha(0x80)
}

func (p *recordingPicker) ChangeSaturationBarColor(c colortemp.Color) colortemp.Color {
	p.calls = append(p.calls, "saturation")
	return c
}

func (p *recordingPicker) SetNewCenterColor(c colortemp.Color) {
	p.calls = append(p.calls, "center")
	p.centers = append(p.centers, c)
}

func TestNewControllerDefaults(t *testing.T) {
	c := newTestController(t)

	assert.Equal(t, 210, c.Position())
	assert.Equal(t, 1.0, c.NormalizedTemperature())
	assert.Equal(t, 9000, c.Temperature())
	assert.Equal(t, colortemp.ToColor(9000), c.Color())
	assert.Equal(t, colortemp.DefaultGradient(), c.Gradient())
	assert.Equal(t, Idle, c.DragState())

	_, err := NewController(Geometry{Length: 0})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestDragStartInRange(t *testing.T) {
	c := newTestController(t)

	c.DragStart(110)

	assert.Equal(t, Dragging, c.DragState())
	assert.Equal(t, 110, c.Position())
	assert.Equal(t, 4500, c.Temperature())
	assert.Equal(t, colortemp.ToColor(4500), c.Color())
	assert.Equal(t, c.Color(), c.PointerColor())
	assert.Equal(t, 0.5, c.NormalizedTemperature())
}

func TestDragStartRoundsHalfUp(t *testing.T) {
	c := newTestController(t)
	c.DragStart(109.5)
	assert.Equal(t, 110, c.Position())
}

func TestDragStartOutOfRange(t *testing.T) {
	c := newTestController(t)
	before := c.Color()

	c.DragStart(5)

	// The drag begins anyway; only the pointer stays put.
	assert.True(t, c.Dragging())
	assert.Equal(t, 210, c.Position())
	assert.Equal(t, before, c.Color())

	c.DragMove(60)
	assert.Equal(t, 60, c.Position())
}

func TestDragMoveSubCases(t *testing.T) {
	tests := []struct {
		name      string
		coord     float64
		wantPos   int
		wantColor colortemp.Color
	}{
		{"in range", 110, 110, colortemp.ToColor(4500)},
		{"below lower bound", 5, 10, colortemp.White},
		{"above upper bound", 500, 210, colortemp.ToColor(9000)},
		{"exactly lower bound", 10, 10, colortemp.White},
		{"exactly upper bound", 210, 210, colortemp.ToColor(9000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t)
			c.DragStart(100)
			c.DragMove(tt.coord)
			assert.Equal(t, tt.wantPos, c.Position())
			assert.Equal(t, tt.wantColor, c.Color())
		})
	}
}

func TestDragMoveIgnoredWhenIdle(t *testing.T) {
	c := newTestController(t)
	c.DragStart(110)
	c.DragEnd()
	assert.Equal(t, Idle, c.DragState())

	c.DragMove(50)
	assert.Equal(t, 110, c.Position())
	assert.Equal(t, colortemp.ToColor(4500), c.Color())
}

func TestListenerFiresOncePerChange(t *testing.T) {
	c := newTestController(t)
	var got []colortemp.Color
	c.SetListener(ListenerFunc(func(col colortemp.Color) { got = append(got, col) }))

	c.DragStart(100)
	c.DragMove(110)
	c.DragMove(110)

	require.Len(t, got, 1)
	assert.Equal(t, colortemp.ToColor(4500), got[0])

	c.DragMove(5)
	require.Len(t, got, 2)
	assert.Equal(t, colortemp.White, got[1])
}

func TestListenerFiresWithoutDrag(t *testing.T) {
	c := newTestController(t)
	var got []colortemp.Color
	c.SetListener(ListenerFunc(func(col colortemp.Color) { got = append(got, col) }))

	// Not dragging: the pointer stays, but the unreported color is delivered.
	c.DragMove(110)
	assert.Equal(t, 210, c.Position())
	require.Len(t, got, 1)
	assert.Equal(t, colortemp.ToColor(9000), got[0])

	c.SetTemperature(0.5)
	c.DragMove(110)
	require.Len(t, got, 2)
	assert.Equal(t, colortemp.ToColor(4500), got[1])
}

func TestDragMoveAppliesPicker(t *testing.T) {
	c := newTestController(t)
	p := &recordingPicker{}
	c.SetPicker(p)

	c.DragStart(110)
	assert.Empty(t, p.calls, "drag start does not consult the picker")

	c.DragMove(110)
	assert.Equal(t, []string{"value", "opacity", "center"}, p.calls)
	assert.Equal(t, colortemp.ToColor(4500).WithAlpha(0x80), c.Color())
	assert.Equal(t, colortemp.ToColor(4500), c.PointerColor())
	assert.Equal(t, []colortemp.Color{c.Color()}, p.centers)
}

func TestSetTemperature(t *testing.T) {
	c := newTestController(t)
	p := &recordingPicker{}
	c.SetPicker(p)

	c.SetTemperature(0.6)

	assert.Equal(t, 130, c.Position())
	assert.Equal(t, 5400, c.Temperature())
	assert.Equal(t, colortemp.ToColor(5400), c.PointerColor())
	assert.Equal(t, []string{"value", "opacity", "saturation", "center"}, p.calls)
}

func TestSetTemperatureIsNotClamped(t *testing.T) {
	c := newTestController(t)

	c.SetTemperature(1.5)
	assert.Equal(t, 310, c.Position())
	assert.Equal(t, colortemp.ToColor(9000), c.Color())

	c.SetTemperature(-0.5)
	assert.Equal(t, -90, c.Position())
	assert.Equal(t, colortemp.White, c.Color())
}

func TestSetColor(t *testing.T) {
	c := newTestController(t)
	c.DragStart(110)
	red := colortemp.RGB(255, 0, 0)

	got := c.SetColor(red)

	// The pointer keeps its temperature; only the gradient end changes.
	assert.Equal(t, colortemp.ToColor(4500), got)
	assert.Equal(t, got, c.Color())
	assert.Equal(t, red, c.Gradient().End)
	assert.Equal(t, colortemp.ToColor(colortemp.GradientStartKelvin), c.Gradient().Start)

	c.DragMove(1000)
	assert.Equal(t, red, c.Color())
}

func TestSetGeometryKeepsTemperature(t *testing.T) {
	c := newTestController(t)
	c.DragStart(110)

	require.NoError(t, c.SetGeometry(Geometry{Length: 400, HaloRadius: 10}))

	assert.Equal(t, 210, c.Position())
	assert.Equal(t, 4500, c.Temperature())
	assert.InDelta(t, 400.0/9000.0, c.Scale().TemperatureToPosition, 1e-12)
}

func TestSetGeometryRejectsInvalid(t *testing.T) {
	c := newTestController(t)
	c.DragStart(110)

	err := c.SetGeometry(Geometry{Length: -1, HaloRadius: 10})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
	assert.Equal(t, 200, c.Geometry().Length)
	assert.Equal(t, 110, c.Position())
}

func TestRedrawRequests(t *testing.T) {
	c := newTestController(t)
	redraws := 0
	c.SetRedrawFunc(func() { redraws++ })

	c.DragStart(110)
	c.DragMove(120)
	c.DragEnd()
	c.SetTemperature(0.2)
	c.SetColor(colortemp.White)
	require.NoError(t, c.SetGeometry(Geometry{Length: 100, HaloRadius: 5}))

	assert.Equal(t, 5, redraws)
}

func TestRestoreStateMatchesSetTemperature(t *testing.T) {
	end := colortemp.ToColor(6500)
	saved := State{Color: end.HSV(), Temperature: 0.6}

	restored := newTestController(t)
	restored.RestoreState(saved)

	fresh := newTestController(t)
	fresh.SetColor(end)
	fresh.SetTemperature(0.6)

	assert.Equal(t, fresh.Position(), restored.Position())
	assert.Equal(t, fresh.Color(), restored.Color())
	assert.Equal(t, end, restored.Gradient().End)
	assert.Equal(t, saved, restored.SaveState())
}

func TestSaveStateAfterDrag(t *testing.T) {
	c := newTestController(t)
	c.DragStart(60)
	c.DragEnd()

	s := c.SaveState()
	assert.InDelta(t, 0.25, s.Temperature, 1e-12)

	other := newTestController(t)
	other.RestoreState(s)
	assert.Equal(t, c.Position(), other.Position())
	assert.Equal(t, c.Color(), other.Color())
}
