package state

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempbar/internal/bar"
	"tempbar/internal/logging"
	"tempbar/pkg/colortemp"
)

func TestMain(m *testing.M) {
	logging.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newController(t *testing.T) *bar.Controller {
	t.Helper()
	c, err := bar.NewController(bar.Geometry{Length: 200, HaloRadius: 10})
	require.NoError(t, err)
	return c
}

func TestSaveRestore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "state.yaml")

	src := newController(t)
	src.SetColor(colortemp.ToColor(6500))
	src.SetTemperature(0.6)
	require.NoError(t, Save(path, src))

	dst := newController(t)
	require.NoError(t, Restore(path, dst))

	assert.Equal(t, src.Position(), dst.Position())
	assert.Equal(t, src.Color(), dst.Color())
	assert.Equal(t, src.Gradient(), dst.Gradient())
}

func TestFileLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
parent:
  orientation: vertical
color: [30, 0.6, 1]
temperature: 0.6
`), 0644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "vertical", f.Parent.Orientation)
	assert.Equal(t, [3]float64{30, 0.6, 1}, f.Color)

	restored := newController(t)
	f.Apply(restored)

	fresh := newController(t)
	fresh.SetColor(colortemp.FromHSV(f.Color))
	fresh.SetTemperature(0.6)
	assert.Equal(t, fresh.Position(), restored.Position())
	assert.Equal(t, 130, restored.Position())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrNoState)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: [1, 2"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoState)
}
