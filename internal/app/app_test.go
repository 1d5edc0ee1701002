package app

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempbar/internal/bar"
	"tempbar/internal/config"
	"tempbar/internal/logging"
	"tempbar/internal/state"
)

func TestMain(m *testing.M) {
	logging.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestNewRestoresSavedState(t *testing.T) {
	cfg := config.Default()
	cfg.UI.StateFile = filepath.Join(t.TempDir(), "state.yaml")

	src, err := bar.NewController(cfg.Geometry())
	require.NoError(t, err)
	src.SetTemperature(0.5)
	require.NoError(t, state.Save(cfg.UI.StateFile, src))

	a, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0.5, a.Bar().NormalizedTemperature())
}

func TestNewWithoutState(t *testing.T) {
	cfg := config.Default()
	cfg.UI.StateFile = filepath.Join(t.TempDir(), "missing.yaml")

	a, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1.0, a.Bar().NormalizedTemperature())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Bar.Length = 0

	_, err := New(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
