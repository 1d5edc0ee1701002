// Package state persists a bar's state between runs as YAML.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"tempbar/internal/bar"
	"tempbar/internal/logging"
)

var ErrNoState = errors.New("no saved state")

// Parent is the host-side part of the saved state.
type Parent struct {
	Orientation string    `yaml:"orientation"`
	SavedAt     time.Time `yaml:"saved_at"`
}

type File struct {
	Parent      Parent     `yaml:"parent"`
	Color       [3]float64 `yaml:"color,flow"`
	Temperature float64    `yaml:"temperature"`
}

// Snapshot captures the controller into a File.
func Snapshot(c *bar.Controller) File {
	s := c.SaveState()
	return File{
		Parent: Parent{
			Orientation: c.Geometry().Orientation.String(),
			SavedAt:     time.Now().UTC().Truncate(time.Second),
		},
		Color:       s.Color,
		Temperature: s.Temperature,
	}
}

// Apply restores the controller from f.
func (f File) Apply(c *bar.Controller) {
	c.RestoreState(bar.State{Color: f.Color, Temperature: f.Temperature})
}

func Save(path string, c *bar.Controller) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(Snapshot(c))
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	logging.Debug("state: saved to %s", path)
	return nil
}

func Load(path string) (File, error) {
	var f File
	path, err := homedir.Expand(path)
	if err != nil {
		return f, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, fmt.Errorf("%w at %s", ErrNoState, path)
		}
		return f, fmt.Errorf("read state: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse state %s: %w", path, err)
	}
	return f, nil
}

// Restore loads the file at path and applies it to c.
func Restore(path string, c *bar.Controller) error {
	f, err := Load(path)
	if err != nil {
		return err
	}
	f.Apply(c)
	logging.Debug("state: restored from %s, temperature %.3f", path, f.Temperature)
	return nil
}
