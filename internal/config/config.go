// Package config loads bar style and UI options from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"tempbar/internal/bar"
	"tempbar/pkg/viz"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultPath      = "~/.tempbar/config.toml"
	DefaultStatePath = "~/.tempbar/state.yaml"
)

type Config struct {
	Bar BarConfig `toml:"bar"`
	UI  UIConfig  `toml:"ui"`
}

// BarConfig holds the style attributes of the bar, in terminal cells.
type BarConfig struct {
	Thickness             int  `toml:"thickness"`
	Length                int  `toml:"length"`
	PointerRadius         int  `toml:"pointer_radius"`
	HaloRadius            int  `toml:"halo_radius"`
	OrientationHorizontal bool `toml:"orientation_horizontal"`
}

type UIConfig struct {
	Theme     string `toml:"theme"`
	StateFile string `toml:"state_file"`
	LogFile   string `toml:"log_file"`
}

func Default() Config {
	return Config{
		Bar: BarConfig{
			Thickness:             1,
			Length:                60,
			PointerRadius:         0,
			HaloRadius:            1,
			OrientationHorizontal: true,
		},
		UI: UIConfig{
			Theme:     "default",
			StateFile: DefaultStatePath,
		},
	}
}

// Geometry converts the bar options to controller geometry.
func (c Config) Geometry() bar.Geometry {
	o := bar.Horizontal
	if !c.Bar.OrientationHorizontal {
		o = bar.Vertical
	}
	return bar.Geometry{
		Length:        c.Bar.Length,
		Thickness:     c.Bar.Thickness,
		PointerRadius: c.Bar.PointerRadius,
		HaloRadius:    c.Bar.HaloRadius,
		Orientation:   o,
	}
}

func (c Config) Validate() error {
	if err := c.Geometry().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Bar.PointerRadius > c.Bar.HaloRadius {
		return fmt.Errorf("%w: pointer radius %d exceeds halo radius %d",
			ErrInvalidConfig, c.Bar.PointerRadius, c.Bar.HaloRadius)
	}
	if _, ok := viz.ColorSchemes[c.UI.Theme]; !ok {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, c.UI.Theme)
	}
	return nil
}

// Load reads the file at path over the defaults. An empty path means
// DefaultPath, which may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	optional := path == ""
	if optional {
		path = DefaultPath
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("expand config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.UI.StateFile, err = homedir.Expand(cfg.UI.StateFile); err != nil {
		return cfg, fmt.Errorf("expand state path: %w", err)
	}
	if cfg.UI.LogFile, err = homedir.Expand(cfg.UI.LogFile); err != nil {
		return cfg, fmt.Errorf("expand log path: %w", err)
	}
	return cfg, cfg.Validate()
}

// Write stores cfg as TOML at path.
func Write(path string, cfg Config) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
