package app

import (
	"errors"
	"fmt"

	"tempbar/internal/bar"
	"tempbar/internal/commands"
	"tempbar/internal/config"
	"tempbar/internal/logging"
	"tempbar/internal/picker"
	"tempbar/internal/state"
	"tempbar/internal/ui"
	"tempbar/pkg/viz"
)

type App struct {
	cfg    config.Config
	bar    *bar.Controller
	picker *picker.ColorPicker
	ui     *ui.TUI
}

// New builds the bar from cfg and restores the last saved state, if any.
func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctrl, err := bar.NewController(cfg.Geometry())
	if err != nil {
		return nil, err
	}
	p := picker.New()
	ctrl.SetPicker(p)

	if cfg.UI.StateFile != "" {
		if err := state.Restore(cfg.UI.StateFile, ctrl); err != nil {
			if !errors.Is(err, state.ErrNoState) {
				return nil, fmt.Errorf("restore state: %w", err)
			}
			logging.Debug("app: %v", err)
		}
	}

	cmdr := commands.NewCommander(ctrl, p, cfg.UI.StateFile)
	return &App{
		cfg:    cfg,
		bar:    ctrl,
		picker: p,
		ui:     ui.New(ui.NewModel(cmdr, viz.Scheme(cfg.UI.Theme))),
	}, nil
}

func (a *App) Bar() *bar.Controller { return a.bar }

// Run blocks until the UI exits, then saves the bar state.
func (a *App) Run() error {
	logging.Debug("app: starting, geometry %+v", a.bar.Geometry())
	if err := a.ui.Start(); err != nil {
		return err
	}
	if a.cfg.UI.StateFile == "" {
		return nil
	}
	if err := state.Save(a.cfg.UI.StateFile, a.bar); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
