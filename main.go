package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tempbar/internal/app"
	"tempbar/internal/config"
	"tempbar/internal/logging"
)

// set at build time
var Version = "0.0.0"

var (
	configPath string
	statePath  string
	logPath    string
	vertical   bool
)

var rootCmd = &cobra.Command{
	Use:           "tempbar",
	Short:         "Pick a color by dragging along a color-temperature bar",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("state") {
			cfg.UI.StateFile = statePath
		}
		if vertical {
			cfg.Bar.OrientationHorizontal = false
		}

		if logPath == "" {
			logPath = cfg.UI.LogFile
		}
		if logPath != "" {
			if err := logging.OpenFile(logPath); err != nil {
				return err
			}
		}
		defer logging.Close()

		a, err := app.New(cfg)
		if err != nil {
			return err
		}
		return a.Run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print tempbar version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("v" + Version)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath+")")
	rootCmd.Flags().StringVar(&statePath, "state", "", "state file, empty disables saving")
	rootCmd.Flags().StringVar(&logPath, "log", "", "debug log file (default ~/.tempbar/logs/tempbar_<time>.log)")
	rootCmd.Flags().BoolVar(&vertical, "vertical", false, "lay the bar out vertically")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
