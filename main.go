// wallhop is a single-player tile platformer built around a tunable
// kinematic character controller.
//
// Usage:
//
//	wallhop [play]              - Open the game window
//	wallhop simulate            - Run a scripted input pattern headless
//	wallhop levels              - List the maps of the level world
//
// Global flags:
//
//	--config <path>     - Config file (default: search user and local dirs)
//	--level-dir <dir>   - Load levels from a directory instead of the bundled ones
//	--debug             - Debug logging and the debug overlay
package main

import (
	"fmt"
	"os"

	"github.com/automoto/wallhop/assets"
	"github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLevelDir string
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wallhop",
	Short: "wallhop - a wall-jumping tile platformer",
	Long: `wallhop is a tile platformer with wall slides, wall jumps, coyote time
and jump buffering. Every movement property can be tuned live.

Available commands:
  play      - Open the game window (default)
  simulate  - Run a scripted input pattern without a window
  levels    - List the maps of the level world

Examples:
  wallhop
  wallhop play --config ./configs/config.yaml
  wallhop simulate --pattern hop --ticks 600
  wallhop levels --level-dir ./my-levels`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLevelDir, "level-dir", "", "Directory with a .world file or .tmx levels")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and the debug overlay")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(levelsCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "wallhop",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads and applies the config file named by the flags.
func loadConfig(logger *log.Logger) (*config.File, error) {
	f, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	f.Apply()
	if flagDebug {
		config.Debug.ShowOverlay = true
	}
	if f.Path != "" {
		logger.Debug("config loaded", "path", f.Path)
	} else {
		logger.Debug("using built-in config")
	}
	return f, nil
}

func loadLevels(logger *log.Logger) (*leveldata.World, error) {
	levels, err := assets.LoadWorld(assets.LevelFS(flagLevelDir))
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}
	logger.Debug("levels loaded", "count", levels.Len())
	return levels, nil
}
