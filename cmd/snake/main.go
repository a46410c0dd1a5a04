// snake is a terminal Snake game on a wrap-around board.
//
// Usage:
//
//	snake play              - Play in this terminal
//	snake serve             - Start SSH server for remote play
//	snake scores            - Show the longest recorded runs
//	snake render            - Play a scripted game headlessly and export PNG frames
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: config speed.tick_rate)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.snake/runs.db)
//	--config <path>     - Use a specific config YAML
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a wrap-around snake game for your terminal",
	Long: `Snake is a terminal take on the classic: steer the snake, eat the food,
grow longer. The board wraps around at every edge. Running into your own
body ends the run and the snake starts over from the centre.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the longest runs
  render   - Export PNG frames of a scripted game

Examples:
  snake play
  snake play --seed 42 --fps 10
  snake serve --ssh :2222
  snake scores --interactive
  snake render --script RRRDDLL --ticks 100 --out run.png`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config speed.tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(renderCmd)
}

// newLogger builds the command logger at the --log-level threshold.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig resolves the config file and logs where it came from.
func loadConfig(logger *log.Logger) (config.SnakeConfig, string, error) {
	cfg, path, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	if path == "" {
		logger.Debug("using built-in config")
	} else {
		logger.Debug("loaded config", "path", path)
	}
	return cfg, path, nil
}
