package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagPlayer  string
	flagLogFile string
	flagNoWatch bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD/HJKL - Steer
  P/Esc            - Pause
  R                - Restart the board
  Ctrl+S           - Save a text and PNG screenshot
  Q/Ctrl+C         - Quit

The config file is watched while playing: colors and speed change live,
a different grid size starts a new board.

Examples:
  snake play
  snake play --seed 7
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name to record runs under (default: OS user)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.snake/snake.log", "Where to write logs while the game owns the terminal")
	playCmd.Flags().BoolVar(&flagNoWatch, "no-watch", false, "Do not reload the config file on change")
}

func runPlay(cmd *cobra.Command, _ []string) {
	if err := play(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play runs one local session. Everything it opens is closed before it returns.
func play(ctx context.Context) error {
	logOut, closeLog := openLogFile(flagLogFile)
	defer closeLog()
	logger := newLogger(logOut, "snake")

	snakeCfg, cfgPath, err := loadConfig(logger)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	model, err := tui.NewModel(tui.ModelOptions{
		Player: playerName(),
		Store:  store,
		Logger: logger,
		Config: snakeCfg,
	}, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var reloads chan config.SnakeConfig
	if cfgPath != "" && !flagNoWatch {
		reloads = make(chan config.SnakeConfig, 1)
		go func() {
			err := config.Watch(ctx, cfgPath, logger, func(c config.SnakeConfig) {
				select {
				case reloads <- c:
				case <-ctx.Done():
				}
			})
			if err != nil {
				logger.Warn("config hot reload disabled", "error", err)
			}
		}()
	}

	if err := tui.Run(model, reloads); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// playerName returns --player or the current OS user.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

// openLogFile opens path for appending, expanding a leading ~.
// Logs are discarded when the file cannot be opened.
func openLogFile(path string) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return io.Discard, func() {}
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
