package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/render/png"
)

var (
	flagTicks  int
	flagScript string
	flagEvery  int
	flagOut    string
	flagScale  int
	flagCell   int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Play a scripted game headlessly and export PNG frames",
	Long: `Run the game without a terminal, feeding one scripted move per tick,
and write the board as PNG.

The script uses U, D, L and R to steer and '.' for a tick without input.
Once the script runs out the snake keeps its heading.

With --every 0 only the final frame is written to --out. With --every k,
every k-th tick is written into the --out directory as frame_NNNNN.png.

Examples:
  snake render --seed 1 --ticks 60 --out final.png
  snake render --script "RRRRDDDDLLLLUUUU" --ticks 16 --every 1 --out frames/`,
	Args: cobra.NoArgs,
	Run:  runRender,
}

func init() {
	renderCmd.Flags().IntVar(&flagTicks, "ticks", 200, "Number of ticks to simulate")
	renderCmd.Flags().StringVar(&flagScript, "script", "", "Moves, one per tick (U/D/L/R, '.' for none)")
	renderCmd.Flags().IntVar(&flagEvery, "every", 0, "Write every k-th frame (0 = final frame only)")
	renderCmd.Flags().StringVarP(&flagOut, "out", "o", "snake.png", "Output file, or directory with --every")
	renderCmd.Flags().IntVar(&flagScale, "scale", 0, "Integer upscale (0 = config png.scale)")
	renderCmd.Flags().IntVar(&flagCell, "cell", 0, "Pixels per grid cell (0 = config png.cell_size)")
}

func runRender(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "snake-render")

	if err := render(logger); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func render(logger *log.Logger) error {
	snakeCfg, _, err := loadConfig(logger)
	if err != nil {
		return err
	}
	opts, err := snake.OptionsFromConfig(snakeCfg)
	if err != nil {
		return err
	}
	frames, err := snake.ParseScript(flagScript, opts.Turns)
	if err != nil {
		return err
	}
	if flagTicks < 0 || flagEvery < 0 {
		return fmt.Errorf("--ticks and --every must not be negative")
	}

	cell := pick(flagCell, snakeCfg.PNG.CellSize)
	scale := pick(flagScale, snakeCfg.PNG.Scale)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := snake.New(opts)
	game.Reset(core.RuntimeConfig{TickRate: snakeCfg.Speed.TickRate, Seed: seed})

	canvas := png.New(game.Grid(), cell, opts.Theme)
	canvas.Paint(game)

	if flagEvery > 0 {
		if err := os.MkdirAll(flagOut, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", flagOut, err)
		}
	}

	written := 0
	for tick := 1; tick <= flagTicks; tick++ {
		in := core.NewInputFrame()
		if tick <= len(frames) {
			in = frames[tick-1]
		}

		res := game.Step(in)
		canvas.Update(game, res)
		if res.Collided {
			logger.Debug("run ended", "tick", tick, "length", res.Run.Length)
		}

		if flagEvery > 0 && tick%flagEvery == 0 {
			path := filepath.Join(flagOut, fmt.Sprintf("frame_%05d.png", tick))
			if err := canvas.Save(path, scale); err != nil {
				return err
			}
			written++
		}
	}

	if flagEvery == 0 {
		if err := canvas.Save(flagOut, scale); err != nil {
			return err
		}
		written = 1
	}

	snap := game.Snapshot()
	logger.Info("rendered",
		"seed", seed,
		"ticks", snap.Tick,
		"length", snap.Length,
		"best", snap.Best,
		"resets", snap.Resets,
		"frames", written,
		"out", strings.TrimSuffix(flagOut, "/"),
	)
	return nil
}

// pick returns flag when set, otherwise the config value.
func pick(flag, cfg int) int {
	if flag > 0 {
		return flag
	}
	return cfg
}

