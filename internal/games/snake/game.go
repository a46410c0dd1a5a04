// Package snake implements the single-player Snake game on a toroidal grid.
// The game contains pure logic; the platform layer handles input mapping,
// pacing and display.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ID is the game identifier used for run history.
const ID = "snake"

// Theme holds the colors used by the renderers.
type Theme struct {
	Background core.Color
	Border     core.Color
	Snake      core.Color
	Head       core.Color
	Food       core.Color
}

// Glyphs holds the runes used by the terminal renderer.
type Glyphs struct {
	Snake rune
	Head  rune
	Food  rune
}

// Options configures a Game.
type Options struct {
	Grid      Grid
	Turns     Turns
	Theme     Theme
	Glyphs    Glyphs
	CellChars int // Terminal columns per grid cell (1 or 2)
}

// DefaultOptions returns a 32x24 board in the classic green-on-black look.
func DefaultOptions() Options {
	return Options{
		Grid:  NewGrid(640, 480, 20),
		Turns: DefaultTurns(),
		Theme: Theme{
			Background: core.RGB(0, 0, 0),
			Border:     core.RGB(93, 216, 228),
			Snake:      core.RGB(0, 255, 0),
			Head:       core.RGB(0, 255, 0),
			Food:       core.RGB(255, 0, 0),
		},
		Glyphs:    Glyphs{Snake: '█', Head: '█', Food: '●'},
		CellChars: 2,
	}
}

// RunSummary describes a finished run: one life from reset to reset.
type RunSummary struct {
	Length int
	Ticks  uint64
	Eaten  int
}

// TickResult is returned by Step after each simulation tick.
type TickResult struct {
	Advanced  bool          // false while paused
	Move      AdvanceResult // valid when Advanced
	Ate       bool
	Collided  bool
	Restarted bool
	Run       RunSummary // valid when RunEnded
	Paused    bool
}

// RunEnded reports whether this tick closed a run.
func (r TickResult) RunEnded() bool {
	return r.Collided || r.Restarted
}

// Game orchestrates one tick at a time: input, movement, food and collision.
type Game struct {
	opts    Options
	cfg     core.RuntimeConfig
	rng     *rand.Rand
	snake   *State
	spawner *Spawner
	food    Food
	hasFood bool

	tick     uint64
	runTicks uint64
	eaten    int
	resets   int
	best     int
	paused   bool
}

// New creates a game. Call Reset before the first Step.
func New(opts Options) *Game {
	if opts.Turns == nil {
		opts.Turns = DefaultTurns()
	}
	if opts.CellChars <= 0 {
		opts.CellChars = 1
	}
	return &Game{opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Reset starts a fresh board seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.snake = NewState(g.opts.Grid, g.rng)
	g.spawner = NewSpawner(g.rng)
	g.tick = 0
	g.runTicks = 0
	g.eaten = 0
	g.resets = 0
	g.best = g.snake.Len()
	g.paused = false
	g.respawnFood()
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) TickResult {
	g.tick++
	var res TickResult

	for _, a := range in.Actions() {
		switch a {
		case core.ActionPause:
			g.paused = !g.paused
		case core.ActionRestart:
			res.Restarted = true
			res.Run = g.currentRun()
			g.restartRun()
		default:
			if d, ok := g.opts.Turns[a]; ok && !g.paused {
				g.snake.QueueDirection(d)
			}
		}
	}

	if g.paused {
		res.Paused = true
		return res
	}

	res.Advanced = true
	res.Move = g.snake.Advance(g.opts.Grid)
	g.runTicks++

	if g.hasFood && res.Move.Head == g.food.Position() {
		res.Ate = true
		g.eaten++
		g.snake.Grow()
		g.respawnFood()
	}

	g.best = max(g.best, g.snake.Len())

	// Growth is applied before the collision check, and the check runs on
	// every tick: eating does not cancel a self-collision.
	if g.snake.CheckSelfCollision() {
		res.Collided = true
		res.Run = g.currentRun()
		g.restartRun()
	}
	return res
}

func (g *Game) currentRun() RunSummary {
	return RunSummary{Length: g.snake.Len(), Ticks: g.runTicks, Eaten: g.eaten}
}

// restartRun resets the snake in place; the food stays unless it now sits
// under the new head.
func (g *Game) restartRun() {
	g.snake.Reset(g.opts.Grid)
	g.resets++
	g.runTicks = 0
	g.eaten = 0
	if !g.hasFood || g.food.Position() == g.snake.Head() {
		g.respawnFood()
	}
}

func (g *Game) respawnFood() {
	g.food, g.hasFood = g.spawner.SpawnFood(g.opts.Grid, g.snake)
}

// ApplyOptions swaps the options of a running game. A changed grid ends the
// current run and restarts the snake on the new board from the same random
// stream; anything else takes effect on the next frame.
func (g *Game) ApplyOptions(opts Options) {
	if opts.Turns == nil {
		opts.Turns = DefaultTurns()
	}
	if opts.CellChars <= 0 {
		opts.CellChars = 1
	}
	gridChanged := opts.Grid != g.opts.Grid
	g.opts = opts
	if gridChanged && g.snake != nil {
		g.hasFood = false
		g.restartRun()
	}
}

// Options returns the active options.
func (g *Game) Options() Options { return g.opts }

// Grid returns the play field.
func (g *Game) Grid() Grid { return g.opts.Grid }

// Snake returns the snake state. Callers must treat it as read-only.
func (g *Game) Snake() *State { return g.snake }

// Food returns the current food and whether there is any.
func (g *Game) Food() (Food, bool) { return g.food, g.hasFood }

// Tick returns the number of ticks since Reset.
func (g *Game) Tick() uint64 { return g.tick }

// Resets returns how many runs ended since Reset.
func (g *Game) Resets() int { return g.resets }

// BestLength returns the longest body seen since Reset.
func (g *Game) BestLength() int { return g.best }

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool { return g.paused }

// CurrentRun returns the summary of the run in progress.
func (g *Game) CurrentRun() RunSummary { return g.currentRun() }
