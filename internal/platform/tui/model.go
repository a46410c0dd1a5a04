package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/render/png"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// helpHeight is the number of rows below the board reserved for key help.
const helpHeight = 1

// ConfigReloadedMsg carries a new configuration into a running program.
type ConfigReloadedMsg struct {
	Config config.SnakeConfig
}

// ModelOptions configures a Model.
type ModelOptions struct {
	Player        string         // Name runs are recorded under
	Store         *storage.Store // Optional; nil disables run history
	Logger        *log.Logger
	Renderer      *lipgloss.Renderer // Per-session renderer for SSH; nil for local
	Config        config.SnakeConfig
	ScreenshotDir string // Defaults to ~/.snake/screenshots
}

// Model is the Bubble Tea model for a snake session.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	painter    *Painter
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	fixedRate  bool // Tick rate came from the command line; reloads keep it
	snakeCfg   config.SnakeConfig
	inputFrame core.InputFrame
	keys       KeyMap
	help       help.Model
	player     string
	shotDir    string
	status     string
	quitting   bool
}

// NewModel creates a model and starts a fresh board.
func NewModel(opts ModelOptions, cfg core.RuntimeConfig) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	fixedRate := cfg.TickRate > 0
	if !fixedRate {
		cfg.TickRate = opts.Config.Speed.TickRate
	}
	def := core.DefaultConfig()
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	gameOpts, err := snake.OptionsFromConfig(opts.Config)
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	}

	game := snake.New(gameOpts)
	game.Reset(cfg)

	painter := NewPainter(opts.Renderer)
	painter.SetBackground(gameOpts.Theme.Background)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		painter:    painter,
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		fixedRate:  fixedRate,
		snakeCfg:   opts.Config,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		player:     opts.Player,
		shotDir:    shotDir,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigReloadedMsg:
		return m.handleReload(msg.Config)
	}

	return m, nil
}

// handleKey processes keyboard input. Steering is buffered until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.recordRun(m.game.CurrentRun())
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
	}
	return m, nil
}

// handleResize processes window resize events. The board keeps running;
// the layout adapts on the next View.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	if result.RunEnded() {
		m.recordRun(result.Run)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleReload applies a new configuration. Theme and speed changes are live;
// a different grid starts a new board.
func (m Model) handleReload(cfg config.SnakeConfig) (tea.Model, tea.Cmd) {
	opts, err := snake.OptionsFromConfig(cfg)
	if err != nil {
		m.logger.Warn("Ignoring config reload", "error", err)
		return m, nil
	}

	if opts.Grid != m.game.Grid() {
		m.recordRun(m.game.CurrentRun())
	}
	m.game.ApplyOptions(opts)
	m.painter.SetBackground(opts.Theme.Background)
	if !m.fixedRate {
		m.config.TickRate = cfg.Speed.TickRate
	}
	m.snakeCfg = cfg
	m.status = "config reloaded"
	return m, nil
}

// recordRun stores a finished run. Runs that never moved are skipped.
func (m *Model) recordRun(run snake.RunSummary) {
	if m.store == nil || run.Ticks == 0 {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		Player: m.player,
		Length: run.Length,
		Ticks:  run.Ticks,
		Seed:   m.config.Seed,
	})
	if err != nil {
		m.logger.Warn("Could not record run", "player", m.player, "error", err)
	}
}

// saveScreenshot writes the current frame as text and as PNG.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("Could not create screenshot directory", "error", err)
		m.status = "screenshot failed"
		return
	}

	base := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s", m.game.ID(), time.Now().Format("20060102_150405")))
	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("Could not save text screenshot", "error", err)
		m.status = "screenshot failed"
		return
	}

	canvas := png.New(m.game.Grid(), m.snakeCfg.PNG.CellSize, m.game.Options().Theme)
	canvas.Paint(m.game)
	if err := canvas.Save(base+".png", m.snakeCfg.PNG.Scale); err != nil {
		m.logger.Warn("Could not save PNG screenshot", "error", err)
		m.status = "screenshot failed"
		return
	}

	m.status = "saved " + filepath.Base(base) + ".{txt,png}"
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpLine := m.help.View(m.keys)
	if m.status != "" {
		helpLine = m.status + "  " + helpLine
	}
	return m.painter.RenderScreen(m.screen) + "\n" + m.painter.Muted(helpLine)
}

// Game returns the running game.
func (m Model) Game() *snake.Game { return m.game }

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool { return m.quitting }

// Run starts the Bubble Tea program with the given model. Reloads received on
// the channel are forwarded into the program until it exits.
func Run(model Model, reloads <-chan config.SnakeConfig) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case cfg, ok := <-reloads:
				if !ok {
					return
				}
				p.Send(ConfigReloadedMsg{Config: cfg})
			case <-done:
				return
			}
		}
	}()

	_, err := p.Run()
	return err
}
