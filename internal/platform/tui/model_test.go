package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func newTestModel(t *testing.T) (Model, *storage.Store) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m, err := NewModel(ModelOptions{
		Player:        "tester",
		Store:         store,
		Logger:        log.New(io.Discard),
		Config:        config.DefaultSnakeConfig(),
		ScreenshotDir: t.TempDir(),
	}, core.RuntimeConfig{ScreenW: 80, ScreenH: 31, Seed: 42})
	require.NoError(t, err)
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestNewModelDefaults(t *testing.T) {
	m, _ := newTestModel(t)
	require.Equal(t, 20, m.config.TickRate)
	require.Equal(t, 1, m.Game().Snake().Len())
	require.NotNil(t, m.Init())
}

func TestNewModelRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.CellSize = 0
	_, err := NewModel(ModelOptions{Config: cfg}, core.RuntimeConfig{Seed: 1})
	require.Error(t, err)
}

func TestTickAdvancesGameAndClearsInput(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, runeKey('p'))
	require.Equal(t, 1, m.inputFrame.Len())

	m, cmd := update(t, m, TickMsg(time.Now()))
	require.NotNil(t, cmd)
	require.Equal(t, uint64(1), m.Game().Tick())
	require.True(t, m.Game().Paused())
	require.Zero(t, m.inputFrame.Len())
}

func TestRestartAndQuitRecordRuns(t *testing.T) {
	m, store := newTestModel(t)

	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg(time.Now()))

	runs, err := store.TopRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, "tester", runs[0].Player)
	require.Equal(t, uint64(1), runs[0].Ticks)
	require.Equal(t, int64(42), runs[0].Seed)

	m, cmd := update(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	require.True(t, m.Quitting())
	require.Empty(t, m.View())

	runs, err = store.TopRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
}

func TestQuitBeforeMovingRecordsNothing(t *testing.T) {
	m, store := newTestModel(t)

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	best, err := store.BestLength()
	require.NoError(t, err)
	require.Zero(t, best)
}

func TestResizeKeepsBoard(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))
	head := m.Game().Snake().Head()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, 120, m.screen.Width())
	require.Equal(t, 40-helpHeight, m.screen.Height())
	require.Equal(t, head, m.Game().Snake().Head())
	require.Equal(t, uint64(1), m.Game().Tick())
}

func TestViewShowsBoardAndHelp(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	require.Contains(t, view, "Length: 1")
	require.Contains(t, view, "quit")
}

func TestViewTooSmall(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 12})
	require.Contains(t, m.View(), "Window too small")
}

func TestConfigReload(t *testing.T) {
	m, store := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))

	cfg := config.DefaultSnakeConfig()
	cfg.Speed.TickRate = 10
	cfg.Theme.Food = "#ffff00"
	m, _ = update(t, m, ConfigReloadedMsg{Config: cfg})
	require.Equal(t, 10, m.config.TickRate)
	require.Equal(t, core.RGB(0xff, 0xff, 0), m.Game().Options().Theme.Food)
	require.Equal(t, uint64(1), m.Game().Tick(), "theme change keeps the board")

	cfg.Grid.CellSize = 40
	m, _ = update(t, m, ConfigReloadedMsg{Config: cfg})
	require.Equal(t, 16, m.Game().Grid().Width())
	require.Equal(t, uint64(1), m.Game().Tick(), "grid change keeps the session clock")
	require.Equal(t, 1, m.Game().Resets())

	runs, err := store.TopRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1, "grid change records the interrupted run")

	bad := cfg
	bad.Speed.TickRate = 0
	m, _ = update(t, m, ConfigReloadedMsg{Config: bad})
	require.Equal(t, 10, m.config.TickRate)
}

func TestConfigReloadKeepsCommandLineTickRate(t *testing.T) {
	m, err := NewModel(ModelOptions{
		Logger:        log.New(io.Discard),
		Config:        config.DefaultSnakeConfig(),
		ScreenshotDir: t.TempDir(),
	}, core.RuntimeConfig{ScreenW: 80, ScreenH: 31, Seed: 42, TickRate: 5})
	require.NoError(t, err)
	require.Equal(t, 5, m.config.TickRate)

	cfg := config.DefaultSnakeConfig()
	cfg.Theme.Food = "#00ffff"
	m, _ = update(t, m, ConfigReloadedMsg{Config: cfg})
	require.Equal(t, 5, m.config.TickRate)
	require.Equal(t, core.RGB(0, 0xff, 0xff), m.Game().Options().Theme.Food)

	cfg.Speed.TickRate = 12
	m, _ = update(t, m, ConfigReloadedMsg{Config: cfg})
	require.Equal(t, 5, m.config.TickRate)
}

func TestNewModelFallsBackToDefaults(t *testing.T) {
	m, err := NewModel(ModelOptions{
		Logger:        log.New(io.Discard),
		Config:        config.DefaultSnakeConfig(),
		ScreenshotDir: t.TempDir(),
	}, core.RuntimeConfig{Seed: 1})
	require.NoError(t, err)

	def := core.DefaultConfig()
	require.Equal(t, def.ScreenW, m.config.ScreenW)
	require.Equal(t, def.ScreenH, m.config.ScreenH)
	require.Equal(t, def.ScreenW, m.screen.Width())
	require.Equal(t, def.ScreenH-helpHeight, m.screen.Height())
	require.Equal(t, config.DefaultSnakeConfig().Speed.TickRate, m.config.TickRate)
}

func TestScreenshotWritesTextAndPNG(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Contains(t, m.status, "saved")

	txt, err := filepath.Glob(filepath.Join(m.shotDir, "snake_*.txt"))
	require.NoError(t, err)
	require.Len(t, txt, 1)

	pngs, err := filepath.Glob(filepath.Join(m.shotDir, "snake_*.png"))
	require.NoError(t, err)
	require.Len(t, pngs, 1)
}

func TestPainterCachesStyles(t *testing.T) {
	p := NewPainter(nil)
	s := core.NewScreen(4, 1)
	s.SetColored(0, 0, 'x', core.RGB(1, 2, 3))
	s.SetColored(1, 0, 'y', core.RGB(1, 2, 3))

	out := p.RenderScreen(s)
	require.Contains(t, out, "xy")
	require.Len(t, p.styles, 2)

	p.SetBackground(core.RGB(0, 0, 0))
	require.Empty(t, p.styles)
}
