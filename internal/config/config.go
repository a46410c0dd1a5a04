// Package config provides YAML-based game configuration loading and
// live reloading for the snake game.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Speed  SpeedConfig  `yaml:"speed"`
	Render RenderConfig `yaml:"render"`
	Theme  ThemeConfig  `yaml:"theme"`
	PNG    PNGConfig    `yaml:"png"`
}

// GridConfig defines the play area. The grid is AreaWidth/CellSize by
// AreaHeight/CellSize cells.
type GridConfig struct {
	AreaWidth  int `yaml:"area_width"`
	AreaHeight int `yaml:"area_height"`
	CellSize   int `yaml:"cell_size"`
}

// SpeedConfig defines pacing.
type SpeedConfig struct {
	TickRate int `yaml:"tick_rate"` // Ticks per second
}

// RenderConfig defines terminal rendering.
type RenderConfig struct {
	CellChars int         `yaml:"cell_chars"`
	Glyphs    GlyphConfig `yaml:"glyphs"`
}

// GlyphConfig holds single-character glyphs.
type GlyphConfig struct {
	Snake string `yaml:"snake"`
	Head  string `yaml:"head"`
	Food  string `yaml:"food"`
}

// ThemeConfig holds colors as "#rrggbb".
type ThemeConfig struct {
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Snake      string `yaml:"snake"`
	Head       string `yaml:"head"`
	Food       string `yaml:"food"`
}

// PNGConfig defines exported frame geometry.
type PNGConfig struct {
	CellSize int `yaml:"cell_size"`
	Scale    int `yaml:"scale"`
}

// Palette is a ThemeConfig with parsed colors.
type Palette struct {
	Background core.Color
	Border     core.Color
	Snake      core.Color
	Head       core.Color
	Food       core.Color
}

// GridSize returns the grid dimensions in cells.
func (c SnakeConfig) GridSize() (w, h int) {
	return c.Grid.AreaWidth / c.Grid.CellSize, c.Grid.AreaHeight / c.Grid.CellSize
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.cell_size must be positive, got %d", c.Grid.CellSize))
	} else if w, h := c.GridSize(); w < 2 || h < 2 {
		errs = append(errs, fmt.Errorf("grid must be at least 2x2 cells, got %dx%d", w, h))
	}
	if c.Speed.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("speed.tick_rate must be positive, got %d", c.Speed.TickRate))
	}
	if c.Render.CellChars < 1 || c.Render.CellChars > 2 {
		errs = append(errs, fmt.Errorf("render.cell_chars must be 1 or 2, got %d", c.Render.CellChars))
	}
	for name, g := range map[string]string{
		"snake": c.Render.Glyphs.Snake,
		"head":  c.Render.Glyphs.Head,
		"food":  c.Render.Glyphs.Food,
	} {
		if utf8.RuneCountInString(g) != 1 {
			errs = append(errs, fmt.Errorf("render.glyphs.%s must be a single character, got %q", name, g))
		}
	}
	if _, err := c.Theme.Parse(); err != nil {
		errs = append(errs, err)
	}
	if c.PNG.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("png.cell_size must be positive, got %d", c.PNG.CellSize))
	}
	if c.PNG.Scale <= 0 {
		errs = append(errs, fmt.Errorf("png.scale must be positive, got %d", c.PNG.Scale))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}

// Parse converts the hex strings into colors.
func (t ThemeConfig) Parse() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		in   string
		out  *core.Color
	}{
		{"background", t.Background, &p.Background},
		{"border", t.Border, &p.Border},
		{"snake", t.Snake, &p.Snake},
		{"head", t.Head, &p.Head},
		{"food", t.Food, &p.Food},
	}
	for _, f := range fields {
		c, err := core.ParseHex(f.in)
		if err != nil {
			return Palette{}, fmt.Errorf("theme.%s: %w", f.name, err)
		}
		*f.out = c
	}
	return p, nil
}

// Glyph returns the first rune of s, or fallback when s is empty.
func Glyph(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
