// Package png draws snake boards into raster images and exports them as PNG.
// Each occupied cell is a filled square with a 1px border, matching the
// classic windowed look.
package png

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Canvas is a pixel frame buffer for one grid.
type Canvas struct {
	dc    *gg.Context
	grid  snake.Grid
	cell  int
	theme snake.Theme
}

// New creates a canvas of grid.Width()*cellSize by grid.Height()*cellSize
// pixels, cleared to the theme background.
func New(grid snake.Grid, cellSize int, theme snake.Theme) *Canvas {
	if cellSize < 1 {
		cellSize = 1
	}
	c := &Canvas{
		dc:    gg.NewContext(grid.Width()*cellSize, grid.Height()*cellSize),
		grid:  grid,
		cell:  cellSize,
		theme: theme,
	}
	c.Clear()
	return c
}

// Width returns the frame width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the frame height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Clear fills the whole frame with the background color.
func (c *Canvas) Clear() {
	setColor(c.dc, c.theme.Background)
	c.dc.Clear()
}

// Paint redraws the whole board from the game's renderables.
func (c *Canvas) Paint(g *snake.Game) {
	c.Clear()
	for _, r := range g.Renderables() {
		for _, p := range r.Positions() {
			c.FillCell(p, r.Color())
		}
	}
}

// Update applies one tick incrementally: the vacated tail cell is erased,
// the old head is repainted as body and the new head is drawn. Ticks that
// restart the run fall back to a full Paint.
func (c *Canvas) Update(g *snake.Game, res snake.TickResult) {
	if res.RunEnded() {
		c.Paint(g)
		return
	}
	if !res.Advanced {
		return
	}

	if res.Move.HasRemoved {
		c.EraseCell(res.Move.Removed)
	}

	body := g.Snake().Positions()
	if len(body) > 1 {
		c.FillCell(body[1], c.theme.Snake)
	}
	c.FillCell(body[0], c.theme.Head)

	if res.Ate {
		if food, ok := g.Food(); ok {
			c.FillCell(food.Position(), c.theme.Food)
		}
	}
}

// FillCell paints one grid cell with col and outlines it with the border color.
func (c *Canvas) FillCell(p snake.Cell, col core.Color) {
	x := float64(p.X * c.cell)
	y := float64(p.Y * c.cell)
	s := float64(c.cell)

	c.dc.DrawRectangle(x, y, s, s)
	setColor(c.dc, col)
	c.dc.Fill()

	if c.cell > 2 {
		c.dc.SetLineWidth(1)
		c.dc.DrawRectangle(x+0.5, y+0.5, s-1, s-1)
		setColor(c.dc, c.theme.Border)
		c.dc.Stroke()
	}
}

// EraseCell paints one grid cell with the background, border included.
func (c *Canvas) EraseCell(p snake.Cell) {
	c.dc.DrawRectangle(float64(p.X*c.cell), float64(p.Y*c.cell), float64(c.cell), float64(c.cell))
	setColor(c.dc, c.theme.Background)
	c.dc.Fill()
}

// Image returns the frame scaled by an integer factor.
func (c *Canvas) Image(scale int) image.Image {
	img := c.dc.Image()
	if scale <= 1 {
		return img
	}
	return imaging.Resize(img, c.Width()*scale, c.Height()*scale, imaging.NearestNeighbor)
}

// Encode writes the frame as PNG.
func (c *Canvas) Encode(w io.Writer, scale int) error {
	if err := imaging.Encode(w, c.Image(scale), imaging.PNG); err != nil {
		return fmt.Errorf("png: encode frame: %w", err)
	}
	return nil
}

// Save writes the frame as a PNG file, creating parent directories.
func (c *Canvas) Save(path string, scale int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("png: create directory %s: %w", dir, err)
		}
	}
	if err := gg.SavePNG(path, c.Image(scale)); err != nil {
		return fmt.Errorf("png: save %s: %w", path, err)
	}
	return nil
}

// setColor maps a terminal color to an RGB fill. The terminal default
// becomes black.
func setColor(dc *gg.Context, col core.Color) {
	dc.SetRGB255(int(col.R), int(col.G), int(col.B))
}
