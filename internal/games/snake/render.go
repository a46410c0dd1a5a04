package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// hudHeight is the number of rows above the board (status line + separator).
const hudHeight = 2

// Renderable is anything the renderers can draw as a set of colored cells.
type Renderable interface {
	Positions() []Cell
	Color() core.Color
	Glyph() rune
}

// SnakeView draws every body segment.
type SnakeView struct {
	state *State
	opts  *Options
}

// Positions returns the body from head to tail.
func (v SnakeView) Positions() []Cell { return v.state.Positions() }

// Color returns the themed body color.
func (v SnakeView) Color() core.Color { return v.opts.Theme.Snake }

// Glyph returns the rune drawn for each body cell.
func (v SnakeView) Glyph() rune { return v.opts.Glyphs.Snake }

// HeadView draws the head on top of the body.
type HeadView struct {
	state *State
	opts  *Options
}

// Positions returns the single head cell.
func (v HeadView) Positions() []Cell { return []Cell{v.state.Head()} }

// Color returns the themed head color.
func (v HeadView) Color() core.Color { return v.opts.Theme.Head }

// Glyph returns the rune drawn for the head.
func (v HeadView) Glyph() rune { return v.opts.Glyphs.Head }

// FoodView draws the food cell.
type FoodView struct {
	food Food
	opts *Options
}

// Positions returns the single food cell.
func (v FoodView) Positions() []Cell { return []Cell{v.food.Position()} }

// Color returns the themed food color.
func (v FoodView) Color() core.Color { return v.opts.Theme.Food }

// Glyph returns the rune drawn for the food.
func (v FoodView) Glyph() rune { return v.opts.Glyphs.Food }

// Renderables returns the drawable entities in paint order.
func (g *Game) Renderables() []Renderable {
	out := make([]Renderable, 0, 3)
	if g.hasFood {
		out = append(out, FoodView{food: g.food, opts: &g.opts})
	}
	if g.snake != nil {
		out = append(out, SnakeView{state: g.snake, opts: &g.opts}, HeadView{state: g.snake, opts: &g.opts})
	}
	return out
}

// Layout is where the board lands on a screen of a given size.
type Layout struct {
	Board     core.Rect // Including the frame
	CellChars int
	TooSmall  bool
}

// LayoutFor fits the board onto a w x h screen. It drops to one column per
// cell when the configured width does not fit.
func (g *Game) LayoutFor(w, h int) Layout {
	grid := g.opts.Grid
	chars := g.opts.CellChars
	boardW := grid.Width()*chars + 2
	if boardW > w && chars > 1 {
		chars = 1
		boardW = grid.Width() + 2
	}
	board := core.NewRect((w-boardW)/2, hudHeight, boardW, grid.Height()+2)

	return Layout{
		Board:     board,
		CellChars: chars,
		TooSmall:  !core.NewRect(0, 0, w, h).ContainsRect(board),
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	layout := g.LayoutFor(dst.Width(), dst.Height())
	if layout.TooSmall {
		need := g.LayoutFor(1<<16, 1<<16)
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", need.Board.W, need.Board.Bottom()))
		return
	}

	dst.DrawBox(layout.Board, g.opts.Theme.Border)

	for _, r := range g.Renderables() {
		color, glyph := r.Color(), r.Glyph()
		for _, c := range r.Positions() {
			x := layout.Board.X + 1 + c.X*layout.CellChars
			y := layout.Board.Y + 1 + c.Y
			for i := range layout.CellChars {
				dst.SetColored(x+i, y, glyph, color)
			}
		}
	}

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	length := 0
	if g.snake != nil {
		length = g.snake.Len()
	}
	hud := fmt.Sprintf(" Snake — Length: %d  Best: %d  Resets: %d", length, g.best, g.resets)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1, core.ColorYellow)
	dst.DrawTextCentered(boxY+3, line2, core.ColorDefault)
}
