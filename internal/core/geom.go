// Package core provides fundamental types and utilities shared by the game
// and the platform layer. It has no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r. Empty rectangles
// are never contained.
func (r Rect) ContainsRect(o Rect) bool {
	if o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.Contains(o.X, o.Y) && r.Contains(o.Right()-1, o.Bottom()-1)
}

// Mod returns x modulo m in the range [0, m), also for negative x.
// m must be positive.
func Mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
