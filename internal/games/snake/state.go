package snake

import "math/rand"

// AdvanceResult describes one movement step.
type AdvanceResult struct {
	Head       Cell
	Removed    Cell
	HasRemoved bool // false when the tail stayed (growth, or body still short)
}

// State is the snake itself: body, heading and growth bookkeeping.
type State struct {
	body    []Cell // Head at index 0
	dir     Direction
	pending Direction // DirNone when nothing is queued
	target  int

	lastRemoved    Cell
	hasLastRemoved bool

	rng *rand.Rand
}

// NewState creates a length-1 snake at the grid center facing a random direction.
func NewState(g Grid, rng *rand.Rand) *State {
	s := &State{rng: rng}
	s.Reset(g)
	return s
}

// QueueDirection buffers d for the next Advance. A direction opposite to the
// current one is rejected and leaves any earlier queued direction in place.
func (s *State) QueueDirection(d Direction) bool {
	if d == DirNone || d == s.dir.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// Advance moves the snake one cell, wrapping around the grid edges.
func (s *State) Advance(g Grid) AdvanceResult {
	if s.pending != DirNone {
		s.dir = s.pending
		s.pending = DirNone
	}

	head := s.body[0]
	dx, dy := s.dir.Delta()
	newHead := g.Wrap(head.X+dx, head.Y+dy)

	s.body = append(s.body, Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead

	res := AdvanceResult{Head: newHead}
	if len(s.body) > s.target {
		tail := s.body[len(s.body)-1]
		s.body = s.body[:len(s.body)-1]
		s.lastRemoved, s.hasLastRemoved = tail, true
		res.Removed, res.HasRemoved = tail, true
	} else {
		s.lastRemoved, s.hasLastRemoved = Cell{}, false
	}
	return res
}

// Grow raises the target length by one. The body catches up on the next
// Advance, which keeps the tail in place.
func (s *State) Grow() {
	s.target++
}

// CheckSelfCollision reports whether the head overlaps another segment.
func (s *State) CheckSelfCollision() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Reset shrinks the snake back to one cell at the grid center and picks a
// new random heading.
func (s *State) Reset(g Grid) {
	s.target = 1
	s.body = append(s.body[:0], g.Center())
	s.dir = Directions[s.rng.Intn(len(Directions))]
	s.pending = DirNone
	s.lastRemoved, s.hasLastRemoved = Cell{}, false
}

// Positions returns a copy of the body, head first.
func (s *State) Positions() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Head returns the head cell.
func (s *State) Head() Cell {
	return s.body[0]
}

// LastRemoved returns the tail cell vacated by the latest Advance, if any.
func (s *State) LastRemoved() (Cell, bool) {
	return s.lastRemoved, s.hasLastRemoved
}

// Direction returns the current heading.
func (s *State) Direction() Direction {
	return s.dir
}

// Pending returns the queued direction, or DirNone.
func (s *State) Pending() Direction {
	return s.pending
}

// TargetLength returns the length the body grows toward.
func (s *State) TargetLength() int {
	return s.target
}

// Len returns the current body length.
func (s *State) Len() int {
	return len(s.body)
}

// occupied returns the body as a lookup set.
func (s *State) occupied() map[Cell]struct{} {
	set := make(map[Cell]struct{}, len(s.body))
	for _, c := range s.body {
		set[c] = struct{}{}
	}
	return set
}
