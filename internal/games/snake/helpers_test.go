package snake

import "math/rand"

// stateWith builds a snake with the given body (head first) and heading.
// The target length equals the body length, so it does not grow.
func stateWith(seed int64, dir Direction, body ...Cell) *State {
	return &State{
		body:   append([]Cell(nil), body...),
		dir:    dir,
		target: len(body),
		rng:    rand.New(rand.NewSource(seed)),
	}
}
