package snake

import "math/rand"

// maxSpawnAttempts bounds rejection sampling before the spawner falls back
// to enumerating free cells.
const maxSpawnAttempts = 64

// Food is the single piece of food on the board.
type Food struct {
	pos Cell
}

// Position returns the food cell.
func (f Food) Position() Cell {
	return f.pos
}

// Spawner places food on free cells.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng}
}

// Spawn returns a uniformly random cell that is not in occupied.
// It returns false only when every cell of the grid is occupied.
func (sp *Spawner) Spawn(g Grid, occupied map[Cell]struct{}) (Cell, bool) {
	for range maxSpawnAttempts {
		c := g.RandomCell(sp.rng)
		if _, taken := occupied[c]; !taken {
			return c, true
		}
	}

	// Crowded board: pick among the free cells directly.
	free := make([]Cell, 0, max(0, g.Area()-len(occupied)))
	for y := range g.Height() {
		for x := range g.Width() {
			c := Cell{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[sp.rng.Intn(len(free))], true
}

// SpawnFood places new food away from the snake body.
func (sp *Spawner) SpawnFood(g Grid, s *State) (Food, bool) {
	c, ok := sp.Spawn(g, s.occupied())
	return Food{pos: c}, ok
}
