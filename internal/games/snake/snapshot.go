package snake

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick     uint64
	Length   int
	Target   int
	HeadX    int
	HeadY    int
	Dir      Direction
	Pending  Direction
	FoodX    int
	FoodY    int
	HasFood  bool
	Resets   int
	Best     int
	RunTicks uint64
	Paused   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Resets:   g.resets,
		Best:     g.best,
		RunTicks: g.runTicks,
		Paused:   g.paused,
		HasFood:  g.hasFood,
		FoodX:    g.food.Position().X,
		FoodY:    g.food.Position().Y,
	}
	if g.snake != nil {
		head := g.snake.Head()
		snap.Length = g.snake.Len()
		snap.Target = g.snake.TargetLength()
		snap.HeadX, snap.HeadY = head.X, head.Y
		snap.Dir = g.snake.Direction()
		snap.Pending = g.snake.Pending()
	}
	return snap
}
