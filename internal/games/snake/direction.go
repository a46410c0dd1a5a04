package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
// The zero value DirNone means "no direction queued".
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four movement directions.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit step of the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Turns maps steering actions to directions.
// The orchestrator receives it at construction time.
type Turns map[core.Action]Direction

// DefaultTurns returns the arrow-key mapping.
func DefaultTurns() Turns {
	return Turns{
		core.ActionUp:    DirUp,
		core.ActionDown:  DirDown,
		core.ActionLeft:  DirLeft,
		core.ActionRight: DirRight,
	}
}

// ParseDirection reads a single-letter direction (U, D, L, R).
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case 'U', 'u':
		return DirUp, true
	case 'D', 'd':
		return DirDown, true
	case 'L', 'l':
		return DirLeft, true
	case 'R', 'r':
		return DirRight, true
	}
	return DirNone, false
}
