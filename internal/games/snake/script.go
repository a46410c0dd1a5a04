package snake

import (
	"fmt"
	"unicode"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ParseScript turns a move string into one input frame per tick.
// U, D, L and R (either case) steer; '.' is a tick without input.
// Whitespace is ignored so long scripts can be wrapped.
func ParseScript(script string, turns Turns) ([]core.InputFrame, error) {
	if turns == nil {
		turns = DefaultTurns()
	}
	actions := make(map[Direction]core.Action, len(turns))
	for a, d := range turns {
		actions[d] = a
	}

	var frames []core.InputFrame
	for i, r := range script {
		if unicode.IsSpace(r) {
			continue
		}
		frame := core.NewInputFrame()
		if r != '.' {
			d, ok := ParseDirection(r)
			if !ok {
				return nil, fmt.Errorf("snake: script position %d: unknown move %q", i, r)
			}
			a, ok := actions[d]
			if !ok {
				return nil, fmt.Errorf("snake: script position %d: no key steers %s", i, d)
			}
			frame.Set(a)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}
