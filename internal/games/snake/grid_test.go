package snake

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGridFromArea(t *testing.T) {
	g := NewGrid(640, 480, 20)
	require.Equal(t, 32, g.Width())
	require.Equal(t, 24, g.Height())
	require.Equal(t, 32*24, g.Area())
	require.Equal(t, Cell{X: 16, Y: 12}, g.Center())
}

func TestNewGridClampsToOneCell(t *testing.T) {
	g := NewGrid(10, 10, 20)
	require.Equal(t, 1, g.Width())
	require.Equal(t, 1, g.Height())

	g = NewGrid(100, 60, 0)
	require.Equal(t, 100, g.Width())
	require.Equal(t, 60, g.Height())
}

func TestGridWrap(t *testing.T) {
	g := GridOf(32, 24)

	tests := []struct {
		name string
		x, y int
		want Cell
	}{
		{"inside", 5, 7, Cell{X: 5, Y: 7}},
		{"off right edge", 32, 3, Cell{X: 0, Y: 3}},
		{"off left edge", -1, 3, Cell{X: 31, Y: 3}},
		{"off top edge", 4, -1, Cell{X: 4, Y: 23}},
		{"off bottom edge", 4, 24, Cell{X: 4, Y: 0}},
		{"far negative", -33, -25, Cell{X: 31, Y: 23}},
		{"far positive", 64, 48, Cell{X: 0, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, g.Wrap(tc.x, tc.y))
		})
	}
}

func TestGridWrapAlwaysInBounds(t *testing.T) {
	g := GridOf(7, 5)
	for x := -50; x <= 50; x++ {
		for y := -50; y <= 50; y++ {
			c := g.Wrap(x, y)
			require.True(t, g.Contains(c), "Wrap(%d, %d) = %+v out of bounds", x, y, c)
		}
	}
}

func TestGridRandomCellInBounds(t *testing.T) {
	g := GridOf(3, 2)
	rng := rand.New(rand.NewSource(7))
	seen := make(map[Cell]bool)
	for range 500 {
		c := g.RandomCell(rng)
		require.True(t, g.Contains(c))
		seen[c] = true
	}
	require.Len(t, seen, 6, "every cell should be reachable")
}
