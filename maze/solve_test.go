package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// carvePath opens the walls along a sequence of adjacent positions.
func carvePath(g *Grid, path ...Position) {
	for i := 1; i < len(path); i++ {
		g.RemoveWallBetween(path[i-1], path[i])
	}
}

func TestShortestPath(t *testing.T) {
	t.Run("finds the minimum route", func(t *testing.T) {
		g, err := NewGrid(3, 3)
		require.NoError(t, err)

		// A long detour plus a direct corridor; BFS must pick the corridor.
		carvePath(g,
			Position{X: 0, Y: 0}, Position{X: 0, Y: 1}, Position{X: 0, Y: 2},
			Position{X: 1, Y: 2}, Position{X: 2, Y: 2}, Position{X: 2, Y: 1},
			Position{X: 2, Y: 0})
		carvePath(g, Position{X: 0, Y: 0}, Position{X: 1, Y: 0}, Position{X: 2, Y: 0})

		path, ok := ShortestPath(g, Position{X: 0, Y: 0}, Position{X: 2, Y: 0})
		require.True(t, ok)
		assert.Equal(t, []Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, path)

		length, ok := ShortestPathLength(g, Position{X: 0, Y: 0}, Position{X: 2, Y: 0})
		require.True(t, ok)
		assert.Equal(t, 2, length)
	})

	t.Run("reports unreachable goals", func(t *testing.T) {
		g, err := NewGrid(3, 3)
		require.NoError(t, err)

		_, ok := ShortestPathLength(g, Position{X: 0, Y: 0}, Position{X: 2, Y: 2})
		assert.False(t, ok)
	})

	t.Run("zero length when start is goal", func(t *testing.T) {
		g, err := NewGrid(2, 2)
		require.NoError(t, err)

		length, ok := ShortestPathLength(g, Position{X: 1, Y: 1}, Position{X: 1, Y: 1})
		require.True(t, ok)
		assert.Equal(t, 0, length)
	})

	t.Run("rejects out-of-bounds endpoints", func(t *testing.T) {
		g, err := NewGrid(2, 2)
		require.NoError(t, err)

		_, ok := ShortestPath(g, Position{X: 0, Y: 0}, Position{X: 2, Y: 0})
		assert.False(t, ok)
	})
}
