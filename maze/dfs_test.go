package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDFS(t *testing.T) {
	start := Position{X: 0, Y: 0}

	t.Run("5x5 is a fully connected tree", func(t *testing.T) {
		g, err := GenerateDFS(5, 5, start, rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		// A perfect maze over 25 cells has exactly 24 open passages.
		assert.Equal(t, 24, g.OpenPassages())
		assertWallSymmetry(t, g)

		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				_, ok := ShortestPathLength(g, start, Position{X: x, Y: y})
				assert.True(t, ok, "cell (%d,%d) unreachable", x, y)
			}
		}
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		a, err := GenerateDFS(8, 8, start, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		b, err := GenerateDFS(8, 8, start, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		assert.Equal(t, a.Cells, b.Cells)
	})

	t.Run("rejects out-of-bounds seed cell", func(t *testing.T) {
		_, err := GenerateDFS(5, 5, Position{X: 5, Y: 0}, rand.New(rand.NewSource(1)))
		assert.Error(t, err)
	})
}
