package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertWallSymmetry checks that every adjacent cell pair agrees on the
// state of the wall they share.
func assertWallSymmetry(t *testing.T, g *Grid) {
	t.Helper()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cell := g.Cells[y][x]
			if x+1 < g.Width {
				assert.Equal(t, cell.EastWall, g.Cells[y][x+1].WestWall, "east/west wall mismatch at (%d,%d)", x, y)
			}
			if y+1 < g.Height {
				assert.Equal(t, cell.SouthWall, g.Cells[y+1][x].NorthWall, "south/north wall mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestNewGrid(t *testing.T) {
	t.Run("starts fully walled", func(t *testing.T) {
		g, err := NewGrid(4, 3)
		assert.NoError(t, err)
		assert.Equal(t, 0, g.OpenPassages())
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				cell := g.Cells[y][x]
				assert.True(t, cell.NorthWall && cell.SouthWall && cell.EastWall && cell.WestWall)
			}
		}
	})

	t.Run("rejects invalid dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {65, 5}} {
			_, err := NewGrid(dims[0], dims[1])
			assert.Error(t, err, "dims %v", dims)
		}
	})
}

func TestNeighbors(t *testing.T) {
	g, err := NewGrid(3, 3)
	assert.NoError(t, err)

	t.Run("corner has two neighbors", func(t *testing.T) {
		assert.Len(t, g.Neighbors(Position{X: 0, Y: 0}), 2)
	})

	t.Run("edge has three neighbors", func(t *testing.T) {
		assert.Len(t, g.Neighbors(Position{X: 1, Y: 0}), 3)
	})

	t.Run("center has four neighbors", func(t *testing.T) {
		assert.Len(t, g.Neighbors(Position{X: 1, Y: 1}), 4)
	})
}

func TestRemoveWallBetween(t *testing.T) {
	t.Run("clears both sides of the shared wall", func(t *testing.T) {
		g, err := NewGrid(3, 3)
		assert.NoError(t, err)

		a := Position{X: 1, Y: 1}
		b := Position{X: 2, Y: 1}
		g.RemoveWallBetween(a, b)

		assert.False(t, g.CellAt(a).EastWall)
		assert.False(t, g.CellAt(b).WestWall)
		assertWallSymmetry(t, g)
	})

	t.Run("panics on non-adjacent cells", func(t *testing.T) {
		g, err := NewGrid(3, 3)
		assert.NoError(t, err)

		assert.Panics(t, func() {
			g.RemoveWallBetween(Position{X: 0, Y: 0}, Position{X: 2, Y: 0})
		})
		assert.Panics(t, func() {
			g.RemoveWallBetween(Position{X: 0, Y: 0}, Position{X: 1, Y: 1})
		})
	})
}

func TestCanMove(t *testing.T) {
	g, err := NewGrid(2, 2)
	assert.NoError(t, err)
	g.RemoveWallBetween(Position{X: 0, Y: 0}, Position{X: 1, Y: 0})

	t.Run("open passage", func(t *testing.T) {
		assert.True(t, g.CanMove(Position{X: 0, Y: 0}, MoveRight))
		assert.True(t, g.CanMove(Position{X: 1, Y: 0}, MoveLeft))
	})

	t.Run("walled direction", func(t *testing.T) {
		assert.False(t, g.CanMove(Position{X: 0, Y: 0}, MoveDown))
	})

	t.Run("grid edge", func(t *testing.T) {
		assert.False(t, g.CanMove(Position{X: 0, Y: 0}, MoveUp))
		assert.False(t, g.CanMove(Position{X: 0, Y: 0}, MoveLeft))
	})
}

func TestParseMove(t *testing.T) {
	for _, m := range Moves {
		parsed, err := ParseMove(m.String())
		assert.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	_, err := ParseMove("NORTH")
	assert.Error(t, err)
}

func TestParseDifficulty(t *testing.T) {
	ladder := []Difficulty{Simple, Easy, Medium, Hard, Nightmare, Horror}
	for i, d := range ladder {
		parsed, err := ParseDifficulty(d.String())
		assert.NoError(t, err)
		assert.Equal(t, d, parsed)
		if i > 0 {
			assert.Greater(t, d, ladder[i-1])
		}
	}

	_, err := ParseDifficulty("impossible")
	assert.Error(t, err)
}
