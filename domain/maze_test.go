package domain

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/mazebench-api/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMazeRecordRoundTrip(t *testing.T) {
	start := maze.Position{X: 0, Y: 0}
	g, err := maze.GenerateDFS(6, 6, start, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	goal := maze.Position{X: 5, Y: 5}
	optimal, ok := maze.ShortestPathLength(g, start, goal)
	require.True(t, ok)

	record := NewMaze(uuid.New(), maze.Easy, g, start, goal, optimal, nil)

	t.Run("grid survives freezing and thawing", func(t *testing.T) {
		rebuilt, err := record.Grid()
		require.NoError(t, err)
		assert.Equal(t, g.Cells, rebuilt.Cells)

		length, ok := maze.ShortestPathLength(rebuilt, start, goal)
		require.True(t, ok)
		assert.Equal(t, optimal, length)
	})

	t.Run("rendering marks start and goal", func(t *testing.T) {
		rendered, err := record.Rendered()
		require.NoError(t, err)
		assert.Contains(t, rendered, "S")
		assert.Contains(t, rendered, "G")
	})
}

func TestConstraintToEngine(t *testing.T) {
	t.Run("nil constraint stays nil", func(t *testing.T) {
		var c *Constraint
		engine, err := c.ToEngine()
		assert.NoError(t, err)
		assert.Nil(t, engine)
	})

	t.Run("tiles and sequences convert", func(t *testing.T) {
		c := &Constraint{
			Tiles: []Point{{X: 1, Y: 2}},
			Sequences: []ConstraintSequence{{
				Name:  "detour",
				Steps: []ConstraintStep{{Move: "RIGHT", Pos: Point{X: 2, Y: 2}}},
			}},
		}

		engine, err := c.ToEngine()
		require.NoError(t, err)
		assert.Equal(t, []maze.Position{{X: 1, Y: 2}}, engine.Tiles)
		require.Len(t, engine.Sequences, 1)
		assert.Equal(t, maze.MoveRight, engine.Sequences[0].Steps[0].Move)
	})

	t.Run("unknown move strings error", func(t *testing.T) {
		c := &Constraint{
			Sequences: []ConstraintSequence{{
				Name:  "bad",
				Steps: []ConstraintStep{{Move: "NORTH", Pos: Point{}}},
			}},
		}

		_, err := c.ToEngine()
		assert.Error(t, err)
	})
}
