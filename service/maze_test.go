package service

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/beka-birhanu/mazebench-api/config"
	dmn "github.com/beka-birhanu/mazebench-api/domain"
	"github.com/beka-birhanu/mazebench-api/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMazeRepo struct {
	records map[uuid.UUID]*dmn.Maze
}

func newFakeMazeRepo() *fakeMazeRepo {
	return &fakeMazeRepo{records: make(map[uuid.UUID]*dmn.Maze)}
}

func (f *fakeMazeRepo) Save(_ context.Context, m *dmn.Maze) error {
	f.records[m.ID] = m
	return nil
}

func (f *fakeMazeRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Maze, error) {
	m, ok := f.records[id]
	if !ok {
		return nil, assert.AnError
	}
	return m, nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestMazeServiceGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("simple difficulty produces a frozen DFS maze", func(t *testing.T) {
		repo := newFakeMazeRepo()
		svc, err := NewMazeService(repo, config.ProfileFor, discardLogger())
		require.NoError(t, err)

		record, err := svc.Generate(ctx, maze.Simple)
		require.NoError(t, err)

		assert.Equal(t, "simple", record.Difficulty)
		assert.Equal(t, 5, record.Width)
		assert.Equal(t, 5, record.Height)
		assert.Equal(t, dmn.Point{X: 0, Y: 0}, record.Start)
		assert.Equal(t, dmn.Point{X: 4, Y: 4}, record.Goal)
		assert.GreaterOrEqual(t, record.OptimalLength, 8)
		assert.Nil(t, record.Constraint)
		assert.Contains(t, repo.records, record.ID)

		stored, err := svc.ByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.ID, stored.ID)
	})

	t.Run("spine profiles retry until an attempt succeeds", func(t *testing.T) {
		repo := newFakeMazeRepo()
		svc, err := NewMazeService(repo, config.ProfileFor, discardLogger())
		require.NoError(t, err)

		record, err := svc.Generate(ctx, maze.Medium)
		require.NoError(t, err)

		profile := config.ProfileFor(maze.Medium)
		manhattan := profile.Width - 1 + profile.Height - 1
		assert.GreaterOrEqual(t, float64(record.OptimalLength), float64(manhattan)*profile.Spine.Tortuosity-1)
	})

	t.Run("waypoint constraints come from the optimal path", func(t *testing.T) {
		profiles := func(maze.Difficulty) config.GeneratorProfile {
			return config.GeneratorProfile{
				Width: 8, Height: 8, UseSpine: true, MaxAttempts: 50, RequiredTiles: 2,
				Spine: maze.SpineConfig{Tortuosity: 1.2, MinTurns: 2, FillUnvisited: true},
			}
		}
		repo := newFakeMazeRepo()
		svc, err := NewMazeService(repo, profiles, discardLogger())
		require.NoError(t, err)

		record, err := svc.Generate(ctx, maze.Hard)
		require.NoError(t, err)

		require.NotNil(t, record.Constraint)
		assert.Len(t, record.Constraint.Tiles, 2)
		for _, tile := range record.Constraint.Tiles {
			assert.NotEqual(t, record.Start, tile)
			assert.NotEqual(t, record.Goal, tile)
		}
	})

	t.Run("impossible profiles exhaust their attempts", func(t *testing.T) {
		profiles := func(maze.Difficulty) config.GeneratorProfile {
			return config.GeneratorProfile{
				Width: 3, Height: 3, UseSpine: true, MaxAttempts: 3,
				Spine: maze.SpineConfig{Tortuosity: 1.0, MinTurns: 20},
			}
		}
		repo := newFakeMazeRepo()
		svc, err := NewMazeService(repo, profiles, discardLogger())
		require.NoError(t, err)

		_, err = svc.Generate(ctx, maze.Hard)
		assert.Error(t, err)
		assert.Empty(t, repo.records)
	})
}
