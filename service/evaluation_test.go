package service

import (
	"context"
	"testing"

	dmn "github.com/beka-birhanu/mazebench-api/domain"
	"github.com/beka-birhanu/mazebench-api/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEvaluationRepo struct {
	saved []*dmn.Evaluation
}

func (f *fakeEvaluationRepo) Save(_ context.Context, e *dmn.Evaluation) error {
	f.saved = append(f.saved, e)
	return nil
}

func (f *fakeEvaluationRepo) ByMazeID(_ context.Context, mazeID uuid.UUID) ([]*dmn.Evaluation, error) {
	var out []*dmn.Evaluation
	for _, e := range f.saved {
		if e.MazeID == mazeID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeLeaderboard struct {
	recorded map[string][]float64
}

func newFakeLeaderboard() *fakeLeaderboard {
	return &fakeLeaderboard{recorded: make(map[string][]float64)}
}

func (f *fakeLeaderboard) RecordScore(_ context.Context, solver string, efficiency float64) error {
	f.recorded[solver] = append(f.recorded[solver], efficiency)
	return nil
}

func (f *fakeLeaderboard) Top(_ context.Context, _ int64) ([]dmn.Score, error) {
	return nil, nil
}

// corridorMaze freezes a 1x4 corridor with start (0,0) and goal (3,0).
func corridorMaze(t *testing.T, constraint *dmn.Constraint) *dmn.Maze {
	t.Helper()
	g, err := maze.NewGrid(4, 1)
	require.NoError(t, err)
	for x := 0; x < 3; x++ {
		g.RemoveWallBetween(maze.Position{X: x, Y: 0}, maze.Position{X: x + 1, Y: 0})
	}
	return dmn.NewMaze(uuid.New(), maze.Simple, g,
		maze.Position{X: 0, Y: 0}, maze.Position{X: 3, Y: 0}, 3, constraint)
}

func TestEvaluationServiceScore(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T, record *dmn.Maze) (*EvaluationService, *fakeEvaluationRepo, *fakeLeaderboard) {
		t.Helper()
		mazes := newFakeMazeRepo()
		require.NoError(t, mazes.Save(ctx, record))
		evals := &fakeEvaluationRepo{}
		board := newFakeLeaderboard()
		svc, err := NewEvaluationService(mazes, evals, board, discardLogger())
		require.NoError(t, err)
		return svc, evals, board
	}

	t.Run("solved attempts are stored and ranked", func(t *testing.T) {
		record := corridorMaze(t, nil)
		svc, evals, board := newService(t, record)

		evaluation, err := svc.Score(ctx, record.ID, "model-a",
			[]maze.Move{maze.MoveRight, maze.MoveRight, maze.MoveRight})
		require.NoError(t, err)

		assert.True(t, evaluation.IsValid)
		assert.True(t, evaluation.ReachesGoal)
		require.NotNil(t, evaluation.Efficiency)
		assert.InDelta(t, 1.0, *evaluation.Efficiency, 1e-9)
		assert.Len(t, evals.saved, 1)
		assert.Equal(t, []float64{1.0}, board.recorded["model-a"])
	})

	t.Run("invalid attempts are stored but never ranked", func(t *testing.T) {
		record := corridorMaze(t, nil)
		svc, evals, board := newService(t, record)

		evaluation, err := svc.Score(ctx, record.ID, "model-b", []maze.Move{maze.MoveDown})
		require.NoError(t, err)

		assert.False(t, evaluation.IsValid)
		assert.False(t, evaluation.ReachesGoal)
		assert.Nil(t, evaluation.Efficiency)
		assert.Len(t, evals.saved, 1)
		assert.Empty(t, board.recorded)
	})

	t.Run("unsatisfied constraints block the leaderboard", func(t *testing.T) {
		// The corridor is 1 cell tall, so a tile off the corridor row can
		// never be visited.
		record := corridorMaze(t, &dmn.Constraint{Tiles: []dmn.Point{{X: 0, Y: 5}}})
		svc, _, board := newService(t, record)

		evaluation, err := svc.Score(ctx, record.ID, "model-c",
			[]maze.Move{maze.MoveRight, maze.MoveRight, maze.MoveRight})
		require.NoError(t, err)

		assert.True(t, evaluation.ReachesGoal)
		require.NotNil(t, evaluation.ConstraintsSatisfied)
		assert.False(t, *evaluation.ConstraintsSatisfied)
		assert.False(t, evaluation.Solved())
		assert.Empty(t, board.recorded)
	})

	t.Run("unknown mazes error", func(t *testing.T) {
		record := corridorMaze(t, nil)
		svc, _, _ := newService(t, record)

		_, err := svc.Score(ctx, uuid.New(), "model-d", nil)
		assert.Error(t, err)
	})
}
