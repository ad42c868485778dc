package i

import (
	"context"

	dmn "github.com/beka-birhanu/mazebench-api/domain"
	"github.com/beka-birhanu/mazebench-api/maze"
	"github.com/google/uuid"
)

// MazeGenerator produces and serves frozen benchmark mazes.
type MazeGenerator interface {
	// Generate builds a maze at the given difficulty, retrying failed
	// attempts with fresh randomness up to the profile's attempt limit,
	// and persists the frozen record.
	Generate(ctx context.Context, difficulty maze.Difficulty) (*dmn.Maze, error)

	// ByID retrieves a frozen maze.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)
}

// SolutionScorer replays submitted move sequences and records the verdicts.
type SolutionScorer interface {
	// Score validates the moves against the maze, persists the evaluation,
	// and feeds the leaderboard when the maze was solved.
	Score(ctx context.Context, mazeID uuid.UUID, solver string, moves []maze.Move) (*dmn.Evaluation, error)
}
