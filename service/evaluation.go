package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	dmn "github.com/beka-birhanu/mazebench-api/domain"
	"github.com/beka-birhanu/mazebench-api/maze"
	"github.com/beka-birhanu/mazebench-api/service/i"
	"github.com/google/uuid"
)

// EvaluationService scores submitted solutions against frozen mazes.
type EvaluationService struct {
	mazes       i.MazeRepo
	evaluations i.EvaluationRepo
	leaderboard i.Leaderboard
	logger      *log.Logger
}

// NewEvaluationService creates an EvaluationService.
func NewEvaluationService(mazes i.MazeRepo, evaluations i.EvaluationRepo, leaderboard i.Leaderboard, logger *log.Logger) (*EvaluationService, error) {
	if mazes == nil || evaluations == nil || leaderboard == nil || logger == nil {
		return nil, errors.New("evaluation service requires repos, a leaderboard, and a logger")
	}
	return &EvaluationService{
		mazes:       mazes,
		evaluations: evaluations,
		leaderboard: leaderboard,
		logger:      logger,
	}, nil
}

// Score replays the moves against the maze and persists the verdict. An
// invalid or incomplete solution is a normal, stored result, not an error.
// Solved attempts additionally feed the solver's leaderboard mean; a
// leaderboard outage is logged but does not fail the scoring.
func (s *EvaluationService) Score(ctx context.Context, mazeID uuid.UUID, solver string, moves []maze.Move) (*dmn.Evaluation, error) {
	record, err := s.mazes.ByID(ctx, mazeID)
	if err != nil {
		return nil, err
	}

	grid, err := record.Grid()
	if err != nil {
		return nil, err
	}
	constraint, err := record.Constraint.ToEngine()
	if err != nil {
		return nil, fmt.Errorf("maze %s: %w", mazeID, err)
	}

	result := maze.ValidateSolution(grid, record.Start.ToEngine(), record.Goal.ToEngine(),
		record.OptimalLength, moves, constraint)

	evaluation := dmn.NewEvaluation(uuid.New(), mazeID, solver, moves, result)
	if err := s.evaluations.Save(ctx, evaluation); err != nil {
		return nil, err
	}

	if evaluation.Solved() {
		if err := s.leaderboard.RecordScore(ctx, solver, result.Efficiency); err != nil {
			s.logger.Printf("recording %s score for maze %s: %v", solver, mazeID, err)
		}
	}

	return evaluation, nil
}
