// Package mazeapi provides structures and utilities for generating
// benchmark mazes and scoring submitted solutions.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/mazebench-api/domain"
	"github.com/google/uuid"
)

// GenerateRequest represents a request to generate a new benchmark maze.
type GenerateRequest struct {
	Difficulty string `json:"difficulty" binding:"required"`
}

// MazeResponse represents a frozen maze, walls included, as served to
// harnesses and viewers.
type MazeResponse struct {
	ID            uuid.UUID        `json:"id"`
	Difficulty    string           `json:"difficulty"`
	Width         int              `json:"width"`
	Height        int              `json:"height"`
	Cells         [][]dmn.MazeCell `json:"cells"`
	Start         dmn.Point        `json:"start"`
	Goal          dmn.Point        `json:"goal"`
	OptimalLength int              `json:"optimal_length"`
	Constraint    *dmn.Constraint  `json:"constraint,omitempty"`
	Rendered      string           `json:"rendered"`
	CreatedAt     time.Time        `json:"created_at"`
}

func newMazeResponse(m *dmn.Maze) (*MazeResponse, error) {
	rendered, err := m.Rendered()
	if err != nil {
		return nil, err
	}
	return &MazeResponse{
		ID:            m.ID,
		Difficulty:    m.Difficulty,
		Width:         m.Width,
		Height:        m.Height,
		Cells:         m.Cells,
		Start:         m.Start,
		Goal:          m.Goal,
		OptimalLength: m.OptimalLength,
		Constraint:    m.Constraint,
		Rendered:      rendered,
		CreatedAt:     m.CreatedAt,
	}, nil
}

// SolutionRequest represents a candidate move sequence for a maze. Solver
// is the label the attempt is scored under.
type SolutionRequest struct {
	Solver string   `json:"solver" binding:"required"`
	Moves  []string `json:"moves" binding:"required"`
}

// SolutionResponse is the verdict of one scored attempt.
type SolutionResponse struct {
	ID                   uuid.UUID `json:"id"`
	MazeID               uuid.UUID `json:"maze_id"`
	Solver               string    `json:"solver"`
	IsValid              bool      `json:"is_valid"`
	ReachesGoal          bool      `json:"reaches_goal"`
	PathLength           int       `json:"path_length"`
	FinalPosition        dmn.Point `json:"final_position"`
	Efficiency           *float64  `json:"efficiency,omitempty"`
	ConstraintsSatisfied *bool     `json:"constraints_satisfied,omitempty"`
}

func newSolutionResponse(e *dmn.Evaluation) *SolutionResponse {
	return &SolutionResponse{
		ID:                   e.ID,
		MazeID:               e.MazeID,
		Solver:               e.Solver,
		IsValid:              e.IsValid,
		ReachesGoal:          e.ReachesGoal,
		PathLength:           e.PathLength,
		FinalPosition:        e.FinalPosition,
		Efficiency:           e.Efficiency,
		ConstraintsSatisfied: e.ConstraintsSatisfied,
	}
}

// LeaderboardResponse lists solvers ranked by mean efficiency.
type LeaderboardResponse struct {
	Scores []dmn.Score `json:"scores"`
}
