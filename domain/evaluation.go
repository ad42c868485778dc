package domain

import (
	"time"

	"github.com/beka-birhanu/mazebench-api/maze"
	"github.com/google/uuid"
)

// Evaluation is one scored attempt at a maze: the submitted moves plus the
// full validator verdict. Solver is the label the attempt is scored under,
// a model name or a username.
type Evaluation struct {
	ID                   uuid.UUID `bson:"_id"`
	MazeID               uuid.UUID `bson:"mazeId"`
	Solver               string    `bson:"solver"`
	Moves                []string  `bson:"moves"`
	IsValid              bool      `bson:"isValid"`
	ReachesGoal          bool      `bson:"reachesGoal"`
	PathLength           int       `bson:"pathLength"`
	FinalPosition        Point     `bson:"finalPosition"`
	Efficiency           *float64  `bson:"efficiency,omitempty"`
	ConstraintsSatisfied *bool     `bson:"constraintsSatisfied,omitempty"`
	CreatedAt            time.Time `bson:"createdAt"`
}

// NewEvaluation freezes a validator verdict into a persistable record.
func NewEvaluation(id, mazeID uuid.UUID, solver string, moves []maze.Move, result maze.ValidationResult) *Evaluation {
	moveStrings := make([]string, len(moves))
	for i, m := range moves {
		moveStrings[i] = m.String()
	}

	eval := &Evaluation{
		ID:                   id,
		MazeID:               mazeID,
		Solver:               solver,
		Moves:                moveStrings,
		IsValid:              result.IsValid,
		ReachesGoal:          result.ReachesGoal,
		PathLength:           result.PathLength,
		FinalPosition:        PointFromEngine(result.FinalPosition),
		ConstraintsSatisfied: result.ConstraintsSatisfied,
		CreatedAt:            time.Now().UTC(),
	}
	if result.ReachesGoal {
		efficiency := result.Efficiency
		eval.Efficiency = &efficiency
	}
	return eval
}

// Solved reports whether the attempt fully solved the maze: it reached the
// goal and, when the maze carries a constraint, satisfied it.
func (e *Evaluation) Solved() bool {
	if !e.ReachesGoal {
		return false
	}
	if e.ConstraintsSatisfied != nil && !*e.ConstraintsSatisfied {
		return false
	}
	return true
}

// Score is one leaderboard row: a solver and its mean efficiency over the
// attempts that solved their maze.
type Score struct {
	Solver         string  `json:"solver"`
	MeanEfficiency float64 `json:"mean_efficiency"`
	Samples        int64   `json:"samples"`
}
