package i

import (
	"context"

	dmn "github.com/beka-birhanu/mazebench-api/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.User, error)
}

// MazeRepo defines the interface for frozen maze records. Mazes are written
// once on successful generation and never updated.
type MazeRepo interface {
	// Save stores a frozen maze record.
	Save(ctx context.Context, m *dmn.Maze) error

	// ByID retrieves a maze by its unique ID.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error)
}

// EvaluationRepo defines the interface for scored attempts.
type EvaluationRepo interface {
	// Save stores an evaluation record.
	Save(ctx context.Context, e *dmn.Evaluation) error

	// ByMazeID lists the evaluations recorded against a maze.
	ByMazeID(ctx context.Context, mazeID uuid.UUID) ([]*dmn.Evaluation, error)
}
